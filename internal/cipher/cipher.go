// Package cipher applies a tour key as a repeating XOR keystream.
package cipher

import "tourcipher/internal/domain"

// Extend tiles key by self-concatenation until it covers at least n bytes.
// The result is always at least one full copy of the key.
func Extend(key domain.Key, n int) (domain.Key, error) {
	if len(key) == 0 {
		return nil, domain.ErrEmptyKey
	}
	out := make(domain.Key, 0, len(key)*(n/len(key)+1))
	for {
		out = append(out, key...)
		if len(out) >= n {
			return out, nil
		}
	}
}

// Transform XORs each byte of data with the low eight bits of the cycling
// key. XOR is self-inverse, so the same call encrypts and decrypts. The
// output is always exactly len(data) bytes.
func Transform(data []byte, key domain.Key) ([]byte, error) {
	if len(key) == 0 {
		return nil, domain.ErrEmptyKey
	}
	out := make([]byte, len(data))
	for i, b := range data {
		// Cell identifiers exceed 255 on boards past 15×15; only the low
		// byte participates.
		out[i] = b ^ byte(key[i%len(key)])
	}
	return out, nil
}

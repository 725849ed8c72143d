// Package codec transcodes ciphertext bytes to the printable hex form used
// for display and transport: two lowercase digits per byte, space-separated.
package codec

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// FormatError reports malformed hex input, naming the offending part.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed hex %q: %s", e.Input, e.Reason)
}

const digits = "0123456789abcdef"

// ToHex renders b as space-separated lowercase hex pairs in input order.
func ToHex(b []byte) string {
	var sb strings.Builder
	sb.Grow(3 * len(b))
	for i, c := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(digits[c>>4])
		sb.WriteByte(digits[c&0xf])
	}
	return sb.String()
}

// FromHex parses space-separated two-digit hex groups back into bytes.
// Runs of concatenated pairs ("4d60") are accepted; an odd digit count or a
// non-hex character is a *FormatError, never a best-effort parse.
func FromHex(s string) ([]byte, error) {
	out := []byte{}
	for _, group := range strings.Fields(s) {
		if len(group)%2 != 0 {
			return nil, &FormatError{Input: group, Reason: "odd number of hex digits"}
		}
		b, err := hex.DecodeString(group)
		if err != nil {
			return nil, &FormatError{Input: group, Reason: "not a hex digit pair"}
		}
		out = append(out, b...)
	}
	return out, nil
}

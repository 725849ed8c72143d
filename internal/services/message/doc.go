// Package message encrypts and decrypts text against a tour key, pairing the
// XOR keystream with the printable hex transport form.
package message

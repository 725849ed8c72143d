// Package store provides file-based persistence for tour keys.
//
// Keys live under <home>/keys in two forms:
//
//   - <name>.bin     raw: a flat sequence of little-endian int32 cell
//     identifiers, no header; the key length is implicit in the file size.
//   - <name>.sealed  sealed: the same flat encoding encrypted under a
//     passphrase (scrypt key derivation, ChaCha20-Poly1305).
//
// All writes go through a temp file and rename. Methods are
// concurrency-safe via internal locking.
package store

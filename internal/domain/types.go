package domain

import "encoding/hex"

// Digest is the SHA-256 hash of a passphrase.
type Digest [32]byte

// Hex returns the lowercase hex form used for display and reports.
func (d Digest) Hex() string { return hex.EncodeToString(d[:]) }

// Position is a zero-based board coordinate.
type Position struct {
	Row int
	Col int
}

// Key is an ordered sequence of board-cell identifiers produced by a
// completed knight's tour. A complete key for an N×N board is a permutation
// of 0..N²-1. Elements are int32 to match the on-disk key-file format.
type Key []int32

// Report bundles the values describing one key generation. The four fields
// are self-consistent: Key was produced by the tour starting at Start on a
// BoardSize×BoardSize board seeded by the passphrase hashed in HexDigest.
type Report struct {
	Key       Key
	HexDigest string
	Start     Position
	BoardSize int
}

// KeyFileInfo describes one saved key file.
type KeyFileInfo struct {
	Name   string
	Sealed bool
	Cells  int // 0 for sealed files; unknown until opened
}

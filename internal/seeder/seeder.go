// Package seeder maps a passphrase onto the board.
//
// The passphrase is hashed with SHA-256; the first two digest bytes, taken
// modulo the board size, select the knight's starting cell. The mapping is a
// plain byte modulo, so the same passphrase always lands on the same cell.
package seeder

import (
	"crypto/sha256"

	"tourcipher/internal/domain"
)

// Derivation binds a passphrase digest to its start cell.
type Derivation struct {
	Digest domain.Digest
	Start  domain.Position
}

// Derive hashes the passphrase and picks the start cell for a size×size
// board. Any byte sequence is a valid passphrase, including the empty one.
func Derive(passphrase []byte, size int) Derivation {
	sum := sha256.Sum256(passphrase)
	return Derivation{
		Digest: domain.Digest(sum),
		Start: domain.Position{
			Row: int(sum[0]) % size,
			Col: int(sum[1]) % size,
		},
	}
}

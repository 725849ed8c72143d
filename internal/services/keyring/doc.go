// Package keyring derives tour keys from passphrases and manages their
// persistence.
//
// It runs the seeder, board and tour search in sequence for generation, and
// enforces the board-size/key-length consistency rules when loading saved
// keys via the domain.KeyStore.
package keyring

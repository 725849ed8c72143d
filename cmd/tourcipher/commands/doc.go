// Package commands defines the tourcipher CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - generate   Derive a tour key from a passphrase, optionally saving it
//   - keys       List saved key files
//   - encrypt    Encrypt a message, printing hex ciphertext
//   - decrypt    Decrypt hex ciphertext back to the message
//   - report     Print the key report for a passphrase
//   - bench      Time key generation and the cipher round trip
//
// # Implementation
//
// The root command builds a dependency graph (key store, keyring and message
// services) before any subcommand runs, so handlers share one app context.
// Passphrases come from the -p flag or a no-echo terminal prompt.
package commands

package app

import (
	"tourcipher/internal/domain"
	keyringsvc "tourcipher/internal/services/keyring"
	messagesvc "tourcipher/internal/services/message"
	"tourcipher/internal/store"
)

// Wire bundles the store and services for the CLI.
type Wire struct {
	Keys     domain.KeyStore
	Keyring  domain.KeyringService
	Messages domain.MessageService
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	keyStore := store.NewFileStore(cfg.Home)

	keyringSvc, err := keyringsvc.New(keyStore, cfg.BoardSize)
	if err != nil {
		return nil, err
	}

	return &Wire{
		Keys:     keyStore,
		Keyring:  keyringSvc,
		Messages: messagesvc.New(),
	}, nil
}

package domain

// KeyStore persists tour keys on disk.
type KeyStore interface {
	// SaveRaw writes key as a flat sequence of little-endian int32 cells,
	// no header; the length is implicit in the file size.
	SaveRaw(name string, key Key) error
	LoadRaw(name string) (Key, error)

	// SaveSealed writes key encrypted under the passphrase.
	SaveSealed(name, passphrase string, key Key) error
	LoadSealed(name, passphrase string) (Key, error)

	List() ([]KeyFileInfo, error)
}

// KeyringService derives, persists and describes tour keys.
type KeyringService interface {
	Generate(passphrase []byte) (Report, error)
	Save(name string, key Key) error
	SaveSealed(name, passphrase string, key Key) error
	Load(name string) (Key, error)
	LoadSealed(name, passphrase string) (Key, error)
	List() ([]KeyFileInfo, error)
}

// MessageService encrypts and decrypts messages against a tour key.
type MessageService interface {
	Encrypt(plaintext []byte, key Key) (string, error)
	Decrypt(hexText string, key Key) ([]byte, error)
}

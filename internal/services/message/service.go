package message

import (
	"tourcipher/internal/cipher"
	"tourcipher/internal/codec"
	"tourcipher/internal/domain"
)

// Service applies a tour key to messages. It holds no state; the key travels
// with each call.
type Service struct{}

func New() *Service { return &Service{} }

// Encrypt XORs plaintext against the key, extended to cover it, and returns
// the ciphertext as space-separated hex.
func (s *Service) Encrypt(plaintext []byte, key domain.Key) (string, error) {
	ext, err := cipher.Extend(key, len(plaintext))
	if err != nil {
		return "", err
	}
	ct, err := cipher.Transform(plaintext, ext)
	if err != nil {
		return "", err
	}
	return codec.ToHex(ct), nil
}

// Decrypt parses space-separated hex ciphertext and XORs it back to the
// plaintext. Malformed hex surfaces as a *codec.FormatError.
func (s *Service) Decrypt(hexText string, key domain.Key) ([]byte, error) {
	ct, err := codec.FromHex(hexText)
	if err != nil {
		return nil, err
	}
	ext, err := cipher.Extend(key, len(ct))
	if err != nil {
		return nil, err
	}
	return cipher.Transform(ct, ext)
}

// Compile-time assertion that Service implements domain.MessageService.
var _ domain.MessageService = (*Service)(nil)

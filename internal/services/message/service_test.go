package message_test

import (
	"errors"
	"testing"

	"tourcipher/internal/codec"
	"tourcipher/internal/domain"
	"tourcipher/internal/services/keyring"
	"tourcipher/internal/services/message"
	"tourcipher/internal/store"
)

// sampleKey derives the 8×8 key for "samplepassphrase".
func sampleKey(t *testing.T) domain.Key {
	t.Helper()
	svc, err := keyring.New(store.NewFileStore(t.TempDir()), 8)
	if err != nil {
		t.Fatalf("keyring.New: %v", err)
	}
	rep, err := svc.Generate([]byte("samplepassphrase"))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return rep.Key
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	msgs := message.New()
	key := sampleKey(t)
	plaintext := "This is a sample message for encryption."

	hexText, err := msgs.Encrypt([]byte(plaintext), key)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	got, err := msgs.Decrypt(hexText, key)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if string(got) != plaintext {
		t.Fatalf("round trip = %q, want %q", got, plaintext)
	}
}

// The ciphertext for the sample scenario is fixed: same passphrase, same
// board, same message must give the same hex on every run and platform.
func TestEncrypt_KnownCiphertext(t *testing.T) {
	msgs := message.New()
	key := sampleKey(t)

	hexText, err := msgs.Encrypt([]byte("This is a sample message for encryption."), key)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	want := "4d 60 6b 7f 26 7e 7e 27 77 07 45 5d 5f 48 45 5f 10 4c 75 72 " +
		"61 62 6e 7d 02 4e 56 41 1d 52 48 7f 5f 47 5f 6a 66 6a 65 3f"
	if hexText != want {
		t.Fatalf("ciphertext = %q, want %q", hexText, want)
	}
}

func TestEncrypt_EmptyKey(t *testing.T) {
	msgs := message.New()
	if _, err := msgs.Encrypt([]byte("hi"), nil); !errors.Is(err, domain.ErrEmptyKey) {
		t.Fatalf("err = %v, want ErrEmptyKey", err)
	}
}

func TestDecrypt_MalformedHex(t *testing.T) {
	msgs := message.New()
	_, err := msgs.Decrypt("4d 6q", domain.Key{1})
	var fe *codec.FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("err = %v, want *codec.FormatError", err)
	}
}

func TestEncrypt_EmptyMessage(t *testing.T) {
	msgs := message.New()
	hexText, err := msgs.Encrypt(nil, domain.Key{1, 2})
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if hexText != "" {
		t.Fatalf("ciphertext = %q, want empty", hexText)
	}
}

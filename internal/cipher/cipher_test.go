package cipher_test

import (
	"bytes"
	"errors"
	"testing"

	"tourcipher/internal/cipher"
	"tourcipher/internal/domain"
)

func TestExtend_TilesWholeCopies(t *testing.T) {
	key := domain.Key{1, 2, 3}

	ext, err := cipher.Extend(key, 7)
	if err != nil {
		t.Fatalf("Extend: %v", err)
	}
	want := domain.Key{1, 2, 3, 1, 2, 3, 1, 2, 3}
	if len(ext) != len(want) {
		t.Fatalf("extended length = %d, want %d", len(ext), len(want))
	}
	for i := range want {
		if ext[i] != want[i] {
			t.Fatalf("ext[%d] = %d, want %d", i, ext[i], want[i])
		}
	}
}

func TestExtend_ZeroTargetKeepsOneCopy(t *testing.T) {
	ext, err := cipher.Extend(domain.Key{9, 8}, 0)
	if err != nil {
		t.Fatalf("Extend: %v", err)
	}
	if len(ext) != 2 {
		t.Fatalf("extended length = %d, want one full copy", len(ext))
	}
}

func TestExtend_EmptyKey(t *testing.T) {
	if _, err := cipher.Extend(nil, 10); !errors.Is(err, domain.ErrEmptyKey) {
		t.Fatalf("err = %v, want ErrEmptyKey", err)
	}
}

func TestTransform_RoundTrip(t *testing.T) {
	key := domain.Key{25, 8, 2, 12, 6, 23, 13, 7}
	data := []byte("This is a sample message for encryption.")

	ext, err := cipher.Extend(key, len(data))
	if err != nil {
		t.Fatalf("Extend: %v", err)
	}
	ct, err := cipher.Transform(data, ext)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if len(ct) != len(data) {
		t.Fatalf("ciphertext length = %d, want %d", len(ct), len(data))
	}
	pt, err := cipher.Transform(ct, ext)
	if err != nil {
		t.Fatalf("Transform (inverse): %v", err)
	}
	if !bytes.Equal(pt, data) {
		t.Fatalf("round trip mismatch: %q", pt)
	}
}

func TestTransform_MasksToLowByte(t *testing.T) {
	// 300 = 0x12c; only 0x2c takes part in the XOR.
	ct, err := cipher.Transform([]byte{0x00}, domain.Key{300})
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if ct[0] != 0x2c {
		t.Fatalf("ct[0] = %#x, want 0x2c", ct[0])
	}
}

func TestTransform_EmptyKey(t *testing.T) {
	if _, err := cipher.Transform([]byte("x"), nil); !errors.Is(err, domain.ErrEmptyKey) {
		t.Fatalf("err = %v, want ErrEmptyKey", err)
	}
}

package store

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"tourcipher/internal/domain"
)

const (
	keysDir   = "keys"
	rawExt    = ".bin"
	sealedExt = ".sealed"
)

// FileStore persists tour keys under <home>/keys.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

func NewFileStore(home string) *FileStore {
	return &FileStore{dir: filepath.Join(home, keysDir)}
}

// ---------- Raw key files ----------

func (s *FileStore) SaveRaw(name string, key domain.Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(key) == 0 {
		return domain.ErrEmptyKey
	}
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	return writeFile(filepath.Join(s.dir, name+rawExt), encodeKey(key), 0o600)
}

func (s *FileStore) LoadRaw(name string) (domain.Key, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(filepath.Join(s.dir, name+rawExt))
	if err != nil {
		return nil, err
	}
	return decodeKey(name+rawExt, b)
}

// ---------- Sealed key files ----------

func (s *FileStore) SaveSealed(name, passphrase string, key domain.Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(key) == 0 {
		return domain.ErrEmptyKey
	}
	N, r, p := scryptParamsDefault()
	blob, err := seal(passphrase, encodeKey(key), N, r, p)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	return writeFile(filepath.Join(s.dir, name+sealedExt), blob, 0o600)
}

func (s *FileStore) LoadSealed(name, passphrase string) (domain.Key, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(filepath.Join(s.dir, name+sealedExt))
	if err != nil {
		return nil, err
	}
	raw, err := open(passphrase, b)
	if err != nil {
		return nil, err
	}
	return decodeKey(name+sealedExt, raw)
}

// ---------- Listing ----------

// List enumerates saved key files, raw and sealed, sorted by name.
func (s *FileStore) List() ([]domain.KeyFileInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if isNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var out []domain.KeyFileInfo
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		switch name := e.Name(); {
		case strings.HasSuffix(name, rawExt):
			info, err := e.Info()
			if err != nil {
				return nil, err
			}
			out = append(out, domain.KeyFileInfo{
				Name:  strings.TrimSuffix(name, rawExt),
				Cells: int(info.Size() / 4),
			})
		case strings.HasSuffix(name, sealedExt):
			out = append(out, domain.KeyFileInfo{
				Name:   strings.TrimSuffix(name, sealedExt),
				Sealed: true,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// ---------- Flat encoding ----------

// encodeKey lays the key out as little-endian int32 cells, no header.
func encodeKey(key domain.Key) []byte {
	b := make([]byte, 4*len(key))
	for i, v := range key {
		binary.LittleEndian.PutUint32(b[4*i:], uint32(v))
	}
	return b
}

// decodeKey is the inverse; a length that is not a whole number of cells is
// a size mismatch, never a silent truncation.
func decodeKey(file string, b []byte) (domain.Key, error) {
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("%w: %s is %d bytes, not a whole number of int32 cells",
			domain.ErrSizeMismatch, file, len(b))
	}
	key := make(domain.Key, len(b)/4)
	for i := range key {
		key[i] = int32(binary.LittleEndian.Uint32(b[4*i:]))
	}
	return key, nil
}

// Compile-time assertion that FileStore implements domain.KeyStore.
var _ domain.KeyStore = (*FileStore)(nil)

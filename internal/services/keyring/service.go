package keyring

import (
	"fmt"

	"tourcipher/internal/board"
	"tourcipher/internal/domain"
	"tourcipher/internal/seeder"
	"tourcipher/internal/tour"
)

// MaxBoardSize caps the search space. 64×64 already means a 4096-cell tour;
// anything bigger is rejected up front instead of risking an unbounded search.
const MaxBoardSize = 64

// Service manages key derivation and access using a backing store. All keys
// it produces or loads belong to one board size, fixed at construction.
type Service struct {
	size  int
	store domain.KeyStore
}

// New returns a keyring service for size×size boards backed by the given store.
func New(store domain.KeyStore, size int) (*Service, error) {
	if size < 1 {
		return nil, fmt.Errorf("board size must be positive, got %d", size)
	}
	if size > MaxBoardSize {
		return nil, fmt.Errorf("%w: %d exceeds the maximum of %d",
			domain.ErrBoardTooLarge, size, MaxBoardSize)
	}
	return &Service{size: size, store: store}, nil
}

func (s *Service) BoardSize() int { return s.size }

// Generate derives the start cell from the passphrase, runs the tour search
// and returns the completed key with its report values. A failed search
// surfaces as domain.ErrInfeasible; no state is retained from the attempt.
func (s *Service) Generate(passphrase []byte) (domain.Report, error) {
	d := seeder.Derive(passphrase, s.size)
	key, err := tour.Solve(board.New(s.size), d.Start)
	if err != nil {
		return domain.Report{}, err
	}
	return domain.Report{
		Key:       key,
		HexDigest: d.Digest.Hex(),
		Start:     d.Start,
		BoardSize: s.size,
	}, nil
}

// Save writes key as a raw key file.
func (s *Service) Save(name string, key domain.Key) error {
	return s.store.SaveRaw(name, key)
}

// SaveSealed writes key encrypted under the passphrase.
func (s *Service) SaveSealed(name, passphrase string, key domain.Key) error {
	return s.store.SaveSealed(name, passphrase, key)
}

// Load reads a raw key file and checks it against the session board size.
func (s *Service) Load(name string) (domain.Key, error) {
	key, err := s.store.LoadRaw(name)
	if err != nil {
		return nil, err
	}
	return s.checkSize(key)
}

// LoadSealed reads a sealed key file and checks it against the session board size.
func (s *Service) LoadSealed(name, passphrase string) (domain.Key, error) {
	key, err := s.store.LoadSealed(name, passphrase)
	if err != nil {
		return nil, err
	}
	return s.checkSize(key)
}

// List enumerates saved key files.
func (s *Service) List() ([]domain.KeyFileInfo, error) { return s.store.List() }

// checkSize rejects keys whose length cannot belong to the session board.
func (s *Service) checkSize(key domain.Key) (domain.Key, error) {
	if want := s.size * s.size; len(key) != want {
		return nil, fmt.Errorf("%w: key has %d cells, want %d for a %dx%d board",
			domain.ErrSizeMismatch, len(key), want, s.size, s.size)
	}
	return key, nil
}

// Compile-time assertion that Service implements domain.KeyringService.
var _ domain.KeyringService = (*Service)(nil)

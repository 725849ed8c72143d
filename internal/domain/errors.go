package domain

import "errors"

var (
	// ErrInfeasible is returned when the tour search exhausts every branch
	// without visiting all cells. It is an expected outcome for small boards
	// and unlucky start cells, not a failure of the search itself.
	ErrInfeasible = errors.New("no complete knight's tour exists from this start")

	// ErrEmptyKey is returned when a cipher operation runs with no key material.
	ErrEmptyKey = errors.New("no key material present")

	// ErrSizeMismatch is returned when loaded key data is inconsistent with
	// the board size or the key-file format.
	ErrSizeMismatch = errors.New("key size mismatch")

	// ErrBoardTooLarge rejects board sizes beyond the supported maximum.
	ErrBoardTooLarge = errors.New("board size too large")
)

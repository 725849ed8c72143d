package tour_test

import (
	"errors"
	"testing"

	"tourcipher/internal/board"
	"tourcipher/internal/domain"
	"tourcipher/internal/tour"
)

// checkPermutation fails unless key is a permutation of 0..cells-1.
func checkPermutation(t *testing.T, key domain.Key, cells int) {
	t.Helper()
	if len(key) != cells {
		t.Fatalf("key length = %d, want %d", len(key), cells)
	}
	seen := make([]bool, cells)
	for i, id := range key {
		if id < 0 || int(id) >= cells {
			t.Fatalf("key[%d] = %d out of range [0,%d)", i, id, cells)
		}
		if seen[id] {
			t.Fatalf("key[%d] = %d repeated", i, id)
		}
		seen[id] = true
	}
}

func TestSolve_SingleCell(t *testing.T) {
	key, err := tour.Solve(board.New(1), domain.Position{})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(key) != 1 || key[0] != 0 {
		t.Fatalf("key = %v, want [0]", key)
	}
}

func TestSolve_TinyBoardsInfeasible(t *testing.T) {
	for _, size := range []int{2, 3} {
		b := board.New(size)
		for r := 0; r < size; r++ {
			for c := 0; c < size; c++ {
				_, err := tour.Solve(b, domain.Position{Row: r, Col: c})
				if !errors.Is(err, domain.ErrInfeasible) {
					t.Fatalf("size %d start (%d,%d): err = %v, want ErrInfeasible", size, r, c, err)
				}
			}
		}
	}
}

func TestSolve_PermutationOnLargerBoards(t *testing.T) {
	for _, size := range []int{5, 6, 7, 8} {
		b := board.New(size)
		key, err := tour.Solve(b, domain.Position{Row: 0, Col: 0})
		if err != nil {
			t.Fatalf("size %d: Solve: %v", size, err)
		}
		checkPermutation(t, key, size*size)
		if key[0] != 0 {
			t.Fatalf("size %d: first cell = %d, want the start cell 0", size, key[0])
		}
	}
}

func TestSolve_Deterministic(t *testing.T) {
	b := board.New(8)
	start := domain.Position{Row: 3, Col: 1}

	first, err := tour.Solve(b, start)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	second, err := tour.Solve(b, start)
	if err != nil {
		t.Fatalf("Solve (repeat): %v", err)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("runs diverge at %d: %d vs %d", i, first[i], second[i])
		}
	}
}

// The exact visit order is part of the key format. This sequence is the tour
// from (3,1) on an 8×8 board, the start cell "samplepassphrase" hashes to.
func TestSolve_KnownSequence(t *testing.T) {
	want := domain.Key{
		25, 8, 2, 12, 6, 23, 13, 7, 22, 39, 54, 60, 50, 56, 41, 58,
		48, 33, 16, 1, 18, 3, 9, 24, 34, 40, 57, 51, 61, 55, 38, 28,
		45, 62, 47, 30, 15, 5, 11, 17, 0, 10, 4, 19, 29, 14, 31, 21,
		27, 44, 59, 49, 32, 42, 52, 35, 20, 37, 43, 26, 36, 53, 63, 46,
	}
	key, err := tour.Solve(board.New(8), domain.Position{Row: 3, Col: 1})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(key) != len(want) {
		t.Fatalf("key length = %d, want %d", len(key), len(want))
	}
	for i := range want {
		if key[i] != want[i] {
			t.Fatalf("key[%d] = %d, want %d", i, key[i], want[i])
		}
	}
}

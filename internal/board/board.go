// Package board models the N×N grid the knight tours.
package board

// Board is an N×N grid where cell (r,c) holds the unique identifier r·N+c.
// Identifiers are immutable for the board's lifetime.
type Board struct {
	size  int
	cells []int32
}

// New builds a size×size board with row-major identifiers 0..size²-1.
// size must be positive.
func New(size int) *Board {
	cells := make([]int32, size*size)
	for i := range cells {
		cells[i] = int32(i)
	}
	return &Board{size: size, cells: cells}
}

func (b *Board) Size() int { return b.size }

// Cells returns the total cell count, size².
func (b *Board) Cells() int { return len(b.cells) }

// Cell returns the identifier at (r,c). Callers keep coordinates in bounds.
func (b *Board) Cell(r, c int) int32 { return b.cells[r*b.size+c] }

// Visited tracks which cells the knight has entered during one tour attempt.
// It always holds exactly as many marks as the current search depth.
type Visited struct {
	size int
	seen []bool
}

// NewVisited returns an all-false grid parallel to a size×size board.
func NewVisited(size int) *Visited {
	return &Visited{size: size, seen: make([]bool, size*size)}
}

// Open reports whether (r,c) is in bounds and not yet visited.
func (v *Visited) Open(r, c int) bool {
	return r >= 0 && r < v.size && c >= 0 && c < v.size && !v.seen[r*v.size+c]
}

func (v *Visited) Mark(r, c int)   { v.seen[r*v.size+c] = true }
func (v *Visited) Unmark(r, c int) { v.seen[r*v.size+c] = false }

// Reset clears every mark for a fresh attempt.
func (v *Visited) Reset() {
	for i := range v.seen {
		v.seen[i] = false
	}
}

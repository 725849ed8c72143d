// Package tour implements the backtracking knight's-tour search that turns a
// start cell into key material.
//
// Candidate moves are ordered by Warnsdorff's rule: fewest onward options
// first. The ordering, including its tie-break on the fixed offset index,
// determines the produced key. Existing saved keys depend on it, so it must
// not change between versions.
package tour

import (
	"sort"

	"tourcipher/internal/board"
	"tourcipher/internal/domain"
)

// The eight knight offsets in fixed enumeration order. The index into these
// tables is the tie-breaker when two candidates have equal degree.
var (
	moveRow = [8]int{2, 1, -1, -2, -2, -1, 1, 2}
	moveCol = [8]int{1, 2, 2, 1, -1, -2, -2, -1}
)

// search owns all mutable state for one tour attempt. Nothing escapes it
// until the attempt succeeds, so repeated generations cannot alias state.
type search struct {
	board   *board.Board
	visited *board.Visited
	key     domain.Key
}

// Solve runs the search from start and returns the completed key, a
// permutation of all cell identifiers in visit order. It returns
// domain.ErrInfeasible when every branch is exhausted without covering the
// board; the search always terminates.
func Solve(b *board.Board, start domain.Position) (domain.Key, error) {
	s := &search{
		board:   b,
		visited: board.NewVisited(b.Size()),
		key:     make(domain.Key, 0, b.Cells()),
	}
	if !s.step(start.Row, start.Col, 1) {
		return nil, domain.ErrInfeasible
	}
	return s.key, nil
}

// step visits (r,c) as move number move and recurses depth-first. The first
// branch to complete the tour wins; exhaustion unmarks the cell, pops it
// from the key and backtracks.
func (s *search) step(r, c, move int) bool {
	s.visited.Mark(r, c)
	s.key = append(s.key, s.board.Cell(r, c))

	if move == s.board.Cells() {
		return true
	}

	type candidate struct {
		degree int
		dir    int
	}
	cands := make([]candidate, 0, 8)
	for i := 0; i < 8; i++ {
		nr, nc := r+moveRow[i], c+moveCol[i]
		if s.visited.Open(nr, nc) {
			cands = append(cands, candidate{degree: s.degree(nr, nc), dir: i})
		}
	}
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].degree != cands[j].degree {
			return cands[i].degree < cands[j].degree
		}
		return cands[i].dir < cands[j].dir
	})

	for _, cand := range cands {
		if s.step(r+moveRow[cand.dir], c+moveCol[cand.dir], move+1) {
			return true
		}
	}

	s.visited.Unmark(r, c)
	s.key = s.key[:len(s.key)-1]
	return false
}

// degree counts the open onward moves from (r,c). The count runs against the
// visited grid as it stands: (r,c) itself is not marked while counting.
func (s *search) degree(r, c int) int {
	n := 0
	for i := 0; i < 8; i++ {
		if s.visited.Open(r+moveRow[i], c+moveCol[i]) {
			n++
		}
	}
	return n
}

package filler

import (
	"slices"

	"github.com/samber/lo"

	"github.com/domino14/crossfill/board"
)

const (
	// Runs of this length or shorter are never searched directly; their
	// letters arrive as side effects of crossing fills.
	minPatternLength = 2
	// Bound on how many candidates get the look-ahead score per step.
	maxWordPoolLength = 10
)

// A Slot is one maximal run of white cells in one direction: the solver's
// unit of assignment. It owns a mutable candidate domain and remembers the
// search step at which it was last filled (stamp 0 = unfilled). Slots hold
// only coordinates into the grid arena, never cell pointers.
type Slot struct {
	id     int
	dir    board.Direction
	row    int
	col    int
	length int

	grid   *board.Grid
	pool   []string // full dictionary pool for this length, never mutated
	domain []string
	stamp  int
}

func newSlot(ext board.SlotExtent, grid *board.Grid, pool []string) *Slot {
	return &Slot{
		id:     ext.ID,
		dir:    ext.Dir,
		row:    ext.Row,
		col:    ext.Col,
		length: ext.Len,
		grid:   grid,
		pool:   pool,
		domain: slices.Clone(pool),
	}
}

func (s *Slot) Count() int {
	return len(s.domain)
}

// cellCoords returns the grid position of the i-th cell of the slot.
func (s *Slot) cellCoords(i int) (row, col int) {
	if s.dir == board.HorizontalDirection {
		return s.row, s.col + i
	}
	return s.row + i, s.col
}

// crossingIndexes returns the index of the shared cell within s and within
// other. The slots run in opposite directions and intersect in exactly one
// cell, so both indexes fall out of the anchor coordinates.
func (s *Slot) crossingIndexes(other *Slot) (selfIdx, otherIdx int) {
	if s.dir == board.HorizontalDirection {
		return other.col - s.col, s.row - other.row
	}
	return other.row - s.row, s.col - other.col
}

// FilterOptions returns the candidates of s whose letter at the cell
// shared with other agrees with word, a candidate for other. Pure; s is
// not mutated.
func (s *Slot) FilterOptions(word string, other *Slot) []string {
	selfIdx, otherIdx := s.crossingIndexes(other)
	want := word[otherIdx]
	return lo.Filter(s.domain, func(cand string, _ int) bool {
		return cand[selfIdx] == want
	})
}

func (s *Slot) matchesFixedLetters(cand string, _ int) bool {
	for i := 0; i < s.length; i++ {
		r, c := s.cellCoords(i)
		if l := s.grid.Letter(r, c); l != board.BlankLetter && cand[i] != l {
			return false
		}
	}
	return true
}

// PruneOptions narrows the current domain to candidates matching the
// letters already fixed in the slot's cells; unfixed positions are
// wildcards. Words removed by earlier fills stay removed.
func (s *Slot) PruneOptions() {
	s.domain = lo.Filter(s.domain, s.matchesFixedLetters)
}

// RestoreOptions rebuilds the domain from the full dictionary pool,
// filtered by whatever letters are currently fixed in the slot's cells.
func (s *Slot) RestoreOptions() {
	s.domain = lo.Filter(s.pool, s.matchesFixedLetters)
}

// UpdateOptions replaces the domain outright. The solver uses it to apply
// a forward-checked domain after a neighboring fill.
func (s *Slot) UpdateOptions(domain []string) {
	s.domain = domain
}

// Fill writes word into the slot's cells at the given search step. The
// word is removed from the slot's own domain so a later retry at this
// position cannot pick it again.
func (s *Slot) Fill(word string, step int) {
	s.stamp = step
	if i := slices.Index(s.domain, word); i >= 0 {
		s.domain = slices.Delete(s.domain, i, i+1)
	}
	for i := 0; i < s.length; i++ {
		r, c := s.cellCoords(i)
		s.grid.ClaimLetter(r, c, word[i])
	}
}

// Undo resets the slot to unfilled, releasing each cell's claim. It
// returns the ids of crossing slots whose shared cell became fully blank;
// those slots may now admit more candidates.
func (s *Slot) Undo() []int {
	s.stamp = 0
	var freed []int
	for i := 0; i < s.length; i++ {
		r, c := s.cellCoords(i)
		if s.grid.ReleaseLetter(r, c) {
			if cross := s.grid.SlotAt(r, c, s.dir.Opposite()); cross != board.NoSlot {
				freed = append(freed, cross)
			}
		}
	}
	return lo.Uniq(freed)
}

// MarkConflicted flags every cell of the slot. The backjump target search
// uses the marks to find slots that have dead-ended before.
func (s *Slot) MarkConflicted() {
	for i := 0; i < s.length; i++ {
		s.grid.MarkConflicted(s.cellCoords(i))
	}
}

// Conflicted reports whether any of the slot's cells carries a conflict
// mark.
func (s *Slot) Conflicted() bool {
	for i := 0; i < s.length; i++ {
		if s.grid.IsConflicted(s.cellCoords(i)) {
			return true
		}
	}
	return false
}

// A Dependent is one cell's view of the slot crossing it there.
type Dependent struct {
	FillCount uint8
	SlotID    int
}

// Dependents enumerates, cell by cell, the crossing slot and that cell's
// current fill count.
func (s *Slot) Dependents() []Dependent {
	deps := make([]Dependent, 0, s.length)
	for i := 0; i < s.length; i++ {
		r, c := s.cellCoords(i)
		deps = append(deps, Dependent{
			FillCount: s.grid.FillCount(r, c),
			SlotID:    s.grid.SlotAt(r, c, s.dir.Opposite()),
		})
	}
	return deps
}

// CurrentWord reads the slot's letters off the grid. Blank cells read as
// the blank placeholder.
func (s *Slot) CurrentWord() string {
	buf := make([]byte, s.length)
	for i := 0; i < s.length; i++ {
		l := s.grid.Letter(s.cellCoords(i))
		if l == board.BlankLetter {
			l = byte(board.BlankCellRune)
		}
		buf[i] = l
	}
	return string(buf)
}

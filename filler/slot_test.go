package filler

import (
	"slices"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/crossfill/lexicon"
)

// seqRand replays a fixed sequence of draws; values are taken mod n.
type seqRand struct {
	vals []int
	i    int
}

func (s *seqRand) Intn(n int) int {
	if len(s.vals) == 0 {
		return 0
	}
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v % n
}

// crossGrid: a horizontal 3-slot across the top crossing a vertical 3-slot
// down the middle column. Slot ids: 0 = top row, 4 = middle column.
const crossGrid = "---\n#-#\n#-#"

var crossWords = []string{"CAT", "ARC", "DOG", "ACE"}

func mustPuzzle(t *testing.T, gridText string, words []string, rng Randomizer) *Puzzle {
	t.Helper()
	p, err := NewPuzzle(gridText, lexicon.NewLexicon("test", words), rng)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestFilterOptions(t *testing.T) {
	is := is.New(t)
	p := mustPuzzle(t, crossGrid, crossWords, &seqRand{})
	across, down := p.slots[0], p.slots[4]

	// down candidates whose first letter matches CAT's middle letter
	is.Equal(down.FilterOptions("CAT", across), []string{"ARC", "ACE"})
	is.Equal(len(down.FilterOptions("DOG", across)), 0)
	// across candidates whose middle letter matches ACE's first letter
	is.Equal(across.FilterOptions("ACE", down), []string{"CAT"})
}

func TestFillUndoExactInverse(t *testing.T) {
	is := is.New(t)
	p := mustPuzzle(t, crossGrid, crossWords, &seqRand{})
	s := p.slots[0]

	renderBefore := p.Render()
	domainBefore := slices.Clone(s.domain)

	s.Fill("CAT", 1)
	is.Equal(s.stamp, 1)
	is.Equal(p.grid.Letter(0, 0), byte('C'))
	is.Equal(p.grid.FillCount(0, 1), uint8(1))
	is.True(!slices.Contains(s.domain, "CAT"))

	freed := s.Undo()
	is.Equal(s.stamp, 0)
	is.Equal(p.Render(), renderBefore)
	is.Equal(p.grid.FillCount(0, 0), uint8(0))
	// all three crossing slots lost their only letter
	is.Equal(freed, []int{3, 4, 5})
	// the filled word stays removed until a restore
	is.Equal(s.domain, slices.DeleteFunc(domainBefore, func(w string) bool {
		return w == "CAT"
	}))
}

func TestSharedCellFillCounts(t *testing.T) {
	is := is.New(t)
	p := mustPuzzle(t, crossGrid, crossWords, &seqRand{})
	across, down := p.slots[0], p.slots[4]

	across.Fill("CAT", 1)
	down.Fill("ACE", 2)
	is.Equal(p.grid.FillCount(0, 1), uint8(2))

	freed := across.Undo()
	// the shared cell still has the down slot's claim
	is.Equal(p.grid.Letter(0, 1), byte('A'))
	is.Equal(p.grid.FillCount(0, 1), uint8(1))
	is.Equal(freed, []int{3, 5})
}

func TestPruneAndRestoreOptions(t *testing.T) {
	is := is.New(t)
	p := mustPuzzle(t, crossGrid, crossWords, &seqRand{})
	across, down := p.slots[0], p.slots[4]

	across.Fill("CAT", 1)

	down.UpdateOptions([]string{"DOG"})
	down.RestoreOptions()
	is.Equal(down.domain, []string{"ARC", "ACE"})

	down.UpdateOptions(slices.Clone(crossWords))
	down.PruneOptions()
	is.Equal(down.domain, []string{"ARC", "ACE"})

	// with no letters fixed, restore yields the whole pool
	across.Undo()
	down.RestoreOptions()
	is.Equal(down.domain, crossWords)
}

func TestDependents(t *testing.T) {
	is := is.New(t)
	p := mustPuzzle(t, crossGrid, crossWords, &seqRand{})
	across, down := p.slots[0], p.slots[4]

	is.Equal(across.Dependents(), []Dependent{
		{FillCount: 0, SlotID: 3},
		{FillCount: 0, SlotID: 4},
		{FillCount: 0, SlotID: 5},
	})

	down.Fill("ACE", 1)
	is.Equal(across.Dependents(), []Dependent{
		{FillCount: 0, SlotID: 3},
		{FillCount: 1, SlotID: 4},
		{FillCount: 0, SlotID: 5},
	})
}

func TestConflictMarksReadThroughCells(t *testing.T) {
	is := is.New(t)
	p := mustPuzzle(t, crossGrid, crossWords, &seqRand{})
	across, down := p.slots[0], p.slots[4]

	is.True(!across.Conflicted())
	down.MarkConflicted()
	// the shared cell carries the mark into the crossing slot
	is.True(across.Conflicted())
}

func TestCurrentWord(t *testing.T) {
	is := is.New(t)
	p := mustPuzzle(t, crossGrid, crossWords, &seqRand{})
	s := p.slots[0]
	is.Equal(s.CurrentWord(), "---")
	s.Fill("DOG", 1)
	is.Equal(s.CurrentWord(), "DOG")
}

// Package filler implements the crossword fill search: constraint
// propagation over slot domains with minimum-remaining-values slot
// selection, look-ahead candidate scoring, and conflict-directed
// backjumping out of dead ends.
package filler

import (
	"github.com/domino14/crossfill/board"
	"github.com/domino14/crossfill/lexicon"
)

// Puzzle owns the grid arena and every slot for one solve attempt.
// Attempts are not reused; build a fresh Puzzle for each try.
type Puzzle struct {
	grid     *board.Grid
	slots    []*Slot // indexed by slot id, horizontal then vertical
	lex      *lexicon.Lexicon
	rng      Randomizer
	steps    int
	maxSteps int
}

func NewPuzzle(gridText string, lex *lexicon.Lexicon, rng Randomizer) (*Puzzle, error) {
	grid, extents, err := board.ParseGrid(gridText)
	if err != nil {
		return nil, err
	}
	p := &Puzzle{grid: grid, lex: lex, rng: rng}
	for _, ext := range extents {
		p.slots = append(p.slots, newSlot(ext, grid, lex.Pool(ext.Len)))
	}
	return p, nil
}

// SetMaxSteps bounds the number of solver steps per attempt; an attempt
// that exceeds the bound fails. Zero disables the bound.
func (p *Puzzle) SetMaxSteps(n int) {
	p.maxSteps = n
}

// Steps reports how many solver steps the last Solve call took.
func (p *Puzzle) Steps() int {
	return p.steps
}

func (p *Puzzle) Render() string {
	return p.grid.Render()
}

// Check re-verifies a solved grid: every searched slot's word must be in
// the dictionary pool for its length. It returns the offending words.
// Anything showing up here points at a domain-maintenance bug.
func (p *Puzzle) Check() []string {
	var bad []string
	for _, s := range p.slots {
		if s.length <= minPatternLength {
			continue
		}
		if w := s.CurrentWord(); !p.lex.HasWord(w) {
			bad = append(bad, w)
		}
	}
	return bad
}

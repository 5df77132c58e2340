package board

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

func TestParseGridGeometry(t *testing.T) {
	is := is.New(t)
	g, extents, err := ParseGrid("--#\n---\n")
	is.NoErr(err)
	rows, cols := g.Dims()
	is.Equal(rows, 2)
	is.Equal(cols, 3)
	is.True(g.IsBlack(0, 2))
	is.True(!g.IsBlack(1, 2))

	assert.Equal(t, []SlotExtent{
		{ID: 0, Dir: HorizontalDirection, Row: 0, Col: 0, Len: 2},
		{ID: 1, Dir: HorizontalDirection, Row: 1, Col: 0, Len: 3},
		{ID: 2, Dir: VerticalDirection, Row: 0, Col: 0, Len: 2},
		{ID: 3, Dir: VerticalDirection, Row: 0, Col: 1, Len: 2},
		{ID: 4, Dir: VerticalDirection, Row: 1, Col: 2, Len: 1},
	}, extents)
}

func TestParseGridSlotOwnership(t *testing.T) {
	is := is.New(t)
	g, _, err := ParseGrid("--#\n---\n")
	is.NoErr(err)
	is.Equal(g.SlotAt(0, 0, HorizontalDirection), 0)
	is.Equal(g.SlotAt(0, 0, VerticalDirection), 2)
	is.Equal(g.SlotAt(1, 2, HorizontalDirection), 1)
	is.Equal(g.SlotAt(1, 2, VerticalDirection), 4)
	is.Equal(g.SlotAt(0, 2, HorizontalDirection), NoSlot)
	is.Equal(g.SlotAt(0, 2, VerticalDirection), NoSlot)
}

func TestParseGridErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"only newlines", "\n\n"},
		{"ragged", "---\n--\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := ParseGrid(tc.text)
			assert.Error(t, err)
		})
	}
}

func TestClaimAndReleaseLetter(t *testing.T) {
	is := is.New(t)
	g, _, err := ParseGrid("---\n")
	is.NoErr(err)

	g.ClaimLetter(0, 1, 'A')
	is.Equal(g.Letter(0, 1), byte('A'))
	is.Equal(g.FillCount(0, 1), uint8(1))

	// second owner claims the same cell
	g.ClaimLetter(0, 1, 'A')
	is.Equal(g.FillCount(0, 1), uint8(2))

	is.True(!g.ReleaseLetter(0, 1))
	is.Equal(g.Letter(0, 1), byte('A'))
	is.True(g.ReleaseLetter(0, 1))
	is.Equal(g.Letter(0, 1), BlankLetter)
	is.Equal(g.FillCount(0, 1), uint8(0))
}

func TestRender(t *testing.T) {
	is := is.New(t)
	g, _, err := ParseGrid("--#\n---\n")
	is.NoErr(err)
	is.Equal(g.Render(), "--#\n---")

	g.ClaimLetter(0, 0, 'H')
	g.ClaimLetter(0, 1, 'I')
	is.Equal(g.Render(), "HI#\n---")
}

func TestConflictMarks(t *testing.T) {
	is := is.New(t)
	g, _, err := ParseGrid("---\n")
	is.NoErr(err)
	is.True(!g.IsConflicted(0, 2))
	g.MarkConflicted(0, 2)
	is.True(g.IsConflicted(0, 2))
}

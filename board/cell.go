package board

import "fmt"

type Direction uint8

const (
	HorizontalDirection Direction = iota
	VerticalDirection
)

func (d Direction) String() string {
	if d == HorizontalDirection {
		return "(horizontal)"
	} else if d == VerticalDirection {
		return "(vertical)"
	}
	return "none"
}

func (d Direction) Opposite() Direction {
	if d == HorizontalDirection {
		return VerticalDirection
	}
	return HorizontalDirection
}

// NoSlot marks a cell position with no owning slot in a direction. Only
// black cells carry it; every white cell belongs to exactly one slot per
// direction, even if that slot is a single cell long.
const NoSlot = -1

// BlankLetter is the letter value of a white cell no slot has written to.
const BlankLetter byte = 0

// A Cell is a single square in the grid arena. It records its letter, the
// ids of the horizontal and vertical slots that own it, and how many of
// those slots currently claim a letter here.
type Cell struct {
	letter     byte
	hSlot      int
	vSlot      int
	fillCount  uint8
	black      bool
	conflicted bool
}

func (c Cell) String() string {
	if c.black {
		return "<black>"
	}
	return fmt.Sprintf("<%q h%d v%d n%d>", c.letter, c.hSlot, c.vSlot, c.fillCount)
}

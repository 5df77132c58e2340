// Package board has the crossword grid arena. The Grid owns every Cell by
// (row, col) index; slots elsewhere hold only coordinates into it, never
// cell pointers.
package board

import (
	"fmt"
	"strings"
)

const (
	BlackCellRune = '#'
	BlankCellRune = '-'
)

// A SlotExtent describes one maximal run of white cells in one direction,
// as found by ParseGrid. Extents are numbered with a single id space,
// horizontal slots first in row-major order, then vertical slots in
// column-major order.
type SlotExtent struct {
	ID  int
	Dir Direction
	Row int
	Col int
	Len int
}

// Grid is the cell arena for one puzzle. It is mutated in place for the
// lifetime of one solve attempt and discarded afterwards.
type Grid struct {
	rows  int
	cols  int
	cells []Cell
}

// ParseGrid builds a Grid from raw puzzle text: one row per line, '#' for a
// black cell, any other character for a white cell to be solved. It returns
// the grid and the slot extents, horizontal first.
func ParseGrid(text string) (*Grid, []SlotExtent, error) {
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("puzzle grid is empty")
	}
	cols := len(rows[0])
	for i, row := range rows {
		if len(row) != cols {
			return nil, nil, fmt.Errorf(
				"ragged puzzle grid: row %d has %d cells, expected %d",
				i, len(row), cols)
		}
	}

	g := &Grid{rows: len(rows), cols: cols, cells: make([]Cell, len(rows)*cols)}
	for r, row := range rows {
		for c := 0; c < cols; c++ {
			cell := g.at(r, c)
			cell.hSlot = NoSlot
			cell.vSlot = NoSlot
			cell.black = row[c] == BlackCellRune
		}
	}

	var extents []SlotExtent
	nextID := 0
	// Horizontal runs, row-major.
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.at(r, c).black || (c > 0 && !g.at(r, c-1).black) {
				continue
			}
			length := 0
			for c+length < g.cols && !g.at(r, c+length).black {
				g.at(r, c+length).hSlot = nextID
				length++
			}
			extents = append(extents, SlotExtent{
				ID: nextID, Dir: HorizontalDirection, Row: r, Col: c, Len: length})
			nextID++
		}
	}
	// Vertical runs, column-major.
	for c := 0; c < g.cols; c++ {
		for r := 0; r < g.rows; r++ {
			if g.at(r, c).black || (r > 0 && !g.at(r-1, c).black) {
				continue
			}
			length := 0
			for r+length < g.rows && !g.at(r+length, c).black {
				g.at(r+length, c).vSlot = nextID
				length++
			}
			extents = append(extents, SlotExtent{
				ID: nextID, Dir: VerticalDirection, Row: r, Col: c, Len: length})
			nextID++
		}
	}
	return g, extents, nil
}

func (g *Grid) at(row, col int) *Cell {
	return &g.cells[row*g.cols+col]
}

func (g *Grid) Dims() (rows, cols int) {
	return g.rows, g.cols
}

func (g *Grid) IsBlack(row, col int) bool {
	return g.at(row, col).black
}

func (g *Grid) Letter(row, col int) byte {
	return g.at(row, col).letter
}

func (g *Grid) FillCount(row, col int) uint8 {
	return g.at(row, col).fillCount
}

// SlotAt returns the id of the slot owning this cell in the given
// direction, or NoSlot for a black cell.
func (g *Grid) SlotAt(row, col int, dir Direction) int {
	if dir == HorizontalDirection {
		return g.at(row, col).hSlot
	}
	return g.at(row, col).vSlot
}

// ClaimLetter writes a letter into a cell on behalf of one of its owning
// slots. A second claim on the same cell must carry the same letter; the
// filler guarantees that through domain filtering.
func (g *Grid) ClaimLetter(row, col int, letter byte) {
	cell := g.at(row, col)
	cell.letter = letter
	cell.fillCount++
}

// ReleaseLetter drops one slot's claim on a cell. The letter is blanked
// only when the last claim is released; it reports whether that happened.
func (g *Grid) ReleaseLetter(row, col int) bool {
	cell := g.at(row, col)
	cell.fillCount--
	if cell.fillCount == 0 {
		cell.letter = BlankLetter
		return true
	}
	return false
}

func (g *Grid) MarkConflicted(row, col int) {
	g.at(row, col).conflicted = true
}

func (g *Grid) IsConflicted(row, col int) bool {
	return g.at(row, col).conflicted
}

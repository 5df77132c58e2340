package board

import "strings"

// Render draws the grid as rows of characters: '#' for black cells, '-'
// for blank white cells, the letter otherwise.
func (g *Grid) Render() string {
	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < g.cols; c++ {
			cell := g.at(r, c)
			switch {
			case cell.black:
				sb.WriteRune(BlackCellRune)
			case cell.letter == BlankLetter:
				sb.WriteRune(BlankCellRune)
			default:
				sb.WriteByte(cell.letter)
			}
		}
	}
	return sb.String()
}

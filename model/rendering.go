package model

import "fmt"

const (
	gridPosAlive = "#"
	gridPosDead  = " "

	instructions = "Press any key to stop"
)

// Canvas is a fixed-size character display the renderer draws frames on.
// Writes outside the canvas are clipped.
type Canvas interface {
	Size() (rows, cols int)
	Clear()
	DrawString(row, col int, s string)
	Show()
}

// TerminalRenderer draws a generation with its captions
type TerminalRenderer struct {
	Title  string
	Footer string
}

// Display renders the grid, the captions and the step counter, then commits the frame
func (r *TerminalRenderer) Display(c Canvas, g *Grid, step int) {
	c.Clear()

	for row := range g.height {
		for col := range g.width {
			if g.cells[row][col] {
				c.DrawString(row, col, gridPosAlive)
			} else {
				c.DrawString(row, col, gridPosDead)
			}
		}
	}

	rows, cols := c.Size()
	c.DrawString(rows-1, 0, r.Footer)
	c.DrawString(0, 0, r.Title)
	c.DrawString(1, 0, fmt.Sprintf("Step %d", step))
	c.DrawString(0, max(0, cols-len(instructions)), instructions)

	c.Show()
}

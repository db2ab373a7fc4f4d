package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/gosuri/uilive"
	"github.com/pkg/errors"
)

// TextDisplay renders frames as plain text, each frame overwriting the previous one.
// It has no keyboard, runs using it must be bounded.
type TextDisplay struct {
	rows, cols int
	buf        [][]rune
	writer     *uilive.Writer
	err        error
}

// NewTextDisplay creates a rows x cols display writing to out
func NewTextDisplay(out io.Writer, rows, cols int) *TextDisplay {
	w := uilive.New()
	w.Out = out

	buf := make([][]rune, rows)
	for i := range buf {
		buf[i] = make([]rune, cols)
	}
	d := &TextDisplay{rows: rows, cols: cols, buf: buf, writer: w}
	d.Clear()
	return d
}

func (d *TextDisplay) Size() (rows, cols int) {
	return d.rows, d.cols
}

func (d *TextDisplay) Clear() {
	for _, line := range d.buf {
		for i := range line {
			line[i] = ' '
		}
	}
}

// DrawString writes s starting at (row, col), one rune per cell
func (d *TextDisplay) DrawString(row, col int, s string) {
	if row < 0 || row >= d.rows {
		return
	}
	for i, r := range []rune(s) {
		x := col + i
		if x < 0 || x >= d.cols {
			continue
		}
		d.buf[row][x] = r
	}
}

// Show flushes the frame. The first write error is kept and reported by Err.
func (d *TextDisplay) Show() {
	var sb strings.Builder
	for _, line := range d.buf {
		sb.WriteString(strings.TrimRight(string(line), " "))
		sb.WriteByte('\n')
	}
	if _, err := fmt.Fprint(d.writer, sb.String()); err != nil && d.err == nil {
		d.err = errors.Wrap(err, "[Show] failed to buffer frame")
	}
	if err := d.writer.Flush(); err != nil && d.err == nil {
		d.err = errors.Wrap(err, "[Show] failed to flush frame")
	}
}

// Frame returns the current buffer contents, one string per row
func (d *TextDisplay) Frame() []string {
	lines := make([]string, d.rows)
	for i, line := range d.buf {
		lines[i] = string(line)
	}
	return lines
}

func (d *TextDisplay) HideCursor() {}

func (d *TextDisplay) KeyPressed() bool {
	return false
}

func (d *TextDisplay) Close() {}

// Err returns the first error hit while writing frames
func (d *TextDisplay) Err() error {
	return d.err
}

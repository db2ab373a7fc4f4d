package display

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// TcellDisplay draws frames on the terminal through tcell
type TcellDisplay struct {
	screen tcell.Screen
	style  tcell.Style
}

// NewTcellDisplay takes over the terminal
func NewTcellDisplay() (*TcellDisplay, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "[NewTcellDisplay] failed to create screen")
	}
	if err = s.Init(); err != nil {
		return nil, errors.Wrap(err, "[NewTcellDisplay] failed to initialize screen")
	}
	return NewTcellDisplayFromScreen(s), nil
}

// NewTcellDisplayFromScreen wraps an already initialized screen
func NewTcellDisplayFromScreen(s tcell.Screen) *TcellDisplay {
	style := tcell.StyleDefault
	s.SetStyle(style)
	return &TcellDisplay{screen: s, style: style}
}

// Size returns the terminal size as rows and columns
func (d *TcellDisplay) Size() (rows, cols int) {
	w, h := d.screen.Size()
	return h, w
}

func (d *TcellDisplay) Clear() {
	d.screen.Clear()
}

// DrawString writes s starting at (row, col), one rune per cell
func (d *TcellDisplay) DrawString(row, col int, s string) {
	rows, cols := d.Size()
	if row < 0 || row >= rows {
		return
	}
	for i, r := range []rune(s) {
		x := col + i
		if x < 0 || x >= cols {
			continue
		}
		d.screen.SetContent(x, row, r, nil, d.style)
	}
}

func (d *TcellDisplay) Show() {
	d.screen.Show()
}

func (d *TcellDisplay) HideCursor() {
	d.screen.HideCursor()
}

// KeyPressed drains queued events without blocking and reports whether any was a key
func (d *TcellDisplay) KeyPressed() bool {
	pressed := false
	for d.screen.HasPendingEvent() {
		if _, ok := d.screen.PollEvent().(*tcell.EventKey); ok {
			pressed = true
		}
	}
	return pressed
}

// Close restores the terminal
func (d *TcellDisplay) Close() {
	d.screen.Fini()
}

package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestTextDisplayDrawAndShow(t *testing.T) {
	var out bytes.Buffer
	d := NewTextDisplay(&out, 3, 8)

	if rows, cols := d.Size(); rows != 3 || cols != 8 {
		t.Fatalf("size = %dx%d, expected 3x8", rows, cols)
	}

	d.DrawString(0, 0, "Step 1")
	d.DrawString(1, 6, "#####") // clipped at the right edge
	d.DrawString(5, 0, "ignored")
	d.DrawString(2, -2, "ab#")
	d.Show()

	frame := d.Frame()
	want := []string{"Step 1  ", "      ##", "#       "}
	for i := range want {
		if frame[i] != want[i] {
			t.Fatalf("row %d = %q, expected %q", i, frame[i], want[i])
		}
	}
	if !strings.Contains(out.String(), "Step 1\n      ##\n#\n") {
		t.Fatalf("flushed frame missing from output: %q", out.String())
	}
	if d.Err() != nil {
		t.Fatalf("unexpected error: %v", d.Err())
	}
	if d.KeyPressed() {
		t.Fatal("text display reported a key press")
	}
}

func TestTextDisplayClear(t *testing.T) {
	d := NewTextDisplay(&bytes.Buffer{}, 2, 4)
	d.DrawString(0, 0, "abcd")
	d.Clear()
	for i, line := range d.Frame() {
		if line != "    " {
			t.Fatalf("row %d = %q after Clear", i, line)
		}
	}
}

type failingWriter struct{}

var errWrite = errors.New("disk full")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestTextDisplayKeepsWriteError(t *testing.T) {
	d := NewTextDisplay(failingWriter{}, 2, 2)
	d.DrawString(0, 0, "#")
	d.Show()
	if errors.Cause(d.Err()) != errWrite {
		t.Fatalf("Err() = %v, expected %v", d.Err(), errWrite)
	}
}

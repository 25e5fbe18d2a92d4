// Package term writes a rendered canvas to a terminal using 24-bit
// ANSI color escapes.
package term

import (
	"bufio"
	"fmt"
	"io"
	"os"

	xterm "golang.org/x/term"

	"landscape/internal/render"
	"landscape/internal/terrain"
)

const reset = "\033[0m"

// sgr emits the combined foreground and background truecolor escape.
func sgr(fg, bg terrain.RGB) string {
	return fmt.Sprintf("\033[38;2;%d;%d;%d;48;2;%d;%d;%dm", fg.R, fg.G, fg.B, bg.R, bg.G, bg.B)
}

// Fprint writes the canvas row by row. Each row ends with a color
// reset so a partial write never leaves the terminal stained.
// Consecutive cells with identical colors share one escape sequence.
func Fprint(w io.Writer, c *render.Canvas) error {
	bw := bufio.NewWriter(w)
	for row := 0; row < c.Rows(); row++ {
		var fg, bg terrain.RGB
		first := true
		for _, cell := range c.Row(row) {
			if first || cell.Fg != fg || cell.Bg != bg {
				fg, bg = cell.Fg, cell.Bg
				first = false
				if _, err := bw.WriteString(sgr(fg, bg)); err != nil {
					return err
				}
			}
			if _, err := bw.WriteRune(cell.Glyph); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString(reset + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Size reports the terminal dimensions in cells, leaving one row for
// the shell prompt. It falls back to 80x24 when stdout is not a
// terminal.
func Size() (cols, rows int) {
	cols, rows, err := xterm.GetSize(int(os.Stdout.Fd()))
	if err != nil || cols <= 0 || rows <= 1 {
		return 80, 23
	}
	return cols, rows - 1
}

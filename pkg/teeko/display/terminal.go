// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package display

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"

	"laptudirm.com/x/teeko/pkg/teeko/board"
)

// Screen layout, in 1-based terminal rows and columns.
const (
	titleRow  = 1
	boardRow  = 3 // row of the top (y = 4) line of the board
	boardCol  = 4
	cellWidth = 3

	turnRow    = boardRow + board.Height + 1
	runRow     = turnRow + 1
	legalRow   = runRow + 1
	pausedRow  = legalRow + 1
	helpRow    = pausedRow + 2
	messageRow = 3
)

// MinWidth and MinHeight are the smallest terminal the layout fits in.
const (
	MinWidth  = 60
	MinHeight = helpRow
)

// SPIN is the spinner character set shown while paused.
const SPIN = 14

// Terminal is a Display which draws on an ANSI terminal. Output is
// buffered until Flush is called.
type Terminal struct {
	writer *bufio.Writer
	theme  Theme

	spinner *spinner.Spinner
}

var _ Display = (*Terminal)(nil)

// NewTerminal returns a Terminal drawing to out with the given theme.
func NewTerminal(out io.Writer, theme Theme) *Terminal {
	paused := spinner.New(
		spinner.CharSets[SPIN], 100*time.Millisecond,
		spinner.WithWriter(out),
		spinner.WithSuffix(" paused, press p to resume"),
	)

	return &Terminal{
		writer:  bufio.NewWriter(out),
		theme:   theme,
		spinner: paused,
	}
}

func (term *Terminal) moveTo(row, col int) {
	fmt.Fprintf(term.writer, "\x1b[%d;%dH", row, col)
}

func (term *Terminal) line(row int, format string, a ...any) {
	term.moveTo(row, 1)
	term.writer.WriteString("\x1b[2K")
	fmt.Fprintf(term.writer, format, a...)
}

// Clear blanks the screen and draws the board's frame.
func (term *Terminal) Clear() {
	term.writer.WriteString("\x1b[?25l\x1b[2J")
	term.line(titleRow, "  Teeko")
	term.line(helpRow, "  w/a/s/d move   space pick up/place   p pause   q quit")
}

// Close shows the terminal cursor again and flushes the output.
func (term *Terminal) Close() error {
	term.spinner.Stop()
	term.writer.WriteString("\x1b[?25h\x1b[2J\x1b[H")
	return term.writer.Flush()
}

// RenderCell draws the square at (x, y).
func (term *Terminal) RenderCell(x, y int, v Visual) {
	if !(board.Point{X: x, Y: y}).Valid() || int(v) >= VisualN {
		return
	}

	// The bottom row of the board (y = 0) is drawn last.
	term.moveTo(boardRow+board.Height-1-y, boardCol+x*cellWidth)
	term.writer.WriteString(term.paint(v, term.theme[v].Symbol))
}

// Message replaces the screen with the given lines.
func (term *Terminal) Message(lines ...string) {
	term.writer.WriteString("\x1b[?25l\x1b[2J")
	for i, line := range lines {
		term.line(messageRow+i, "  %s", line)
	}
}

// ShowTurn shows whose turn it is.
func (term *Terminal) ShowTurn(player board.Cell) {
	term.line(turnRow, "  To move: %s", term.player(player))
}

// ShowLongestRun shows the player's longest line.
func (term *Terminal) ShowLongestRun(player board.Cell, n int) {
	term.line(runRow, "  Longest line: %d (%s)", n, player)
}

// ShowLegal shows if the cursor is on a legal target.
func (term *Terminal) ShowLegal(legal bool) {
	if legal {
		term.line(legalRow, "  %s", term.paint(LegalDestination, "legal"))
		return
	}

	term.line(legalRow, "")
}

// ShowPaused starts or stops the paused spinner. The spinner draws by
// itself, so the terminal is flushed first.
func (term *Terminal) ShowPaused(paused bool) {
	if !paused {
		term.spinner.Stop()
		term.line(pausedRow, "")
		return
	}

	term.line(pausedRow, "  ")
	term.writer.Flush()
	term.spinner.Start()
}

// Flush writes out the buffered output.
func (term *Terminal) Flush() error {
	return term.writer.Flush()
}

func (term *Terminal) player(player board.Cell) string {
	v := CellVisual(player)
	return term.paint(v, term.theme[v].Symbol+" "+player.String())
}

// paint colours text the way the given Visual is coloured.
func (term *Terminal) paint(v Visual, text string) string {
	if c := term.theme[v].Color; c != nil {
		return c.Sprint(text)
	}

	return text
}

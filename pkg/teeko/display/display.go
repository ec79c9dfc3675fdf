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

// Package display defines what the game asks of a screen and provides
// an implementation for ANSI terminals.
package display

import (
	"fmt"
	"strings"

	"laptudirm.com/x/teeko/pkg/teeko/board"
)

// Visual is the way a single square is drawn.
type Visual uint8

const (
	Empty Visual = iota
	Player1
	Player2
	CursorIdle
	CursorHoldingPiece
	LegalDestination

	VisualN = iota
)

var visualNames = [VisualN]string{
	Empty:              "empty",
	Player1:            "player1",
	Player2:            "player2",
	CursorIdle:         "cursor",
	CursorHoldingPiece: "cursor-holding",
	LegalDestination:   "legal",
}

// String returns the name of the given Visual, as used in configuration.
func (v Visual) String() string {
	if int(v) < VisualN {
		return visualNames[v]
	}

	return "?"
}

// ParseVisual is the inverse of Visual.String.
func ParseVisual(name string) (Visual, error) {
	for v, visual := range visualNames {
		if strings.EqualFold(visual, name) {
			return Visual(v), nil
		}
	}

	return Empty, fmt.Errorf("display: unknown visual %q", name)
}

// CellVisual returns the Visual of an undecorated square.
func CellVisual(cell board.Cell) Visual {
	switch cell {
	case board.Player1:
		return Player1
	case board.Player2:
		return Player2
	default:
		return Empty
	}
}

// Renderer draws single squares.
type Renderer interface {
	RenderCell(x, y int, v Visual)
}

// Display is everything the game loop shows the players.
type Display interface {
	Renderer

	// Clear blanks the whole screen.
	Clear()

	// Message replaces the screen with the given lines of text.
	Message(lines ...string)

	// ShowTurn shows whose move it is.
	ShowTurn(player board.Cell)

	// ShowLongestRun shows the length of the player's longest line.
	ShowLongestRun(player board.Cell, n int)

	// ShowLegal shows whether the square under the cursor is a legal
	// target for the player to move.
	ShowLegal(legal bool)

	// ShowPaused shows or hides the game's paused state.
	ShowPaused(paused bool)

	// Flush writes out everything drawn since the last Flush.
	Flush() error
}

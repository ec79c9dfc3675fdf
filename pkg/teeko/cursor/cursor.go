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

// Package cursor implements the board cursor: it moves over the board
// on directional input, acts on the square under it on confirmation,
// and flashes to show where it is.
package cursor

import (
	"time"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/teeko/pkg/teeko/board"
	"laptudirm.com/x/teeko/pkg/teeko/display"
	"laptudirm.com/x/teeko/pkg/teeko/game"
	"laptudirm.com/x/teeko/pkg/teeko/input"
)

// DefaultInterval is the time between two flashes of the cursor.
const DefaultInterval = 500 * time.Millisecond

// Controller drives the cursor of a single game. Times are in
// milliseconds, as returned by the game loop's clock.
type Controller struct {
	game     *game.Game
	renderer display.Renderer

	position board.Point
	visible  bool // is the cursor currently drawn

	interval  uint64
	lastFlash uint64
}

// New returns a Controller for the given game drawing on renderer. The
// cursor starts at the centre of the board.
func New(g *game.Game, renderer display.Renderer, interval time.Duration) *Controller {
	if interval <= 0 {
		interval = DefaultInterval
	}

	return &Controller{
		game:     g,
		renderer: renderer,
		position: board.Center,
		interval: uint64(interval.Milliseconds()),
	}
}

// Position returns the square under the cursor.
func (c *Controller) Position() board.Point {
	return c.position
}

// Visible reports if the cursor is drawn right now.
func (c *Controller) Visible() bool {
	return c.visible
}

// Reset puts the cursor back at the centre of the board, hidden, and
// restarts the flash cycle at now.
func (c *Controller) Reset(now uint64) {
	c.position = board.Center
	c.visible = false
	c.lastFlash = now
}

// Handle dispatches a single input event and reports the resulting game
// action, which is game.None for anything except a successful Confirm.
func (c *Controller) Handle(event input.Event, now uint64) game.Action {
	switch event {
	case input.MoveLeft:
		c.Move(-1, 0, now)
	case input.MoveRight:
		c.Move(+1, 0, now)
	case input.MoveUp:
		c.Move(0, +1, now)
	case input.MoveDown:
		c.Move(0, -1, now)
	case input.Confirm:
		return c.Confirm()
	}

	return game.None
}

// Move moves the cursor by (dx, dy), wrapping around the edges of the
// board. The cursor is drawn straight away at its new square and the
// flash cycle restarts.
func (c *Controller) Move(dx, dy int, now uint64) {
	c.renderer.RenderCell(c.position.X, c.position.Y, c.underlying(c.position))

	c.position.X = wrap(c.position.X+dx, board.Width)
	c.position.Y = wrap(c.position.Y+dy, board.Height)

	c.renderer.RenderCell(c.position.X, c.position.Y, c.highlight())
	c.visible = true
	c.lastFlash = now
}

// Confirm acts on the square under the cursor and updates the display
// to match. Illegal targets change nothing.
func (c *Controller) Confirm() game.Action {
	// The destinations are cleared by a move, so remember them first.
	destinations := c.game.LegalDestinations()

	action := c.game.PickupOrPlace(c.position.X, c.position.Y)
	logrus.WithFields(logrus.Fields{
		"x":      c.position.X,
		"y":      c.position.Y,
		"action": action,
	}).Debug("cursor: confirm")

	switch action {
	case game.PickedUp:
		for _, p := range c.game.LegalDestinations() {
			c.renderer.RenderCell(p.X, p.Y, display.LegalDestination)
		}

		c.renderer.RenderCell(c.position.X, c.position.Y, c.highlight())
		c.visible = true

	case game.Moved, game.Placed:
		for _, p := range destinations {
			c.renderer.RenderCell(p.X, p.Y, c.underlying(p))
		}

		c.renderer.RenderCell(c.position.X, c.position.Y, c.underlying(c.position))
		c.visible = false
	}

	return action
}

// Tick flashes the cursor if a whole interval has passed since the last
// flash or move, and reports if it did.
func (c *Controller) Tick(now uint64) bool {
	if now < c.lastFlash+c.interval {
		return false
	}

	if c.visible {
		c.renderer.RenderCell(c.position.X, c.position.Y, c.underlying(c.position))
	} else {
		c.renderer.RenderCell(c.position.X, c.position.Y, c.highlight())
	}

	c.visible = !c.visible
	c.lastFlash = now
	return true
}

// Shift moves the flash cycle forward by delta milliseconds, so that
// time spent paused does not count towards the next flash.
func (c *Controller) Shift(delta uint64) {
	c.lastFlash += delta
}

// Redraw draws every square of the board, and the cursor if it is
// currently visible.
func (c *Controller) Redraw() {
	for x := 0; x < board.Width; x++ {
		for y := 0; y < board.Height; y++ {
			p := board.Point{X: x, Y: y}
			if p == c.position && c.visible {
				c.renderer.RenderCell(x, y, c.highlight())
			} else {
				c.renderer.RenderCell(x, y, c.underlying(p))
			}
		}
	}
}

// underlying returns what the square looks like without the cursor.
func (c *Controller) underlying(p board.Point) display.Visual {
	if c.game.Legal(p.X, p.Y) {
		return display.LegalDestination
	}

	return display.CellVisual(c.game.Get(p.X, p.Y))
}

// highlight returns what the cursor looks like.
func (c *Controller) highlight() display.Visual {
	if _, holding := c.game.InHand(); holding {
		return display.CursorHoldingPiece
	}

	return display.CursorIdle
}

func wrap(n, size int) int {
	return ((n % size) + size) % size
}

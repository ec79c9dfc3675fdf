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

package game

import (
	"github.com/sirupsen/logrus"

	"laptudirm.com/x/teeko/pkg/teeko/board"
)

// Action is what a call to PickupOrPlace ended up doing.
type Action uint8

const (
	None     Action = iota // illegal target, nothing changed
	Placed                 // a new piece was put on the board
	PickedUp               // a piece was lifted into the hand
	Moved                  // the piece in hand was put down
)

// String returns a string representation of the given Action.
func (action Action) String() string {
	switch action {
	case None:
		return "none"
	case Placed:
		return "placed"
	case PickedUp:
		return "picked-up"
	case Moved:
		return "moved"
	default:
		return "?"
	}
}

// IsLegalTarget reports if the player to move may act on (x, y) right
// now, i.e. if PickupOrPlace(x, y) would change the game.
func (game *Game) IsLegalTarget(x, y int) bool {
	target := board.Point{X: x, Y: y}
	if !target.Valid() {
		return false
	}

	cell := game.board.Get(x, y)

	if !game.holding {
		if game.Phase(game.turn) == Movement {
			// pick up one of our own pieces
			return cell == game.turn
		}

		// place a new piece
		return cell == board.Empty
	}

	// put the piece in hand down next to where it came from
	return cell == board.Empty && game.origin.Adjacent(target)
}

// PickupOrPlace performs the action of the player to move on (x, y):
// placing a new piece, picking up an own piece, or putting down the
// piece in hand. Illegal targets are ignored and None is returned.
// Nothing happens while the game is paused or over.
func (game *Game) PickupOrPlace(x, y int) Action {
	if game.paused || game.Over() || !game.IsLegalTarget(x, y) {
		return None
	}

	player := game.turn
	log := logrus.WithFields(logrus.Fields{
		"player": player,
		"x":      x,
		"y":      y,
	})

	var action Action
	switch {
	case game.holding:
		game.board.Set(x, y, player)
		game.placed[player]++
		game.holding = false
		game.legal.Clear()
		game.advanceTurn()
		action = Moved

	case game.Phase(player) == Movement:
		game.board.Set(x, y, board.Empty)
		game.placed[player]--
		game.origin = board.Point{X: x, Y: y}
		game.holding = true
		game.markDestinations()
		action = PickedUp

	default:
		game.board.Set(x, y, player)
		game.placed[player]++
		game.advanceTurn()
		action = Placed
	}

	log.WithField("action", action).Tracef("position %s", game.FEN())
	return action
}

// markDestinations recomputes the legal destinations of the piece in
// hand: every empty square next to its origin.
func (game *Game) markDestinations() {
	game.legal.Clear()
	for _, p := range game.origin.Neighbours() {
		if game.board.Get(p.X, p.Y) == board.Empty {
			game.legal.Set(p.X, p.Y)
		}
	}
}

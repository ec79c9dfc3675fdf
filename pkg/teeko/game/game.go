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

// Package game implements the rules of Teeko on top of a board.Board:
// move legality, the pick-up and place protocol, turn alternation and
// win detection.
package game

import (
	"errors"
	"strings"

	"laptudirm.com/x/teeko/pkg/teeko/board"
)

// Phase is the stage of the game a single player is in.
type Phase uint8

const (
	// Placement lasts until the player has put all of their pieces on
	// the board. Only placements on empty squares are legal.
	Placement Phase = iota

	// Movement follows Placement. A turn is picking up one of the
	// player's own pieces and putting it down on an adjacent square.
	Movement
)

// String returns a string representation of the given Phase.
func (phase Phase) String() string {
	switch phase {
	case Placement:
		return "placement"
	case Movement:
		return "movement"
	default:
		return "?"
	}
}

// Game is the complete state of a game of Teeko.
type Game struct {
	board board.Board

	// legal marks the squares the piece in hand may be put down on.
	// It is empty whenever no piece is in hand.
	legal board.Mask

	turn   board.Cell
	placed [3]int // indexed by board.Cell

	// origin is the square the piece in hand was lifted from. It has
	// no meaning unless holding is set.
	origin  board.Point
	holding bool

	paused bool
}

// New returns a new game with an empty board and Player1 to move.
func New() *Game {
	var game Game
	game.Reset()
	return &game
}

// Reset sets the game up for a new game.
func (game *Game) Reset() {
	*game = Game{turn: board.Player1}
}

// Board returns a copy of the current board.
func (game *Game) Board() board.Board {
	return game.board
}

// Get returns the cell at (x, y).
func (game *Game) Get(x, y int) board.Cell {
	return game.board.Get(x, y)
}

// Legal reports if (x, y) is a legal destination for the piece in hand.
func (game *Game) Legal(x, y int) bool {
	return game.legal.Get(x, y)
}

// LegalDestinations returns the squares the piece in hand may be put
// down on. It is empty if no piece is in hand.
func (game *Game) LegalDestinations() []board.Point {
	return game.legal.Points()
}

// Turn returns the player to move.
func (game *Game) Turn() board.Cell {
	return game.turn
}

// Placed returns the number of pieces the player has on the board. A
// piece in hand is not on the board.
func (game *Game) Placed(player board.Cell) int {
	if player != board.Player1 && player != board.Player2 {
		return 0
	}

	return game.placed[player]
}

// Phase returns the phase the given player is in. A player holding a
// piece reports Placement since they are about to place it.
func (game *Game) Phase(player board.Cell) Phase {
	if game.Placed(player) == board.Pieces {
		return Movement
	}

	return Placement
}

// InHand returns the square the piece in hand was lifted from, and
// whether there is a piece in hand at all.
func (game *Game) InHand() (board.Point, bool) {
	return game.origin, game.holding
}

// advanceTurn passes the move to the other player.
func (game *Game) advanceTurn() {
	game.turn = game.turn.Other()
}

// Paused reports if the game is paused.
func (game *Game) Paused() bool {
	return game.paused
}

// Pause stops the game from accepting actions until it is resumed.
func (game *Game) Pause() {
	game.paused = true
}

// Resume undoes a Pause.
func (game *Game) Resume() {
	game.paused = false
}

// TogglePause pauses a running game or resumes a paused one, and
// returns the new paused state.
func (game *Game) TogglePause() bool {
	game.paused = !game.paused
	return game.paused
}

var ErrInvalidFEN = errors.New("game: invalid fen")

// FEN returns the board FEN followed by the side to move, 'x' for
// Player1 and 'o' for Player2. A piece in hand is not represented.
func (game *Game) FEN() string {
	return game.board.FEN() + " " + string(game.turn.Symbol())
}

// FromFEN sets up a game from the given FEN, which is the format
// returned by Game.FEN. The side to move defaults to Player1.
//
// Only the board and the side to move are checked. The piece counts
// need not be reachable from a real game, so "5/5/5/5/xxx2 x" is
// accepted, and Player1 moves again with three pieces down.
func FromFEN(fen string) (*Game, error) {
	fields := strings.Fields(fen)
	if len(fields) < 1 || len(fields) > 2 {
		return nil, ErrInvalidFEN
	}

	b, err := board.Parse(fields[0])
	if err != nil {
		return nil, err
	}

	game := New()
	game.board = b
	game.placed[board.Player1] = b.Count(board.Player1)
	game.placed[board.Player2] = b.Count(board.Player2)

	if len(fields) == 2 {
		switch fields[1] {
		case "x", "X":
			game.turn = board.Player1
		case "o", "O":
			game.turn = board.Player2
		default:
			return nil, ErrInvalidFEN
		}
	}

	return game, nil
}

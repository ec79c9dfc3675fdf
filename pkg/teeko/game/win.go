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

import "laptudirm.com/x/teeko/pkg/teeko/board"

// RunToWin is the length of line which wins the game.
const RunToWin = 4

// directions holds one step along each of the four line directions:
// horizontal, vertical, and the two diagonals.
var directions = [4]board.Point{
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: 1, Y: 1},
	{X: 1, Y: -1},
}

// LongestRun returns the length of the longest unbroken line of the
// player's pieces on b, in any direction. It is 0 if the player has no
// pieces on the board.
func LongestRun(b *board.Board, player board.Cell) int {
	longest := 0

	for x := 0; x < board.Width; x++ {
		for y := 0; y < board.Height; y++ {
			if b.Get(x, y) != player {
				continue
			}

			for _, d := range directions {
				// Only count runs from their first square.
				if b.Get(x-d.X, y-d.Y) == player {
					continue
				}

				n := 1
				for b.Get(x+n*d.X, y+n*d.Y) == player {
					n++
				}

				if n > longest {
					longest = n
				}
			}
		}
	}

	return longest
}

// HasWon reports if the player has four pieces in a row on b.
func HasWon(b *board.Board, player board.Cell) bool {
	if player == board.Empty {
		return false
	}

	return LongestRun(b, player) >= RunToWin
}

// HasWon reports if the player has four pieces in a row.
func (game *Game) HasWon(player board.Cell) bool {
	return HasWon(&game.board, player)
}

// LongestRun returns the player's longest line of pieces.
func (game *Game) LongestRun(player board.Cell) int {
	return LongestRun(&game.board, player)
}

// GameOver returns the winner, if there is one. Only the player who
// moved last can have won, so only they are checked.
func (game *Game) GameOver() (board.Cell, bool) {
	mover := game.turn.Other()
	if game.HasWon(mover) {
		return mover, true
	}

	return board.Empty, false
}

// Over reports if the game has been won.
func (game *Game) Over() bool {
	_, over := game.GameOver()
	return over
}

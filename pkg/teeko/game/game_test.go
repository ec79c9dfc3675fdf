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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/teeko/pkg/teeko/board"
)

func mustFEN(t *testing.T, fen string) *Game {
	t.Helper()
	game, err := FromFEN(fen)
	require.NoError(t, err)
	return game
}

func TestNewGame(t *testing.T) {
	game := New()

	assert.Equal(t, board.Player1, game.Turn())
	assert.Equal(t, 0, game.Placed(board.Player1))
	assert.Equal(t, 0, game.Placed(board.Player2))
	assert.Equal(t, Placement, game.Phase(board.Player1))
	assert.Equal(t, "5/5/5/5/5 x", game.FEN())

	_, holding := game.InHand()
	assert.False(t, holding)
	assert.Empty(t, game.LegalDestinations())
}

func TestFirstPlacement(t *testing.T) {
	game := New()

	assert.Equal(t, Placed, game.PickupOrPlace(2, 2))
	assert.Equal(t, board.Player1, game.Get(2, 2))
	assert.Equal(t, 1, game.Placed(board.Player1))
	assert.Equal(t, board.Player2, game.Turn())
}

func TestPlacementOnOccupiedSquareIsIgnored(t *testing.T) {
	game := New()
	game.PickupOrPlace(2, 2)

	before := *game
	assert.False(t, game.IsLegalTarget(2, 2))
	assert.Equal(t, None, game.PickupOrPlace(2, 2))
	assert.Equal(t, before, *game)
}

func TestOutOfRangeTargetIsIgnored(t *testing.T) {
	game := New()

	assert.False(t, game.IsLegalTarget(-1, 0))
	assert.False(t, game.IsLegalTarget(0, 5))
	assert.Equal(t, None, game.PickupOrPlace(5, 5))
	assert.Equal(t, board.Player1, game.Turn())
}

func TestPickupAndMove(t *testing.T) {
	game := mustFEN(t, "2o1o/x2x1/5/1x3/o2ox x")
	require.Equal(t, Movement, game.Phase(board.Player1))

	// Empty squares can't be placed on once all pieces are out.
	assert.False(t, game.IsLegalTarget(2, 2))
	// Neither can the opponent's pieces be picked up.
	assert.False(t, game.IsLegalTarget(0, 0))

	assert.Equal(t, PickedUp, game.PickupOrPlace(1, 1))
	assert.Equal(t, board.Empty, game.Get(1, 1))
	assert.Equal(t, board.Player1, game.Turn(), "pick up does not end the turn")
	assert.Equal(t, 3, game.Placed(board.Player1))

	origin, holding := game.InHand()
	require.True(t, holding)
	assert.Equal(t, board.Point{X: 1, Y: 1}, origin)

	assert.ElementsMatch(t, []board.Point{
		{X: 0, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 0}, {X: 1, Y: 2},
		{X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2},
	}, game.LegalDestinations())
	assert.True(t, game.Legal(2, 1))
	assert.False(t, game.Legal(0, 0))

	// The origin is not a move.
	assert.Equal(t, None, game.PickupOrPlace(1, 1))
	// Neither is a far away square.
	assert.Equal(t, None, game.PickupOrPlace(4, 2))
	assert.Equal(t, None, game.PickupOrPlace(4, 4))
	// Nor is another of our own pieces.
	assert.Equal(t, None, game.PickupOrPlace(0, 3))

	assert.Equal(t, Moved, game.PickupOrPlace(2, 1))
	assert.Equal(t, board.Player1, game.Get(2, 1))
	assert.Equal(t, board.Player2, game.Turn())
	assert.Equal(t, 4, game.Placed(board.Player1))
	assert.Empty(t, game.LegalDestinations())

	_, holding = game.InHand()
	assert.False(t, holding)

	// The vacated origin is now empty but not Player2's to pick up.
	assert.Equal(t, None, game.PickupOrPlace(1, 1))
	assert.Equal(t, None, game.PickupOrPlace(1, 1))
	assert.Equal(t, board.Player2, game.Turn())
}

func TestNoSecondPickup(t *testing.T) {
	game := mustFEN(t, "2o1o/x2x1/5/1x3/o2ox x")

	require.Equal(t, PickedUp, game.PickupOrPlace(1, 1))
	assert.Equal(t, Placement, game.Phase(board.Player1))
	assert.False(t, game.IsLegalTarget(0, 3))
	assert.Equal(t, None, game.PickupOrPlace(0, 3))

	origin, _ := game.InHand()
	assert.Equal(t, board.Point{X: 1, Y: 1}, origin)
}

func TestPhasesAreIndependent(t *testing.T) {
	game := mustFEN(t, "5/5/5/o1o1o/xxx1x o")

	assert.Equal(t, Movement, game.Phase(board.Player1))
	assert.Equal(t, Placement, game.Phase(board.Player2))

	assert.True(t, game.IsLegalTarget(3, 3))
	assert.False(t, game.IsLegalTarget(0, 1))
	assert.Equal(t, Placed, game.PickupOrPlace(3, 3))

	assert.Equal(t, board.Player1, game.Turn())
	assert.False(t, game.IsLegalTarget(2, 2))
	assert.True(t, game.IsLegalTarget(0, 0))
}

func TestPausedGameIgnoresActions(t *testing.T) {
	game := New()

	assert.True(t, game.TogglePause())
	assert.True(t, game.Paused())
	assert.Equal(t, None, game.PickupOrPlace(2, 2))
	assert.Equal(t, board.Empty, game.Get(2, 2))

	game.Resume()
	assert.False(t, game.Paused())
	assert.Equal(t, Placed, game.PickupOrPlace(2, 2))

	game.Pause()
	assert.False(t, game.TogglePause())
}

func TestWonGameIgnoresActions(t *testing.T) {
	game := mustFEN(t, "5/5/5/o1o2/xxx2 x")

	require.Equal(t, Placed, game.PickupOrPlace(3, 0))
	winner, over := game.GameOver()
	require.True(t, over)
	assert.Equal(t, board.Player1, winner)

	assert.Equal(t, None, game.PickupOrPlace(4, 4))
}

func TestReset(t *testing.T) {
	game := mustFEN(t, "2o1o/x2x1/5/1x3/o2ox o")
	game.Pause()
	game.Reset()

	assert.Equal(t, New(), game)
}

func TestFromFENAcceptsUnreachableCounts(t *testing.T) {
	game := mustFEN(t, "5/5/5/5/xxx2 x")

	assert.Equal(t, board.Player1, game.Turn())
	assert.Equal(t, 3, game.Placed(board.Player1))
	assert.Equal(t, 0, game.Placed(board.Player2))
	assert.Equal(t, Placed, game.PickupOrPlace(4, 4))
	assert.Equal(t, Movement, game.Phase(board.Player1))
}

func TestFromFENRejectsInvalid(t *testing.T) {
	for _, fen := range []string{"", "5/5/5/5/5 x y", "5/5/5/5/5 z", "5/5/5/5 x"} {
		_, err := FromFEN(fen)
		assert.Error(t, err, "fen %q", fen)
	}
}

// TestRandomGames plays random legal actions and checks the invariants
// which should hold at every point of every game.
func TestRandomGames(t *testing.T) {
	r := rand.New(rand.NewSource(2024))

	for i := 0; i < 200; i++ {
		game := New()

		for ply := 0; ply < 300 && !game.Over(); ply++ {
			var targets []board.Point
			for x := 0; x < board.Width; x++ {
				for y := 0; y < board.Height; y++ {
					if game.IsLegalTarget(x, y) {
						targets = append(targets, board.Point{X: x, Y: y})
					}
				}
			}

			if len(targets) == 0 {
				// A lifted corner piece may have nowhere to go.
				break
			}

			turn := game.Turn()
			target := targets[r.Intn(len(targets))]
			action := game.PickupOrPlace(target.X, target.Y)
			require.NotEqual(t, None, action)

			switch action {
			case PickedUp:
				assert.Equal(t, turn, game.Turn())
			default:
				assert.Equal(t, turn.Other(), game.Turn())
			}

			b := game.Board()
			for _, player := range []board.Cell{board.Player1, board.Player2} {
				held := 0
				if _, holding := game.InHand(); holding && game.Turn() == player {
					held = 1
				}

				assert.LessOrEqual(t, b.Count(player)+held, board.Pieces)
				assert.Equal(t, b.Count(player), game.Placed(player))
			}

			if _, holding := game.InHand(); !holding {
				assert.Empty(t, game.LegalDestinations())
			}
		}
	}
}

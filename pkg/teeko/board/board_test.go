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

package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOutOfRangeIsEmpty(t *testing.T) {
	var b Board
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			b.Set(x, y, Player1)
		}
	}

	for _, p := range []Point{{-1, 0}, {0, -1}, {Width, 0}, {0, Height}, {-3, 7}} {
		assert.Equal(t, Empty, b.Get(p.X, p.Y), "point %v", p)
	}
}

func TestSetOutOfRangeIsDropped(t *testing.T) {
	var b Board
	b.Set(-1, 2, Player1)
	b.Set(5, 5, Player2)

	assert.Equal(t, Board{}, b)
}

func TestCount(t *testing.T) {
	var b Board
	b.Set(0, 0, Player1)
	b.Set(4, 4, Player1)
	b.Set(2, 3, Player2)

	assert.Equal(t, 2, b.Count(Player1))
	assert.Equal(t, 1, b.Count(Player2))
	assert.Equal(t, Width*Height-3, b.Count(Empty))
}

func TestAdjacent(t *testing.T) {
	origin := Point{2, 2}

	tests := []struct {
		to   Point
		want bool
	}{
		{Point{2, 2}, false},
		{Point{1, 1}, true},
		{Point{3, 3}, true},
		{Point{2, 3}, true},
		{Point{3, 1}, true},
		{Point{4, 2}, false},
		{Point{0, 0}, false},
		{Point{2, 4}, false},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, origin.Adjacent(test.to), "%v -> %v", origin, test.to)
	}
}

func TestNeighbours(t *testing.T) {
	assert.Len(t, Point{2, 2}.Neighbours(), 8)
	assert.Len(t, Point{0, 0}.Neighbours(), 3)
	assert.Len(t, Point{0, 2}.Neighbours(), 5)
	assert.ElementsMatch(t,
		[]Point{{3, 4}, {3, 3}, {4, 3}},
		Point{4, 4}.Neighbours(),
	)
}

func TestMask(t *testing.T) {
	var m Mask
	assert.True(t, m.Empty())

	m.Set(1, 2)
	m.Set(3, 0)
	m.Set(7, 7)

	assert.True(t, m.Get(1, 2))
	assert.False(t, m.Get(7, 7))
	assert.Equal(t, []Point{{1, 2}, {3, 0}}, m.Points())

	m.Clear()
	assert.True(t, m.Empty())
	assert.Nil(t, m.Points())
}

func TestFEN(t *testing.T) {
	var b Board
	assert.Equal(t, "5/5/5/5/5", b.FEN())

	b.Set(2, 2, Player1)
	b.Set(0, 4, Player2)
	b.Set(4, 0, Player1)
	assert.Equal(t, "o4/5/2x2/5/4x", b.FEN())

	parsed, err := Parse(b.FEN())
	require.NoError(t, err)
	assert.Equal(t, b, parsed)
}

func TestParseRejectsInvalid(t *testing.T) {
	for _, fen := range []string{
		"",
		"5/5/5/5",
		"5/5/5/5/6",
		"5/5/5/5/4",
		"5/5/5/5/x5",
		"5/5/5/5/abcde",
		"xxxxx/5/5/5/5",
	} {
		_, err := Parse(fen)
		assert.ErrorIs(t, err, ErrInvalidFEN, "fen %q", fen)
	}
}

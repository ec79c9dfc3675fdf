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

// Package board implements the 5x5 Teeko grid. It is a plain container:
// it knows nothing about whose turn it is or which moves are legal.
package board

const (
	Width  = 5
	Height = 5

	// Pieces is the number of pieces each player owns.
	Pieces = 4
)

// Cell represents the occupancy of a single square.
type Cell uint8

const (
	Empty Cell = iota
	Player1
	Player2
)

// Other returns the opponent of the given player. Empty has no opponent.
func (c Cell) Other() Cell {
	switch c {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return Empty
	}
}

// String returns a string representation of the given Cell.
func (c Cell) String() string {
	switch c {
	case Player1:
		return "player 1"
	case Player2:
		return "player 2"
	default:
		return "empty"
	}
}

// Point is a square's coordinates. X is the column and Y is the row.
type Point struct {
	X, Y int
}

// Center is the middle square of the board.
var Center = Point{X: Width / 2, Y: Height / 2}

// Valid reports if the point lies on the board.
func (p Point) Valid() bool {
	return p.X >= 0 && p.X < Width && p.Y >= 0 && p.Y < Height
}

// Adjacent reports if q is one of the 8 squares surrounding p, i.e. if
// their Chebyshev distance is exactly 1.
func (p Point) Adjacent(q Point) bool {
	dx, dy := abs(p.X-q.X), abs(p.Y-q.Y)
	return dx <= 1 && dy <= 1 && (dx != 0 || dy != 0)
}

// Neighbours returns the on-board squares adjacent to p.
func (p Point) Neighbours() []Point {
	var points []Point
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			q := Point{X: p.X + dx, Y: p.Y + dy}
			if q != p && q.Valid() {
				points = append(points, q)
			}
		}
	}

	return points
}

// Board is the Teeko grid, indexed [x][y].
type Board [Width][Height]Cell

// Get returns the cell at (x, y). Squares outside the board are
// considered Empty, which lets line scans run off the edge safely.
func (b *Board) Get(x, y int) Cell {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return Empty
	}

	return b[x][y]
}

// Set puts the cell c at (x, y). Writes outside the board are dropped.
func (b *Board) Set(x, y int, c Cell) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return
	}

	b[x][y] = c
}

// Count returns the number of squares holding c.
func (b *Board) Count(c Cell) int {
	n := 0
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			if b[x][y] == c {
				n++
			}
		}
	}

	return n
}

// Clear empties every square.
func (b *Board) Clear() {
	*b = Board{}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

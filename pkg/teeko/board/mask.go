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

// Mask marks a set of squares, such as the legal destinations of a
// piece which has been picked up.
type Mask [Width][Height]bool

// Get reports if (x, y) is marked. Squares outside the board never are.
func (m *Mask) Get(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}

	return m[x][y]
}

// Set marks (x, y).
func (m *Mask) Set(x, y int) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return
	}

	m[x][y] = true
}

// Clear unmarks every square.
func (m *Mask) Clear() {
	*m = Mask{}
}

// Points returns the marked squares in column-major order.
func (m *Mask) Points() []Point {
	var points []Point
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			if m[x][y] {
				points = append(points, Point{X: x, Y: y})
			}
		}
	}

	return points
}

// Empty reports if no square is marked.
func (m *Mask) Empty() bool {
	return *m == Mask{}
}

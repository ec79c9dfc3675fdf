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
	"errors"
	"strconv"
	"strings"
)

// A board FEN lists the rows from the top (y = 4) to the bottom (y = 0)
// separated by '/'. Inside a row 'x' is a Player1 piece, 'o' a Player2
// piece and a digit is that many empty squares, e.g. "5/5/2x2/5/5".

var ErrInvalidFEN = errors.New("board: invalid fen")

// FEN returns the FEN string of the board.
func (b *Board) FEN() string {
	var fen strings.Builder

	for y := Height - 1; y >= 0; y-- {
		gaps := 0
		for x := 0; x < Width; x++ {
			c := b[x][y]
			if c == Empty {
				gaps++
				continue
			}

			if gaps > 0 {
				fen.WriteString(strconv.Itoa(gaps))
				gaps = 0
			}

			fen.WriteByte(c.Symbol())
		}

		if gaps > 0 {
			fen.WriteString(strconv.Itoa(gaps))
		}

		if y > 0 {
			fen.WriteByte('/')
		}
	}

	return fen.String()
}

// String returns the FEN of the board.
func (b Board) String() string {
	return b.FEN()
}

// Parse parses a board FEN.
func Parse(fen string) (Board, error) {
	var b Board

	rows := strings.Split(fen, "/")
	if len(rows) != Height {
		return Board{}, ErrInvalidFEN
	}

	for i, row := range rows {
		y := Height - 1 - i
		x := 0
		for j := 0; j < len(row); j++ {
			switch ch := row[j]; {
			case ch >= '1' && ch <= '0'+Width:
				x += int(ch - '0')
			case ch == 'x' || ch == 'X':
				b.Set(x, y, Player1)
				x++
			case ch == 'o' || ch == 'O':
				b.Set(x, y, Player2)
				x++
			default:
				return Board{}, ErrInvalidFEN
			}

			if x > Width {
				return Board{}, ErrInvalidFEN
			}
		}

		if x != Width {
			return Board{}, ErrInvalidFEN
		}
	}

	if b.Count(Player1) > Pieces || b.Count(Player2) > Pieces {
		return Board{}, ErrInvalidFEN
	}

	return b, nil
}

// Symbol returns the FEN character for an occupied cell.
func (c Cell) Symbol() byte {
	switch c {
	case Player1:
		return 'x'
	case Player2:
		return 'o'
	default:
		return '.'
	}
}

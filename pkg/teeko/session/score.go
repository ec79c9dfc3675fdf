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

package session

import (
	"fmt"

	"laptudirm.com/x/teeko/pkg/teeko/board"
)

// Score is the number of games won by each player. Teeko has no draws.
type Score struct {
	Player1 int
	Player2 int
}

// Record adds a win for the given player. Empty is ignored.
func (score *Score) Record(winner board.Cell) {
	switch winner {
	case board.Player1:
		score.Player1++
	case board.Player2:
		score.Player2++
	}
}

// Games returns the number of games recorded.
func (score Score) Games() int {
	return score.Player1 + score.Player2
}

// String returns the score as "<player 1>-<player 2>".
func (score Score) String() string {
	return fmt.Sprintf("%d-%d", score.Player1, score.Player2)
}

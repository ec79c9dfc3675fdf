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

package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

var rules = heredoc.Doc(`
	Teeko is played by two players on a board of 5x5 squares. Each
	player has four pieces, player 1 moves first.

	Placement: the players take turns placing one of their pieces on
	any empty square until both have placed all four.

	Movement: on their turn a player picks up one of their own pieces
	and moves it to an empty neighbouring square, in any of the eight
	directions. A piece must be moved to a different square once it
	has been picked up. Pick up only pieces with an empty square next
	to them: a piece that is boxed in can't be put down anywhere, and
	the game can't go on until it is restarted.

	The first player to get all four of their pieces into a straight
	line, horizontal, vertical or diagonal, wins the game.
`)

// teeko rules
func Rules() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Print the rules of Teeko",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), rules)
			return err
		},
	}
}

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
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	teeko "laptudirm.com/x/teeko/pkg/common"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "teeko",
		Short: "Play Teeko in the terminal",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`teeko is a two player game of Teeko played on a 5x5 board
			in the terminal. Running teeko without a command starts a
			game, the same as teeko play.

			Use teeko rules to read the rules of the game.`),

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// If --trace flag is provided, set logging level to Trace.
			if cmd.Flag("trace").Changed {
				logrus.SetLevel(logrus.TraceLevel)
			}
		},

		RunE: play,
	}

	// global flags
	root.PersistentFlags().BoolP("help", "h", false, "Show Help Information")
	root.PersistentFlags().BoolP("version", "v", false, "Show Teeko's Version")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")

	root.PersistentFlags().StringP("config", "c", teeko.ConfigFile, "Configuration file to use")
	root.PersistentFlags().Bool("no-color", false, "Disable coloured output")
	root.PersistentFlags().Int("flash-interval", 0, "Milliseconds between two cursor flashes")

	versionStr := "v0.0.0\n"
	root.SetVersionTemplate(versionStr)
	root.Version = versionStr

	// Register the various commands.
	root.AddCommand(Play())
	root.AddCommand(Rules())
	root.AddCommand(Config())

	return root
}

// loadConfig loads the configuration file and applies the flags given
// on the command line on top of it.
func loadConfig(cmd *cobra.Command) (teeko.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return teeko.Config{}, err
	}

	config, err := teeko.LoadConfig(path)
	if err != nil {
		return teeko.Config{}, err
	}

	if cmd.Flag("no-color").Changed {
		if config.NoColor, err = cmd.Flags().GetBool("no-color"); err != nil {
			return teeko.Config{}, err
		}
	}

	if cmd.Flag("flash-interval").Changed {
		if config.FlashInterval, err = cmd.Flags().GetInt("flash-interval"); err != nil {
			return teeko.Config{}, err
		}
	}

	return config, config.Validate()
}

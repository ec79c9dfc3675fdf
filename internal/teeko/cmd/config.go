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
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	teeko "laptudirm.com/x/teeko/pkg/common"
)

// teeko config
func Config() *cobra.Command {
	command := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`config prints the configuration teeko would play with, after
			the configuration file, the TEEKO_* environment variables
			and the command line flags have been applied, in that
			order.

			With --init, the default configuration file is written if
			there isn't one yet.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}

			if cmd.Flag("init").Changed {
				created, err := teeko.TryCreate(path, teeko.BaseConfigFile)
				if err != nil {
					return fmt.Errorf("config: %w", err)
				}

				logrus.WithFields(logrus.Fields{
					"path":    path,
					"created": created,
				}).Info("Initialized configuration file")
			}

			config, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch _, err := os.Stat(path); {
			case err == nil:
				fmt.Fprintf(out, "# loaded from %s\n", path)
			case errors.Is(err, fs.ErrNotExist):
				fmt.Fprintf(out, "# defaults, %s does not exist\n", path)
			default:
				return fmt.Errorf("config: %w", err)
			}

			return config.Dump(out)
		},
	}

	command.Flags().Bool("init", false, "Write the default configuration file")
	return command
}

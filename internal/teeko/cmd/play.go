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
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	teeko "laptudirm.com/x/teeko/pkg/common"
	"laptudirm.com/x/teeko/pkg/teeko/display"
	"laptudirm.com/x/teeko/pkg/teeko/input"
	"laptudirm.com/x/teeko/pkg/teeko/session"
)

var ErrNotTerminal = errors.New("play: standard input is not a terminal")

// teeko play
func Play() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Start a game of Teeko",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`play starts a game of Teeko between two players sharing
			the keyboard. Move the cursor with w/a/s/d or the arrow keys,
			press space to place, pick up or put down a piece, p to
			pause and q to quit. A piece with no empty square next to
			it can't be put down again once picked up, so leave such
			pieces alone.

			When a game is won, press any key to start the next one.
			While the board is on screen, logs are written to the
			teeko.log file in the xdg state directory.`),
		RunE: play,
	}
}

func play(cmd *cobra.Command, args []string) error {
	config, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	theme, err := config.Theme()
	if err != nil {
		return err
	}

	stdin := int(os.Stdin.Fd())
	if !term.IsTerminal(stdin) {
		return ErrNotTerminal
	}

	if width, height, err := term.GetSize(int(os.Stdout.Fd())); err == nil &&
		(width < display.MinWidth || height < display.MinHeight) {
		return fmt.Errorf(
			"play: terminal is %dx%d, need at least %dx%d",
			width, height, display.MinWidth, display.MinHeight,
		)
	}

	restoreLogs, err := redirectLogs()
	if err != nil {
		return err
	}
	defer restoreLogs()

	state, err := term.MakeRaw(stdin)
	if err != nil {
		return fmt.Errorf("play: %w", err)
	}
	defer term.Restore(stdin, state)

	terminal := display.NewTerminal(os.Stdout, theme)
	defer terminal.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logrus.WithFields(logrus.Fields{
		"flash": config.Flash(),
		"poll":  config.Poll(),
	}).Info("Starting session")

	s := session.New(session.Config{
		Display: terminal,
		Input:   input.NewReader(os.Stdin),

		FlashInterval: config.Flash(),
		PollInterval:  config.Poll(),
	})

	err = s.Run(ctx)
	logrus.WithFields(logrus.Fields{
		"games": s.Games(),
		"score": s.Score(),
	}).Info("Session finished")

	if errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}

// redirectLogs sends the logs to teeko.LogFile until the returned
// function is called.
func redirectLogs() (func(), error) {
	if err := teeko.TryMkdir(teeko.StateDirectory); err != nil {
		return nil, fmt.Errorf("play: %w", err)
	}

	file, err := os.OpenFile(teeko.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("play: %w", err)
	}

	logger := logrus.StandardLogger()
	previous := logger.Out
	logger.SetOutput(file)

	return func() {
		logger.SetOutput(previous)
		file.Close()
	}, nil
}

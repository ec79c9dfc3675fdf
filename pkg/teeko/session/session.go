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

// Package session runs games of Teeko one after another: it shows the
// start screen, drives the game loop and handles pausing and the end of
// each game.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/teeko/pkg/teeko/board"
	"laptudirm.com/x/teeko/pkg/teeko/cursor"
	"laptudirm.com/x/teeko/pkg/teeko/display"
	"laptudirm.com/x/teeko/pkg/teeko/game"
	"laptudirm.com/x/teeko/pkg/teeko/input"
)

// DefaultPollInterval is the time between two iterations of the loop.
const DefaultPollInterval = 10 * time.Millisecond

type Config struct {
	Display display.Display
	Input   input.Source
	Clock   Clock

	FlashInterval time.Duration
	PollInterval  time.Duration
}

// Session is a sequence of games played on a single display.
type Session struct {
	display display.Display
	input   input.Source
	clock   Clock

	game   *game.Game
	cursor *cursor.Controller

	poll   time.Duration
	ticker *time.Ticker
	score  Score
}

// errQuit stops the session without it being an error.
var errQuit = errors.New("session: quit")

// New returns a new Session. A missing clock defaults to a WallClock.
func New(config Config) *Session {
	if config.Clock == nil {
		config.Clock = NewWallClock()
	}

	if config.PollInterval <= 0 {
		config.PollInterval = DefaultPollInterval
	}

	g := game.New()
	return &Session{
		display: config.Display,
		input:   config.Input,
		clock:   config.Clock,

		game:   g,
		cursor: cursor.New(g, config.Display, config.FlashInterval),

		poll: config.PollInterval,
	}
}

// Run plays games until the players quit or ctx is cancelled. Quitting
// is not an error, cancellation returns ctx.Err().
func (session *Session) Run(ctx context.Context) error {
	session.ticker = time.NewTicker(session.poll)
	defer session.ticker.Stop()

	err := session.run(ctx)
	if errors.Is(err, errQuit) {
		logrus.WithField("score", session.score).Debug("session: quit")
		return nil
	}

	return err
}

func (session *Session) run(ctx context.Context) error {
	session.display.Message(
		"Teeko",
		"",
		"Place your four pieces, then move them one square at a time",
		"until four of them stand in a line.",
		"",
		"Press any key to start.",
	)
	if _, err := session.wait(ctx); err != nil {
		return err
	}

	for {
		if err := session.newGame(); err != nil {
			return err
		}

		winner, err := session.play(ctx)
		if err != nil {
			return err
		}

		session.score.Record(winner)
		logrus.WithFields(logrus.Fields{
			"winner":   winner,
			"position": session.game.FEN(),
			"score":    session.score,
		}).Info("Game over")

		session.display.Message(
			"GAME OVER",
			fmt.Sprintf("%s wins", winner),
			fmt.Sprintf("Score: %s", session.score),
			"",
			"Press any key to start again.",
		)
		if _, err := session.wait(ctx); err != nil {
			return err
		}
	}
}

// newGame resets the game and cursor and draws the empty board.
// Pending input is dropped, except for a Quit which is reported as
// errQuit.
func (session *Session) newGame() error {
	for event := session.input.Poll(); event != input.None; event = session.input.Poll() {
		if event == input.Quit {
			return errQuit
		}
	}

	session.game.Reset()
	session.cursor.Reset(session.clock.Millis())

	session.display.Clear()
	session.cursor.Redraw()
	session.status()
	return nil
}

// play runs the game loop until somebody wins.
func (session *Session) play(ctx context.Context) (board.Cell, error) {
	for {
		if winner, over := session.game.GameOver(); over {
			return winner, nil
		}

		if err := session.next(ctx); err != nil {
			return board.Empty, err
		}

		event := session.input.Poll()
		switch event {
		case input.Quit:
			return board.Empty, errQuit

		case input.PauseToggle:
			if err := session.pause(ctx); err != nil {
				return board.Empty, err
			}

		default:
			now := session.clock.Millis()
			if action := session.cursor.Handle(event, now); action != game.None {
				logrus.WithFields(logrus.Fields{
					"action":   action,
					"position": session.game.FEN(),
				}).Debug("session: action")
			}

			session.cursor.Tick(now)
		}

		session.status()
		if err := session.display.Flush(); err != nil {
			return board.Empty, err
		}
	}
}

// pause blocks everything but resuming or quitting. The time spent
// paused does not count towards the cursor's flash.
func (session *Session) pause(ctx context.Context) error {
	session.game.Pause()
	pausedAt := session.clock.Millis()

	session.display.ShowPaused(true)
	if err := session.display.Flush(); err != nil {
		return err
	}

	for {
		if err := session.next(ctx); err != nil {
			return err
		}

		switch session.input.Poll() {
		case input.Quit:
			session.display.ShowPaused(false)
			return errQuit

		case input.PauseToggle:
			session.game.Resume()
			session.cursor.Shift(session.clock.Millis() - pausedAt)
			session.display.ShowPaused(false)
			return nil
		}
	}
}

// status shows whose turn it is, the length of their longest line and
// whether the square under the cursor is a legal target.
func (session *Session) status() {
	turn := session.game.Turn()
	at := session.cursor.Position()

	session.display.ShowTurn(turn)
	session.display.ShowLongestRun(turn, session.game.LongestRun(turn))
	session.display.ShowLegal(session.game.IsLegalTarget(at.X, at.Y))
}

// wait blocks until any input arrives. Quit is reported as errQuit.
func (session *Session) wait(ctx context.Context) (input.Event, error) {
	if err := session.display.Flush(); err != nil {
		return input.None, err
	}

	for {
		if err := session.next(ctx); err != nil {
			return input.None, err
		}

		switch event := session.input.Poll(); event {
		case input.None:
		case input.Quit:
			return event, errQuit
		default:
			return event, nil
		}
	}
}

// next waits for the next iteration of the loop.
func (session *Session) next(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-session.ticker.C:
		return nil
	}
}

// Game returns the game being played.
func (session *Session) Game() *game.Game {
	return session.game
}

// Games returns the number of games finished so far.
func (session *Session) Games() int {
	return session.score.Games()
}

// Score returns the games won by each player so far.
func (session *Session) Score() Score {
	return session.score
}

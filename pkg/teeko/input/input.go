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

// Package input turns key presses into game events.
package input

import (
	"bufio"
	"io"

	"github.com/sirupsen/logrus"
)

// Event is a single discrete input.
type Event uint8

const (
	None Event = iota
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
	Confirm
	PauseToggle
	Quit
)

// String returns a string representation of the given Event.
func (event Event) String() string {
	switch event {
	case None:
		return "none"
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	case Confirm:
		return "confirm"
	case PauseToggle:
		return "pause"
	case Quit:
		return "quit"
	default:
		return "?"
	}
}

// Source is polled once per iteration of the game loop.
type Source interface {
	// Poll returns the next pending event, or None if there isn't one.
	// It never blocks.
	Poll() Event
}

// Key returns the event a single key maps to. Letters are matched
// case-insensitively.
func Key(key byte) Event {
	switch key {
	case 'a', 'A':
		return MoveLeft
	case 'd', 'D':
		return MoveRight
	case 'w', 'W':
		return MoveUp
	case 's', 'S':
		return MoveDown
	case ' ':
		return Confirm
	case 'p', 'P':
		return PauseToggle
	case 'q', 'Q', 0x03, 0x04: // ctrl-c and ctrl-d in raw mode
		return Quit
	default:
		return None
	}
}

// Decoder maps a stream of key bytes to events, recognizing the ANSI
// escape sequences of the arrow keys.
type Decoder struct {
	state int
}

const (
	ground = iota
	escape // got ESC
	csi    // got ESC [
)

// Feed passes the next byte to the decoder and returns the event it
// completes, if any.
func (decoder *Decoder) Feed(key byte) Event {
	switch decoder.state {
	case escape:
		if key == '[' {
			decoder.state = csi
			return None
		}

		decoder.state = ground

	case csi:
		decoder.state = ground
		switch key {
		case 'A':
			return MoveUp
		case 'B':
			return MoveDown
		case 'C':
			return MoveRight
		case 'D':
			return MoveLeft
		}

		return None
	}

	if key == 0x1b {
		decoder.state = escape
		return None
	}

	return Key(key)
}

// Reader is a Source reading keys from an io.Reader, like a terminal in
// raw mode. The reading happens on a separate goroutine which only
// forwards bytes, so Poll never blocks.
type Reader struct {
	keys    chan byte
	decoder Decoder

	closed bool
}

var _ Source = (*Reader)(nil)

// NewReader starts reading keys from r.
func NewReader(r io.Reader) *Reader {
	reader := &Reader{keys: make(chan byte, 64)}

	go func() {
		buffered := bufio.NewReader(r)
		for {
			key, err := buffered.ReadByte()
			if err != nil {
				logrus.WithError(err).Debug("input: stopped reading keys")
				close(reader.keys)
				return
			}

			logrus.Tracef("input: key %q", key)
			reader.keys <- key
		}
	}()

	return reader
}

// Poll returns the next pending event. Once the underlying reader is
// exhausted Poll keeps returning Quit.
func (reader *Reader) Poll() Event {
	for {
		if reader.closed {
			return Quit
		}

		select {
		case key, ok := <-reader.keys:
			if !ok {
				reader.closed = true
				return Quit
			}

			if event := reader.decoder.Feed(key); event != None {
				return event
			}

		default:
			return None
		}
	}
}

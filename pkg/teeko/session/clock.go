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

import "time"

// Clock is a monotonic millisecond counter.
type Clock interface {
	Millis() uint64
}

// WallClock counts the milliseconds since it was created.
type WallClock struct {
	start time.Time
}

// NewWallClock returns a WallClock starting at zero.
func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

// Millis returns the milliseconds elapsed since the clock was created.
func (clock *WallClock) Millis() uint64 {
	return uint64(time.Since(clock.start).Milliseconds())
}

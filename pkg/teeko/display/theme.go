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

package display

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Style is how a Visual looks on a terminal.
type Style struct {
	Symbol string
	Color  *color.Color
}

// Theme holds the Style of every Visual.
type Theme [VisualN]Style

// DefaultTheme returns the built-in Theme.
func DefaultTheme() Theme {
	return Theme{
		Empty:              {Symbol: "·", Color: color.New(color.FgHiBlack)},
		Player1:            {Symbol: "●", Color: color.New(color.FgHiRed)},
		Player2:            {Symbol: "●", Color: color.New(color.FgHiYellow)},
		CursorIdle:         {Symbol: "◇", Color: color.New(color.FgHiCyan, color.Bold)},
		CursorHoldingPiece: {Symbol: "◆", Color: color.New(color.FgHiMagenta, color.Bold)},
		LegalDestination:   {Symbol: "○", Color: color.New(color.FgHiGreen)},
	}
}

// Customize overrides the symbols and colours of the theme. Both maps
// are keyed by Visual names; colours are space separated attribute
// names such as "hi-red bold".
func (theme *Theme) Customize(symbols, colors map[string]string) error {
	for name, symbol := range symbols {
		v, err := ParseVisual(name)
		if err != nil {
			return err
		}

		theme[v].Symbol = symbol
	}

	for name, value := range colors {
		v, err := ParseVisual(name)
		if err != nil {
			return err
		}

		attrs, err := ParseColor(value)
		if err != nil {
			return err
		}

		theme[v].Color = color.New(attrs...)
	}

	return nil
}

// DisableColor turns colour output off for every Style.
func (theme *Theme) DisableColor() {
	for i := range theme {
		if theme[i].Color != nil {
			theme[i].Color.DisableColor()
		}
	}
}

var attributes = map[string]color.Attribute{
	"bold":      color.Bold,
	"faint":     color.Faint,
	"underline": color.Underline,
	"blink":     color.BlinkSlow,
	"reverse":   color.ReverseVideo,

	"black":   color.FgBlack,
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,

	"hi-black":   color.FgHiBlack,
	"hi-red":     color.FgHiRed,
	"hi-green":   color.FgHiGreen,
	"hi-yellow":  color.FgHiYellow,
	"hi-blue":    color.FgHiBlue,
	"hi-magenta": color.FgHiMagenta,
	"hi-cyan":    color.FgHiCyan,
	"hi-white":   color.FgHiWhite,

	"bg-black":   color.BgBlack,
	"bg-red":     color.BgRed,
	"bg-green":   color.BgGreen,
	"bg-yellow":  color.BgYellow,
	"bg-blue":    color.BgBlue,
	"bg-magenta": color.BgMagenta,
	"bg-cyan":    color.BgCyan,
	"bg-white":   color.BgWhite,
}

// ParseColor parses a space separated list of attribute names.
func ParseColor(names string) ([]color.Attribute, error) {
	var attrs []color.Attribute
	for _, name := range strings.Fields(names) {
		attr, found := attributes[strings.ToLower(name)]
		if !found {
			return nil, fmt.Errorf("display: unknown color %q", name)
		}

		attrs = append(attrs, attr)
	}

	return attrs, nil
}

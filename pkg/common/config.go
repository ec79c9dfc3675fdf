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

package teeko

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/teeko/pkg/teeko/display"
)

//go:embed config.yaml
var BaseConfigFile []byte

// Config holds the user interface settings. The game itself has none.
type Config struct {
	// FlashInterval and PollInterval are in milliseconds.
	FlashInterval int  `yaml:"flash-interval" env:"TEEKO_FLASH_INTERVAL"`
	PollInterval  int  `yaml:"poll-interval" env:"TEEKO_POLL_INTERVAL"`
	NoColor       bool `yaml:"no-color" env:"TEEKO_NO_COLOR"`

	Symbols map[string]string `yaml:"symbols"`
	Colors  map[string]string `yaml:"colors"`
}

var ErrInvalidConfig = errors.New("config: intervals must be positive")

// DefaultConfig returns the configuration of BaseConfigFile.
func DefaultConfig() Config {
	var config Config
	if err := yaml.Unmarshal(BaseConfigFile, &config); err != nil {
		panic(fmt.Errorf("config: embedded default: %w", err))
	}

	return config
}

// LoadConfig reads the configuration at path on top of the defaults,
// and then applies the environment overrides. A missing file is not an
// error. The result is not validated, since command line flags may
// still override it; call Validate once every layer is applied.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	file, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logrus.WithField("path", path).Debug("No configuration file found")
	case err != nil:
		return Config{}, fmt.Errorf("config: %w", err)
	default:
		if err := yaml.Unmarshal(file, &config); err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", path, err)
		}

		logrus.WithField("path", path).Debug("Loaded configuration file")
	}

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	return config, nil
}

// Validate checks that the configuration is usable.
func (config Config) Validate() error {
	if config.FlashInterval <= 0 || config.PollInterval <= 0 {
		return ErrInvalidConfig
	}

	return nil
}

// Flash returns the cursor's flash interval.
func (config Config) Flash() time.Duration {
	return time.Duration(config.FlashInterval) * time.Millisecond
}

// Poll returns the game loop's poll interval.
func (config Config) Poll() time.Duration {
	return time.Duration(config.PollInterval) * time.Millisecond
}

// Theme returns the default display.Theme with the configured symbols
// and colours applied.
func (config Config) Theme() (display.Theme, error) {
	theme := display.DefaultTheme()
	if err := theme.Customize(config.Symbols, config.Colors); err != nil {
		return display.Theme{}, fmt.Errorf("config: %w", err)
	}

	if config.NoColor {
		theme.DisableColor()
	}

	return theme, nil
}

// Dump writes the configuration as YAML.
func (config Config) Dump(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(config); err != nil {
		return err
	}

	return encoder.Close()
}

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
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const FilePermissions = 0755

var (
	// Directory is where teeko looks for its configuration.
	Directory = filepath.Join(xdg.ConfigHome, "teeko")

	// StateDirectory is where teeko writes its log.
	StateDirectory = filepath.Join(xdg.StateHome, "teeko")

	// ConfigFile is the path of the configuration file.
	ConfigFile = filepath.Join(Directory, "config.yaml")

	// LogFile is the path of the log written while a game is on screen.
	LogFile = filepath.Join(StateDirectory, "teeko.log")
)

func TryMkdir(dir string) error {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return os.MkdirAll(dir, FilePermissions)
	}

	return nil
}

// TryCreate writes data to file unless the file already exists, and
// reports if it did.
func TryCreate(file string, data []byte) (bool, error) {
	if _, err := os.Stat(file); !errors.Is(err, fs.ErrNotExist) {
		return false, err
	}

	if err := TryMkdir(filepath.Dir(file)); err != nil {
		return false, err
	}

	return true, os.WriteFile(file, data, 0644)
}

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// CfgFile is the default config file name.
const CfgFile = "punctguess.toml"

// Values are the settings read from the config file.
type Values struct {
	PreserveMarkup bool   `toml:"preserve_markup"`
	LogLevel       string `toml:"log_level"`
	LogFile        string `toml:"log_file,omitempty"`
}

// BaseDefaults are used for every setting the config file leaves out.
var BaseDefaults = Values{
	PreserveMarkup: false,
	LogLevel:       "info",
}

// Load reads path from fsys on top of defaults. A missing file is not an
// error: the defaults are returned as they are.
//
//nolint:gocritic // values copied on purpose
func Load(fsys afero.Fs, path string, defaults Values) (Values, error) {
	if path == "" {
		return defaults, nil
	}

	data, err := afero.ReadFile(fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug().Msgf("no config file at %s, using defaults", path)
		return defaults, nil
	} else if err != nil {
		return defaults, fmt.Errorf("failed to read config file: %w", err)
	}

	vals := defaults
	if err := toml.Unmarshal(data, &vals); err != nil {
		return defaults, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return vals, nil
}

// Save writes vals to path, creating or truncating it.
//
//nolint:gocritic // values copied on purpose
func Save(fsys afero.Fs, path string, vals Values) error {
	data, err := toml.Marshal(&vals)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := afero.WriteFile(fsys, path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

package main

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/akeil/texscale"
)

// settings holds options that can come from the command line, the
// environment or a settings file.
type settings struct {
	Algorithm string `toml:"algorithm"`
	Workers   int    `toml:"workers"`
	Jobs      int    `toml:"jobs"`
	LogLevel  string `toml:"log_level"`
}

func defaultSettings() settings {
	return settings{
		Algorithm: texscale.DefaultAlgorithm.String(),
		Workers:   0,
		Jobs:      2,
		LogLevel:  "warning",
	}
}

// merge returns s with all non-zero fields of o applied on top.
func (s settings) merge(o settings) settings {
	if o.Algorithm != "" {
		s.Algorithm = o.Algorithm
	}
	if o.Workers != 0 {
		s.Workers = o.Workers
	}
	if o.Jobs != 0 {
		s.Jobs = o.Jobs
	}
	if o.LogLevel != "" {
		s.LogLevel = o.LogLevel
	}
	return s
}

// defaultSettingsPath is used when no settings file is given explicitly.
func defaultSettingsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "texscale", "config.toml")
}

// readSettings parses a TOML settings file.
// Unknown keys are an error so that typos do not go unnoticed.
func readSettings(path string) (settings, error) {
	var s settings
	f, err := os.Open(path)
	if err != nil {
		return s, err
	}
	defer f.Close()

	dec := toml.NewDecoder(f).DisallowUnknownFields()
	err = dec.Decode(&s)
	return s, err
}

// loadSettings combines defaults, the settings file and cmd (flags and
// environment), in increasing order of precedence.
//
// A missing file is only an error if the path was given explicitly.
func loadSettings(path string, cmd settings) (settings, error) {
	s := defaultSettings()

	explicit := path != ""
	if !explicit {
		path = defaultSettingsPath()
	}

	if path != "" {
		file, err := readSettings(path)
		switch {
		case err == nil:
			s = s.merge(file)
		case os.IsNotExist(err) && !explicit:
			// optional
		default:
			return s, err
		}
	}

	return s.merge(cmd), nil
}

// Copyright 2025 The Paymentflow Authors
// This file is part of paymentflow.
//
// paymentflow is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// paymentflow is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with paymentflow. If not, see <http://www.gnu.org/licenses/>.

// Package config loads the optional TOML file backing the ambient CLI
// flags (worker count, log level, metrics address). CLI flags always
// take precedence over a loaded file, which takes precedence over
// Defaults.
package config

import (
	"fmt"
	"os"
	"runtime"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the settings the CLI exposes as flags.
type Config struct {
	Workers     int    `toml:"workers"`
	LogLevel    string `toml:"log_level"`
	MetricsAddr string `toml:"metrics_addr"`
}

// Defaults returns the configuration used when no file is given and no
// flag overrides it.
func Defaults() Config {
	return Config{
		Workers:     runtime.NumCPU(),
		LogLevel:    "info",
		MetricsAddr: "",
	}
}

// Load reads and parses a TOML file at path, starting from Defaults so
// that a file which only sets one field still gets sane values for the
// rest.
func Load(path string) (Config, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

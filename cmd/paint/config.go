// seehuhn.de/go/paint - an interactive raster painting engine
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"seehuhn.de/go/paint"
)

// config is the on-disk configuration of the paint command. Colors are
// "#rrggbb" strings in the file; the parsed fields below them are
// filled in by loadConfig.
type config struct {
	WindowWidth  int
	WindowHeight int
	Background   string
	Palette      []string // colors on the digit keys, in key order
	DrawRadius   int
	EraseRadius  int
	HistoryDepth int
	Debug        bool

	background paint.Pixel
	palette    []paint.Pixel
}

const configFile = "config.toml"

func defaultConfig() *config {
	return &config{
		WindowWidth:  800,
		WindowHeight: 600,
		Background:   "#000000",
		Palette:      []string{"#ef4444", "#22c55e", "#3b82f6", "#ffffff"},
		DrawRadius:   1,
		EraseRadius:  20,
		HistoryDepth: paint.DefaultHistoryDepth,
		Debug:        false,
	}
}

// loadConfig reads the configuration from the user's config directory,
// writing the defaults there first if no file exists yet.
func loadConfig() (*config, error) {
	dir := configDir()
	file := filepath.Join(dir, configFile)

	if _, err := os.Stat(file); os.IsNotExist(err) {
		if err := writeConfig(dir, file, defaultConfig()); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("checking config file: %w", err)
	}

	cfg := defaultConfig()
	if _, err := toml.DecodeFile(file, cfg); err != nil {
		return nil, fmt.Errorf("reading %s: %w", file, err)
	}

	var err error
	cfg.background, err = parseColor(cfg.Background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	cfg.palette = make([]paint.Pixel, len(cfg.Palette))
	for i, s := range cfg.Palette {
		cfg.palette[i], err = parseColor(s)
		if err != nil {
			return nil, fmt.Errorf("palette entry %d: %w", i+1, err)
		}
	}
	if len(cfg.palette) == 0 {
		return nil, fmt.Errorf("palette must not be empty")
	}
	return cfg, nil
}

func writeConfig(dir, file string, cfg *config) error {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encoding default config: %w", err)
	}
	if err := os.WriteFile(file, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", file, err)
	}
	return nil
}

func configDir() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		base = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(base, "paint")
}

// parseColor parses a "#rrggbb" color string into an opaque pixel.
func parseColor(s string) (paint.Pixel, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return 0, fmt.Errorf("invalid color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return paint.NewPixel(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

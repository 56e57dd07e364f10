// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"cogentcore.org/geom/base/fsx"
	"cogentcore.org/geom/base/iox/tomlx"
	"github.com/spf13/pflag"
)

// ConfigFile is the name of the config file looked for
// when none is given with the config flag.
const ConfigFile = "geomq.toml"

// ConfigPaths returns the directories searched for [ConfigFile], in
// increasing order of precedence: the user config directory, then
// the current directory.
func ConfigPaths() []string {
	var paths []string
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "geomq"))
	}
	return append(paths, ".")
}

// FindConfigFiles returns the [ConfigFile]s found on [ConfigPaths].
func FindConfigFiles() []string {
	return fsx.FindFilesOnPaths(ConfigPaths(), ConfigFile)
}

// Config is the configuration of geomq, read from an optional TOML file
// and overridden by command line flags.
type Config struct {

	// Epsilon is the tolerance of the tests that take one.
	// Zero uses the value of each query file.
	Epsilon float32

	// Format is the output format: text or yaml.
	Format string

	// Color is whether to color text output.
	Color bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Format: "text", Color: true}
}

// flag names of the config fields
const (
	epsilonFlag = "epsilon"
	formatFlag  = "format"
	colorFlag   = "color"
)

// AddFlags adds flags for the fields of the config to the flag set,
// with its current values as defaults.
func (c *Config) AddFlags(fs *pflag.FlagSet) {
	fs.Float32Var(&c.Epsilon, epsilonFlag, c.Epsilon, "tolerance of the ray and segment tests (0 uses the query file's)")
	fs.StringVar(&c.Format, formatFlag, c.Format, "output format: text or yaml")
	fs.BoolVar(&c.Color, colorFlag, c.Color, "color text output")
}

// Open reads the config files in order, so that later files override
// earlier ones, and sets the fields whose flags were not set on the
// command line.
func (c *Config) Open(fs *pflag.FlagSet, filenames ...string) error {
	fc := DefaultConfig()
	if err := tomlx.OpenFiles(&fc, filenames...); err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	if !fs.Changed(epsilonFlag) {
		c.Epsilon = fc.Epsilon
	}
	if !fs.Changed(formatFlag) {
		c.Format = fc.Format
	}
	if !fs.Changed(colorFlag) {
		c.Color = fc.Color
	}
	return nil
}

// Validate returns an error for an unknown format or a negative epsilon.
func (c *Config) Validate() error {
	switch c.Format {
	case "text", "yaml":
	default:
		return fmt.Errorf("unknown format %q (want text or yaml)", c.Format)
	}
	if c.Epsilon < 0 {
		return fmt.Errorf("epsilon must not be negative, got %g", c.Epsilon)
	}
	return nil
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package query

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"cogentcore.org/geom/base/iox/tomlx"
	"cogentcore.org/geom/base/iox/yamlx"
)

// Format is the encoding of a query file.
type Format string

const (
	TOML Format = "toml"
	YAML Format = "yaml"
)

// FormatFromFilename returns the format for the extension of the filename:
// .toml, or .yaml or .yml.
func FormatFromFilename(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return "", fmt.Errorf("query: unsupported file extension for %q (want .toml, .yaml or .yml)", filename)
}

// Open reads a [File] from the given filename, in the format
// given by its extension.
func Open(filename string) (*File, error) {
	format, err := FormatFromFilename(filename)
	if err != nil {
		return nil, err
	}
	f := &File{}
	switch format {
	case TOML:
		err = tomlx.Open(f, filename)
	case YAML:
		err = yamlx.Open(f, filename)
	}
	if err != nil {
		return nil, fmt.Errorf("query: reading %q: %w", filename, err)
	}
	return f, nil
}

// Read reads a [File] in the given format from the reader.
func Read(r io.Reader, format Format) (*File, error) {
	f := &File{}
	var err error
	switch format {
	case TOML:
		err = tomlx.Read(f, r)
	case YAML:
		err = yamlx.Read(f, r)
	default:
		return nil, fmt.Errorf("query: unknown format %q", format)
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

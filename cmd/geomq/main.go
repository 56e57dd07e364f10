// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command geomq evaluates 2D and 3D intersection queries.
//
// Query files, in TOML or YAML, define named shapes and the queries
// to evaluate on them. For example:
//
//	geomq eval scene.toml
//	geomq --format yaml scene.yaml
//	geomq shapes scene.toml
//	geomq ops
package main

import (
	"os"

	"cogentcore.org/geom/base/errors"
)

func main() {
	if errors.Log(newRootCmd().Execute()) != nil {
		os.Exit(1)
	}
}

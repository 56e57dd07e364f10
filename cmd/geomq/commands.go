// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"

	"cogentcore.org/geom/base/errors"
	"cogentcore.org/geom/base/logx"
	"cogentcore.org/geom/query"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cfg := DefaultConfig()
	var (
		configFile  string
		verbose     bool
		veryVerbose bool
		quiet       bool
	)

	root := &cobra.Command{
		Use:   "geomq [files...]",
		Short: "Evaluate 2D and 3D intersection queries",
		Long: `geomq evaluates the intersection and distance queries of TOML or YAML
query files. With no command, the files are evaluated as with eval.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logx.UserLevel = logx.LevelFromFlags(veryVerbose, verbose, quiet)
			logx.SetDefaultLoggerTo(cmd.ErrOrStderr())
			files := []string{configFile}
			if configFile == "" {
				files = FindConfigFiles()
			}
			if len(files) > 0 {
				slog.Debug("reading config", "files", files)
				if err := cfg.Open(cmd.Flags(), files...); err != nil {
					return err
				}
			}
			logx.SetColor(cfg.Color)
			return cfg.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runEval(cmd, &cfg, args)
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "show info messages")
	pf.BoolVar(&veryVerbose, "vv", false, "show debug messages")
	pf.BoolVarP(&quiet, "quiet", "q", false, "only show errors")
	pf.StringVar(&configFile, "config", "", "TOML config file (default: "+ConfigFile+" in the user config or current directory)")
	cfg.AddFlags(pf)

	root.AddCommand(
		&cobra.Command{
			Use:   "eval files...",
			Short: "Evaluate the queries of query files",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runEval(cmd, &cfg, args)
			},
		},
		&cobra.Command{
			Use:   "shapes files...",
			Short: "List the shapes of query files",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runShapes(cmd, args)
			},
		},
		&cobra.Command{
			Use:   "ops",
			Short: "List the query operations",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				printOps(cmd.OutOrStdout())
			},
		},
	)
	return root
}

// loadScene opens the query file and builds its scene.
func loadScene(filename string) (*query.File, *query.Scene, error) {
	f, err := query.Open(filename)
	if err != nil {
		return nil, nil, err
	}
	sc, err := query.NewSceneFromFile(f)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", filename, err)
	}
	slog.Info("loaded scene", "file", filename, "shapes", sc.Len(), "queries", len(f.Queries))
	return f, sc, nil
}

func runEval(cmd *cobra.Command, cfg *Config, files []string) error {
	w := cmd.OutOrStdout()
	var errs []error
	for _, fn := range files {
		f, sc, err := loadScene(fn)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if cfg.Epsilon != 0 {
			sc.Epsilon = cfg.Epsilon
		}
		rs, err := sc.EvaluateAll(f.Queries)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", fn, err))
		}
		if cfg.Format == "yaml" {
			if werr := query.WriteYAML(rs, w); werr != nil {
				errs = append(errs, werr)
			}
		} else {
			if len(files) > 1 {
				fmt.Fprintln(w, logx.CmdColor(fn))
			}
			printResults(w, rs)
		}
	}
	return errors.Join(errs...)
}

func runShapes(cmd *cobra.Command, files []string) error {
	w := cmd.OutOrStdout()
	var errs []error
	for _, fn := range files {
		_, sc, err := loadScene(fn)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if len(files) > 1 {
			fmt.Fprintln(w, logx.CmdColor(fn))
		}
		printShapes(w, sc)
	}
	return errors.Join(errs...)
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"cogentcore.org/geom/base/logx"
	"cogentcore.org/geom/query"
)

// printResults prints one line per result: hit or miss, the query,
// and the values the operation produced.
func printResults(w io.Writer, rs []query.Result) {
	for _, r := range rs {
		status := logx.ErrorColor("miss")
		if r.Hit {
			status = logx.SuccessColor("hit ")
		}
		fmt.Fprintf(w, "%s %s%s\n", status, r.Query, details(r))
	}
}

func details(r query.Result) string {
	var b strings.Builder
	if r.Distance != nil {
		fmt.Fprintf(&b, " distance=%g", *r.Distance)
	}
	if r.Hits != nil {
		fmt.Fprintf(&b, " hits=[%g, %g]", r.Hits.Min, r.Hits.Max)
	}
	if r.Point != nil {
		fmt.Fprintf(&b, " point=%s", vector(r.Point))
	}
	if r.HalfLength != nil {
		fmt.Fprintf(&b, " halfLength=%g", *r.HalfLength)
	}
	if r.Radius != nil {
		fmt.Fprintf(&b, " radius=%g", *r.Radius)
	}
	if r.Normal != nil {
		fmt.Fprintf(&b, " normal=%s", vector(r.Normal))
	}
	if r.Region != "" {
		fmt.Fprintf(&b, " region=%s", r.Region)
	}
	return b.String()
}

func vector(v []float32) string {
	s := make([]string, len(v))
	for i, x := range v {
		s[i] = fmt.Sprintf("%g", x)
	}
	return "(" + strings.Join(s, ", ") + ")"
}

func printShapes(w io.Writer, sc *query.Scene) {
	shapes := sc.Shapes()
	names := make([]string, len(shapes))
	for i, s := range shapes {
		names[i] = s.Name
	}
	pad := padder(names)
	for _, s := range shapes {
		fmt.Fprintf(w, "%s %-9s %+v\n", pad(s.Name), s.Kind, s.Value)
	}
}

func printOps(w io.Writer) {
	ops := query.Ops()
	usages := make([]string, len(ops))
	for i, op := range ops {
		usages[i] = op.Usage()
	}
	pad := padder(usages)
	for i, op := range ops {
		fmt.Fprintf(w, "%s %s\n", pad(usages[i]), op.Doc)
	}
}

// padder returns a function that colors one of the given strings as
// a name and pads it to the length of the longest. Padding is applied
// outside the color so that it does not count escape sequences.
func padder(strs []string) func(s string) string {
	width := 0
	for _, s := range strs {
		width = max(width, len(s))
	}
	return func(s string) string {
		return logx.CmdColor(s) + strings.Repeat(" ", width-len(s))
	}
}

// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package flagutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type testOptions struct {
	help    bool
	output  string
	count   uint
	targets []string
	tool    []string
}

func newTestParser(opts *testOptions) *Parser {
	p := NewParser()
	p.Bool("-h", "--help", &opts.help)
	p.String("-o", "--output", &opts.output)
	p.Uint("-j", "--parallel", &opts.count)
	p.StringList("-t", "--targets", &opts.targets)
	p.Terminal("--tool", &opts.tool)
	return p
}

func TestParserSpellings(t *testing.T) {
	for _, args := range [][]string{
		{"-h"},
		{"--help"},
	} {
		var opts testOptions
		if err := newTestParser(&opts).Parse(args); err != nil {
			t.Fatalf("Parse(%q)=%v; want nil err", args, err)
		}
		if !opts.help {
			t.Errorf("Parse(%q): help not set", args)
		}
	}
	for _, args := range [][]string{
		{"-o", "out.dot"},
		{"--output", "out.dot"},
		{"-oout.dot"},
	} {
		var opts testOptions
		if err := newTestParser(&opts).Parse(args); err != nil {
			t.Fatalf("Parse(%q)=%v; want nil err", args, err)
		}
		if opts.output != "out.dot" {
			t.Errorf("Parse(%q): output=%q; want %q", args, opts.output, "out.dot")
		}
	}
}

func TestParserUint(t *testing.T) {
	var opts testOptions
	if err := newTestParser(&opts).Parse([]string{"-j", "8"}); err != nil {
		t.Fatalf("Parse=%v; want nil err", err)
	}
	if opts.count != 8 {
		t.Errorf("count=%d; want 8", opts.count)
	}
	opts = testOptions{}
	if err := newTestParser(&opts).Parse([]string{"-j4"}); err != nil {
		t.Fatalf("Parse=%v; want nil err", err)
	}
	if opts.count != 4 {
		t.Errorf("count=%d; want 4", opts.count)
	}
	opts = testOptions{}
	if err := newTestParser(&opts).Parse([]string{"-j", "four"}); err == nil {
		t.Errorf("Parse accepted non-integer value")
	}
}

func TestParserList(t *testing.T) {
	var opts testOptions
	err := newTestParser(&opts).Parse([]string{"-t", "liba", "libb", "-h"})
	if err != nil {
		t.Fatalf("Parse=%v; want nil err", err)
	}
	if diff := cmp.Diff([]string{"liba", "libb"}, opts.targets); diff != "" {
		t.Errorf("targets diff -want +got:\n%s", diff)
	}
	if !opts.help {
		t.Errorf("help not set after list terminated by flag")
	}

	opts = testOptions{}
	if err := newTestParser(&opts).Parse([]string{"-t", "-h"}); err == nil {
		t.Errorf("Parse accepted a list flag with no values")
	}
	opts = testOptions{}
	if err := newTestParser(&opts).Parse([]string{"-tliba"}); err == nil {
		t.Errorf("Parse accepted an attached value for a list flag")
	}
}

func TestParserValueRejectsDash(t *testing.T) {
	var opts testOptions
	if err := newTestParser(&opts).Parse([]string{"-o", "-h"}); err == nil {
		t.Errorf("Parse accepted a dash-prefixed value")
	}
	opts = testOptions{}
	if err := newTestParser(&opts).Parse([]string{"-o"}); err == nil {
		t.Errorf("Parse accepted a value flag with no value")
	}
}

func TestParserTerminal(t *testing.T) {
	var opts testOptions
	args := []string{"-j2", "--tool", "graph", "-o", "out.dot", "--weird"}
	if err := newTestParser(&opts).Parse(args); err != nil {
		t.Fatalf("Parse=%v; want nil err", err)
	}
	if diff := cmp.Diff([]string{"graph", "-o", "out.dot", "--weird"}, opts.tool); diff != "" {
		t.Errorf("tool diff -want +got:\n%s", diff)
	}
	opts = testOptions{}
	if err := newTestParser(&opts).Parse([]string{"--tool"}); err == nil {
		t.Errorf("Parse accepted a bare terminal flag")
	}
}

func TestParserUnknown(t *testing.T) {
	var opts testOptions
	err := newTestParser(&opts).Parse([]string{"--frobnicate"})
	if err == nil || err.Error() == "" {
		t.Errorf("Parse(--frobnicate)=%v; want non-empty error", err)
	}
}

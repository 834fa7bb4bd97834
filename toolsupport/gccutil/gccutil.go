// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package gccutil provides utilities for gcc/clang style command lines.
package gccutil

import (
	"fmt"
	"runtime"
	"strings"
)

// ScanParams holds include-search parameters extracted from a compile
// command line.
type ScanParams struct {
	// QuoteDirs are -iquote directories, searched for the quoted
	// include form only.
	QuoteDirs []string
	// Dirs are -I and -isystem directories, searched for both forms.
	Dirs []string
	// Includes are files forced into the translation unit (-include).
	Includes []string
	// Defines maps macros defined on the command line to header-ish
	// values ("path.h" or <path.h>).
	Defines map[string]string
}

// ExtractScanParams parses the include-path-management flags of args.
// It only handles the major spellings used by gcc and clang.
func ExtractScanParams(args []string) ScanParams {
	params := ScanParams{Defines: make(map[string]string)}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-I", "--include-directory", "-isystem":
			if i+1 < len(args) {
				i++
				params.Dirs = append(params.Dirs, args[i])
			}
			continue
		case "-iquote":
			if i+1 < len(args) {
				i++
				params.QuoteDirs = append(params.QuoteDirs, args[i])
			}
			continue
		case "-include":
			if i+1 < len(args) {
				i++
				params.Includes = append(params.Includes, args[i])
			}
			continue
		case "-D":
			if i+1 < len(args) {
				i++
				defineMacro(params.Defines, args[i])
			}
			continue
		}
		switch {
		case strings.HasPrefix(arg, "-I"):
			params.Dirs = append(params.Dirs, strings.TrimPrefix(arg, "-I"))
		case strings.HasPrefix(arg, "--include-directory="):
			params.Dirs = append(params.Dirs, strings.TrimPrefix(arg, "--include-directory="))
		case strings.HasPrefix(arg, "-isystem"):
			params.Dirs = append(params.Dirs, strings.TrimPrefix(arg, "-isystem"))
		case strings.HasPrefix(arg, "-iquote"):
			params.QuoteDirs = append(params.QuoteDirs, strings.TrimPrefix(arg, "-iquote"))
		case strings.HasPrefix(arg, "-D"):
			defineMacro(params.Defines, strings.TrimPrefix(arg, "-D"))
		}
	}
	return params
}

func defineMacro(defines map[string]string, arg string) {
	// arg: MACRO=value
	macro, value, ok := strings.Cut(arg, "=")
	if !ok || value == "" {
		// a bare or empty define cannot name a header.
		return
	}
	switch value[0] {
	case '<', '"':
		defines[macro] = value
	}
}

// PreprocessArgs rewrites a compile command for preprocess-only
// operation: output and dependency-file emission are dropped, syntax-only
// is forced, and the resource directory override is appended. On Windows
// warnings-as-errors is suppressed.
func PreprocessArgs(args []string, resourceDir string) []string {
	out := make([]string, 0, len(args)+4)
	skip := false
	for _, arg := range args {
		if skip {
			skip = false
			continue
		}
		switch arg {
		case "-MD", "-MMD", "-MG", "-MP", "-c":
			continue
		case "-o", "-MF", "-MT", "-MQ":
			skip = true
			continue
		}
		if strings.HasPrefix(arg, "-o") || strings.HasPrefix(arg, "-MF") {
			continue
		}
		out = append(out, arg)
	}
	out = append(out, "-fsyntax-only")
	out = append(out, fmt.Sprintf("-resource-dir=%s", resourceDir))
	if runtime.GOOS == "windows" {
		out = append(out, "-Wno-error", "-Wno-unused-command-line-argument")
	}
	return out
}

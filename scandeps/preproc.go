// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package scandeps

import (
	"path/filepath"

	log "github.com/golang/glog"

	"go.chromium.org/infra/build/lwyi/pathutil"
	"go.chromium.org/infra/build/lwyi/toolsupport/gccutil"
)

// predefinesFile is the pseudo-file for the compiler-defined macro
// region, entered before the main source file.
const predefinesFile = "<built-in>"

// events receives the preprocessing event stream. An InclusionDirective
// precedes every file-enter and every file-skip.
type events interface {
	// FileChanged reports that file is now being lexed. On enter, prev
	// is the includer; on exit, prev is the file being left.
	FileChanged(file, prev string, enter bool)
	// InclusionDirective reports an #include at line of the file
	// currently being lexed.
	InclusionDirective(line int)
	// FileSkipped reports an include that resolved to a file the
	// preprocessor chose not to re-enter.
	FileSkipped(path string)
}

// preprocessor walks one translation unit in preprocess-only mode,
// resolving includes against the compile command's search directories
// and emitting events to cb.
type preprocessor struct {
	fs     *filesystem
	cwd    string
	params gccutil.ScanParams
	cb     events

	macros   map[string][]string
	visited  map[string]bool
	dirstack []string
}

func newPreprocessor(fsys *filesystem, cwd string, params gccutil.ScanParams, cb events) *preprocessor {
	pp := &preprocessor{
		fs:      fsys,
		cwd:     cwd,
		params:  params,
		cb:      cb,
		macros:  make(map[string][]string),
		visited: make(map[string]bool),
	}
	for macro, value := range params.Defines {
		pp.macros[macro] = append(pp.macros[macro], value)
	}
	return pp
}

// run preprocesses the main source file.
func (pp *preprocessor) run(mainFile string) error {
	main := pp.abs(mainFile)
	sr := pp.fs.scanFile(main)
	if sr.err != nil {
		return sr.err
	}

	pp.cb.FileChanged(predefinesFile, "", true)
	pp.visited[main] = true
	pp.cb.FileChanged(main, predefinesFile, true)
	pp.dirstack = append(pp.dirstack, filepath.Dir(main))

	// -include files behave as if the unit began with #include "file".
	for _, forced := range pp.params.Includes {
		pp.handleInclude(main, directive{kind: includeDirective, line: 1, name: `"` + forced + `"`})
	}
	pp.processFile(main, sr)
	return nil
}

func (pp *preprocessor) abs(path string) string {
	if !filepath.IsAbs(path) {
		path = filepath.Join(pp.cwd, path)
	}
	return pathutil.Normalize(path)
}

func (pp *preprocessor) processFile(path string, sr *scanResult) {
	for _, d := range sr.directives {
		switch d.kind {
		case defineDirective:
			pp.updateMacro(d)
		case includeDirective:
			pp.handleInclude(path, d)
		}
	}
}

func (pp *preprocessor) updateMacro(d directive) {
	seen := make(map[string]bool)
	for _, v := range pp.macros[d.macro] {
		seen[v] = true
	}
	for _, v := range d.values {
		if seen[v] {
			continue
		}
		seen[v] = true
		pp.macros[d.macro] = append(pp.macros[d.macro], v)
	}
}

func (pp *preprocessor) handleInclude(from string, d directive) {
	for _, name := range expandMacros(nil, d.name, pp.macros) {
		resolved := pp.find(name)
		if resolved == "" {
			if log.V(1) {
				log.Infof("%s:%d: cannot resolve include %s", from, d.line, name)
			}
			continue
		}
		pp.cb.InclusionDirective(d.line)
		if pp.visited[resolved] {
			pp.cb.FileSkipped(resolved)
			continue
		}
		pp.visited[resolved] = true
		sr := pp.fs.scanFile(resolved)
		pp.cb.FileChanged(resolved, from, true)
		pp.dirstack = append(pp.dirstack, filepath.Dir(resolved))
		pp.processFile(resolved, sr)
		pp.dirstack = pp.dirstack[:len(pp.dirstack)-1]
		pp.cb.FileChanged(from, resolved, false)
	}
}

// find resolves an include spelling to an existing absolute normalized
// path, or "" when no search directory has it. The quoted form searches
// the directories of the open files innermost first, then -iquote, then
// the -I/-isystem directories; the angled form searches the latter only.
func (pp *preprocessor) find(name string) string {
	if len(name) < 2 {
		return ""
	}
	form := name[0]
	bare := name[1 : len(name)-1]
	if filepath.IsAbs(bare) {
		if p := pathutil.Normalize(bare); pp.fs.exists(p) {
			return p
		}
		return ""
	}

	var dirs []string
	if form == '"' {
		for i := len(pp.dirstack) - 1; i >= 0; i-- {
			dirs = append(dirs, pp.dirstack[i])
		}
		dirs = append(dirs, pp.params.QuoteDirs...)
	}
	dirs = append(dirs, pp.params.Dirs...)

	for _, dir := range dirs {
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(pp.cwd, dir)
		}
		p := pathutil.Normalize(filepath.Join(dir, bare))
		if pp.fs.exists(p) {
			return p
		}
	}
	return ""
}

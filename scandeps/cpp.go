// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package scandeps

import (
	"bytes"
	"strings"

	log "github.com/golang/glog"
)

type directiveKind int

const (
	includeDirective directiveKind = iota
	defineDirective
)

// directive is one recognized preprocessor directive, in file order.
type directive struct {
	kind directiveKind
	line int

	// include: `"foo.h"`, `<foo.h>` or a macro name.
	name string

	// define: macro and its value(s) spelled like an include operand.
	macro  string
	values []string
}

// cppScan scans buf for #include/#import/#define directives.
func cppScan(fname string, buf []byte) []directive {
	var directives []directive
	lineno := 0
	for len(buf) > 0 {
		lineno++
		var line []byte
		if i := bytes.IndexByte(buf, '\n'); i < 0 {
			line = buf
			buf = nil
		} else {
			line = buf[:i]
			buf = buf[i+1:]
		}
		line = bytes.TrimSpace(line)
		if len(line) == 0 || line[0] != '#' {
			continue
		}
		// skip #
		line = bytes.TrimSpace(line[1:])

		switch {
		case bytes.HasPrefix(line, []byte("include")):
			line = bytes.TrimPrefix(line, []byte("include"))
			switch {
			case bytes.HasPrefix(line, []byte("_next")):
				line = bytes.TrimPrefix(line, []byte("_next"))
			case len(line) > 0 && (line[0] == ' ' || line[0] == '\t'):
			default:
				// not '#include ' nor '#include_next '
				continue
			}
		case bytes.HasPrefix(line, []byte("import")):
			line = bytes.TrimPrefix(line, []byte("import"))
			if len(line) == 0 || (line[0] != ' ' && line[0] != '\t') {
				continue
			}

		case bytes.HasPrefix(line, []byte("define")):
			line = bytes.TrimPrefix(line, []byte("define"))
			if len(line) == 0 || (line[0] != ' ' && line[0] != '\t') {
				continue
			}
			if d, ok := parseDefine(bytes.TrimSpace(line)); ok {
				d.line = lineno
				directives = append(directives, d)
			}
			continue
		default:
			// other directives don't matter here.
			continue
		}
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			// no operand for #include?
			if log.V(2) {
				log.Infof("%s:%d: empty include", fname, lineno)
			}
			continue
		}
		if name, ok := parseIncludeOperand(line); ok {
			directives = append(directives, directive{kind: includeDirective, line: lineno, name: name})
		}
	}
	return directives
}

// parseIncludeOperand extracts `"foo.h"`, `<foo.h>` or a macro name from
// the operand of an include directive.
func parseIncludeOperand(operand []byte) (string, bool) {
	delim := string(operand[0])
	switch delim {
	case `"`:
	case `<`:
		delim = ">"
	default:
		delim = " \t"
	}
	i := bytes.IndexAny(operand[1:], delim)
	if i < 0 {
		if delim == ">" || delim == `"` {
			// unclosed path?
			return "", false
		}
		// otherwise use the rest of the line as the token.
	} else if delim == `"` || delim == ">" {
		operand = operand[:i+2] // keep the delimiters
	} else {
		operand = operand[:i+1]
	}
	if operand[0] != '"' && operand[0] != '<' && (operand[0] < 'A' || operand[0] > 'Z') {
		// not <>, "", nor an upper-case macro.
		return "", false
	}
	return strings.Clone(string(operand)), true
}

// parseDefine extracts a value macro: MACRO "path.h", MACRO <path.h> or
// MACRO OTHER_MACRO. Function macros and non-header values are ignored.
func parseDefine(line []byte) (directive, bool) {
	i := bytes.IndexAny(line, " \t")
	if i < 0 {
		// no value.
		return directive{}, false
	}
	macro := strings.Clone(string(line[:i]))
	if strings.Contains(macro, "(") {
		// function macro.
		return directive{}, false
	}
	line = bytes.TrimSpace(line[i+1:])
	if len(line) == 0 {
		return directive{}, false
	}
	switch line[0] {
	case '<', '"':
		delim := line[0]
		if delim == '<' {
			delim = '>'
		}
		i = bytes.IndexByte(line[1:], delim)
		if i < 0 {
			// unclosed path?
			return directive{}, false
		}
		value := strings.Clone(string(line[:i+2])) // keep the delimiters
		return directive{kind: defineDirective, macro: macro, values: []string{value}}, true
	default:
		// a single upper-case token referring to another value macro,
		// e.g. #define FT_AUTOHINTER_H FT_DRIVER_H
		value := line
		if i = bytes.IndexAny(value, " \t"); i >= 0 {
			value = value[:i]
		}
		if len(value) == 0 || bytes.IndexByte(value, '(') >= 0 {
			return directive{}, false
		}
		if value[0] < 'A' || value[0] > 'Z' {
			return directive{}, false
		}
		return directive{kind: defineDirective, macro: macro, values: []string{strings.Clone(string(value))}}, true
	}
}

// isMacro reports whether an include operand names a macro rather than a
// quoted or angled path.
func isMacro(s string) bool {
	if s == "" {
		return false
	}
	switch s[0] {
	case '<', '"':
		return false
	}
	return true
}

// expandMacros resolves an include operand to its possible quoted/angled
// spellings through the value-macro table.
func expandMacros(paths []string, name string, macros map[string][]string) []string {
	return expandMacros1(paths, name, macros, nil)
}

func expandMacros1(paths []string, name string, macros map[string][]string, seen map[string]bool) []string {
	if name == "" {
		return paths
	}
	if !isMacro(name) {
		return append(paths, name)
	}
	if seen[name] {
		// macro reference cycle.
		return paths
	}
	if seen == nil {
		seen = make(map[string]bool)
	}
	seen[name] = true
	for _, v := range macros[name] {
		paths = expandMacros1(paths, v, macros, seen)
	}
	return paths
}

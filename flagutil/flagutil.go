// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package flagutil provides the declarative argument parser used by the
// top-level command line and by every sub-tool.
//
// Flags are declared with a short and a long spelling. Single-value flags
// accept either a separate token or, for short spellings, an attached
// value (-j4); list flags take their values as separate tokens only. A
// value token must not begin with a dash. A terminal flag
// captures every remaining token verbatim, dashes included.
package flagutil

import (
	"fmt"
	"strconv"
	"strings"
)

type flagKind int

const (
	boolFlag flagKind = iota
	stringFlag
	uintFlag
	listFlag
	terminalFlag
)

type flagDef struct {
	name string
	kind flagKind

	boolp *bool
	strp  *string
	uintp *uint
	listp *[]string
}

// Parser parses a command line against a set of declared flags.
type Parser struct {
	defs []flagDef
}

// NewParser returns an empty parser.
func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) add(short, long string, def flagDef) {
	def.name = short
	p.defs = append(p.defs, def)
	def.name = long
	p.defs = append(p.defs, def)
}

// Bool declares a boolean flag. It takes no value.
func (p *Parser) Bool(short, long string, v *bool) {
	p.add(short, long, flagDef{kind: boolFlag, boolp: v})
}

// String declares a flag taking a single string value.
func (p *Parser) String(short, long string, v *string) {
	p.add(short, long, flagDef{kind: stringFlag, strp: v})
}

// Uint declares a flag taking a single unsigned integer value.
func (p *Parser) Uint(short, long string, v *uint) {
	p.add(short, long, flagDef{kind: uintFlag, uintp: v})
}

// StringList declares a flag taking one or more values, ending at the
// next token that begins with a dash.
func (p *Parser) StringList(short, long string, v *[]string) {
	p.add(short, long, flagDef{kind: listFlag, listp: v})
}

// Terminal declares a flag that captures all remaining tokens verbatim.
func (p *Parser) Terminal(name string, v *[]string) {
	p.defs = append(p.defs, flagDef{name: name, kind: terminalFlag, listp: v})
}

// Parse consumes args. On the first problem it returns a non-nil error
// describing the offending token.
func (p *Parser) Parse(args []string) error {
	for i := 0; i < len(args); {
		next, err := p.parseOne(args, i)
		if err != nil {
			return err
		}
		if next == i {
			return fmt.Errorf("unrecognized option: %s", args[i])
		}
		i = next
	}
	return nil
}

// parseOne tries every declared flag against args[i] and returns the index
// of the next unconsumed token.
func (p *Parser) parseOne(args []string, i int) (int, error) {
	arg := args[i]
	if arg == "" {
		return i, fmt.Errorf("expect non-empty args")
	}
	for _, def := range p.defs {
		// short spellings may carry an attached value.
		canOmitSpace := len(arg) > 1 && arg[0] == '-' && arg[1] != '-'
		head, tail := arg, ""
		if canOmitSpace && len(arg) >= len(def.name) {
			head, tail = arg[:len(def.name)], arg[len(def.name):]
		}
		if head != def.name {
			continue
		}
		switch def.kind {
		case boolFlag:
			if tail != "" {
				return i, fmt.Errorf("argument %s does not expect a value", arg)
			}
			*def.boolp = true
			return i + 1, nil

		case stringFlag, uintFlag:
			value := tail
			next := i + 1
			if value == "" {
				if next >= len(args) {
					return i, fmt.Errorf("argument %s expects a value", arg)
				}
				value = args[next]
				next++
			}
			if strings.HasPrefix(value, "-") {
				return i, fmt.Errorf("argument %s expects a value, got %s.", arg, value)
			}
			if def.kind == stringFlag {
				*def.strp = value
				return next, nil
			}
			n, err := strconv.ParseUint(value, 10, 32)
			if err != nil {
				return i, fmt.Errorf("argument %s expects an integer value, got %s.", arg, value)
			}
			*def.uintp = uint(n)
			return next, nil

		case listFlag:
			if tail != "" {
				return i, fmt.Errorf("argument %s must have a space before the first value.", arg)
			}
			j := i + 1
			for ; j < len(args); j++ {
				if strings.HasPrefix(args[j], "-") {
					break
				}
				*def.listp = append(*def.listp, args[j])
			}
			if j == i+1 {
				return i, fmt.Errorf("argument %s expects one or more values.", arg)
			}
			return j, nil

		case terminalFlag:
			if i+1 >= len(args) {
				return i, fmt.Errorf("argument %s expects a value", arg)
			}
			*def.listp = append(*def.listp, args[i+1:]...)
			return len(args), nil
		}
	}
	return i, nil
}

// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package compdb loads a compile_commands.json compilation database and
// answers per-source compile-command lookups.
package compdb

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.chromium.org/infra/build/lwyi/pathutil"
)

// Command is one compiler invocation from the database.
type Command struct {
	// Directory is the working directory of the invocation.
	Directory string
	// File is the absolute normalized path of the main source file.
	File string
	// Args is the argv of the invocation.
	Args []string
}

// Database indexes compile commands by source file.
type Database struct {
	commands map[string][]Command
}

type rawEntry struct {
	Directory string   `json:"directory"`
	File      string   `json:"file"`
	Command   string   `json:"command"`
	Arguments []string `json:"arguments"`
}

// Load reads a compilation database file. Entries carry either a
// "command" shell string or an "arguments" argv array.
func Load(path string) (*Database, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load compilation database: %w", err)
	}
	var entries []rawEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to load compilation database %s: %w", path, err)
	}

	db := &Database{commands: make(map[string][]Command)}
	for _, e := range entries {
		args := e.Arguments
		if len(args) == 0 {
			args, err = splitCommand(e.Command)
			if err != nil {
				return nil, fmt.Errorf("failed to load compilation database %s: %q: %w", path, e.Command, err)
			}
		}
		file := e.File
		if !filepath.IsAbs(file) {
			file = filepath.Join(e.Directory, file)
		}
		file = pathutil.Normalize(file)
		db.commands[file] = append(db.commands[file], Command{
			Directory: e.Directory,
			File:      file,
			Args:      args,
		})
	}
	return db, nil
}

// Commands returns the compile commands for the source file, or nil when
// the database has none.
func (db *Database) Commands(source string) []Command {
	return db.commands[pathutil.Normalize(source)]
}

// splitCommand splits a shell command line into argv, honoring double
// quotes, single quotes and backslash escapes.
func splitCommand(cmdline string) ([]string, error) {
	var args []string
	var cur []rune
	inArg := false
	var quote rune
	escaped := false
	for _, ch := range cmdline {
		if escaped {
			cur = append(cur, ch)
			escaped = false
			continue
		}
		switch quote {
		case '\'':
			if ch == '\'' {
				quote = 0
			} else {
				cur = append(cur, ch)
			}
		case '"':
			switch ch {
			case '"':
				quote = 0
			case '\\':
				escaped = true
			default:
				cur = append(cur, ch)
			}
		default:
			switch ch {
			case '\\':
				escaped = true
				inArg = true
			case '"', '\'':
				quote = ch
				inArg = true
			case ' ', '\t':
				if inArg {
					args = append(args, string(cur))
					cur, inArg = cur[:0], false
				}
			default:
				cur = append(cur, ch)
				inArg = true
			}
		}
	}
	if escaped || quote != 0 {
		return nil, fmt.Errorf("unterminated quote or escape")
	}
	if inArg {
		args = append(args, string(cur))
	}
	return args, nil
}

// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package targetmodel

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Loader accumulates targets from one or more build-description files.
// MakeTargetModel consumes the accumulator and freezes it into a model.
type Loader struct {
	entries []Entry
}

// NewLoader returns an empty loader.
func NewLoader() *Loader {
	return &Loader{}
}

// location renders a best-effort "line L, column C" for a byte offset
// into data.
func location(data []byte, offset int64) string {
	if offset < 0 || offset > int64(len(data)) {
		return "line ?, column ?"
	}
	line := 1 + bytes.Count(data[:offset], []byte("\n"))
	col := offset - int64(bytes.LastIndexByte(data[:offset], '\n')) - 1
	if col == 0 {
		col = 1
	}
	return fmt.Sprintf("line %d, column %d", line, col)
}

func parseError(path string, data []byte, offset int64, err error) error {
	return fmt.Errorf("error parsing %s: %s: %s", path, location(data, offset), err)
}

// LoadJSON parses one build-description file and appends its targets to
// the accumulator. The file must be a single JSON object mapping target
// names to objects whose keys are the seven known array names; an
// unknown key fails the load.
func (l *Loader) LoadJSON(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := expectDelim(dec, '{'); err != nil {
		return parseError(path, raw, dec.InputOffset(), err)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return parseError(path, raw, dec.InputOffset(), err)
		}
		name, ok := tok.(string)
		if !ok {
			return parseError(path, raw, dec.InputOffset(), fmt.Errorf("expected target name, got %v", tok))
		}
		targetData, err := parseTargetObject(dec)
		if err != nil {
			return parseError(path, raw, dec.InputOffset(), err)
		}
		l.entries = append(l.entries, Entry{Target: Target{Name: name}, Data: targetData})
	}
	if err := expectDelim(dec, '}'); err != nil {
		return parseError(path, raw, dec.InputOffset(), err)
	}
	return nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

func parseTargetObject(dec *json.Decoder) (TargetData, error) {
	var data TargetData
	if err := expectDelim(dec, '{'); err != nil {
		return data, err
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return data, err
		}
		key, ok := tok.(string)
		if !ok {
			return data, fmt.Errorf("expected array name, got %v", tok)
		}
		var values []string
		if err := dec.Decode(&values); err != nil {
			return data, err
		}
		switch key {
		case "interface_headers":
			data.InterfaceHeaders = append(data.InterfaceHeaders, values...)
		case "interface_include_directories":
			data.InterfaceIncludeDirectories = append(data.InterfaceIncludeDirectories, values...)
		case "interface_include_prefixes":
			data.InterfaceIncludePrefixes = append(data.InterfaceIncludePrefixes, values...)
		case "interface_dependencies":
			for _, v := range values {
				data.InterfaceDependencies = append(data.InterfaceDependencies, Target{Name: v})
			}
		case "dependencies":
			for _, v := range values {
				data.Dependencies = append(data.Dependencies, Target{Name: v})
			}
		case "sources":
			data.Sources = append(data.Sources, values...)
		case "verify_interface_header_sets_sources":
			data.VerifyInterfaceHeaderSetsSources = append(data.VerifyInterfaceHeaderSetsSources, values...)
		default:
			return data, fmt.Errorf("Unknown target array name %s", key)
		}
	}
	if err := expectDelim(dec, '}'); err != nil {
		return data, err
	}
	return data, nil
}

// MakeTargetModel consumes the accumulated targets and returns the
// frozen model.
func (l *Loader) MakeTargetModel() *TargetModel {
	entries := l.entries
	l.entries = nil
	return NewTargetModel(entries)
}

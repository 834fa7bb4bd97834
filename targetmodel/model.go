// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package targetmodel

import (
	"fmt"
	"sort"

	"go.chromium.org/infra/build/lwyi/pathutil"
)

// Entry pairs a target with its data.
type Entry struct {
	Target Target
	Data   TargetData
}

type dirEntry struct {
	dir   string
	index int
}

// TargetModel is the immutable, queryable aggregate of all targets.
// It is built once and safe for concurrent readers afterwards.
type TargetModel struct {
	entries []Entry // sorted by target name

	headerToTarget map[string]int
	dirToTarget    []dirEntry
}

// NewTargetModel builds a model from entries. Entries are sorted by
// target name; the header and directory indexes are derived from the
// interface declarations.
func NewTargetModel(entries []Entry) *TargetModel {
	m := &TargetModel{
		entries:        entries,
		headerToTarget: make(map[string]int),
	}
	for i := range m.entries {
		m.entries[i].Data.normalize()
	}
	sort.SliceStable(m.entries, func(i, j int) bool {
		return m.entries[i].Target.Less(m.entries[j].Target)
	})
	for i := range m.entries {
		data := &m.entries[i].Data
		for _, header := range data.InterfaceHeaders {
			m.headerToTarget[header] = i
		}
		for _, dir := range data.InterfaceIncludeDirectories {
			m.dirToTarget = append(m.dirToTarget, dirEntry{dir: dir, index: i})
		}
	}
	return m
}

// GetTargetData returns the data for target, or nil if the target is not
// in the model.
func (m *TargetModel) GetTargetData(target Target) *TargetData {
	i := sort.Search(len(m.entries), func(i int) bool {
		return !m.entries[i].Target.Less(target)
	})
	if i < len(m.entries) && m.entries[i].Target == target {
		return &m.entries[i].Data
	}
	return nil
}

// MapHeaderToTarget resolves a header path to the target that owns it.
// Explicit interface headers win; otherwise the first matching interface
// include directory (with prefix disambiguation) wins. Validate
// guarantees matches are unique.
func (m *TargetModel) MapHeaderToTarget(header string) (Target, bool) {
	header = pathutil.Normalize(header)
	if i, ok := m.headerToTarget[header]; ok {
		return m.entries[i].Target, true
	}
	for _, de := range m.dirToTarget {
		data := &m.entries[de.index].Data
		if len(data.InterfaceIncludePrefixes) == 0 {
			if pathutil.IsInDirectory(de.dir, header) {
				return m.entries[de.index].Target, true
			}
			continue
		}
		for _, prefix := range data.InterfaceIncludePrefixes {
			if pathutil.IsInDirectory(de.dir+"/"+prefix, header) {
				return m.entries[de.index].Target, true
			}
		}
	}
	return Target{}, false
}

// Validate checks the model invariants and returns a description of the
// first conflict found, or the empty string when the model is sound.
func (m *TargetModel) Validate() string {
	for i := 1; i < len(m.entries); i++ {
		if m.entries[i].Target == m.entries[i-1].Target {
			return fmt.Sprintf("Target %s is repeated.", m.entries[i].Target.Name)
		}
	}

	// A directory of one target cannot contain a directory of another
	// unless both sides declare disjoint include prefixes.
	for _, de := range m.dirToTarget {
		target := m.entries[de.index].Target
		data := &m.entries[de.index].Data
		for _, other := range m.dirToTarget {
			otherTarget := m.entries[other.index].Target
			if target == otherTarget {
				continue
			}
			if !pathutil.IsInDirectory(de.dir, other.dir) {
				continue
			}
			otherData := &m.entries[other.index].Data
			if len(data.InterfaceIncludePrefixes) == 0 {
				return fmt.Sprintf(
					"%s and %s have a conflicting include directory (%s) and %s does not have an include prefix to disambiguate.",
					target.Name, otherTarget.Name, de.dir, target.Name)
			}
			if len(otherData.InterfaceIncludePrefixes) == 0 {
				return fmt.Sprintf(
					"%s and %s have a conflicting include directory (%s) and %s does not have an include prefix to disambiguate.",
					target.Name, otherTarget.Name, other.dir, otherTarget.Name)
			}
			for _, prefix := range data.InterfaceIncludePrefixes {
				if containsString(otherData.InterfaceIncludePrefixes, prefix) {
					return fmt.Sprintf(
						"%s and %s have conflicting include directories and share %s as an include prefix.",
						target.Name, otherTarget.Name, prefix)
				}
			}
		}
	}

	return ""
}

// ForEachTarget visits every entry in sorted order.
func (m *TargetModel) ForEachTarget(visitor func(Target, *TargetData)) {
	for i := range m.entries {
		visitor(m.entries[i].Target, &m.entries[i].Data)
	}
}

// Len returns the number of targets in the model.
func (m *TargetModel) Len() int {
	return len(m.entries)
}

// CreatePruned returns a new model restricted to the transitive closure
// of seeds over the Dependencies edge. Seeds missing from the model are
// skipped. The receiver is unchanged.
func (m *TargetModel) CreatePruned(seeds []Target) *TargetModel {
	kept := make(map[Target]*TargetData)
	stack := append([]Target(nil), seeds...)
	for len(stack) > 0 {
		target := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := kept[target]; ok {
			continue
		}
		data := m.GetTargetData(target)
		if data == nil {
			continue
		}
		kept[target] = data
		stack = append(stack, data.Dependencies...)
	}

	entries := make([]Entry, 0, len(kept))
	for target, data := range kept {
		entries = append(entries, Entry{Target: target, Data: *data})
	}
	return NewTargetModel(entries)
}

// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package scandeps

import "sort"

// SourceLine identifies one #include directive site.
type SourceLine struct {
	Source string
	Line   int
}

// Include is a resolved included file together with the chain of
// directives that first caused it to be entered, outermost first. The
// chain is informational; equality is by Path only.
type Include struct {
	Path         string
	IncludeChain []SourceLine
}

// IncludeSet is a set of Includes keyed by path. The first chain
// observed for a path is retained.
type IncludeSet struct {
	m map[string]Include
}

func (s *IncludeSet) insert(inc Include) {
	if s.m == nil {
		s.m = make(map[string]Include)
	}
	if _, ok := s.m[inc.Path]; ok {
		return
	}
	s.m[inc.Path] = inc
}

func (s *IncludeSet) mergeFrom(other *IncludeSet) {
	for _, inc := range other.m {
		s.insert(inc)
	}
}

// Len returns the number of distinct paths in the set.
func (s *IncludeSet) Len() int {
	return len(s.m)
}

// Sorted returns the includes ordered by path.
func (s *IncludeSet) Sorted() []Include {
	out := make([]Include, 0, len(s.m))
	for _, inc := range s.m {
		out = append(out, inc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// IncludeData is the per-translation-unit scan result.
type IncludeData struct {
	// Includes are headers attributed to the private context of the
	// unit.
	Includes IncludeSet
	// InterfaceHeaderIncludes buckets headers by the interface header
	// that was on the compilation stack when they were reached.
	InterfaceHeaderIncludes map[string]*IncludeSet
}

func (d *IncludeData) interfaceBucket(header string) *IncludeSet {
	if d.InterfaceHeaderIncludes == nil {
		d.InterfaceHeaderIncludes = make(map[string]*IncludeSet)
	}
	bucket, ok := d.InterfaceHeaderIncludes[header]
	if !ok {
		bucket = &IncludeSet{}
		d.InterfaceHeaderIncludes[header] = bucket
	}
	return bucket
}

// IntransitiveIncludes is the merged result for a whole target. An
// interface header's contribution counts for both buckets; a private
// source contributes to Includes only.
type IntransitiveIncludes struct {
	InterfaceIncludes []Include
	Includes          []Include
}

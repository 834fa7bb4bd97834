// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package targetmodel

import (
	"sort"

	"go.chromium.org/infra/build/lwyi/pathutil"
)

// TargetData holds the per-target facts from the build description.
// All path slices are sorted; lookups use binary search.
type TargetData struct {
	// InterfaceHeaders are absolute paths of explicit interface headers.
	InterfaceHeaders []string
	// InterfaceIncludeDirectories are header search roots of the
	// target's interface.
	InterfaceIncludeDirectories []string
	// InterfaceIncludePrefixes restrict the directories above: when
	// non-empty, a directory D contributes a header only if it lies
	// under D/prefix for some prefix.
	InterfaceIncludePrefixes []string
	// InterfaceDependencies are link dependencies visible to consumers.
	InterfaceDependencies []Target
	// Dependencies are link dependencies of the target's own sources.
	Dependencies []Target
	// Sources are the target's private translation units.
	Sources []string
	// VerifyInterfaceHeaderSetsSources are extra translation units that
	// check interface headers parse standalone. The scanner treats them
	// like Sources.
	VerifyInterfaceHeaderSetsSources []string
}

func sortUnique(s []string) []string {
	sort.Strings(s)
	out := s[:0]
	for i, v := range s {
		if i > 0 && v == s[i-1] {
			continue
		}
		out = append(out, v)
	}
	return out
}

func sortUniqueTargets(s []Target) []Target {
	sort.Slice(s, func(i, j int) bool { return s[i].Less(s[j]) })
	out := s[:0]
	for i, v := range s {
		if i > 0 && v == s[i-1] {
			continue
		}
		out = append(out, v)
	}
	return out
}

func (d *TargetData) normalize() {
	d.InterfaceHeaders = sortUnique(d.InterfaceHeaders)
	d.InterfaceIncludeDirectories = sortUnique(d.InterfaceIncludeDirectories)
	d.InterfaceIncludePrefixes = sortUnique(d.InterfaceIncludePrefixes)
	d.InterfaceDependencies = sortUniqueTargets(d.InterfaceDependencies)
	d.Dependencies = sortUniqueTargets(d.Dependencies)
	d.Sources = sortUnique(d.Sources)
	d.VerifyInterfaceHeaderSetsSources = sortUnique(d.VerifyInterfaceHeaderSetsSources)
}

func containsString(sorted []string, v string) bool {
	i := sort.SearchStrings(sorted, v)
	return i < len(sorted) && sorted[i] == v
}

// IsInterfaceHeader reports whether filename is part of the target's
// interface: an explicit interface header, or a file under one of the
// interface include directories subject to prefix disambiguation.
func IsInterfaceHeader(data *TargetData, filename string) bool {
	if containsString(data.InterfaceHeaders, filename) {
		return true
	}
	for _, dir := range data.InterfaceIncludeDirectories {
		if len(data.InterfaceIncludePrefixes) == 0 {
			if pathutil.IsInDirectory(dir, filename) {
				return true
			}
			continue
		}
		for _, prefix := range data.InterfaceIncludePrefixes {
			if pathutil.IsInDirectory(dir+"/"+prefix, filename) {
				return true
			}
		}
	}
	return false
}

// IsPrivateSource reports whether filename is one of the target's own
// private translation units. Interface-header verification sources are
// deliberately excluded: their findings are attributed through the
// interface headers they include, not to the verification unit itself.
func IsPrivateSource(data *TargetData, filename string) bool {
	return containsString(data.Sources, filename)
}

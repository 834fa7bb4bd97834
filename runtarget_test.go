// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"testing"

	"go.chromium.org/infra/build/lwyi/lwyi"
	"go.chromium.org/infra/build/lwyi/scandeps"
	"go.chromium.org/infra/build/lwyi/targetmodel"
)

func TestFormatError(t *testing.T) {
	target := targetmodel.Target{Name: "libq"}
	for _, tc := range []struct {
		e    lwyi.Error
		want string
	}{
		{
			e: lwyi.Error{
				Target:             targetmodel.Target{Name: "liba"},
				LinkedVisibility:   lwyi.Public,
				IncludedVisibility: lwyi.Private,
			},
			want: "error: libq links to liba with PUBLIC scope but it is included with PRIVATE scope.",
		},
		{
			e: lwyi.Error{
				Target:             targetmodel.Target{Name: "libd"},
				LinkedVisibility:   lwyi.None,
				IncludedVisibility: lwyi.Private,
			},
			want: "error: libq does not link to libd but it is included with PRIVATE scope.",
		},
		{
			e: lwyi.Error{
				Target:             targetmodel.Target{Name: "libb"},
				LinkedVisibility:   lwyi.Interface,
				IncludedVisibility: lwyi.None,
			},
			want: "error: libq links to libb with INTERFACE scope but it is not included.",
		},
	} {
		if got := formatError(target, tc.e); got != tc.want {
			t.Errorf("formatError=%q; want %q", got, tc.want)
		}
	}
}

func TestFormatErrorIncludeChain(t *testing.T) {
	e := lwyi.Error{
		Target:             targetmodel.Target{Name: "libd"},
		LinkedVisibility:   lwyi.None,
		IncludedVisibility: lwyi.Private,
		SampleIncludes: []scandeps.Include{
			{
				Path: "/libd/include/one.h",
				IncludeChain: []scandeps.SourceLine{
					{Source: "/libq/src/q.cpp", Line: 3},
					{Source: "/libq/src/helper.h", Line: 7},
				},
			},
		},
	}
	got := formatError(targetmodel.Target{Name: "libq"}, e)
	want := "error: libq does not link to libd but it is included with PRIVATE scope." +
		"\nnote: /libd/include/one.h" +
		"\n  included from /libq/src/helper.h:7" +
		"\n  included from /libq/src/q.cpp:3"
	if got != want {
		t.Errorf("formatError=%q; want %q", got, want)
	}
}

func TestFormatTargetList(t *testing.T) {
	targets := func(names ...string) []targetmodel.Target {
		var out []targetmodel.Target
		for _, name := range names {
			out = append(out, targetmodel.Target{Name: name})
		}
		return out
	}
	for _, tc := range []struct {
		names []targetmodel.Target
		want  string
	}{
		{targets("a"), "a"},
		{targets("a", "b"), "a and b"},
		{targets("a", "b", "c"), "a, b, and c"},
	} {
		if got := formatTargetList(tc.names); got != tc.want {
			t.Errorf("formatTargetList=%q; want %q", got, tc.want)
		}
	}
}

// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package tidy

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"go.chromium.org/infra/build/lwyi/targetmodel"
)

func cyclicModel(edges map[string][]string) *targetmodel.TargetModel {
	var entries []targetmodel.Entry
	for name, deps := range edges {
		var targets []targetmodel.Target
		for _, dep := range deps {
			targets = append(targets, targetmodel.Target{Name: dep})
		}
		entries = append(entries, targetmodel.Entry{
			Target: targetmodel.Target{Name: name},
			Data:   targetmodel.TargetData{Dependencies: targets},
		})
	}
	return targetmodel.NewTargetModel(entries)
}

func TestTidyNewCluster(t *testing.T) {
	m := cyclicModel(map[string][]string{
		"a": {"b"},
		"b": {"a"},
		"c": {"d"},
		"d": {"e"},
		"e": {"c"},
		"f": {"g"},
		"g": {"f"},
	})
	config := &Config{
		ForbiddenDependencies: map[targetmodel.Target][]targetmodel.Target{},
		AllowedClusters: []map[targetmodel.Target]bool{
			cluster("a", "b"),
			cluster("c", "d", "e"),
		},
	}
	diagnostics := Tidy(config, m)
	want := []DagDiagnostic{
		{Type: NewCluster, Targets: []targetmodel.Target{{Name: "f"}, {Name: "g"}}},
	}
	if diff := cmp.Diff(want, diagnostics); diff != "" {
		t.Errorf("Tidy diff -want +got:\n%s", diff)
	}
}

func TestTidyClusterGrewAndShrank(t *testing.T) {
	m := cyclicModel(map[string][]string{
		"a": {"b"},
		"b": {"a", "x"},
		"x": {"a"},
	})
	config := &Config{
		ForbiddenDependencies: map[targetmodel.Target][]targetmodel.Target{},
		AllowedClusters: []map[targetmodel.Target]bool{
			cluster("a", "b", "gone"),
		},
	}
	diagnostics := Tidy(config, m)
	want := []DagDiagnostic{
		{Type: RemovedFromCluster, Targets: []targetmodel.Target{{Name: "gone"}}},
		{Type: AddedToCluster, Targets: []targetmodel.Target{{Name: "x"}}},
	}
	if diff := cmp.Diff(want, diagnostics); diff != "" {
		t.Errorf("Tidy diff -want +got:\n%s", diff)
	}
}

func TestTidyForbiddenDependency(t *testing.T) {
	m := cyclicModel(map[string][]string{
		"libd": {"libc"},
		"libc": nil,
	})
	config := &Config{
		ForbiddenDependencies: map[targetmodel.Target][]targetmodel.Target{
			{Name: "libd"}:    {{Name: "libc"}},
			{Name: "missing"}: {{Name: "libc"}},
		},
		AllowedClusters: nil,
	}
	diagnostics := Tidy(config, m)
	want := []DagDiagnostic{
		{Type: ForbiddenDependency, Targets: []targetmodel.Target{{Name: "libd"}, {Name: "libc"}}},
	}
	if diff := cmp.Diff(want, diagnostics); diff != "" {
		t.Errorf("Tidy diff -want +got:\n%s", diff)
	}
}

func TestTidyClean(t *testing.T) {
	m := cyclicModel(map[string][]string{
		"a": {"b"},
		"b": nil,
	})
	config := &Config{
		ForbiddenDependencies: map[targetmodel.Target][]targetmodel.Target{
			{Name: "a"}: {{Name: "z"}},
		},
		AllowedClusters: nil,
	}
	if diagnostics := Tidy(config, m); len(diagnostics) != 0 {
		t.Errorf("Tidy=%v; want no diagnostics", diagnostics)
	}
}

// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package lwyi

import (
	"sort"

	"go.chromium.org/infra/build/lwyi/scandeps"
	"go.chromium.org/infra/build/lwyi/targetmodel"
)

// Error reports one dependency whose linked visibility disagrees with
// the visibility its headers are actually included with.
type Error struct {
	Target             targetmodel.Target
	LinkedVisibility   Visibility
	IncludedVisibility Visibility
	SampleIncludes     []scandeps.Include
}

type visibility struct {
	linked   Visibility
	included Visibility
}

// collectIncludeDeps groups includes by the target owning each included
// header. Headers owned by no target are dropped.
func collectIncludeDeps(model *targetmodel.TargetModel, includes []scandeps.Include) map[targetmodel.Target][]scandeps.Include {
	deps := make(map[targetmodel.Target][]scandeps.Include)
	for _, include := range includes {
		if dep, ok := model.MapHeaderToTarget(include.Path); ok {
			deps[dep] = append(deps[dep], include)
		}
	}
	return deps
}

// CheckTarget compares the target's declared link edges against its
// scanned intransitive includes and returns one Error per dependency
// whose visibilities disagree, in target order.
func CheckTarget(model *targetmodel.TargetModel, target targetmodel.Target, targetData *targetmodel.TargetData, includes *scandeps.IntransitiveIncludes) []Error {
	visibilityMap := make(map[targetmodel.Target]*visibility)
	at := func(dep targetmodel.Target) *visibility {
		v, ok := visibilityMap[dep]
		if !ok {
			v = &visibility{}
			visibilityMap[dep] = v
		}
		return v
	}

	// link edges to targets without model data are third-party or
	// system targets; they are dropped on purpose.
	for _, dep := range targetData.InterfaceDependencies {
		if model.GetTargetData(dep) != nil {
			at(dep).linked |= Interface
		}
	}
	for _, dep := range targetData.Dependencies {
		if model.GetTargetData(dep) != nil {
			at(dep).linked |= Private
		}
	}

	includedInterfaceDeps := collectIncludeDeps(model, includes.InterfaceIncludes)
	includedDeps := collectIncludeDeps(model, includes.Includes)
	for dep := range includedInterfaceDeps {
		at(dep).included |= Interface
	}
	for dep := range includedDeps {
		at(dep).included |= Private
	}

	deps := make([]targetmodel.Target, 0, len(visibilityMap))
	for dep := range visibilityMap {
		deps = append(deps, dep)
	}
	sort.Slice(deps, func(i, j int) bool { return deps[i].Less(deps[j]) })

	var errors []Error
	for _, dep := range deps {
		v := visibilityMap[dep]
		if v.linked == v.included {
			continue
		}
		e := Error{
			Target:             dep,
			LinkedVisibility:   v.linked,
			IncludedVisibility: v.included,
		}
		if v.included&Interface != None {
			e.SampleIncludes = append(e.SampleIncludes, includedInterfaceDeps[dep]...)
		}
		if v.included&Private != None {
			e.SampleIncludes = append(e.SampleIncludes, includedDeps[dep]...)
		}
		errors = append(errors, e)
	}
	return errors
}

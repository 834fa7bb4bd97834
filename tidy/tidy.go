// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package tidy

import (
	"sort"

	"go.chromium.org/infra/build/lwyi/lwyi"
	"go.chromium.org/infra/build/lwyi/targetmodel"
)

// DagDiagnosticType classifies a policy violation.
type DagDiagnosticType int

const (
	// AddedToCluster: a declared cluster grew.
	AddedToCluster DagDiagnosticType = iota
	// RemovedFromCluster: a declared cluster shrank.
	RemovedFromCluster
	// NewCluster: an undeclared cluster appeared.
	NewCluster
	// ForbiddenDependency: a declared forbidden edge exists.
	ForbiddenDependency
)

// DagDiagnostic is one policy finding with the targets involved.
type DagDiagnostic struct {
	Type    DagDiagnosticType
	Targets []targetmodel.Target
}

// Tidy computes the strongly connected components of the model, diffs
// them against the allowed clusters, and checks the forbidden edges.
func Tidy(config *Config, model *targetmodel.TargetModel) []DagDiagnostic {
	var diagnostics []DagDiagnostic

	components := lwyi.StronglyConnectedDependencies(model)
	result := clusterDiff(config.AllowedClusters, components)

	for i := 0; i < len(config.AllowedClusters) && i < len(result); i++ {
		diff := result[i]
		if len(diff.LeftOnly) > 0 {
			diagnostics = append(diagnostics, DagDiagnostic{Type: RemovedFromCluster, Targets: diff.LeftOnly})
		}
		if len(diff.RightOnly) > 0 {
			diagnostics = append(diagnostics, DagDiagnostic{Type: AddedToCluster, Targets: diff.RightOnly})
		}
	}
	for i := len(config.AllowedClusters); i < len(result); i++ {
		diagnostics = append(diagnostics, DagDiagnostic{Type: NewCluster, Targets: result[i].RightOnly})
	}

	forbidden := make([]targetmodel.Target, 0, len(config.ForbiddenDependencies))
	for target := range config.ForbiddenDependencies {
		forbidden = append(forbidden, target)
	}
	sort.Slice(forbidden, func(i, j int) bool { return forbidden[i].Less(forbidden[j]) })
	for _, target := range forbidden {
		targetData := model.GetTargetData(target)
		if targetData == nil {
			continue
		}
		deps := make(map[targetmodel.Target]bool, len(targetData.Dependencies))
		for _, dep := range targetData.Dependencies {
			deps[dep] = true
		}
		for _, forbiddenDep := range config.ForbiddenDependencies[target] {
			if deps[forbiddenDep] {
				diagnostics = append(diagnostics, DagDiagnostic{
					Type:    ForbiddenDependency,
					Targets: []targetmodel.Target{target, forbiddenDep},
				})
			}
		}
	}

	return diagnostics
}

// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strings"

	"go.chromium.org/infra/build/lwyi/lwyi"
	"go.chromium.org/infra/build/lwyi/scandeps"
	"go.chromium.org/infra/build/lwyi/targetmodel"
	"go.chromium.org/infra/build/lwyi/ui"
)

// runOnTarget scans one target and reports its linkage mismatches.
// Returns false when the target fails the check.
func runOnTarget(ctx context.Context, model *targetmodel.TargetModel, binaryDir string, target targetmodel.Target, targetData *targetmodel.TargetData, scanner *scandeps.Scanner) bool {
	if len(targetData.Sources) == 0 && len(targetData.VerifyInterfaceHeaderSetsSources) == 0 {
		ui.Infof("No sources. Skipping.")
		return true
	}

	includes, err := scanner.Scan(ctx, binaryDir, targetData)
	if err != nil {
		ui.Errorf("error: Failed to scan the direct includes of target %s\n%v", target.Name, err)
		return false
	}

	errors := lwyi.CheckTarget(model, target, targetData, includes)
	if len(errors) == 0 {
		return true
	}

	for _, e := range errors {
		ui.Errorf("%s", formatError(target, e))
	}
	return false
}

func formatError(target targetmodel.Target, e lwyi.Error) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "error: %s ", target.Name)
	switch e.LinkedVisibility {
	case lwyi.None:
		fmt.Fprintf(&sb, "does not link to %s ", e.Target.Name)
	default:
		fmt.Fprintf(&sb, "links to %s with %s scope ", e.Target.Name, e.LinkedVisibility)
	}
	sb.WriteString("but it is ")
	switch e.IncludedVisibility {
	case lwyi.None:
		sb.WriteString("not included.")
	default:
		fmt.Fprintf(&sb, "included with %s scope.", e.IncludedVisibility)
	}

	for _, include := range e.SampleIncludes {
		fmt.Fprintf(&sb, "\nnote: %s", include.Path)
		// nearest include first, then the chain upward toward the unit.
		for i := len(include.IncludeChain) - 1; i >= 0; i-- {
			sourceLine := include.IncludeChain[i]
			fmt.Fprintf(&sb, "\n  included from %s:%d", sourceLine.Source, sourceLine.Line)
		}
	}
	return sb.String()
}

// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"go.chromium.org/infra/build/lwyi/targetmodel"
	"go.chromium.org/infra/build/lwyi/ui"
)

const toolMenu = `tools:
  list                      Print this help message.
  tidy                      Check that the dependency graph is a DAG.
  graph                     Generate a graphviz dot graph of the dependencies.`

// runTool dispatches a --tool command. Returns the process exit code.
func runTool(model *targetmodel.TargetModel, selectedTargets []targetmodel.Target, args []string) int {
	switch args[0] {
	case "list":
		ui.Infof("%s", toolMenu)
		return 0
	case "graph":
		return graphTool(model, selectedTargets, args)
	case "tidy":
		return tidyTool(model, selectedTargets, args)
	}
	ui.Errorf("Unknown tool %s", args[0])
	return 1
}

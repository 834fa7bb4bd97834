// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"context"
	"os"
	"path/filepath"
	"runtime"

	log "github.com/golang/glog"

	"go.chromium.org/infra/build/lwyi/scandeps"
	"go.chromium.org/infra/build/lwyi/targetmodel"
	"go.chromium.org/infra/build/lwyi/ui"
)

// infoFileName is the build description the build system writes next to
// compile_commands.json.
const infoFileName = "link_what_you_include_info.json"

// runLWYI loads the build description and either dispatches to a
// sub-tool or checks each selected target. Returns the process exit
// code.
func runLWYI(ctx context.Context, options *commandOptions) int {
	binaryDir := options.binaryDir
	if binaryDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			ui.Errorf("error: %v", err)
			return 1
		}
		binaryDir = cwd
	} else if fi, err := os.Stat(binaryDir); err != nil || !fi.IsDir() {
		ui.Errorf("error: %s is not a directory", binaryDir)
		return 1
	}

	infoFile := filepath.Join(binaryDir, infoFileName)
	if fi, err := os.Stat(infoFile); err != nil || !fi.Mode().IsRegular() {
		ui.Errorf("error: %s is not a file", infoFile)
		return 1
	}

	ui.Infof("# Loading build system info from %s", infoFile)

	loader := targetmodel.NewLoader()
	if err := loader.LoadJSON(infoFile); err != nil {
		ui.Errorf("error: failed to load %s: %v", infoFile, err)
		return 1
	}
	model := loader.MakeTargetModel()
	if msg := model.Validate(); msg != "" {
		ui.Errorf("error: %s", msg)
		return 1
	}

	selectedTargets := make([]targetmodel.Target, 0, len(options.targets))
	for _, name := range options.targets {
		selectedTargets = append(selectedTargets, targetmodel.Target{Name: name})
	}

	if len(options.toolCommand) > 0 {
		return runTool(model, selectedTargets, options.toolCommand)
	}

	numThreads := int(options.numThreads)
	if numThreads == 0 {
		numThreads = runtime.NumCPU()
	}
	ui.Infof("Scanning with %d threads", numThreads)
	log.Infof("scanning %d targets with %d threads", model.Len(), numThreads)

	scanner := scandeps.NewScanner(numThreads)
	defer scanner.Close()

	success := true
	if len(selectedTargets) == 0 {
		model.ForEachTarget(func(target targetmodel.Target, targetData *targetmodel.TargetData) {
			ui.Infof("# Checking that %s links what it includes", target.Name)
			if !runOnTarget(ctx, model, binaryDir, target, targetData, scanner) {
				success = false
			}
		})
	} else {
		for _, target := range selectedTargets {
			ui.Infof("# Checking that %s links what it includes", target.Name)
			targetData := model.GetTargetData(target)
			if targetData == nil {
				ui.Errorf("error: No target named %s found", target.Name)
				success = false
				break
			}
			if !runOnTarget(ctx, model, binaryDir, target, targetData, scanner) {
				success = false
			}
		}
	}

	if !success {
		return 1
	}
	return 0
}

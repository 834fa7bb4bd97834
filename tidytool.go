// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"strings"

	"go.chromium.org/infra/build/lwyi/flagutil"
	"go.chromium.org/infra/build/lwyi/targetmodel"
	"go.chromium.org/infra/build/lwyi/tidy"
	"go.chromium.org/infra/build/lwyi/ui"
)

const tidyUsage = `Usage:
  tidy [options]

Possible options:
  -h, --help                Print this help message.
  -c, --config FILE         Path to config file.`

// tidyTool checks the dependency DAG against the policy config.
func tidyTool(model *targetmodel.TargetModel, _ []targetmodel.Target, args []string) int {
	var help bool
	var configFilename string
	parser := flagutil.NewParser()
	parser.Bool("-h", "--help", &help)
	parser.String("-c", "--config", &configFilename)

	if err := parser.Parse(args[1:]); err != nil {
		ui.Errorf("%s\n%s", err, tidyUsage)
		return 1
	}
	if help {
		ui.Infof("%s", tidyUsage)
		return 1
	}
	if configFilename == "" {
		ui.Errorf("A config file is required.\n%s", tidyUsage)
		return 1
	}

	config, err := tidy.LoadConfig(configFilename)
	if err != nil {
		ui.Errorf("Failed to load config file.\n%v", err)
		return 1
	}

	diagnostics := tidy.Tidy(config, model)

	failed := false
	for _, diagnostic := range diagnostics {
		switch diagnostic.Type {
		case tidy.AddedToCluster:
			ui.Errorf("error: a known target cluster increased in size with the addition of %s\n", formatTargetList(diagnostic.Targets))
			failed = true
		case tidy.RemovedFromCluster:
			ui.Warningf("Warning: a known target cluster decreased in size with the removal of %s\n", formatTargetList(diagnostic.Targets))
		case tidy.NewCluster:
			ui.Warningf("Warning: a new target cluster was introduced with %s\n", formatTargetList(diagnostic.Targets))
			failed = true
		case tidy.ForbiddenDependency:
			ui.Errorf("error: %s is forbidden to depend on %s", diagnostic.Targets[0].Name, diagnostic.Targets[1].Name)
			failed = true
		}
	}

	if failed {
		return 1
	}
	return 0
}

// formatTargetList renders "a", "a and b" or "a, b, and c".
func formatTargetList(targets []targetmodel.Target) string {
	var sb strings.Builder
	for i, target := range targets {
		if i != 0 {
			if len(targets) > 2 {
				sb.WriteString(",")
			}
			sb.WriteString(" ")
		}
		if i+1 == len(targets) && len(targets) > 1 {
			sb.WriteString("and ")
		}
		sb.WriteString(target.Name)
	}
	return sb.String()
}

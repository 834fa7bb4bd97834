// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package tidy enforces a user-declared policy over the dependency DAG:
// observed dependency cycles must match an allow-list of clusters, and
// declared forbidden edges must be absent.
package tidy

import (
	"encoding/json"
	"fmt"
	"os"

	"go.chromium.org/infra/build/lwyi/targetmodel"
)

// Config is the parsed policy file.
type Config struct {
	// ForbiddenDependencies maps a target to dependencies it must not
	// have.
	ForbiddenDependencies map[targetmodel.Target][]targetmodel.Target
	// AllowedClusters are the declared expected cycles, in declaration
	// order.
	AllowedClusters []map[targetmodel.Target]bool
}

type rawConfig struct {
	ForbiddenDependencies *map[string][]string `json:"forbidden_dependencies"`
	AllowedClusters       *[][]string          `json:"allowed_clusters"`
}

// LoadConfig reads and parses a policy file. Both top-level keys are
// required.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw rawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("Error parsing json: %w", err)
	}
	if raw.ForbiddenDependencies == nil {
		return nil, fmt.Errorf("Error parsing forbidden_dependencies: key is missing")
	}
	if raw.AllowedClusters == nil {
		return nil, fmt.Errorf("Error parsing allowed_clusters: key is missing")
	}

	config := &Config{
		ForbiddenDependencies: make(map[targetmodel.Target][]targetmodel.Target),
	}
	for name, deps := range *raw.ForbiddenDependencies {
		var targets []targetmodel.Target
		for _, dep := range deps {
			targets = append(targets, targetmodel.Target{Name: dep})
		}
		config.ForbiddenDependencies[targetmodel.Target{Name: name}] = targets
	}
	for _, cluster := range *raw.AllowedClusters {
		set := make(map[targetmodel.Target]bool)
		for _, name := range cluster {
			set[targetmodel.Target{Name: name}] = true
		}
		config.AllowedClusters = append(config.AllowedClusters, set)
	}
	return config, nil
}

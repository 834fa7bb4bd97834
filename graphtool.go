// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"go.chromium.org/infra/build/lwyi/flagutil"
	"go.chromium.org/infra/build/lwyi/lwyi"
	"go.chromium.org/infra/build/lwyi/targetmodel"
	"go.chromium.org/infra/build/lwyi/ui"
)

const graphUsage = `Usage:
  graph [options]

Possible options:
  -h, --help                Print this help message.
  -o, --output FILE         Path to the output graphviz dot file to create. An
                            additional file for each strongly connected
                            component will also be created based on this name.`

// graphTool emits a DOT graph of the dependency edges, with each
// non-trivial strongly connected component clumped into a single box
// node, plus one DOT file per component with its internal edges.
func graphTool(model *targetmodel.TargetModel, selectedTargets []targetmodel.Target, args []string) int {
	var help bool
	var outputFilename string
	parser := flagutil.NewParser()
	parser.Bool("-h", "--help", &help)
	parser.String("-o", "--output", &outputFilename)

	if err := parser.Parse(args[1:]); err != nil {
		ui.Errorf("%s\n%s", err, graphUsage)
		return 1
	}
	if help {
		ui.Infof("%s", graphUsage)
		return 1
	}
	if outputFilename == "" {
		ui.Errorf("An output file is required.\n%s", graphUsage)
		return 1
	}

	dir := filepath.Dir(outputFilename)
	ext := filepath.Ext(outputFilename)
	stem := strings.TrimSuffix(filepath.Base(outputFilename), ext)

	prunedModel := model
	if len(selectedTargets) > 0 {
		prunedModel = model.CreatePruned(selectedTargets)
	}

	components := lwyi.StronglyConnectedDependencies(prunedModel)

	mapToComponent := func(target targetmodel.Target) string {
		for i, component := range components {
			if component[target] {
				return strconv.Itoa(i)
			}
		}
		return target.Name
	}

	type edge struct {
		from, to string
	}
	edgeSet := make(map[edge]bool)
	prunedModel.ForEachTarget(func(target targetmodel.Target, targetData *targetmodel.TargetData) {
		component := mapToComponent(target)
		for _, dep := range targetData.Dependencies {
			edgeSet[edge{from: component, to: mapToComponent(dep)}] = true
		}
	})
	edges := make([]edge, 0, len(edgeSet))
	for e := range edgeSet {
		edges = append(edges, e)
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].from != edges[j].from {
			return edges[i].from < edges[j].from
		}
		return edges[i].to < edges[j].to
	})

	// the full graph, components clumped into single nodes.
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph dependencies {\n")
	for i, component := range components {
		fmt.Fprintf(&buf, "  %d [shape=box label=\"", i)
		for j, target := range sortedComponentTargets(component) {
			if j > 0 {
				fmt.Fprintf(&buf, "\\n")
			}
			fmt.Fprintf(&buf, "%s", target.Name)
		}
		fmt.Fprintf(&buf, "\"]\n")
	}
	for _, e := range edges {
		fmt.Fprintf(&buf, "  %s -> %s;\n", e.from, e.to)
	}
	fmt.Fprintf(&buf, "}\n")

	graphPath := filepath.Join(dir, stem+ext)
	if err := os.WriteFile(graphPath, buf.Bytes(), 0644); err != nil {
		ui.Errorf("Failed to open file %s", graphPath)
		return 1
	}

	// one graph per component, with only its internal edges.
	var g errgroup.Group
	for i, component := range components {
		i, component := i, component
		componentPath := filepath.Join(dir, fmt.Sprintf("%s_scc_%d%s", stem, i, ext))
		g.Go(func() error {
			var buf bytes.Buffer
			fmt.Fprintf(&buf, "digraph %d {\n", i)
			for _, target := range sortedComponentTargets(component) {
				targetData := prunedModel.GetTargetData(target)
				if targetData == nil {
					continue
				}
				for _, dep := range targetData.Dependencies {
					if component[dep] {
						fmt.Fprintf(&buf, "  %s -> %s;\n", target.Name, dep.Name)
					}
				}
			}
			fmt.Fprintf(&buf, "}\n")
			if err := os.WriteFile(componentPath, buf.Bytes(), 0644); err != nil {
				return fmt.Errorf("Failed to open file %s", componentPath)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		ui.Errorf("%v", err)
		return 1
	}

	return 0
}

func sortedComponentTargets(component map[targetmodel.Target]bool) []targetmodel.Target {
	targets := make([]targetmodel.Target, 0, len(component))
	for target := range component {
		targets = append(targets, target)
	}
	sort.Slice(targets, func(i, j int) bool { return targets[i].Less(targets[j]) })
	return targets
}

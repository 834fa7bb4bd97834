// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package lwyi

import (
	"go.chromium.org/infra/build/lwyi/targetmodel"
)

type vertexData struct {
	index   int
	lowlink int
	onStack bool
}

// StronglyConnectedDependencies runs Tarjan's algorithm over the private
// dependency edges and returns the non-trivial components (size >= 2) in
// discovery order. A vertex without model data simply has no outgoing
// edges. Recursion depth is bounded by the graph; goroutine stacks grow
// as needed.
func StronglyConnectedDependencies(model *targetmodel.TargetModel) []map[targetmodel.Target]bool {
	index := 0
	var stack []targetmodel.Target
	var components []map[targetmodel.Target]bool
	data := make(map[targetmodel.Target]*vertexData)

	at := func(v targetmodel.Target) *vertexData {
		d, ok := data[v]
		if !ok {
			d = &vertexData{index: -1, lowlink: -1}
			data[v] = d
		}
		return d
	}

	var strongConnect func(v targetmodel.Target)
	strongConnect = func(v targetmodel.Target) {
		vdata := at(v)
		vdata.index = index
		vdata.lowlink = index
		vdata.onStack = true
		stack = append(stack, v)
		index++

		if targetData := model.GetTargetData(v); targetData != nil {
			for _, w := range targetData.Dependencies {
				wdata := at(w)
				if wdata.index == -1 {
					strongConnect(w)
					if wdata.lowlink < vdata.lowlink {
						vdata.lowlink = wdata.lowlink
					}
				} else if wdata.onStack {
					if wdata.index < vdata.lowlink {
						vdata.lowlink = wdata.index
					}
				}
			}
		}

		if vdata.lowlink == vdata.index {
			component := make(map[targetmodel.Target]bool)
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				at(w).onStack = false
				component[w] = true
				if w == v {
					break
				}
			}
			// only non-trivial components are interesting.
			if len(component) > 1 {
				components = append(components, component)
			}
		}
	}

	model.ForEachTarget(func(v targetmodel.Target, _ *targetmodel.TargetData) {
		if at(v).index == -1 {
			strongConnect(v)
		}
	})

	return components
}

// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package scandeps

import (
	"go.chromium.org/infra/build/lwyi/pathutil"
	"go.chromium.org/infra/build/lwyi/targetmodel"
)

type fileContext int

const (
	arbitraryFile fileContext = iota
	sourceFile
	interfaceHeader
)

// recorder classifies the preprocessing event stream against one
// target's own files and fills an IncludeData.
//
// The active context is the innermost first-party stack frame, not the
// file currently being lexed: entering a foreign header from a
// first-party frame records it there, and leaving an interface header
// re-exports its accumulated includes into the enclosing frame. The
// result is that Includes holds exactly the foreign headers reachable
// without crossing another first-party file of this target.
type recorder struct {
	data       *IncludeData
	targetData *targetmodel.TargetData

	lastIncludeLoc    SourceLine
	includeChain      []SourceLine
	currentSourceFile string
	currentSet        *IncludeSet
	context           fileContext
}

func newRecorder(data *IncludeData, targetData *targetmodel.TargetData) *recorder {
	return &recorder{
		data:       data,
		targetData: targetData,
		context:    arbitraryFile,
	}
}

func (r *recorder) classify(filename string) fileContext {
	if targetmodel.IsInterfaceHeader(r.targetData, filename) {
		return interfaceHeader
	}
	if targetmodel.IsPrivateSource(r.targetData, filename) {
		return sourceFile
	}
	return arbitraryFile
}

func copyChain(chain []SourceLine) []SourceLine {
	if len(chain) == 0 {
		return nil
	}
	return append([]SourceLine(nil), chain...)
}

// FileChanged implements events.
func (r *recorder) FileChanged(file, prev string, enter bool) {
	if (enter && file == predefinesFile) || (!enter && prev == predefinesFile) {
		r.context = arbitraryFile
		return
	}

	previousContext := r.context
	previousSet := r.currentSet

	r.currentSourceFile = pathutil.Normalize(file)
	switch r.classify(r.currentSourceFile) {
	case interfaceHeader:
		r.context = interfaceHeader
		r.currentSet = r.data.interfaceBucket(r.currentSourceFile)
	case sourceFile:
		r.context = sourceFile
		r.currentSet = &r.data.Includes
	default:
		r.context = arbitraryFile
		r.currentSet = nil
	}

	if enter {
		if r.lastIncludeLoc.Source != "" {
			r.includeChain = append(r.includeChain, r.lastIncludeLoc)
			r.lastIncludeLoc = SourceLine{}
		}
		if previousSet != nil && r.context == arbitraryFile {
			// a foreign header entered from a first-party frame.
			previousSet.insert(Include{
				Path:         r.currentSourceFile,
				IncludeChain: copyChain(r.includeChain),
			})
		}
		return
	}

	if len(r.includeChain) > 0 {
		r.includeChain = r.includeChain[:len(r.includeChain)-1]
	}
	if previousContext == interfaceHeader && r.context != arbitraryFile {
		// leaving an interface header: re-export what it collected into
		// the enclosing frame.
		r.currentSet.mergeFrom(previousSet)
	}
}

// InclusionDirective implements events.
func (r *recorder) InclusionDirective(line int) {
	r.lastIncludeLoc = SourceLine{Source: r.currentSourceFile, Line: line}
}

// FileSkipped implements events.
func (r *recorder) FileSkipped(path string) {
	filename := pathutil.Normalize(path)
	if r.context == arbitraryFile {
		return
	}

	if targetmodel.IsInterfaceHeader(r.targetData, filename) ||
		targetmodel.IsPrivateSource(r.targetData, filename) {
		// already fully processed in a prior entry; reuse its recorded
		// transitive contribution.
		if bucket, ok := r.data.InterfaceHeaderIncludes[filename]; ok {
			r.currentSet.mergeFrom(bucket)
		}
		return
	}

	chain := copyChain(r.includeChain)
	if r.lastIncludeLoc.Source != "" {
		chain = append(chain, r.lastIncludeLoc)
	}
	r.currentSet.insert(Include{Path: filename, IncludeChain: chain})
}

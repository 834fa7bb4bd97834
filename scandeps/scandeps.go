// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package scandeps

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	log "github.com/golang/glog"

	"go.chromium.org/infra/build/lwyi/sync/transformer"
	"go.chromium.org/infra/build/lwyi/targetmodel"
	"go.chromium.org/infra/build/lwyi/toolsupport/compdb"
	"go.chromium.org/infra/build/lwyi/toolsupport/gccutil"
	"go.chromium.org/infra/build/lwyi/ui"
)

// relativeResourceDir locates the preprocessor resource directory next
// to the executable.
const relativeResourceDir = "../lib/clang"

// Scanner scans the translation units of targets, fanning the work out
// over a worker pool. The compilation database and the scanned-file
// cache are shared across targets and workers.
type Scanner struct {
	pool *transformer.Pool
	fs   *filesystem

	resourceDir string

	mu  sync.Mutex
	dbs map[string]*compdb.Database
}

// NewScanner creates a scanner backed by threads workers.
func NewScanner(threads int) *Scanner {
	resourceDir := relativeResourceDir
	if exe, err := os.Executable(); err == nil {
		resourceDir = filepath.Join(filepath.Dir(exe), relativeResourceDir)
	}
	return &Scanner{
		pool:        transformer.NewPool(threads),
		fs:          &filesystem{},
		resourceDir: resourceDir,
		dbs:         make(map[string]*compdb.Database),
	}
}

// Close shuts down the worker pool.
func (s *Scanner) Close() {
	s.pool.Close()
}

func (s *Scanner) database(binaryDir string) (*compdb.Database, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if db, ok := s.dbs[binaryDir]; ok {
		return db, nil
	}
	db, err := compdb.Load(filepath.Join(binaryDir, "compile_commands.json"))
	if err != nil {
		return nil, err
	}
	s.dbs[binaryDir] = db
	return db, nil
}

// compileJob is one preprocess-only invocation.
type compileJob struct {
	dir    string
	source string
	args   []string
}

// Scan preprocesses every translation unit of the target and returns the
// merged intransitive includes. Sources without a compile command are
// tallied and skipped; failing units are reported together after all
// units ran.
func (s *Scanner) Scan(ctx context.Context, binaryDir string, targetData *targetmodel.TargetData) (*IntransitiveIncludes, error) {
	db, err := s.database(binaryDir)
	if err != nil {
		return nil, err
	}

	sources := make([]string, 0, len(targetData.Sources)+len(targetData.VerifyInterfaceHeaderSetsSources))
	sources = append(sources, targetData.Sources...)
	sources = append(sources, targetData.VerifyInterfaceHeaderSetsSources...)

	var jobs []compileJob
	processed := 0
	skipped := make(map[string]int)
	for _, source := range sources {
		if !filepath.IsAbs(source) {
			return nil, fmt.Errorf("Unexpected relative path in target data: %s", source)
		}
		cmds := db.Commands(source)
		if len(cmds) == 0 {
			skipped[filepath.Ext(source)]++
			continue
		}
		for _, cmd := range cmds {
			jobs = append(jobs, compileJob{
				dir:    cmd.Directory,
				source: cmd.File,
				args:   gccutil.PreprocessArgs(cmd.Args, s.resourceDir),
			})
		}
		processed++
	}

	results := make([]tuResult, len(jobs))
	transformer.Transform(s.pool, jobs, results, func(job compileJob) tuResult {
		if err := ctx.Err(); err != nil {
			return tuResult{err: err}
		}
		return s.scanTU(job, targetData)
	})

	ui.Infof("Processed %d source files", processed)
	exts := make([]string, 0, len(skipped))
	for ext := range skipped {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	for _, ext := range exts {
		msg := "files"
		if skipped[ext] == 1 {
			msg = "file"
		}
		ui.Infof("Skipped %d *%s %s", skipped[ext], ext, msg)
	}

	return mergeIncludes(results)
}

func (s *Scanner) scanTU(job compileJob, targetData *targetmodel.TargetData) tuResult {
	if log.V(1) {
		log.Infof("scan %s in %s", job.source, job.dir)
	}
	data := &IncludeData{}
	rec := newRecorder(data, targetData)
	pp := newPreprocessor(s.fs, job.dir, gccutil.ExtractScanParams(job.args), rec)
	if err := pp.run(job.source); err != nil {
		return tuResult{err: fmt.Errorf("Error while processing %s: %w", job.source, err)}
	}
	return tuResult{data: data}
}

// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package scandeps

import (
	"os"
	"sync"
)

// filesystem is a shared cache of scanned files, keyed by absolute
// normalized path. It amortizes header re-reads across translation
// units and is safe for concurrent read-through lookups from all
// workers. Negative results (missing files) are cached too.
type filesystem struct {
	files sync.Map // path -> *scanResult
}

// scanResult is the cached scan of one file.
type scanResult struct {
	once sync.Once

	directives []directive
	err        error
}

// scanFile returns the cached scan of path, reading and scanning the
// file on first use.
func (fsys *filesystem) scanFile(path string) *scanResult {
	v, _ := fsys.files.LoadOrStore(path, &scanResult{})
	sr := v.(*scanResult)
	sr.once.Do(func() {
		buf, err := os.ReadFile(path)
		if err != nil {
			sr.err = err
			return
		}
		sr.directives = cppScan(path, buf)
	})
	return sr
}

// exists reports whether path is a readable file, through the cache.
func (fsys *filesystem) exists(path string) bool {
	return fsys.scanFile(path).err == nil
}

// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package pathutil provides lexical path predicates for the target model
// and the include scanner. No function in this package touches the
// filesystem.
package pathutil

import (
	"path/filepath"
	"strings"
)

// Normalize lexically normalizes path and converts it to slash form.
func Normalize(path string) string {
	if path == "" {
		return ""
	}
	return filepath.ToSlash(filepath.Clean(filepath.FromSlash(path)))
}

// IsInDirectory reports whether file is dir itself or lexically inside dir.
// It relativizes file against dir and checks that the result is non-empty
// and does not start with the parent-directory token. Mixing an absolute
// path with a relative one always returns false.
func IsInDirectory(dir, file string) bool {
	if dir == "" || file == "" {
		return false
	}
	rel, err := filepath.Rel(filepath.FromSlash(dir), filepath.FromSlash(file))
	if err != nil {
		// absolute vs relative, or not expressible.
		return false
	}
	rel = filepath.ToSlash(rel)
	if rel == "" || rel == ".." || strings.HasPrefix(rel, "../") {
		return false
	}
	return true
}

// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package ui

import (
	"fmt"
	"os"
)

// PlainUI writes message lines verbatim to stdout. This is the default:
// diagnostic lines must keep their exact textual shape.
type PlainUI struct{}

// Infof implements UI.
func (PlainUI) Infof(format string, args ...any) {
	fmt.Fprintf(os.Stdout, format+"\n", args...)
}

// Warningf implements UI.
func (PlainUI) Warningf(format string, args ...any) {
	fmt.Fprintf(os.Stdout, format+"\n", args...)
}

// Errorf implements UI.
func (PlainUI) Errorf(format string, args ...any) {
	fmt.Fprintf(os.Stdout, format+"\n", args...)
}

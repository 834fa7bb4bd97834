// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package ui provides the user-facing output layer.
//
// Diagnostics have a fixed textual contract (`error:` / `Warning:` /
// `note:` lines), so the default implementation writes plain lines to
// stdout. Setting LWYI_UI=log routes everything through a structured
// logger instead, for runs whose output is collected by another tool.
package ui

import "os"

// UI is a user interface.
type UI interface {
	// Infof prints an informational message line.
	Infof(format string, args ...any)
	// Warningf prints a warning line.
	Warningf(format string, args ...any)
	// Errorf prints an error line.
	Errorf(format string, args ...any)
}

// Default holds the default UI implementation.
// Making changes to this variable after init is undefined behavior.
var Default UI

func init() {
	if os.Getenv("LWYI_UI") == "log" {
		Default = LogUI{}
	} else {
		Default = PlainUI{}
	}
}

// Infof prints an informational message line via the default UI.
func Infof(format string, args ...any) {
	Default.Infof(format, args...)
}

// Warningf prints a warning line via the default UI.
func Warningf(format string, args ...any) {
	Default.Warningf(format, args...)
}

// Errorf prints an error line via the default UI.
func Errorf(format string, args ...any) {
	Default.Errorf(format, args...)
}

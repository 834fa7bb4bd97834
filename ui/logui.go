// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package ui

import (
	"github.com/charmbracelet/log"
)

// LogUI routes messages through a structured logger. Selected with
// LWYI_UI=log when output is collected by another tool.
type LogUI struct{}

// Infof implements UI.
func (LogUI) Infof(format string, args ...any) {
	log.Infof(format, args...)
}

// Warningf implements UI.
func (LogUI) Warningf(format string, args ...any) {
	log.Warnf(format, args...)
}

// Errorf implements UI.
func (LogUI) Errorf(format string, args ...any) {
	log.Errorf(format, args...)
}

// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package lwyi reconciles what a target links against with what its
// code actually includes, and analyzes the dependency graph for
// strongly connected components.
package lwyi

// Visibility is the scope of a dependency edge: a two-bit lattice whose
// join is bitwise OR. Public is the join of Private and Interface.
type Visibility uint8

const (
	None      Visibility = 0x00
	Private   Visibility = 0x01
	Interface Visibility = 0x10
	Public    Visibility = Private | Interface
)

// String renders the visibility the way diagnostics spell it.
func (v Visibility) String() string {
	switch v {
	case None:
		return "NONE"
	case Private:
		return "PRIVATE"
	case Interface:
		return "INTERFACE"
	case Public:
		return "PUBLIC"
	}
	return "INVALID"
}

// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package lwyi

import "testing"

func TestVisibilityLattice(t *testing.T) {
	all := []Visibility{None, Private, Interface, Public}

	if Private|Interface != Public {
		t.Errorf("Private|Interface=%v; want Public", Private|Interface)
	}
	for _, a := range all {
		if a|a != a {
			t.Errorf("%v|%v=%v; want idempotent", a, a, a|a)
		}
		if a|None != a || None|a != a {
			t.Errorf("None is not the join identity for %v", a)
		}
		if a&None != None {
			t.Errorf("%v&None=%v; want None", a, a&None)
		}
		for _, b := range all {
			if a|b != b|a {
				t.Errorf("%v|%v != %v|%v", a, b, b, a)
			}
			for _, c := range all {
				if a&(b|c) != (a&b)|(a&c) {
					t.Errorf("& does not distribute over | for %v, %v, %v", a, b, c)
				}
			}
		}
	}
	for _, a := range all {
		if (a == None) != (a&Public == None) {
			t.Errorf("emptiness check inconsistent for %v", a)
		}
	}
}

func TestVisibilityString(t *testing.T) {
	for v, want := range map[Visibility]string{
		None:      "NONE",
		Private:   "PRIVATE",
		Interface: "INTERFACE",
		Public:    "PUBLIC",
	} {
		if got := v.String(); got != want {
			t.Errorf("%d.String()=%q; want %q", v, got, want)
		}
	}
}

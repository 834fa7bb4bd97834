// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package targetmodel

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeInfoFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "link_what_you_include_info.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadJSON(t *testing.T) {
	path := writeInfoFile(t, `{
  "libq": {
    "interface_headers": ["/libq/include/q.h"],
    "interface_include_directories": ["/libq/include"],
    "interface_include_prefixes": ["libq"],
    "interface_dependencies": ["liba", "libc"],
    "dependencies": ["liba", "libb"],
    "sources": ["/libq/src/q.cpp"],
    "verify_interface_header_sets_sources": ["/libq/verify/q.cpp"]
  },
  "liba": {}
}`)

	loader := NewLoader()
	if err := loader.LoadJSON(path); err != nil {
		t.Fatalf("LoadJSON=%v; want nil err", err)
	}
	m := loader.MakeTargetModel()

	if m.Len() != 2 {
		t.Fatalf("Len=%d; want 2", m.Len())
	}
	data := m.GetTargetData(Target{Name: "libq"})
	if data == nil {
		t.Fatalf("GetTargetData(libq)=nil; want data")
	}
	want := &TargetData{
		InterfaceHeaders:                 []string{"/libq/include/q.h"},
		InterfaceIncludeDirectories:      []string{"/libq/include"},
		InterfaceIncludePrefixes:         []string{"libq"},
		InterfaceDependencies:            []Target{{Name: "liba"}, {Name: "libc"}},
		Dependencies:                     []Target{{Name: "liba"}, {Name: "libb"}},
		Sources:                          []string{"/libq/src/q.cpp"},
		VerifyInterfaceHeaderSetsSources: []string{"/libq/verify/q.cpp"},
	}
	if diff := cmp.Diff(want, data); diff != "" {
		t.Errorf("libq data diff -want +got:\n%s", diff)
	}
}

func TestLoadJSONAccumulates(t *testing.T) {
	first := writeInfoFile(t, `{"liba": {"sources": ["/liba/a.cpp"]}}`)
	second := writeInfoFile(t, `{"libb": {"sources": ["/libb/b.cpp"]}}`)

	loader := NewLoader()
	if err := loader.LoadJSON(first); err != nil {
		t.Fatal(err)
	}
	if err := loader.LoadJSON(second); err != nil {
		t.Fatal(err)
	}
	if m := loader.MakeTargetModel(); m.Len() != 2 {
		t.Errorf("Len=%d; want 2 accumulated targets", m.Len())
	}
	// The accumulator was consumed.
	if m := loader.MakeTargetModel(); m.Len() != 0 {
		t.Errorf("Len=%d after consuming; want 0", m.Len())
	}
}

func TestLoadJSONUnknownKey(t *testing.T) {
	path := writeInfoFile(t, `{"liba": {"header_files": ["/liba/a.h"]}}`)

	err := NewLoader().LoadJSON(path)
	if err == nil || !strings.Contains(err.Error(), "header_files") {
		t.Errorf("LoadJSON=%v; want error naming the unknown key", err)
	}
}

func TestLoadJSONBadValue(t *testing.T) {
	path := writeInfoFile(t, `{"liba": {"sources": "not-an-array"}}`)

	err := NewLoader().LoadJSON(path)
	if err == nil {
		t.Fatalf("LoadJSON=nil; want error for non-array value")
	}
}

func TestLoadJSONSyntaxErrorLocation(t *testing.T) {
	path := writeInfoFile(t, "{\n  \"liba\": {\n    \"sources\": [,]\n  }\n}")

	err := NewLoader().LoadJSON(path)
	if err == nil {
		t.Fatalf("LoadJSON=nil; want syntax error")
	}
	if !regexp.MustCompile(`line \d+, column \d+`).MatchString(err.Error()) {
		t.Errorf("LoadJSON=%v; want a line/column hint", err)
	}
}

func TestLoadJSONMissingFile(t *testing.T) {
	err := NewLoader().LoadJSON(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Errorf("LoadJSON=nil; want error for missing file")
	}
}

// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package compdb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeDB(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "compile_commands.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCommandString(t *testing.T) {
	db, err := Load(writeDB(t, `[
  {
    "directory": "/build",
    "file": "/src/a.cpp",
    "command": "clang++ -I/inc -D\"NAME=\\\"v\\\"\" -c /src/a.cpp -o 'a b.o'"
  }
]`))
	if err != nil {
		t.Fatalf("Load=%v; want nil err", err)
	}

	cmds := db.Commands("/src/a.cpp")
	if len(cmds) != 1 {
		t.Fatalf("Commands=%d entries; want 1", len(cmds))
	}
	want := Command{
		Directory: "/build",
		File:      "/src/a.cpp",
		Args:      []string{"clang++", "-I/inc", `-DNAME="v"`, "-c", "/src/a.cpp", "-o", "a b.o"},
	}
	if diff := cmp.Diff(want, cmds[0]); diff != "" {
		t.Errorf("command diff -want +got:\n%s", diff)
	}
}

func TestLoadArgumentsArray(t *testing.T) {
	db, err := Load(writeDB(t, `[
  {
    "directory": "/build",
    "file": "../src/b.cpp",
    "arguments": ["clang++", "-c", "../src/b.cpp"]
  }
]`))
	if err != nil {
		t.Fatalf("Load=%v; want nil err", err)
	}
	// relative file paths resolve against the entry directory.
	if got := db.Commands("/src/b.cpp"); len(got) != 1 {
		t.Errorf("Commands(/src/b.cpp)=%d entries; want 1", len(got))
	}
	if got := db.Commands("/src/missing.cpp"); got != nil {
		t.Errorf("Commands(missing)=%v; want nil", got)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Errorf("Load(missing)=nil err; want error")
	}
	if _, err := Load(writeDB(t, `{"not": "an array"}`)); err == nil {
		t.Errorf("Load(bad json)=nil err; want error")
	}
	if _, err := Load(writeDB(t, `[{"directory": "/", "file": "a.c", "command": "clang 'unterminated"}]`)); err == nil {
		t.Errorf("Load(unterminated quote)=nil err; want error")
	}
}

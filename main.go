// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Command lwyi verifies that each build target links what it includes:
// the targets it depends on via link edges must match the targets whose
// headers its code actually consumes, with matching visibility.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	log "github.com/golang/glog"
)

func main() {
	// glog registers its flags on the default FlagSet; the command line
	// itself is handled by parseArguments.
	_ = flag.CommandLine.Parse(nil)
	os.Exit(lwyiMain(context.Background()))
}

func lwyiMain(ctx context.Context) int {
	// Flush the log on exit to not lose any messages.
	defer log.Flush()

	// Print a stack trace when a panic occurs.
	defer func() {
		if r := recover(); r != nil {
			const size = 64 << 10
			buf := make([]byte, size)
			buf = buf[:runtime.Stack(buf, false)]
			log.Fatalf("panic: %v\n%s", r, buf)
		}
	}()

	if buildinfo, ok := debug.ReadBuildInfo(); ok {
		log.Infof("buildinfo: path=%q version=%s", buildinfo.Path, buildinfo.Main.Version)
	}

	options, err := parseArguments(os.Args[0], os.Args[1:])
	if err != nil {
		fmt.Println(err)
		return 1
	}
	return runLWYI(ctx, options)
}

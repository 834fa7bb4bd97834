// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"errors"
	"fmt"

	"go.chromium.org/infra/build/lwyi/flagutil"
)

const usageText = `Usage:
  %s [options]

Possible options:
  -h, --help                Print this help message.

  -d, --binary_dir DIR      Path to the directory with input files. Default is
                            the current directory.
  -t, --targets TARGETS...  Limit analysis to the given targets.
  -j, --parallel COUNT      Number of threads used to process source files.
                            Default depends on system.

  --tool TOOL [OPTIONS...]  Run a tool. All subsequent arguments are passed to
                            the tool.`

// commandOptions is the parsed top-level command line.
type commandOptions struct {
	binaryDir   string
	targets     []string
	toolCommand []string
	numThreads  uint
}

func usage(name string) string {
	return fmt.Sprintf(usageText, name)
}

// parseArguments parses the top-level command line. A usage problem (or
// an explicit -h) comes back as an error whose text ends with the usage
// string.
func parseArguments(name string, args []string) (*commandOptions, error) {
	var help bool
	options := &commandOptions{}

	parser := flagutil.NewParser()
	parser.Bool("-h", "--help", &help)
	parser.String("-d", "--binary_dir", &options.binaryDir)
	parser.StringList("-t", "--targets", &options.targets)
	parser.Uint("-j", "--parallel", &options.numThreads)
	parser.Terminal("--tool", &options.toolCommand)

	if err := parser.Parse(args); err != nil {
		return nil, fmt.Errorf("%s\n%s", err, usage(name))
	}
	if help {
		return nil, errors.New(usage(name))
	}
	return options, nil
}

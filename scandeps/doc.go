// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package scandeps scans the translation units of a build target and
// reports, per target, the set of headers directly included by the
// target's own code, partitioned into interface and private buckets.
//
// It drives a forged preprocess-only C/C++ front end over each
// translation unit. The front end only understands simple forms of
// preprocessor directives:
//
//	#include "foo.h"
//	#include <foo.h>
//	#include FOO_H
//
// and, to support the last case, value macros of the forms
//
//	#define FOO_H "foo.h"
//	#define FOO_H <foo.h>
//	#define FOO_H OTHER_FOO_H
//
// Since it does not evaluate `#if` or `#ifdef`, a macro include expands
// to all recorded values of the macro. Comments and line continuations
// in directives are not supported. Every file is entered at most once
// per translation unit; a re-include surfaces as a file-skip event, the
// way an include guard would behave in a real preprocessor.
//
// A recorder attached to the front end classifies every file-enter,
// file-exit and file-skip event against the target's own files and
// produces the per-unit include data that the linkage checker consumes.
package scandeps

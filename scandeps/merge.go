// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package scandeps

import "errors"

// tuResult is the outcome of scanning one translation unit.
type tuResult struct {
	data *IncludeData
	err  error
}

// mergeIncludes folds per-unit results into the per-target view. An
// interface header's bucket contributes to both Includes and
// InterfaceIncludes; a unit's private set contributes to Includes only.
// All failed units are reported together.
func mergeIncludes(results []tuResult) (*IntransitiveIncludes, error) {
	var errs []error
	var interfaceIncludes, includes IncludeSet
	for _, r := range results {
		if r.err != nil {
			errs = append(errs, r.err)
			continue
		}
		includes.mergeFrom(&r.data.Includes)
		for _, bucket := range r.data.InterfaceHeaderIncludes {
			interfaceIncludes.mergeFrom(bucket)
			includes.mergeFrom(bucket)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return &IntransitiveIncludes{
		InterfaceIncludes: interfaceIncludes.Sorted(),
		Includes:          includes.Sorted(),
	}, nil
}

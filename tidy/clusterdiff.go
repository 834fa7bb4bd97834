// Copyright 2025 The Chromium Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package tidy

import (
	"math"
	"sort"

	"go.chromium.org/infra/build/lwyi/targetmodel"
)

// ClusterDiff is the per-slot set difference after matching. Both sides
// are sorted by target name.
type ClusterDiff struct {
	LeftOnly  []targetmodel.Target
	RightOnly []targetmodel.Target
}

// exhaustiveLimit is the largest slot count the factorial permutation
// search handles; above it the Hungarian assignment takes over with the
// same objective.
const exhaustiveLimit = 8

func intersectionSize(lhs, rhs map[targetmodel.Target]bool) int {
	if lhs == nil || rhs == nil {
		// a missing slot intersects nothing.
		return 0
	}
	small, large := lhs, rhs
	if len(large) < len(small) {
		small, large = large, small
	}
	count := 0
	for t := range small {
		if large[t] {
			count++
		}
	}
	return count
}

func sortedTargets(set map[targetmodel.Target]bool) []targetmodel.Target {
	out := make([]targetmodel.Target, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

func singleDiff(lhs, rhs map[targetmodel.Target]bool) ClusterDiff {
	var diff ClusterDiff
	for _, t := range sortedTargets(lhs) {
		if !rhs[t] {
			diff.LeftOnly = append(diff.LeftOnly, t)
		}
	}
	for _, t := range sortedTargets(rhs) {
		if !lhs[t] {
			diff.RightOnly = append(diff.RightOnly, t)
		}
	}
	return diff
}

// clusterDiff matches lhs clusters against rhs clusters under the
// permutation maximizing the summed pairwise intersection sizes, and
// returns one set-difference pair per matched slot. Missing slots on
// either side match against nothing.
func clusterDiff(lhs, rhs []map[targetmodel.Target]bool) []ClusterDiff {
	n := len(lhs)
	if len(rhs) > n {
		n = len(rhs)
	}
	if n == 0 {
		return nil
	}

	view := func(clusters []map[targetmodel.Target]bool, i int) map[targetmodel.Target]bool {
		if i < len(clusters) {
			return clusters[i]
		}
		return nil
	}

	scores := make([][]int, n)
	for i := range scores {
		scores[i] = make([]int, n)
		for j := range scores[i] {
			scores[i][j] = intersectionSize(view(lhs, i), view(rhs, j))
		}
	}

	var permutation []int
	if n <= exhaustiveLimit {
		permutation = bestPermutation(scores)
	} else {
		permutation = assign(scores)
	}

	result := make([]ClusterDiff, n)
	for i := 0; i < n; i++ {
		result[i] = singleDiff(view(lhs, i), view(rhs, permutation[i]))
	}
	return result
}

// bestPermutation exhaustively maximizes the summed scores.
func bestPermutation(scores [][]int) []int {
	n := len(scores)
	permutation := make([]int, n)
	for i := range permutation {
		permutation[i] = i
	}
	best := append([]int(nil), permutation...)
	bestScore := -1

	var permute func(k int)
	permute = func(k int) {
		if k == n {
			score := 0
			for i, j := range permutation {
				score += scores[i][j]
			}
			if score > bestScore {
				bestScore = score
				copy(best, permutation)
			}
			return
		}
		for i := k; i < n; i++ {
			permutation[k], permutation[i] = permutation[i], permutation[k]
			permute(k + 1)
			permutation[k], permutation[i] = permutation[i], permutation[k]
		}
	}
	permute(0)
	return best
}

// assign solves the same maximization as bestPermutation with the
// Hungarian algorithm in O(n^3), for slot counts where the factorial
// search is not viable.
func assign(scores [][]int) []int {
	n := len(scores)
	// the standard formulation minimizes; negate the scores.
	const inf = math.MaxInt / 2
	u := make([]int, n+1)
	v := make([]int, n+1)
	match := make([]int, n+1) // column -> row
	way := make([]int, n+1)

	for i := 1; i <= n; i++ {
		match[0] = i
		j0 := 0
		minv := make([]int, n+1)
		used := make([]bool, n+1)
		for j := range minv {
			minv[j] = inf
		}
		for {
			used[j0] = true
			i0 := match[j0]
			delta := inf
			j1 := 0
			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur := -scores[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j := 0; j <= n; j++ {
				if used[j] {
					u[match[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if match[j0] == 0 {
				break
			}
		}
		for j0 != 0 {
			j1 := way[j0]
			match[j0] = match[j1]
			j0 = j1
		}
	}

	permutation := make([]int, n)
	for j := 1; j <= n; j++ {
		if match[j] > 0 {
			permutation[match[j]-1] = j - 1
		}
	}
	return permutation
}

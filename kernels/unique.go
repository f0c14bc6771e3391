// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package kernels

import (
	"github.com/backed-go/backed/internal/debug"
)

// Unique returns the distinct values in first-appearance order. A non-nil
// mask marks missing positions; all missing positions collapse into a single
// entry carrying the first missing value encountered. This keeps float NaN
// representations, which never compare equal to themselves, from producing
// one entry per occurrence.
func Unique[T comparable](values []T, mask []bool) []T {
	debug.Assert(mask == nil || len(mask) == len(values),
		"backed/kernels: mask length %d does not match %d values", len(mask), len(values))
	out := make([]T, 0, len(values))
	seen := make(map[T]struct{}, len(values))
	seenMissing := false
	for i, v := range values {
		if mask != nil && mask[i] {
			if !seenMissing {
				seenMissing = true
				out = append(out, v)
			}
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// ValueCounts tallies occurrences per distinct value, reporting values in
// first-appearance order. Missing positions, marked by a non-nil mask, are
// tallied as one group under the first missing value encountered.
func ValueCounts[T comparable](values []T, mask []bool) ([]T, []int64) {
	debug.Assert(mask == nil || len(mask) == len(values),
		"backed/kernels: mask length %d does not match %d values", len(mask), len(values))
	var (
		out       = make([]T, 0, len(values))
		counts    = make([]int64, 0, len(values))
		at        = make(map[T]int, len(values))
		missingAt = -1
	)
	for i, v := range values {
		if mask != nil && mask[i] {
			if missingAt == -1 {
				missingAt = len(out)
				out = append(out, v)
				counts = append(counts, 0)
			}
			counts[missingAt]++
			continue
		}
		j, ok := at[v]
		if !ok {
			j = len(out)
			at[v] = j
			out = append(out, v)
			counts = append(counts, 0)
		}
		counts[j]++
	}
	return out, counts
}

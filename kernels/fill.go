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

// Pad overwrites masked positions in place with the nearest preceding
// unmasked value, filling at most limit consecutive positions per run of
// missing values (limit <= 0 means unbounded). Masked positions before the
// first unmasked value are left alone. Returns the number of positions
// overwritten; mask is not updated.
func Pad[T any](values []T, mask []bool, limit int) int {
	debug.Assert(len(mask) == len(values),
		"backed/kernels: mask length %d does not match %d values", len(mask), len(values))
	lim := len(values)
	if limit > 0 {
		lim = limit
	}
	var (
		val    T
		valid  bool
		run    int
		filled int
	)
	for i, missing := range mask {
		if !missing {
			val, valid = values[i], true
			run = 0
			continue
		}
		run++
		if !valid || run > lim {
			continue
		}
		values[i] = val
		filled++
	}
	return filled
}

// Backfill is the mirror of Pad: masked positions take the nearest following
// unmasked value, at most limit consecutive positions per run.
func Backfill[T any](values []T, mask []bool, limit int) int {
	debug.Assert(len(mask) == len(values),
		"backed/kernels: mask length %d does not match %d values", len(mask), len(values))
	lim := len(values)
	if limit > 0 {
		lim = limit
	}
	var (
		val    T
		valid  bool
		run    int
		filled int
	)
	for i := len(values) - 1; i >= 0; i-- {
		if !mask[i] {
			val, valid = values[i], true
			run = 0
			continue
		}
		run++
		if !valid || run > lim {
			continue
		}
		values[i] = val
		filled++
	}
	return filled
}

// PutMask overwrites dst[i] with v wherever mask[i] is true.
func PutMask[T any](dst []T, mask []bool, v T) {
	debug.Assert(len(mask) == len(dst),
		"backed/kernels: mask length %d does not match %d values", len(mask), len(dst))
	for i, m := range mask {
		if m {
			dst[i] = v
		}
	}
}

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

package backed

import (
	"fmt"

	"github.com/backed-go/backed/kernels"
)

// Unique returns the distinct elements in order of first appearance as a
// rank-1 array. Rank-2 input deduplicates over the flat logical row-major
// sequence. Missing markers participate like any value and collapse into a
// single entry.
func (a *Array[T, V, D]) Unique() *Array[T, V, D] {
	values := a.buf.logicalValues()
	out := kernels.Unique(values, a.MissingMask())
	return a.FromBackingData(NewVectorBuffer(out))
}

// ValueCounts tallies the elements of a rank-1 array, returning the
// distinct values in first-appearance order with aligned counts.
// dropMissing excludes missing positions from the tally; otherwise they
// count as a single group.
func (a *Array[T, V, D]) ValueCounts(dropMissing bool) (*Array[T, V, D], []int64, error) {
	if a.Rank() != 1 {
		return nil, nil, fmt.Errorf("%w: backed: value counts on a rank-%d array", ErrNotImplemented, a.Rank())
	}
	if !dropMissing {
		out, counts := kernels.ValueCounts(a.buf.values, a.MissingMask())
		return a.FromBackingData(NewVectorBuffer(out)), counts, nil
	}
	kept := make([]T, 0, len(a.buf.values))
	for _, v := range a.buf.values {
		if !a.dtype.IsMissing(v) {
			kept = append(kept, v)
		}
	}
	out, counts := kernels.ValueCounts(kept, nil)
	return a.FromBackingData(NewVectorBuffer(out)), counts, nil
}

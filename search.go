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
	"sort"
)

// SearchSide selects which boundary of a run of equal elements
// SearchSorted returns.
type SearchSide int8

const (
	// SearchLeft returns the first position where value could be
	// inserted keeping order.
	SearchLeft SearchSide = iota
	// SearchRight returns the position past the last equal element.
	SearchRight
)

// SearchSorted returns the insertion position for value in a sorted rank-1
// array. value passes ValidateSearch first. A non-nil sorter is a
// permutation that puts the elements in ascending order; the search then
// runs through it instead of assuming the storage itself is sorted, and
// the returned position indexes the sorted view.
func (a *Array[T, V, D]) SearchSorted(value any, side SearchSide, sorter []int) (int, error) {
	if a.Rank() != 1 {
		return 0, fmt.Errorf("%w: backed: search sorted on a rank-%d array", ErrNotImplemented, a.Rank())
	}
	if side != SearchLeft && side != SearchRight {
		return 0, fmt.Errorf("%w: backed: search side %d", ErrInvalid, side)
	}
	probe, err := a.dtype.ValidateSearch(value)
	if err != nil {
		return 0, err
	}
	n := a.Len()
	at := func(k int) T { return a.buf.values[k] }
	if sorter != nil {
		if len(sorter) != n {
			return 0, fmt.Errorf("%w: backed: sorter length %d does not match length %d", ErrIndex, len(sorter), n)
		}
		norm, err := normalizePositions(sorter, n)
		if err != nil {
			return 0, err
		}
		at = func(k int) T { return a.buf.values[norm[k]] }
	}
	if side == SearchRight {
		return sort.Search(n, func(k int) bool { return at(k) > probe }), nil
	}
	return sort.Search(n, func(k int) bool { return at(k) >= probe }), nil
}

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

	"github.com/JohnCGriffin/overflow"
)

// Repeat returns each position along the axis repeated. A single count
// applies uniformly; otherwise counts holds one entry per position.
// Negative counts are invalid; a zero count drops the position. The result
// is row-major.
func (a *Array[T, V, D]) Repeat(counts []int, axis int) (*Array[T, V, D], error) {
	axis, err := a.normalizeAxis(axis)
	if err != nil {
		return nil, err
	}
	n := a.axisLen(axis)
	if len(counts) != 1 && len(counts) != n {
		return nil, fmt.Errorf("%w: backed: %d repeat counts for axis length %d", ErrInvalid, len(counts), n)
	}
	countAt := func(int) int { return counts[0] }
	if len(counts) != 1 {
		countAt = func(i int) int { return counts[i] }
	}
	total := 0
	for i := 0; i < n; i++ {
		c := countAt(i)
		if c < 0 {
			return nil, fmt.Errorf("%w: backed: negative repeat count %d", ErrInvalid, c)
		}
		ok := false
		if total, ok = overflow.Add(total, c); !ok {
			return nil, fmt.Errorf("%w: backed: repeat size overflows", ErrInvalid)
		}
	}
	if a.Rank() == 2 {
		off := a.buf.shape[1-axis]
		if _, ok := overflow.Mul(total, off); !ok {
			return nil, fmt.Errorf("%w: backed: repeat size overflows", ErrInvalid)
		}
	}
	indices := make([]int, 0, total)
	for i := 0; i < n; i++ {
		for c := countAt(i); c > 0; c-- {
			indices = append(indices, i)
		}
	}
	var zero T
	return a.takeByAxis(indices, axis, false, zero), nil
}

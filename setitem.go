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

// Set writes the validated value at every position key selects, in place.
// On rank-2 arrays a position is a whole row. Validation of both the key
// and the value completes before the first write; a failed Set leaves the
// array untouched.
func (a *Array[T, V, D]) Set(key Index, value any) error {
	raw, err := a.dtype.ValidateSet(value)
	if err != nil {
		return err
	}
	pos, err := a.keyPositions(key)
	if err != nil {
		return err
	}
	if a.Rank() == 1 {
		for _, p := range pos {
			a.buf.values[p] = raw
		}
		return nil
	}
	cols := a.buf.shape[1]
	for _, p := range pos {
		for j := 0; j < cols; j++ {
			a.buf.values[a.buf.memIndex(p, j)] = raw
		}
	}
	return nil
}

// PutMask writes the validated value at every true position of mask, in
// place. The mask is flat logical row-major and must cover every element.
func (a *Array[T, V, D]) PutMask(mask []bool, value any) error {
	if len(mask) != a.Size() {
		return fmt.Errorf("%w: backed: mask length %d does not match size %d", ErrIndex, len(mask), a.Size())
	}
	raw, err := a.dtype.ValidateSet(value)
	if err != nil {
		return err
	}
	a.putMaskRaw(mask, raw)
	return nil
}

// Where is the non-mutating complement of PutMask: the result keeps the
// receiver's element wherever mask is true and takes the validated value
// everywhere else.
func (a *Array[T, V, D]) Where(mask []bool, value any) (*Array[T, V, D], error) {
	if len(mask) != a.Size() {
		return nil, fmt.Errorf("%w: backed: mask length %d does not match size %d", ErrIndex, len(mask), a.Size())
	}
	raw, err := a.dtype.ValidateSet(value)
	if err != nil {
		return nil, err
	}
	out := a.Copy()
	inverted := make([]bool, len(mask))
	for i, keep := range mask {
		inverted[i] = !keep
	}
	out.putMaskRaw(inverted, raw)
	return out, nil
}

// Delete returns a copy with the given positions along the axis removed.
// Negatives count from the end and duplicates collapse. The result is
// row-major.
func (a *Array[T, V, D]) Delete(positions []int, axis int) (*Array[T, V, D], error) {
	axis, err := a.normalizeAxis(axis)
	if err != nil {
		return nil, err
	}
	n := a.axisLen(axis)
	drop := make(map[int]struct{}, len(positions))
	for _, p := range positions {
		q, err := normalizePosition(p, n)
		if err != nil {
			return nil, err
		}
		drop[q] = struct{}{}
	}
	keep := make([]int, 0, n-len(drop))
	for i := 0; i < n; i++ {
		if _, dropped := drop[i]; !dropped {
			keep = append(keep, i)
		}
	}
	var zero T
	return a.takeByAxis(keep, axis, false, zero), nil
}

// putMaskRaw scatters raw at the true positions of a flat logical
// row-major mask, already validated by the caller.
func (a *Array[T, V, D]) putMaskRaw(mask []bool, raw T) {
	if a.Rank() == 1 || a.buf.order == RowMajor {
		kernels.PutMask(a.buf.values, mask, raw)
		return
	}
	for p, set := range mask {
		if set {
			a.buf.values[a.buf.flatMemIndex(p)] = raw
		}
	}
}

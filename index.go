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

// Index selects positions along axis 0 for Get and Set. The four kinds are
// At, Span, Positions and Mask.
type Index interface {
	isIndex()
}

// At selects a single position; negatives count from the end.
type At int

// Span selects the half-open range [Start, Stop). Negative bounds count
// from the end and out-of-range bounds clamp, so a too-wide span yields
// what exists rather than an error.
type Span struct {
	Start, Stop int
}

// Positions selects the listed positions in order; negatives count from
// the end, anything out of range is ErrIndex.
type Positions []int

// Mask selects every position where true. Its length must equal the axis-0
// length.
type Mask []bool

func (At) isIndex()        {}
func (Span) isIndex()      {}
func (Positions) isIndex() {}
func (Mask) isIndex()      {}

// Get resolves key against axis 0. At on a rank-1 array returns the boxed
// element (no sub-array is built); At on rank-2 returns the selected row
// as a rank-1 array; Span, Positions and Mask return a new array holding
// the selected positions or rows.
func (a *Array[T, V, D]) Get(key Index) (any, error) {
	if k, ok := key.(At); ok {
		i, err := normalizePosition(int(k), a.Len())
		if err != nil {
			return nil, err
		}
		if a.Rank() == 1 {
			return a.Value(i), nil
		}
		return a.Row(i), nil
	}
	pos, err := a.keyPositions(key)
	if err != nil {
		return nil, err
	}
	var zero T
	return a.takeByAxis(pos, 0, false, zero), nil
}

// keyPositions resolves any index kind into normalized axis-0 positions.
func (a *Array[T, V, D]) keyPositions(key Index) ([]int, error) {
	n := a.Len()
	switch k := key.(type) {
	case At:
		i, err := normalizePosition(int(k), n)
		if err != nil {
			return nil, err
		}
		return []int{i}, nil
	case Span:
		return spanPositions(k, n), nil
	case Positions:
		return normalizePositions(k, n)
	case Mask:
		return maskPositions(k, n)
	}
	return nil, fmt.Errorf("%w: backed: unsupported index kind %T", ErrInvalid, key)
}

func spanPositions(s Span, n int) []int {
	start, stop := s.Start, s.Stop
	if start < 0 {
		start += n
	}
	if stop < 0 {
		stop += n
	}
	start = clamp(start, 0, n)
	stop = clamp(stop, 0, n)
	pos := make([]int, 0, max(stop-start, 0))
	for i := start; i < stop; i++ {
		pos = append(pos, i)
	}
	return pos
}

func normalizePositions(ps []int, n int) ([]int, error) {
	out := make([]int, len(ps))
	for i, p := range ps {
		q, err := normalizePosition(p, n)
		if err != nil {
			return nil, err
		}
		out[i] = q
	}
	return out, nil
}

func maskPositions(m []bool, n int) ([]int, error) {
	if len(m) != n {
		return nil, fmt.Errorf("%w: backed: mask length %d does not match axis length %d", ErrIndex, len(m), n)
	}
	pos := make([]int, 0, n)
	for i, selected := range m {
		if selected {
			pos = append(pos, i)
		}
	}
	return pos, nil
}

// takeByAxis gathers pre-validated positions along a normalized axis. The
// result is row-major.
func (a *Array[T, V, D]) takeByAxis(indices []int, axis int, allowFill bool, fill T) *Array[T, V, D] {
	if a.Rank() == 1 {
		return a.FromBackingData(NewVectorBuffer(kernels.Take(a.buf.values, indices, allowFill, fill)))
	}
	rows, cols := a.buf.shape[0], a.buf.shape[1]
	rm := a.buf.logicalValues()
	if axis == 1 {
		out := kernels.TakeCols(rm, rows, cols, indices, allowFill, fill)
		return a.FromBackingData(Buffer[T]{values: out, shape: Shape{rows, len(indices)}, order: RowMajor})
	}
	out := kernels.TakeRows(rm, rows, cols, indices, allowFill, fill)
	return a.FromBackingData(Buffer[T]{values: out, shape: Shape{len(indices), cols}, order: RowMajor})
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

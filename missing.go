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

	"github.com/backed-go/backed/internal/debug"
	"github.com/backed-go/backed/kernels"
)

// MissingMask reports the missing positions as a flat logical row-major
// mask over every element.
func (a *Array[T, V, D]) MissingMask() []bool {
	mask := make([]bool, a.Size())
	if a.Rank() == 1 || a.buf.order == RowMajor {
		for i, v := range a.buf.values {
			mask[i] = a.dtype.IsMissing(v)
		}
		return mask
	}
	rows, cols := a.buf.shape[0], a.buf.shape[1]
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			mask[i*cols+j] = a.dtype.IsMissing(a.buf.values[j*rows+i])
		}
	}
	return mask
}

// HasMissing reports whether any element is the missing marker.
func (a *Array[T, V, D]) HasMissing() bool {
	for _, v := range a.buf.values {
		if a.dtype.IsMissing(v) {
			return true
		}
	}
	return false
}

// CountMissing returns how many elements are the missing marker.
func (a *Array[T, V, D]) CountMissing() int {
	n := 0
	for _, v := range a.buf.values {
		if a.dtype.IsMissing(v) {
			n++
		}
	}
	return n
}

// FillMethod selects how FillMissing propagates existing values.
type FillMethod int8

const (
	// FillNone disables propagation; FillOptions.Value must be set.
	FillNone FillMethod = iota
	// FillPad propagates the last valid value forward along axis 0.
	FillPad
	// FillBackfill propagates the next valid value backward along axis 0.
	FillBackfill
)

// FillOptions configures FillMissing. Exactly one of Value and Method must
// be given.
type FillOptions struct {
	// Value fills every missing position after passing ValidateSet.
	Value any
	// Method propagates neighboring valid values instead of writing one.
	Method FillMethod
	// Limit bounds each consecutive run of filled positions when Method
	// is set; 0 means unbounded.
	Limit int
}

// FillMissing returns a copy with missing positions filled, either with a
// validated value or by propagating along axis 0 (per column on rank-2
// arrays). The value is validated even when nothing is missing, so a bad
// fill never goes unnoticed; in that case the result is an unchanged copy.
func (a *Array[T, V, D]) FillMissing(opts FillOptions) (*Array[T, V, D], error) {
	switch {
	case opts.Value != nil && opts.Method != FillNone:
		return nil, fmt.Errorf("%w: backed: cannot give both a fill value and a fill method", ErrInvalid)
	case opts.Value == nil && opts.Method == FillNone:
		return nil, fmt.Errorf("%w: backed: must give either a fill value or a fill method", ErrInvalid)
	case opts.Method == FillNone && opts.Limit != 0:
		return nil, fmt.Errorf("%w: backed: fill limit requires a fill method", ErrInvalid)
	}

	mask := a.MissingMask()
	missing := false
	for _, m := range mask {
		if m {
			missing = true
			break
		}
	}
	if !missing {
		if opts.Value != nil {
			if _, err := a.dtype.ValidateSet(opts.Value); err != nil {
				return nil, err
			}
		}
		return a.Copy(), nil
	}

	if opts.Method != FillNone {
		return a.fillByMethod(mask, opts.Method, opts.Limit)
	}
	raw, err := a.dtype.ValidateSet(opts.Value)
	if err != nil {
		return nil, err
	}
	out := a.Copy()
	out.putMaskRaw(mask, raw)
	return out, nil
}

func (a *Array[T, V, D]) fillByMethod(mask []bool, method FillMethod, limit int) (*Array[T, V, D], error) {
	var fill func([]T, []bool, int) int
	switch method {
	case FillPad:
		fill = kernels.Pad[T]
	case FillBackfill:
		fill = kernels.Backfill[T]
	default:
		return nil, fmt.Errorf("%w: backed: unknown fill method %d", ErrInvalid, method)
	}
	if a.Rank() == 1 {
		values := a.buf.Values()
		filled := fill(values, mask, limit)
		debug.Logf("backed: fill wrote %d of %d positions", filled, len(values))
		return a.FromBackingData(NewVectorBuffer(values)), nil
	}
	// propagate down each column independently
	rows, cols := a.buf.shape[0], a.buf.shape[1]
	values := a.buf.logicalValues()
	lane := make([]T, rows)
	laneMask := make([]bool, rows)
	filled := 0
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			lane[r] = values[r*cols+c]
			laneMask[r] = mask[r*cols+c]
		}
		filled += fill(lane, laneMask, limit)
		for r := 0; r < rows; r++ {
			values[r*cols+c] = lane[r]
		}
	}
	debug.Logf("backed: fill wrote %d of %d positions", filled, len(values))
	return a.FromBackingData(Buffer[T]{values: values, shape: a.buf.shape.Clone(), order: RowMajor}), nil
}

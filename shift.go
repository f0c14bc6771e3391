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
	"github.com/backed-go/backed/kernels"
)

// Shift displaces elements along the axis by periods, filling vacated
// positions with the validated fill value; nil selects the dtype's missing
// marker where it has one. Positive periods move toward higher positions;
// a magnitude of the axis length or more fills everything. The result is
// row-major.
func (a *Array[T, V, D]) Shift(periods int, fillValue any, axis int) (*Array[T, V, D], error) {
	axis, err := a.normalizeAxis(axis)
	if err != nil {
		return nil, err
	}
	fill, err := a.dtype.ValidateFill(fillValue)
	if err != nil {
		return nil, err
	}
	if a.Rank() == 1 {
		return a.FromBackingData(NewVectorBuffer(kernels.Shift(a.buf.values, periods, fill))), nil
	}
	rows, cols := a.buf.shape[0], a.buf.shape[1]
	rm := a.buf.logicalValues()
	var out []T
	if axis == 0 {
		out = kernels.ShiftRows(rm, rows, cols, periods, fill)
	} else {
		out = kernels.ShiftCols(rm, rows, cols, periods, fill)
	}
	return a.FromBackingData(Buffer[T]{values: out, shape: a.buf.shape.Clone(), order: RowMajor}), nil
}

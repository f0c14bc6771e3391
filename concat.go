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
	"github.com/JohnCGriffin/overflow"
	"golang.org/x/xerrors"
)

// Concat joins arrays along the axis into one new row-major array. The
// type system already forces one instantiation; on top of that every part
// must carry the same dtype identity string, or the error is a
// *MismatchError listing the distinct identities encountered. Shapes must
// agree off-axis.
func Concat[T Elem, V any, D DType[T, V]](parts []*Array[T, V, D], axis int) (*Array[T, V, D], error) {
	if len(parts) == 0 {
		return nil, xerrors.Errorf("%w: backed: concat of zero arrays", ErrInvalid)
	}
	var names []string
	for _, p := range parts {
		name := p.dtype.Name()
		known := false
		for _, seen := range names {
			if seen == name {
				known = true
				break
			}
		}
		if !known {
			names = append(names, name)
		}
	}
	if len(names) > 1 {
		return nil, &MismatchError{Names: names}
	}

	head := parts[0]
	axis, err := head.normalizeAxis(axis)
	if err != nil {
		return nil, err
	}
	for _, p := range parts[1:] {
		if p.Rank() != head.Rank() {
			return nil, xerrors.Errorf("%w: backed: concat of rank %d with rank %d", ErrInvalid, head.Rank(), p.Rank())
		}
		if head.Rank() == 2 && p.buf.shape[1-axis] != head.buf.shape[1-axis] {
			return nil, xerrors.Errorf("%w: backed: concat shapes %v and %v disagree off axis %d",
				ErrInvalid, head.buf.shape, p.buf.shape, axis)
		}
	}

	if head.Rank() == 1 {
		return concatVectors(parts)
	}
	if axis == 0 {
		return concatRows(parts)
	}
	return concatCols(parts)
}

func concatVectors[T Elem, V any, D DType[T, V]](parts []*Array[T, V, D]) (*Array[T, V, D], error) {
	total := 0
	for _, p := range parts {
		ok := false
		if total, ok = overflow.Add(total, p.Len()); !ok {
			return nil, xerrors.Errorf("%w: backed: concat length overflows", ErrInvalid)
		}
	}
	out := make([]T, 0, total)
	for _, p := range parts {
		out = append(out, p.buf.values...)
	}
	return parts[0].FromBackingData(NewVectorBuffer(out)), nil
}

func concatRows[T Elem, V any, D DType[T, V]](parts []*Array[T, V, D]) (*Array[T, V, D], error) {
	cols := parts[0].buf.shape[1]
	rows := 0
	for _, p := range parts {
		ok := false
		if rows, ok = overflow.Add(rows, p.Len()); !ok {
			return nil, xerrors.Errorf("%w: backed: concat length overflows", ErrInvalid)
		}
	}
	if _, ok := overflow.Mul(rows, cols); !ok {
		return nil, xerrors.Errorf("%w: backed: concat size overflows", ErrInvalid)
	}
	out := make([]T, 0, rows*cols)
	for _, p := range parts {
		out = append(out, p.buf.logicalValues()...)
	}
	return parts[0].FromBackingData(Buffer[T]{values: out, shape: Shape{rows, cols}, order: RowMajor}), nil
}

func concatCols[T Elem, V any, D DType[T, V]](parts []*Array[T, V, D]) (*Array[T, V, D], error) {
	rows := parts[0].buf.shape[0]
	cols := 0
	for _, p := range parts {
		ok := false
		if cols, ok = overflow.Add(cols, p.buf.shape[1]); !ok {
			return nil, xerrors.Errorf("%w: backed: concat length overflows", ErrInvalid)
		}
	}
	if _, ok := overflow.Mul(rows, cols); !ok {
		return nil, xerrors.Errorf("%w: backed: concat size overflows", ErrInvalid)
	}
	out := make([]T, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for _, p := range parts {
			w := p.buf.shape[1]
			for j := 0; j < w; j++ {
				out = append(out, p.buf.At(r, j))
			}
		}
	}
	return parts[0].FromBackingData(Buffer[T]{values: out, shape: Shape{rows, cols}, order: RowMajor}), nil
}

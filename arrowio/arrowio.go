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

package arrowio

import (
	"fmt"
	"math"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"

	"github.com/backed-go/backed"
	"github.com/backed-go/backed/extensions"
)

// ToArrow converts a rank-1 array of one of the extension dtypes into the
// corresponding Arrow array: timestamps to timestamp[ns, UTC], floats to
// float64, categories to an int32-indexed string dictionary, UUIDs to
// canonical strings. Rank-2 arrays are rejected; ravel first.
func ToArrow(a backed.Interface) (arrow.Array, error) {
	if a.Rank() != 1 {
		return nil, fmt.Errorf("%w: arrowio: rank-%d array, ravel first",
			backed.ErrNotImplemented, a.Rank())
	}
	switch v := a.(type) {
	case *extensions.TimestampArray:
		return timestampToArrow(v), nil
	case *extensions.FloatArray:
		return floatToArrow(v), nil
	case *extensions.CategoryArray:
		return categoryToArrow(v)
	case *extensions.UUIDArray:
		return uuidToArrow(v), nil
	default:
		return nil, fmt.Errorf("%w: arrowio: no arrow conversion for dtype %s",
			backed.ErrNotImplemented, a.DTypeName())
	}
}

func timestampToArrow(a *extensions.TimestampArray) arrow.Array {
	bldr := array.NewTimestampBuilder(memory.DefaultAllocator,
		&arrow.TimestampType{Unit: arrow.Nanosecond, TimeZone: "UTC"})
	defer bldr.Release()

	raw := a.Buffer().Values()
	bldr.Reserve(len(raw))
	for _, ns := range raw {
		if ns == extensions.NaT {
			bldr.AppendNull()
		} else {
			bldr.Append(arrow.Timestamp(ns))
		}
	}
	return bldr.NewTimestampArray()
}

func floatToArrow(a *extensions.FloatArray) arrow.Array {
	bldr := array.NewFloat64Builder(memory.DefaultAllocator)
	defer bldr.Release()

	raw := a.Buffer().Values()
	bldr.Reserve(len(raw))
	for _, v := range raw {
		if math.IsNaN(v) {
			bldr.AppendNull()
		} else {
			bldr.Append(v)
		}
	}
	return bldr.NewFloat64Array()
}

func categoryToArrow(a *extensions.CategoryArray) (arrow.Array, error) {
	dt := &arrow.DictionaryType{
		IndexType: arrow.PrimitiveTypes.Int32,
		ValueType: arrow.BinaryTypes.String,
	}
	bldr := array.NewDictionaryBuilder(memory.DefaultAllocator, dt)
	defer bldr.Release()
	strs := bldr.(*array.BinaryDictionaryBuilder)

	// Seed the memo table with the whole category list so the dictionary
	// keeps unused categories and the original code order.
	cats := a.DType().Categories()
	catValues := stringsToArrow(cats)
	defer catValues.Release()
	if err := strs.InsertStringDictValues(catValues); err != nil {
		return nil, err
	}

	for _, code := range a.Buffer().Values() {
		if code < 0 {
			strs.AppendNull()
			continue
		}
		if err := strs.AppendString(cats[code]); err != nil {
			return nil, err
		}
	}
	return strs.NewArray().(*array.Dictionary), nil
}

func uuidToArrow(a *extensions.UUIDArray) arrow.Array {
	bldr := array.NewStringBuilder(memory.DefaultAllocator)
	defer bldr.Release()

	for _, raw := range a.Buffer().Values() {
		if raw == "" {
			bldr.AppendNull()
		} else {
			bldr.Append(raw)
		}
	}
	return bldr.NewStringArray()
}

func stringsToArrow(ss []string) *array.String {
	bldr := array.NewStringBuilder(memory.DefaultAllocator)
	defer bldr.Release()
	for _, s := range ss {
		bldr.Append(s)
	}
	return bldr.NewStringArray()
}

// FromArrowTimestamp builds a timestamp array from arr; nulls become
// missing. The unit must be nanoseconds. Time zone metadata is dropped,
// the instants are already UTC nanoseconds.
func FromArrowTimestamp(arr *array.Timestamp) (*extensions.TimestampArray, error) {
	dt := arr.DataType().(*arrow.TimestampType)
	if dt.Unit != arrow.Nanosecond {
		return nil, fmt.Errorf("%w: arrowio: timestamp unit %s, want ns", backed.ErrType, dt.Unit)
	}
	raw := make([]int64, arr.Len())
	for i := range raw {
		if arr.IsNull(i) {
			raw[i] = extensions.NaT
		} else {
			raw[i] = int64(arr.Value(i))
		}
	}
	return extensions.NewTimestampArray(raw, backed.Shape{arr.Len()})
}

// FromArrowFloat builds a float array from arr; nulls become missing, and
// so do valid NaN payloads, which FloatType cannot represent.
func FromArrowFloat(arr *array.Float64) *extensions.FloatArray {
	raw := make([]float64, arr.Len())
	for i := range raw {
		if arr.IsNull(i) {
			raw[i] = math.NaN()
		} else {
			raw[i] = arr.Value(i)
		}
	}
	return extensions.NewFloatVector(raw)
}

// FromArrowCategory builds a category array from a string dictionary. The
// dictionary values become the category list in dictionary order; nulls
// become missing.
func FromArrowCategory(arr *array.Dictionary) (*extensions.CategoryArray, error) {
	values, ok := arr.Dictionary().(*array.String)
	if !ok {
		return nil, fmt.Errorf("%w: arrowio: dictionary values are %s, want strings",
			backed.ErrType, arr.Dictionary().DataType())
	}
	cats := make([]string, values.Len())
	for i := range cats {
		cats[i] = values.Value(i)
	}
	dt, err := extensions.NewCategoryType(cats)
	if err != nil {
		return nil, err
	}
	codes := make([]int32, arr.Len())
	for i := range codes {
		if arr.IsNull(i) {
			codes[i] = -1
		} else {
			codes[i] = int32(arr.GetValueIndex(i))
		}
	}
	return extensions.NewCategoryCodes(dt, codes, backed.Shape{arr.Len()})
}

// FromArrowUUID builds a UUID array from canonical text; nulls and empty
// strings become missing, unparseable text is ErrType.
func FromArrowUUID(arr *array.String) (*extensions.UUIDArray, error) {
	raw := make([]string, arr.Len())
	for i := range raw {
		if !arr.IsNull(i) {
			raw[i] = arr.Value(i)
		}
	}
	return extensions.NewUUIDStrings(raw)
}

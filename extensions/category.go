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

package extensions

import (
	"fmt"
	"strings"

	"github.com/backed-go/backed"
)

// CategoryType encodes values drawn from a fixed category list as int32
// codes into that list, -1 for missing. The list is part of the dtype
// identity, so arrays concatenate and compare equal only when their lists
// match exactly. Element order follows the codes, which means SearchSorted
// expects arrays sorted in category-list order, not lexicographically.
type CategoryType struct {
	categories []string
	codes      map[string]int32
	name       string
}

// NewCategoryType builds a category dtype over the given list. Duplicate
// categories are ErrInvalid.
func NewCategoryType(categories []string) (*CategoryType, error) {
	codes := make(map[string]int32, len(categories))
	for i, c := range categories {
		if _, dup := codes[c]; dup {
			return nil, fmt.Errorf("%w: backed: duplicate category %q", backed.ErrInvalid, c)
		}
		codes[c] = int32(i)
	}
	return &CategoryType{
		categories: append([]string(nil), categories...),
		codes:      codes,
		name:       "category<" + strings.Join(categories, ",") + ">",
	}, nil
}

// CategoryArray is the array instantiation backed by CategoryType.
type CategoryArray = backed.Array[int32, string, *CategoryType]

// Name returns "category<...>" with the comma-joined category list.
func (dt *CategoryType) Name() string { return dt.name }

// Categories returns an independent copy of the category list.
func (dt *CategoryType) Categories() []string {
	return append([]string(nil), dt.categories...)
}

// Box converts a raw code into its category, missing into "".
func (dt *CategoryType) Box(raw int32) string {
	if raw < 0 {
		return ""
	}
	return dt.categories[raw]
}

// IsMissing reports whether raw is a missing code.
func (*CategoryType) IsMissing(raw int32) bool { return raw < 0 }

func (dt *CategoryType) coerce(v any) (int32, error) {
	switch t := v.(type) {
	case nil:
		return -1, nil
	case string:
		if code, ok := dt.codes[t]; ok {
			return code, nil
		}
		return 0, fmt.Errorf("%w: %q is not among the categories of %s", backed.ErrType, t, dt.name)
	default:
		return 0, fmt.Errorf("%w: cannot coerce %T into %s", backed.ErrType, v, dt.name)
	}
}

// ValidateScalar accepts nil and category strings; anything outside the
// list is ErrType.
func (dt *CategoryType) ValidateScalar(v any) (int32, error) { return dt.coerce(v) }

// ValidateFill accepts the same inputs as ValidateScalar.
func (dt *CategoryType) ValidateFill(v any) (int32, error) { return dt.coerce(v) }

// ValidateSet accepts the same inputs as ValidateScalar.
func (dt *CategoryType) ValidateSet(v any) (int32, error) { return dt.coerce(v) }

// ValidateSearch accepts category strings only; a missing probe has no
// position in code order.
func (dt *CategoryType) ValidateSearch(v any) (int32, error) {
	if v == nil {
		return 0, fmt.Errorf("%w: cannot search for a missing category", backed.ErrType)
	}
	return dt.coerce(v)
}

// NewCategoryVector encodes labels into a rank-1 category array. Labels
// outside the category list encode as missing.
func NewCategoryVector(dt *CategoryType, labels []string) *CategoryArray {
	raw := make([]int32, len(labels))
	for i, s := range labels {
		if code, ok := dt.codes[s]; ok {
			raw[i] = code
		} else {
			raw[i] = -1
		}
	}
	return backed.NewVector[int32, string](dt, raw)
}

// NewCategoryCodes wraps raw codes in an array of the given shape, taking
// ownership of the slice. Every code must be -1 or index the category list.
func NewCategoryCodes(dt *CategoryType, codes []int32, shape backed.Shape) (*CategoryArray, error) {
	for i, c := range codes {
		if c < -1 || int(c) >= len(dt.categories) {
			return nil, fmt.Errorf("%w: backed: code %d at position %d outside [-1, %d)",
				backed.ErrIndex, c, i, len(dt.categories))
		}
	}
	return backed.New[int32, string](dt, codes, shape)
}

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

import "golang.org/x/exp/constraints"

// Elem constrains the raw storage element types an array can be backed by:
// the fixed-width machine scalars and string kinds.
type Elem interface {
	constraints.Ordered
}

// DType describes one element type stored as raw T and presented as boxed
// V. It owns the missing-value encoding and every coercion the array level
// performs; the array itself never interprets raw elements beyond equality
// and ordering.
//
// The four Validate hooks accept a caller-supplied value and either return
// the raw element it coerces to or an error wrapping ErrType. Each hook
// guards one write path and may accept different inputs: a fill value is
// often more permissive than a set value. nil conventionally coerces to the
// missing marker where the dtype has one.
type DType[T Elem, V any] interface {
	// Name returns the dtype identity. Arrays compare equal and
	// concatenate only when their names agree; parameterized dtypes
	// include their parameters.
	Name() string
	// Box converts one raw element into its user-facing value.
	Box(raw T) V
	// IsMissing reports whether raw encodes this dtype's missing marker.
	IsMissing(raw T) bool
	// ValidateScalar coerces v for callers that insert single elements.
	ValidateScalar(v any) (T, error)
	// ValidateFill coerces v into the raw used to fill vacated or masked
	// positions by Take, Shift and FillMissing.
	ValidateFill(v any) (T, error)
	// ValidateSet coerces v into the raw written by Set, PutMask, Where
	// and the value form of FillMissing.
	ValidateSet(v any) (T, error)
	// ValidateSearch coerces v into the raw probe used by SearchSorted.
	ValidateSearch(v any) (T, error)
}

// ReduceFunc folds one raw lane into a single raw element. mask marks
// missing positions; skipNA asks the fold to ignore them. The fold decides
// what an empty or fully missing lane folds to, typically the dtype's
// missing marker.
type ReduceFunc[T Elem] func(values []T, mask []bool, skipNA bool) T

// Reducible is implemented by dtypes that support named reductions. The
// map keys are the names Reduce dispatches on; dtypes without the
// interface, and names absent from the map, yield ErrNotImplemented.
type Reducible[T Elem] interface {
	Reductions() map[string]ReduceFunc[T]
}

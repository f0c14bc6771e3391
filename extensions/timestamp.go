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
	"math"
	"time"

	"github.com/backed-go/backed"
)

// NaT is the raw missing marker of TimestampType, the one int64 that never
// encodes a real instant.
const NaT int64 = math.MinInt64

// TimestampType stores nanoseconds since the Unix epoch as int64 and boxes
// them as UTC time.Time values. NaT marks missing; it boxes to the zero
// time, and zero times coerce back to NaT on the way in.
type TimestampType struct{}

// NewTimestampType returns the nanosecond timestamp dtype.
func NewTimestampType() *TimestampType { return &TimestampType{} }

// TimestampArray is the array instantiation backed by TimestampType.
type TimestampArray = backed.Array[int64, time.Time, *TimestampType]

// Name returns "timestamp[ns]".
func (*TimestampType) Name() string { return "timestamp[ns]" }

// Box converts raw nanoseconds into a UTC time.Time, NaT into the zero time.
func (*TimestampType) Box(raw int64) time.Time {
	if raw == NaT {
		return time.Time{}
	}
	return time.Unix(0, raw).UTC()
}

// IsMissing reports whether raw is NaT.
func (*TimestampType) IsMissing(raw int64) bool { return raw == NaT }

func (*TimestampType) coerce(v any) (int64, error) {
	switch t := v.(type) {
	case nil:
		return NaT, nil
	case time.Time:
		if t.IsZero() {
			return NaT, nil
		}
		return t.UnixNano(), nil
	case int64:
		return t, nil
	case int:
		return int64(t), nil
	default:
		return 0, fmt.Errorf("%w: cannot coerce %T into timestamp[ns]", backed.ErrType, v)
	}
}

// ValidateScalar accepts nil, time.Time and integer nanoseconds.
func (dt *TimestampType) ValidateScalar(v any) (int64, error) { return dt.coerce(v) }

// ValidateFill accepts the same inputs as ValidateScalar.
func (dt *TimestampType) ValidateFill(v any) (int64, error) { return dt.coerce(v) }

// ValidateSet accepts the same inputs as ValidateScalar.
func (dt *TimestampType) ValidateSet(v any) (int64, error) { return dt.coerce(v) }

// ValidateSearch accepts the same inputs as ValidateScalar. A nil probe
// coerces to NaT and sorts before every real instant.
func (dt *TimestampType) ValidateSearch(v any) (int64, error) { return dt.coerce(v) }

// Reductions supports "min" and "max". An empty or fully missing lane, and
// any missing element when skipNA is false, folds to NaT.
func (*TimestampType) Reductions() map[string]backed.ReduceFunc[int64] {
	return map[string]backed.ReduceFunc[int64]{
		"min": minTimestamps,
		"max": maxTimestamps,
	}
}

func minTimestamps(values []int64, mask []bool, skipNA bool) int64 {
	best, seen := NaT, false
	for i, v := range values {
		if mask[i] {
			if !skipNA {
				return NaT
			}
			continue
		}
		if !seen || v < best {
			best, seen = v, true
		}
	}
	return best
}

func maxTimestamps(values []int64, mask []bool, skipNA bool) int64 {
	best, seen := NaT, false
	for i, v := range values {
		if mask[i] {
			if !skipNA {
				return NaT
			}
			continue
		}
		if !seen || v > best {
			best, seen = v, true
		}
	}
	return best
}

// NewTimestampVector builds a rank-1 timestamp array from times. Zero
// times become missing.
func NewTimestampVector(times []time.Time) *TimestampArray {
	raw := make([]int64, len(times))
	for i, t := range times {
		if t.IsZero() {
			raw[i] = NaT
		} else {
			raw[i] = t.UnixNano()
		}
	}
	return backed.NewVector[int64, time.Time](NewTimestampType(), raw)
}

// NewTimestampArray wraps raw nanosecond values in an array of the given
// shape, row-major, taking ownership of the slice.
func NewTimestampArray(raw []int64, shape backed.Shape) (*TimestampArray, error) {
	return backed.New[int64, time.Time](NewTimestampType(), raw, shape)
}

// FloorDay truncates every timestamp to midnight UTC. Missing positions
// stay missing, and the result keeps the receiver's shape and memory order.
func FloorDay(a *TimestampArray) (*TimestampArray, error) {
	return backed.FlatApply(a, func(flat *TimestampArray) (*TimestampArray, error) {
		raw := flat.Buffer().Values()
		const day = int64(24 * time.Hour)
		for i, ns := range raw {
			if ns == NaT {
				continue
			}
			q := ns / day
			if ns%day < 0 {
				q--
			}
			raw[i] = q * day
		}
		return flat.FromBackingData(backed.NewVectorBuffer(raw)), nil
	})
}

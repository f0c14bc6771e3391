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

package extensions_test

import (
	"math"
	"testing"

	"github.com/backed-go/backed"
	"github.com/backed-go/backed/extensions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloatIdentity(t *testing.T) {
	dt := extensions.NewFloatType()
	assert.Equal(t, "float64", dt.Name())
	assert.True(t, dt.IsMissing(math.NaN()))
	assert.False(t, dt.IsMissing(0))
	assert.Equal(t, 1.5, dt.Box(1.5))
}

func TestFloatCoerce(t *testing.T) {
	dt := extensions.NewFloatType()
	tests := []struct {
		name string
		in   any
		want float64
		ok   bool
	}{
		{"nil", nil, math.NaN(), true},
		{"float64", 2.5, 2.5, true},
		{"float32", float32(1.5), 1.5, true},
		{"int", 3, 3, true},
		{"int64", int64(4), 4, true},
		{"int32", int32(5), 5, true},
		{"string", "2.5", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dt.ValidateFill(tt.in)
			if !tt.ok {
				assert.ErrorIs(t, err, backed.ErrType)
				return
			}
			require.NoError(t, err)
			if math.IsNaN(tt.want) {
				assert.True(t, math.IsNaN(got))
			} else {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestFloatReduce(t *testing.T) {
	a := extensions.NewFloatVector([]float64{1, math.NaN(), 3})

	got, err := a.Reduce("sum", backed.DefaultReduceOptions())
	require.NoError(t, err)
	assert.Equal(t, 4.0, got)

	got, err = a.Reduce("mean", backed.DefaultReduceOptions())
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)

	got, err = a.Reduce("min", backed.DefaultReduceOptions())
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	got, err = a.Reduce("max", backed.DefaultReduceOptions())
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)
}

func TestFloatReducePoisoned(t *testing.T) {
	a := extensions.NewFloatVector([]float64{1, math.NaN(), 3})

	opts := backed.DefaultReduceOptions()
	opts.SkipNA = false
	got, err := a.Reduce("sum", opts)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got.(float64)))
}

func TestFloatReduceEmptyLane(t *testing.T) {
	a := extensions.NewFloatVector([]float64{math.NaN(), math.NaN()})

	got, err := a.Reduce("sum", backed.DefaultReduceOptions())
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	got, err = a.Reduce("mean", backed.DefaultReduceOptions())
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got.(float64)))

	got, err = a.Reduce("min", backed.DefaultReduceOptions())
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got.(float64)))
}

func TestFloatReduceColumns(t *testing.T) {
	a, err := extensions.NewFloatArray([]float64{1, 10, math.NaN(), 30}, backed.Shape{2, 2})
	require.NoError(t, err)

	opts := backed.DefaultReduceOptions()
	opts.Axis = 0
	got, err := a.Reduce("mean", opts)
	require.NoError(t, err)

	col := got.(*extensions.FloatArray)
	assert.Equal(t, []float64{1, 20}, col.Values())
}

func TestFloatUniqueCollapsesMissing(t *testing.T) {
	a := extensions.NewFloatVector([]float64{1, math.NaN(), 1, math.NaN(), 2})

	u := a.Unique()
	require.Equal(t, 3, u.Len())
	assert.Equal(t, 1.0, u.Value(0))
	assert.True(t, math.IsNaN(u.Value(1)))
	assert.Equal(t, 2.0, u.Value(2))
}

func TestFloatValueCounts(t *testing.T) {
	a := extensions.NewFloatVector([]float64{2, math.NaN(), 2, 7})

	vals, counts, err := a.ValueCounts(true)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 7}, vals.Values())
	assert.Equal(t, []int64{2, 1}, counts)

	vals, counts, err = a.ValueCounts(false)
	require.NoError(t, err)
	require.Equal(t, 3, vals.Len())
	assert.True(t, math.IsNaN(vals.Value(1)))
	assert.Equal(t, []int64{2, 1, 1}, counts)
}

func TestFloatEqualsTreatsMissingEqual(t *testing.T) {
	a := extensions.NewFloatVector([]float64{1, math.NaN()})
	b := extensions.NewFloatVector([]float64{1, math.NaN()})
	assert.True(t, a.Equals(b))

	c := extensions.NewFloatVector([]float64{1, 2})
	assert.False(t, a.Equals(c))
}

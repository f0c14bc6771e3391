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

package backed_test

import (
	"testing"

	"github.com/backed-go/backed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchSorted(t *testing.T) {
	a := newIntVector(10, 20, 20, 30)

	tests := []struct {
		name  string
		value any
		side  backed.SearchSide
		want  int
	}{
		{"left of run", 20, backed.SearchLeft, 1},
		{"right of run", 20, backed.SearchRight, 3},
		{"absent value", 25, backed.SearchLeft, 3},
		{"before everything", 5, backed.SearchLeft, 0},
		{"after everything", 99, backed.SearchRight, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := a.SearchSorted(tt.value, tt.side, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSearchSortedWithSorter(t *testing.T) {
	a := newIntVector(30, 10, 20)

	got, err := a.SearchSorted(20, backed.SearchLeft, []int{1, 2, 0})
	require.NoError(t, err)
	assert.Equal(t, 1, got, "position within the sorted view")
}

func TestSearchSortedErrors(t *testing.T) {
	a := newIntVector(10, 20)

	_, err := a.SearchSorted("x", backed.SearchLeft, nil)
	assert.ErrorIs(t, err, backed.ErrType)

	_, err = a.SearchSorted(10, backed.SearchLeft, []int{0})
	assert.ErrorIs(t, err, backed.ErrIndex, "sorter must cover the array")

	_, err = a.SearchSorted(10, backed.SearchSide(9), nil)
	assert.ErrorIs(t, err, backed.ErrInvalid)

	m := newIntMatrix(t, 1, 2, 1, 2)
	_, err = m.SearchSorted(1, backed.SearchLeft, nil)
	assert.ErrorIs(t, err, backed.ErrNotImplemented)
}

func TestShiftForward(t *testing.T) {
	a := newIntVector(1, 2, 3, 4)

	got, err := a.Shift(2, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 0, 1, 2}, got.Values())
}

func TestShiftBackwardAndBeyond(t *testing.T) {
	a := newIntVector(1, 2, 3)

	got, err := a.Shift(-1, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3, missingInt}, got.Values())

	got, err = a.Shift(5, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, got.CountMissing(), "shifting past the length fills everything")

	got, err = a.Shift(0, nil, 0)
	require.NoError(t, err)
	assert.True(t, a.Equals(got))
}

func TestShiftAxes(t *testing.T) {
	a := newIntMatrix(t, 2, 3, 1, 2, 3, 4, 5, 6)

	down, err := a.Shift(1, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 0, 0, 1, 2, 3}, down.Values())

	right, err := a.Shift(1, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 2, 0, 4, 5}, right.Values())
}

func TestShiftValidatesFill(t *testing.T) {
	a := newIntVector(1, 2)

	_, err := a.Shift(1, "bad", 0)
	assert.ErrorIs(t, err, backed.ErrType)
}

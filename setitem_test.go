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

func TestPutMask(t *testing.T) {
	a := newIntVector(1, 2, 3, 4)

	require.NoError(t, a.PutMask([]bool{true, false, false, true}, 0))
	assert.Equal(t, []int64{0, 2, 3, 0}, a.Values())
}

func TestPutMaskFullShape(t *testing.T) {
	a := newIntMatrix(t, 2, 2, 1, 2, 3, 4)

	// the mask addresses every element, flat row-major
	require.NoError(t, a.PutMask([]bool{false, true, true, false}, 9))
	assert.Equal(t, []int64{1, 9, 9, 4}, a.Values())

	err := a.PutMask([]bool{true, false}, 9)
	assert.ErrorIs(t, err, backed.ErrIndex)
}

func TestPutMaskColMajor(t *testing.T) {
	a := newIntMatrix(t, 2, 2, 1, 2, 3, 4)
	tr := a.Transpose() // logical [[1 3] [2 4]]

	require.NoError(t, tr.PutMask([]bool{false, true, false, true}, 0))
	assert.Equal(t, []int64{1, 0, 2, 0}, tr.Values())
}

func TestPutMaskValidates(t *testing.T) {
	a := newIntVector(1, 2)

	err := a.PutMask([]bool{true, true}, "bad")
	assert.ErrorIs(t, err, backed.ErrType)
	assert.Equal(t, []int64{1, 2}, a.Values())
}

func TestWhere(t *testing.T) {
	a := newIntVector(1, 2, 3, 4)

	got, err := a.Where([]bool{true, false, true, false}, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 0, 3, 0}, got.Values(), "kept where true, replaced where false")
	assert.Equal(t, []int64{1, 2, 3, 4}, a.Values(), "receiver untouched")
}

func TestWhereErrors(t *testing.T) {
	a := newIntVector(1, 2)

	_, err := a.Where([]bool{true}, 0)
	assert.ErrorIs(t, err, backed.ErrIndex)

	_, err = a.Where([]bool{true, false}, "bad")
	assert.ErrorIs(t, err, backed.ErrType)
}

func TestDelete(t *testing.T) {
	a := newIntVector(10, 20, 30, 40)

	got, err := a.Delete([]int{1, -1, 1}, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{10, 30}, got.Values(), "duplicates collapse, negatives resolve")

	_, err = a.Delete([]int{4}, 0)
	assert.ErrorIs(t, err, backed.ErrIndex)
}

func TestDeleteRowsAndColumns(t *testing.T) {
	a := newIntMatrix(t, 3, 2, 1, 2, 3, 4, 5, 6)

	rows, err := a.Delete([]int{1}, 0)
	require.NoError(t, err)
	assert.Equal(t, backed.Shape{2, 2}, rows.Shape())
	assert.Equal(t, []int64{1, 2, 5, 6}, rows.Values())

	cols, err := a.Delete([]int{0}, 1)
	require.NoError(t, err)
	assert.Equal(t, backed.Shape{3, 1}, cols.Shape())
	assert.Equal(t, []int64{2, 4, 6}, cols.Values())
}

func TestDeleteEverything(t *testing.T) {
	a := newIntVector(1, 2)

	got, err := a.Delete([]int{0, 1}, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
}

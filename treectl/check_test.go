/*
 * Copyright (c) 2024 Yunshan Networks
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package treectl

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	for _, size := range []int{1, 2, 3, 17, 100} {
		for _, kind := range Kinds {
			assert.NoError(t, Check(kind, size, 2000, int64(size)), "%s size %d", kind, size)
		}
	}
	assert.NoError(t, Check(KIND_ALL, 33, 1000, 42))
	assert.Error(t, Check("median", 10, 10, 1))
}

func TestNaive(t *testing.T) {
	model := newNaive(KIND_MIN, []int64{5, 2, 8})
	assert.EqualValues(t, 2, model.query(0, 2))
	model.update(0, 1, -3)
	assert.EqualValues(t, -1, model.query(0, 2))

	model = newNaive(KIND_ASSIGN, []int64{5, 2, 8})
	model.update(1, 2, 4)
	assert.EqualValues(t, 13, model.query(0, 2))
}

func TestCompareValues(t *testing.T) {
	tree, err := NewTree(KIND_SUM, []int64{1, 2, 3})
	require.NoError(t, err)
	model := newNaive(KIND_SUM, []int64{1, 2, 4})
	err = compareValues(KIND_SUM, tree, model)
	assert.Equal(t, Mismatch, errors.Cause(err))
}

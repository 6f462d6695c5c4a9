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
	"strings"

	"github.com/pkg/errors"

	"github.com/deepflowio/rangetree/segmenttree"
)

const (
	KIND_SUM    = "sum"
	KIND_MIN    = "min"
	KIND_MAX    = "max"
	KIND_ASSIGN = "assign"
)

var Kinds = []string{KIND_SUM, KIND_MIN, KIND_MAX, KIND_ASSIGN}

// NewTree builds the tree of kind over values. The CLI works on int64 only.
func NewTree(kind string, values []int64) (segmenttree.RangeTree[int64], error) {
	switch kind {
	case KIND_SUM:
		tree, err := segmenttree.NewSumTree(values)
		if err != nil {
			return nil, err
		}
		return tree, nil
	case KIND_MIN:
		tree, err := segmenttree.NewMinTree(values)
		if err != nil {
			return nil, err
		}
		return tree, nil
	case KIND_MAX:
		tree, err := segmenttree.NewMaxTree(values)
		if err != nil {
			return nil, err
		}
		return tree, nil
	case KIND_ASSIGN:
		tree, err := segmenttree.NewAssignTree(values)
		if err != nil {
			return nil, err
		}
		return tree, nil
	}
	return nil, errors.Errorf("unknown tree kind %q, should be one of %s", kind, strings.Join(Kinds, ", "))
}

// naive is the reference model, a plain slice updated element by element.
type naive struct {
	kind   string
	values []int64
}

func newNaive(kind string, values []int64) *naive {
	return &naive{kind, append([]int64(nil), values...)}
}

func (m *naive) update(l, r int, val int64) {
	for i := l; i <= r; i++ {
		if m.kind == KIND_ASSIGN {
			m.values[i] = val
		} else {
			m.values[i] += val
		}
	}
}

func (m *naive) set(pos int, val int64) {
	m.values[pos] = val
}

func (m *naive) query(l, r int) int64 {
	result := m.values[l]
	for _, v := range m.values[l+1 : r+1] {
		switch m.kind {
		case KIND_MIN:
			if v < result {
				result = v
			}
		case KIND_MAX:
			if v > result {
				result = v
			}
		default:
			result += v
		}
	}
	return result
}

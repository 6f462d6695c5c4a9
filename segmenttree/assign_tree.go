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

package segmenttree

import (
	"sync/atomic"

	"github.com/Workiva/go-datastructures/bitarray"
)

// AssignTree keeps range sums while whole ranges are overwritten with one value.
// A node holds at most one pending assignment, a newer one replaces it. Whether a
// node has one is tracked in a separate bit array since 0 is a valid value.
type AssignTree[T Number] struct {
	stat

	n       int
	value   []T
	assign  []T
	pending bitarray.BitArray
}

// NewAssignTree builds a tree over values, empty values give an empty tree and
// EmptyInput like New.
func NewAssignTree[T Number](values []T) (*AssignTree[T], error) {
	n := len(values)
	t := &AssignTree[T]{
		n:       n,
		value:   make([]T, 4*n),
		assign:  make([]T, 4*n),
		pending: bitarray.NewBitArray(uint64(4 * n)),
	}
	t.init(n)
	if n == 0 {
		log.Warningf("build tree failed: %s", EmptyInput)
		return t, EmptyInput
	}
	t.build(1, 0, n-1, values)
	return t, nil
}

func (t *AssignTree[T]) build(node, l, r int, values []T) {
	if l == r {
		t.value[node] = values[l]
		return
	}
	m := mid(l, r)
	t.build(node*2, l, m, values)
	t.build(node*2+1, m+1, r, values)
	t.recombine(node)
}

func (t *AssignTree[T]) recombine(node int) {
	t.value[node] = t.value[node*2] + t.value[node*2+1]
}

// Nodes stay below 4n, the capacity of pending. A bit array error means the tree
// was sized wrong, it is logged and the node is treated as having nothing pending.
func (t *AssignTree[T]) hasPending(node int) bool {
	found, err := t.pending.GetBit(uint64(node))
	if err != nil {
		log.Errorf("pending of node %d: %s", node, err)
		return false
	}
	return found
}

func (t *AssignTree[T]) setPending(node int, val T) {
	t.assign[node] = val
	if err := t.pending.SetBit(uint64(node)); err != nil {
		log.Errorf("set pending of node %d: %s", node, err)
	}
}

func (t *AssignTree[T]) propagate(node, l, r int) {
	if !t.hasPending(node) {
		return
	}
	val := t.assign[node]
	t.value[node] = val * T(r-l+1)
	if l != r {
		t.setPending(node*2, val)
		t.setPending(node*2+1, val)
	}
	if err := t.pending.ClearBit(uint64(node)); err != nil {
		log.Errorf("clear pending of node %d: %s", node, err)
	}
	atomic.AddUint64(&t.count().Push, 1)
}

func (t *AssignTree[T]) Size() int {
	return t.n
}

// Query returns the sum of [l, r], 0 and InvalidRange if the range is invalid.
func (t *AssignTree[T]) Query(l, r int) (T, error) {
	if !validRange(l, r, t.n) {
		return 0, t.reject(rangeError("query", l, r, t.n))
	}
	atomic.AddUint64(&t.count().Query, 1)
	return walk[T](assignQuery[T]{t}, 1, 0, t.n-1, l, r), nil
}

func (t *AssignTree[T]) Get(pos int) (T, error) {
	return t.Query(pos, pos)
}

// Assign sets every element of [l, r] to val.
func (t *AssignTree[T]) Assign(l, r int, val T) error {
	if !validRange(l, r, t.n) {
		return t.reject(rangeError("assign", l, r, t.n))
	}
	atomic.AddUint64(&t.count().Update, 1)
	walk[struct{}](assignUpdate[T]{t, val}, 1, 0, t.n-1, l, r)
	return nil
}

func (t *AssignTree[T]) Update(l, r int, val T) error {
	return t.Assign(l, r, val)
}

func (t *AssignTree[T]) Set(pos int, val T) error {
	if !validPosition(pos, t.n) {
		return t.reject(positionError("set", pos, t.n))
	}
	atomic.AddUint64(&t.count().Update, 1)
	walk[struct{}](assignUpdate[T]{t, val}, 1, 0, t.n-1, pos, pos)
	return nil
}

func (t *AssignTree[T]) Values() []T {
	values := make([]T, t.n)
	for i := range values {
		values[i], _ = t.Get(i)
	}
	return values
}

type assignQuery[T Number] struct {
	t *AssignTree[T]
}

func (q assignQuery[T]) push(node, l, r int) {
	q.t.propagate(node, l, r)
}

func (q assignQuery[T]) skip() T {
	return 0
}

func (q assignQuery[T]) cover(node, _, _ int) T {
	return q.t.value[node]
}

func (q assignQuery[T]) join(_ int, left, right T) T {
	return left + right
}

type assignUpdate[T Number] struct {
	t   *AssignTree[T]
	val T
}

func (u assignUpdate[T]) push(node, l, r int) {
	u.t.propagate(node, l, r)
}

func (u assignUpdate[T]) skip() struct{} {
	return struct{}{}
}

func (u assignUpdate[T]) cover(node, l, r int) struct{} {
	u.t.setPending(node, u.val)
	u.t.propagate(node, l, r)
	return struct{}{}
}

func (u assignUpdate[T]) join(node int, _, _ struct{}) struct{} {
	u.t.recombine(node)
	return struct{}{}
}

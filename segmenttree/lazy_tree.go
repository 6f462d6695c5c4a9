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
)

// LazyTree answers aggregate queries over [l, r] and adds a delta to every element
// of a range, both in O(log n). Added deltas stay pending on the highest covering
// nodes and are pushed down only when a walk passes through.
//
// LazyTree is not safe for concurrent use, queries mutate pending state as well.
// See Locked.
type LazyTree[T Number, A Aggregator[T]] struct {
	stat

	agg      A
	identity T
	n        int
	value    []T
	pending  []T
}

// New builds a tree over values. Empty values give an empty tree, Size 0 and every
// operation rejected, together with EmptyInput.
func New[T Number, A Aggregator[T]](values []T) (*LazyTree[T, A], error) {
	var agg A
	n := len(values)
	t := &LazyTree[T, A]{
		agg:      agg,
		identity: agg.Identity(),
		n:        n,
		value:    make([]T, 4*n),
		pending:  make([]T, 4*n),
	}
	t.init(n)
	if n == 0 {
		log.Warningf("build tree failed: %s", EmptyInput)
		return t, EmptyInput
	}
	t.build(1, 0, n-1, values)
	return t, nil
}

func NewSumTree[T Number](values []T) (*LazyTree[T, Sum[T]], error) {
	return New[T, Sum[T]](values)
}

func NewMinTree[T Number](values []T) (*LazyTree[T, Min[T]], error) {
	return New[T, Min[T]](values)
}

func NewMaxTree[T Number](values []T) (*LazyTree[T, Max[T]], error) {
	return New[T, Max[T]](values)
}

func (t *LazyTree[T, A]) build(node, l, r int, values []T) {
	if l == r {
		t.value[node] = values[l]
		return
	}
	m := mid(l, r)
	t.build(node*2, l, m, values)
	t.build(node*2+1, m+1, r, values)
	t.value[node] = t.agg.Combine(t.value[node*2], t.value[node*2+1])
}

func (t *LazyTree[T, A]) propagate(node, l, r int) {
	delta := t.pending[node]
	if delta == 0 {
		return
	}
	t.value[node] = t.agg.Apply(t.value[node], delta, r-l+1)
	if l != r {
		t.pending[node*2] += delta
		t.pending[node*2+1] += delta
	}
	t.pending[node] = 0
	atomic.AddUint64(&t.count().Push, 1)
}

func (t *LazyTree[T, A]) recombine(node int) {
	t.value[node] = t.agg.Combine(t.value[node*2], t.value[node*2+1])
}

func (t *LazyTree[T, A]) Size() int {
	return t.n
}

// Query returns the aggregate of [l, r]. An invalid range returns the
// aggregator's identity together with InvalidRange.
func (t *LazyTree[T, A]) Query(l, r int) (T, error) {
	if !validRange(l, r, t.n) {
		return t.identity, t.reject(rangeError("query", l, r, t.n))
	}
	atomic.AddUint64(&t.count().Query, 1)
	return walk[T](lazyQuery[T, A]{t}, 1, 0, t.n-1, l, r), nil
}

func (t *LazyTree[T, A]) Get(pos int) (T, error) {
	return t.Query(pos, pos)
}

// Add adds delta to every element of [l, r].
func (t *LazyTree[T, A]) Add(l, r int, delta T) error {
	if !validRange(l, r, t.n) {
		return t.reject(rangeError("add", l, r, t.n))
	}
	atomic.AddUint64(&t.count().Update, 1)
	walk[struct{}](lazyAdd[T, A]{t, delta}, 1, 0, t.n-1, l, r)
	return nil
}

// Update is Add, it makes LazyTree a RangeTree.
func (t *LazyTree[T, A]) Update(l, r int, delta T) error {
	return t.Add(l, r, delta)
}

// Set replaces the element at pos with val.
func (t *LazyTree[T, A]) Set(pos int, val T) error {
	if !validPosition(pos, t.n) {
		return t.reject(positionError("set", pos, t.n))
	}
	atomic.AddUint64(&t.count().Update, 1)
	walk[struct{}](lazySet[T, A]{t, val}, 1, 0, t.n-1, pos, pos)
	return nil
}

func (t *LazyTree[T, A]) Values() []T {
	values := make([]T, t.n)
	for i := range values {
		values[i], _ = t.Get(i)
	}
	return values
}

type lazyQuery[T Number, A Aggregator[T]] struct {
	t *LazyTree[T, A]
}

func (q lazyQuery[T, A]) push(node, l, r int) {
	q.t.propagate(node, l, r)
}

func (q lazyQuery[T, A]) skip() T {
	return q.t.identity
}

func (q lazyQuery[T, A]) cover(node, _, _ int) T {
	return q.t.value[node]
}

func (q lazyQuery[T, A]) join(_ int, left, right T) T {
	return q.t.agg.Combine(left, right)
}

type lazyAdd[T Number, A Aggregator[T]] struct {
	t     *LazyTree[T, A]
	delta T
}

func (u lazyAdd[T, A]) push(node, l, r int) {
	u.t.propagate(node, l, r)
}

func (u lazyAdd[T, A]) skip() struct{} {
	return struct{}{}
}

// 完全覆盖的节点立即应用自身的值，子节点保持延迟
func (u lazyAdd[T, A]) cover(node, l, r int) struct{} {
	u.t.pending[node] += u.delta
	u.t.propagate(node, l, r)
	return struct{}{}
}

func (u lazyAdd[T, A]) join(node int, _, _ struct{}) struct{} {
	u.t.recombine(node)
	return struct{}{}
}

// lazySet walks a single position. Both children of every node on the path are
// pushed by the walk before join recombines them.
type lazySet[T Number, A Aggregator[T]] struct {
	t   *LazyTree[T, A]
	val T
}

func (u lazySet[T, A]) push(node, l, r int) {
	u.t.propagate(node, l, r)
}

func (u lazySet[T, A]) skip() struct{} {
	return struct{}{}
}

func (u lazySet[T, A]) cover(node, _, _ int) struct{} {
	u.t.value[node] = u.val
	return struct{}{}
}

func (u lazySet[T, A]) join(node int, _, _ struct{}) struct{} {
	u.t.recombine(node)
	return struct{}{}
}

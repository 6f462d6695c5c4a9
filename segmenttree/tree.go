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

/**
 * 区间查询树：LazyTree 支持区间加，AssignTree 支持区间赋值
 */
package segmenttree

import (
	"sync"
)

// RangeTree is what LazyTree, AssignTree and Locked have in common. Update adds
// for LazyTree and assigns for AssignTree.
type RangeTree[T Number] interface {
	Size() int
	Query(l, r int) (T, error)
	Get(pos int) (T, error)
	Set(pos int, val T) error
	Update(l, r int, val T) error
	Values() []T
}

var (
	_ RangeTree[int]     = (*LazyTree[int, Sum[int]])(nil)
	_ RangeTree[float64] = (*LazyTree[float64, Min[float64]])(nil)
	_ RangeTree[int64]   = (*AssignTree[int64])(nil)
	_ RangeTree[int]     = (*Locked[int])(nil)
)

// Locked serializes every call on tree with one mutex. Lazy state is written by
// queries too, so there is no read lock.
type Locked[T Number] struct {
	mu   sync.Mutex
	tree RangeTree[T]
}

func NewLocked[T Number](tree RangeTree[T]) *Locked[T] {
	return &Locked[T]{tree: tree}
}

func (t *Locked[T]) Size() int {
	// size is fixed after construction
	return t.tree.Size()
}

func (t *Locked[T]) Query(l, r int) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tree.Query(l, r)
}

func (t *Locked[T]) Get(pos int) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tree.Get(pos)
}

func (t *Locked[T]) Set(pos int, val T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tree.Set(pos, val)
}

func (t *Locked[T]) Update(l, r int, val T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tree.Update(l, r, val)
}

func (t *Locked[T]) Values() []T {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tree.Values()
}

// GetCounter forwards to the wrapped tree, nil if it keeps no counter.
func (t *Locked[T]) GetCounter() interface{} {
	if c, ok := t.tree.(interface{ GetCounter() interface{} }); ok {
		return c.GetCounter()
	}
	return nil
}

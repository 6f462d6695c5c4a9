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

// Aggregator folds children into a parent and applies an additive delta owed to a
// node covering length leaves. Combine must be associative.
type Aggregator[T Number] interface {
	Combine(a, b T) T
	Apply(value, delta T, length int) T
	// Identity is the neutral element of Combine, returned by rejected queries.
	Identity() T
}

type Sum[T Number] struct{}

func (Sum[T]) Combine(a, b T) T {
	return a + b
}

func (Sum[T]) Apply(value, delta T, length int) T {
	return value + delta*T(length)
}

func (Sum[T]) Identity() T {
	return 0
}

// Min and Max shift every leaf by the same delta, so the aggregate moves by delta
// regardless of length.
type Min[T Number] struct{}

func (Min[T]) Combine(a, b T) T {
	if a < b {
		return a
	}
	return b
}

func (Min[T]) Apply(value, delta T, _ int) T {
	return value + delta
}

func (Min[T]) Identity() T {
	return PositiveInfinity[T]()
}

type Max[T Number] struct{}

func (Max[T]) Combine(a, b T) T {
	if a > b {
		return a
	}
	return b
}

func (Max[T]) Apply(value, delta T, _ int) T {
	return value + delta
}

func (Max[T]) Identity() T {
	return NegativeInfinity[T]()
}

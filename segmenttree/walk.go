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

// rangeOp is one operation walked over the implicit tree. Node i covers [l, r],
// its children are 2i and 2i+1 and split at mid(l, r). Ranges are derived from the
// recursion, never stored.
type rangeOp[R any] interface {
	// push discharges the pending work owed to node, it runs before anything
	// reads or writes the node.
	push(node, l, r int)
	// skip is the result of a node disjoint from the walked range.
	skip() R
	// cover handles a node fully inside the walked range.
	cover(node, l, r int) R
	// join runs after both children of a partially covered node were walked.
	join(node int, left, right R) R
}

func mid(l, r int) int {
	return l + (r-l)/2
}

func walk[R any, O rangeOp[R]](op O, node, l, r, ql, qr int) R {
	op.push(node, l, r)
	if qr < l || r < ql {
		return op.skip()
	}
	if ql <= l && r <= qr {
		return op.cover(node, l, r)
	}
	m := mid(l, r)
	left := walk[R](op, node*2, l, m, ql, qr)
	right := walk[R](op, node*2+1, m+1, r, ql, qr)
	return op.join(node, left, right)
}

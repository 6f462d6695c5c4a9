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

type Counter struct {
	Query  uint64 `statsd:"query,count"`
	Update uint64 `statsd:"update,count"`
	Push   uint64 `statsd:"push,count"`
	Reject uint64 `statsd:"reject,count"`
	Size   uint64 `statsd:"size,gauge"`
}

// stat is embedded by both engines, the counter is swapped out on every read
// so that a stats collector running in another goroutine sees per-interval deltas.
type stat struct {
	counter atomic.Pointer[Counter]
	size    uint64
}

func (s *stat) init(size int) {
	s.size = uint64(size)
	s.counter.Store(&Counter{})
}

func (s *stat) count() *Counter {
	return s.counter.Load()
}

func (s *stat) GetCounter() interface{} {
	counter := s.counter.Swap(&Counter{})
	counter.Size = s.size
	return counter
}

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

package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sent struct {
	module string
	tags   OptionStatTags
	items  []StatItem
}

type recordSender struct {
	sent   []sent
	closed bool
}

func (s *recordSender) Send(module string, tags OptionStatTags, items []StatItem) {
	s.sent = append(s.sent, sent{module, tags, items})
}

func (s *recordSender) Close() error {
	s.closed = true
	return nil
}

type treeCounter struct {
	Query   uint64 `statsd:"query,count"`
	Size    uint64 `statsd:"size,gauge"`
	ignored uint64 `statsd:"ignored"`
	Plain   uint64
}

type countable struct {
	counter *treeCounter
}

func (c *countable) GetCounter() interface{} {
	var counter *treeCounter
	counter, c.counter = c.counter, &treeCounter{}
	return counter
}

func TestToStatItems(t *testing.T) {
	items := toStatItems(&treeCounter{Query: 3, Size: 8, ignored: 1, Plain: 2})
	assert.Equal(t, []StatItem{
		{"query", COUNT_TYPE, uint64(3)},
		{"size", GAUGE_TYPE, uint64(8)},
	}, items)

	raw := []StatItem{{"duration", COUNT_TYPE, 1}}
	assert.Equal(t, raw, toStatItems(raw))
	assert.Nil(t, toStatItems(nil))
	assert.Nil(t, toStatItems((*treeCounter)(nil)))
	assert.Nil(t, toStatItems(42))
}

func TestCollect(t *testing.T) {
	r := newRegistry()
	c := &countable{&treeCounter{Query: 5}}
	require.NoError(t, r.register("tree", c, OptionStatTags{"kind": "sum"}, OptionInterval(time.Minute)))
	assert.Error(t, r.register("tree", c))
	assert.Error(t, r.register("other", &countable{}, "bogus"))

	sender := &recordSender{}
	r.sender = sender
	now := time.Now()
	r.collect(now)
	r.collect(now.Add(time.Second))
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "tree", sender.sent[0].module)
	assert.Equal(t, OptionStatTags{"kind": "sum"}, sender.sent[0].tags)
	assert.Equal(t, StatItem{"query", COUNT_TYPE, uint64(5)}, sender.sent[0].items[0])

	r.collect(now.Add(time.Minute))
	require.Len(t, sender.sent, 2)
	assert.Equal(t, uint64(0), sender.sent[1].items[0].Value)

	r.deregister(c)
	r.collect(now.Add(time.Hour))
	assert.Len(t, sender.sent, 2)
}

func TestMinInterval(t *testing.T) {
	r := newRegistry()
	c := &countable{&treeCounter{}}
	require.NoError(t, r.register("tree", c, OptionInterval(time.Millisecond)))
	assert.Equal(t, MinInterval, r.entries[c].interval)
}

func TestOptionStatTagsString(t *testing.T) {
	assert.Equal(t, "{}", OptionStatTags{}.String())
	assert.Equal(t, "{a: 1, b: 2}", OptionStatTags{"b": "2", "a": "1"}.String())
}

func TestGcMonitor(t *testing.T) {
	items := toStatItems((&GcMonitor{}).GetCounter())
	require.Len(t, items, 3)
	assert.Equal(t, "heap-alloc", items[2].Name)
	assert.Equal(t, GAUGE_TYPE, items[2].Type)
}

func TestRegisterRejects(t *testing.T) {
	r := newRegistry()
	c := &countable{&treeCounter{}}
	assert.Error(t, r.register("tree", c, "kind=sum"))
	assert.Empty(t, r.entries)

	require.NoError(t, r.register("tree", c, OptionStatTags{"kind": "sum"}))
	assert.Error(t, r.register("tree", c))
	assert.Len(t, r.entries, 1)
}

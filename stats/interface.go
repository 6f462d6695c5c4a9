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
	"bytes"
	"sort"
	"time"
)

type StatType uint8

const (
	COUNT_TYPE StatType = iota
	GAUGE_TYPE
)

var (
	MinInterval = time.Second
)

type Option = interface{}

type OptionStatTags map[string]string
type OptionInterval time.Duration

func (t OptionStatTags) String() string {
	if len(t) == 0 {
		return "{}"
	}
	keys := make([]string, 0, len(t))
	for key := range t {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	var strBuf bytes.Buffer
	strBuf.WriteString("{")
	for _, key := range keys {
		strBuf.WriteString(key + ": " + t[key] + ", ")
	}
	strBuf.Truncate(strBuf.Len() - 2)
	return strBuf.String() + "}"
}

type StatItem struct {
	Name  string
	Type  StatType
	Value interface{}
}

type Countable interface {
	// needs to be thread-safe, clear is required after read
	// accept *struct with `statsd:"name,count|gauge"` fields or []StatItem
	GetCounter() interface{}
}

// Sender ships collected items, module and tags identify the source.
type Sender interface {
	Send(module string, tags OptionStatTags, items []StatItem)
	Close() error
}

// 限定stats的最少interval，也就是不论注册Countable时
// 指定的Interval是多少，只要比此值低就优先使用此值
func SetMinInterval(interval time.Duration) {
	MinInterval = interval
}

func RegisterCountable(module string, countable Countable, opts ...Option) error {
	return defaultRegistry.register(module, countable, opts...)
}

func DeregisterCountable(countable Countable) {
	defaultRegistry.deregister(countable)
}

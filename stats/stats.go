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
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

var log = logging.MustGetLogger("stats")

type entry struct {
	module    string
	countable Countable
	tags      OptionStatTags
	interval  time.Duration
	last      time.Time
}

type registry struct {
	sync.Mutex
	entries map[Countable]*entry
	sender  Sender
	stop    chan struct{}
	done    sync.WaitGroup
}

var defaultRegistry = newRegistry()

func newRegistry() *registry {
	return &registry{entries: make(map[Countable]*entry)}
}

func (r *registry) register(module string, countable Countable, opts ...Option) error {
	e := &entry{module: module, countable: countable, tags: OptionStatTags{}, interval: MinInterval}
	for _, opt := range opts {
		switch o := opt.(type) {
		case OptionStatTags:
			for k, v := range o {
				e.tags[k] = v
			}
		case OptionInterval:
			e.interval = time.Duration(o)
		default:
			return errors.Errorf("unknown stats option %T", opt)
		}
	}
	if e.interval < MinInterval {
		e.interval = MinInterval
	}

	r.Lock()
	defer r.Unlock()
	if _, found := r.entries[countable]; found {
		return errors.Errorf("countable of module %s %s already registered", module, e.tags)
	}
	r.entries[countable] = e
	log.Debugf("register countable %s %s interval %v", module, e.tags, e.interval)
	return nil
}

func (r *registry) deregister(countable Countable) {
	r.Lock()
	delete(r.entries, countable)
	r.Unlock()
}

// collect reads every countable whose interval has elapsed at now.
func (r *registry) collect(now time.Time) {
	r.Lock()
	defer r.Unlock()
	if r.sender == nil {
		return
	}
	for _, e := range r.entries {
		if now.Sub(e.last) < e.interval {
			continue
		}
		e.last = now
		items := toStatItems(e.countable.GetCounter())
		if len(items) == 0 {
			continue
		}
		r.sender.Send(e.module, e.tags, items)
	}
}

func (r *registry) start(sender Sender) {
	r.Lock()
	if r.stop != nil {
		r.Unlock()
		r.halt()
		r.Lock()
	}
	r.sender = sender
	r.stop = make(chan struct{})
	stop := r.stop
	r.Unlock()

	r.done.Add(1)
	go func() {
		defer r.done.Done()
		ticker := time.NewTicker(MinInterval)
		defer ticker.Stop()
		for {
			select {
			case now := <-ticker.C:
				r.collect(now)
			case <-stop:
				return
			}
		}
	}()
}

func (r *registry) halt() {
	r.Lock()
	stop, sender := r.stop, r.sender
	r.stop, r.sender = nil, nil
	r.Unlock()
	if stop == nil {
		return
	}
	close(stop)
	r.done.Wait()
	if err := sender.Close(); err != nil {
		log.Warningf("close stats sender: %s", err)
	}
}

// toStatItems accepts []StatItem as is and reads struct fields tagged with
// `statsd:"name"` or `statsd:"name,gauge"`, count being the default.
func toStatItems(counter interface{}) []StatItem {
	switch c := counter.(type) {
	case nil:
		return nil
	case []StatItem:
		return c
	}
	v := reflect.ValueOf(counter)
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		log.Warningf("unsupported counter type %T", counter)
		return nil
	}
	items := make([]StatItem, 0, v.NumField())
	for i := 0; i < v.NumField(); i++ {
		field := v.Type().Field(i)
		tag := field.Tag.Get("statsd")
		if tag == "" || tag == "-" || !field.IsExported() {
			continue
		}
		name, kind, _ := strings.Cut(tag, ",")
		statType := COUNT_TYPE
		if kind == "gauge" {
			statType = GAUGE_TYPE
		}
		items = append(items, StatItem{name, statType, v.Field(i).Interface()})
	}
	return items
}

// Start sends every registered countable to a statsd daemon at address until Stop.
func Start(address, prefix string) error {
	sender, err := NewStatsdSender(address, prefix)
	if err != nil {
		return err
	}
	StartWithSender(sender)
	return nil
}

func StartWithSender(sender Sender) {
	defaultRegistry.start(sender)
	log.Infof("stats started, min interval %v", MinInterval)
}

func Stop() {
	defaultRegistry.halt()
}

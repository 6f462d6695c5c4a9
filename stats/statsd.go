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
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/alexcesaro/statsd.v2"
)

type statsdSender struct {
	client *statsd.Client
}

func NewStatsdSender(address, prefix string) (Sender, error) {
	client, err := statsd.New(
		statsd.Address(address),
		statsd.Prefix(prefix),
		statsd.TagsFormat(statsd.InfluxDB),
		statsd.ErrorHandler(func(err error) {
			log.Warningf("statsd %s: %s", address, err)
		}),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "statsd client %s", address)
	}
	return &statsdSender{client}, nil
}

func (s *statsdSender) Send(module string, tags OptionStatTags, items []StatItem) {
	keys := make([]string, 0, len(tags))
	for key := range tags {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	tagList := make([]string, 0, 2*len(keys))
	for _, key := range keys {
		tagList = append(tagList, key, tags[key])
	}

	client := s.client.Clone(statsd.Prefix(module), statsd.Tags(tagList...))
	for _, item := range items {
		switch item.Type {
		case COUNT_TYPE:
			client.Count(item.Name, item.Value)
		case GAUGE_TYPE:
			client.Gauge(item.Name, item.Value)
		}
	}
}

func (s *statsdSender) Close() error {
	s.client.Close()
	return nil
}

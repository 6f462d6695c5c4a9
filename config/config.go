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

package config

import (
	"io/ioutil"
	"os"
	"strings"
	"time"

	"github.com/docker/go-units"
	"github.com/op/go-logging"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

var log = logging.MustGetLogger("config")

const (
	DefaultStatsdAddress = "127.0.0.1:8125"
	DefaultStatsdPrefix  = "rangetree"
	DefaultBenchSize     = "1M"
)

// Config of rangetree-ctl. An empty LogFile logs to the console only.
type Config struct {
	LogFile  string       `yaml:"log-file"`
	LogLevel string       `yaml:"log-level"`
	Statsd   StatsdConfig `yaml:"statsd"`
	Bench    BenchConfig  `yaml:"bench"`
}

type StatsdConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Address  string        `yaml:"address"`
	Prefix   string        `yaml:"prefix"`
	Interval time.Duration `yaml:"interval"`
}

type BenchConfig struct {
	Size       string `yaml:"size"`
	Operations int    `yaml:"operations"`
	Seed       int64  `yaml:"seed"`

	elements int
}

// Elements is Size parsed, valid after Validate.
func (b *BenchConfig) Elements() int {
	return b.elements
}

// ParseSize accepts plain numbers and human sizes like 64k or 1M, both
// decimal (k = 1000) and binary (Ki = 1024).
func ParseSize(size string) (int, error) {
	size = strings.TrimSpace(size)
	var n int64
	var err error
	if strings.Contains(strings.ToLower(size), "i") {
		n, err = units.RAMInBytes(size)
	} else {
		n, err = units.FromHumanSize(size)
	}
	if err != nil {
		return 0, errors.Wrapf(err, "size %q", size)
	}
	if n <= 0 {
		return 0, errors.Errorf("size %q must be positive", size)
	}
	return int(n), nil
}

func (c *Config) Validate() error {
	level := strings.ToLower(c.LogLevel)
	c.LogLevel = "info"
	for _, l := range []string{"error", "warning", "info", "debug"} {
		if level == l {
			c.LogLevel = l
		}
	}
	if level == "warn" {
		c.LogLevel = "warning"
	}

	if c.Statsd.Address == "" {
		c.Statsd.Address = DefaultStatsdAddress
	}
	if c.Statsd.Prefix == "" {
		c.Statsd.Prefix = DefaultStatsdPrefix
	}
	if c.Statsd.Interval <= 0 {
		c.Statsd.Interval = 10 * time.Second
	}

	if c.Bench.Size == "" {
		c.Bench.Size = DefaultBenchSize
	}
	elements, err := ParseSize(c.Bench.Size)
	if err != nil {
		return errors.Wrap(err, "bench")
	}
	c.Bench.elements = elements
	if c.Bench.Operations <= 0 {
		c.Bench.Operations = 100000
	}
	if c.Bench.Seed == 0 {
		c.Bench.Seed = time.Now().UnixNano()
	}
	return nil
}

func Default() *Config {
	c := &Config{}
	c.Validate()
	return c
}

// Load reads path, a missing file leaves every option at its default.
func Load(path string) (*Config, error) {
	c := &Config{}
	configBytes, err := ioutil.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
		log.Infof("config %s not found, use defaults", path)
	} else if err := yaml.Unmarshal(configBytes, c); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}

	if err := c.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return c, nil
}

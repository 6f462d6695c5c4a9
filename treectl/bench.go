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

package treectl

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/docker/go-units"
	"github.com/spf13/cobra"

	"github.com/deepflowio/rangetree/config"
	"github.com/deepflowio/rangetree/segmenttree"
	"github.com/deepflowio/rangetree/stats"
)

var countUnits = []string{"", "k", "M", "G", "T"}

func humanCount(n float64) string {
	return units.CustomSize("%.4g%s", n, 1000.0, countUnits)
}

type BenchResult struct {
	Kind       string
	Elements   int
	Operations int
	Build      time.Duration
	Run        time.Duration
}

func (r *BenchResult) String() string {
	rate := float64(r.Operations) / r.Run.Seconds()
	return fmt.Sprintf("%s: %s elements built in %v, %s operations in %v, %s op/s",
		r.Kind, humanCount(float64(r.Elements)), r.Build, humanCount(float64(r.Operations)), r.Run, humanCount(rate))
}

// Bench times random updates, sets and queries, in equal parts, on a tree of kind.
func Bench(kind string, size, operations int, seed int64, statsd *config.StatsdConfig) (*BenchResult, error) {
	rnd := rand.New(rand.NewSource(seed))
	values := randomValues(rnd, size)

	start := time.Now()
	tree, err := NewTree(kind, values)
	if err != nil {
		return nil, err
	}
	result := &BenchResult{Kind: kind, Elements: size, Operations: operations, Build: time.Since(start)}

	if statsd != nil && statsd.Enabled {
		stop, err := startStats(kind, tree, statsd)
		if err != nil {
			return nil, err
		}
		defer stop()
	}

	start = time.Now()
	for i := 0; i < operations; i++ {
		l, r := randomRange(rnd, size)
		switch i % 3 {
		case 0:
			tree.Update(l, r, rnd.Int63n(201)-100)
		case 1:
			tree.Set(l, rnd.Int63n(2001)-1000)
		default:
			tree.Query(l, r)
		}
	}
	result.Run = time.Since(start)
	return result, nil
}

// startStats reports the tree counters and GC to statsd, the returned func undoes it.
func startStats(kind string, tree segmenttree.RangeTree[int64], c *config.StatsdConfig) (func(), error) {
	if err := stats.Start(c.Address, c.Prefix); err != nil {
		return nil, err
	}
	deregister, err := registerStats(kind, tree, c.Interval)
	if err != nil {
		stats.Stop()
		return nil, err
	}
	return func() {
		deregister()
		stats.Stop()
	}, nil
}

// registerStats registers the GC monitor and, when it keeps counters, the tree
// tagged with its kind.
func registerStats(kind string, tree segmenttree.RangeTree[int64], interval time.Duration) (func(), error) {
	gc, err := stats.RegisterGcMonitor()
	if err != nil {
		return nil, err
	}
	countable, ok := tree.(stats.Countable)
	if !ok {
		return func() { stats.DeregisterCountable(gc) }, nil
	}
	err = stats.RegisterCountable("segmenttree", countable,
		stats.OptionStatTags{"kind": kind}, stats.OptionInterval(interval))
	if err != nil {
		stats.DeregisterCountable(gc)
		return nil, err
	}
	return func() {
		stats.DeregisterCountable(countable)
		stats.DeregisterCountable(gc)
	}, nil
}

func BenchCommand() *cobra.Command {
	var kind, size string
	var operations int
	var seed int64
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time random operations on a large tree",
		Long:  "Time random operations on a large tree. Options not given on the command line come from the bench section of the config file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			elements := Config.Bench.Elements()
			if cmd.Flags().Changed("size") {
				var err error
				if elements, err = config.ParseSize(size); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("operations") {
				operations = Config.Bench.Operations
			}
			if !cmd.Flags().Changed("seed") {
				seed = Config.Bench.Seed
			}
			return runBench(cmd.OutOrStdout(), kind, elements, operations, seed)
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", KIND_SUM, "tree kind: "+strings.Join(Kinds, ", "))
	cmd.Flags().StringVar(&size, "size", config.DefaultBenchSize, "elements in the tree, e.g. 64k or 1Mi")
	cmd.Flags().IntVar(&operations, "operations", 100000, "random operations to run")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed")
	return cmd
}

func runBench(w io.Writer, kind string, size, operations int, seed int64) error {
	l := prefixLogger("bench")
	l.Infof("kind %s size %d operations %d seed %d, statsd enabled: %v", kind, size, operations, seed, Config.Statsd.Enabled)
	result, err := Bench(kind, size, operations, seed, &Config.Statsd)
	if err != nil {
		l.Error(err)
		return err
	}
	fmt.Fprintln(w, result)
	return nil
}

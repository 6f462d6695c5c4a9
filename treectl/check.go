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

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/deepflowio/rangetree/config"
	"github.com/deepflowio/rangetree/segmenttree"
)

const KIND_ALL = "all"

var Mismatch = errors.New("tree and model disagree")

func randomValues(rnd *rand.Rand, size int) []int64 {
	values := make([]int64, size)
	for i := range values {
		values[i] = rnd.Int63n(2001) - 1000
	}
	return values
}

func randomRange(rnd *rand.Rand, size int) (int, int) {
	l := rnd.Intn(size)
	return l, l + rnd.Intn(size-l)
}

// checkBoundary makes sure out of range operations are rejected and change nothing.
func checkBoundary(kind string, tree segmenttree.RangeTree[int64], model *naive) error {
	n := tree.Size()
	if _, err := tree.Query(-1, 0); errors.Cause(err) != segmenttree.InvalidRange {
		return errors.Wrapf(Mismatch, "%s query [-1, 0] returned %v", kind, err)
	}
	if _, err := tree.Query(0, n); errors.Cause(err) != segmenttree.InvalidRange {
		return errors.Wrapf(Mismatch, "%s query [0, %d] returned %v", kind, n, err)
	}
	if err := tree.Update(0, n, 1); errors.Cause(err) != segmenttree.InvalidRange {
		return errors.Wrapf(Mismatch, "%s update [0, %d] returned %v", kind, n, err)
	}
	if n > 1 {
		if err := tree.Update(n-1, 0, 1); errors.Cause(err) != segmenttree.InvalidRange {
			return errors.Wrapf(Mismatch, "%s update [%d, 0] returned %v", kind, n-1, err)
		}
	}
	if err := tree.Set(n, 1); errors.Cause(err) != segmenttree.OutOfRange {
		return errors.Wrapf(Mismatch, "%s set %d returned %v", kind, n, err)
	}
	return compareValues(kind, tree, model)
}

func compareValues(kind string, tree segmenttree.RangeTree[int64], model *naive) error {
	for i, v := range tree.Values() {
		if v != model.values[i] {
			return errors.Wrapf(Mismatch, "%s element %d is %d, expected %d", kind, i, v, model.values[i])
		}
	}
	return nil
}

// Check runs operations random updates, sets and queries against a tree of kind
// and a naive slice at the same time, failing on the first difference.
func Check(kind string, size, operations int, seed int64) error {
	if kind == KIND_ALL {
		for _, k := range Kinds {
			if err := Check(k, size, operations, seed); err != nil {
				return err
			}
		}
		return nil
	}

	rnd := rand.New(rand.NewSource(seed))
	values := randomValues(rnd, size)
	tree, err := NewTree(kind, values)
	if err != nil {
		return err
	}
	model := newNaive(kind, values)
	if err := checkBoundary(kind, tree, model); err != nil {
		return err
	}

	for i := 0; i < operations; i++ {
		l, r := randomRange(rnd, size)
		switch rnd.Intn(3) {
		case 0:
			val := rnd.Int63n(201) - 100
			if err := tree.Update(l, r, val); err != nil {
				return err
			}
			model.update(l, r, val)
		case 1:
			val := rnd.Int63n(2001) - 1000
			if err := tree.Set(l, val); err != nil {
				return err
			}
			model.set(l, val)
		default:
			result, err := tree.Query(l, r)
			if err != nil {
				return err
			}
			if expected := model.query(l, r); result != expected {
				return errors.Wrapf(Mismatch, "%s query [%d, %d] #%d is %d, expected %d", kind, l, r, i, result, expected)
			}
		}
	}
	return compareValues(kind, tree, model)
}

func CheckCommand() *cobra.Command {
	var kind, size string
	var operations int
	var seed int64
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Compare trees against a naive slice with random operations",
		RunE: func(cmd *cobra.Command, args []string) error {
			elements, err := config.ParseSize(size)
			if err != nil {
				return err
			}
			if seed == 0 {
				seed = Config.Bench.Seed
			}
			return runCheck(cmd.OutOrStdout(), kind, elements, operations, seed)
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", KIND_ALL, "tree kind: "+strings.Join(append(Kinds, KIND_ALL), ", "))
	cmd.Flags().StringVar(&size, "size", "1k", "elements in each tree")
	cmd.Flags().IntVar(&operations, "operations", 10000, "random operations on each tree")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed, 0 takes bench.seed from the config")
	return cmd
}

func runCheck(w io.Writer, kind string, size, operations int, seed int64) error {
	l := prefixLogger("check")
	l.Infof("kind %s size %d operations %d seed %d", kind, size, operations, seed)
	if err := Check(kind, size, operations, seed); err != nil {
		l.Error(err)
		return err
	}
	fmt.Fprintf(w, "%s: %d operations on %d elements ok (seed %d)\n", kind, operations, size, seed)
	return nil
}

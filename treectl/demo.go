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

	"github.com/spf13/cobra"

	"github.com/deepflowio/rangetree/segmenttree"
)

var demoValues = []int64{1, 3, 5, 7, 9, 11}

func printQueries(w io.Writer, name string, tree segmenttree.RangeTree[int64], ranges [][2]int) {
	for _, r := range ranges {
		result, _ := tree.Query(r[0], r[1])
		fmt.Fprintf(w, "%s [%d, %d] = %d\n", name, r[0], r[1], result)
	}
}

// Demo walks through every tree kind over the same six elements.
func Demo(w io.Writer) error {
	ranges := [][2]int{{0, 2}, {2, 5}, {1, 4}}

	sumTree, err := segmenttree.NewSumTree(demoValues)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Original array: %v\n\n", sumTree.Values())
	printQueries(w, "Sum", sumTree, ranges)
	before, _ := sumTree.Get(2)
	sumTree.Set(2, 10)
	after, _ := sumTree.Get(2)
	fmt.Fprintf(w, "\nUpdating element at index 2 from %d to %d\n", before, after)
	printQueries(w, "New sum", sumTree, ranges[:1])
	fmt.Fprintln(w, "\nAdding 5 to range [1, 4]")
	sumTree.Add(1, 4, 5)
	fmt.Fprintf(w, "Array after range update: %v\n", sumTree.Values())
	printQueries(w, "Final sum", sumTree, [][2]int{{0, 5}})

	minTree, err := segmenttree.NewMinTree(demoValues)
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	printQueries(w, "Min", minTree, ranges)
	minTree.Set(3, 0)
	result, _ := minTree.Query(0, 5)
	fmt.Fprintf(w, "After updating index 3 to 0, Min [0, 5] = %d\n", result)

	maxTree, err := segmenttree.NewMaxTree(demoValues)
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	printQueries(w, "Max", maxTree, ranges)
	maxTree.Set(4, 100)
	result, _ = maxTree.Query(0, 5)
	fmt.Fprintf(w, "After updating index 4 to 100, Max [0, 5] = %d\n", result)

	assignTree, err := segmenttree.NewAssignTree(demoValues)
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	assignTree.Assign(1, 4, 2)
	fmt.Fprintf(w, "After assigning 2 to [1, 4]: %v\n", assignTree.Values())
	printQueries(w, "Sum", assignTree, [][2]int{{0, 5}})
	return nil
}

func DemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through sum, min, max and assign trees",
		RunE: func(cmd *cobra.Command, args []string) error {
			return Demo(cmd.OutOrStdout())
		},
	}
}

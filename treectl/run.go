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
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/deepflowio/rangetree/segmenttree"
)

const (
	OP_QUERY  = "query"
	OP_GET    = "get"
	OP_SET    = "set"
	OP_ADD    = "add"
	OP_ASSIGN = "assign"
	OP_VALUES = "values"
)

var opArity = map[string]int{
	OP_QUERY:  2,
	OP_GET:    1,
	OP_SET:    2,
	OP_ADD:    3,
	OP_ASSIGN: 3,
	OP_VALUES: 0,
}

type Op struct {
	Name string
	Args []int64
}

// ParseOp parses "query 0 4", "add 0 2 5" and the like.
func ParseOp(line string) (Op, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Op{}, errors.New("empty operation")
	}
	op := Op{Name: strings.ToLower(fields[0])}
	arity, ok := opArity[op.Name]
	if !ok {
		return op, errors.Errorf("unknown operation %q", fields[0])
	}
	if len(fields)-1 != arity {
		return op, errors.Errorf("%s takes %d arguments, got %d", op.Name, arity, len(fields)-1)
	}
	for _, field := range fields[1:] {
		arg, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return op, errors.Wrapf(err, "%s argument", op.Name)
		}
		op.Args = append(op.Args, arg)
	}
	return op, nil
}

// Execute applies op to tree and describes the result in one line.
func Execute(kind string, tree segmenttree.RangeTree[int64], op Op) (string, error) {
	a := op.Args
	switch op.Name {
	case OP_QUERY:
		result, err := tree.Query(int(a[0]), int(a[1]))
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s [%d, %d] = %d", kind, a[0], a[1], result), nil
	case OP_GET:
		result, err := tree.Get(int(a[0]))
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("[%d] = %d", a[0], result), nil
	case OP_SET:
		if err := tree.Set(int(a[0]), a[1]); err != nil {
			return "", err
		}
		return fmt.Sprintf("[%d] := %d", a[0], a[1]), nil
	case OP_ADD, OP_ASSIGN:
		if (op.Name == OP_ASSIGN) != (kind == KIND_ASSIGN) {
			return "", errors.Errorf("%s is not supported by %s tree", op.Name, kind)
		}
		if err := tree.Update(int(a[0]), int(a[1]), a[2]); err != nil {
			return "", err
		}
		if op.Name == OP_ADD {
			return fmt.Sprintf("[%d, %d] += %d", a[0], a[1], a[2]), nil
		}
		return fmt.Sprintf("[%d, %d] := %d", a[0], a[1], a[2]), nil
	case OP_VALUES:
		return fmt.Sprint(tree.Values()), nil
	}
	return "", errors.Errorf("unknown operation %q", op.Name)
}

// Run executes every operation in order. A rejected operation is reported and
// the rest still run.
func Run(w io.Writer, kind string, values []int64, ops []string) error {
	l := prefixLogger("run")
	tree, err := NewTree(kind, values)
	if err != nil {
		return err
	}
	l.Debugf("%s tree of %d elements", kind, tree.Size())
	for _, line := range ops {
		op, err := ParseOp(line)
		if err == nil {
			var result string
			if result, err = Execute(kind, tree, op); err == nil {
				fmt.Fprintln(w, result)
				continue
			}
		}
		l.Warningf("%q: %s", line, err)
		fmt.Fprintf(w, "%s: %s\n", line, err)
	}
	return nil
}

func RunCommand() *cobra.Command {
	var kind string
	var values []int64
	cmd := &cobra.Command{
		Use:   "run [operation]...",
		Short: "Build a tree from --values and run operations on it",
		Example: `  rangetree-ctl run --kind sum --values 1,2,3,4,5 "query 0 4" "set 2 10" "add 0 2 5" "get 2"
  rangetree-ctl run --kind assign --values 1,2,3 "assign 0 1 0" values`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(cmd.OutOrStdout(), kind, values, args)
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", KIND_SUM, "tree kind: "+strings.Join(Kinds, ", "))
	cmd.Flags().Int64SliceVar(&values, "values", nil, "initial elements, e.g. 1,2,3")
	return cmd
}

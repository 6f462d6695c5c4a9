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
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOp(t *testing.T) {
	for _, tc := range []struct {
		line string
		name string
		args []int64
		ok   bool
	}{
		{"query 0 4", OP_QUERY, []int64{0, 4}, true},
		{"  ADD 1 2 -3 ", OP_ADD, []int64{1, 2, -3}, true},
		{"get 3", OP_GET, []int64{3}, true},
		{"values", OP_VALUES, nil, true},
		{"", "", nil, false},
		{"remove 1", "", nil, false},
		{"query 1", "", nil, false},
		{"set 1 x", "", nil, false},
	} {
		op, err := ParseOp(tc.line)
		if !tc.ok {
			assert.Error(t, err, tc.line)
			continue
		}
		require.NoError(t, err, tc.line)
		assert.Equal(t, tc.name, op.Name)
		assert.Equal(t, tc.args, op.Args)
	}
}

func TestExecuteKindMismatch(t *testing.T) {
	tree, err := NewTree(KIND_MIN, []int64{1, 2, 3})
	require.NoError(t, err)
	_, err = Execute(KIND_MIN, tree, Op{Name: OP_ASSIGN, Args: []int64{0, 1, 5}})
	assert.Error(t, err)

	tree, err = NewTree(KIND_ASSIGN, []int64{1, 2, 3})
	require.NoError(t, err)
	_, err = Execute(KIND_ASSIGN, tree, Op{Name: OP_ADD, Args: []int64{0, 1, 5}})
	assert.Error(t, err)
	result, err := Execute(KIND_ASSIGN, tree, Op{Name: OP_ASSIGN, Args: []int64{0, 1, 5}})
	assert.NoError(t, err)
	assert.Equal(t, "[0, 1] := 5", result)
	assert.Equal(t, []int64{5, 5, 3}, tree.Values())
}

func TestRun(t *testing.T) {
	var out bytes.Buffer
	err := Run(&out, KIND_SUM, []int64{1, 2, 3, 4, 5}, []string{
		"query 0 4",
		"set 2 10",
		"add 0 2 5",
		"get 2",
		"assign 0 1 0",
		"query 3 9",
		"values",
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "sum [0, 4] = 15", lines[0])
	assert.Equal(t, "[2] := 10", lines[1])
	assert.Equal(t, "[0, 2] += 5", lines[2])
	assert.Equal(t, "[2] = 15", lines[3])
	assert.Contains(t, lines[4], "not supported")
	assert.Contains(t, lines[5], "invalid range")
	assert.Equal(t, "[6 7 15 4 5]", lines[6])
}

func TestRunUnknownKind(t *testing.T) {
	assert.Error(t, Run(&bytes.Buffer{}, "median", []int64{1}, nil))
	assert.Error(t, Run(&bytes.Buffer{}, KIND_SUM, nil, nil))
}

func TestRootCommand(t *testing.T) {
	RegisterCommand(TREECTL_DEMO, DemoCommand)
	RegisterCommand(TREECTL_RUN, RunCommand)
	RegisterCommand(TREECTL_CHECK, CheckCommand)
	RegisterCommand(TREECTL_BENCH, BenchCommand)

	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetArgs([]string{"-f", t.TempDir() + "/missing.yaml", "--log-level", "warn",
		"run", "--kind", "max", "--values", "4,9,2", "query 0 2", "set 1 0", "query 0 2"})
	require.NoError(t, root.Execute())
	assert.Equal(t, "max [0, 2] = 9\n[1] := 0\nmax [0, 2] = 4\n", out.String())
	assert.Equal(t, "warning", Config.LogLevel)

	out.Reset()
	root = NewRootCommand()
	root.SetOut(&out)
	root.SetArgs([]string{"-f", t.TempDir() + "/missing.yaml", "check", "--size", "64", "--operations", "500", "--seed", "7"})
	require.NoError(t, root.Execute())
	assert.Equal(t, "all: 500 operations on 64 elements ok (seed 7)\n", out.String())
}

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

package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLog(t *testing.T) {
	defer InitConsoleLog()
	dir := t.TempDir()
	filePath := filepath.Join(dir, "sub", "rangetree.log")

	require.NoError(t, InitLog(filePath, "debug"))
	log.Info("hello")

	matched, err := filepath.Glob(filePath + ".*")
	require.NoError(t, err)
	assert.Len(t, matched, 1)
	content, err := os.ReadFile(matched[0])
	require.NoError(t, err)
	assert.Contains(t, string(content), "hello")
}

func TestInitLogBadLevel(t *testing.T) {
	assert.Error(t, InitLog(filepath.Join(t.TempDir(), "x.log"), "loud"))
	assert.Error(t, SetLevel("loud"))
}

func TestSetLevel(t *testing.T) {
	defer InitConsoleLog()
	InitConsoleLog()

	require.NoError(t, SetLevel("error"))
	assert.Equal(t, "ERROR", GetLevel())
	assert.False(t, log.IsEnabledFor(logging.INFO))

	require.NoError(t, SetLevel("debug"))
	assert.True(t, log.IsEnabledFor(logging.INFO))
}

func TestPrefixLogger(t *testing.T) {
	defer InitConsoleLog()
	backend := logging.NewMemoryBackend(8)
	logging.SetBackend(backend)

	l, err := GetPrefixLogger("test", "[check]")
	require.NoError(t, err)
	assert.Equal(t, "[check]", l.Prefix())

	l.Warningf("mismatch at %d", 3)
	record := backend.Head().Record
	assert.Equal(t, "[check] mismatch at 3", record.Message())
	assert.Equal(t, logging.WARNING, record.Level)

	logging.SetLevel(logging.ERROR, "test")
	l.Info("dropped")
	assert.Equal(t, "[check] mismatch at 3", backend.Head().Record.Message())
}

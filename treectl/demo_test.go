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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemo(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Demo(&out))

	for _, line := range []string{
		"Original array: [1 3 5 7 9 11]",
		"Sum [0, 2] = 9",
		"Sum [2, 5] = 32",
		"Sum [1, 4] = 24",
		"Updating element at index 2 from 5 to 10",
		"New sum [0, 2] = 14",
		"Array after range update: [1 8 15 12 14 11]",
		"Final sum [0, 5] = 61",
		"Min [0, 2] = 1",
		"Min [2, 5] = 5",
		"Min [1, 4] = 3",
		"After updating index 3 to 0, Min [0, 5] = 0",
		"Max [0, 2] = 5",
		"Max [2, 5] = 11",
		"Max [1, 4] = 9",
		"After updating index 4 to 100, Max [0, 5] = 100",
		"After assigning 2 to [1, 4]: [1 2 2 2 2 11]",
		"Sum [0, 5] = 20",
	} {
		assert.Contains(t, out.String(), line+"\n")
	}
}

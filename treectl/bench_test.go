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
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepflowio/rangetree/config"
	"github.com/deepflowio/rangetree/stats"
	"github.com/deepflowio/rangetree/stats/mocks"
)

func TestBench(t *testing.T) {
	result, err := Bench(KIND_SUM, 64, 300, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, KIND_SUM, result.Kind)
	assert.Equal(t, 64, result.Elements)
	assert.Equal(t, 300, result.Operations)

	result, err = Bench(KIND_ASSIGN, 1000, 3000, 1, &config.StatsdConfig{})
	require.NoError(t, err)
	assert.Contains(t, result.String(), "assign: 1k elements")

	_, err = Bench("median", 10, 10, 1, nil)
	assert.Error(t, err)
}

func TestHumanCount(t *testing.T) {
	assert.Equal(t, "1M", humanCount(1000000))
	assert.Equal(t, "12.5k", humanCount(12500))
	assert.Equal(t, "999", humanCount(999))
}

func TestRegisterStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stats.SetMinInterval(10 * time.Millisecond)
	defer stats.SetMinInterval(time.Second)

	tree, err := NewTree(KIND_SUM, []int64{1, 2, 3})
	require.NoError(t, err)
	_, err = tree.Query(0, 2)
	require.NoError(t, err)

	received := make(chan []stats.StatItem, 1)
	sender := mocks.NewMockSender(ctrl)
	sender.EXPECT().Send("segmenttree", stats.OptionStatTags{"kind": KIND_SUM}, gomock.Any()).
		Do(func(_ string, _ stats.OptionStatTags, items []stats.StatItem) {
			select {
			case received <- items:
			default:
			}
		}).MinTimes(1)
	sender.EXPECT().Send("gc", gomock.Any(), gomock.Any()).AnyTimes()
	sender.EXPECT().Close().Return(nil)

	stats.StartWithSender(sender)
	deregister, err := registerStats(KIND_SUM, tree, 10*time.Millisecond)
	require.NoError(t, err)

	// a tree is registered once
	_, err = registerStats(KIND_SUM, tree, 10*time.Millisecond)
	assert.Error(t, err)

	select {
	case items := <-received:
		require.Len(t, items, 5)
		assert.Equal(t, "query", items[0].Name)
		assert.Equal(t, uint64(1), items[0].Value)
		assert.Equal(t, "size", items[4].Name)
		assert.Equal(t, stats.GAUGE_TYPE, items[4].Type)
		assert.Equal(t, uint64(3), items[4].Value)
	case <-time.After(5 * time.Second):
		t.Error("tree counters not sent")
	}
	deregister()
	stats.Stop()
}

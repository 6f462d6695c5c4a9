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
	"runtime"
	"time"
)

type GcMonitor struct {
	lastPauseDuration uint64
	lastNumGC         uint32
}

func (t *GcMonitor) GetCounter() interface{} {
	memStats := runtime.MemStats{}
	runtime.ReadMemStats(&memStats)
	gcDuration := memStats.PauseTotalNs - t.lastPauseDuration
	gcCount := memStats.NumGC - t.lastNumGC
	t.lastPauseDuration, t.lastNumGC = memStats.PauseTotalNs, memStats.NumGC
	return []StatItem{
		{"duration", COUNT_TYPE, gcDuration},
		{"count", COUNT_TYPE, gcCount},
		{"heap-alloc", GAUGE_TYPE, memStats.HeapAlloc},
	}
}

// RegisterGcMonitor returns the registered monitor so that it can be deregistered.
func RegisterGcMonitor() (*GcMonitor, error) {
	monitor := &GcMonitor{}
	if err := RegisterCountable("gc", monitor, OptionInterval(time.Second)); err != nil {
		return nil, err
	}
	return monitor, nil
}

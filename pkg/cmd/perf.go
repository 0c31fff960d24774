// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
)

// perfStats provides a snapshot of memory allocation at a given point in time.
// Snapshots are only taken when debug logging is enabled.
type perfStats struct {
	// Starting time
	startTime time.Time
	// Starting total memory allocation
	startMem uint64
	// Starting number of gc events
	startGc uint32
}

// Create a new snapshot of the current amount of memory allocated.
func newPerfStats() *perfStats {
	var m runtime.MemStats
	//
	if !log.IsLevelEnabled(log.DebugLevel) {
		return nil
	}
	//
	startTime := time.Now()
	runtime.ReadMemStats(&m)
	//
	return &perfStats{startTime, m.TotalAlloc, m.NumGC}
}

// Log the difference between the state now and as it was when the snapshot
// was taken.
func (p *perfStats) log(prefix string) {
	var m runtime.MemStats
	//
	if p == nil {
		return
	}
	//
	runtime.ReadMemStats(&m)
	alloc := (m.TotalAlloc - p.startMem) / 1024
	gcs := m.NumGC - p.startGc
	exectime := time.Since(p.startTime).Seconds() * 1000
	//
	log.Debugf("%s took %0.3fms using %v Kb (%v GC events)", prefix, exectime, alloc, gcs)
}

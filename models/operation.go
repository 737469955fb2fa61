// Licensed to LinDB under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. LinDB licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package models

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/lindb/common/models"
	"github.com/lindb/common/pkg/encoding"
)

// WorkerStat represents the state of one operation worker.
type WorkerStat struct {
	Name           string `json:"name"`
	ProcessedCount int64  `json:"processedCount"`
	PendingCount   int    `json:"pendingCount"`
}

// OperationEngineStat represents a point-in-time snapshot of the operation engine.
type OperationEngineStat struct {
	PartitionWorkers         []WorkerStat `json:"partitionWorkers"`
	GenericWorkers           []WorkerStat `json:"genericWorkers"`
	Response                 WorkerStat   `json:"response"`
	PendingGenericOperations int          `json:"pendingGenericOperations"`
	RunningOperations        int          `json:"runningOperations"`
}

// String returns the stat snapshot as json.
func (s *OperationEngineStat) String() string {
	return string(encoding.JSONMarshal(s))
}

// ToTable returns the worker states as table, one row per partition worker,
// per generic worker and one for the response worker, which is always included.
func (s *OperationEngineStat) ToTable() (rows int, tableStr string) {
	workers := make([]WorkerStat, 0, len(s.PartitionWorkers)+len(s.GenericWorkers)+1)
	workers = append(workers, s.PartitionWorkers...)
	workers = append(workers, s.GenericWorkers...)
	workers = append(workers, s.Response)
	if len(workers) == 0 {
		return 0, ""
	}
	writer := models.NewTableFormatter()
	writer.AppendHeader(table.Row{"Worker", "Processed", "Pending"})
	for i := range workers {
		w := workers[i]
		writer.AppendRow(table.Row{
			w.Name,
			w.ProcessedCount,
			w.PendingCount,
		})
	}
	return len(workers), writer.Render()
}

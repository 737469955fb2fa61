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

package metrics

import (
	"github.com/maurangzeb/hazelcast/internal/linmetric"
)

// OperationEngineStatistics represents operation engine statistics.
type OperationEngineStatistics struct {
	CompletedOperations *linmetric.BoundCounter   // number of processed operations
	CompletedPackets    *linmetric.BoundCounter   // number of processed operation packets
	CompletedRunnables  *linmetric.BoundCounter   // number of processed partition-bound runnables
	WorkerFaults        *linmetric.BoundCounter   // number of handler failures/panics caught by workers
	PriorityWakeups     *linmetric.BoundCounter   // number of trigger sentinels enqueued for priority tasks
	ProcessTime         *linmetric.BoundHistogram // task processing time
}

// NewOperationEngineStatistics creates an operation engine statistics.
func NewOperationEngineStatistics(node string) *OperationEngineStatistics {
	scope := linmetric.NewScope("hazelcast.operation.engine", "node", node)
	return &OperationEngineStatistics{
		CompletedOperations: scope.NewCounter("completed_operations"),
		CompletedPackets:    scope.NewCounter("completed_packets"),
		CompletedRunnables:  scope.NewCounter("completed_runnables"),
		WorkerFaults:        scope.NewCounter("worker_faults"),
		PriorityWakeups:     scope.NewCounter("priority_wakeups"),
		ProcessTime:         scope.NewHistogram(),
	}
}

// ResponseStatistics represents response worker statistics.
type ResponseStatistics struct {
	Responses        *linmetric.BoundCounter // number of handled response packets
	ResponseFailures *linmetric.BoundCounter // number of response handler failures/panics
}

// NewResponseStatistics creates a response worker statistics.
func NewResponseStatistics(node string) *ResponseStatistics {
	scope := linmetric.NewScope("hazelcast.operation.response", "node", node)
	return &ResponseStatistics{
		Responses:        scope.NewCounter("responses"),
		ResponseFailures: scope.NewCounter("response_failures"),
	}
}

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

package operation

// Task is the unit of work routed by the operation engine,
// once enqueued its ownership transfers to the destination queue,
// then to the worker that dequeues it.
type Task interface {
	// PartitionID returns the partition the task is bound to,
	// a value < 0 means the task is not bound to any partition.
	PartitionID() int
}

// Operation represents an operation of the data grid,
// the engine is oblivious to its semantics, the bound handler interprets it.
type Operation interface {
	Task
	// IsUrgent returns true when the operation must jump ahead of normal traffic.
	IsUrgent() bool
}

// Runnable represents a partition-bound runnable,
// routed like an operation of the same partition, never urgent.
type Runnable interface {
	Task
	// Run executes the runnable on the owning partition worker.
	Run()
}

// triggerTaskType marks the trigger sentinel,
// enqueued to a normal queue purely to wake a blocked worker.
type triggerTaskType struct{}

// PartitionID returns -1, the sentinel is never routed by partition.
func (*triggerTaskType) PartitionID() int { return -1 }

// triggerTask is the well-known singleton recognized by pointer equality,
// a worker dequeuing it drops it silently and re-checks its priority queue.
var triggerTask = &triggerTaskType{}

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

import "errors"

var (
	// ErrNilTask is returned when a nil task/operation/packet is dispatched.
	ErrNilTask = errors.New("task is nil")
	// ErrTaskNotPartitionBound is returned when a runnable without a partition id is dispatched,
	// runnables must always declare a partition, operations need not.
	ErrTaskNotPartitionBound = errors.New("runnable is not partition bound")
	// ErrPartitionOutOfRange is returned when a task declares a partition id
	// beyond the configured partition count.
	ErrPartitionOutOfRange = errors.New("partition id out of range")
	// ErrNotOperationPacket is returned when a packet without the operation flag is dispatched.
	ErrNotOperationPacket = errors.New("packet is not flagged as operation")
	// ErrThreadAffinity is returned when an operation may not run on the calling goroutine.
	ErrThreadAffinity = errors.New("operation is not allowed to run on the calling thread")
	// ErrEngineStopped is returned when dispatching after the engine shutdown.
	ErrEngineStopped = errors.New("operation engine is stopped")
)

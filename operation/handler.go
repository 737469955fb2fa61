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

//go:generate mockgen -source=./handler.go -destination=./handler_mock.go -package=operation

// OperationHandler processes the tasks handed over by a worker,
// partition handlers are created one per partition id,
// generic handlers one per generic worker, plus one ad-hoc handler
// for inline execution on non-worker goroutines.
type OperationHandler interface {
	// Process interprets and executes the given task,
	// an error return keeps the worker alive, it is logged and counted.
	Process(task Task) error
	// CurrentTask returns the task presently being processed, or nil.
	CurrentTask() Task
}

// OperationHandlerFactory creates all handlers before any worker starts,
// the handler tables stay immutable afterwards.
type OperationHandlerFactory interface {
	// CreatePartitionHandler creates the handler owning the given partition id.
	CreatePartitionHandler(partitionID int) OperationHandler
	// CreateGenericHandler creates the handler bound to one generic worker.
	CreateGenericHandler() OperationHandler
	// CreateAdHocHandler creates the handler used for inline execution
	// when the caller is not a worker goroutine.
	CreateAdHocHandler() OperationHandler
}

// ResponsePacketHandler decodes and completes response packets,
// driven by the response worker only.
type ResponsePacketHandler interface {
	// Handle handles one response packet.
	Handle(packet *Packet) error
}

// NodeExtension hooks worker goroutine lifecycle so the host can install
// goroutine-local state such as a security context.
type NodeExtension interface {
	// OnWorkerStart is invoked on the worker goroutine before it starts processing.
	OnWorkerStart(thread Thread)
	// OnWorkerStop is invoked on the worker goroutine after it stops processing.
	OnWorkerStop(thread Thread)
}

// noopExtension is installed when the host provides no extension.
type noopExtension struct{}

func (noopExtension) OnWorkerStart(_ Thread) {}
func (noopExtension) OnWorkerStop(_ Thread)  {}

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

import (
	"fmt"
	"time"

	"go.uber.org/atomic"

	"github.com/lindb/common/pkg/logger"

	"github.com/maurangzeb/hazelcast/metrics"
	errorpkg "github.com/maurangzeb/hazelcast/pkg/error"
)

// handlerRef wraps the in-progress handler so the current-handler slot
// can be published and cleared with a single atomic store.
type handlerRef struct {
	handler OperationHandler
}

// opWorker is a long-lived worker goroutine pulling from a pair of queues.
// A partition worker owns its private pair and resolves the handler by the
// task's partition id; all generic workers share one pair and drive a fixed
// handler regardless of the task they dequeue.
type opWorker struct {
	normalTasks    *taskQueue
	priorityTasks  *taskQueue
	resolve        func(task Task) OperationHandler
	handler        OperationHandler // fixed handler of a generic worker, nil for partition workers
	done           chan struct{}
	extension      NodeExtension
	statistics     *metrics.OperationEngineStatistics
	logger         logger.Logger
	thread         Thread
	currentHandler atomic.Value
	processedCount atomic.Int64
	running        atomic.Bool
}

// newPartitionWorker creates a partition worker with its own queue pair,
// the partition handler table is shared and immutable.
func newPartitionWorker(
	nodeName string, threadID int,
	partitionHandlers []OperationHandler,
	extension NodeExtension,
	statistics *metrics.OperationEngineStatistics,
) *opWorker {
	w := &opWorker{
		thread: Thread{
			Name:  fmt.Sprintf("%s-partition-operation-%d", nodeName, threadID),
			Kind:  ThreadPartition,
			Index: threadID,
		},
		normalTasks:   newTaskQueue(),
		priorityTasks: newTaskQueue(),
		done:          make(chan struct{}),
		extension:     extension,
		statistics:    statistics,
		logger:        logger.GetLogger("Operation", "PartitionWorker"),
	}
	w.resolve = func(task Task) OperationHandler {
		return partitionHandlers[task.PartitionID()]
	}
	return w
}

// newGenericWorker creates a generic worker on the shared queue pair,
// bound to its own handler for its whole lifetime.
func newGenericWorker(
	nodeName string, threadID int,
	normalTasks, priorityTasks *taskQueue,
	handler OperationHandler,
	extension NodeExtension,
	statistics *metrics.OperationEngineStatistics,
) *opWorker {
	w := &opWorker{
		thread: Thread{
			Name:  fmt.Sprintf("%s-generic-operation-%d", nodeName, threadID),
			Kind:  ThreadGeneric,
			Index: threadID,
		},
		normalTasks:   normalTasks,
		priorityTasks: priorityTasks,
		handler:       handler,
		done:          make(chan struct{}),
		extension:     extension,
		statistics:    statistics,
		logger:        logger.GetLogger("Operation", "GenericWorker"),
	}
	w.resolve = func(_ Task) OperationHandler {
		return handler
	}
	return w
}

// start launches the worker goroutine.
func (w *opWorker) start() {
	w.running.Store(true)
	go w.run()
}

// shutdown marks the worker stopped and wakes it when blocked on its normal queue.
func (w *opWorker) shutdown() {
	w.running.Store(false)
	w.normalTasks.Put(triggerTask)
}

// pending returns the number of queued tasks of this worker's queue pair.
func (w *opWorker) pending() int {
	return w.normalTasks.Size() + w.priorityTasks.Size()
}

// processed returns the number of tasks this worker completed.
func (w *opWorker) processed() int64 {
	return w.processedCount.Load()
}

// inProgressHandler returns the handler currently driving a task, or nil.
func (w *opWorker) inProgressHandler() OperationHandler {
	if ref, ok := w.currentHandler.Load().(handlerRef); ok {
		return ref.handler
	}
	return nil
}

func (w *opWorker) run() {
	defer close(w.done)

	bindThread(w.thread)
	w.extension.OnWorkerStart(w.thread)
	defer func() {
		w.extension.OnWorkerStop(w.thread)
		unbindThread()
	}()

	for w.running.Load() {
		task := w.nextTask()
		if task == triggerTask {
			// wake-up only, restart the loop so the priority queue is seen first
			continue
		}
		w.process(task)
	}
}

// nextTask drains the priority queue fully before each normal dequeue attempt,
// a burst of priority work cannot be starved by a single normal task.
func (w *opWorker) nextTask() Task {
	if task, ok := w.priorityTasks.Poll(); ok {
		return task
	}
	return w.normalTasks.Take()
}

// process drives the resolved handler with the task,
// a faulty handler must not kill its worker.
func (w *opWorker) process(task Task) {
	start := time.Now()
	handler := w.resolve(task)
	w.currentHandler.Store(handlerRef{handler: handler})
	defer func() {
		w.currentHandler.Store(handlerRef{})
		if r := recover(); r != nil {
			w.statistics.WorkerFaults.Incr()
			w.logger.Error("panic when process task",
				logger.String("worker", w.thread.Name),
				logger.Int("partitionID", task.PartitionID()),
				logger.Error(errorpkg.Error(r)), logger.Stack())
		}
	}()

	if err := handler.Process(task); err != nil {
		w.statistics.WorkerFaults.Incr()
		w.logger.Error("failed processing task",
			logger.String("worker", w.thread.Name),
			logger.Int("partitionID", task.PartitionID()),
			logger.Error(err))
		return
	}
	w.processedCount.Inc()
	w.statistics.ProcessTime.UpdateSince(start)
	switch task.(type) {
	case *Packet:
		w.statistics.CompletedPackets.Incr()
	case Runnable:
		w.statistics.CompletedRunnables.Incr()
	default:
		w.statistics.CompletedOperations.Incr()
	}
}

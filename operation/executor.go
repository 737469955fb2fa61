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
	"io"
	"time"

	"go.uber.org/atomic"

	"github.com/lindb/common/pkg/logger"

	"github.com/maurangzeb/hazelcast/config"
	"github.com/maurangzeb/hazelcast/metrics"
	"github.com/maurangzeb/hazelcast/models"
	errorpkg "github.com/maurangzeb/hazelcast/pkg/error"
)

// Executor routes every incoming task to the correct worker goroutine:
// work of one partition is serialized on its fixed partition worker,
// unsharded work is balanced over the shared generic workers,
// response packets go to the dedicated response worker,
// urgent tasks jump ahead of normal traffic.
type Executor interface {
	// ExecuteOperation routes the operation by its partition id and urgency.
	ExecuteOperation(op Operation) error
	// ExecuteTask routes the partition-bound runnable by its partition id, never urgent.
	ExecuteTask(task Runnable) error
	// ExecutePacket routes the packet, the operation flag must be set,
	// packets with the response flag go to the response worker.
	ExecutePacket(packet *Packet) error
	// RunOnCallingThread drives the operation synchronously on the calling
	// goroutine, MayRunHere must hold or ErrThreadAffinity is returned.
	RunOnCallingThread(op Operation) error

	// MayRunHere returns true when the calling goroutine may execute the
	// operation inline without violating partition affinity.
	MayRunHere(op Operation) bool
	// MayInvokeHere returns true when the calling goroutine may originate an
	// outbound invocation for the operation.
	MayInvokeHere(op Operation) bool
	// IsOperationThread returns true when the calling goroutine is a partition
	// or generic worker.
	IsOperationThread() bool
	// CurrentThreadOperationHandler returns the handler of the calling worker
	// goroutine, or the ad-hoc handler for any other goroutine.
	CurrentThreadOperationHandler() OperationHandler

	// RunningOperationCount returns the number of workers currently driving a task.
	RunningOperationCount() int
	// QueueSize returns the total number of pending normal tasks.
	QueueSize() int
	// PriorityQueueSize returns the total number of pending priority tasks.
	PriorityQueueSize() int
	// ResponseQueueSize returns the number of pending response packets.
	ResponseQueueSize() int
	// Stats returns a point-in-time snapshot of the engine state.
	Stats() *models.OperationEngineStat
	// DumpPerformanceMetrics appends one line per worker with its counters.
	DumpPerformanceMetrics(w io.Writer)

	// Shutdown stops all workers, awaiting each with a bounded join.
	Shutdown()
}

// executor implements Executor interface.
type executor struct {
	cfg                *config.OperationEngine
	partitionWorkers   []*opWorker
	genericWorkers     []*opWorker
	genericNormalTasks *taskQueue
	genericPriority    *taskQueue
	responseWorker     *responseWorker
	partitionHandlers  []OperationHandler
	adHocHandler       OperationHandler
	statistics         *metrics.OperationEngineStatistics
	logger             logger.Logger
	stopped            atomic.Bool
}

// NewExecutor creates the operation engine and starts all of its workers,
// all handlers are built before the first worker starts and the tables
// stay immutable afterwards.
func NewExecutor(
	nodeName string,
	cfg *config.OperationEngine,
	factory OperationHandlerFactory,
	responseHandler ResponsePacketHandler,
	extension NodeExtension,
) Executor {
	if cfg == nil {
		cfg = config.NewDefaultOperationEngine()
	}
	if extension == nil {
		extension = noopExtension{}
	}
	partitionThreads := cfg.PartitionThreads()
	genericThreads := cfg.GenericThreads()
	partitions := cfg.Partitions()

	statistics := metrics.NewOperationEngineStatistics(nodeName)
	partitionHandlers := make([]OperationHandler, partitions)
	for partitionID := range partitionHandlers {
		partitionHandlers[partitionID] = factory.CreatePartitionHandler(partitionID)
	}
	e := &executor{
		cfg:                cfg,
		genericNormalTasks: newTaskQueue(),
		genericPriority:    newTaskQueue(),
		partitionHandlers:  partitionHandlers,
		adHocHandler:       factory.CreateAdHocHandler(),
		statistics:         statistics,
		logger:             logger.GetLogger("Operation", "Executor"),
	}
	for threadID := 0; threadID < partitionThreads; threadID++ {
		worker := newPartitionWorker(nodeName, threadID, partitionHandlers, extension, statistics)
		e.partitionWorkers = append(e.partitionWorkers, worker)
		worker.start()
	}
	for threadID := 0; threadID < genericThreads; threadID++ {
		worker := newGenericWorker(nodeName, threadID,
			e.genericNormalTasks, e.genericPriority,
			factory.CreateGenericHandler(), extension, statistics)
		e.genericWorkers = append(e.genericWorkers, worker)
		worker.start()
	}
	e.responseWorker = newResponseWorker(nodeName, responseHandler, extension,
		metrics.NewResponseStatistics(nodeName))
	e.responseWorker.start()

	e.logger.Info("operation engine started",
		logger.String("node", nodeName),
		logger.Int("partitionThreads", partitionThreads),
		logger.Int("genericThreads", genericThreads),
		logger.Int("partitions", partitions))
	return e
}

// ExecuteOperation routes the operation by its partition id and urgency.
func (e *executor) ExecuteOperation(op Operation) error {
	if op == nil {
		return ErrNilTask
	}
	if err := e.checkPartitionID(op.PartitionID()); err != nil {
		return err
	}
	if e.stopped.Load() {
		return ErrEngineStopped
	}
	e.execute(op, op.PartitionID(), op.IsUrgent())
	return nil
}

// ExecuteTask routes the partition-bound runnable, never urgent.
func (e *executor) ExecuteTask(task Runnable) error {
	if task == nil {
		return ErrNilTask
	}
	if task.PartitionID() < 0 {
		return ErrTaskNotPartitionBound
	}
	if err := e.checkPartitionID(task.PartitionID()); err != nil {
		return err
	}
	if e.stopped.Load() {
		return ErrEngineStopped
	}
	e.execute(task, task.PartitionID(), false)
	return nil
}

// ExecutePacket routes the packet by its header flags.
func (e *executor) ExecutePacket(packet *Packet) error {
	if packet == nil {
		return ErrNilTask
	}
	if !packet.IsOperation() {
		return ErrNotOperationPacket
	}
	if err := e.checkPartitionID(packet.PartitionID()); err != nil {
		return err
	}
	if e.stopped.Load() {
		return ErrEngineStopped
	}
	if packet.IsResponse() {
		e.responseWorker.packets.Put(packet)
		return nil
	}
	e.execute(packet, packet.PartitionID(), packet.IsUrgent())
	return nil
}

// execute writes the task to the destination queue pair.
// An urgent task goes to the priority queue first, then a trigger sentinel
// to the paired normal queue, so a worker blocked on the empty normal queue
// is guaranteed to wake and then observe the priority queue.
func (e *executor) execute(task Task, partitionID int, urgent bool) {
	normalTasks, priorityTasks := e.queuesOf(partitionID)
	if urgent {
		priorityTasks.Put(task)
		normalTasks.Put(triggerTask)
		e.statistics.PriorityWakeups.Incr()
		return
	}
	normalTasks.Put(task)
}

// queuesOf picks the destination queue pair by partition id.
func (e *executor) queuesOf(partitionID int) (normalTasks, priorityTasks *taskQueue) {
	if partitionID < 0 {
		return e.genericNormalTasks, e.genericPriority
	}
	worker := e.partitionWorkers[partitionID%len(e.partitionWorkers)]
	return worker.normalTasks, worker.priorityTasks
}

// checkPartitionID rejects partition ids beyond the configured partition count.
func (e *executor) checkPartitionID(partitionID int) error {
	if partitionID >= len(e.partitionHandlers) {
		return ErrPartitionOutOfRange
	}
	return nil
}

// RunOnCallingThread drives the operation synchronously on the calling goroutine.
func (e *executor) RunOnCallingThread(op Operation) (err error) {
	if op == nil {
		return ErrNilTask
	}
	if err := e.checkPartitionID(op.PartitionID()); err != nil {
		return err
	}
	if e.stopped.Load() {
		return ErrEngineStopped
	}
	if !e.MayRunHere(op) {
		return ErrThreadAffinity
	}
	handler := e.handlerFor(op)
	defer func() {
		if r := recover(); r != nil {
			err = errorpkg.Error(r)
		}
	}()
	return handler.Process(op)
}

// handlerFor resolves the handler driving an inline execution,
// partition operations always use their partition handler, the affinity
// predicate already proved the calling goroutine owns it.
func (e *executor) handlerFor(op Operation) OperationHandler {
	if partitionID := op.PartitionID(); partitionID >= 0 {
		return e.partitionHandlers[partitionID]
	}
	return e.CurrentThreadOperationHandler()
}

// MayRunHere returns true when the calling goroutine may execute the operation inline.
func (e *executor) MayRunHere(op Operation) bool {
	thread := CurrentThread()
	partitionID := op.PartitionID()
	switch thread.Kind {
	case ThreadIO:
		return false
	case ThreadPartition:
		if partitionID < 0 {
			return true
		}
		return thread.Index == partitionID%len(e.partitionWorkers)
	case ThreadGeneric:
		return partitionID < 0
	default:
		return partitionID < 0
	}
}

// MayInvokeHere returns true when the calling goroutine may originate an
// outbound invocation for the operation, looser than MayRunHere: invoking
// from a generic or non-worker goroutine is always safe.
func (e *executor) MayInvokeHere(op Operation) bool {
	thread := CurrentThread()
	partitionID := op.PartitionID()
	switch thread.Kind {
	case ThreadIO:
		return false
	case ThreadPartition:
		if partitionID < 0 {
			return true
		}
		return thread.Index == partitionID%len(e.partitionWorkers)
	default:
		return true
	}
}

// IsOperationThread returns true when the calling goroutine is a partition
// or generic worker, the response worker and IO threads are not.
func (e *executor) IsOperationThread() bool {
	kind := CurrentThread().Kind
	return kind == ThreadPartition || kind == ThreadGeneric
}

// CurrentThreadOperationHandler returns the handler of the calling worker goroutine.
func (e *executor) CurrentThreadOperationHandler() OperationHandler {
	thread := CurrentThread()
	switch thread.Kind {
	case ThreadPartition:
		if thread.Index >= 0 && thread.Index < len(e.partitionWorkers) {
			if handler := e.partitionWorkers[thread.Index].inProgressHandler(); handler != nil {
				return handler
			}
		}
		return e.adHocHandler
	case ThreadGeneric:
		if thread.Index >= 0 && thread.Index < len(e.genericWorkers) {
			return e.genericWorkers[thread.Index].handler
		}
		return e.adHocHandler
	default:
		return e.adHocHandler
	}
}

// RunningOperationCount returns the number of workers currently driving a task.
func (e *executor) RunningOperationCount() int {
	count := 0
	for _, worker := range e.partitionWorkers {
		if worker.inProgressHandler() != nil {
			count++
		}
	}
	for _, worker := range e.genericWorkers {
		if worker.inProgressHandler() != nil {
			count++
		}
	}
	return count
}

// QueueSize returns the total number of pending normal tasks.
func (e *executor) QueueSize() int {
	size := e.genericNormalTasks.Size()
	for _, worker := range e.partitionWorkers {
		size += worker.normalTasks.Size()
	}
	return size
}

// PriorityQueueSize returns the total number of pending priority tasks.
func (e *executor) PriorityQueueSize() int {
	size := e.genericPriority.Size()
	for _, worker := range e.partitionWorkers {
		size += worker.priorityTasks.Size()
	}
	return size
}

// ResponseQueueSize returns the number of pending response packets.
func (e *executor) ResponseQueueSize() int {
	return e.responseWorker.pending()
}

// Stats returns a point-in-time snapshot of the engine state.
func (e *executor) Stats() *models.OperationEngineStat {
	stat := &models.OperationEngineStat{
		PendingGenericOperations: e.genericNormalTasks.Size() + e.genericPriority.Size(),
		RunningOperations:        e.RunningOperationCount(),
		Response: models.WorkerStat{
			Name:           e.responseWorker.thread.Name,
			ProcessedCount: e.responseWorker.processed(),
			PendingCount:   e.responseWorker.pending(),
		},
	}
	for _, worker := range e.partitionWorkers {
		stat.PartitionWorkers = append(stat.PartitionWorkers, models.WorkerStat{
			Name:           worker.thread.Name,
			ProcessedCount: worker.processed(),
			PendingCount:   worker.pending(),
		})
	}
	for _, worker := range e.genericWorkers {
		stat.GenericWorkers = append(stat.GenericWorkers, models.WorkerStat{
			Name:           worker.thread.Name,
			ProcessedCount: worker.processed(),
		})
	}
	return stat
}

// DumpPerformanceMetrics appends one line per worker with its counters,
// counts are read without locking, readers accept slight skew.
func (e *executor) DumpPerformanceMetrics(w io.Writer) {
	for _, worker := range e.partitionWorkers {
		fmt.Fprintf(w, "%s processedCount=%d pendingCount=%d\n",
			worker.thread.Name, worker.processed(), worker.pending())
	}
	fmt.Fprintf(w, "pending generic operations %d\n",
		e.genericNormalTasks.Size()+e.genericPriority.Size())
	for _, worker := range e.genericWorkers {
		fmt.Fprintf(w, "%s processedCount=%d\n",
			worker.thread.Name, worker.processed())
	}
	fmt.Fprintf(w, "%s processedResponses=%d\n",
		e.responseWorker.thread.Name, e.responseWorker.processed())
}

// Shutdown stops the response worker, then the partition workers, then the
// generic workers, awaiting each with a bounded join. A worker that fails to
// honor its run-flag within the bound is left behind with a warning.
func (e *executor) Shutdown() {
	if e.stopped.Swap(true) {
		return
	}
	e.logger.Info("stopping operation engine")
	e.responseWorker.shutdown()
	for _, worker := range e.partitionWorkers {
		worker.shutdown()
	}
	for _, worker := range e.genericWorkers {
		worker.shutdown()
	}
	timeout := e.cfg.JoinTimeout()
	e.await(e.responseWorker.thread.Name, e.responseWorker.done, timeout)
	for _, worker := range e.partitionWorkers {
		e.await(worker.thread.Name, worker.done, timeout)
	}
	for _, worker := range e.genericWorkers {
		e.await(worker.thread.Name, worker.done, timeout)
	}
	e.logger.Info("operation engine stopped")
}

func (e *executor) await(name string, done <-chan struct{}, timeout time.Duration) {
	select {
	case <-done:
	case <-time.After(timeout):
		e.logger.Warn("worker did not terminate in time, leaving it behind",
			logger.String("worker", name))
	}
}

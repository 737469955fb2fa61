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

	"go.uber.org/atomic"

	"github.com/lindb/common/pkg/logger"

	"github.com/maurangzeb/hazelcast/metrics"
	errorpkg "github.com/maurangzeb/hazelcast/pkg/error"
)

// responseWorker is the single consumer of response packets,
// kept apart from the operation workers so response decoding latency
// cannot be blocked behind a long-running operation.
type responseWorker struct {
	packets            *taskQueue
	handler            ResponsePacketHandler
	done               chan struct{}
	extension          NodeExtension
	statistics         *metrics.ResponseStatistics
	logger             logger.Logger
	thread             Thread
	processedResponses atomic.Int64
	running            atomic.Bool
}

func newResponseWorker(
	nodeName string,
	handler ResponsePacketHandler,
	extension NodeExtension,
	statistics *metrics.ResponseStatistics,
) *responseWorker {
	return &responseWorker{
		thread: Thread{
			Name:  fmt.Sprintf("%s-response", nodeName),
			Kind:  ThreadResponse,
			Index: 0,
		},
		packets:    newTaskQueue(),
		handler:    handler,
		done:       make(chan struct{}),
		extension:  extension,
		statistics: statistics,
		logger:     logger.GetLogger("Operation", "ResponseWorker"),
	}
}

// start launches the response worker goroutine.
func (w *responseWorker) start() {
	w.running.Store(true)
	go w.run()
}

// shutdown marks the worker stopped and wakes it when blocked on its queue.
func (w *responseWorker) shutdown() {
	w.running.Store(false)
	w.packets.Put(triggerTask)
}

// pending returns the number of queued response packets.
func (w *responseWorker) pending() int {
	return w.packets.Size()
}

// processed returns the number of handled response packets.
func (w *responseWorker) processed() int64 {
	return w.processedResponses.Load()
}

func (w *responseWorker) run() {
	defer close(w.done)

	bindThread(w.thread)
	w.extension.OnWorkerStart(w.thread)
	defer func() {
		w.extension.OnWorkerStop(w.thread)
		unbindThread()
	}()

	for w.running.Load() {
		task := w.packets.Take()
		if task == triggerTask {
			continue
		}
		packet, ok := task.(*Packet)
		if !ok {
			continue
		}
		w.handle(packet)
	}
}

// handle drives the response handler with one packet,
// a faulty handler must not kill the response worker.
func (w *responseWorker) handle(packet *Packet) {
	defer func() {
		if r := recover(); r != nil {
			w.statistics.ResponseFailures.Incr()
			w.logger.Error("panic when handle response packet",
				logger.String("worker", w.thread.Name),
				logger.Error(errorpkg.Error(r)), logger.Stack())
		}
	}()

	if err := w.handler.Handle(packet); err != nil {
		w.statistics.ResponseFailures.Incr()
		w.logger.Error("failed handling response packet",
			logger.String("worker", w.thread.Name),
			logger.Int("partitionID", packet.PartitionID()),
			logger.Error(err))
		return
	}
	w.processedResponses.Inc()
	w.statistics.Responses.Incr()
}

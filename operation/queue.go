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
	"sync"

	"go.uber.org/atomic"
)

// taskQueue is an unbounded multi-producer multi-consumer FIFO,
// producers never block, consumers may block in Take until a task arrives.
// Size is kept in a separate atomic so observers read it without locking.
type taskQueue struct {
	notEmpty *sync.Cond
	tasks    []Task
	off      int
	size     atomic.Int64
	mu       sync.Mutex
}

func newTaskQueue() *taskQueue {
	q := &taskQueue{}
	q.notEmpty = sync.NewCond(&q.mu)
	return q
}

// Put appends the task and wakes one blocked consumer.
func (q *taskQueue) Put(task Task) {
	q.mu.Lock()
	q.tasks = append(q.tasks, task)
	q.size.Inc()
	q.notEmpty.Signal()
	q.mu.Unlock()
}

// Poll removes the head task without blocking,
// returns false when the queue is empty.
func (q *taskQueue) Poll() (Task, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.pollLocked()
}

// Take removes the head task, blocking until one is available.
func (q *taskQueue) Take() Task {
	q.mu.Lock()
	defer q.mu.Unlock()

	for {
		if task, ok := q.pollLocked(); ok {
			return task
		}
		q.notEmpty.Wait()
	}
}

// Size returns the current queue length, readers accept slight skew.
func (q *taskQueue) Size() int {
	return int(q.size.Load())
}

func (q *taskQueue) pollLocked() (Task, bool) {
	if q.off == len(q.tasks) {
		return nil, false
	}
	task := q.tasks[q.off]
	q.tasks[q.off] = nil
	q.off++
	if q.off == len(q.tasks) {
		q.tasks = q.tasks[:0]
		q.off = 0
	} else if q.off > 1024 && q.off*2 >= len(q.tasks) {
		// reclaim the consumed prefix once it dominates the backing array
		n := copy(q.tasks, q.tasks[q.off:])
		for i := n; i < len(q.tasks); i++ {
			q.tasks[i] = nil
		}
		q.tasks = q.tasks[:n]
		q.off = 0
	}
	q.size.Dec()
	return task, true
}

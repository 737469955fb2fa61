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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTaskQueue_FIFO(t *testing.T) {
	q := newTaskQueue()
	_, ok := q.Poll()
	assert.False(t, ok)
	assert.Equal(t, 0, q.Size())

	for seq := 0; seq < 100; seq++ {
		q.Put(&simpleOperation{seq: seq})
	}
	assert.Equal(t, 100, q.Size())
	for seq := 0; seq < 100; seq++ {
		task, ok := q.Poll()
		assert.True(t, ok)
		assert.Equal(t, seq, task.(*simpleOperation).seq)
	}
	_, ok = q.Poll()
	assert.False(t, ok)
	assert.Equal(t, 0, q.Size())
}

func TestTaskQueue_TakeBlocks(t *testing.T) {
	q := newTaskQueue()
	got := make(chan Task, 1)
	go func() {
		got <- q.Take()
	}()

	select {
	case <-got:
		t.Fatal("take returned on empty queue")
	case <-time.After(50 * time.Millisecond):
	}

	want := &simpleOperation{seq: 42}
	q.Put(want)
	select {
	case task := <-got:
		assert.Same(t, want, task)
	case <-time.After(time.Second):
		t.Fatal("take not woken by put")
	}
}

func TestTaskQueue_ConcurrentProducers(t *testing.T) {
	q := newTaskQueue()
	const producers = 4
	const perProducer = 1000

	var wg sync.WaitGroup
	for producer := 0; producer < producers; producer++ {
		wg.Add(1)
		go func(producer int) {
			defer wg.Done()
			for seq := 0; seq < perProducer; seq++ {
				q.Put(&simpleOperation{partitionID: producer, seq: seq})
			}
		}(producer)
	}
	wg.Wait()
	assert.Equal(t, producers*perProducer, q.Size())

	// the observed order is some interleaving consistent with each producer's program order
	lastSeq := make([]int, producers)
	for idx := range lastSeq {
		lastSeq[idx] = -1
	}
	for i := 0; i < producers*perProducer; i++ {
		task, ok := q.Poll()
		assert.True(t, ok)
		op := task.(*simpleOperation)
		assert.Greater(t, op.seq, lastSeq[op.partitionID])
		lastSeq[op.partitionID] = op.seq
	}
}

func TestTaskQueue_CompactsConsumedPrefix(t *testing.T) {
	q := newTaskQueue()
	const total = 10000
	for seq := 0; seq < total; seq++ {
		q.Put(&simpleOperation{seq: seq})
	}
	for seq := 0; seq < total-1; seq++ {
		task, ok := q.Poll()
		assert.True(t, ok)
		assert.Equal(t, seq, task.(*simpleOperation).seq)
	}
	assert.Equal(t, 1, q.Size())
	task, ok := q.Poll()
	assert.True(t, ok)
	assert.Equal(t, total-1, task.(*simpleOperation).seq)
}

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

package linmetric

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScope(t *testing.T) {
	scope := NewScope("hazelcast.test", "node", "n1")
	assert.Equal(t, "hazelcast.test,node=n1", scope.String())

	// the same field name always returns the same bound metric
	assert.Same(t, scope.NewCounter("completed"), scope.NewCounter("completed"))
	assert.Same(t, scope.NewGauge("pending"), scope.NewGauge("pending"))

	sub := scope.Scope("worker", "id", "0")
	assert.Equal(t, "hazelcast.test.worker,id=0,node=n1", sub.String())

	assert.Panics(t, func() {
		NewScope("broken", "odd")
	})
}

func TestCounter(t *testing.T) {
	c := NewScope("hazelcast.test").NewCounter("completed")
	c.Incr()
	c.Add(4)
	assert.Equal(t, float64(5), c.Get())

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Incr()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, float64(1005), c.Get())
}

func TestGauge(t *testing.T) {
	g := NewScope("hazelcast.test").NewGauge("pending")
	g.Update(10)
	g.Incr()
	g.Decr()
	g.Add(5)
	g.Sub(3)
	assert.Equal(t, float64(12), g.Get())
}

func TestHistogram(t *testing.T) {
	h := NewHistogram()
	h.UpdateDuration(10 * time.Millisecond)
	h.UpdateSince(time.Now().Add(-20 * time.Millisecond))
	h.UpdateSeconds(0.1)
	h.UpdateMilliseconds(-1) // ignored, non-negative values only
	assert.Equal(t, float64(3), h.TotalCount())
	assert.InDelta(t, 130, h.TotalSum(), 10)

	h.Update(func() {})
	assert.Equal(t, float64(4), h.TotalCount())

	h = NewHistogram().WithLinearBuckets(time.Millisecond, 10*time.Millisecond, 10)
	h.UpdateMilliseconds(5)
	assert.Equal(t, float64(1), h.TotalCount())
}

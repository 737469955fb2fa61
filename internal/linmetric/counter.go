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
	"go.uber.org/atomic"
)

// BoundCounter is a counter which has been Bound to a certain metric
// with field-name and metrics, counter only grows.
type BoundCounter struct {
	value     atomic.Float64
	fieldName string
}

func newCounter(fieldName string) *BoundCounter {
	return &BoundCounter{
		fieldName: fieldName,
		value:     *atomic.NewFloat64(0),
	}
}

// Incr increments the counter by 1.
func (c *BoundCounter) Incr() {
	c.value.Add(1)
}

// Add adds v to the counter.
func (c *BoundCounter) Add(v float64) {
	c.value.Add(v)
}

// Get returns the current counter value.
func (c *BoundCounter) Get() float64 {
	return c.value.Load()
}

func (c *BoundCounter) name() string { return c.fieldName }

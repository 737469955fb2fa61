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
	"sort"
	"strings"
	"sync"
)

// Scope binds a metric name plus a fixed tag set,
// all fields created from the same scope share them.
type Scope struct {
	metricName string
	tags       map[string]string

	mu       sync.Mutex
	counters map[string]*BoundCounter
	gauges   map[string]*BoundGauge
}

// NewScope creates a metric scope by given metric name and optional tag pairs,
// panics when tag pairs are not even.
func NewScope(metricName string, tagPairs ...string) *Scope {
	if len(tagPairs)%2 != 0 {
		panic("linmetric: tag pairs of scope must be even")
	}
	tags := make(map[string]string, len(tagPairs)/2)
	for i := 0; i < len(tagPairs); i += 2 {
		tags[tagPairs[i]] = tagPairs[i+1]
	}
	return &Scope{
		metricName: metricName,
		tags:       tags,
		counters:   make(map[string]*BoundCounter),
		gauges:     make(map[string]*BoundGauge),
	}
}

// Scope creates a sub scope with the parent's tags inherited.
func (s *Scope) Scope(subName string, tagPairs ...string) *Scope {
	if len(tagPairs)%2 != 0 {
		panic("linmetric: tag pairs of scope must be even")
	}
	sub := NewScope(s.metricName+"."+subName, tagPairs...)
	for k, v := range s.tags {
		if _, ok := sub.tags[k]; !ok {
			sub.tags[k] = v
		}
	}
	return sub
}

// NewCounter returns a bound counter of this scope,
// the same field name always returns the same counter.
func (s *Scope) NewCounter(fieldName string) *BoundCounter {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.counters[fieldName]; ok {
		return c
	}
	c := newCounter(fieldName)
	s.counters[fieldName] = c
	return c
}

// NewGauge returns a bound gauge of this scope.
func (s *Scope) NewGauge(fieldName string) *BoundGauge {
	s.mu.Lock()
	defer s.mu.Unlock()

	if g, ok := s.gauges[fieldName]; ok {
		return g
	}
	g := newGauge(fieldName)
	s.gauges[fieldName] = g
	return g
}

// NewHistogram returns a new delta histogram of this scope.
func (s *Scope) NewHistogram() *BoundHistogram {
	return NewHistogram()
}

// String returns the identifier of this scope for debugging.
func (s *Scope) String() string {
	if len(s.tags) == 0 {
		return s.metricName
	}
	keys := make([]string, 0, len(s.tags))
	for k := range s.tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var builder strings.Builder
	builder.WriteString(s.metricName)
	for _, k := range keys {
		builder.WriteString(",")
		builder.WriteString(k)
		builder.WriteString("=")
		builder.WriteString(s.tags[k])
	}
	return builder.String()
}

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

	"github.com/petermattis/goid"
)

// ThreadKind represents the scheduling identity kind of a goroutine.
type ThreadKind int

const (
	// ThreadOther marks a goroutine owned by neither the engine nor the network layer.
	ThreadOther ThreadKind = iota
	// ThreadIO marks a network reactor goroutine, banned from inline execution.
	ThreadIO
	// ThreadPartition marks a partition operation worker.
	ThreadPartition
	// ThreadGeneric marks a generic operation worker.
	ThreadGeneric
	// ThreadResponse marks the response worker.
	ThreadResponse
)

// String returns the string value of ThreadKind.
func (k ThreadKind) String() string {
	val := "other"
	switch k {
	case ThreadIO:
		val = "io"
	case ThreadPartition:
		val = "partition"
	case ThreadGeneric:
		val = "generic"
	case ThreadResponse:
		val = "response"
	}
	return val
}

// Thread describes the scheduling identity of a goroutine,
// installed by a worker at goroutine start, removed at goroutine exit.
type Thread struct {
	Name  string
	Kind  ThreadKind
	Index int
}

// threads maps goroutine id to its Thread descriptor.
var threads sync.Map

// bindThread installs the descriptor for the calling goroutine.
func bindThread(t Thread) {
	threads.Store(goid.Get(), t)
}

// unbindThread removes the descriptor of the calling goroutine.
func unbindThread() {
	threads.Delete(goid.Get())
}

// CurrentThread returns the descriptor of the calling goroutine,
// goroutines without a descriptor are ThreadOther.
func CurrentThread() Thread {
	if v, ok := threads.Load(goid.Get()); ok {
		return v.(Thread)
	}
	return Thread{Kind: ThreadOther, Index: -1}
}

// BindIOThread marks the calling goroutine as a network IO thread,
// IO threads may neither run nor invoke operations, so a slow operation
// can never block the network reactor.
func BindIOThread() {
	bindThread(Thread{Kind: ThreadIO, Index: -1, Name: "io"})
}

// UnbindIOThread removes the IO mark from the calling goroutine.
func UnbindIOThread() {
	unbindThread()
}

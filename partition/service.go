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

package partition

import (
	"github.com/cespare/xxhash/v2"
)

//go:generate mockgen -source=./service.go -destination=./service_mock.go -package=partition

// Service maps keys of the keyspace to partition ids,
// a client serializing calls per key gets per-key execution order
// because the key always hashes to the same partition id.
type Service interface {
	// PartitionCount returns the fixed number of partitions.
	PartitionCount() int
	// PartitionID returns the partition id owning the given key, in [0, PartitionCount).
	PartitionID(key []byte) int
}

// service implements Service interface.
type service struct {
	count uint64
}

// NewService creates a partition service with the given fixed partition count.
func NewService(partitionCount int) Service {
	if partitionCount <= 0 {
		partitionCount = 1
	}
	return &service{count: uint64(partitionCount)}
}

// PartitionCount returns the fixed number of partitions.
func (s *service) PartitionCount() int {
	return int(s.count)
}

// PartitionID returns the partition id owning the given key.
func (s *service) PartitionID(key []byte) int {
	return int(xxhash.Sum64(key) % s.count)
}

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

package config

import (
	"fmt"
	"runtime"
	"time"

	"github.com/lindb/common/pkg/ltoml"
)

// defaultPartitionCount is the fixed number of partitions when not configured.
const defaultPartitionCount = 271

// OperationEngine represents the operation engine configuration.
type OperationEngine struct {
	PartitionThreadCount int            `env:"PARTITION_OPERATION_THREAD_COUNT" toml:"partition-operation-thread-count"`
	GenericThreadCount   int            `env:"GENERIC_OPERATION_THREAD_COUNT" toml:"generic-operation-thread-count"`
	PartitionCount       int            `env:"PARTITION_COUNT" toml:"partition-count"`
	ShutdownTimeout      ltoml.Duration `env:"SHUTDOWN_TIMEOUT" toml:"shutdown-timeout"`
}

// PartitionThreads returns the partition worker count, applying the default when unset.
func (oe *OperationEngine) PartitionThreads() int {
	if oe.PartitionThreadCount <= 0 {
		return max(2, runtime.GOMAXPROCS(-1))
	}
	return oe.PartitionThreadCount
}

// GenericThreads returns the generic worker count, applying the default when unset.
func (oe *OperationEngine) GenericThreads() int {
	if oe.GenericThreadCount <= 0 {
		return max(2, runtime.GOMAXPROCS(-1)/2)
	}
	return oe.GenericThreadCount
}

// Partitions returns the number of partitions, applying the default when unset.
func (oe *OperationEngine) Partitions() int {
	if oe.PartitionCount <= 0 {
		return defaultPartitionCount
	}
	return oe.PartitionCount
}

// JoinTimeout returns the per-worker shutdown await bound, applying the default when unset.
func (oe *OperationEngine) JoinTimeout() time.Duration {
	if oe.ShutdownTimeout <= 0 {
		return 3 * time.Second
	}
	return oe.ShutdownTimeout.Duration()
}

// TOML returns OperationEngine's toml config string.
func (oe *OperationEngine) TOML() string {
	return fmt.Sprintf(`
## Operation engine related configuration.
[operation]
## Number of partition operation workers,
## work of one partition is always serialized on one fixed worker.
## A value <= 0 means max(2, number of cores).
## Default: %d
## Env: HZ_OPERATION_PARTITION_OPERATION_THREAD_COUNT
partition-operation-thread-count = %d
## Number of generic operation workers sharing one pair of queues.
## A value <= 0 means max(2, number of cores/2).
## Default: %d
## Env: HZ_OPERATION_GENERIC_OPERATION_THREAD_COUNT
generic-operation-thread-count = %d
## Fixed number of partitions of the keyspace.
## Default: %d
## Env: HZ_OPERATION_PARTITION_COUNT
partition-count = %d
## Per-worker await bound during engine shutdown.
## Default: %s
## Env: HZ_OPERATION_SHUTDOWN_TIMEOUT
shutdown-timeout = "%s"`,
		oe.PartitionThreadCount,
		oe.PartitionThreadCount,
		oe.GenericThreadCount,
		oe.GenericThreadCount,
		oe.PartitionCount,
		oe.PartitionCount,
		oe.ShutdownTimeout.String(),
		oe.ShutdownTimeout.String(),
	)
}

// NewDefaultOperationEngine returns a new default OperationEngine config.
func NewDefaultOperationEngine() *OperationEngine {
	return &OperationEngine{
		PartitionThreadCount: max(2, runtime.GOMAXPROCS(-1)),
		GenericThreadCount:   max(2, runtime.GOMAXPROCS(-1)/2),
		PartitionCount:       defaultPartitionCount,
		ShutdownTimeout:      ltoml.Duration(3 * time.Second),
	}
}

// checkOperationEngineCfg checks operation engine config, fixing unset values.
func checkOperationEngineCfg(cfg *OperationEngine) error {
	defaultCfg := NewDefaultOperationEngine()
	if cfg.PartitionThreadCount <= 0 {
		cfg.PartitionThreadCount = defaultCfg.PartitionThreadCount
	}
	if cfg.GenericThreadCount <= 0 {
		cfg.GenericThreadCount = defaultCfg.GenericThreadCount
	}
	if cfg.PartitionCount <= 0 {
		cfg.PartitionCount = defaultCfg.PartitionCount
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultCfg.ShutdownTimeout
	}
	return nil
}

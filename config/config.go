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

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v7"

	"github.com/lindb/common/pkg/fileutil"
	"github.com/lindb/common/pkg/logger"
)

// for testing
var (
	existFunc = fileutil.Exist
)

// Node represents the configuration of one data grid node.
type Node struct {
	Name      string          `env:"HZ_NODE_NAME" toml:"name"`
	Logging   logger.Setting  `envPrefix:"HZ_LOGGING_" toml:"logging"`
	Operation OperationEngine `envPrefix:"HZ_OPERATION_" toml:"operation"`
}

// TOML returns node's configuration string as toml format.
func (n *Node) TOML() string {
	return fmt.Sprintf(`## Node name used as worker name and metric tag prefix.
## Default: %s
## Env: HZ_NODE_NAME
name = "%s"
%s
%s`,
		n.Name,
		n.Name,
		n.Operation.TOML(),
		n.Logging.TOML("HZ"),
	)
}

// NewDefaultNode returns a new default node config.
func NewDefaultNode() *Node {
	return &Node{
		Name:      "hazelcast",
		Operation: *NewDefaultOperationEngine(),
	}
}

// NewDefaultNodeTOML creates node's default toml config.
func NewDefaultNodeTOML() string {
	node := NewDefaultNode()
	return fmt.Sprintf(`## Node name used as worker name and metric tag prefix.
## Default: %s
## Env: HZ_NODE_NAME
name = "%s"
%s
%s`,
		node.Name,
		node.Name,
		node.Operation.TOML(),
		logger.NewDefaultSetting().TOML("HZ"),
	)
}

// LoadConfig loads the node config from the toml file if the path is given,
// then applies the env var overrides.
func LoadConfig(path string, node *Node) error {
	if path != "" {
		if !existFunc(path) {
			return fmt.Errorf("config file not exist: %s", path)
		}
		if _, err := toml.DecodeFile(path, node); err != nil {
			return fmt.Errorf("decode config file failure: %w", err)
		}
	}
	if err := env.Parse(node); err != nil {
		return fmt.Errorf("read config from env failure: %w", err)
	}
	return checkNodeCfg(node)
}

// checkNodeCfg checks node config, fixing unset values.
func checkNodeCfg(node *Node) error {
	if node.Name == "" {
		node.Name = "hazelcast"
	}
	return checkOperationEngineCfg(&node.Operation)
}

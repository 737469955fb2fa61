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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPacket_Flags(t *testing.T) {
	p := NewOperationPacket(7, []byte("payload"), false)
	assert.True(t, p.IsOperation())
	assert.False(t, p.IsResponse())
	assert.False(t, p.IsUrgent())
	assert.Equal(t, 7, p.PartitionID())
	assert.Equal(t, []byte("payload"), p.Payload())

	p = NewOperationPacket(-1, nil, true)
	assert.True(t, p.IsOperation())
	assert.True(t, p.IsUrgent())
	assert.Equal(t, -1, p.PartitionID())

	p = NewResponsePacket(3, nil, true)
	assert.True(t, p.IsOperation())
	assert.True(t, p.IsResponse())
	assert.True(t, p.IsUrgent())

	p = NewPacket(FlagResponse, 0, nil)
	assert.False(t, p.IsOperation())
	assert.True(t, p.IsResponse())
	assert.Equal(t, FlagResponse, p.Flags())
}

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

// Packet header flag bits set by the network layer.
const (
	// FlagOperation marks a packet carrying operation traffic,
	// the engine only accepts packets with this flag set.
	FlagOperation uint16 = 1 << 0
	// FlagResponse marks a response packet routed to the response worker
	// regardless of its partition id.
	FlagResponse uint16 = 1 << 1
	// FlagUrgent marks a packet that must jump ahead of normal traffic.
	FlagUrgent uint16 = 1 << 2
)

// Packet is the wire envelope of an operation or a response,
// the payload stays opaque until a handler decodes it.
type Packet struct {
	payload     []byte
	partitionID int
	flags       uint16
}

// NewPacket creates a packet with raw header flags, used by the network layer.
func NewPacket(flags uint16, partitionID int, payload []byte) *Packet {
	return &Packet{
		flags:       flags,
		partitionID: partitionID,
		payload:     payload,
	}
}

// NewOperationPacket creates an inbound operation packet.
func NewOperationPacket(partitionID int, payload []byte, urgent bool) *Packet {
	flags := FlagOperation
	if urgent {
		flags |= FlagUrgent
	}
	return NewPacket(flags, partitionID, payload)
}

// NewResponsePacket creates an inbound response packet.
func NewResponsePacket(partitionID int, payload []byte, urgent bool) *Packet {
	flags := FlagOperation | FlagResponse
	if urgent {
		flags |= FlagUrgent
	}
	return NewPacket(flags, partitionID, payload)
}

// PartitionID returns the partition the packet is bound to, < 0 means unsharded.
func (p *Packet) PartitionID() int { return p.partitionID }

// IsUrgent returns true when the urgent flag is set.
func (p *Packet) IsUrgent() bool { return p.flags&FlagUrgent != 0 }

// IsOperation returns true when the operation flag is set.
func (p *Packet) IsOperation() bool { return p.flags&FlagOperation != 0 }

// IsResponse returns true when the response flag is set.
func (p *Packet) IsResponse() bool { return p.flags&FlagResponse != 0 }

// Flags returns the raw header flags.
func (p *Packet) Flags() uint16 { return p.flags }

// Payload returns the opaque handler-visible payload.
func (p *Packet) Payload() []byte { return p.payload }

// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package common

import (
	"encoding/binary"
	"fmt"
)

// MaxTopics is the maximum number of topics a log may be tagged with.
const MaxTopics = 4

// Log summarizes an event emitted by the ledger. It approximates ethereum's
// definition of a log: the first topic identifies the event, further topics
// carry the indexed event fields and Data the ABI encoded remainder.
type Log struct {
	// -- payload --
	// Address of the ledger that emitted the event.
	Address Address
	// List of topics the log message is tagged by.
	Topics []Hash
	// The ABI encoded non-indexed fields.
	Data []byte

	// -- metadata --
	// Position of the log in the ledger's append-only log sequence.
	Index uint64
}

// Copy creates a deep copy of the log. Logs handed out by backends are always
// copies, so callers can not modify stored logs.
func (l *Log) Copy() *Log {
	res := &Log{
		Address: l.Address,
		Index:   l.Index,
	}
	if l.Topics != nil {
		res.Topics = make([]Hash, len(l.Topics))
		copy(res.Topics, l.Topics)
	}
	if l.Data != nil {
		res.Data = make([]byte, len(l.Data))
		copy(res.Data, l.Data)
	}
	return res
}

// Topic returns the topic at the given position or false if the log has no
// such topic.
func (l *Log) Topic(i int) (Hash, bool) {
	if i < 0 || i >= len(l.Topics) {
		return Hash{}, false
	}
	return l.Topics[i], true
}

// ToBytes serializes the payload of the log. The index is not part of the
// encoding; it is implied by the position the log is stored at.
//
// Layout: address (20) | #topics (1) | topics (32 each) | data
func (l *Log) ToBytes() []byte {
	res := make([]byte, 0, AddressSize+1+len(l.Topics)*HashSize+len(l.Data))
	res = append(res, l.Address[:]...)
	res = append(res, byte(len(l.Topics)))
	for _, topic := range l.Topics {
		res = append(res, topic[:]...)
	}
	return append(res, l.Data...)
}

// LogFromBytes parses a log produced by ToBytes and tags it with the given index.
func LogFromBytes(index uint64, data []byte) (*Log, error) {
	if len(data) < AddressSize+1 {
		return nil, fmt.Errorf("invalid log encoding, too short: %d bytes", len(data))
	}
	res := &Log{Index: index}
	copy(res.Address[:], data)
	numTopics := int(data[AddressSize])
	if numTopics > MaxTopics {
		return nil, fmt.Errorf("invalid log encoding, too many topics: %d", numTopics)
	}
	rest := data[AddressSize+1:]
	if len(rest) < numTopics*HashSize {
		return nil, fmt.Errorf("invalid log encoding, truncated topics")
	}
	res.Topics = make([]Hash, numTopics)
	for i := range res.Topics {
		copy(res.Topics[i][:], rest[i*HashSize:])
	}
	res.Data = append([]byte{}, rest[numTopics*HashSize:]...)
	return res, nil
}

// IndexToBytes encodes a log index in big-endian order.
func IndexToBytes(index uint64) []byte {
	return binary.BigEndian.AppendUint64(nil, index)
}

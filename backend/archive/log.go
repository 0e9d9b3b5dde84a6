// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package archive

import (
	"github.com/Fantom-foundation/Donation/common"
)

// LogFilter selects logs by exact topic values. Topics[i] lists the admissible
// values of the i-th topic; an empty or nil list matches any value, including
// logs that have no i-th topic.
type LogFilter struct {
	Addresses []common.Address                // one-of those addresses, empty or nil = any address
	Topics    [common.MaxTopics][]common.Hash // filter for topics, empty or nil = any topic
}

// Match checks whether the given log satisfies the filter.
func (f *LogFilter) Match(log *common.Log) bool {
	// Check the address (if constraint).
	if len(f.Addresses) > 0 {
		found := false
		for i := 0; !found && i < len(f.Addresses); i++ {
			found = f.Addresses[i] == log.Address
		}
		if !found {
			return false
		}
	}

	// Check the topic pattern.
	for i := 0; i < common.MaxTopics; i++ {
		if len(f.Topics[i]) == 0 {
			continue
		}
		topic, exists := log.Topic(i)
		if !exists {
			return false
		}
		found := false
		for j := 0; !found && j < len(f.Topics[i]); j++ {
			found = f.Topics[i][j] == topic
		}
		if !found {
			return false
		}
	}
	return true
}

// indexedPosition returns the topic position used for an index lookup, or -1
// if no topic is constrained. The highest constrained position is preferred
// since topic 0 is the event signature shared by all logs of an event kind.
func (f *LogFilter) indexedPosition() int {
	for i := common.MaxTopics - 1; i >= 0; i-- {
		if len(f.Topics[i]) > 0 {
			return i
		}
	}
	return -1
}

// TopicKey is the key of the topic index: a topic value at a given position.
type TopicKey struct {
	Position byte
	Topic    common.Hash
}

// TopicKeySerializer is a Serializer of the TopicKey type
type TopicKeySerializer struct{}

func (a TopicKeySerializer) ToBytes(key TopicKey) []byte {
	res := make([]byte, 1+common.HashSize)
	a.CopyBytes(key, res)
	return res
}
func (a TopicKeySerializer) CopyBytes(key TopicKey, out []byte) {
	out[0] = key.Position
	copy(out[1:], key.Topic[:])
}
func (a TopicKeySerializer) FromBytes(bytes []byte) TopicKey {
	var key TopicKey
	key.Position = bytes[0]
	copy(key.Topic[:], bytes[1:])
	return key
}
func (a TopicKeySerializer) Size() int {
	return 1 + common.HashSize
}

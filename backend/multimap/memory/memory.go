// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package memory

import (
	"sort"

	"github.com/Fantom-foundation/Donation/common"
)

// MultiMap is an in-memory multimap.MultiMap implementation - it maps keys to sorted sets of values.
type MultiMap[K comparable, V common.Identifier] struct {
	data map[K][]V
}

// NewMultiMap creates a new instance of an empty MultiMap.
func NewMultiMap[K comparable, V common.Identifier]() *MultiMap[K, V] {
	return &MultiMap[K, V]{
		data: make(map[K][]V),
	}
}

// Add adds the given key/value pair.
func (m *MultiMap[K, V]) Add(key K, value V) error {
	values := m.data[key]
	// values are usually added in ascending order
	if len(values) == 0 || values[len(values)-1] < value {
		m.data[key] = append(values, value)
		return nil
	}
	pos := sort.Search(len(values), func(i int) bool { return values[i] >= value })
	if values[pos] == value {
		return nil
	}
	values = append(values, 0)
	copy(values[pos+1:], values[pos:])
	values[pos] = value
	m.data[key] = values
	return nil
}

// ForEach applies the given operation on each value associated to the given key.
func (m *MultiMap[K, V]) ForEach(key K, callback func(V)) error {
	for _, value := range m.data[key] {
		callback(value)
	}
	return nil
}

func (m *MultiMap[K, V]) Flush() error {
	return nil
}

func (m *MultiMap[K, V]) Close() error {
	return nil
}

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

// Store is an in-memory store.Store implementation backed by a map.
type Store[K comparable, V any] struct {
	data map[K]V
}

// NewStore creates an empty in-memory store.
func NewStore[K comparable, V any]() *Store[K, V] {
	return &Store[K, V]{
		data: map[K]V{},
	}
}

func (m *Store[K, V]) Set(key K, value V) error {
	m.data[key] = value
	return nil
}

func (m *Store[K, V]) Get(key K) (V, error) {
	return m.data[key], nil
}

func (m *Store[K, V]) Flush() error {
	return nil // no-op for in-memory database
}

func (m *Store[K, V]) Close() error {
	return nil // no-op for in-memory database
}

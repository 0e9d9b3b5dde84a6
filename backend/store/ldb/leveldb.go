// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package ldb

import (
	"errors"

	"github.com/Fantom-foundation/Donation/backend"
	"github.com/Fantom-foundation/Donation/backend/store"
	"github.com/Fantom-foundation/Donation/common"
	"github.com/syndtr/goleveldb/leveldb"
)

// Store is a LevelDB backed store.Store implementation. The store is a thin
// view on a database, a snapshot or a transaction; it owns no resources. If
// the underlying view is read-only, Set fails with store.ErrReadOnly.
type Store[K comparable, V any] struct {
	db              backend.LevelDBReader
	table           backend.TableSpace
	keySerializer   common.Serializer[K]
	valueSerializer common.Serializer[V]
}

// NewStore constructs a new store view on the given database.
func NewStore[K comparable, V any](
	db backend.LevelDBReader,
	table backend.TableSpace,
	keySerializer common.Serializer[K],
	valueSerializer common.Serializer[V],
) *Store[K, V] {
	return &Store[K, V]{
		db:              db,
		table:           table,
		keySerializer:   keySerializer,
		valueSerializer: valueSerializer,
	}
}

func (m *Store[K, V]) Set(key K, value V) error {
	writer, ok := m.db.(backend.LevelDBWriter)
	if !ok {
		return store.ErrReadOnly
	}
	return writer.Put(m.convertKey(key), m.valueSerializer.ToBytes(value), nil)
}

func (m *Store[K, V]) Get(key K) (V, error) {
	var res V
	value, err := m.db.Get(m.convertKey(key), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return res, nil
	}
	if err != nil {
		return res, err
	}
	return m.valueSerializer.FromBytes(value), nil
}

// convertKey prepends the table space to the serialized key.
func (m *Store[K, V]) convertKey(key K) []byte {
	return m.table.ToDBKey(m.keySerializer.ToBytes(key))
}

func (m *Store[K, V]) Flush() error {
	return nil // the owner of the database is responsible for flushing
}

func (m *Store[K, V]) Close() error {
	return nil // the owner of the database is responsible for closing
}

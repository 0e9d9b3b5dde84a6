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
	"github.com/Fantom-foundation/Donation/backend"
	"github.com/Fantom-foundation/Donation/backend/store"
	"github.com/Fantom-foundation/Donation/common"
)

// MultiMap is a LevelDB multimap.MultiMap implementation. Each key/value pair
// is a single database key composed of table space, key and value, with an
// empty database value. Serializers for values must be order preserving.
type MultiMap[K comparable, V common.Identifier] struct {
	db              backend.LevelDBReader
	table           backend.TableSpace
	keySerializer   common.Serializer[K]
	valueSerializer common.Serializer[V]
}

func NewMultiMap[K comparable, V common.Identifier](
	db backend.LevelDBReader,
	table backend.TableSpace,
	keySerializer common.Serializer[K],
	valueSerializer common.Serializer[V],
) *MultiMap[K, V] {
	return &MultiMap[K, V]{
		db:              db,
		table:           table,
		keySerializer:   keySerializer,
		valueSerializer: valueSerializer,
	}
}

// Add adds the given key/value pair.
func (m *MultiMap[K, V]) Add(key K, value V) error {
	writer, ok := m.db.(backend.LevelDBWriter)
	if !ok {
		return store.ErrReadOnly
	}
	keySize := m.keySerializer.Size()
	dbKey := make([]byte, 1+keySize+m.valueSerializer.Size())
	dbKey[0] = byte(m.table)
	m.keySerializer.CopyBytes(key, dbKey[1:1+keySize])
	m.valueSerializer.CopyBytes(value, dbKey[1+keySize:])
	return writer.Put(dbKey, []byte{}, nil)
}

// ForEach applies the given operation on each value associated to the given key.
func (m *MultiMap[K, V]) ForEach(key K, callback func(V)) error {
	iter := m.db.NewIterator(m.table.Prefix(m.keySerializer.ToBytes(key)), nil)
	defer iter.Release()

	offset := 1 + m.keySerializer.Size()
	for iter.Next() {
		callback(m.valueSerializer.FromBytes(iter.Key()[offset:]))
	}
	return iter.Error()
}

func (m *MultiMap[K, V]) Flush() error {
	return nil // no-op for ldb database
}

func (m *MultiMap[K, V]) Close() error {
	return nil // no-op for ldb database
}

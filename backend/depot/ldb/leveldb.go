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

// Depot is a LevelDB backed depot.Depot implementation. Like the LevelDB
// store it is a view on a database, snapshot, or transaction.
type Depot[I common.Identifier] struct {
	db              backend.LevelDBReader
	table           backend.TableSpace
	indexSerializer common.Serializer[I]
}

// NewDepot constructs a new depot view on the given database. The index
// serializer must preserve the numeric order in its byte representation.
func NewDepot[I common.Identifier](
	db backend.LevelDBReader,
	table backend.TableSpace,
	indexSerializer common.Serializer[I],
) *Depot[I] {
	return &Depot[I]{
		db:              db,
		table:           table,
		indexSerializer: indexSerializer,
	}
}

func (m *Depot[I]) Set(id I, value []byte) error {
	writer, ok := m.db.(backend.LevelDBWriter)
	if !ok {
		return store.ErrReadOnly
	}
	if value == nil {
		value = []byte{}
	}
	return writer.Put(m.convertKey(id), value, nil)
}

func (m *Depot[I]) Get(id I) ([]byte, error) {
	value, err := m.db.Get(m.convertKey(id), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, nil
	}
	return value, err
}

// Size locates the last key of the depot's table space.
func (m *Depot[I]) Size() (I, error) {
	iter := m.db.NewIterator(m.table.Prefix(nil), nil)
	defer iter.Release()
	if !iter.Last() {
		return 0, iter.Error()
	}
	last := m.indexSerializer.FromBytes(iter.Key()[1:])
	return last + 1, iter.Error()
}

// convertKey prepends the table space to the serialized index.
func (m *Depot[I]) convertKey(id I) []byte {
	return m.table.ToDBKey(m.indexSerializer.ToBytes(id))
}

func (m *Depot[I]) Flush() error {
	return nil // the owner of the database is responsible for flushing
}

func (m *Depot[I]) Close() error {
	return nil // the owner of the database is responsible for closing
}

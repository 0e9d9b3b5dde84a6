// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package gostate

import (
	"github.com/Fantom-foundation/Donation/backend"
	"github.com/Fantom-foundation/Donation/backend/archive"
	"github.com/Fantom-foundation/Donation/common"
	"github.com/Fantom-foundation/Donation/common/amount"

	depotldb "github.com/Fantom-foundation/Donation/backend/depot/ldb"
	depotmem "github.com/Fantom-foundation/Donation/backend/depot/memory"
	mapldb "github.com/Fantom-foundation/Donation/backend/multimap/ldb"
	mapmem "github.com/Fantom-foundation/Donation/backend/multimap/memory"
	storeldb "github.com/Fantom-foundation/Donation/backend/store/ldb"
	storemem "github.com/Fantom-foundation/Donation/backend/store/memory"
)

// memoryStorage keeps all tables in maps and slices. Operations on the
// in-memory tables cannot fail for updates passing Update.Check, so writes
// are applied in place.
type memoryStorage struct {
	tables tables
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{
		tables: tables{
			balances: storemem.NewStore[common.Address, amount.Amount](),
			metadata: storemem.NewStore[uint64, common.Address](),
			logs: archive.NewArchive(
				depotmem.NewDepot[uint64](),
				mapmem.NewMultiMap[archive.TopicKey, uint64](),
			),
		},
	}
}

func (m *memoryStorage) read(op func(*tables) error) error {
	return op(&m.tables)
}

func (m *memoryStorage) write(op func(*tables) error) error {
	return op(&m.tables)
}

func (m *memoryStorage) Flush() error {
	return nil // no-op for in-memory database
}

func (m *memoryStorage) Close() error {
	return nil // no-op for in-memory database
}

// ldbStorage places all tables in one LevelDB instance, each in its own
// table space. Reads operate on snapshots, writes on transactions.
type ldbStorage struct {
	db backend.LevelDB
}

// tablesOn creates views of all tables on the given database, snapshot or transaction.
func tablesOn(db backend.LevelDBReader) *tables {
	return &tables{
		balances: storeldb.NewStore[common.Address, amount.Amount](db, backend.BalanceStoreKey, common.AddressSerializer{}, common.AmountSerializer{}),
		metadata: storeldb.NewStore[uint64, common.Address](db, backend.MetadataKey, common.Identifier64Serializer{}, common.AddressSerializer{}),
		logs: archive.NewArchive(
			depotldb.NewDepot[uint64](db, backend.LogDepotKey, common.Identifier64Serializer{}),
			mapldb.NewMultiMap[archive.TopicKey, uint64](db, backend.TopicMultiMapKey, archive.TopicKeySerializer{}, common.Identifier64Serializer{}),
		),
	}
}

func (m *ldbStorage) read(op func(*tables) error) error {
	snapshot, err := m.db.GetSnapshot()
	if err != nil {
		return err
	}
	defer snapshot.Release()
	return op(tablesOn(snapshot))
}

func (m *ldbStorage) write(op func(*tables) error) error {
	tx, err := m.db.OpenTransaction()
	if err != nil {
		return err
	}
	if err := op(tablesOn(tx)); err != nil {
		tx.Discard()
		return err
	}
	return tx.Commit()
}

func (m *ldbStorage) Flush() error {
	return nil // committed transactions are already persisted
}

func (m *ldbStorage) Close() error {
	return m.db.Close()
}

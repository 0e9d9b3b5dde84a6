// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package backend

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// TableSpace partitions the key space of a single LevelDB instance. Every
// key written by a backend data structure is prefixed by its table space.
type TableSpace byte

const (
	// BalanceStoreKey is a tablespace for account balances
	BalanceStoreKey TableSpace = 'B'
	// LogDepotKey is a tablespace for encoded logs, addressed by log index
	LogDepotKey TableSpace = 'L'
	// TopicMultiMapKey is a tablespace for the topic -> log index multimap
	TopicMultiMapKey TableSpace = 'T'
	// MetadataKey is a tablespace for single-valued ledger properties
	MetadataKey TableSpace = 'M'
)

// ToDBKey prefixes the given key with the table space.
func (t TableSpace) ToDBKey(key []byte) []byte {
	res := make([]byte, 0, len(key)+1)
	res = append(res, byte(t))
	return append(res, key...)
}

// Prefix returns the range covering all keys of the table space that start
// with the given key prefix.
func (t TableSpace) Prefix(prefix []byte) *util.Range {
	return util.BytesPrefix(t.ToDBKey(prefix))
}

// LevelDBReader is the read-only subset of LevelDB operations. It is
// implemented by *leveldb.DB, *leveldb.Snapshot and *leveldb.Transaction.
type LevelDBReader interface {
	// Get gets the value for the given key. It returns leveldb.ErrNotFound
	// if the DB does not contain the key.
	Get(key []byte, ro *opt.ReadOptions) (value []byte, err error)

	// Has returns true if the DB does contain the given key.
	Has(key []byte, ro *opt.ReadOptions) (bool, error)

	// NewIterator returns an iterator over the given key range. The
	// iterator must be released after use.
	NewIterator(slice *util.Range, ro *opt.ReadOptions) iterator.Iterator
}

// LevelDBWriter extends the reader by modifying operations. It is
// implemented by *leveldb.DB and *leveldb.Transaction.
type LevelDBWriter interface {
	LevelDBReader

	// Put sets the value for the given key, overwriting previous values.
	Put(key, value []byte, wo *opt.WriteOptions) error

	// Delete deletes the value for the given key.
	Delete(key []byte, wo *opt.WriteOptions) error
}

// LevelDB is the full database handle used by persistent backends.
type LevelDB interface {
	LevelDBWriter

	// GetSnapshot returns a frozen, consistent view of the database. The
	// snapshot must be released after use.
	GetSnapshot() (*leveldb.Snapshot, error)

	// OpenTransaction opens an exclusive write transaction. Changes become
	// visible to readers on Commit, all at once, or not at all on Discard.
	OpenTransaction() (*leveldb.Transaction, error)

	Close() error
}

// OpenLevelDb opens or creates the LevelDB instance in the given directory.
func OpenLevelDb(path string, options *opt.Options) (LevelDB, error) {
	db, err := leveldb.OpenFile(path, options)
	if err != nil {
		return nil, err
	}
	return db, nil
}

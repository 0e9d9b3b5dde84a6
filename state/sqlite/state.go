// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Fantom-foundation/Donation/backend/archive"
	"github.com/Fantom-foundation/Donation/common"
	"github.com/Fantom-foundation/Donation/common/amount"
	"github.com/Fantom-foundation/Donation/state"
	_ "github.com/mattn/go-sqlite3"
)

const VariantSqlite state.Variant = "sql-sqlite"

// FileName is the name of the SQLite database file within the state directory.
const FileName = "ledger.sqlite"

var (
	// See https://www.sqlite.org/pragma.html
	kConfigureConnection = []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA locking_mode = EXCLUSIVE",
	}
)

const (
	kCreateBalanceTable = "CREATE TABLE IF NOT EXISTS balance (account BLOB PRIMARY KEY, value BLOB)"
	kSetBalanceStmt     = "INSERT OR REPLACE INTO balance(account, value) VALUES (?,?)"
	kGetBalanceStmt     = "SELECT value FROM balance WHERE account = ?"

	kCreateMetadataTable = "CREATE TABLE IF NOT EXISTS metadata (slot INT PRIMARY KEY, value BLOB)"
	kSetMetadataStmt     = "INSERT OR REPLACE INTO metadata(slot, value) VALUES (?,?)"
	kGetMetadataStmt     = "SELECT value FROM metadata WHERE slot = ?"

	kCreateLogTable   = "CREATE TABLE IF NOT EXISTS log (idx INT PRIMARY KEY, address BLOB, topic0 BLOB, topic1 BLOB, topic2 BLOB, topic3 BLOB, encoded BLOB)"
	kCreateTopicIndex = "CREATE INDEX IF NOT EXISTS log_topic%[1]d ON log (topic%[1]d, idx)"
	kAddLogStmt       = "INSERT INTO log(idx, address, topic0, topic1, topic2, topic3, encoded) VALUES (?,?,?,?,?,?,?)"
	kGetLogCountStmt  = "SELECT COALESCE(MAX(idx)+1, 0) FROM log"
	kVisitLogsStmt    = "SELECT idx, encoded FROM log WHERE idx >= ? ORDER BY idx"
)

// beneficiarySlot is the metadata slot holding the beneficiary.
const beneficiarySlot = 0

func init() {
	state.RegisterStateFactory(VariantSqlite, NewState)
}

// State is a state.State implementation storing its data in a SQLite database.
// Each Apply is conducted in a single SQL transaction.
type State struct {
	db              *sql.DB
	lock            common.LockFile
	setBalanceStmt  *sql.Stmt
	getBalanceStmt  *sql.Stmt
	setMetadataStmt *sql.Stmt
	getMetadataStmt *sql.Stmt
	addLogStmt      *sql.Stmt
	getLogCountStmt *sql.Stmt
	visitLogsStmt   *sql.Stmt
	mu              sync.RWMutex
	closed          bool
}

// NewState opens or creates a SQLite backed state in the directory of the
// given parameters. The directory is locked while the state is open.
func NewState(params state.Parameters) (state.State, error) {
	if params.Directory == "" {
		return nil, fmt.Errorf("%w: variant %v requires a directory", state.UnsupportedConfiguration, VariantSqlite)
	}
	if err := os.MkdirAll(params.Directory, 0700); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}
	lock, err := common.LockDirectory(params.Directory)
	if err != nil {
		return nil, err
	}
	res, err := open(filepath.Join(params.Directory, FileName))
	if err != nil {
		return nil, errors.Join(err, lock.Release())
	}
	res.lock = lock
	return res, nil
}

func open(file string) (*State, error) {
	db, err := sql.Open("sqlite3", "file:"+file)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite; %w", err)
	}
	// pragmas are set per connection
	db.SetMaxOpenConns(1)

	res, err := setup(db)
	if err != nil {
		return nil, errors.Join(err, db.Close())
	}
	return res, nil
}

func setup(db *sql.DB) (*State, error) {
	for _, cmd := range kConfigureConnection {
		if _, err := db.Exec(cmd); err != nil {
			return nil, fmt.Errorf("failed to configure connection with %s; %w", cmd, err)
		}
	}
	creates := []string{kCreateBalanceTable, kCreateMetadataTable, kCreateLogTable}
	for i := 1; i < common.MaxTopics; i++ {
		creates = append(creates, fmt.Sprintf(kCreateTopicIndex, i))
	}
	for _, cmd := range creates {
		if _, err := db.Exec(cmd); err != nil {
			return nil, fmt.Errorf("failed to create schema with %s; %w", cmd, err)
		}
	}

	res := &State{db: db}
	statements := []struct {
		target **sql.Stmt
		query  string
	}{
		{&res.setBalanceStmt, kSetBalanceStmt},
		{&res.getBalanceStmt, kGetBalanceStmt},
		{&res.setMetadataStmt, kSetMetadataStmt},
		{&res.getMetadataStmt, kGetMetadataStmt},
		{&res.addLogStmt, kAddLogStmt},
		{&res.getLogCountStmt, kGetLogCountStmt},
		{&res.visitLogsStmt, kVisitLogsStmt},
	}
	for _, cur := range statements {
		stmt, err := db.Prepare(cur.query)
		if err != nil {
			return nil, fmt.Errorf("failed to prepare %s; %w", cur.query, err)
		}
		*cur.target = stmt
	}
	return res, nil
}

func (s *State) GetBalance(address common.Address) (amount.Amount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return amount.Amount{}, state.ErrClosed
	}
	var value []byte
	err := s.getBalanceStmt.QueryRow(address[:]).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return amount.New(), nil
	}
	if err != nil {
		return amount.Amount{}, err
	}
	return amount.NewFromBytes(value...), nil
}

func (s *State) GetBeneficiary() (common.Address, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return common.Address{}, state.ErrClosed
	}
	return getBeneficiary(s.getMetadataStmt)
}

func getBeneficiary(stmt *sql.Stmt) (common.Address, error) {
	var res common.Address
	var value []byte
	err := stmt.QueryRow(beneficiarySlot).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return res, nil
	}
	copy(res[:], value)
	return res, err
}

func (s *State) InitBeneficiary(address common.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return state.ErrClosed
	}
	return s.transact(func(tx *sql.Tx) error {
		recorded, err := getBeneficiary(tx.Stmt(s.getMetadataStmt))
		if err != nil {
			return err
		}
		needed, err := state.CheckBeneficiary(recorded, address)
		if err != nil || !needed {
			return err
		}
		_, err = tx.Stmt(s.setMetadataStmt).Exec(beneficiarySlot, address[:])
		return err
	})
}

func (s *State) GetLogCount() (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return 0, state.ErrClosed
	}
	return getLogCount(s.getLogCountStmt)
}

// getLogCount derives the number of logs from the largest index, which is
// served by the primary key. Indexes are dense, starting at zero.
func getLogCount(stmt *sql.Stmt) (uint64, error) {
	var count uint64
	err := stmt.QueryRow().Scan(&count)
	return count, err
}

// GetLogs translates the filter into a query served by the topic indexes.
func (s *State) GetLogs(filter *archive.LogFilter) ([]*common.Log, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, state.ErrClosed
	}

	var conditions []string
	var args []any
	addCondition := func(column string, values [][]byte) {
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(values)), ",")
		conditions = append(conditions, fmt.Sprintf("%s IN (%s)", column, placeholders))
		for _, value := range values {
			args = append(args, value)
		}
	}
	if len(filter.Addresses) > 0 {
		values := make([][]byte, 0, len(filter.Addresses))
		for _, address := range filter.Addresses {
			values = append(values, address[:])
		}
		addCondition("address", values)
	}
	for i, topics := range filter.Topics {
		if len(topics) == 0 {
			continue
		}
		values := make([][]byte, 0, len(topics))
		for _, topic := range topics {
			values = append(values, topic[:])
		}
		addCondition(fmt.Sprintf("topic%d", i), values)
	}

	query := "SELECT idx, encoded FROM log"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY idx"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := []*common.Log{}
	err = scanLogs(rows, func(log *common.Log) bool {
		res = append(res, log)
		return true
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *State) VisitLogs(from uint64, visitor func(*common.Log) bool) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return state.ErrClosed
	}
	rows, err := s.visitLogsStmt.Query(from)
	if err != nil {
		return err
	}
	defer rows.Close()
	return scanLogs(rows, visitor)
}

func scanLogs(rows *sql.Rows, visitor func(*common.Log) bool) error {
	for rows.Next() {
		var index uint64
		var encoded []byte
		if err := rows.Scan(&index, &encoded); err != nil {
			return err
		}
		log, err := common.LogFromBytes(index, encoded)
		if err != nil {
			return err
		}
		if !visitor(log) {
			return nil
		}
	}
	return rows.Err()
}

func (s *State) Apply(update common.Update) error {
	if err := update.Check(); err != nil {
		return fmt.Errorf("invalid update: %w", err)
	}
	if update.IsEmpty() {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return state.ErrClosed
	}
	return s.transact(func(tx *sql.Tx) error {
		stmt := tx.Stmt(s.setBalanceStmt)
		for _, change := range update.Balances {
			value := change.Balance.Bytes32()
			if _, err := stmt.Exec(change.Account[:], value[:]); err != nil {
				return fmt.Errorf("failed to update balance of %v; %w", change.Account, err)
			}
		}

		next, err := getLogCount(tx.Stmt(s.getLogCountStmt))
		if err != nil {
			return err
		}
		stmt = tx.Stmt(s.addLogStmt)
		for _, log := range update.Logs {
			args := []any{next, log.Address[:]}
			for i := 0; i < common.MaxTopics; i++ {
				if topic, exists := log.Topic(i); exists {
					args = append(args, topic[:])
				} else {
					args = append(args, nil)
				}
			}
			args = append(args, log.ToBytes())
			if _, err := stmt.Exec(args...); err != nil {
				return fmt.Errorf("failed to add log %d; %w", next, err)
			}
			log.Index = next
			next++
		}
		return nil
	})
}

// transact runs the given operation in a transaction which is committed if
// the operation succeeds and rolled back otherwise.
func (s *State) transact(op func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(context.Background(), nil)
	if err != nil {
		return err
	}
	if err := op(tx); err != nil {
		return errors.Join(err, tx.Rollback())
	}
	return tx.Commit()
}

func (s *State) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return state.ErrClosed
	}
	_, err := s.db.Exec("PRAGMA wal_checkpoint(FULL)")
	return err
}

func (s *State) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	err := s.db.Close()
	if s.lock != nil {
		err = errors.Join(err, s.lock.Release())
	}
	return err
}

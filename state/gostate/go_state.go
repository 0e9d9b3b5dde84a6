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
	"errors"
	"fmt"
	"sync"

	"github.com/Fantom-foundation/Donation/backend/archive"
	"github.com/Fantom-foundation/Donation/backend/store"
	"github.com/Fantom-foundation/Donation/common"
	"github.com/Fantom-foundation/Donation/common/amount"
	"github.com/Fantom-foundation/Donation/state"
)

// beneficiarySlot is the metadata key under which the beneficiary is kept.
const beneficiarySlot = uint64(0)

// tables bundles the data structures of a state backed by the same storage.
type tables struct {
	balances store.Store[common.Address, amount.Amount]
	metadata store.Store[uint64, common.Address]
	logs     *archive.Archive
}

// storage provides access to the tables of a state. Reads run on a
// consistent view of the data, writes are committed all at once or not at all.
type storage interface {
	read(op func(*tables) error) error
	write(op func(*tables) error) error
	common.FlushAndCloser
}

// GoState is the state implementation of this package. It is parameterized by
// the storage holding its tables.
type GoState struct {
	storage storage
	lock    common.LockFile // nil for in-memory states
	mu      sync.RWMutex
	closed  bool
}

func newGoState(storage storage, lock common.LockFile) *GoState {
	return &GoState{
		storage: storage,
		lock:    lock,
	}
}

func (s *GoState) read(op func(*tables) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return state.ErrClosed
	}
	return s.storage.read(op)
}

func (s *GoState) GetBalance(address common.Address) (balance amount.Amount, err error) {
	err = s.read(func(t *tables) error {
		balance, err = t.balances.Get(address)
		return err
	})
	return balance, err
}

func (s *GoState) GetBeneficiary() (beneficiary common.Address, err error) {
	err = s.read(func(t *tables) error {
		beneficiary, err = t.metadata.Get(beneficiarySlot)
		return err
	})
	return beneficiary, err
}

func (s *GoState) InitBeneficiary(address common.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return state.ErrClosed
	}
	return s.storage.write(func(t *tables) error {
		recorded, err := t.metadata.Get(beneficiarySlot)
		if err != nil {
			return err
		}
		needed, err := state.CheckBeneficiary(recorded, address)
		if err != nil || !needed {
			return err
		}
		return t.metadata.Set(beneficiarySlot, address)
	})
}

func (s *GoState) GetLogCount() (count uint64, err error) {
	err = s.read(func(t *tables) error {
		count, err = t.logs.Count()
		return err
	})
	return count, err
}

func (s *GoState) GetLogs(filter *archive.LogFilter) (logs []*common.Log, err error) {
	err = s.read(func(t *tables) error {
		logs, err = t.logs.GetLogs(filter)
		return err
	})
	return logs, err
}

func (s *GoState) VisitLogs(from uint64, visitor func(*common.Log) bool) error {
	return s.read(func(t *tables) error {
		return t.logs.Visit(from, visitor)
	})
}

func (s *GoState) Apply(update common.Update) error {
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
	return s.storage.write(func(t *tables) error {
		for _, change := range update.Balances {
			if err := t.balances.Set(change.Account, change.Balance); err != nil {
				return fmt.Errorf("failed to update balance of %v: %w", change.Account, err)
			}
		}
		for _, log := range update.Logs {
			if err := t.logs.Append(log); err != nil {
				return fmt.Errorf("failed to append log: %w", err)
			}
		}
		return nil
	})
}

func (s *GoState) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return state.ErrClosed
	}
	return s.storage.Flush()
}

func (s *GoState) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	err := errors.Join(s.storage.Flush(), s.storage.Close())
	if s.lock != nil {
		err = errors.Join(err, s.lock.Release())
	}
	return err
}

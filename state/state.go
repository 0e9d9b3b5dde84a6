// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package state

//go:generate mockgen -source state.go -destination state_mocks.go -package state

import (
	"github.com/Fantom-foundation/Donation/backend/archive"
	"github.com/Fantom-foundation/Donation/common"
	"github.com/Fantom-foundation/Donation/common/amount"
)

// State is the execution environment of a ledger. It holds the balances of
// accounts, the beneficiary the ledger was created for, and the append-only
// sequence of logs emitted by the ledger.
//
// Reads may be performed concurrently. Modifications are only conducted
// through Apply, which either applies all changes of an update or none.
type State interface {
	// GetBalance provides the balance of the given account. Unknown accounts
	// have a balance of zero.
	GetBalance(address common.Address) (amount.Amount, error)

	// GetBeneficiary provides the beneficiary recorded for this state, or the
	// zero address if none has been recorded yet.
	GetBeneficiary() (common.Address, error)

	// InitBeneficiary records the beneficiary of the state. The beneficiary
	// can only be set once; setting the same value again is a no-op while
	// setting a different value fails with ErrBeneficiaryMismatch.
	InitBeneficiary(address common.Address) error

	// GetLogCount provides the number of logs appended so far.
	GetLogCount() (uint64, error)

	// GetLogs provides all logs matching the filter in append order.
	GetLogs(filter *archive.LogFilter) ([]*common.Log, error)

	// VisitLogs calls the visitor for each log starting at the given index
	// until the visitor returns false.
	VisitLogs(from uint64, visitor func(*common.Log) bool) error

	// Apply applies the given update atomically. The Index fields of the
	// update's logs are set to the positions they are appended at.
	Apply(update common.Update) error

	common.FlushAndCloser
}

const (
	// ErrBeneficiaryMismatch is returned when re-initializing a state with a
	// different beneficiary.
	ErrBeneficiaryMismatch = common.ConstError("beneficiary does not match the recorded beneficiary")

	// ErrZeroBeneficiary is returned when initializing a state with the zero address.
	ErrZeroBeneficiary = common.ConstError("beneficiary must not be the zero address")

	// ErrClosed is returned by all operations on a closed state.
	ErrClosed = common.ConstError("state is closed")
)

// CheckBeneficiary implements the write-once rule of InitBeneficiary given the
// currently recorded beneficiary. It reports whether the new value has to be
// stored.
func CheckBeneficiary(recorded, address common.Address) (bool, error) {
	if address.IsZero() {
		return false, ErrZeroBeneficiary
	}
	if recorded.IsZero() {
		return true, nil
	}
	if recorded != address {
		return false, ErrBeneficiaryMismatch
	}
	return false, nil
}

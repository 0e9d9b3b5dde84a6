// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package common

import (
	"errors"
	"fmt"

	"github.com/Fantom-foundation/Donation/common/amount"
)

// Update summarizes the effective changes of a single ledger operation. It
// combines new balances of accounts and the logs to be appended to the log
// sequence. Updates are applied atomically: either all of the contained
// changes become visible or none of them do.
//
// An example use of an update would look like this:
//
//	update := Update{}
//	update.AppendBalanceUpdate(from, newFromBalance)
//	update.AppendBalanceUpdate(to, newToBalance)
//	update.AppendLog(log)
//	if err := update.Check(); err != nil { ... }
//
// Valid instances can then be forwarded to the State.
type Update struct {
	Balances []BalanceUpdate
	Logs     []*Log
}

// BalanceUpdate sets the balance of an account to a new absolute value.
type BalanceUpdate struct {
	Account Address
	Balance amount.Amount
}

// IsEmpty is true if there is no change covered by this update.
func (u *Update) IsEmpty() bool {
	return len(u.Balances) == 0 && len(u.Logs) == 0
}

// AppendBalanceUpdate registers a balance update to be conducted.
func (u *Update) AppendBalanceUpdate(addr Address, balance amount.Amount) {
	u.Balances = append(u.Balances, BalanceUpdate{addr, balance})
}

// AppendLog registers a log to be appended. Logs are appended in the order
// they are registered; their Index fields are assigned by the State.
func (u *Update) AppendLog(log *Log) {
	u.Logs = append(u.Logs, log)
}

// Check verifies that the update is well formed: no account is updated twice
// and all logs are present and within the topic limit.
func (u *Update) Check() error {
	var errs []error
	seen := make(map[Address]struct{}, len(u.Balances))
	for _, cur := range u.Balances {
		if _, found := seen[cur.Account]; found {
			errs = append(errs, fmt.Errorf("duplicate balance update for %v", cur.Account))
		}
		seen[cur.Account] = struct{}{}
	}
	for i, log := range u.Logs {
		if log == nil {
			errs = append(errs, fmt.Errorf("log %d is nil", i))
			continue
		}
		if len(log.Topics) > MaxTopics {
			errs = append(errs, fmt.Errorf("log %d has %d topics, at most %d are supported", i, len(log.Topics), MaxTopics))
		}
	}
	return errors.Join(errs...)
}

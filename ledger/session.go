// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package ledger

import (
	"github.com/Fantom-foundation/Donation/common"
	"github.com/Fantom-foundation/Donation/common/amount"
)

// Session submits donations on behalf of a fixed caller. The timestamp of
// each submission is taken from the ledger's clock, so neither the origin
// nor the time of a record can be chosen by the submitter.
type Session struct {
	ledger *Ledger
	caller common.Address
}

// Caller returns the account donations of this session are made from.
func (s *Session) Caller() common.Address {
	return s.caller
}

// Submit donates the given value with the given reason.
func (s *Session) Submit(reason string, value amount.Amount) (Receipt, error) {
	return s.ledger.submitAt(reason, value, s.caller)
}

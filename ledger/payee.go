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

//go:generate mockgen -source payee.go -destination payee_mocks.go -package ledger

import (
	"github.com/Fantom-foundation/Donation/common"
	"github.com/Fantom-foundation/Donation/common/amount"
)

// Payee decides whether the beneficiary accepts an incoming transfer. A
// non-nil error rejects the transfer and fails the submission.
type Payee interface {
	Accept(from common.Address, value amount.Amount) error
}

// acceptAll is the default payee accepting every transfer.
type acceptAll struct{}

func (acceptAll) Accept(common.Address, amount.Amount) error {
	return nil
}

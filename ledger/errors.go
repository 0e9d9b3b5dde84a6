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
	"fmt"

	"github.com/Fantom-foundation/Donation/common"
)

const (
	// ErrTransferFailure is returned by Submit if the value could not be
	// forwarded to the beneficiary. The submission has no effect.
	ErrTransferFailure = common.ConstError("transfer failure")

	// ErrInvalidFilter is returned by Query for unsupported filter kinds or
	// malformed filter arguments.
	ErrInvalidFilter = common.ConstError("invalid filter")

	// ErrEnvironmentUnavailable is returned if the execution environment
	// holding balances and records can not be accessed.
	ErrEnvironmentUnavailable = common.ConstError("environment unavailable")
)

const (
	// ErrInsufficientBalance is the cause of a transfer failure if the
	// caller can not cover the attached value.
	ErrInsufficientBalance = common.ConstError("insufficient balance")

	// ErrBalanceOverflow is the cause of a transfer failure if the
	// beneficiary balance would exceed the amount range.
	ErrBalanceOverflow = common.ConstError("balance overflow")

	// ErrTransferRejected is the cause of a transfer failure if the payee
	// refused the funds.
	ErrTransferRejected = common.ConstError("transfer rejected by beneficiary")
)

// failure tags the cause with the given error kind. Both the kind and the
// cause can be matched using errors.Is.
func failure(kind common.ConstError, cause error) error {
	return fmt.Errorf("%w: %w", kind, cause)
}

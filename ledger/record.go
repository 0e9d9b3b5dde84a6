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
	"github.com/Fantom-foundation/Donation/common/amount"
)

// Record is a single donation entry. Records are values; once appended to
// the ledger they never change.
type Record struct {
	// Amount is the exact value attached to the submission.
	Amount amount.Amount
	// Reason is the free-text reason given by the donor. It may be empty.
	Reason string
	// Origin is the account that submitted the donation.
	Origin common.Address
	// Timestamp is the ledger time of the submission in Unix seconds.
	Timestamp uint64
}

func (r Record) String() string {
	return fmt.Sprintf("{amount: %v, reason: %q, origin: %v, timestamp: %d}", r.Amount, r.Reason, r.Origin, r.Timestamp)
}

// Receipt confirms a successful submission.
type Receipt struct {
	// Index is the position of the record in the ledger's log sequence.
	Index uint64
	// Record is the appended record.
	Record Record
	// Log is the encoded form of the record as stored by the ledger.
	Log *common.Log
}

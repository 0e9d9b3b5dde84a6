// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package depot

import (
	"github.com/Fantom-foundation/Donation/common"
)

// Depot is a mutable key/value store, where values are variable-length
// byte slices addressed by ordinal numbers. In this module depots hold the
// encoded logs, addressed by their position in the log sequence.
//
// The type I is the type used for the ordinal numbers.
type Depot[I common.Identifier] interface {
	// Set creates a new mapping from the index to the value.
	Set(id I, value []byte) error

	// Get returns the value associated with the index, or nil if not defined.
	Get(id I) ([]byte, error)

	// Size returns one more than the largest index set so far, 0 if empty.
	Size() (I, error)

	common.FlushAndCloser
}

// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package store

import (
	"github.com/Fantom-foundation/Donation/common"
)

// Store is a mutable key/value mapping with fixed-size keys and values.
// Looking up a key that was never set yields the zero value of V.
//
// Implementations are not synchronized; concurrent access has to be
// coordinated by the owner of the store.
type Store[K comparable, V any] interface {
	// Set associates the given value with the key, replacing any previous value.
	Set(key K, value V) error

	// Get returns the value associated with the key or the zero value if there is none.
	Get(key K) (V, error)

	common.FlushAndCloser
}

// ErrReadOnly is returned when modifying a store backed by a read-only view.
const ErrReadOnly = common.ConstError("store is read-only")

// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package multimap

import "github.com/Fantom-foundation/Donation/common"

// MultiMap defines the interface for mapping keys to sets of multiple values.
// Values associated to a key are reported in ascending order; adding a
// key/value pair twice has no effect.
type MultiMap[K comparable, V common.Identifier] interface {
	// Add adds the given key/value pair.
	Add(key K, value V) error


	// ForEach applies the given operation on each value associated to the given key.
	ForEach(key K, callback func(V)) error

	common.FlushAndCloser
}

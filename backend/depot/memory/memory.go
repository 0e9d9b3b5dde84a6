// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package memory

import (
	"github.com/Fantom-foundation/Donation/common"
)

// Depot is an in-memory depot.Depot implementation. Values are kept in a
// dense slice, which suits the append-only usage of the log sequence.
type Depot[I common.Identifier] struct {
	data [][]byte
}

// NewDepot creates an empty in-memory depot.
func NewDepot[I common.Identifier]() *Depot[I] {
	return &Depot[I]{}
}

func (m *Depot[I]) Set(id I, value []byte) error {
	for int(id) >= len(m.data) {
		m.data = append(m.data, nil)
	}
	m.data[id] = append([]byte{}, value...)
	return nil
}

func (m *Depot[I]) Get(id I) ([]byte, error) {
	if int(id) >= len(m.data) || m.data[id] == nil {
		return nil, nil
	}
	return append([]byte{}, m.data[id]...), nil
}

func (m *Depot[I]) Size() (I, error) {
	return I(len(m.data)), nil
}

func (m *Depot[I]) Flush() error {
	return nil // no-op for in-memory database
}

func (m *Depot[I]) Close() error {
	return nil // no-op for in-memory database
}

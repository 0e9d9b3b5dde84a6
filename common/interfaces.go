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

import "io"

// Flusher is any type that can be flushed.
type Flusher interface {
	Flush() error
}

// FlushAndCloser is implemented by all backend data structures.
type FlushAndCloser interface {
	Flusher
	io.Closer
}

// Serializer allows to convert the type to a slice of bytes and back.
type Serializer[T any] interface {
	// ToBytes serializes the type to a new slice of bytes.
	ToBytes(T) []byte
	// CopyBytes serializes the type into the given slice, which must be
	// at least Size() bytes long.
	CopyBytes(T, []byte)
	// FromBytes deserializes the type from the given slice of bytes.
	FromBytes([]byte) T
	// Size is the number of bytes of the serialized form.
	Size() int
}

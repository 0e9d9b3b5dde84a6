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
	"encoding/binary"

	"github.com/Fantom-foundation/Donation/common/amount"
)

// AddressSerializer is a Serializer of the Address type
type AddressSerializer struct{}

func (a AddressSerializer) ToBytes(address Address) []byte {
	return address[:]
}
func (a AddressSerializer) CopyBytes(address Address, out []byte) {
	copy(out, address[:])
}
func (a AddressSerializer) FromBytes(bytes []byte) Address {
	var address Address
	copy(address[:], bytes)
	return address
}
func (a AddressSerializer) Size() int {
	return AddressSize
}

// HashSerializer is a Serializer of the Hash type
type HashSerializer struct{}

func (a HashSerializer) ToBytes(hash Hash) []byte {
	return hash[:]
}
func (a HashSerializer) CopyBytes(hash Hash, out []byte) {
	copy(out, hash[:])
}
func (a HashSerializer) FromBytes(bytes []byte) Hash {
	var hash Hash
	copy(hash[:], bytes)
	return hash
}
func (a HashSerializer) Size() int {
	return HashSize
}

// AmountSerializer is a Serializer of amounts using a 32-byte big-endian encoding.
type AmountSerializer struct{}

func (a AmountSerializer) ToBytes(value amount.Amount) []byte {
	b := value.Bytes32()
	return b[:]
}
func (a AmountSerializer) CopyBytes(value amount.Amount, out []byte) {
	b := value.Bytes32()
	copy(out, b[:])
}
func (a AmountSerializer) FromBytes(bytes []byte) amount.Amount {
	return amount.NewFromBytes(bytes[:amount.BytesLength]...)
}
func (a AmountSerializer) Size() int {
	return amount.BytesLength
}

// Identifier64Serializer is a Serializer of uint64 identifiers. The big-endian
// encoding keeps the LevelDB key order aligned with the numeric order.
type Identifier64Serializer struct{}

func (a Identifier64Serializer) ToBytes(value uint64) []byte {
	return binary.BigEndian.AppendUint64(nil, value)
}
func (a Identifier64Serializer) CopyBytes(value uint64, out []byte) {
	binary.BigEndian.PutUint64(out, value)
}
func (a Identifier64Serializer) FromBytes(bytes []byte) uint64 {
	return binary.BigEndian.Uint64(bytes)
}
func (a Identifier64Serializer) Size() int {
	return 8
}

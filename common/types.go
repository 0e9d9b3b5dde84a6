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
	"encoding/hex"
	"fmt"

	gethcommon "github.com/ethereum/go-ethereum/common"
)

// Identifier is the type of ordinal numbers used to address items in
// backend data structures.
type Identifier interface {
	uint64 | uint32
}

// AddressSize is the number of bytes of an account address.
const AddressSize = 20

// HashSize is the number of bytes of a hash.
const HashSize = 32

// Address is the 20-byte identifier of an account.
type Address [AddressSize]byte

// Hash is a 32-byte value, used for log topics and content digests.
type Hash [HashSize]byte

// HexToAddress parses a hex encoded address with or without a 0x prefix.
// Unlike the go-ethereum variant of this function, malformed inputs are
// reported as errors instead of being silently truncated.
func HexToAddress(s string) (Address, error) {
	if !gethcommon.IsHexAddress(s) {
		return Address{}, fmt.Errorf("invalid address %q", s)
	}
	return Address(gethcommon.HexToAddress(s)), nil
}

// String returns the EIP-55 checksummed hex representation of the address.
func (a Address) String() string {
	return gethcommon.Address(a).Hex()
}

// IsZero is true if all bytes of the address are zero.
func (a Address) IsZero() bool {
	return a == Address{}
}

func (h Hash) String() string {
	return "0x" + hex.EncodeToString(h[:])
}

// AddressFromNumber creates an address from the given number. Intended for tests.
func AddressFromNumber(num int) (address Address) {
	address[AddressSize-4] = byte(num >> 24)
	address[AddressSize-3] = byte(num >> 16)
	address[AddressSize-2] = byte(num >> 8)
	address[AddressSize-1] = byte(num)
	return
}

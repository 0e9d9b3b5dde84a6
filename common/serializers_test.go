// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package common_test

import (
	"slices"
	"testing"

	"github.com/Fantom-foundation/Donation/common"
	"github.com/Fantom-foundation/Donation/common/amount"
)

func TestSerializers(t *testing.T) {
	for i := 0; i < 256; i += 51 {
		b := byte(i)

		testSerializer[common.Address](t, common.Address{b, b + 1, 19: b}, common.AddressSize, common.AddressSerializer{})
		testSerializer[common.Hash](t, common.Hash{b, b + 1, 31: b}, common.HashSize, common.HashSerializer{})
		testSerializer[amount.Amount](t, amount.New(uint64(i), 1, uint64(i)), amount.BytesLength, common.AmountSerializer{})
		testSerializer[uint64](t, uint64(i)<<48|uint64(i), 8, common.Identifier64Serializer{})
	}
}

func TestIdentifier64Serializer_PreservesOrder(t *testing.T) {
	serializer := common.Identifier64Serializer{}
	values := []uint64{0, 1, 255, 256, 1 << 32, 1<<64 - 1}
	for i := 1; i < len(values); i++ {
		a := serializer.ToBytes(values[i-1])
		b := serializer.ToBytes(values[i])
		if slices.Compare(a, b) >= 0 {
			t.Errorf("encoding of %d is not smaller than encoding of %d", values[i-1], values[i])
		}
	}
}

func testSerializer[T comparable](t *testing.T, val T, size int, serializer common.Serializer[T]) {
	t.Helper()
	serialized := serializer.ToBytes(val)

	if got, want := serializer.FromBytes(serialized), val; got != want {
		t.Errorf("recovered value do not match: %v != %v", got, want)
	}

	got := make([]byte, size)
	serializer.CopyBytes(val, got)
	if !slices.Equal(got, serialized) {
		t.Errorf("recovered value do not match: %v != %v", got, serialized)
	}

	if got, want := serializer.Size(), size; got != want {
		t.Errorf("sizes do not match: %v != %v", got, want)
	}
}

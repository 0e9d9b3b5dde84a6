// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package multimap_test

import (
	"testing"

	"github.com/Fantom-foundation/Donation/backend"
	"github.com/Fantom-foundation/Donation/backend/multimap"
	"github.com/Fantom-foundation/Donation/backend/multimap/ldb"
	"github.com/Fantom-foundation/Donation/backend/multimap/memory"
	"github.com/Fantom-foundation/Donation/common"
	"golang.org/x/exp/slices"
)

type multimapFactory struct {
	label       string
	getMultiMap func(tb testing.TB, tempDir string) multimap.MultiMap[common.Hash, uint64]
}

func getMultiMapFactories() []multimapFactory {
	return []multimapFactory{
		{
			label: "Memory",
			getMultiMap: func(tb testing.TB, tempDir string) multimap.MultiMap[common.Hash, uint64] {
				return memory.NewMultiMap[common.Hash, uint64]()
			},
		},
		{
			label: "LevelDb",
			getMultiMap: func(tb testing.TB, tempDir string) multimap.MultiMap[common.Hash, uint64] {
				db, err := backend.OpenLevelDb(tempDir, nil)
				if err != nil {
					tb.Fatalf("failed to init leveldb store; %s", err)
				}
				tb.Cleanup(func() { db.Close() })
				return ldb.NewMultiMap[common.Hash, uint64](db, backend.TopicMultiMapKey, common.HashSerializer{}, common.Identifier64Serializer{})
			},
		},
	}
}

var (
	keyA = common.Hash{0x01}
	keyB = common.Hash{0x01, 0x02}
	keyC = common.Hash{0x02}
)

func TestMultiMap_AddAndForEach(t *testing.T) {
	for _, factory := range getMultiMapFactories() {
		t.Run(factory.label, func(t *testing.T) {
			m := factory.getMultiMap(t, t.TempDir())
			defer m.Close()

			mustAdd(t, m, keyA, 1)
			mustAdd(t, m, keyA, 300)
			mustAdd(t, m, keyB, 2)
			mustAdd(t, m, keyA, 7)

			checkValues(t, m, keyA, []uint64{1, 7, 300})
			checkValues(t, m, keyB, []uint64{2})
			checkValues(t, m, keyC, nil)
		})
	}
}

func TestMultiMap_AddingTwiceHasNoEffect(t *testing.T) {
	for _, factory := range getMultiMapFactories() {
		t.Run(factory.label, func(t *testing.T) {
			m := factory.getMultiMap(t, t.TempDir())
			defer m.Close()

			mustAdd(t, m, keyA, 5)
			mustAdd(t, m, keyA, 3)
			mustAdd(t, m, keyA, 5)
			mustAdd(t, m, keyA, 3)

			checkValues(t, m, keyA, []uint64{3, 5})
		})
	}
}

func TestMultiMap_ForEachVisitsValuesInOrder(t *testing.T) {
	for _, factory := range getMultiMapFactories() {
		t.Run(factory.label, func(t *testing.T) {
			m := factory.getMultiMap(t, t.TempDir())
			defer m.Close()

			for _, v := range []uint64{9, 4, 256, 0} {
				mustAdd(t, m, keyC, v)
			}
			var seen []uint64
			if err := m.ForEach(keyC, func(v uint64) { seen = append(seen, v) }); err != nil {
				t.Fatalf("failed to iterate: %v", err)
			}
			if want := []uint64{0, 4, 9, 256}; !slices.Equal(seen, want) {
				t.Errorf("unexpected values, wanted %v, got %v", want, seen)
			}
		})
	}
}

func mustAdd(t *testing.T, m multimap.MultiMap[common.Hash, uint64], key common.Hash, value uint64) {
	t.Helper()
	if err := m.Add(key, value); err != nil {
		t.Fatalf("failed to add %d: %v", value, err)
	}
}

func checkValues(t *testing.T, m multimap.MultiMap[common.Hash, uint64], key common.Hash, want []uint64) {
	t.Helper()
	var got []uint64
	if err := m.ForEach(key, func(v uint64) { got = append(got, v) }); err != nil {
		t.Fatalf("failed to get values: %v", err)
	}
	if len(got) != len(want) || !slices.Equal(got, want) {
		t.Errorf("unexpected values for key %v, wanted %v, got %v", key, want, got)
	}
}

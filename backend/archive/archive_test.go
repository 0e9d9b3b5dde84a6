// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package archive

import (
	"testing"

	"github.com/Fantom-foundation/Donation/backend"
	depotldb "github.com/Fantom-foundation/Donation/backend/depot/ldb"
	depotmem "github.com/Fantom-foundation/Donation/backend/depot/memory"
	mmldb "github.com/Fantom-foundation/Donation/backend/multimap/ldb"
	mmmem "github.com/Fantom-foundation/Donation/backend/multimap/memory"
	"github.com/Fantom-foundation/Donation/common"
)

type archiveFactory struct {
	label      string
	getArchive func(tb testing.TB) *Archive
}

func getArchiveFactories() []archiveFactory {
	return []archiveFactory{
		{
			label: "Memory",
			getArchive: func(tb testing.TB) *Archive {
				return NewArchive(depotmem.NewDepot[uint64](), mmmem.NewMultiMap[TopicKey, uint64]())
			},
		},
		{
			label: "LevelDb",
			getArchive: func(tb testing.TB) *Archive {
				db, err := backend.OpenLevelDb(tb.TempDir(), nil)
				if err != nil {
					tb.Fatalf("failed to open LevelDB; %s", err)
				}
				tb.Cleanup(func() { db.Close() })
				return NewArchive(
					depotldb.NewDepot[uint64](db, backend.LogDepotKey, common.Identifier64Serializer{}),
					mmldb.NewMultiMap[TopicKey, uint64](db, backend.TopicMultiMapKey, TopicKeySerializer{}, common.Identifier64Serializer{}),
				)
			},
		},
	}
}

var (
	event  = common.Hash{0xEE}
	topicA = common.Hash{0xA}
	topicB = common.Hash{0xB}
	topicC = common.Hash{0xC}
)

func newLog(topics ...common.Hash) *common.Log {
	return &common.Log{Address: common.Address{1}, Topics: topics, Data: []byte{byte(len(topics))}}
}

func TestArchive_AppendAssignsConsecutiveIndexes(t *testing.T) {
	for _, factory := range getArchiveFactories() {
		t.Run(factory.label, func(t *testing.T) {
			archive := factory.getArchive(t)
			for i := uint64(0); i < 5; i++ {
				log := newLog(event, topicA)
				if err := archive.Append(log); err != nil {
					t.Fatalf("failed to append log: %v", err)
				}
				if log.Index != i {
					t.Errorf("unexpected index, wanted %d, got %d", i, log.Index)
				}
			}
			if count, err := archive.Count(); err != nil || count != 5 {
				t.Errorf("unexpected count %d, err %v", count, err)
			}
		})
	}
}

func TestArchive_GetReturnsStoredLogs(t *testing.T) {
	for _, factory := range getArchiveFactories() {
		t.Run(factory.label, func(t *testing.T) {
			archive := factory.getArchive(t)
			want := newLog(event, topicB, topicC)
			if err := archive.Append(want); err != nil {
				t.Fatalf("failed to append log: %v", err)
			}
			got, err := archive.Get(0)
			if err != nil || got == nil {
				t.Fatalf("failed to get log: %v", err)
			}
			if got.Address != want.Address || len(got.Topics) != 3 || got.Topics[2] != topicC || got.Data[0] != 3 {
				t.Errorf("unexpected log %v", got)
			}
			if got, err := archive.Get(1); err != nil || got != nil {
				t.Errorf("missing log should be reported as nil, got %v, err %v", got, err)
			}
		})
	}
}

func TestArchive_GetLogsUsesExactTopicMatch(t *testing.T) {
	for _, factory := range getArchiveFactories() {
		t.Run(factory.label, func(t *testing.T) {
			archive := factory.getArchive(t)
			for _, log := range []*common.Log{
				newLog(event, topicA),
				newLog(event, topicB),
				newLog(event, topicA, topicC),
				newLog(event),
				newLog(event, topicC),
			} {
				if err := archive.Append(log); err != nil {
					t.Fatalf("failed to append log: %v", err)
				}
			}

			tests := []struct {
				name   string
				filter LogFilter
				want   []uint64
			}{
				{"single topic", LogFilter{Topics: [common.MaxTopics][]common.Hash{1: {topicA}}}, []uint64{0, 2}},
				{"alternatives", LogFilter{Topics: [common.MaxTopics][]common.Hash{1: {topicC, topicB}}}, []uint64{1, 4}},
				{"conjunction", LogFilter{Topics: [common.MaxTopics][]common.Hash{1: {topicA}, 2: {topicC}}}, []uint64{2}},
				{"no match", LogFilter{Topics: [common.MaxTopics][]common.Hash{1: {event}}}, []uint64{}},
				{"unconstrained", LogFilter{}, []uint64{0, 1, 2, 3, 4}},
				{"event only", LogFilter{Topics: [common.MaxTopics][]common.Hash{0: {event}}}, []uint64{0, 1, 2, 3, 4}},
				{"other address", LogFilter{Addresses: []common.Address{{2}}}, []uint64{}},
			}
			for _, test := range tests {
				t.Run(test.name, func(t *testing.T) {
					logs, err := archive.GetLogs(&test.filter)
					if err != nil {
						t.Fatalf("failed to get logs: %v", err)
					}
					if len(logs) != len(test.want) {
						t.Fatalf("unexpected number of results, wanted %d, got %d", len(test.want), len(logs))
					}
					for i, log := range logs {
						if log.Index != test.want[i] {
							t.Errorf("unexpected log at position %d, wanted %d, got %d", i, test.want[i], log.Index)
						}
					}
				})
			}
		})
	}
}

func TestArchive_VisitStopsWhenRequested(t *testing.T) {
	for _, factory := range getArchiveFactories() {
		t.Run(factory.label, func(t *testing.T) {
			archive := factory.getArchive(t)
			for i := 0; i < 10; i++ {
				if err := archive.Append(newLog(event)); err != nil {
					t.Fatalf("failed to append log: %v", err)
				}
			}
			var seen []uint64
			err := archive.Visit(3, func(log *common.Log) bool {
				seen = append(seen, log.Index)
				return len(seen) < 4
			})
			if err != nil {
				t.Fatalf("failed to visit logs: %v", err)
			}
			if len(seen) != 4 || seen[0] != 3 || seen[3] != 6 {
				t.Errorf("unexpected visited logs %v", seen)
			}
		})
	}
}

func TestArchive_AppendRejectsTooManyTopics(t *testing.T) {
	archive := getArchiveFactories()[0].getArchive(t)
	if err := archive.Append(newLog(event, topicA, topicB, topicC, topicA)); err == nil {
		t.Errorf("log with too many topics should be rejected")
	}
	if count, _ := archive.Count(); count != 0 {
		t.Errorf("rejected log should not be stored")
	}
}

func TestLogFilter_MissingTopicDoesNotMatch(t *testing.T) {
	filter := LogFilter{Topics: [common.MaxTopics][]common.Hash{2: {topicA}}}
	if filter.Match(newLog(event, topicA)) {
		t.Errorf("log without a third topic should not match")
	}
	if !filter.Match(newLog(event, topicB, topicA)) {
		t.Errorf("log with matching third topic should match")
	}
}

func TestTopicKeySerializer_RoundTrip(t *testing.T) {
	s := TopicKeySerializer{}
	key := TopicKey{Position: 2, Topic: topicB}
	bytes := s.ToBytes(key)
	if len(bytes) != s.Size() {
		t.Fatalf("unexpected encoding length %d", len(bytes))
	}
	if got := s.FromBytes(bytes); got != key {
		t.Errorf("unexpected key, wanted %v, got %v", key, got)
	}
}

func TestLogFilter_IndexedPositionPrefersHigherTopics(t *testing.T) {
	tests := []struct {
		filter LogFilter
		want   int
	}{
		{LogFilter{}, -1},
		{LogFilter{Topics: [common.MaxTopics][]common.Hash{0: {event}}}, 0},
		{LogFilter{Topics: [common.MaxTopics][]common.Hash{0: {event}, 1: {topicA}}}, 1},
		{LogFilter{Topics: [common.MaxTopics][]common.Hash{1: {topicA}, 3: {topicB}}}, 3},
	}
	for _, test := range tests {
		if got := test.filter.indexedPosition(); got != test.want {
			t.Errorf("unexpected position for %v, wanted %d, got %d", test.filter, test.want, got)
		}
	}
}

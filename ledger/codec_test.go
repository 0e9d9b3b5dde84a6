// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package ledger

import (
	"strings"
	"testing"

	"github.com/Fantom-foundation/Donation/common"
	"github.com/Fantom-foundation/Donation/common/amount"
)

func TestCodec_EventTopicIsSignatureHash(t *testing.T) {
	want := common.Keccak256([]byte("LogData(uint256,string,address,uint256)"))
	if got := EventTopic(); got != want {
		t.Errorf("unexpected event topic, wanted %v, got %v", want, got)
	}
}

func TestCodec_EncodedRecordsCanBeDecoded(t *testing.T) {
	records := []Record{
		{},
		{Amount: amount.New(350000), Reason: "thank you", Origin: common.Address{1, 2, 3}, Timestamp: 1700000000},
		{Amount: amount.Max(), Reason: strings.Repeat("long reason ", 20), Origin: common.Address{0xFF}, Timestamp: 1<<64 - 1},
	}
	emitter := common.Address{0xAB}
	for _, record := range records {
		log, err := defaultCodec.encode(emitter, record)
		if err != nil {
			t.Fatalf("failed to encode %v: %v", record, err)
		}
		if log.Address != emitter {
			t.Errorf("unexpected emitter %v", log.Address)
		}
		if len(log.Topics) != 2 || log.Topics[0] != EventTopic() || log.Topics[1] != AmountTopic(record.Amount) {
			t.Errorf("unexpected topics %v", log.Topics)
		}
		got, err := defaultCodec.decode(log)
		if err != nil {
			t.Fatalf("failed to decode %v: %v", record, err)
		}
		if got != record {
			t.Errorf("unexpected decoded record, wanted %v, got %v", record, got)
		}
	}
}

func TestCodec_ForeignLogsAreRejected(t *testing.T) {
	log, err := defaultCodec.encode(common.Address{}, Record{Reason: "x"})
	if err != nil {
		t.Fatalf("failed to encode record: %v", err)
	}

	wrongEvent := log.Copy()
	wrongEvent.Topics[0] = common.Hash{1}
	missingAmount := log.Copy()
	missingAmount.Topics = missingAmount.Topics[:1]
	truncated := log.Copy()
	truncated.Data = truncated.Data[:40]

	for name, log := range map[string]*common.Log{
		"wrong event":    wrongEvent,
		"missing amount": missingAmount,
		"truncated data": truncated,
	} {
		if _, err := defaultCodec.decode(log); err == nil {
			t.Errorf("%s: decoding should fail", name)
		}
	}
}

func TestLedgerAddress_FollowsContractAddressScheme(t *testing.T) {
	deployer, err := common.HexToAddress("0x6ac7ea33f8831ea9dcc53393aaa88b25a785dbf0")
	if err != nil {
		t.Fatalf("failed to parse address: %v", err)
	}
	want, err := common.HexToAddress("0xcd234a471b72ba2f1ccf0a70fcaba648a5eecd8d")
	if err != nil {
		t.Fatalf("failed to parse address: %v", err)
	}
	if got := LedgerAddress(deployer); got != want {
		t.Errorf("unexpected ledger address, wanted %v, got %v", want, got)
	}
}

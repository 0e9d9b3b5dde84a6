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
	"fmt"
	"math/big"
	"strings"

	"github.com/Fantom-foundation/Donation/common"
	"github.com/Fantom-foundation/Donation/common/amount"
	"github.com/ethereum/go-ethereum/accounts/abi"
	gethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rlp"
)

// EventName is the name of the event emitted for every record.
const EventName = "LogData"

// eventABI describes the event emitted for every record. The amount is the
// only indexed field; the remaining fields are ABI encoded in the log data.
const eventABI = `[{
	"anonymous": false,
	"inputs": [
		{"indexed": true,  "internalType": "uint256", "name": "amount",         "type": "uint256"},
		{"indexed": false, "internalType": "string",  "name": "reason",         "type": "string"},
		{"indexed": false, "internalType": "address", "name": "donatorAddress", "type": "address"},
		{"indexed": false, "internalType": "uint256", "name": "timestamp",      "type": "uint256"}
	],
	"name": "LogData",
	"type": "event"
}]`

// codec converts records to logs and back.
type codec struct {
	event abi.Event
	data  abi.Arguments
}

func newCodec() (*codec, error) {
	parsed, err := abi.JSON(strings.NewReader(eventABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse event ABI: %w", err)
	}
	event, found := parsed.Events[EventName]
	if !found {
		return nil, fmt.Errorf("event %s missing in ABI", EventName)
	}
	return &codec{
		event: event,
		data:  event.Inputs.NonIndexed(),
	}, nil
}

// defaultCodec is shared by all ledgers; the ABI is a constant.
var defaultCodec = func() *codec {
	res, err := newCodec()
	if err != nil {
		panic(err)
	}
	return res
}()

// EventTopic is the first topic of every log emitted by the ledger.
func EventTopic() common.Hash {
	return common.Hash(defaultCodec.event.ID)
}

// AmountTopic is the topic under which records with the given amount are indexed.
func AmountTopic(value amount.Amount) common.Hash {
	return common.Hash(value.Bytes32())
}

// encode creates the log of the given record emitted by the ledger at the given address.
func (c *codec) encode(emitter common.Address, record Record) (*common.Log, error) {
	data, err := c.data.Pack(
		record.Reason,
		gethcommon.Address(record.Origin),
		new(big.Int).SetUint64(record.Timestamp),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to encode record: %w", err)
	}
	return &common.Log{
		Address: emitter,
		Topics:  []common.Hash{common.Hash(c.event.ID), AmountTopic(record.Amount)},
		Data:    data,
	}, nil
}

// decode reconstructs the full record from a log produced by encode.
func (c *codec) decode(log *common.Log) (Record, error) {
	if len(log.Topics) != 2 || log.Topics[0] != common.Hash(c.event.ID) {
		return Record{}, fmt.Errorf("log %d is not a %s event", log.Index, EventName)
	}
	values, err := c.data.Unpack(log.Data)
	if err != nil {
		return Record{}, fmt.Errorf("failed to decode log %d: %w", log.Index, err)
	}
	if len(values) != 3 {
		return Record{}, fmt.Errorf("failed to decode log %d: unexpected number of fields %d", log.Index, len(values))
	}
	reason, ok1 := values[0].(string)
	origin, ok2 := values[1].(gethcommon.Address)
	timestamp, ok3 := values[2].(*big.Int)
	if !ok1 || !ok2 || !ok3 {
		return Record{}, fmt.Errorf("failed to decode log %d: unexpected field types", log.Index)
	}
	if !timestamp.IsUint64() {
		return Record{}, fmt.Errorf("failed to decode log %d: timestamp %v out of range", log.Index, timestamp)
	}
	amountTopic := log.Topics[1]
	return Record{
		Amount:    amount.NewFromBytes(amountTopic[:]...),
		Reason:    reason,
		Origin:    common.Address(origin),
		Timestamp: timestamp.Uint64(),
	}, nil
}

// LedgerAddress derives the address a ledger created for the given
// beneficiary emits its logs from. It follows the contract address scheme of
// Ethereum for the first contract deployed by the beneficiary.
func LedgerAddress(beneficiary common.Address) common.Address {
	encoded, err := rlp.EncodeToBytes([]any{gethcommon.Address(beneficiary), uint64(0)})
	if err != nil {
		panic(fmt.Sprintf("failed to encode address: %v", err))
	}
	hash := common.Keccak256(encoded)
	var res common.Address
	copy(res[:], hash[common.HashSize-common.AddressSize:])
	return res
}

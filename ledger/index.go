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

	"github.com/Fantom-foundation/Donation/backend/archive"
	"github.com/Fantom-foundation/Donation/common"
	"github.com/Fantom-foundation/Donation/common/amount"
	"github.com/Fantom-foundation/Donation/state"
)

// FilterKind selects the retrieval path of a query.
type FilterKind int

const (
	// ExactAmount selects records with a given amount using the amount index.
	ExactAmount FilterKind = iota + 1
	// PredicateScan selects records satisfying a predicate by scanning all records.
	PredicateScan
)

func (k FilterKind) String() string {
	switch k {
	case ExactAmount:
		return "exact-amount"
	case PredicateScan:
		return "predicate-scan"
	}
	return fmt.Sprintf("FilterKind(%d)", int(k))
}

// Filter describes a query on the records of a ledger.
type Filter struct {
	Kind FilterKind
	// Amount is the amount to match for ExactAmount filters. It must be
	// present, non-negative, and fit into 256 bits.
	Amount *big.Int
	// Predicate is the condition evaluated by PredicateScan filters.
	Predicate func(Record) bool
}

// Index provides read access to the records of a ledger. Records are always
// returned fully decoded and in append order. Each operation observes a
// consistent snapshot of the record sequence.
//
// Only equality on the amount is served by an index. Any other condition,
// including amount ranges, has to be evaluated by ScanByPredicate, which
// visits every record of the ledger.
type Index struct {
	state   state.State
	codec   *codec
	emitter common.Address
}

func newIndex(st state.State, emitter common.Address) *Index {
	return &Index{
		state:   st,
		codec:   defaultCodec,
		emitter: emitter,
	}
}

// Count returns the number of records in the ledger.
func (i *Index) Count() (uint64, error) {
	count, err := i.state.GetLogCount()
	if err != nil {
		return 0, failure(ErrEnvironmentUnavailable, err)
	}
	return count, nil
}

// FilterByAmount returns all records with exactly the given amount. The
// lookup uses the amount index and does not scan unrelated records.
func (i *Index) FilterByAmount(exact amount.Amount) ([]Record, error) {
	filter := archive.LogFilter{
		Addresses: []common.Address{i.emitter},
	}
	filter.Topics[0] = []common.Hash{EventTopic()}
	filter.Topics[1] = []common.Hash{AmountTopic(exact)}

	logs, err := i.state.GetLogs(&filter)
	if err != nil {
		return nil, failure(ErrEnvironmentUnavailable, err)
	}
	res := make([]Record, 0, len(logs))
	for _, log := range logs {
		record, err := i.codec.decode(log)
		if err != nil {
			return nil, failure(ErrEnvironmentUnavailable, err)
		}
		res = append(res, record)
	}
	return res, nil
}

// ScanByPredicate returns all records satisfying the predicate. This is a
// linear scan over the full record sequence; its cost grows with the number
// of records in the ledger, not with the number of results.
func (i *Index) ScanByPredicate(predicate func(Record) bool) ([]Record, error) {
	// Records are collected first so that the predicate is not evaluated
	// while the state is being read.
	var records []Record
	var decodeErr error
	err := i.state.VisitLogs(0, func(log *common.Log) bool {
		if log.Address != i.emitter {
			return true
		}
		record, err := i.codec.decode(log)
		if err != nil {
			decodeErr = err
			return false
		}
		records = append(records, record)
		return true
	})
	if err == nil {
		err = decodeErr
	}
	if err != nil {
		return nil, failure(ErrEnvironmentUnavailable, err)
	}

	res := []Record{}
	for _, record := range records {
		if predicate(record) {
			res = append(res, record)
		}
	}
	return res, nil
}

// Query dispatches the filter to the matching retrieval path. Invalid
// filters are rejected with ErrInvalidFilter before any record is read.
func (i *Index) Query(filter Filter) ([]Record, error) {
	switch filter.Kind {
	case ExactAmount:
		if filter.Amount == nil {
			return nil, fmt.Errorf("%w: missing amount for %v filter", ErrInvalidFilter, filter.Kind)
		}
		exact, err := amount.NewFromBigInt(filter.Amount)
		if err != nil {
			return nil, failure(ErrInvalidFilter, err)
		}
		return i.FilterByAmount(exact)
	case PredicateScan:
		if filter.Predicate == nil {
			return nil, fmt.Errorf("%w: missing predicate for %v filter", ErrInvalidFilter, filter.Kind)
		}
		return i.ScanByPredicate(filter.Predicate)
	}
	return nil, fmt.Errorf("%w: unsupported filter kind %v", ErrInvalidFilter, filter.Kind)
}

// AmountAbove is a predicate selecting records with an amount strictly
// greater than the threshold. Range conditions are not supported by the
// amount index; use it with ScanByPredicate or a PredicateScan filter.
func AmountAbove(threshold amount.Amount) func(Record) bool {
	return func(r Record) bool {
		return r.Amount.Gt(threshold)
	}
}

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
	"fmt"
	"sort"

	"github.com/Fantom-foundation/Donation/backend/depot"
	"github.com/Fantom-foundation/Donation/backend/multimap"
	"github.com/Fantom-foundation/Donation/common"
)

// LogArchive is an append-only sequence of logs with an index on topics.
type LogArchive interface {
	// Append adds the log to the end of the archive and sets its index.
	Append(log *common.Log) error

	// Count returns the number of logs in the archive.
	Count() (uint64, error)

	// Get returns the log at the given position or nil if there is none.
	Get(index uint64) (*common.Log, error)

	// GetLogs returns all logs matching the filter in append order. At
	// least one topic has to be constrained to make use of the index;
	// filters without topic constraints degrade to a full scan.
	GetLogs(filter *LogFilter) ([]*common.Log, error)

	// Visit calls the visitor for every log starting at the given index in
	// append order until the visitor returns false.
	Visit(from uint64, visitor func(*common.Log) bool) error
}

// Archive is a LogArchive composed of a depot holding the encoded logs and a
// multimap indexing log positions by topic values.
type Archive struct {
	logs   depot.Depot[uint64]
	topics multimap.MultiMap[TopicKey, uint64]
}

// NewArchive creates an archive on top of the given backends. The archive
// does not take ownership of the backends; closing them is up to the caller.
func NewArchive(logs depot.Depot[uint64], topics multimap.MultiMap[TopicKey, uint64]) *Archive {
	return &Archive{
		logs:   logs,
		topics: topics,
	}
}

func (a *Archive) Append(log *common.Log) error {
	if len(log.Topics) > common.MaxTopics {
		return fmt.Errorf("log has %d topics, at most %d are supported", len(log.Topics), common.MaxTopics)
	}
	index, err := a.logs.Size()
	if err != nil {
		return err
	}
	if err := a.logs.Set(index, log.ToBytes()); err != nil {
		return fmt.Errorf("failed to store log %d: %w", index, err)
	}
	for i, topic := range log.Topics {
		if err := a.topics.Add(TopicKey{Position: byte(i), Topic: topic}, index); err != nil {
			return fmt.Errorf("failed to index log %d: %w", index, err)
		}
	}
	log.Index = index
	return nil
}

func (a *Archive) Count() (uint64, error) {
	return a.logs.Size()
}

func (a *Archive) Get(index uint64) (*common.Log, error) {
	data, err := a.logs.Get(index)
	if err != nil || data == nil {
		return nil, err
	}
	return common.LogFromBytes(index, data)
}

func (a *Archive) GetLogs(filter *LogFilter) ([]*common.Log, error) {
	position := filter.indexedPosition()
	if position < 0 {
		res := []*common.Log{}
		err := a.Visit(0, func(log *common.Log) bool {
			if filter.Match(log) {
				res = append(res, log)
			}
			return true
		})
		if err != nil {
			return nil, err
		}
		return res, nil
	}

	// collect candidates of all alternatives of the indexed position
	candidates := map[uint64]struct{}{}
	for _, topic := range filter.Topics[position] {
		err := a.topics.ForEach(TopicKey{Position: byte(position), Topic: topic}, func(index uint64) {
			candidates[index] = struct{}{}
		})
		if err != nil {
			return nil, err
		}
	}
	indexes := make([]uint64, 0, len(candidates))
	for index := range candidates {
		indexes = append(indexes, index)
	}
	sort.Slice(indexes, func(i, j int) bool { return indexes[i] < indexes[j] })

	res := make([]*common.Log, 0, len(indexes))
	for _, index := range indexes {
		log, err := a.Get(index)
		if err != nil {
			return nil, err
		}
		if log == nil {
			return nil, fmt.Errorf("topic index refers to missing log %d", index)
		}
		if filter.Match(log) {
			res = append(res, log)
		}
	}
	return res, nil
}

func (a *Archive) Visit(from uint64, visitor func(*common.Log) bool) error {
	count, err := a.logs.Size()
	if err != nil {
		return err
	}
	for i := from; i < count; i++ {
		log, err := a.Get(i)
		if err != nil {
			return err
		}
		if log == nil {
			return fmt.Errorf("missing log %d", i)
		}
		if !visitor(log) {
			return nil
		}
	}
	return nil
}

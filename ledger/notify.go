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
	"log/slog"
	"sync"

	"github.com/ethereum/go-ethereum/event"
)

// DefaultQueueSize is the default number of records buffered for delivery to
// subscribers.
const DefaultQueueSize = 1024

// notifier publishes appended records to subscribers. Records are handed
// over to a dispatcher goroutine through a bounded queue; if the queue is
// full the record is dropped, so delivery is at most once and publishing
// never blocks.
type notifier struct {
	feed  event.Feed
	scope event.SubscriptionScope
	queue chan Record
	quit  chan struct{}
	log   *slog.Logger
	wg    sync.WaitGroup
	once  sync.Once
}

func newNotifier(queueSize int, log *slog.Logger) *notifier {
	res := &notifier{
		queue: make(chan Record, queueSize),
		quit:  make(chan struct{}),
		log:   log,
	}
	res.wg.Add(1)
	go res.run()
	return res
}

func (n *notifier) run() {
	defer n.wg.Done()
	for {
		select {
		case record := <-n.queue:
			n.feed.Send(record)
		case <-n.quit:
			return
		}
	}
}

// subscribe registers the channel for receiving published records.
func (n *notifier) subscribe(ch chan<- Record) event.Subscription {
	sub := n.feed.Subscribe(ch)
	if tracked := n.scope.Track(sub); tracked != nil {
		return tracked
	}
	// the scope has been closed
	sub.Unsubscribe()
	return event.NewSubscription(func(<-chan struct{}) error {
		return ErrEnvironmentUnavailable
	})
}

// publish enqueues the record for delivery.
func (n *notifier) publish(record Record) {
	select {
	case n.queue <- record:
	default:
		n.log.Warn("notification queue full, dropping record", "record", record)
	}
}

// close stops the dispatcher and ends all subscriptions. Records still
// queued are not delivered.
func (n *notifier) close() {
	n.once.Do(func() {
		close(n.quit)
		// unblocks a pending Send of the dispatcher
		n.scope.Close()
		n.wg.Wait()
	})
}

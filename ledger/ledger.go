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
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Fantom-foundation/Donation/common"
	"github.com/Fantom-foundation/Donation/common/amount"
	"github.com/Fantom-foundation/Donation/state"
	"github.com/ethereum/go-ethereum/event"
)

// Ledger accepts donations on behalf of a single beneficiary. Every
// successful submission forwards the attached value to the beneficiary and
// appends a record of the donation; both effects are applied to the
// underlying state in one atomic update.
//
// Submissions are serialized by the ledger. Reads through the Index may
// proceed concurrently with submissions.
type Ledger struct {
	state       state.State
	beneficiary common.Address
	address     common.Address
	codec       *codec
	index       *Index
	notifier    *notifier

	payee     Payee
	clock     func() time.Time
	log       *slog.Logger
	queueSize int

	mu     sync.Mutex // serializes submissions
	closed atomic.Bool
}

// Option configures a ledger.
type Option func(*Ledger)

// WithPayee sets the payee deciding on incoming transfers of the beneficiary.
// By default all transfers are accepted.
func WithPayee(payee Payee) Option {
	return func(l *Ledger) {
		l.payee = payee
	}
}

// WithClock sets the source of submission timestamps. Defaults to time.Now.
func WithClock(clock func() time.Time) Option {
	return func(l *Ledger) {
		l.clock = clock
	}
}

// WithLogger sets the logger of the ledger. Defaults to slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(l *Ledger) {
		l.log = log
	}
}

// WithQueueSize sets the number of records buffered for subscribers. Sizes
// below 1 select DefaultQueueSize.
func WithQueueSize(size int) Option {
	return func(l *Ledger) {
		l.queueSize = size
	}
}

// New creates a ledger for the given beneficiary on top of the given state.
// The beneficiary is recorded in the state; a state that has been created
// for a different beneficiary is rejected. The ledger takes ownership of the
// state and closes it when the ledger is closed.
func New(st state.State, beneficiary common.Address, opts ...Option) (*Ledger, error) {
	if err := st.InitBeneficiary(beneficiary); err != nil {
		if errors.Is(err, state.ErrBeneficiaryMismatch) || errors.Is(err, state.ErrZeroBeneficiary) {
			return nil, err
		}
		return nil, failure(ErrEnvironmentUnavailable, err)
	}

	res := &Ledger{
		state:       st,
		beneficiary: beneficiary,
		address:     LedgerAddress(beneficiary),
		codec:       defaultCodec,
		payee:       acceptAll{},
		clock:       time.Now,
		log:         slog.Default(),
		queueSize:   DefaultQueueSize,
	}
	for _, opt := range opts {
		opt(res)
	}
	if res.queueSize < 1 {
		res.queueSize = DefaultQueueSize
	}
	res.log = res.log.With("ledger", res.address)
	res.index = newIndex(st, res.address)
	res.notifier = newNotifier(res.queueSize, res.log)
	return res, nil
}

// Open creates the state described by the parameters and a ledger on top of it.
func Open(params state.Parameters, beneficiary common.Address, opts ...Option) (*Ledger, error) {
	st, err := state.NewState(params)
	if err != nil {
		if errors.Is(err, state.UnsupportedConfiguration) {
			return nil, err
		}
		return nil, failure(ErrEnvironmentUnavailable, err)
	}
	res, err := New(st, beneficiary, opts...)
	if err != nil {
		return nil, errors.Join(err, st.Close())
	}
	return res, nil
}

// Beneficiary returns the address receiving all donations.
func (l *Ledger) Beneficiary() common.Address {
	return l.beneficiary
}

// Address returns the address the ledger emits its logs from.
func (l *Ledger) Address() common.Address {
	return l.address
}

// Index provides query access to the records of the ledger.
func (l *Ledger) Index() *Index {
	return l.index
}

// Submit forwards the value from the caller to the beneficiary and appends a
// record of the donation. Either both effects take place or, if an error is
// returned, none of them. Zero values and empty reasons are accepted.
//
// The caller and the timestamp are provided by the execution environment;
// external callers should use a Session instead.
func (l *Ledger) Submit(reason string, value amount.Amount, caller common.Address, now uint64) (Receipt, error) {
	return l.submit(reason, value, caller, func() uint64 { return now })
}

// submitAt submits with the current time of the ledger's clock, read once the
// submission holds the ledger so that timestamps follow the append order.
func (l *Ledger) submitAt(reason string, value amount.Amount, caller common.Address) (Receipt, error) {
	return l.submit(reason, value, caller, l.now)
}

func (l *Ledger) submit(reason string, value amount.Amount, caller common.Address, clock func() uint64) (Receipt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed.Load() {
		return Receipt{}, failure(ErrEnvironmentUnavailable, state.ErrClosed)
	}

	if err := l.payee.Accept(caller, value); err != nil {
		return Receipt{}, fmt.Errorf("%w: %w: %w", ErrTransferFailure, ErrTransferRejected, err)
	}

	update, err := l.transfer(caller, value)
	if err != nil {
		return Receipt{}, err
	}

	record := Record{
		Amount:    value,
		Reason:    reason,
		Origin:    caller,
		Timestamp: clock(),
	}
	log, err := l.codec.encode(l.address, record)
	if err != nil {
		return Receipt{}, err
	}
	update.AppendLog(log)

	if err := l.state.Apply(update); err != nil {
		return Receipt{}, failure(ErrEnvironmentUnavailable, err)
	}

	l.notifier.publish(record)
	l.log.Debug("donation recorded", "index", log.Index, "amount", value, "origin", caller)
	return Receipt{
		Index:  log.Index,
		Record: record,
		Log:    log.Copy(),
	}, nil
}

// transfer computes the balance changes of forwarding value from the caller
// to the beneficiary.
func (l *Ledger) transfer(caller common.Address, value amount.Amount) (common.Update, error) {
	update := common.Update{}
	callerBalance, err := l.state.GetBalance(caller)
	if err != nil {
		return update, failure(ErrEnvironmentUnavailable, err)
	}
	remaining, underflow := amount.SubUnderflow(callerBalance, value)
	if underflow {
		return update, failure(ErrTransferFailure, fmt.Errorf("%w: %v has %v, needs %v", ErrInsufficientBalance, caller, callerBalance, value))
	}
	if caller == l.beneficiary {
		return update, nil
	}

	beneficiaryBalance, err := l.state.GetBalance(l.beneficiary)
	if err != nil {
		return update, failure(ErrEnvironmentUnavailable, err)
	}
	received, overflow := amount.AddOverflow(beneficiaryBalance, value)
	if overflow {
		return update, failure(ErrTransferFailure, ErrBalanceOverflow)
	}
	update.AppendBalanceUpdate(caller, remaining)
	update.AppendBalanceUpdate(l.beneficiary, received)
	return update, nil
}

// Subscribe registers the channel for records appended after this call. The
// channel should be drained promptly; records that can not be delivered in
// time are dropped, never blocking or failing a submission.
func (l *Ledger) Subscribe(ch chan<- Record) event.Subscription {
	return l.notifier.subscribe(ch)
}

// NewSession creates a session submitting donations on behalf of the given caller.
func (l *Ledger) NewSession(caller common.Address) *Session {
	return &Session{
		ledger: l,
		caller: caller,
	}
}

// now returns the current ledger time in Unix seconds.
func (l *Ledger) now() uint64 {
	seconds := l.clock().Unix()
	if seconds < 0 {
		return 0
	}
	return uint64(seconds)
}

// Close ends all subscriptions and closes the underlying state. Closing a
// ledger more than once has no effect.
func (l *Ledger) Close() error {
	if !l.closed.CompareAndSwap(false, true) {
		return nil
	}
	// wait for an in-flight submission
	l.mu.Lock()
	defer l.mu.Unlock()
	l.notifier.close()
	return l.state.Close()
}

// Copyright 2025 The Paymentflow Authors
// This file is part of paymentflow.
//
// paymentflow is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// paymentflow is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with paymentflow. If not, see <http://www.gnu.org/licenses/>.

// Package processor owns one shard's Account store and Transaction
// store, and applies operations from its input queue to them one at a
// time, in arrival order (spec §4.5).
package processor

import (
	"github.com/erigontech/paymentflow/internal/account"
	"github.com/erigontech/paymentflow/internal/operation"
	"github.com/erigontech/paymentflow/internal/txstore"
)

// Processor exclusively owns an account.Store and a txstore.Store for
// the duration of a run. It is not safe for concurrent use: the
// dispatcher guarantees a single goroutine ever calls Process on a given
// Processor.
type Processor struct {
	accounts     *account.Store
	transactions *txstore.Store
}

// New returns an empty Processor.
func New() *Processor {
	return &Processor{
		accounts:     account.NewStore(),
		transactions: txstore.NewStore(),
	}
}

// Accounts returns the processor's account store. Intended for the
// dispatcher to collect once the processor's input has drained.
func (p *Processor) Accounts() *account.Store { return p.accounts }

// Process applies one operation. Failures never corrupt state: the two
// checks-before-mutation ordering in the conflict path and the
// reserve/finalize split in the transaction path guarantee that on
// error, nothing changed (spec §4.5, §7).
func (p *Processor) Process(op operation.Operation) error {
	switch o := op.(type) {
	case operation.Transaction:
		return p.transaction(o)
	case operation.Conflict:
		return p.conflict(o)
	default:
		return nil
	}
}

func (p *Processor) transaction(tx operation.Transaction) error {
	rec := txstore.Record{
		Tx:     tx.Tx,
		Client: tx.Client(),
		Amount: tx.Amount,
	}
	switch tx.Kind {
	case operation.Deposit:
		rec.Kind = txstore.Deposit
	case operation.Withdrawal:
		rec.Kind = txstore.Withdrawal
	}

	// Reserve the slot before touching the account, so a duplicate id is
	// rejected without ever mutating a balance (spec §4.3, §9).
	token, err := p.transactions.ReserveInsert(rec)
	if err != nil {
		return err
	}

	acc := p.accounts.GetOrCreate(tx.Client())
	switch tx.Kind {
	case operation.Deposit:
		if err := acc.Deposit(tx.Amount); err != nil {
			return &BalanceOpError{Stage: stageDeposit, Err: err}
		}
	case operation.Withdrawal:
		if err := acc.Withdraw(tx.Amount); err != nil {
			// Drop the reservation: a failed withdrawal leaves no record
			// for a later dispute to reference.
			return &BalanceOpError{Stage: stageWithdraw, Err: err}
		}
	}

	// The balance mutation succeeded; now, and only now, commit the record.
	token.Finalize()
	return nil
}

func (p *Processor) conflict(c operation.Conflict) error {
	target, err := p.transactions.GetMut(c.Tx)
	if err != nil {
		return err
	}

	if target.Client != c.Client() {
		return &ConflictClientMismatchError{Tx: c.Tx, Expected: target.Client, Actual: c.Client()}
	}
	if target.Kind == txstore.Withdrawal {
		return &WithdrawalCannotBeDisputedError{Tx: c.Tx}
	}

	acc := p.accounts.GetOrCreate(target.Client)
	switch c.Kind {
	case operation.Dispute:
		if target.Disputed {
			return &AlreadyDisputedError{Tx: c.Tx}
		}
		if err := acc.Dispute(target.Amount); err != nil {
			return &BalanceOpError{Stage: stageHold, Err: err}
		}
		target.Disputed = true
	case operation.Resolve:
		if !target.Disputed {
			return &NotDisputedError{Tx: c.Tx}
		}
		if err := acc.Release(target.Amount); err != nil {
			return &BalanceOpError{Stage: stageRelease, Err: err}
		}
		target.Disputed = false
	case operation.Chargeback:
		if !target.Disputed {
			return &NotDisputedError{Tx: c.Tx}
		}
		if err := acc.Chargeback(target.Amount); err != nil {
			return &BalanceOpError{Stage: stageChargeback, Err: err}
		}
		target.Disputed = false
	}
	return nil
}

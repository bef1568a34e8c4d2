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

// Package operation models the tagged variant of payment operations read
// from the input CSV: Transaction (deposit/withdrawal, carries an
// amount) and Conflict (dispute/resolve/chargeback, no amount), per
// spec §4.4.
package operation

import (
	"github.com/erigontech/paymentflow/internal/account"
	"github.com/erigontech/paymentflow/internal/money"
	"github.com/erigontech/paymentflow/internal/txstore"
)

// TransactionKind distinguishes deposit from withdrawal.
type TransactionKind int

const (
	Deposit TransactionKind = iota
	Withdrawal
)

// ConflictKind distinguishes dispute/resolve/chargeback.
type ConflictKind int

const (
	Dispute ConflictKind = iota
	Resolve
	Chargeback
)

// Operation is the interface both Transaction and Conflict satisfy so
// the dispatcher can route on client id without caring which kind of
// operation it is carrying.
type Operation interface {
	Client() account.ClientId
}

// Transaction is a deposit or withdrawal: it carries an amount and, on
// success, is recorded in the owning shard's txstore.
type Transaction struct {
	Kind   TransactionKind
	client account.ClientId
	Tx     txstore.TransactionId
	Amount money.Money
}

// NewTransaction builds a Transaction for client.
func NewTransaction(kind TransactionKind, client account.ClientId, tx txstore.TransactionId, amount money.Money) Transaction {
	return Transaction{Kind: kind, client: client, Tx: tx, Amount: amount}
}

// Client returns the target client id.
func (t Transaction) Client() account.ClientId { return t.client }

// Conflict is a dispute, resolve or chargeback: it targets a previously
// recorded Transaction by id and carries no amount of its own (spec §9,
// "dispute amount source").
type Conflict struct {
	Kind   ConflictKind
	client account.ClientId
	Tx     txstore.TransactionId
}

// NewConflict builds a Conflict for client.
func NewConflict(kind ConflictKind, client account.ClientId, tx txstore.TransactionId) Conflict {
	return Conflict{Kind: kind, client: client, Tx: tx}
}

// Client returns the target client id.
func (c Conflict) Client() account.ClientId { return c.client }

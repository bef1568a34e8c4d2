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

// Package txstore tracks the original deposit/withdrawal records a
// Processor has committed, and their disputed flag. Transaction ids are
// only required to be unique within one shard's Store (spec §3); a
// well-formed input has globally unique ids, but this package does not
// and cannot enforce that across shards.
package txstore

import (
	"github.com/erigontech/paymentflow/internal/account"
	"github.com/erigontech/paymentflow/internal/money"
)

// Kind distinguishes the two record types a Store can hold. Conflict
// operations (dispute/resolve/chargeback) are never stored; only
// deposits and withdrawals are (spec §3).
type Kind int

const (
	Deposit Kind = iota
	Withdrawal
)

// Record is the original deposit or withdrawal a later conflict
// operation may reference.
type Record struct {
	Tx       TransactionId
	Client   account.ClientId
	Kind     Kind
	Amount   money.Money
	Disputed bool
}

// Store maps TransactionId to Record. Not safe for concurrent use; each
// Processor owns exactly one for the lifetime of a run.
type Store struct {
	records map[TransactionId]*Record
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{records: make(map[TransactionId]*Record)}
}

// GetMut returns the Record for tx so its Disputed flag can be flipped in
// place, or NotFoundError if tx has no record.
func (s *Store) GetMut(tx TransactionId) (*Record, error) {
	r, ok := s.records[tx]
	if !ok {
		return nil, &NotFoundError{Tx: tx}
	}
	return r, nil
}

// Token is a reservation returned by ReserveInsert. The record is visible
// to nothing until Finalize is called; if the token is simply discarded,
// no record is ever inserted. This lets a Processor check id-uniqueness
// before mutating the Account, yet only commit the record after the
// balance mutation it authorizes actually succeeds (spec §4.3, §9).
type Token struct {
	store  *Store
	tx     TransactionId
	record Record
}

// Finalize commits the reserved record into the store.
func (t *Token) Finalize() {
	rec := t.record
	t.store.records[t.tx] = &rec
}

// ReserveInsert atomically checks that tx is absent and, if so, returns a
// Token that will commit rec when finalized. It does not itself mutate
// the store. Returns ConflictError if tx already has a record.
func (s *Store) ReserveInsert(rec Record) (*Token, error) {
	if _, exists := s.records[rec.Tx]; exists {
		return nil, &ConflictError{Tx: rec.Tx}
	}
	return &Token{store: s, tx: rec.Tx, record: rec}, nil
}

// Insert is reserve+finalize in one step; used directly by tests that
// don't need the two-phase contract.
func (s *Store) Insert(rec Record) error {
	tok, err := s.ReserveInsert(rec)
	if err != nil {
		return err
	}
	tok.Finalize()
	return nil
}

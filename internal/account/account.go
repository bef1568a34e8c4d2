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

// Package account implements the per-client balance state machine: the
// available/held split, the locked flag, and the five balance-mutating
// operations deposit/withdraw/dispute/release/chargeback (spec §4.1).
package account

import "github.com/erigontech/paymentflow/internal/money"

// Account holds one client's balance state. Every mutator either applies
// in full or leaves the Account completely unchanged; there is no partial
// mutation on failure.
type Account struct {
	client    ClientId
	available money.Money
	held      money.Money
	locked    bool
}

// New returns a freshly zeroed Account for client.
func New(client ClientId) *Account {
	return &Account{client: client, available: money.Zero, held: money.Zero}
}

// Client returns the immutable client id this account belongs to.
func (a *Account) Client() ClientId { return a.client }

// Available returns the current spendable balance. May be negative; see
// Dispute.
func (a *Account) Available() money.Money { return a.available }

// Held returns the current amount reserved pending dispute resolution.
func (a *Account) Held() money.Money { return a.held }

// Locked reports whether the account has been frozen by a chargeback.
// Monotone: once true, Deposit/Dispute/Release/Chargeback that happen
// afterwards do not clear it.
func (a *Account) Locked() bool { return a.locked }

// Total is available+held, computed on demand rather than stored (spec §3).
func (a *Account) Total() money.Money { return a.available.Add(a.held) }

// Deposit credits amount to available. Never fails.
func (a *Account) Deposit(amount money.Money) error {
	a.available = a.available.Add(amount)
	return nil
}

// Withdraw debits amount from available. Fails if the account is locked
// (checked first) or if available funds are insufficient.
func (a *Account) Withdraw(amount money.Money) error {
	if a.locked {
		return &LockedError{Client: a.client}
	}
	if a.available.LessThan(amount) {
		return &InsufficientAvailableError{Client: a.client, Needed: amount, Available: a.available}
	}
	a.available = a.available.Sub(amount)
	return nil
}

// Dispute moves amount from available to held. Never fails, and may drive
// available negative if the client already spent the disputed funds (spec
// §4.1, §9 "a deliberate asymmetry").
func (a *Account) Dispute(amount money.Money) error {
	a.available = a.available.Sub(amount)
	a.held = a.held.Add(amount)
	return nil
}

// Release reverses a dispute without loss: held funds move back to
// available. Fails if held funds are insufficient.
func (a *Account) Release(amount money.Money) error {
	if a.held.LessThan(amount) {
		return &InsufficientHeldError{Client: a.client, Needed: amount, Held: a.held}
	}
	a.available = a.available.Add(amount)
	a.held = a.held.Sub(amount)
	return nil
}

// Chargeback finalizes a dispute in the client's favor: held funds are
// dropped and the account is locked against further withdrawals. Fails if
// held funds are insufficient.
func (a *Account) Chargeback(amount money.Money) error {
	if a.held.LessThan(amount) {
		return &InsufficientHeldError{Client: a.client, Needed: amount, Held: a.held}
	}
	a.held = a.held.Sub(amount)
	a.locked = true
	return nil
}

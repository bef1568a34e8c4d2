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

package account

import (
	"fmt"

	"github.com/erigontech/paymentflow/internal/money"
)

// ClientId identifies an account. Unsigned 16-bit per spec §3.
type ClientId uint16

// LockedError is returned when a withdrawal is attempted on a locked
// account. Deposits, disputes, releases and chargebacks are unaffected by
// the lock (spec §4.1).
type LockedError struct {
	Client ClientId
}

func (e *LockedError) Error() string {
	return fmt.Sprintf("account %d is locked", e.Client)
}

// InsufficientAvailableError is returned when a withdrawal exceeds the
// current available balance.
type InsufficientAvailableError struct {
	Client    ClientId
	Needed    money.Money
	Available money.Money
}

func (e *InsufficientAvailableError) Error() string {
	return fmt.Sprintf("account %d has insufficient available funds %s, needed %s", e.Client, e.Available, e.Needed)
}

// InsufficientHeldError is returned when a release or chargeback requests
// more than is currently held.
type InsufficientHeldError struct {
	Client ClientId
	Needed money.Money
	Held   money.Money
}

func (e *InsufficientHeldError) Error() string {
	return fmt.Sprintf("account %d has insufficient held funds %s, needed %s", e.Client, e.Held, e.Needed)
}

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

package processor

import (
	"fmt"

	"github.com/erigontech/paymentflow/internal/account"
	"github.com/erigontech/paymentflow/internal/txstore"
)

// AlreadyDisputedError is returned when a dispute targets a transaction
// that is already under dispute.
type AlreadyDisputedError struct {
	Tx txstore.TransactionId
}

func (e *AlreadyDisputedError) Error() string {
	return fmt.Sprintf("transaction %d already disputed", e.Tx)
}

// NotDisputedError is returned when a resolve or chargeback targets a
// transaction that is not currently under dispute.
type NotDisputedError struct {
	Tx txstore.TransactionId
}

func (e *NotDisputedError) Error() string {
	return fmt.Sprintf("transaction %d not disputed", e.Tx)
}

// ConflictClientMismatchError is returned when a conflict operation's
// client does not match the client on the targeted transaction. Checked
// before the withdrawal-disputability rule, so it always takes priority
// over WithdrawalCannotBeDisputedError (spec §4.5).
type ConflictClientMismatchError struct {
	Tx       txstore.TransactionId
	Expected account.ClientId
	Actual   account.ClientId
}

func (e *ConflictClientMismatchError) Error() string {
	return fmt.Sprintf("conflict for tx %d has client mismatch: expected %d, actual %d", e.Tx, e.Expected, e.Actual)
}

// WithdrawalCannotBeDisputedError is returned when a conflict operation
// targets a withdrawal; only deposits are disputable (spec §4.5, §9).
type WithdrawalCannotBeDisputedError struct {
	Tx txstore.TransactionId
}

func (e *WithdrawalCannotBeDisputedError) Error() string {
	return fmt.Sprintf("transaction %d is a withdrawal and cannot be disputed", e.Tx)
}

// stage tags which balance mutation failed, so the wrapped account-level
// error (Locked/InsufficientAvailable/InsufficientHeld) can be told apart
// by call site (spec §7: DepositFailed/WithdrawFailed/HoldFailed/
// ReleaseFailed/ChargebackFailed).
type stage string

const (
	stageDeposit    stage = "deposit"
	stageWithdraw   stage = "withdraw"
	stageHold       stage = "hold"
	stageRelease    stage = "release"
	stageChargeback stage = "chargeback"
)

// BalanceOpError wraps an account-level error with the stage of the
// processor pipeline it failed in.
type BalanceOpError struct {
	Stage stage
	Err   error
}

func (e *BalanceOpError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
}

func (e *BalanceOpError) Unwrap() error { return e.Err }

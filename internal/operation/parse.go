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

package operation

import (
	"fmt"
	"strings"

	"github.com/erigontech/paymentflow/internal/account"
	"github.com/erigontech/paymentflow/internal/money"
	"github.com/erigontech/paymentflow/internal/numeric"
	"github.com/erigontech/paymentflow/internal/txstore"
)

// Row is the four columns of one input CSV record. Fields may carry
// surrounding whitespace; Parse trims each one. Amount is empty for
// conflict rows (spec §6).
type Row struct {
	Type   string
	Client string
	Tx     string
	Amount string
}

// Parse converts a Row into an Operation. Unknown types and missing
// amounts are reported as typed errors; the caller (the CSV reader
// adapter) is responsible for skipping the row and continuing, per the
// parse-error propagation policy in spec §7.
func Parse(row Row) (Operation, error) {
	client, err := numeric.ParseUint16(strings.TrimSpace(row.Client))
	if err != nil {
		return nil, fmt.Errorf("operation: invalid client %q: %w", row.Client, err)
	}
	tx, err := numeric.ParseUint32(strings.TrimSpace(row.Tx))
	if err != nil {
		return nil, fmt.Errorf("operation: invalid tx %q: %w", row.Tx, err)
	}
	txID := txstore.TransactionId(tx)
	clientID := account.ClientId(client)

	typ := strings.TrimSpace(row.Type)
	switch typ {
	case "deposit", "withdrawal":
		if strings.TrimSpace(row.Amount) == "" {
			return nil, &MissingAmountError{Type: typ, Tx: txID}
		}
		amount, err := money.Parse(strings.TrimSpace(row.Amount))
		if err != nil {
			return nil, fmt.Errorf("operation: invalid amount %q for tx %d: %w", row.Amount, txID, err)
		}
		kind := Deposit
		if typ == "withdrawal" {
			kind = Withdrawal
		}
		return NewTransaction(kind, clientID, txID, amount), nil
	case "dispute":
		return NewConflict(Dispute, clientID, txID), nil
	case "resolve":
		return NewConflict(Resolve, clientID, txID), nil
	case "chargeback":
		return NewConflict(Chargeback, clientID, txID), nil
	default:
		return nil, &UnknownTypeError{Type: typ, Tx: txID}
	}
}

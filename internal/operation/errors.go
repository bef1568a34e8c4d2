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

	"github.com/erigontech/paymentflow/internal/txstore"
)

// UnknownTypeError is returned when a CSV row's type column is not one of
// the five recognized operation kinds.
type UnknownTypeError struct {
	Type string
	Tx   txstore.TransactionId
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown operation type %q for tx %d", e.Type, e.Tx)
}

// MissingAmountError is returned when a deposit or withdrawal row has no
// amount column.
type MissingAmountError struct {
	Type string
	Tx   txstore.TransactionId
}

func (e *MissingAmountError) Error() string {
	return fmt.Sprintf("operation %q for tx %d is missing its amount", e.Type, e.Tx)
}

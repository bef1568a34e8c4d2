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

package txstore

import "fmt"

// TransactionId identifies a deposit or withdrawal record. Unsigned
// 32-bit per spec §3.
type TransactionId uint32

// NotFoundError is returned by GetMut when tx has no record, whether
// because it was never seen or because it was rejected before insertion.
type NotFoundError struct {
	Tx TransactionId
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("transaction %d not found", e.Tx)
}

// ConflictError is returned by ReserveInsert when tx already has a record.
type ConflictError struct {
	Tx TransactionId
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("transaction %d already exists", e.Tx)
}

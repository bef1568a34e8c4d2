// Copyright 2017 The go-ethereum Authors
// (original work)
// Copyright 2024 The Erigon Authors
// (modifications)
// Copyright 2025 The Paymentflow Authors
// (further modifications: trimmed to strict-decimal id parsing)
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

// Package numeric parses the CSV's integer id columns (client, tx). Unlike
// the hex-or-decimal helpers this package is adapted from, the wire
// format here is always plain decimal (spec §6), so hexadecimal input is
// rejected rather than accepted.
package numeric

import (
	"fmt"
	"strconv"
)

// ParseUint16 parses s as a strict base-10 unsigned 16-bit integer, used
// for the CSV client column.
func ParseUint16(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("not a decimal uint16: %w", err)
	}
	return uint16(v), nil
}

// ParseUint32 parses s as a strict base-10 unsigned 32-bit integer, used
// for the CSV tx column.
func ParseUint32(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("not a decimal uint32: %w", err)
	}
	return uint32(v), nil
}

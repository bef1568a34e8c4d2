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

// Package money implements a fixed-precision signed decimal suitable for
// exact account balance arithmetic. It wraps shopspring/decimal rather than
// float64 so that repeated add/sub of client funds never accumulates
// rounding error.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits the engine stores and emits.
// The input format allows up to 4 fractional digits (spec §6); output is
// always rendered at this fixed scale so it round-trips exactly.
const Scale = 4

// Zero is the additive identity.
var Zero = Money{d: decimal.Zero}

// Money is a signed fixed-precision decimal value. The zero value is
// equal to Zero.
type Money struct {
	d decimal.Decimal
}

// Parse reads a decimal string with up to Scale fractional digits. Extra
// fractional digits are rejected rather than silently rounded, since the
// engine must never introduce rounding error into a balance.
func Parse(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("money: parse %q: %w", s, err)
	}
	if -d.Exponent() > Scale {
		return Money{}, fmt.Errorf("money: %q has more than %d fractional digits", s, Scale)
	}
	return Money{d: d}, nil
}

// FromInt builds a Money from a whole number of units, used mostly in tests.
func FromInt(i int64) Money {
	return Money{d: decimal.NewFromInt(i)}
}

// Add returns m + other. Never rounds.
func (m Money) Add(other Money) Money {
	return Money{d: m.d.Add(other.d)}
}

// Sub returns m - other. Never rounds.
func (m Money) Sub(other Money) Money {
	return Money{d: m.d.Sub(other.d)}
}

// Cmp returns -1, 0 or 1 as m is less than, equal to, or greater than other.
func (m Money) Cmp(other Money) int {
	return m.d.Cmp(other.d)
}

// LessThan reports whether m < other.
func (m Money) LessThan(other Money) bool {
	return m.d.LessThan(other.d)
}

// IsNegative reports whether m < 0. Account.available may legitimately be
// negative (spec §4.1); this is a plain observer, not a validity check.
func (m Money) IsNegative() bool {
	return m.d.IsNegative()
}

// String renders m at the fixed Scale, e.g. "12.5000". Trailing zeros are
// always printed so every amount in the output CSV has the same number of
// fractional digits and the exact value (not an approximation) is visible.
func (m Money) String() string {
	return m.d.StringFixed(Scale)
}

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

package ioadapter

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/erigontech/paymentflow/internal/account"
)

// WriteAccounts emits one row per client in store to w, in the
// client,available,held,total,locked format. Row order follows the
// store's iteration order, which is unspecified (spec §6).
func WriteAccounts(w io.Writer, store *account.Store) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return err
	}

	var writeErr error
	store.Iterate(func(id account.ClientId, a *account.Account) {
		if writeErr != nil {
			return
		}
		writeErr = cw.Write([]string{
			strconv.FormatUint(uint64(id), 10),
			a.Available().String(),
			a.Held().String(),
			a.Total().String(),
			strconv.FormatBool(a.Locked()),
		})
	})
	if writeErr != nil {
		return writeErr
	}

	cw.Flush()
	return cw.Error()
}

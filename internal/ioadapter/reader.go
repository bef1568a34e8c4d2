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

// Package ioadapter reads the input operation CSV and writes the output
// account CSV. Row width is flexible (conflict rows may omit amount), and
// malformed rows are skipped rather than aborting the run.
package ioadapter

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/erigontech/paymentflow/internal/operation"
)

// ParseErrorFunc is called once per input row that fails to parse, with
// the reason. A nil func is fine — rows are still skipped, just silently.
type ParseErrorFunc func(reason error)

// ReadOperations parses r as the input CSV and calls emit for every row
// that parses successfully. Malformed rows are skipped; onError, if
// non-nil, is invoked with the parse error for each one.
func ReadOperations(r io.Reader, emit func(operation.Operation), onError ParseErrorFunc) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // conflict rows may have fewer columns than deposit/withdrawal rows
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("input CSV is empty: missing header row")
		}
		return err
	}
	cols, err := columnIndex(header)
	if err != nil {
		return err
	}

	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			if onError != nil {
				onError(err)
			}
			continue
		}

		row := operation.Row{
			Type:   fieldAt(record, cols.typ),
			Client: fieldAt(record, cols.client),
			Tx:     fieldAt(record, cols.tx),
			Amount: fieldAt(record, cols.amount),
		}
		op, err := operation.Parse(row)
		if err != nil {
			if onError != nil {
				onError(err)
			}
			continue
		}
		emit(op)
	}
}

type columns struct {
	typ, client, tx, amount int
}

func columnIndex(header []string) (columns, error) {
	idx := map[string]int{}
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	cols := columns{}
	var ok bool
	if cols.typ, ok = idx["type"]; !ok {
		return columns{}, errors.New(`input CSV header missing required column "type"`)
	}
	if cols.client, ok = idx["client"]; !ok {
		return columns{}, errors.New(`input CSV header missing required column "client"`)
	}
	if cols.tx, ok = idx["tx"]; !ok {
		return columns{}, errors.New(`input CSV header missing required column "tx"`)
	}
	cols.amount, ok = idx["amount"]
	if !ok {
		cols.amount = -1
	}
	return cols, nil
}

func fieldAt(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return record[i]
}

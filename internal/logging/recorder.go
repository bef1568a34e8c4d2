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

package logging

import (
	"go.uber.org/zap"

	"github.com/erigontech/paymentflow/internal/engine"
	"github.com/erigontech/paymentflow/internal/operation"
)

// Recorder adapts a *zap.SugaredLogger to engine.Recorder: every dropped
// operation is logged at Warn, every shard failure at Error. Successful
// applies and queue-depth samples are not logged — they are the common
// case and would drown out the warnings.
type Recorder struct {
	log *zap.SugaredLogger
}

// NewRecorder wraps log as an engine.Recorder.
func NewRecorder(log *zap.SugaredLogger) *Recorder {
	return &Recorder{log: log}
}

func (r *Recorder) Enqueued(int, int) {}

func (r *Recorder) Applied(int, operation.Operation) {}

// Dropped logs the operation that a processor failed to apply.
func (r *Recorder) Dropped(shard int, op operation.Operation, reason error) {
	opKind, tx := describe(op)
	r.log.Warnw("dropped operation",
		"shard", shard,
		"op", opKind,
		"client", op.Client(),
		"tx", tx,
		"reason", reason,
	)
}

// ShardFailed logs an engine-aborting failure.
func (r *Recorder) ShardFailed(err error) {
	r.log.Errorw("shard processor failed", "reason", err)
}

func describe(op operation.Operation) (kind string, tx uint32) {
	switch o := op.(type) {
	case operation.Transaction:
		if o.Kind == operation.Deposit {
			return "deposit", uint32(o.Tx)
		}
		return "withdrawal", uint32(o.Tx)
	case operation.Conflict:
		switch o.Kind {
		case operation.Dispute:
			return "dispute", uint32(o.Tx)
		case operation.Resolve:
			return "resolve", uint32(o.Tx)
		default:
			return "chargeback", uint32(o.Tx)
		}
	default:
		return "unknown", 0
	}
}

var _ engine.Recorder = (*Recorder)(nil)

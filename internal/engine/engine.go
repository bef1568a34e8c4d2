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

// Package engine owns the sharded dispatch that lets N processors make
// progress in parallel while every client's own operations are still
// applied in strict input order by a single processor. Routing is a
// deterministic function of client id (FNV-1a over its big-endian
// encoding) so the property holds without any cross-shard coordination.
package engine

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"github.com/erigontech/paymentflow/internal/account"
	"github.com/erigontech/paymentflow/internal/operation"
	"github.com/erigontech/paymentflow/internal/processor"
	"golang.org/x/sync/errgroup"
)

// Recorder receives best-effort instrumentation from a running Engine. A
// NopRecorder is always safe to pass for callers that don't need it.
type Recorder interface {
	// Enqueued is called once per operation routed to shard, with the
	// queue depth immediately after the send.
	Enqueued(shard int, depth int)
	// Applied is called once per operation a processor applied successfully.
	Applied(shard int, op operation.Operation)
	// Dropped is called once per operation a processor failed to apply.
	Dropped(shard int, op operation.Operation, reason error)
	// ShardFailed is called once, with the first error any processor
	// goroutine returned or panicked with, if Run is about to fail.
	ShardFailed(err error)
}

// NopRecorder implements Recorder with no-ops.
type NopRecorder struct{}

func (NopRecorder) Enqueued(int, int)                       {}
func (NopRecorder) Applied(int, operation.Operation)        {}
func (NopRecorder) Dropped(int, operation.Operation, error) {}
func (NopRecorder) ShardFailed(error)                       {}

// Engine owns the N shard input queues and the processors draining them.
type Engine struct {
	shards   []chan operation.Operation
	recorder Recorder
}

// New constructs an Engine with workers shards, each backed by a channel
// buffered to 256 operations. The queues are bounded: Submit blocks while
// the target shard's buffer is full, until that shard's processor drains
// it. workers is clamped to at least 1.
func New(workers int, recorder Recorder) *Engine {
	if workers < 1 {
		workers = 1
	}
	if recorder == nil {
		recorder = NopRecorder{}
	}
	shards := make([]chan operation.Operation, workers)
	for i := range shards {
		shards[i] = make(chan operation.Operation, 256)
	}
	return &Engine{shards: shards, recorder: recorder}
}

// shardFor computes the deterministic shard index for a client id: every
// operation for the same client id hashes to the same shard, which is
// the property the rest of the ordering guarantee rests on.
func (e *Engine) shardFor(client account.ClientId) int {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], uint16(client))
	h := fnv.New32a()
	h.Write(buf[:])
	return int(h.Sum32() % uint32(len(e.shards)))
}

// Submit routes op to its shard's queue. Must not be called after Close.
func (e *Engine) Submit(op operation.Operation) {
	shard := e.shardFor(op.Client())
	e.shards[shard] <- op
	e.recorder.Enqueued(shard, len(e.shards[shard]))
}

// Close signals that no further operations will be submitted. Each
// shard's processor drains its remaining queue and returns once Close has
// been called and its queue is empty.
func (e *Engine) Close() {
	for _, ch := range e.shards {
		close(ch)
	}
}

// Run starts one processor goroutine per shard, waits for all of them to
// drain their queues, and merges the resulting per-shard account stores
// into one. Per-operation failures are handed to Recorder and do not
// abort the run. Only a processor goroutine panicking does: Run returns a
// *JoiningProcessorsError and no Store, so a partial result is never
// mistaken for a complete one.
//
// Run does not call Close itself; the caller must arrange for Close to
// be invoked once submission is done, or Run blocks forever.
func (e *Engine) Run() (*account.Store, error) {
	g := new(errgroup.Group)
	results := make([]*account.Store, len(e.shards))

	for i, ch := range e.shards {
		shard, queue := i, ch
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("shard %d panicked: %v", shard, r)
				}
			}()
			p := processor.New()
			for op := range queue {
				if procErr := p.Process(op); procErr != nil {
					e.recorder.Dropped(shard, op, procErr)
				} else {
					e.recorder.Applied(shard, op)
				}
			}
			results[shard] = p.Accounts()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		e.recorder.ShardFailed(err)
		return nil, &JoiningProcessorsError{Err: err}
	}

	merged := account.NewStore()
	for _, s := range results {
		if s != nil {
			merged.Merge(s)
		}
	}
	return merged, nil
}

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

package engine

import "fmt"

// JoiningProcessorsError is returned by Run when a shard processor
// terminates abnormally (panics). No partial Store merge is returned
// alongside it: the dispatcher discards every shard's result rather than
// emit a snapshot missing a shard's worth of clients.
type JoiningProcessorsError struct {
	Err error
}

func (e *JoiningProcessorsError) Error() string {
	return fmt.Sprintf("joining shard processors: %v", e.Err)
}

func (e *JoiningProcessorsError) Unwrap() error { return e.Err }

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

package account

// Store is a lazily-populated map from ClientId to *Account. A Store is
// not safe for concurrent use; each Processor owns exactly one for the
// lifetime of a run (spec §4.2).
type Store struct {
	accounts map[ClientId]*Account
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{accounts: make(map[ClientId]*Account)}
}

// GetOrCreate returns the Account for client, creating a freshly zeroed
// one on first touch.
func (s *Store) GetOrCreate(client ClientId) *Account {
	if a, ok := s.accounts[client]; ok {
		return a
	}
	a := New(client)
	s.accounts[client] = a
	return a
}

// Merge moves all entries from other into s. On key collision the
// incoming entry replaces s's entry; this never happens in normal
// operation because the dispatcher guarantees each client lives on
// exactly one shard (spec §4.2).
func (s *Store) Merge(other *Store) {
	for client, a := range other.accounts {
		s.accounts[client] = a
	}
}

// Iterate calls f for every (ClientId, *Account) pair in unspecified
// order (spec §4.2).
func (s *Store) Iterate(f func(ClientId, *Account)) {
	for client, a := range s.accounts {
		f(client, a)
	}
}

// Len returns the number of accounts currently tracked.
func (s *Store) Len() int { return len(s.accounts) }

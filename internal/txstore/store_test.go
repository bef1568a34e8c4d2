package txstore_test

import (
	"testing"

	"github.com/erigontech/paymentflow/internal/account"
	"github.com/erigontech/paymentflow/internal/money"
	"github.com/erigontech/paymentflow/internal/txstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(tx txstore.TransactionId, client account.ClientId) txstore.Record {
	return txstore.Record{Tx: tx, Client: client, Kind: txstore.Deposit, Amount: money.FromInt(1)}
}

func TestGetMutUnknownId(t *testing.T) {
	s := txstore.NewStore()
	_, err := s.GetMut(1)
	var notFound *txstore.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestInsertConflict(t *testing.T) {
	s := txstore.NewStore()
	require.NoError(t, s.Insert(rec(1, 1)))

	err := s.Insert(rec(1, 1))
	var conflict *txstore.ConflictError
	require.ErrorAs(t, err, &conflict)

	_, err = s.ReserveInsert(rec(1, 1))
	require.ErrorAs(t, err, &conflict)
}

func TestDiscardedTokenInsertsNothing(t *testing.T) {
	s := txstore.NewStore()

	// Reserve but never finalize: the record must not appear in the store.
	_, err := s.ReserveInsert(rec(2, 2))
	require.NoError(t, err)

	_, err = s.GetMut(2)
	var notFound *txstore.NotFoundError
	require.ErrorAs(t, err, &notFound)

	// A second reservation for the same id succeeds since nothing committed.
	tok, err := s.ReserveInsert(rec(2, 2))
	require.NoError(t, err)
	tok.Finalize()

	_, err = s.ReserveInsert(rec(2, 2))
	var conflict *txstore.ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestDisputedTransitions(t *testing.T) {
	s := txstore.NewStore()
	require.NoError(t, s.Insert(rec(1, 1)))

	r, err := s.GetMut(1)
	require.NoError(t, err)
	assert.False(t, r.Disputed)

	r.Disputed = true
	r2, _ := s.GetMut(1)
	assert.True(t, r2.Disputed)
}

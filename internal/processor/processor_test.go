package processor_test

import (
	"testing"

	"github.com/erigontech/paymentflow/internal/account"
	"github.com/erigontech/paymentflow/internal/money"
	"github.com/erigontech/paymentflow/internal/operation"
	"github.com/erigontech/paymentflow/internal/processor"
	"github.com/erigontech/paymentflow/internal/txstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deposit(client account.ClientId, tx txstore.TransactionId, amt int64) operation.Transaction {
	return operation.NewTransaction(operation.Deposit, client, tx, money.FromInt(amt))
}

func withdrawal(client account.ClientId, tx txstore.TransactionId, amt int64) operation.Transaction {
	return operation.NewTransaction(operation.Withdrawal, client, tx, money.FromInt(amt))
}

func dispute(client account.ClientId, tx txstore.TransactionId) operation.Conflict {
	return operation.NewConflict(operation.Dispute, client, tx)
}

func resolve(client account.ClientId, tx txstore.TransactionId) operation.Conflict {
	return operation.NewConflict(operation.Resolve, client, tx)
}

func chargeback(client account.ClientId, tx txstore.TransactionId) operation.Conflict {
	return operation.NewConflict(operation.Chargeback, client, tx)
}

func TestConflictClientMismatchTakesPriority(t *testing.T) {
	p := processor.New()
	require.NoError(t, p.Process(deposit(1, 1, 1)))
	require.NoError(t, p.Process(withdrawal(1, 2, 1)))

	// tx=2 is client 1's withdrawal: the mismatch is reported, not
	// WithdrawalCannotBeDisputedError.
	err := p.Process(dispute(2, 2))
	var mismatch *processor.ConflictClientMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, account.ClientId(1), mismatch.Expected)
	assert.Equal(t, account.ClientId(2), mismatch.Actual)
}

func TestWithdrawalCannotBeDisputed(t *testing.T) {
	p := processor.New()
	require.NoError(t, p.Process(deposit(1, 1, 1)))
	require.NoError(t, p.Process(withdrawal(1, 2, 1)))

	err := p.Process(dispute(1, 2))
	var cannotDispute *processor.WithdrawalCannotBeDisputedError
	require.ErrorAs(t, err, &cannotDispute)
}

func TestAlreadyDisputed(t *testing.T) {
	p := processor.New()
	require.NoError(t, p.Process(deposit(1, 1, 1)))
	require.NoError(t, p.Process(dispute(1, 1)))

	err := p.Process(dispute(1, 1))
	var already *processor.AlreadyDisputedError
	require.ErrorAs(t, err, &already)
}

func TestNotDisputed(t *testing.T) {
	p := processor.New()
	require.NoError(t, p.Process(deposit(1, 1, 1)))

	err := p.Process(resolve(1, 1))
	var notDisputed *processor.NotDisputedError
	require.ErrorAs(t, err, &notDisputed)

	err = p.Process(chargeback(1, 1))
	require.ErrorAs(t, err, &notDisputed)
}

func TestDuplicateTxIdIsRejectedAndLeavesOriginalIntact(t *testing.T) {
	p := processor.New()
	require.NoError(t, p.Process(deposit(1, 1, 1)))

	// tx=1 already belongs to client 1; a second record under the same id
	// is rejected regardless of which client or amount it carries.
	err := p.Process(deposit(2, 1, 1))
	var conflict *txstore.ConflictError
	require.ErrorAs(t, err, &conflict)

	// the original record is untouched and still disputable by client 1.
	require.NoError(t, p.Process(dispute(1, 1)))
}

func TestFailedWithdrawalLeavesNoRecord(t *testing.T) {
	p := processor.New()
	err := p.Process(withdrawal(1, 5, 100))
	var insufficientAvail *account.InsufficientAvailableError
	require.ErrorAs(t, err, &insufficientAvail)

	err = p.Process(dispute(1, 5))
	var notFound *txstore.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func accountsSorted(t *testing.T, p *processor.Processor) []*account.Account {
	t.Helper()
	var out []*account.Account
	p.Accounts().Iterate(func(_ account.ClientId, a *account.Account) {
		out = append(out, a)
	})
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].Client() < out[i].Client() {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out
}

func TestPaymentFlow(t *testing.T) {
	p := processor.New()

	require.NoError(t, p.Process(deposit(1, 1, 10)))
	require.NoError(t, p.Process(deposit(1, 2, 20)))
	require.NoError(t, p.Process(withdrawal(1, 3, 10)))

	err := p.Process(deposit(2, 2, 20))
	var conflict *txstore.ConflictError
	require.ErrorAs(t, err, &conflict)

	require.NoError(t, p.Process(deposit(2, 4, 20)))
	require.NoError(t, p.Process(dispute(1, 1)))

	accounts := accountsSorted(t, p)
	require.Len(t, accounts, 2)
	assert.Equal(t, "10.0000", accounts[0].Available().String())
	assert.Equal(t, "10.0000", accounts[0].Held().String())
	assert.Equal(t, "20.0000", accounts[1].Available().String())
	assert.Equal(t, "0.0000", accounts[1].Held().String())

	err = p.Process(dispute(2, 2))
	var mismatch *processor.ConflictClientMismatchError
	require.ErrorAs(t, err, &mismatch)

	err = p.Process(resolve(2, 4))
	var notDisputed *processor.NotDisputedError
	require.ErrorAs(t, err, &notDisputed)

	require.NoError(t, p.Process(dispute(2, 4)))
	require.NoError(t, p.Process(dispute(1, 2)))

	accounts = accountsSorted(t, p)
	assert.Equal(t, "-10.0000", accounts[0].Available().String())
	assert.Equal(t, "30.0000", accounts[0].Held().String())
	assert.Equal(t, "0.0000", accounts[1].Available().String())
	assert.Equal(t, "20.0000", accounts[1].Held().String())

	err = p.Process(chargeback(1, 3))
	var cannotDispute *processor.WithdrawalCannotBeDisputedError
	require.ErrorAs(t, err, &cannotDispute)

	require.NoError(t, p.Process(chargeback(1, 1)))

	accounts = accountsSorted(t, p)
	assert.Equal(t, "-10.0000", accounts[0].Available().String())
	assert.Equal(t, "20.0000", accounts[0].Held().String())
	assert.True(t, accounts[0].Locked())

	err = p.Process(withdrawal(1, 5, 15))
	var locked *account.LockedError
	require.ErrorAs(t, err, &locked)

	require.NoError(t, p.Process(deposit(1, 5, 10)))
	accounts = accountsSorted(t, p)
	assert.Equal(t, "0.0000", accounts[0].Available().String())
	assert.True(t, accounts[0].Locked())

	require.NoError(t, p.Process(resolve(1, 2)))
	accounts = accountsSorted(t, p)
	assert.Equal(t, "20.0000", accounts[0].Available().String())
	assert.Equal(t, "0.0000", accounts[0].Held().String())

	require.NoError(t, p.Process(dispute(1, 2)))
	require.NoError(t, p.Process(chargeback(1, 2)))
	accounts = accountsSorted(t, p)
	assert.Equal(t, "0.0000", accounts[0].Available().String())
	assert.Equal(t, "0.0000", accounts[0].Held().String())
	assert.True(t, accounts[0].Locked())
}

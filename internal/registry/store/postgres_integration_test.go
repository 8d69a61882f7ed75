//go:build integration

package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kycnet/internal/registry/models"
	"kycnet/internal/registry/store"
	"kycnet/pkg/testutil/containers"
)

func newPostgresStore(t *testing.T) *store.Postgres {
	t.Helper()
	pc := containers.GetManager().GetPostgres(t)
	require.NoError(t, pc.Reset(context.Background()))
	return store.NewPostgres(pc.DB)
}

func TestPostgresBankRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newPostgresStore(t)

	_, err := st.GetBank(ctx, "hsbk")
	assert.ErrorIs(t, err, store.ErrNotFound)

	err = st.RunInTx(ctx, func(tx store.Tx) error {
		if err := tx.PutBank(ctx, &models.Bank{Identity: "hsbk", Name: "HSBK", RegNumber: "KZ-001", EligibleToVote: true}); err != nil {
			return err
		}
		_, err := tx.IncrementBankCount(ctx)
		return err
	})
	require.NoError(t, err)

	bank, err := st.GetBank(ctx, "hsbk")
	require.NoError(t, err)
	assert.Equal(t, "HSBK", bank.Name)
	assert.True(t, bank.EligibleToVote)

	count, err := st.BankCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestPostgresBankCounterSurvivesDelete(t *testing.T) {
	ctx := context.Background()
	st := newPostgresStore(t)

	err := st.RunInTx(ctx, func(tx store.Tx) error {
		if err := tx.PutBank(ctx, &models.Bank{Identity: "hsbk", Name: "HSBK"}); err != nil {
			return err
		}
		if _, err := tx.IncrementBankCount(ctx); err != nil {
			return err
		}
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, st.RunInTx(ctx, func(tx store.Tx) error {
		return tx.DeleteBank(ctx, "hsbk")
	}))

	_, err = st.GetBank(ctx, "hsbk")
	assert.ErrorIs(t, err, store.ErrNotFound)

	count, err := st.BankCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestPostgresCustomerUpsert(t *testing.T) {
	ctx := context.Background()
	st := newPostgresStore(t)

	require.NoError(t, st.RunInTx(ctx, func(tx store.Tx) error {
		return tx.PutCustomer(ctx, &models.Customer{UserName: "alice", Data: "d1", Bank: "hsbk"})
	}))
	require.NoError(t, st.RunInTx(ctx, func(tx store.Tx) error {
		return tx.PutCustomer(ctx, &models.Customer{UserName: "alice", Data: "d2", Upvotes: 3, Verified: true, Bank: "hsbk"})
	}))

	customer, err := st.GetCustomer(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "d2", customer.Data)
	assert.Equal(t, 3, customer.Upvotes)
	assert.True(t, customer.Verified)
}

func TestPostgresFindRequestByData(t *testing.T) {
	ctx := context.Background()
	st := newPostgresStore(t)

	require.NoError(t, st.RunInTx(ctx, func(tx store.Tx) error {
		return tx.PutRequest(ctx, &models.KycRequest{UserName: "alice", Bank: "hsbk", Data: "passport:KZ123"})
	}))

	request, err := st.FindRequestByData(ctx, "passport:KZ123")
	require.NoError(t, err)
	assert.Equal(t, "alice", request.UserName)

	_, err = st.FindRequestByData(ctx, "passport:other")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestPostgresFailedTxRollsBack(t *testing.T) {
	ctx := context.Background()
	st := newPostgresStore(t)

	boom := assert.AnError
	err := st.RunInTx(ctx, func(tx store.Tx) error {
		if err := tx.PutBank(ctx, &models.Bank{Identity: "hsbk", Name: "HSBK"}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = st.GetBank(ctx, "hsbk")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestPostgresTxReadsOwnWrites(t *testing.T) {
	ctx := context.Background()
	st := newPostgresStore(t)

	err := st.RunInTx(ctx, func(tx store.Tx) error {
		if err := tx.PutCustomer(ctx, &models.Customer{UserName: "alice", Data: "d", Bank: "hsbk"}); err != nil {
			return err
		}
		customer, err := tx.GetCustomer(ctx, "alice")
		if err != nil {
			return err
		}
		customer.Upvotes = 1
		return tx.PutCustomer(ctx, customer)
	})
	require.NoError(t, err)

	customer, err := st.GetCustomer(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, customer.Upvotes)
}

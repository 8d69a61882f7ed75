package guard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kycnet/internal/registry/models"
	"kycnet/internal/registry/store"
	dErrors "kycnet/pkg/domain-errors"
)

func seedBank(t *testing.T, s *store.InMemory, bank *models.Bank) {
	t.Helper()
	require.NoError(t, s.RunInTx(context.Background(), func(tx store.Tx) error {
		return tx.PutBank(context.Background(), bank)
	}))
}

func TestRequireAdmin(t *testing.T) {
	require.NoError(t, RequireAdmin("0xadmin", "0xadmin"))

	err := RequireAdmin("0xadmin", "0x1")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))

	err = RequireAdmin("0xadmin", "")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func TestRequireBank(t *testing.T) {
	s := store.NewInMemory()
	seedBank(t, s, &models.Bank{Identity: "0x1", Name: "First National"})

	bank, err := RequireBank(context.Background(), s, "0x1")
	require.NoError(t, err)
	assert.Equal(t, "First National", bank.Name)

	_, err = RequireBank(context.Background(), s, "0xunknown")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func TestRequireVotingEligible(t *testing.T) {
	require.NoError(t, RequireVotingEligible(&models.Bank{Identity: "0x1", EligibleToVote: true}))

	// A valid, present bank without the flag is still ineligible.
	err := RequireVotingEligible(&models.Bank{Identity: "0x1"})
	assert.True(t, dErrors.HasCode(err, dErrors.CodeIneligible))

	err = RequireVotingEligible(nil)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeIneligible))
}

func TestRequireCustomer(t *testing.T) {
	s := store.NewInMemory()
	require.NoError(t, s.RunInTx(context.Background(), func(tx store.Tx) error {
		return tx.PutCustomer(context.Background(), &models.Customer{UserName: "alice", Bank: "0x1"})
	}))

	customer, err := RequireCustomer(context.Background(), s, "alice")
	require.NoError(t, err)
	assert.Equal(t, "0x1", customer.Bank)

	_, err = RequireCustomer(context.Background(), s, "bob")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
}

func TestRequireBankPresent_ReportsNotFound(t *testing.T) {
	s := store.NewInMemory()
	seedBank(t, s, &models.Bank{Identity: "0x1"})

	_, err := RequireBankPresent(context.Background(), s, "0x1")
	require.NoError(t, err)

	// Absent target bank is not_found, not unauthorized.
	_, err = RequireBankPresent(context.Background(), s, "0x2")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
}

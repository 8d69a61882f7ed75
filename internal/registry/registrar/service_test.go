package registrar

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kycnet/internal/audit"
	"kycnet/internal/registry/store"
	dErrors "kycnet/pkg/domain-errors"
)

const adminIdentity = "nationalbank"

type capturingPublisher struct {
	events []audit.Event
}

func (p *capturingPublisher) Emit(_ context.Context, event audit.Event) error {
	p.events = append(p.events, event)
	return nil
}

func newTestService(t *testing.T) (*Service, *store.InMemory, *capturingPublisher) {
	t.Helper()
	st := store.NewInMemory()
	pub := &capturingPublisher{}
	return New(st, adminIdentity, WithAuditPublisher(pub)), st, pub
}

func TestAddBank(t *testing.T) {
	ctx := context.Background()

	t.Run("onboards with no voting rights", func(t *testing.T) {
		svc, st, pub := newTestService(t)

		bank, err := svc.AddBank(ctx, adminIdentity, "HSBK", "hsbk", "KZ-001")
		require.NoError(t, err)
		assert.False(t, bank.EligibleToVote)
		assert.Zero(t, bank.ComplaintsReported)
		assert.Zero(t, bank.KycCount)

		count, err := st.BankCount(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		require.Len(t, pub.events, 1)
		assert.Equal(t, string(audit.EventBankAdded), pub.events[0].Kind)
		assert.Equal(t, "hsbk", pub.events[0].Subject)
	})

	t.Run("non-admin is unauthorized", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		_, err := svc.AddBank(ctx, "hsbk", "HSBK", "hsbk", "KZ-001")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	t.Run("re-adding overwrites and still bumps the total", func(t *testing.T) {
		// known quirk: the same identity can be onboarded twice, replacing
		// the record while the bank total keeps growing
		svc, st, _ := newTestService(t)

		_, err := svc.AddBank(ctx, adminIdentity, "HSBK", "hsbk", "KZ-001")
		require.NoError(t, err)
		_, err = svc.SetVotingEligibility(ctx, adminIdentity, "hsbk", true)
		require.NoError(t, err)

		bank, err := svc.AddBank(ctx, adminIdentity, "HSBK Renamed", "hsbk", "KZ-002")
		require.NoError(t, err)
		assert.Equal(t, "HSBK Renamed", bank.Name)
		assert.False(t, bank.EligibleToVote)

		count, err := st.BankCount(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})
}

func TestSetVotingEligibility(t *testing.T) {
	ctx := context.Background()
	svc, st, pub := newTestService(t)

	_, err := svc.AddBank(ctx, adminIdentity, "HSBK", "hsbk", "KZ-001")
	require.NoError(t, err)

	bank, err := svc.SetVotingEligibility(ctx, adminIdentity, "hsbk", true)
	require.NoError(t, err)
	assert.True(t, bank.EligibleToVote)

	// idempotent: granting twice still succeeds
	bank, err = svc.SetVotingEligibility(ctx, adminIdentity, "hsbk", true)
	require.NoError(t, err)
	assert.True(t, bank.EligibleToVote)

	bank, err = svc.SetVotingEligibility(ctx, adminIdentity, "hsbk", false)
	require.NoError(t, err)
	assert.False(t, bank.EligibleToVote)

	stored, err := st.GetBank(ctx, "hsbk")
	require.NoError(t, err)
	assert.False(t, stored.EligibleToVote)

	last := pub.events[len(pub.events)-1]
	assert.Equal(t, string(audit.EventEligibilityChanged), last.Kind)
	assert.Equal(t, "revoked", last.Payload)

	_, err = svc.SetVotingEligibility(ctx, adminIdentity, "missing", true)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))

	_, err = svc.SetVotingEligibility(ctx, "hsbk", "hsbk", true)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func TestRemoveBank(t *testing.T) {
	ctx := context.Background()
	svc, st, _ := newTestService(t)

	_, err := svc.AddBank(ctx, adminIdentity, "HSBK", "hsbk", "KZ-001")
	require.NoError(t, err)
	_, err = svc.AddBank(ctx, adminIdentity, "Kaspi", "kaspi", "KZ-002")
	require.NoError(t, err)

	require.NoError(t, svc.RemoveBank(ctx, adminIdentity, "hsbk"))

	_, err = st.GetBank(ctx, "hsbk")
	assert.ErrorIs(t, err, store.ErrNotFound)

	// the bank total is never decremented, so thresholds keep counting the
	// removed bank
	count, err := st.BankCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	err = svc.RemoveBank(ctx, adminIdentity, "hsbk")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))

	err = svc.RemoveBank(ctx, "kaspi", "kaspi")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

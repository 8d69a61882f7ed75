// Package guard holds the access-control predicates evaluated at the top of
// every registry operation. Each predicate either passes or returns a typed
// domain error; callers abort before any mutation, so a guard failure always
// leaves state untouched.
//
// Operations that mutate customers compose the checks in a fixed order:
// bank, then voting eligibility, then presence. The most specific failure is
// reported first.
package guard

import (
	"context"
	"errors"

	"kycnet/internal/registry/models"
	"kycnet/internal/registry/store"
	dErrors "kycnet/pkg/domain-errors"
)

// RequireAdmin fails unless caller is the configured administrator identity.
func RequireAdmin(admin, caller string) error {
	if caller == "" || caller != admin {
		return dErrors.New(dErrors.CodeUnauthorized, "caller is not the registry administrator")
	}
	return nil
}

// RequireBank fails unless a bank record exists for caller. The bank record
// is returned so follow-up checks do not re-read it.
func RequireBank(ctx context.Context, r store.Reader, caller string) (*models.Bank, error) {
	bank, err := r.GetBank(ctx, caller)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "caller is not a registered bank")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to resolve caller bank")
	}
	return bank, nil
}

// RequireVotingEligible fails unless the bank currently holds voting rights.
func RequireVotingEligible(bank *models.Bank) error {
	if bank == nil || !bank.EligibleToVote {
		return dErrors.New(dErrors.CodeIneligible, "bank is not eligible to vote")
	}
	return nil
}

// RequireCustomer fails unless a customer record exists for userName.
func RequireCustomer(ctx context.Context, r store.Reader, userName string) (*models.Customer, error) {
	customer, err := r.GetCustomer(ctx, userName)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "customer not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load customer")
	}
	return customer, nil
}

// RequireBankPresent fails unless a bank record exists for identity. Unlike
// RequireBank this reports absence as not_found: the identity is an operation
// target here, not the caller.
func RequireBankPresent(ctx context.Context, r store.Reader, identity string) (*models.Bank, error) {
	bank, err := r.GetBank(ctx, identity)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "bank not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load bank")
	}
	return bank, nil
}

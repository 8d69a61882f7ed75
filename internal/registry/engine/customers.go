package engine

import (
	"context"
	"errors"
	"time"

	"kycnet/internal/audit"
	"kycnet/internal/registry/guard"
	"kycnet/internal/registry/models"
	"kycnet/internal/registry/store"
	"kycnet/internal/registry/tracer"
	dErrors "kycnet/pkg/domain-errors"
)

// RegisterCustomer creates a customer owned by the calling bank, with zeroed
// vote counters and an unverified status.
func (s *Service) RegisterCustomer(ctx context.Context, caller, userName, data string) (*models.Customer, error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, tracer.SpanRegisterCustomer,
		tracer.String(tracer.AttrCaller, caller),
		tracer.String(tracer.AttrUserName, userName),
	)

	var customer *models.Customer
	err := s.store.RunInTx(ctx, func(tx store.Tx) error {
		bank, err := guard.RequireBank(ctx, tx, caller)
		if err != nil {
			return err
		}
		if err := guard.RequireVotingEligible(bank); err != nil {
			return err
		}

		if _, err := tx.GetCustomer(ctx, userName); err == nil {
			return dErrors.New(dErrors.CodeAlreadyExists, "customer already registered")
		} else if !errors.Is(err, store.ErrNotFound) {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to check customer presence")
		}

		customer = &models.Customer{
			UserName: userName,
			Data:     data,
			Bank:     caller,
		}
		if err := tx.PutCustomer(ctx, customer); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to store customer")
		}
		return nil
	})
	span.End(err)
	if err != nil {
		return nil, err
	}

	s.cacheInvalidate(ctx, userName)
	s.emit(ctx, audit.EventCustomerRegistered, caller, userName, "")
	if s.metrics != nil {
		s.metrics.CustomersRegistered.Inc()
		s.metrics.ObserveOp("register_customer", start)
	}
	return customer, nil
}

// AmendCustomer replaces the customer's verification data. Both vote
// counters reset to zero, the verified flag clears, and any pending request
// for the same user name is discarded, regardless of prior state.
func (s *Service) AmendCustomer(ctx context.Context, caller, userName, newData string) (*models.Customer, error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, tracer.SpanAmendCustomer,
		tracer.String(tracer.AttrCaller, caller),
		tracer.String(tracer.AttrUserName, userName),
	)

	var customer *models.Customer
	err := s.store.RunInTx(ctx, func(tx store.Tx) error {
		bank, err := guard.RequireBank(ctx, tx, caller)
		if err != nil {
			return err
		}
		if err := guard.RequireVotingEligible(bank); err != nil {
			return err
		}
		customer, err = guard.RequireCustomer(ctx, tx, userName)
		if err != nil {
			return err
		}

		customer.Data = newData
		customer.Upvotes = 0
		customer.Downvotes = 0
		customer.Verified = false
		if err := tx.PutCustomer(ctx, customer); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to store customer")
		}
		if err := tx.DeleteRequest(ctx, userName); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to discard pending request")
		}
		return nil
	})
	span.End(err)
	if err != nil {
		return nil, err
	}

	s.cacheInvalidate(ctx, userName)
	s.emit(ctx, audit.EventCustomerAmended, caller, userName, "")
	if s.metrics != nil {
		s.metrics.ObserveOp("amend_customer", start)
	}
	return customer, nil
}

// RemoveCustomer deletes a customer record.
func (s *Service) RemoveCustomer(ctx context.Context, caller, userName string) error {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, tracer.SpanRemoveCustomer,
		tracer.String(tracer.AttrCaller, caller),
		tracer.String(tracer.AttrUserName, userName),
	)

	err := s.store.RunInTx(ctx, func(tx store.Tx) error {
		bank, err := guard.RequireBank(ctx, tx, caller)
		if err != nil {
			return err
		}
		if err := guard.RequireVotingEligible(bank); err != nil {
			return err
		}
		if _, err := guard.RequireCustomer(ctx, tx, userName); err != nil {
			return err
		}
		if err := tx.DeleteCustomer(ctx, userName); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete customer")
		}
		return nil
	})
	span.End(err)
	if err != nil {
		return err
	}

	s.cacheInvalidate(ctx, userName)
	s.emit(ctx, audit.EventCustomerRemoved, caller, userName, "")
	if s.metrics != nil {
		s.metrics.ObserveOp("remove_customer", start)
	}
	return nil
}

// Upvote casts a favorable attestation on the customer and recomputes the
// derived verification status.
func (s *Service) Upvote(ctx context.Context, caller, userName string) (*models.Customer, error) {
	return s.vote(ctx, caller, userName, true)
}

// Downvote casts an unfavorable attestation on the customer and recomputes
// the derived verification status.
func (s *Service) Downvote(ctx context.Context, caller, userName string) (*models.Customer, error) {
	return s.vote(ctx, caller, userName, false)
}

func (s *Service) vote(ctx context.Context, caller, userName string, up bool) (*models.Customer, error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, tracer.SpanVote,
		tracer.String(tracer.AttrCaller, caller),
		tracer.String(tracer.AttrUserName, userName),
		tracer.Bool(tracer.AttrUpvote, up),
	)

	var customer *models.Customer
	err := s.store.RunInTx(ctx, func(tx store.Tx) error {
		bank, err := guard.RequireBank(ctx, tx, caller)
		if err != nil {
			return err
		}
		if err := guard.RequireVotingEligible(bank); err != nil {
			return err
		}
		customer, err = guard.RequireCustomer(ctx, tx, userName)
		if err != nil {
			return err
		}

		if up {
			customer.Upvotes++
		} else {
			customer.Downvotes++
		}

		numberOfBanks, err := tx.BankCount(ctx)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to read bank count")
		}
		applyStatusRule(customer, numberOfBanks)

		if err := tx.PutCustomer(ctx, customer); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to store customer")
		}
		return nil
	})
	if err != nil {
		span.End(err)
		return nil, err
	}
	span.SetAttributes(tracer.Bool(tracer.AttrVerified, customer.Verified))
	span.End(nil)

	direction := "down"
	if up {
		direction = "up"
	}
	s.cacheInvalidate(ctx, userName)
	s.emit(ctx, audit.EventVoteCast, caller, userName, direction)
	if s.metrics != nil {
		s.metrics.IncrementVote(direction)
		s.metrics.ObserveOp("vote", start)
	}
	return customer, nil
}

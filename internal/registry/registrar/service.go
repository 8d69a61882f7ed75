// Package registrar implements the administrator-only lifecycle of
// participating banks: onboarding, voting-rights changes, and removal.
// Only the single configured administrator identity may call into it.
package registrar

import (
	"context"
	"log/slog"
	"time"

	"kycnet/internal/audit"
	"kycnet/internal/platform/middleware"
	"kycnet/internal/registry/guard"
	"kycnet/internal/registry/metrics"
	"kycnet/internal/registry/models"
	"kycnet/internal/registry/store"
	dErrors "kycnet/pkg/domain-errors"
)

// AuditPublisher records registry actions for the compliance trail.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service mutates the bank roster on behalf of the administrator.
type Service struct {
	store   store.Store
	admin   string
	logger  *slog.Logger
	auditor AuditPublisher
	metrics *metrics.Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) { s.auditor = publisher }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// New builds a registrar bound to the administrator identity admin.
func New(st store.Store, admin string, opts ...Option) *Service {
	s := &Service{store: st, admin: admin}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddBank onboards a bank with zeroed counters and no voting rights; the
// administrator grants eligibility separately. The registered-bank total
// goes up by one on every call.
//
// There is no duplicate-identity check. Re-adding an identity overwrites the
// existing record and still bumps the total, which permanently skews the
// vote and complaint thresholds. That matches the reference behavior this
// registry stays compatible with; the tests pin it down.
func (s *Service) AddBank(ctx context.Context, caller, name, identity, regNumber string) (*models.Bank, error) {
	start := time.Now()
	if err := guard.RequireAdmin(s.admin, caller); err != nil {
		return nil, err
	}

	bank := &models.Bank{
		Identity:  identity,
		Name:      name,
		RegNumber: regNumber,
	}
	err := s.store.RunInTx(ctx, func(tx store.Tx) error {
		if err := tx.PutBank(ctx, bank); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to store bank")
		}
		if _, err := tx.IncrementBankCount(ctx); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to increment bank count")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.emit(ctx, audit.EventBankAdded, caller, identity, name)
	if s.metrics != nil {
		s.metrics.BanksAdded.Inc()
		s.metrics.ObserveOp("add_bank", start)
	}
	return bank, nil
}

// SetVotingEligibility flips the bank's voting rights flag. Setting the flag
// to its current value is a no-op that still succeeds.
func (s *Service) SetVotingEligibility(ctx context.Context, caller, identity string, eligible bool) (*models.Bank, error) {
	start := time.Now()
	if err := guard.RequireAdmin(s.admin, caller); err != nil {
		return nil, err
	}

	var bank *models.Bank
	err := s.store.RunInTx(ctx, func(tx store.Tx) error {
		var err error
		bank, err = guard.RequireBankPresent(ctx, tx, identity)
		if err != nil {
			return err
		}
		bank.EligibleToVote = eligible
		if err := tx.PutBank(ctx, bank); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to store bank")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	payload := "revoked"
	if eligible {
		payload = "granted"
	}
	s.emit(ctx, audit.EventEligibilityChanged, caller, identity, payload)
	if s.metrics != nil {
		s.metrics.ObserveOp("set_voting_eligibility", start)
	}
	return bank, nil
}

// RemoveBank deletes the bank record. The registered-bank total stays where
// it is and customers owned by the bank survive as orphans, matching the
// reference behavior. Customers and pending requests are not cascaded.
func (s *Service) RemoveBank(ctx context.Context, caller, identity string) error {
	start := time.Now()
	if err := guard.RequireAdmin(s.admin, caller); err != nil {
		return err
	}

	err := s.store.RunInTx(ctx, func(tx store.Tx) error {
		if _, err := guard.RequireBankPresent(ctx, tx, identity); err != nil {
			return err
		}
		if err := tx.DeleteBank(ctx, identity); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete bank")
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.emit(ctx, audit.EventBankRemoved, caller, identity, "")
	if s.metrics != nil {
		s.metrics.BanksRemoved.Inc()
		s.metrics.ObserveOp("remove_bank", start)
	}
	return nil
}

func (s *Service) emit(ctx context.Context, kind audit.AuditEvent, actor, subject, payload string) {
	if s.auditor == nil {
		return
	}
	err := s.auditor.Emit(ctx, audit.Event{
		Kind:      string(kind),
		Actor:     actor,
		Subject:   subject,
		Payload:   payload,
		RequestID: middleware.GetRequestID(ctx),
		Client:    middleware.GetClientDescriptor(ctx),
	})
	if err != nil && s.logger != nil {
		s.logger.ErrorContext(ctx, "failed to emit audit event",
			"error", err,
			"kind", kind,
			"actor", actor,
		)
	}
}

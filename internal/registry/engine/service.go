// Package engine implements vote casting, verification-status recomputation,
// and the complaint-driven suspension of misbehaving banks. Every operation
// resolves the caller against the access guards first and mutates registry
// state inside a single store transaction, so a failed precondition never
// leaves a partial write behind.
package engine

import (
	"context"
	"log/slog"

	"kycnet/internal/audit"
	"kycnet/internal/platform/middleware"
	"kycnet/internal/registry/guard"
	"kycnet/internal/registry/metrics"
	"kycnet/internal/registry/models"
	"kycnet/internal/registry/store"
	"kycnet/internal/registry/tracer"
)

// AuditPublisher records registry actions for the compliance trail.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// CustomerCache is an optional read cache for customer details. A miss is
// reported as store.ErrNotFound; all methods are best-effort from the
// engine's point of view.
type CustomerCache interface {
	Find(ctx context.Context, userName string) (*models.Customer, error)
	Save(ctx context.Context, customer *models.Customer) error
	Invalidate(ctx context.Context, userName string) error
}

// Service is the verification engine.
type Service struct {
	store   store.Store
	logger  *slog.Logger
	auditor AuditPublisher
	metrics *metrics.Metrics
	tracer  tracer.Tracer
	cache   CustomerCache
}

// Option configures the Service.
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

func WithTracer(t tracer.Tracer) Option {
	return func(s *Service) { s.tracer = t }
}

func WithCustomerCache(c CustomerCache) Option {
	return func(s *Service) { s.cache = c }
}

func New(st store.Store, opts ...Option) *Service {
	s := &Service{store: st, tracer: tracer.NewNoop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetCustomerDetails returns a customer record. Same guard chain as the
// mutating customer operations: caller must be a voting-eligible bank and the
// customer must exist.
func (s *Service) GetCustomerDetails(ctx context.Context, caller, userName string) (*models.Customer, error) {
	bank, err := guard.RequireBank(ctx, s.store, caller)
	if err != nil {
		return nil, err
	}
	if err := guard.RequireVotingEligible(bank); err != nil {
		return nil, err
	}

	if customer, ok := s.cacheFind(ctx, userName); ok {
		return customer, nil
	}

	customer, err := guard.RequireCustomer(ctx, s.store, userName)
	if err != nil {
		return nil, err
	}
	s.cacheSave(ctx, customer)
	return customer, nil
}

// GetBankDetails returns a bank record to a voting-eligible caller.
func (s *Service) GetBankDetails(ctx context.Context, caller, identity string) (*models.Bank, error) {
	bank, err := guard.RequireBank(ctx, s.store, caller)
	if err != nil {
		return nil, err
	}
	if err := guard.RequireVotingEligible(bank); err != nil {
		return nil, err
	}
	return guard.RequireBankPresent(ctx, s.store, identity)
}

// GetBankComplaintCount returns the number of complaints filed against a bank.
func (s *Service) GetBankComplaintCount(ctx context.Context, caller, identity string) (int, error) {
	target, err := s.GetBankDetails(ctx, caller, identity)
	if err != nil {
		return 0, err
	}
	return target.ComplaintsReported, nil
}

// emit records an audit event, enriched with request correlation and client
// attribution from the context. Audit failures are logged, never fatal.
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

func (s *Service) cacheFind(ctx context.Context, userName string) (*models.Customer, bool) {
	if s.cache == nil {
		return nil, false
	}
	customer, err := s.cache.Find(ctx, userName)
	if err != nil {
		return nil, false
	}
	return customer, true
}

func (s *Service) cacheSave(ctx context.Context, customer *models.Customer) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Save(ctx, customer); err != nil && s.logger != nil {
		s.logger.WarnContext(ctx, "customer cache save failed", "error", err, "user_name", customer.UserName)
	}
}

func (s *Service) cacheInvalidate(ctx context.Context, userName string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, userName); err != nil && s.logger != nil {
		s.logger.WarnContext(ctx, "customer cache invalidation failed", "error", err, "user_name", userName)
	}
}

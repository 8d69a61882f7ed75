package engine

import (
	"context"
	"time"

	"kycnet/internal/audit"
	"kycnet/internal/registry/guard"
	"kycnet/internal/registry/models"
	"kycnet/internal/registry/store"
	"kycnet/internal/registry/tracer"
	dErrors "kycnet/pkg/domain-errors"
)

// ReportBank files a complaint from one registered bank against another.
// When the accumulated complaint count crosses a third of the registered
// bank total the reported bank loses voting eligibility. Eligibility is
// never restored by this path; removal and re-onboarding is the only way
// back in.
func (s *Service) ReportBank(ctx context.Context, caller, reportedIdentity, reportedName string) (*models.Bank, error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, tracer.SpanReportBank,
		tracer.String(tracer.AttrCaller, caller),
		tracer.String(tracer.AttrBank, reportedIdentity),
	)

	var reported *models.Bank
	var suspended bool
	err := s.store.RunInTx(ctx, func(tx store.Tx) error {
		if _, err := guard.RequireBank(ctx, tx, caller); err != nil {
			return err
		}
		bank, err := guard.RequireBankPresent(ctx, tx, reportedIdentity)
		if err != nil {
			return err
		}

		total, err := tx.BankCount(ctx)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to read bank count")
		}

		bank.ComplaintsReported++
		suspended = applySuspensionRule(bank, total)
		if err := tx.PutBank(ctx, bank); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to update reported bank")
		}
		reported = bank
		return nil
	})
	if err != nil {
		span.End(err)
		return nil, err
	}
	if suspended {
		span.AddEvent(tracer.EventSuspended)
	}
	span.End(nil)

	if suspended && s.logger != nil {
		s.logger.WarnContext(ctx, "bank suspended from voting",
			"bank", reportedIdentity,
			"complaints", reported.ComplaintsReported,
		)
	}

	s.emit(ctx, audit.EventBankReported, caller, reportedIdentity, reportedName)
	if s.metrics != nil {
		s.metrics.ComplaintsReported.Inc()
		if suspended {
			s.metrics.BanksSuspended.Inc()
		}
		s.metrics.ObserveOp("report_bank", start)
	}
	return reported, nil
}

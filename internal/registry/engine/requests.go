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

// FileRequest records a pending verification request for a not-yet-registered
// customer and bumps the filing bank's request count. Any registered bank may
// file; voting eligibility is not required.
//
// The duplicate check looks pending requests up by the data blob, not by the
// user name being requested. That mirrors the reference behavior this
// registry is compatible with and is almost certainly a defect there; the
// test suite flags it as a known anomaly rather than correcting it here.
func (s *Service) FileRequest(ctx context.Context, caller, userName, data string) (*models.KycRequest, error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, tracer.SpanFileRequest,
		tracer.String(tracer.AttrCaller, caller),
		tracer.String(tracer.AttrUserName, userName),
	)

	var request *models.KycRequest
	err := s.store.RunInTx(ctx, func(tx store.Tx) error {
		bank, err := guard.RequireBank(ctx, tx, caller)
		if err != nil {
			return err
		}

		if _, err := tx.FindRequestByData(ctx, data); err == nil {
			return dErrors.New(dErrors.CodeDuplicateRequest, "pending request with identical data already filed")
		} else if !errors.Is(err, store.ErrNotFound) {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to check pending requests")
		}

		request = &models.KycRequest{
			UserName: userName,
			Bank:     caller,
			Data:     data,
		}
		if err := tx.PutRequest(ctx, request); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to store request")
		}

		bank.KycCount++
		if err := tx.PutBank(ctx, bank); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to update filing bank")
		}
		return nil
	})
	span.End(err)
	if err != nil {
		return nil, err
	}

	s.emit(ctx, audit.EventRequestFiled, caller, userName, "")
	if s.metrics != nil {
		s.metrics.RequestsFiled.Inc()
		s.metrics.ObserveOp("file_request", start)
	}
	return request, nil
}

// Package handler is the thin HTTP layer over the registrar and the
// verification engine. Handlers resolve the caller identity placed in the
// context by the auth middleware and delegate to the services; no business
// logic lives here.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"kycnet/internal/registry/models"
	"kycnet/pkg/platform/httputil"
	"kycnet/pkg/platform/middleware/auth"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks

// Registrar covers the administrator-only bank lifecycle.
type Registrar interface {
	AddBank(ctx context.Context, caller, name, identity, regNumber string) (*models.Bank, error)
	SetVotingEligibility(ctx context.Context, caller, identity string, eligible bool) (*models.Bank, error)
	RemoveBank(ctx context.Context, caller, identity string) error
}

// Engine covers the bank-facing verification operations.
type Engine interface {
	FileRequest(ctx context.Context, caller, userName, data string) (*models.KycRequest, error)
	RegisterCustomer(ctx context.Context, caller, userName, data string) (*models.Customer, error)
	AmendCustomer(ctx context.Context, caller, userName, newData string) (*models.Customer, error)
	RemoveCustomer(ctx context.Context, caller, userName string) error
	Upvote(ctx context.Context, caller, userName string) (*models.Customer, error)
	Downvote(ctx context.Context, caller, userName string) (*models.Customer, error)
	ReportBank(ctx context.Context, caller, reportedIdentity, reportedName string) (*models.Bank, error)
	GetCustomerDetails(ctx context.Context, caller, userName string) (*models.Customer, error)
	GetBankDetails(ctx context.Context, caller, identity string) (*models.Bank, error)
	GetBankComplaintCount(ctx context.Context, caller, identity string) (int, error)
}

type Handler struct {
	registrar Registrar
	engine    Engine
	logger    *slog.Logger
}

func New(registrar Registrar, engine Engine, logger *slog.Logger) *Handler {
	return &Handler{registrar: registrar, engine: engine, logger: logger}
}

// Register mounts the registry routes. The router is expected to run the
// auth middleware first so the caller identity is present in the context.
func (h *Handler) Register(r chi.Router) {
	r.Post("/admin/banks", h.HandleAddBank)
	r.Put("/admin/banks/{identity}/eligibility", h.HandleSetVotingEligibility)
	r.Delete("/admin/banks/{identity}", h.HandleRemoveBank)

	r.Post("/requests", h.HandleFileRequest)

	r.Post("/customers", h.HandleRegisterCustomer)
	r.Get("/customers/{userName}", h.HandleGetCustomer)
	r.Put("/customers/{userName}", h.HandleAmendCustomer)
	r.Delete("/customers/{userName}", h.HandleRemoveCustomer)
	r.Post("/customers/{userName}/upvote", h.HandleUpvote)
	r.Post("/customers/{userName}/downvote", h.HandleDownvote)

	r.Get("/banks/{identity}", h.HandleGetBank)
	r.Get("/banks/{identity}/complaints", h.HandleGetComplaintCount)
	r.Post("/banks/{identity}/complaints", h.HandleReportBank)
}

// HandleAddBank onboards a bank.
func (h *Handler) HandleAddBank(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndValidate[addBankRequest](w, r, h.logger)
	if !ok {
		return
	}

	bank, err := h.registrar.AddBank(ctx, auth.GetCallerIdentity(ctx), req.Name, req.Identity, req.RegNumber)
	if err != nil {
		h.logger.ErrorContext(ctx, "add bank failed", "error", err, "identity", req.Identity)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, toBankResponse(bank))
}

// HandleSetVotingEligibility grants or revokes a bank's voting rights.
func (h *Handler) HandleSetVotingEligibility(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity := chi.URLParam(r, "identity")
	req, ok := httputil.DecodeJSON[setEligibilityRequest](w, r, h.logger)
	if !ok {
		return
	}

	bank, err := h.registrar.SetVotingEligibility(ctx, auth.GetCallerIdentity(ctx), identity, req.Eligible)
	if err != nil {
		h.logger.ErrorContext(ctx, "set voting eligibility failed", "error", err, "identity", identity)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toBankResponse(bank))
}

// HandleRemoveBank deletes a bank.
func (h *Handler) HandleRemoveBank(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity := chi.URLParam(r, "identity")

	if err := h.registrar.RemoveBank(ctx, auth.GetCallerIdentity(ctx), identity); err != nil {
		h.logger.ErrorContext(ctx, "remove bank failed", "error", err, "identity", identity)
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleFileRequest files a verification request.
func (h *Handler) HandleFileRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndValidate[fileRequestRequest](w, r, h.logger)
	if !ok {
		return
	}

	request, err := h.engine.FileRequest(ctx, auth.GetCallerIdentity(ctx), req.UserName, req.Data)
	if err != nil {
		h.logger.ErrorContext(ctx, "file request failed", "error", err, "user_name", req.UserName)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, toRequestResponse(request))
}

// HandleRegisterCustomer registers a customer owned by the calling bank.
func (h *Handler) HandleRegisterCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndValidate[registerCustomerRequest](w, r, h.logger)
	if !ok {
		return
	}

	customer, err := h.engine.RegisterCustomer(ctx, auth.GetCallerIdentity(ctx), req.UserName, req.Data)
	if err != nil {
		h.logger.ErrorContext(ctx, "register customer failed", "error", err, "user_name", req.UserName)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, toCustomerResponse(customer))
}

// HandleGetCustomer returns customer verification details.
func (h *Handler) HandleGetCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userName := chi.URLParam(r, "userName")

	customer, err := h.engine.GetCustomerDetails(ctx, auth.GetCallerIdentity(ctx), userName)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toCustomerResponse(customer))
}

// HandleAmendCustomer replaces a customer's verification data.
func (h *Handler) HandleAmendCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userName := chi.URLParam(r, "userName")
	req, ok := httputil.DecodeAndValidate[amendCustomerRequest](w, r, h.logger)
	if !ok {
		return
	}

	customer, err := h.engine.AmendCustomer(ctx, auth.GetCallerIdentity(ctx), userName, req.Data)
	if err != nil {
		h.logger.ErrorContext(ctx, "amend customer failed", "error", err, "user_name", userName)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toCustomerResponse(customer))
}

// HandleRemoveCustomer deletes a customer record.
func (h *Handler) HandleRemoveCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userName := chi.URLParam(r, "userName")

	if err := h.engine.RemoveCustomer(ctx, auth.GetCallerIdentity(ctx), userName); err != nil {
		h.logger.ErrorContext(ctx, "remove customer failed", "error", err, "user_name", userName)
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleUpvote casts a favorable attestation.
func (h *Handler) HandleUpvote(w http.ResponseWriter, r *http.Request) {
	h.vote(w, r, h.engine.Upvote)
}

// HandleDownvote casts an unfavorable attestation.
func (h *Handler) HandleDownvote(w http.ResponseWriter, r *http.Request) {
	h.vote(w, r, h.engine.Downvote)
}

func (h *Handler) vote(w http.ResponseWriter, r *http.Request, cast func(ctx context.Context, caller, userName string) (*models.Customer, error)) {
	ctx := r.Context()
	userName := chi.URLParam(r, "userName")

	customer, err := cast(ctx, auth.GetCallerIdentity(ctx), userName)
	if err != nil {
		h.logger.ErrorContext(ctx, "vote failed", "error", err, "user_name", userName)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toCustomerResponse(customer))
}

// HandleGetBank returns bank details.
func (h *Handler) HandleGetBank(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity := chi.URLParam(r, "identity")

	bank, err := h.engine.GetBankDetails(ctx, auth.GetCallerIdentity(ctx), identity)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toBankResponse(bank))
}

// HandleGetComplaintCount returns the number of complaints filed against a
// bank.
func (h *Handler) HandleGetComplaintCount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity := chi.URLParam(r, "identity")

	count, err := h.engine.GetBankComplaintCount(ctx, auth.GetCallerIdentity(ctx), identity)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, complaintCountResponse{Identity: identity, Complaints: count})
}

// HandleReportBank files a complaint against a bank.
func (h *Handler) HandleReportBank(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity := chi.URLParam(r, "identity")
	req, ok := httputil.DecodeJSON[reportBankRequest](w, r, h.logger)
	if !ok {
		return
	}

	bank, err := h.engine.ReportBank(ctx, auth.GetCallerIdentity(ctx), identity, req.ReportedName)
	if err != nil {
		h.logger.ErrorContext(ctx, "report bank failed", "error", err, "identity", identity)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toBankResponse(bank))
}

package httputil

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "kycnet/pkg/domain-errors"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "not found",
			err:        dErrors.New(dErrors.CodeNotFound, "customer not found"),
			wantStatus: http.StatusNotFound,
			wantBody:   `"error":"not_found"`,
		},
		{
			name:       "unauthorized",
			err:        dErrors.New(dErrors.CodeUnauthorized, "caller is not a registered bank"),
			wantStatus: http.StatusUnauthorized,
			wantBody:   `"error":"unauthorized"`,
		},
		{
			name:       "ineligible maps to forbidden",
			err:        dErrors.New(dErrors.CodeIneligible, "bank is not eligible to vote"),
			wantStatus: http.StatusForbidden,
			wantBody:   `"error":"ineligible"`,
		},
		{
			name:       "already exists maps to conflict",
			err:        dErrors.New(dErrors.CodeAlreadyExists, "customer already registered"),
			wantStatus: http.StatusConflict,
			wantBody:   `"error":"already_exists"`,
		},
		{
			name:       "duplicate request maps to conflict",
			err:        dErrors.New(dErrors.CodeDuplicateRequest, "pending request with identical data already filed"),
			wantStatus: http.StatusConflict,
			wantBody:   `"error":"duplicate_request"`,
		},
		{
			name:       "plain error falls back to internal",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"error":"internal_error"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	t.Run("valid body", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"hsbk"}`))
		rec := httptest.NewRecorder()

		req, ok := DecodeJSON[payload](rec, r, nil)
		require.True(t, ok)
		assert.Equal(t, "hsbk", req.Name)
	})

	t.Run("malformed body writes bad request", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
		rec := httptest.NewRecorder()

		_, ok := DecodeJSON[payload](rec, r, nil)
		require.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

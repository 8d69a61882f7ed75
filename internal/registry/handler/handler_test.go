package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"kycnet/internal/registry/handler/mocks"
	"kycnet/internal/registry/models"
	dErrors "kycnet/pkg/domain-errors"
	"kycnet/pkg/platform/middleware/auth"
)

type HandlerSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	registrar *mocks.MockRegistrar
	engine    *mocks.MockEngine
	router    chi.Router
}

func (s *HandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.registrar = mocks.NewMockRegistrar(s.ctrl)
	s.engine = mocks.NewMockEngine(s.ctrl)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := New(s.registrar, s.engine, logger)

	s.router = chi.NewRouter()
	h.Register(s.router)
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

// do performs a request with the given caller identity already resolved, the
// way the auth middleware leaves it.
func (s *HandlerSuite) do(method, target, caller, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	r := httptest.NewRequest(method, target, reader)
	r = r.WithContext(auth.WithCallerIdentity(r.Context(), caller))
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, r)
	return rec
}

func (s *HandlerSuite) TestAddBank() {
	s.registrar.EXPECT().
		AddBank(gomock.Any(), "admin", "HSBK", "hsbk", "KZ-001").
		Return(&models.Bank{Identity: "hsbk", Name: "HSBK", RegNumber: "KZ-001"}, nil)

	rec := s.do(http.MethodPost, "/admin/banks", "admin", `{"name":"HSBK","identity":"hsbk","reg_number":"KZ-001"}`)

	s.Equal(http.StatusCreated, rec.Code)
	s.Contains(rec.Body.String(), `"identity":"hsbk"`)
	s.Contains(rec.Body.String(), `"eligible_to_vote":false`)
}

func (s *HandlerSuite) TestAddBankValidation() {
	rec := s.do(http.MethodPost, "/admin/banks", "admin", `{"name":"HSBK"}`)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "identity is required")
}

func (s *HandlerSuite) TestAddBankUnauthorized() {
	s.registrar.EXPECT().
		AddBank(gomock.Any(), "hsbk", "HSBK", "hsbk", "").
		Return(nil, dErrors.New(dErrors.CodeUnauthorized, "caller is not the registry administrator"))

	rec := s.do(http.MethodPost, "/admin/banks", "hsbk", `{"name":"HSBK","identity":"hsbk"}`)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *HandlerSuite) TestSetVotingEligibility() {
	s.registrar.EXPECT().
		SetVotingEligibility(gomock.Any(), "admin", "hsbk", true).
		Return(&models.Bank{Identity: "hsbk", EligibleToVote: true}, nil)

	rec := s.do(http.MethodPut, "/admin/banks/hsbk/eligibility", "admin", `{"eligible":true}`)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"eligible_to_vote":true`)
}

func (s *HandlerSuite) TestRemoveBank() {
	s.registrar.EXPECT().
		RemoveBank(gomock.Any(), "admin", "hsbk").
		Return(nil)

	rec := s.do(http.MethodDelete, "/admin/banks/hsbk", "admin", "")
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *HandlerSuite) TestFileRequest() {
	s.engine.EXPECT().
		FileRequest(gomock.Any(), "hsbk", "alice", "passport:KZ123").
		Return(&models.KycRequest{UserName: "alice", Bank: "hsbk", Data: "passport:KZ123"}, nil)

	rec := s.do(http.MethodPost, "/requests", "hsbk", `{"user_name":"alice","data":"passport:KZ123"}`)

	s.Equal(http.StatusCreated, rec.Code)
	s.Contains(rec.Body.String(), `"user_name":"alice"`)
}

func (s *HandlerSuite) TestFileRequestDuplicate() {
	s.engine.EXPECT().
		FileRequest(gomock.Any(), "hsbk", "bob", "passport:KZ123").
		Return(nil, dErrors.New(dErrors.CodeDuplicateRequest, "pending request with identical data already filed"))

	rec := s.do(http.MethodPost, "/requests", "hsbk", `{"user_name":"bob","data":"passport:KZ123"}`)

	s.Equal(http.StatusConflict, rec.Code)
	s.Contains(rec.Body.String(), "duplicate_request")
}

func (s *HandlerSuite) TestRegisterCustomer() {
	s.engine.EXPECT().
		RegisterCustomer(gomock.Any(), "hsbk", "alice", "passport:KZ123").
		Return(&models.Customer{UserName: "alice", Data: "passport:KZ123", Bank: "hsbk"}, nil)

	rec := s.do(http.MethodPost, "/customers", "hsbk", `{"user_name":"alice","data":"passport:KZ123"}`)

	s.Equal(http.StatusCreated, rec.Code)
	s.Contains(rec.Body.String(), `"verified":false`)
}

func (s *HandlerSuite) TestGetCustomer() {
	s.engine.EXPECT().
		GetCustomerDetails(gomock.Any(), "hsbk", "alice").
		Return(&models.Customer{UserName: "alice", Verified: true, Upvotes: 2, Bank: "kaspi"}, nil)

	rec := s.do(http.MethodGet, "/customers/alice", "hsbk", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"verified":true`)
	s.Contains(rec.Body.String(), `"upvotes":2`)
}

func (s *HandlerSuite) TestGetCustomerNotFound() {
	s.engine.EXPECT().
		GetCustomerDetails(gomock.Any(), "hsbk", "ghost").
		Return(nil, dErrors.New(dErrors.CodeNotFound, "customer not found"))

	rec := s.do(http.MethodGet, "/customers/ghost", "hsbk", "")
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *HandlerSuite) TestAmendCustomer() {
	s.engine.EXPECT().
		AmendCustomer(gomock.Any(), "hsbk", "alice", "passport:new").
		Return(&models.Customer{UserName: "alice", Data: "passport:new", Bank: "hsbk"}, nil)

	rec := s.do(http.MethodPut, "/customers/alice", "hsbk", `{"data":"passport:new"}`)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"data":"passport:new"`)
}

func (s *HandlerSuite) TestRemoveCustomer() {
	s.engine.EXPECT().
		RemoveCustomer(gomock.Any(), "hsbk", "alice").
		Return(nil)

	rec := s.do(http.MethodDelete, "/customers/alice", "hsbk", "")
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *HandlerSuite) TestUpvote() {
	s.engine.EXPECT().
		Upvote(gomock.Any(), "kaspi", "alice").
		Return(&models.Customer{UserName: "alice", Upvotes: 1, Verified: true}, nil)

	rec := s.do(http.MethodPost, "/customers/alice/upvote", "kaspi", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"verified":true`)
}

func (s *HandlerSuite) TestDownvoteIneligible() {
	s.engine.EXPECT().
		Downvote(gomock.Any(), "shady", "alice").
		Return(nil, dErrors.New(dErrors.CodeIneligible, "bank is not eligible to vote"))

	rec := s.do(http.MethodPost, "/customers/alice/downvote", "shady", "")

	s.Equal(http.StatusForbidden, rec.Code)
	s.Contains(rec.Body.String(), "ineligible")
}

func (s *HandlerSuite) TestGetBank() {
	s.engine.EXPECT().
		GetBankDetails(gomock.Any(), "hsbk", "kaspi").
		Return(&models.Bank{Identity: "kaspi", Name: "Kaspi", EligibleToVote: true}, nil)

	rec := s.do(http.MethodGet, "/banks/kaspi", "hsbk", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"name":"Kaspi"`)
}

func (s *HandlerSuite) TestGetComplaintCount() {
	s.engine.EXPECT().
		GetBankComplaintCount(gomock.Any(), "hsbk", "kaspi").
		Return(3, nil)

	rec := s.do(http.MethodGet, "/banks/kaspi/complaints", "hsbk", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"complaints":3`)
}

func (s *HandlerSuite) TestReportBank() {
	s.engine.EXPECT().
		ReportBank(gomock.Any(), "hsbk", "kaspi", "Kaspi").
		Return(&models.Bank{Identity: "kaspi", ComplaintsReported: 1, EligibleToVote: true}, nil)

	rec := s.do(http.MethodPost, "/banks/kaspi/complaints", "hsbk", `{"reported_name":"Kaspi"}`)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"complaints_reported":1`)
}

func (s *HandlerSuite) TestMalformedBody() {
	rec := s.do(http.MethodPost, "/customers", "hsbk", `{"user_name":`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

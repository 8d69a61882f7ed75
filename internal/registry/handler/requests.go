package handler

import (
	"strings"

	dErrors "kycnet/pkg/domain-errors"
)

// HTTP request DTOs. Converted to plain service arguments before processing.

type addBankRequest struct {
	Name      string `json:"name"`
	Identity  string `json:"identity"`
	RegNumber string `json:"reg_number"`
}

func (r *addBankRequest) Validate() error {
	if strings.TrimSpace(r.Identity) == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "identity is required")
	}
	if strings.TrimSpace(r.Name) == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "name is required")
	}
	return nil
}

type setEligibilityRequest struct {
	Eligible bool `json:"eligible"`
}

type fileRequestRequest struct {
	UserName string `json:"user_name"`
	Data     string `json:"data"`
}

func (r *fileRequestRequest) Validate() error {
	if strings.TrimSpace(r.UserName) == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "user_name is required")
	}
	if r.Data == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "data is required")
	}
	return nil
}

type registerCustomerRequest struct {
	UserName string `json:"user_name"`
	Data     string `json:"data"`
}

func (r *registerCustomerRequest) Validate() error {
	if strings.TrimSpace(r.UserName) == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "user_name is required")
	}
	if r.Data == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "data is required")
	}
	return nil
}

type amendCustomerRequest struct {
	Data string `json:"data"`
}

func (r *amendCustomerRequest) Validate() error {
	if r.Data == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "data is required")
	}
	return nil
}

type reportBankRequest struct {
	ReportedName string `json:"reported_name"`
}

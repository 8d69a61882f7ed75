package handler

import "kycnet/internal/registry/models"

type bankResponse struct {
	Identity           string `json:"identity"`
	Name               string `json:"name"`
	RegNumber          string `json:"reg_number,omitempty"`
	ComplaintsReported int    `json:"complaints_reported"`
	KycCount           int    `json:"kyc_count"`
	EligibleToVote     bool   `json:"eligible_to_vote"`
}

func toBankResponse(b *models.Bank) *bankResponse {
	return &bankResponse{
		Identity:           b.Identity,
		Name:               b.Name,
		RegNumber:          b.RegNumber,
		ComplaintsReported: b.ComplaintsReported,
		KycCount:           b.KycCount,
		EligibleToVote:     b.EligibleToVote,
	}
}

type customerResponse struct {
	UserName  string `json:"user_name"`
	Data      string `json:"data"`
	Verified  bool   `json:"verified"`
	Upvotes   int    `json:"upvotes"`
	Downvotes int    `json:"downvotes"`
	Bank      string `json:"bank"`
}

func toCustomerResponse(c *models.Customer) *customerResponse {
	return &customerResponse{
		UserName:  c.UserName,
		Data:      c.Data,
		Verified:  c.Verified,
		Upvotes:   c.Upvotes,
		Downvotes: c.Downvotes,
		Bank:      c.Bank,
	}
}

type requestResponse struct {
	UserName string `json:"user_name"`
	Bank     string `json:"bank"`
	Data     string `json:"data"`
}

func toRequestResponse(r *models.KycRequest) *requestResponse {
	return &requestResponse{
		UserName: r.UserName,
		Bank:     r.Bank,
		Data:     r.Data,
	}
}

type complaintCountResponse struct {
	Identity   string `json:"identity"`
	Complaints int    `json:"complaints"`
}

package models

// Bank is a verifying institution admitted to the registry by the
// administrator. Only the administrator creates, removes, or re-enables
// banks; the complaint threshold can clear EligibleToVote automatically.
type Bank struct {
	Identity           string
	Name               string
	RegNumber          string
	ComplaintsReported int
	KycCount           int
	EligibleToVote     bool
}

// Customer is an end-customer whose verification status is derived from
// accumulated bank attestations. A customer record exists iff Bank (the
// owning institution) is set.
type Customer struct {
	UserName  string
	Data      string
	Verified  bool
	Upvotes   int
	Downvotes int
	// Bank is the identity of the institution that registered this customer.
	Bank string
}

// Clone returns a copy so callers can mutate without aliasing store state.
func (c *Customer) Clone() *Customer {
	cp := *c
	return &cp
}

// Clone returns a copy so callers can mutate without aliasing store state.
func (b *Bank) Clone() *Bank {
	cp := *b
	return &cp
}

// KycRequest is a filed-but-unresolved verification request. At most one
// pending request exists per user name; filing and customer registration are
// independent paths, and a request is only cleared when the customer's data
// is amended.
type KycRequest struct {
	UserName string
	Bank     string
	Data     string
}

package audit

import "time"

// Event is emitted from domain logic to capture key registry actions. Keep
// it transport-agnostic so stores and sinks can fan out.
type Event struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Kind      string    `json:"kind"`
	// Actor is the caller identity that triggered the action.
	Actor string `json:"actor"`
	// Subject is the record the action applied to (customer user name or
	// bank identity).
	Subject string `json:"subject"`
	// Payload carries event-specific detail, e.g. the reported display name
	// on a bank complaint.
	Payload   string `json:"payload,omitempty"`
	RequestID string `json:"request_id,omitempty"`
	// Client describes the reporting party's client software when known.
	Client string `json:"client,omitempty"`
}

type AuditEvent string

const (
	EventBankAdded          AuditEvent = "bank_added"
	EventBankRemoved        AuditEvent = "bank_removed"
	EventEligibilityChanged AuditEvent = "eligibility_changed"
	EventBankReported       AuditEvent = "bank_reported"
	EventRequestFiled       AuditEvent = "kyc_request_filed"
	EventCustomerRegistered AuditEvent = "customer_registered"
	EventCustomerAmended    AuditEvent = "customer_amended"
	EventCustomerRemoved    AuditEvent = "customer_removed"
	EventVoteCast           AuditEvent = "vote_cast"
)

// Package store is the exclusive keeper of registry state: the customer,
// bank, and pending-request mappings plus the monotonic bank counter. Every
// other component reads and mutates that state only through these interfaces.
package store

import (
	"context"

	"kycnet/internal/registry/models"
	"kycnet/internal/sentinel"
)

// ErrNotFound keeps storage-specific lookups consistent across implementations.
// A get on an absent key returns this rather than a zero-valued record, so
// presence checks cannot be fooled by a record with empty fields.
var ErrNotFound = sentinel.ErrNotFound

// Reader provides point lookups over registry state.
type Reader interface {
	GetCustomer(ctx context.Context, userName string) (*models.Customer, error)
	GetBank(ctx context.Context, identity string) (*models.Bank, error)
	GetRequest(ctx context.Context, userName string) (*models.KycRequest, error)
	// FindRequestByData looks a pending request up by its data blob. The
	// duplicate-filing check is keyed by data content, not user name; see the
	// engine for why this lookup exists.
	FindRequestByData(ctx context.Context, data string) (*models.KycRequest, error)
	// BankCount returns the number of banks ever added. Removal does not
	// decrement it.
	BankCount(ctx context.Context) (int, error)
}

// Writer mutates registry state. Writes are only available inside a
// transaction so read-modify-write sequences stay atomic.
type Writer interface {
	PutCustomer(ctx context.Context, customer *models.Customer) error
	DeleteCustomer(ctx context.Context, userName string) error
	PutBank(ctx context.Context, bank *models.Bank) error
	DeleteBank(ctx context.Context, identity string) error
	PutRequest(ctx context.Context, request *models.KycRequest) error
	DeleteRequest(ctx context.Context, userName string) error
	IncrementBankCount(ctx context.Context) (int, error)
}

// Tx is the view services operate on inside RunInTx. Reads observe the
// transaction's own writes.
type Tx interface {
	Reader
	Writer
}

// Store is the registry storage substrate. Reads outside a transaction may
// run concurrently with each other; RunInTx serializes mutations so no
// caller ever observes a partially-applied operation.
type Store interface {
	Reader
	RunInTx(ctx context.Context, fn func(tx Tx) error) error
}

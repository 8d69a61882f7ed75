package store

import (
	"context"
	"sync"

	"kycnet/internal/registry/models"
)

// InMemory holds registry state in process memory. It is the authoritative
// store for tests and the demo environment.
//
// A single mutex serializes transactions; plain reads take the read lock so
// they can be served concurrently with each other but never interleave with
// an in-flight mutation.
type InMemory struct {
	mu        sync.RWMutex
	customers map[string]*models.Customer
	banks     map[string]*models.Bank
	requests  map[string]*models.KycRequest
	bankCount int
}

// NewInMemory creates an empty in-memory registry store.
func NewInMemory() *InMemory {
	return &InMemory{
		customers: make(map[string]*models.Customer),
		banks:     make(map[string]*models.Bank),
		requests:  make(map[string]*models.KycRequest),
	}
}

func (s *InMemory) GetCustomer(_ context.Context, userName string) (*models.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.customers[userName]; ok {
		return c.Clone(), nil
	}
	return nil, ErrNotFound
}

func (s *InMemory) GetBank(_ context.Context, identity string) (*models.Bank, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if b, ok := s.banks[identity]; ok {
		return b.Clone(), nil
	}
	return nil, ErrNotFound
}

func (s *InMemory) GetRequest(_ context.Context, userName string) (*models.KycRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if r, ok := s.requests[userName]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, ErrNotFound
}

func (s *InMemory) FindRequestByData(_ context.Context, data string) (*models.KycRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.requests {
		if r.Data == data {
			cp := *r
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *InMemory) BankCount(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bankCount, nil
}

// RunInTx executes fn under the store's write lock. Writes are buffered and
// applied only when fn returns nil, so a failed operation leaves no partial
// mutation behind.
func (s *InMemory) RunInTx(_ context.Context, fn func(tx Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := newMemTx(s)
	if err := fn(tx); err != nil {
		return err
	}
	tx.commit()
	return nil
}

// memTx overlays pending writes on the base maps. Reads observe the
// transaction's own writes before falling through to committed state.
type memTx struct {
	s *InMemory

	putCustomers map[string]*models.Customer
	delCustomers map[string]struct{}
	putBanks     map[string]*models.Bank
	delBanks     map[string]struct{}
	putRequests  map[string]*models.KycRequest
	delRequests  map[string]struct{}

	bankCountDelta int
}

func newMemTx(s *InMemory) *memTx {
	return &memTx{
		s:            s,
		putCustomers: make(map[string]*models.Customer),
		delCustomers: make(map[string]struct{}),
		putBanks:     make(map[string]*models.Bank),
		delBanks:     make(map[string]struct{}),
		putRequests:  make(map[string]*models.KycRequest),
		delRequests:  make(map[string]struct{}),
	}
}

func (t *memTx) GetCustomer(_ context.Context, userName string) (*models.Customer, error) {
	if c, ok := t.putCustomers[userName]; ok {
		return c.Clone(), nil
	}
	if _, deleted := t.delCustomers[userName]; deleted {
		return nil, ErrNotFound
	}
	if c, ok := t.s.customers[userName]; ok {
		return c.Clone(), nil
	}
	return nil, ErrNotFound
}

func (t *memTx) GetBank(_ context.Context, identity string) (*models.Bank, error) {
	if b, ok := t.putBanks[identity]; ok {
		return b.Clone(), nil
	}
	if _, deleted := t.delBanks[identity]; deleted {
		return nil, ErrNotFound
	}
	if b, ok := t.s.banks[identity]; ok {
		return b.Clone(), nil
	}
	return nil, ErrNotFound
}

func (t *memTx) GetRequest(_ context.Context, userName string) (*models.KycRequest, error) {
	if r, ok := t.putRequests[userName]; ok {
		cp := *r
		return &cp, nil
	}
	if _, deleted := t.delRequests[userName]; deleted {
		return nil, ErrNotFound
	}
	if r, ok := t.s.requests[userName]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, ErrNotFound
}

func (t *memTx) FindRequestByData(_ context.Context, data string) (*models.KycRequest, error) {
	for _, r := range t.putRequests {
		if r.Data == data {
			cp := *r
			return &cp, nil
		}
	}
	for name, r := range t.s.requests {
		if _, deleted := t.delRequests[name]; deleted {
			continue
		}
		if _, overridden := t.putRequests[name]; overridden {
			continue
		}
		if r.Data == data {
			cp := *r
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (t *memTx) BankCount(_ context.Context) (int, error) {
	return t.s.bankCount + t.bankCountDelta, nil
}

func (t *memTx) PutCustomer(_ context.Context, customer *models.Customer) error {
	t.putCustomers[customer.UserName] = customer.Clone()
	delete(t.delCustomers, customer.UserName)
	return nil
}

func (t *memTx) DeleteCustomer(_ context.Context, userName string) error {
	delete(t.putCustomers, userName)
	t.delCustomers[userName] = struct{}{}
	return nil
}

func (t *memTx) PutBank(_ context.Context, bank *models.Bank) error {
	t.putBanks[bank.Identity] = bank.Clone()
	delete(t.delBanks, bank.Identity)
	return nil
}

func (t *memTx) DeleteBank(_ context.Context, identity string) error {
	delete(t.putBanks, identity)
	t.delBanks[identity] = struct{}{}
	return nil
}

func (t *memTx) PutRequest(_ context.Context, request *models.KycRequest) error {
	cp := *request
	t.putRequests[request.UserName] = &cp
	delete(t.delRequests, request.UserName)
	return nil
}

func (t *memTx) DeleteRequest(_ context.Context, userName string) error {
	delete(t.putRequests, userName)
	t.delRequests[userName] = struct{}{}
	return nil
}

func (t *memTx) IncrementBankCount(_ context.Context) (int, error) {
	t.bankCountDelta++
	return t.s.bankCount + t.bankCountDelta, nil
}

func (t *memTx) commit() {
	for name := range t.delCustomers {
		delete(t.s.customers, name)
	}
	for name, c := range t.putCustomers {
		t.s.customers[name] = c
	}
	for identity := range t.delBanks {
		delete(t.s.banks, identity)
	}
	for identity, b := range t.putBanks {
		t.s.banks[identity] = b
	}
	for name := range t.delRequests {
		delete(t.s.requests, name)
	}
	for name, r := range t.putRequests {
		t.s.requests[name] = r
	}
	t.s.bankCount += t.bankCountDelta
}

// Verify interfaces are satisfied.
var (
	_ Store = (*InMemory)(nil)
	_ Tx    = (*memTx)(nil)
)

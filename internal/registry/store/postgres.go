package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// Registers the pgx stdlib driver used by the connection pool.
	_ "github.com/jackc/pgx/v5/stdlib"

	"kycnet/internal/registry/models"
)

// Postgres persists registry state in PostgreSQL. RunInTx maps onto a
// serializable SQL transaction so the atomicity guarantees match the
// in-memory store.
type Postgres struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed registry store.
func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *Postgres) GetCustomer(ctx context.Context, userName string) (*models.Customer, error) {
	return getCustomer(ctx, s.db, userName)
}

func (s *Postgres) GetBank(ctx context.Context, identity string) (*models.Bank, error) {
	return getBank(ctx, s.db, identity)
}

func (s *Postgres) GetRequest(ctx context.Context, userName string) (*models.KycRequest, error) {
	return getRequest(ctx, s.db, userName)
}

func (s *Postgres) FindRequestByData(ctx context.Context, data string) (*models.KycRequest, error) {
	return findRequestByData(ctx, s.db, data)
}

func (s *Postgres) BankCount(ctx context.Context) (int, error) {
	return bankCount(ctx, s.db)
}

// RunInTx executes fn inside a serializable transaction. Any error from fn
// rolls the transaction back, leaving no partial mutation behind.
func (s *Postgres) RunInTx(ctx context.Context, fn func(tx Tx) error) error {
	sqlTx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := fn(&pgTx{tx: sqlTx}); err != nil {
		_ = sqlTx.Rollback()
		return err
	}
	if err := sqlTx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

type pgTx struct {
	tx *sql.Tx
}

func (t *pgTx) GetCustomer(ctx context.Context, userName string) (*models.Customer, error) {
	return getCustomer(ctx, t.tx, userName)
}

func (t *pgTx) GetBank(ctx context.Context, identity string) (*models.Bank, error) {
	return getBank(ctx, t.tx, identity)
}

func (t *pgTx) GetRequest(ctx context.Context, userName string) (*models.KycRequest, error) {
	return getRequest(ctx, t.tx, userName)
}

func (t *pgTx) FindRequestByData(ctx context.Context, data string) (*models.KycRequest, error) {
	return findRequestByData(ctx, t.tx, data)
}

func (t *pgTx) BankCount(ctx context.Context) (int, error) {
	return bankCount(ctx, t.tx)
}

func (t *pgTx) PutCustomer(ctx context.Context, customer *models.Customer) error {
	if customer == nil {
		return fmt.Errorf("customer is required")
	}
	query := `
		INSERT INTO customers (user_name, data, verified, upvotes, downvotes, bank_identity)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_name) DO UPDATE SET
			data = EXCLUDED.data,
			verified = EXCLUDED.verified,
			upvotes = EXCLUDED.upvotes,
			downvotes = EXCLUDED.downvotes,
			bank_identity = EXCLUDED.bank_identity
	`
	_, err := t.tx.ExecContext(ctx, query,
		customer.UserName,
		customer.Data,
		customer.Verified,
		customer.Upvotes,
		customer.Downvotes,
		customer.Bank,
	)
	if err != nil {
		return fmt.Errorf("put customer: %w", err)
	}
	return nil
}

func (t *pgTx) DeleteCustomer(ctx context.Context, userName string) error {
	if _, err := t.tx.ExecContext(ctx, `DELETE FROM customers WHERE user_name = $1`, userName); err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

func (t *pgTx) PutBank(ctx context.Context, bank *models.Bank) error {
	if bank == nil {
		return fmt.Errorf("bank is required")
	}
	query := `
		INSERT INTO banks (identity, name, reg_number, complaints_reported, kyc_count, eligible_to_vote)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (identity) DO UPDATE SET
			name = EXCLUDED.name,
			reg_number = EXCLUDED.reg_number,
			complaints_reported = EXCLUDED.complaints_reported,
			kyc_count = EXCLUDED.kyc_count,
			eligible_to_vote = EXCLUDED.eligible_to_vote
	`
	_, err := t.tx.ExecContext(ctx, query,
		bank.Identity,
		bank.Name,
		bank.RegNumber,
		bank.ComplaintsReported,
		bank.KycCount,
		bank.EligibleToVote,
	)
	if err != nil {
		return fmt.Errorf("put bank: %w", err)
	}
	return nil
}

func (t *pgTx) DeleteBank(ctx context.Context, identity string) error {
	if _, err := t.tx.ExecContext(ctx, `DELETE FROM banks WHERE identity = $1`, identity); err != nil {
		return fmt.Errorf("delete bank: %w", err)
	}
	return nil
}

func (t *pgTx) PutRequest(ctx context.Context, request *models.KycRequest) error {
	if request == nil {
		return fmt.Errorf("request is required")
	}
	query := `
		INSERT INTO kyc_requests (user_name, bank_identity, data)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_name) DO UPDATE SET
			bank_identity = EXCLUDED.bank_identity,
			data = EXCLUDED.data
	`
	if _, err := t.tx.ExecContext(ctx, query, request.UserName, request.Bank, request.Data); err != nil {
		return fmt.Errorf("put request: %w", err)
	}
	return nil
}

func (t *pgTx) DeleteRequest(ctx context.Context, userName string) error {
	if _, err := t.tx.ExecContext(ctx, `DELETE FROM kyc_requests WHERE user_name = $1`, userName); err != nil {
		return fmt.Errorf("delete request: %w", err)
	}
	return nil
}

func (t *pgTx) IncrementBankCount(ctx context.Context) (int, error) {
	var count int
	query := `
		UPDATE registry_counters
		SET number_of_banks = number_of_banks + 1
		WHERE id = 1
		RETURNING number_of_banks
	`
	if err := t.tx.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("increment bank count: %w", err)
	}
	return count, nil
}

func getCustomer(ctx context.Context, q querier, userName string) (*models.Customer, error) {
	query := `
		SELECT user_name, data, verified, upvotes, downvotes, bank_identity
		FROM customers
		WHERE user_name = $1
	`
	var c models.Customer
	err := q.QueryRowContext(ctx, query, userName).Scan(
		&c.UserName, &c.Data, &c.Verified, &c.Upvotes, &c.Downvotes, &c.Bank,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

func getBank(ctx context.Context, q querier, identity string) (*models.Bank, error) {
	query := `
		SELECT identity, name, reg_number, complaints_reported, kyc_count, eligible_to_vote
		FROM banks
		WHERE identity = $1
	`
	var b models.Bank
	err := q.QueryRowContext(ctx, query, identity).Scan(
		&b.Identity, &b.Name, &b.RegNumber, &b.ComplaintsReported, &b.KycCount, &b.EligibleToVote,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get bank: %w", err)
	}
	return &b, nil
}

func getRequest(ctx context.Context, q querier, userName string) (*models.KycRequest, error) {
	query := `
		SELECT user_name, bank_identity, data
		FROM kyc_requests
		WHERE user_name = $1
	`
	var r models.KycRequest
	err := q.QueryRowContext(ctx, query, userName).Scan(&r.UserName, &r.Bank, &r.Data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get request: %w", err)
	}
	return &r, nil
}

func findRequestByData(ctx context.Context, q querier, data string) (*models.KycRequest, error) {
	query := `
		SELECT user_name, bank_identity, data
		FROM kyc_requests
		WHERE data = $1
		LIMIT 1
	`
	var r models.KycRequest
	err := q.QueryRowContext(ctx, query, data).Scan(&r.UserName, &r.Bank, &r.Data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find request by data: %w", err)
	}
	return &r, nil
}

func bankCount(ctx context.Context, q querier) (int, error) {
	var count int
	err := q.QueryRowContext(ctx, `SELECT number_of_banks FROM registry_counters WHERE id = 1`).Scan(&count)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("bank count: %w", err)
	}
	return count, nil
}

// Verify interfaces are satisfied.
var (
	_ Store = (*Postgres)(nil)
	_ Tx    = (*pgTx)(nil)
)

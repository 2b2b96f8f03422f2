package postgres

import (
	"context"
	"fmt"

	"github.com/ayowande/custpay/internal/domain"
	"github.com/jackc/pgx/v5"
)

type PaymentRepository struct {
	db *DB
}

func NewPaymentRepository(db *DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Insert persists a payment and returns it with the BIGSERIAL id the store
// assigned. Callers only ever receive ids from here, never construct them.
func (r *PaymentRepository) Insert(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	query := `
		INSERT INTO payments (payment_method, description, amount_cents, currency, customer_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	stored := *payment
	err := r.db.Pool.QueryRow(ctx, query,
		payment.PaymentMethod,
		payment.Description,
		payment.AmountCents,
		payment.Currency,
		payment.CustomerID,
	).Scan(&stored.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert payment: %w", err)
	}

	return &stored, nil
}

// FindAll returns every payment ordered by id ascending.
func (r *PaymentRepository) FindAll(ctx context.Context) ([]domain.Payment, error) {
	query := `
		SELECT id, payment_method, description, amount_cents, currency, customer_id
		FROM payments
		ORDER BY id ASC
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query payments: %w", err)
	}

	results, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Payment, error) {
		var p domain.Payment
		err := row.Scan(&p.ID, &p.PaymentMethod, &p.Description, &p.AmountCents, &p.Currency, &p.CustomerID)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan payments: %w", err)
	}

	return results, nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/ayowande/custpay/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CustomerRepository struct {
	db *DB
}

func NewCustomerRepository(db *DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Insert persists a new customer and returns it with the store-generated id.
// The unique constraint on phone_number is the authoritative guard against
// concurrent registrations; a violation is reported as
// domain.ErrPhoneNumberTaken.
func (r *CustomerRepository) Insert(ctx context.Context, name, phoneNumber string) (*domain.Customer, error) {
	query := `
		INSERT INTO customers (name, phone_number)
		VALUES ($1, $2)
		RETURNING id
	`

	var id uuid.UUID
	err := r.db.Pool.QueryRow(ctx, query, name, phoneNumber).Scan(&id)
	if err != nil {
		if IsUniqueViolation(err) {
			return nil, domain.ErrPhoneNumberTaken
		}
		return nil, fmt.Errorf("failed to insert customer: %w", err)
	}

	return &domain.Customer{ID: id, Name: name, PhoneNumber: phoneNumber}, nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	query := `
		SELECT id, name, phone_number
		FROM customers WHERE id = $1
	`

	return scanCustomer(r.db.Pool.QueryRow(ctx, query, id))
}

func (r *CustomerRepository) FindByPhoneNumber(ctx context.Context, phoneNumber string) (*domain.Customer, error) {
	query := `
		SELECT id, name, phone_number
		FROM customers WHERE phone_number = $1
	`

	return scanCustomer(r.db.Pool.QueryRow(ctx, query, phoneNumber))
}

// scanCustomer converts a database row into a domain Customer.
// Returns domain.ErrCustomerNotFound if the row doesn't exist.
func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(&c.ID, &c.Name, &c.PhoneNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to scan customer: %w", err)
	}
	return &c, nil
}

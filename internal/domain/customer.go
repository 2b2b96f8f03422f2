// Package domain defines the domain models for the customer payment service.
package domain

import (
	"github.com/google/uuid"
)

// Customer represents a registered identity keyed uniquely by phone number.
// Customers are created once on first successful registration and never
// mutated or deleted afterwards.
type Customer struct {
	ID          uuid.UUID
	Name        string
	PhoneNumber string
}

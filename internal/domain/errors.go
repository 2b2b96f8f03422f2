package domain

import "errors"

var (
	// ErrCustomerNotFound is returned by customer lookups when no row matches.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrPhoneNumberTaken is returned when an insert hits the unique phone
	// number constraint. Repositories translate the raw SQLSTATE into this
	// sentinel so the services never see driver errors for conflicts.
	ErrPhoneNumberTaken = errors.New("phone number already taken")
)

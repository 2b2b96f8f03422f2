// Package phone validates phone number syntax using the libphonenumber port.
package phone

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// Validator checks that a raw string is a dialable phone number. Numbers
// without an international prefix are parsed against the configured default
// region.
type Validator struct {
	defaultRegion string
}

func NewValidator(defaultRegion string) *Validator {
	return &Validator{defaultRegion: defaultRegion}
}

// Validate returns nil if the number parses and is valid for its region.
func (v *Validator) Validate(phoneNumber string) error {
	region := v.defaultRegion
	if strings.HasPrefix(phoneNumber, "+") {
		// The international prefix carries the region.
		region = ""
	}

	parsed, err := phonenumbers.Parse(phoneNumber, region)
	if err != nil {
		return fmt.Errorf("parse phone number: %w", err)
	}

	if !phonenumbers.IsValidNumber(parsed) {
		return fmt.Errorf("phone number %q is not dialable", phoneNumber)
	}

	return nil
}

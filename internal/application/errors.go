package application

import (
	"errors"
	"fmt"
	"net/http"
)

// ServiceError is the orchestration-level error surfaced to the transport
// layer. Every failure leaving a service is one of these, so the REST layer
// can map outcomes without inspecting infrastructure errors.
type ServiceError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeInvalidInput        = "INVALID_INPUT"
	ErrCodeConflict            = "CONFLICT"
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeUnsupportedCurrency = "UNSUPPORTED_CURRENCY"
	ErrCodePaymentDeclined     = "PAYMENT_DECLINED"
	ErrCodeGatewayFailure      = "GATEWAY_FAILURE"
	ErrCodeInternal            = "INTERNAL_ERROR"
)

func NewInvalidInputError(message string, err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInvalidInput,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
	}
}

func NewConflictError(phoneNumber string) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeConflict,
		Message:    fmt.Sprintf("phone number [%s] is already taken", phoneNumber),
		HTTPStatus: http.StatusConflict,
	}
}

func NewCustomerNotFoundError(customerID string) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeNotFound,
		Message:    fmt.Sprintf("customer [%s] does not exist", customerID),
		HTTPStatus: http.StatusNotFound,
	}
}

func NewUnsupportedCurrencyError(currency string) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeUnsupportedCurrency,
		Message:    fmt.Sprintf("currency [%s] not supported", currency),
		HTTPStatus: http.StatusUnprocessableEntity,
	}
}

func NewPaymentDeclinedError(customerID string) *ServiceError {
	return &ServiceError{
		Code:       ErrCodePaymentDeclined,
		Message:    fmt.Sprintf("card not debited for customer [%s]", customerID),
		HTTPStatus: http.StatusPaymentRequired,
	}
}

// NewGatewayFailureError marks a fault in the charging capability itself, as
// opposed to a definitive decline. Callers can decide whether a retry is safe.
func NewGatewayFailureError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeGatewayFailure,
		Message:    "card charge failed",
		HTTPStatus: http.StatusBadGateway,
		Err:        err,
	}
}

// NewInternalError is the StorageFailure catch-all for persistence faults not
// attributable to a uniqueness conflict.
func NewInternalError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInternal,
		Message:    "an internal error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	ok := errors.As(err, &svcErr)
	return svcErr, ok
}

// ToHTTPStatus maps an error to the HTTP status code the REST layer writes.
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.HTTPStatus
	}
	return http.StatusInternalServerError
}

// ToErrorCode maps an error to the stable code exposed in API responses.
func ToErrorCode(err error) string {
	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.Code
	}
	return ErrCodeInternal
}

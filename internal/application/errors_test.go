package application_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/ayowande/custpay/internal/application"
	"github.com/stretchr/testify/assert"
)

func TestServiceError_HTTPMapping(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantCode   string
	}{
		{application.NewInvalidInputError("bad", nil), http.StatusBadRequest, "INVALID_INPUT"},
		{application.NewConflictError("+34650555111"), http.StatusConflict, "CONFLICT"},
		{application.NewCustomerNotFoundError("abc"), http.StatusNotFound, "NOT_FOUND"},
		{application.NewUnsupportedCurrencyError("GBP"), http.StatusUnprocessableEntity, "UNSUPPORTED_CURRENCY"},
		{application.NewPaymentDeclinedError("abc"), http.StatusPaymentRequired, "PAYMENT_DECLINED"},
		{application.NewGatewayFailureError(errors.New("boom")), http.StatusBadGateway, "GATEWAY_FAILURE"},
		{application.NewInternalError(errors.New("boom")), http.StatusInternalServerError, "INTERNAL_ERROR"},
		{errors.New("raw"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.wantStatus, application.ToHTTPStatus(tt.err), "status for %v", tt.err)
		assert.Equal(t, tt.wantCode, application.ToErrorCode(tt.err), "code for %v", tt.err)
	}

	assert.Equal(t, http.StatusOK, application.ToHTTPStatus(nil))
}

func TestServiceError_UnwrapSupportsErrorsIs(t *testing.T) {
	cause := errors.New("connection reset")
	wrapped := fmt.Errorf("handler: %w", application.NewGatewayFailureError(cause))

	svcErr, ok := application.IsServiceError(wrapped)
	assert.True(t, ok)
	assert.Equal(t, application.ErrCodeGatewayFailure, svcErr.Code)
	assert.ErrorIs(t, wrapped, cause)
}

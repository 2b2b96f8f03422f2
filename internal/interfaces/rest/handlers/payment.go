package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ayowande/custpay/internal/application"
	"github.com/ayowande/custpay/internal/application/services"
	"github.com/ayowande/custpay/internal/domain"
	"github.com/ayowande/custpay/internal/interfaces/rest"
	"github.com/google/uuid"
)

type PaymentRequest struct {
	PaymentMethod      string `json:"paymentMethod" validate:"required"`
	PaymentDescription string `json:"paymentDescription"`
	Amount             int64  `json:"amount" validate:"required,gt=0"`
	Currency           string `json:"currency" validate:"required"`
}

type PaymentResponse struct {
	ID                 int64  `json:"id"`
	PaymentMethod      string `json:"paymentMethod"`
	PaymentDescription string `json:"paymentDescription"`
	Amount             int64  `json:"amount"`
	Currency           string `json:"currency"`
	CustomerID         string `json:"customerId"`
}

func (h *Handlers) ChargePayment(w http.ResponseWriter, r *http.Request) {
	customerID, err := uuid.Parse(r.PathValue("customerId"))
	if err != nil {
		rest.WriteError(w, h.logger, application.NewInvalidInputError("customer id must be a UUID", err))
		return
	}

	var req PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteError(w, h.logger, application.NewInvalidInputError("malformed request body", err))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		rest.WriteError(w, h.logger, application.NewInvalidInputError("missing or invalid request fields", err))
		return
	}

	cmd := services.ChargeCommand{
		PaymentMethod: req.PaymentMethod,
		Description:   req.PaymentDescription,
		AmountCents:   req.Amount,
		Currency:      domain.Currency(req.Currency),
	}

	paymentID, err := h.paymentService.Charge(r.Context(), customerID, cmd)
	if err != nil {
		rest.WriteError(w, h.logger, err)
		return
	}

	h.logger.Info("payment recorded",
		"payment_id", paymentID,
		"customer_id", customerID,
		"amount_cents", req.Amount,
		"currency", req.Currency,
	)
	w.WriteHeader(http.StatusOK)
}

func (h *Handlers) ListPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.paymentService.ListAll(r.Context())
	if err != nil {
		rest.WriteError(w, h.logger, err)
		return
	}

	response := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		response = append(response, PaymentResponse{
			ID:                 p.ID,
			PaymentMethod:      p.PaymentMethod,
			PaymentDescription: p.Description,
			Amount:             p.AmountCents,
			Currency:           string(p.Currency),
			CustomerID:         p.CustomerID.String(),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

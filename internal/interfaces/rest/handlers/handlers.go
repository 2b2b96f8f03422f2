// Package handlers exposes the registration and payment services over HTTP.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ayowande/custpay/internal/application/services"
	"github.com/go-playground/validator"
)

type Handlers struct {
	registrationService *services.RegistrationService
	paymentService      *services.PaymentService
	validate            *validator.Validate
	logger              *slog.Logger
}

func NewHandlers(
	registrationService *services.RegistrationService,
	paymentService *services.PaymentService,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		registrationService: registrationService,
		paymentService:      paymentService,
		validate:            validator.New(),
		logger:              logger,
	}
}

// Router wires the API routes onto a fresh mux.
func (h *Handlers) Router() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/registration", h.RegisterCustomer)
	mux.HandleFunc("POST /api/v1/payment/{customerId}", h.ChargePayment)
	mux.HandleFunc("GET /api/v1/payment", h.ListPayments)
	mux.HandleFunc("GET /health", h.Health)
	return mux
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ayowande/custpay/internal/application"
	"github.com/ayowande/custpay/internal/interfaces/rest"
)

type RegistrationRequest struct {
	Name        string `json:"name" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
}

func (h *Handlers) RegisterCustomer(w http.ResponseWriter, r *http.Request) {
	var req RegistrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteError(w, h.logger, application.NewInvalidInputError("malformed request body", err))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		rest.WriteError(w, h.logger, application.NewInvalidInputError("missing required fields", err))
		return
	}

	if err := h.registrationService.Register(r.Context(), req.Name, req.PhoneNumber); err != nil {
		rest.WriteError(w, h.logger, err)
		return
	}

	h.logger.Info("customer registered", "phone_number", req.PhoneNumber)
	w.WriteHeader(http.StatusOK)
}

package router

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/PawleN-D/africompliance-api/internal/verification"
	"github.com/PawleN-D/africompliance-api/utils"
)

type VerificationRouter struct {
	vs       *verification.Service
	validate *validator.Validate
}

func NewVerificationRouter(vs *verification.Service) *VerificationRouter {
	return &VerificationRouter{
		vs:       vs,
		validate: validator.New(),
	}
}

// HandleVerifyBusiness handles POST /v1/verify/business/za requests
func (vr *VerificationRouter) HandleVerifyBusiness(w http.ResponseWriter, r *http.Request) {
	var req verification.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if err := vr.validate.Struct(req); err != nil {
		http.Error(w, fmt.Sprintf("validation failed: %v", err), http.StatusBadRequest)
		return
	}

	requestID := utils.NewRequestID("req")
	slog.Info("verification request",
		"registration_number", req.RegistrationNumber,
		"request_id", requestID)

	resp := vr.vs.Verify(req, requestID, time.Now().UTC())

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, fmt.Sprintf("failed to encode response: %v", err), http.StatusInternalServerError)
		return
	}
}

package router

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/PawleN-D/africompliance-api/internal/trade"
	"github.com/PawleN-D/africompliance-api/internal/verification"
	"github.com/PawleN-D/africompliance-api/utils"
)

// SupplierVerifier resolves a registration number to a registry record. The
// second return reports a cache hit and is ignored here.
type SupplierVerifier interface {
	LookupCompany(regNumber string) (*verification.Business, bool)
}

type TradeRouter struct {
	calc     *trade.Calculator
	verifier SupplierVerifier
	validate *validator.Validate
}

func NewTradeRouter(calc *trade.Calculator, verifier SupplierVerifier) *TradeRouter {
	return &TradeRouter{
		calc:     calc,
		verifier: verifier,
		validate: validator.New(),
	}
}

// CalculateTradeDTO is the payload for POST /v1/calculate/trade.
type CalculateTradeDTO struct {
	ItemDescription      string   `json:"item_description" validate:"required,min=3,max=500"`
	HSCode               string   `json:"hs_code" validate:"required"`
	ValueZAR             float64  `json:"value_zar" validate:"required,gt=0"`
	Quantity             *float64 `json:"quantity,omitempty" validate:"omitempty,gt=0"`
	UnitOfMeasure        string   `json:"unit_of_measure,omitempty"`
	OriginCountry        string   `json:"origin_country" validate:"required,min=2"`
	DestinationCountry   string   `json:"destination_country" validate:"required,min=2"`
	SupplierRegistration string   `json:"supplier_registration,omitempty"`
	ConsigneeName        string   `json:"consignee_name,omitempty"`
	TransportMode        string   `json:"transport_mode,omitempty"`
}

type calculateTradeResponse struct {
	Status       string                      `json:"status"`
	Transaction  CalculateTradeDTO           `json:"transaction"`
	Calculations trade.CalculationBreakdown  `json:"calculations"`
	Compliance   trade.ComplianceRequirement `json:"compliance"`
	Warnings     []string                    `json:"warnings"`
	CalculatedAt time.Time                   `json:"calculated_at"`
	RequestID    string                      `json:"request_id"`
}

// HandleCalculateTrade handles POST /v1/calculate/trade requests
func (tr *TradeRouter) HandleCalculateTrade(w http.ResponseWriter, r *http.Request) {
	var req CalculateTradeDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if err := tr.validate.Struct(req); err != nil {
		http.Error(w, fmt.Sprintf("validation failed: %v", err), http.StatusBadRequest)
		return
	}

	requestID := utils.NewRequestID("trade")
	slog.Info("trade calculation request",
		"origin", req.OriginCountry,
		"destination", req.DestinationCountry,
		"value_zar", req.ValueZAR,
		"request_id", requestID)

	result := tr.calc.Calculate(trade.ShipmentInput{
		ItemDescription:    req.ItemDescription,
		HSCode:             req.HSCode,
		ValueZAR:           req.ValueZAR,
		OriginCountry:      req.OriginCountry,
		DestinationCountry: req.DestinationCountry,
	})

	warnings := result.Warnings
	if req.SupplierRegistration != "" && !tr.supplierVerified(req.SupplierRegistration) {
		warnings = append(warnings, fmt.Sprintf(
			"Warning: Supplier registration %s could not be verified. Shipment may face delays.",
			req.SupplierRegistration))
	}

	resp := calculateTradeResponse{
		Status:       "success",
		Transaction:  req,
		Calculations: result.Calculations,
		Compliance:   result.Compliance,
		Warnings:     warnings,
		CalculatedAt: time.Now().UTC(),
		RequestID:    requestID,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, fmt.Sprintf("failed to encode response: %v", err), http.StatusInternalServerError)
		return
	}
}

func (tr *TradeRouter) supplierVerified(regNumber string) bool {
	if tr.verifier == nil {
		return false
	}
	business, _ := tr.verifier.LookupCompany(regNumber)
	if business == nil || business.Status != "In Business" {
		slog.Warn("supplier not verified", "registration_number", regNumber)
		return false
	}
	slog.Info("supplier verified", "legal_name", business.LegalName)
	return true
}

package router

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/PawleN-D/africompliance-api/internal/documents"
)

type DocumentsRouter struct {
	ds       *documents.Service
	validate *validator.Validate
}

func NewDocumentsRouter(ds *documents.Service) *DocumentsRouter {
	return &DocumentsRouter{
		ds:       ds,
		validate: validator.New(),
	}
}

// ChecklistDTO is the payload for POST /v1/documents/checklist.
type ChecklistDTO struct {
	DestinationCountry string  `json:"destination_country" validate:"required,min=2"`
	HSCode             string  `json:"hs_code" validate:"required"`
	ValueZAR           float64 `json:"value_zar" validate:"required,gt=0"`
	TradeBloc          string  `json:"trade_bloc,omitempty"`
	TransportMode      string  `json:"transport_mode,omitempty"`
}

type checklistResponse struct {
	DestinationCountry string  `json:"destination_country"`
	HSCode             string  `json:"hs_code"`
	ValueZAR           float64 `json:"value_zar"`
	TradeBloc          string  `json:"trade_bloc,omitempty"`
	documents.Checklist
}

// HandleGenerateChecklist handles POST /v1/documents/checklist requests
func (dr *DocumentsRouter) HandleGenerateChecklist(w http.ResponseWriter, r *http.Request) {
	var req ChecklistDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if err := dr.validate.Struct(req); err != nil {
		http.Error(w, fmt.Sprintf("validation failed: %v", err), http.StatusBadRequest)
		return
	}

	slog.Info("document checklist request",
		"destination", req.DestinationCountry,
		"hs_code", req.HSCode,
		"value_zar", req.ValueZAR)

	checklist := dr.ds.GenerateChecklist(
		req.DestinationCountry,
		req.HSCode,
		req.ValueZAR,
		req.TradeBloc,
		req.TransportMode,
	)

	resp := checklistResponse{
		DestinationCountry: req.DestinationCountry,
		HSCode:             req.HSCode,
		ValueZAR:           req.ValueZAR,
		TradeBloc:          req.TradeBloc,
		Checklist:          checklist,
	}

	slog.Info("checklist generated",
		"required", checklist.TotalRequired,
		"optional", checklist.TotalOptional,
		"permits", len(checklist.PermitsAndCertificates))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, fmt.Sprintf("failed to encode response: %v", err), http.StatusInternalServerError)
		return
	}
}

// documentReference is the static entry returned by the document-info lookup.
type documentReference struct {
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	Issuer             string   `json:"issuer,omitempty"`
	ProcessingTimeDays *int     `json:"processing_time_days,omitempty"`
	CostZAR            *float64 `json:"cost_zar,omitempty"`
	ValidityDays       *int     `json:"validity_days,omitempty"`
	Notes              string   `json:"notes,omitempty"`
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

var commonDocuments = map[string]documentReference{
	"certificate of origin": {
		Name:               "Certificate of Origin",
		Description:        "Certifies the country of origin for preferential duty treatment",
		Issuer:             "SABS or Chamber of Commerce",
		ProcessingTimeDays: intPtr(3),
		CostZAR:            floatPtr(300.0),
		ValidityDays:       intPtr(180),
		Notes:              "Required for SADC/EAC/ECOWAS preferential treatment",
	},
	"commercial invoice": {
		Name:               "Commercial Invoice",
		Description:        "Detailed invoice of goods being shipped",
		Issuer:             "Exporter",
		ProcessingTimeDays: intPtr(1),
		CostZAR:            floatPtr(0.0),
		Notes:              "Must be on company letterhead with authorized signature",
	},
	"phytosanitary certificate": {
		Name:               "Phytosanitary Certificate",
		Description:        "Certifies plant products are pest-free",
		Issuer:             "Department of Agriculture",
		ProcessingTimeDays: intPtr(5),
		CostZAR:            floatPtr(500.0),
		ValidityDays:       intPtr(14),
		Notes:              "Required for all plant and plant product exports",
	},
}

// HandleGetDocumentInfo handles GET /v1/documents/info/{documentName} requests
func (dr *DocumentsRouter) HandleGetDocumentInfo(w http.ResponseWriter, r *http.Request) {
	documentName := r.PathValue("documentName")
	if documentName == "" {
		http.Error(w, "missing documentName in path", http.StatusBadRequest)
		return
	}

	doc, ok := commonDocuments[strings.ToLower(documentName)]
	if !ok {
		doc = documentReference{
			Name:        documentName,
			Description: "Document information not available in database",
			Notes:       "Contact customs broker for specific requirements",
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(doc); err != nil {
		http.Error(w, fmt.Sprintf("failed to encode response: %v", err), http.StatusInternalServerError)
		return
	}
}

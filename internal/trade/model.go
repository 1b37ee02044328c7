package trade

import "github.com/PawleN-D/africompliance-api/internal/tariff"

// DocumentType enumerates the trade documents the calculator can require.
type DocumentType string

const (
	DocCommercialInvoice   DocumentType = "Commercial Invoice"
	DocPackingList         DocumentType = "Packing List"
	DocBillOfLading        DocumentType = "Bill of Lading"
	DocCertificateOfOrigin DocumentType = "Certificate of Origin"
	DocCustomsDeclaration  DocumentType = "Customs Declaration (SAD 500)"
)

// ShipmentInput describes one cross-border shipment. Value and destination
// are validated upstream (HTTP layer); the calculator treats them as given.
type ShipmentInput struct {
	ItemDescription    string
	HSCode             string
	ValueZAR           float64
	OriginCountry      string
	DestinationCountry string
}

// CalculationBreakdown is the monetary side of a compliance calculation.
// All amounts are rounded to 2 decimal places at construction; field names
// follow the public wire format.
type CalculationBreakdown struct {
	BaseValueZAR               float64 `json:"base_value_zar"`
	SAVATRate                  float64 `json:"sa_vat_rate"`
	SAVATAmount                float64 `json:"sa_vat_amount"`
	CustomsDutyRate            float64 `json:"customs_duty_rate"`
	CustomsDutyAmount          float64 `json:"customs_duty_amount"`
	AdditionalFees             float64 `json:"additional_fees"`
	SubtotalBeforeVAT          float64 `json:"subtotal_before_vat"`
	TotalAtBorder              float64 `json:"total_at_border"`
	Currency                   string  `json:"currency"`
	DutySavedViaTradeAgreement float64 `json:"duty_saved_via_trade_agreement"`
}

// ComplianceRequirement lists the documents, permits and notes attached to a
// shipment. Built fresh per calculation and never mutated afterwards.
type ComplianceRequirement struct {
	TradeBloc                  tariff.TradeBloc `json:"trade_bloc"`
	TradeAgreement             *string          `json:"trade_agreement"`
	RequiredDocuments          []DocumentType   `json:"required_documents"`
	OptionalDocuments          []DocumentType   `json:"optional_documents"`
	SpecialPermitsRequired     []string         `json:"special_permits_required"`
	RulesOfOriginRequired      bool             `json:"rules_of_origin_required"`
	MinimumLocalContentPercent *float64         `json:"minimum_local_content_percent"`
	EstimatedClearanceDays     int              `json:"estimated_clearance_days"`
	ComplianceNotes            []string         `json:"compliance_notes"`
	Warnings                   []string         `json:"warnings"`
}

// Result bundles the calculator's three outputs.
type Result struct {
	Calculations CalculationBreakdown
	Compliance   ComplianceRequirement
	Warnings     []string
}

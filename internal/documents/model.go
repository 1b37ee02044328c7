package documents

// DocumentCategory groups trade documents by function.
type DocumentCategory string

const (
	CategoryCommercial DocumentCategory = "Commercial Documentation"
	CategoryCustoms    DocumentCategory = "Customs & Clearance"
	CategoryTransport  DocumentCategory = "Transport & Logistics"
	CategoryCompliance DocumentCategory = "Compliance & Permits"
	CategoryFinancial  DocumentCategory = "Financial & Payment"
)

// RequirementLevel states how strongly a document is needed.
type RequirementLevel string

const (
	RequirementRequired    RequirementLevel = "required"
	RequirementOptional    RequirementLevel = "optional"
	RequirementRecommended RequirementLevel = "recommended"
	RequirementConditional RequirementLevel = "conditional"
)

// DocumentInfo describes a single document on a checklist.
type DocumentInfo struct {
	Name               string           `json:"name"`
	Category           DocumentCategory `json:"category"`
	RequirementLevel   RequirementLevel `json:"requirement_level"`
	Description        string           `json:"description"`
	Issuer             string           `json:"issuer"`
	ValidityDays       *int             `json:"validity_days"`
	Notes              *string          `json:"notes"`
	EstimatedCostZAR   *float64         `json:"estimated_cost_zar"`
	ProcessingTimeDays *int             `json:"processing_time_days"`
}

// Checklist is the organized result of a checklist generation: documents
// bucketed by requirement, plus summary figures, warnings and tips.
type Checklist struct {
	RequiredDocuments       []DocumentInfo `json:"required_documents"`
	OptionalDocuments       []DocumentInfo `json:"optional_documents"`
	PermitsAndCertificates  []DocumentInfo `json:"permits_and_certificates"`
	TotalRequired           int            `json:"total_required"`
	TotalOptional           int            `json:"total_optional"`
	EstimatedTotalCostZAR   float64        `json:"estimated_total_cost_zar"`
	EstimatedProcessingDays int            `json:"estimated_processing_days"`
	Warnings                []string       `json:"warnings"`
	Tips                    []string       `json:"tips"`
}

func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }
func floatPtr(v float64) *float64 { return &v }

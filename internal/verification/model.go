package verification

import (
	"time"

	"github.com/PawleN-D/africompliance-api/internal/risk"
)

// Status of a verification request.
type Status string

const (
	StatusVerified Status = "verified"
	StatusPending  Status = "pending"
	StatusFailed   Status = "failed"
	StatusNotFound Status = "not_found"
)

// Address is a South African physical address.
type Address struct {
	Street     string `json:"street,omitempty"`
	Suburb     string `json:"suburb,omitempty"`
	City       string `json:"city,omitempty"`
	Province   string `json:"province,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
}

// Director holds company director information. ID numbers are masked before
// they leave this package (POPIA).
type Director struct {
	FullName        string `json:"full_name"`
	IDNumber        string `json:"id_number,omitempty"`
	AppointmentDate string `json:"appointment_date,omitempty"`
	IsActive        bool   `json:"is_active"`
	Designation     string `json:"designation,omitempty"`
}

// Business is the registry record for a verified company.
type Business struct {
	LegalName          string     `json:"legal_name"`
	RegistrationNumber string     `json:"registration_number"`
	Status             string     `json:"status"`
	RegistrationDate   string     `json:"registration_date,omitempty"`
	BusinessType       string     `json:"business_type,omitempty"`
	RegisteredAddress  *Address   `json:"registered_address,omitempty"`
	VATRegistered      bool       `json:"vat_registered"`
	VATNumber          string     `json:"vat_number,omitempty"`
	Directors          []Director `json:"directors,omitempty"`
}

// POPIACompliance records the data-handling terms applied to a response.
type POPIACompliance struct {
	ConsentObtained   bool   `json:"popia_consent_obtained"`
	DataRetentionDays int    `json:"data_retention_days"`
	DataSource        string `json:"data_source"`
}

// Request is the payload for POST /v1/verify/business/za.
type Request struct {
	RegistrationNumber string `json:"registration_number" validate:"required"`
	VATNumber          string `json:"vat_number,omitempty" validate:"omitempty,len=10,startswith=4,number"`
	VerifyDirectors    *bool  `json:"verify_directors,omitempty"`
	CheckSanctions     *bool  `json:"check_sanctions,omitempty"`
	CustomerReference  string `json:"customer_reference,omitempty"`
}

// Response is the outcome of a business verification.
type Response struct {
	Status          Status          `json:"status"`
	ConfidenceScore int             `json:"confidence_score"`
	RiskLevel       string          `json:"risk_level"`
	Business        *Business       `json:"business"`
	Directors       []Director      `json:"directors,omitempty"`
	RiskFlags       risk.Flags      `json:"risk_flags"`
	POPIACompliance POPIACompliance `json:"popia_compliance"`
	DataSource      string          `json:"data_source"`
	VerifiedAt      time.Time       `json:"verified_at"`
	RequestID       string          `json:"request_id"`
	CacheHit        bool            `json:"cache_hit"`
}

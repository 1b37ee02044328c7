package hscode

// Record is one entry in the HS code reference table, as stored in the
// dataset JSON.
type Record struct {
	Code               string   `json:"code"`
	Description        string   `json:"description"`
	Category           string   `json:"category"`
	Chapter            string   `json:"chapter"`
	Section            string   `json:"section"`
	DutyRateGeneral    float64  `json:"duty_rate_general"`
	VATApplicable      bool     `json:"vat_applicable"`
	SpecialPermits     []string `json:"special_permits"`
	CommonDestinations []string `json:"common_destinations"`
	Notes              string   `json:"notes,omitempty"`
}

// Details is a Record enriched with a search relevance score.
type Details struct {
	Record
	RelevanceScore float64 `json:"relevance_score,omitempty"`
}

// Package risk scores verification results against sanctions, watchlist and
// company-status signals.
package risk

// Flags carries the individual risk signals raised during verification.
type Flags struct {
	SanctionsMatch        bool `json:"sanctions_match"`
	DeregistrationPending bool `json:"deregistration_pending"`
	DirectorOnWatchlist   bool `json:"director_on_watchlist"`
	RecentNameChange      bool `json:"recent_name_change"`
	NoVATRegistration     bool `json:"no_vat_registration"`
	DormantCompany        bool `json:"dormant_company"`
	HighRiskIndustry      bool `json:"high_risk_industry"`
}

// HasCriticalFlags reports whether any flag alone justifies blocking the
// counterparty regardless of the numeric score.
func (f Flags) HasCriticalFlags() bool {
	return f.SanctionsMatch || f.DeregistrationPending || f.DirectorOnWatchlist
}

// Level maps the raised flags to a coarse risk band.
func (f Flags) Level() string {
	if f.HasCriticalFlags() {
		return "CRITICAL"
	}

	warnings := 0
	for _, raised := range []bool{f.RecentNameChange, f.NoVATRegistration, f.DormantCompany, f.HighRiskIndustry} {
		if raised {
			warnings++
		}
	}

	switch {
	case warnings >= 2:
		return "HIGH"
	case warnings == 1:
		return "MEDIUM"
	default:
		return "LOW"
	}
}

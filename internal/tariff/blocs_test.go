package tariff

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestResolveBloc(t *testing.T) {
	tests := []struct {
		country string
		want    TradeBloc
	}{
		{"Namibia", BlocSADC},
		{"  namibia  ", BlocSADC},
		{"BOTSWANA", BlocSADC},
		// Tanzania is in both SADC and EAC; SADC wins by priority order.
		{"Tanzania", BlocSADC},
		{"Kenya", BlocEAC},
		{"Uganda", BlocEAC},
		{"Nigeria", BlocECOWAS},
		{"guinea-bissau", BlocECOWAS},
		{"Egypt", BlocCOMESA},
		{"Djibouti", BlocCOMESA},
		{"Morocco", BlocOtherAfrica},
		{"Central African Republic", BlocOtherAfrica},
		{"United Kingdom", BlocRestOfWorld},
		{"China", BlocRestOfWorld},
		{"", BlocRestOfWorld},
	}

	for _, tt := range tests {
		t.Run(tt.country, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveBloc(tt.country))
		})
	}
}

func TestResolveBlocIsTotal(t *testing.T) {
	// Every country resolves to exactly one bloc; nonsense input still lands
	// on REST_OF_WORLD rather than failing.
	assert.Equal(t, BlocRestOfWorld, ResolveBloc("Atlantis"))
	assert.Equal(t, BlocOtherAfrica, ResolveBloc("Republic of Somewhere in Africa"))
}

func TestDutyRates(t *testing.T) {
	tests := []struct {
		bloc TradeBloc
		want string
	}{
		{BlocSADC, "0"},
		{BlocEAC, "0.05"},
		{BlocECOWAS, "0.1"},
		{BlocCOMESA, "0.05"},
		{BlocOtherAfrica, "0.15"},
		{BlocRestOfWorld, "0.2"},
	}

	for _, tt := range tests {
		rate := DutyRate(tt.bloc)
		assert.Equal(t, tt.want, rate.String(), "bloc %s", tt.bloc)

		// Rates stay within [0, standard].
		assert.False(t, rate.IsNegative())
		assert.True(t, rate.LessThanOrEqual(StandardDutyRate))
	}

	// Unknown bloc falls back to the standard rate.
	assert.True(t, DutyRate(TradeBloc("BRICS")).Equal(decimal.NewFromFloat(0.20)))
}

func TestAgreementNames(t *testing.T) {
	name, ok := AgreementName(BlocSADC)
	assert.True(t, ok)
	assert.Equal(t, "SADC Free Trade Area", name)

	_, ok = AgreementName(BlocRestOfWorld)
	assert.False(t, ok)
	_, ok = AgreementName(BlocOtherAfrica)
	assert.False(t, ok)
}

func TestLocalContentMinimum(t *testing.T) {
	pct, ok := LocalContentMinimum(BlocSADC)
	assert.True(t, ok)
	assert.Equal(t, 35.0, pct)

	pct, ok = LocalContentMinimum(BlocEAC)
	assert.True(t, ok)
	assert.Equal(t, 50.0, pct)

	_, ok = LocalContentMinimum(BlocECOWAS)
	assert.False(t, ok)
}

func TestBaseClearanceDays(t *testing.T) {
	assert.Equal(t, 2, BaseClearanceDays(BlocSADC))
	assert.Equal(t, 3, BaseClearanceDays(BlocEAC))
	assert.Equal(t, 7, BaseClearanceDays(BlocRestOfWorld))
	assert.Equal(t, 7, BaseClearanceDays(TradeBloc("UNKNOWN")))
}

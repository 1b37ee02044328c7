package tariff

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// TradeBloc identifies the regional trade grouping a destination country
// belongs to. Exactly one bloc applies per country.
type TradeBloc string

const (
	BlocSADC        TradeBloc = "SADC"
	BlocEAC         TradeBloc = "EAC"
	BlocECOWAS      TradeBloc = "ECOWAS"
	BlocCOMESA      TradeBloc = "COMESA"
	BlocOtherAfrica TradeBloc = "OTHER_AFRICA"
	BlocRestOfWorld TradeBloc = "REST_OF_WORLD"
)

// Standard South African rates.
var (
	VATRate          = decimal.NewFromFloat(0.15)
	StandardDutyRate = decimal.NewFromFloat(0.20)
)

// Membership lists per bloc. Countries appearing in more than one bloc
// (e.g. Tanzania, Kenya) resolve to the first matching bloc in the
// SADC -> EAC -> ECOWAS -> COMESA order.
var sadcCountries = memberSet(
	"Angola", "Botswana", "Comoros", "Congo", "Eswatini", "Lesotho",
	"Madagascar", "Malawi", "Mauritius", "Mozambique", "Namibia",
	"Seychelles", "South Africa", "Tanzania", "Zambia", "Zimbabwe",
)

var eacCountries = memberSet(
	"Burundi", "Kenya", "Rwanda", "South Sudan", "Tanzania", "Uganda",
)

var ecowasCountries = memberSet(
	"Benin", "Burkina Faso", "Cape Verde", "Ivory Coast", "Gambia",
	"Ghana", "Guinea", "Guinea-Bissau", "Liberia", "Mali", "Niger",
	"Nigeria", "Senegal", "Sierra Leone", "Togo",
)

var comesaCountries = memberSet(
	"Burundi", "Comoros", "Congo", "Djibouti", "Egypt", "Eritrea",
	"Eswatini", "Ethiopia", "Kenya", "Libya", "Madagascar", "Malawi",
	"Mauritius", "Rwanda", "Seychelles", "Somalia", "Sudan", "Tunisia",
	"Uganda", "Zambia", "Zimbabwe",
)

// African countries outside the four blocs, used as a fallback before the
// "Africa" substring heuristic.
var otherAfricanCountries = memberSet(
	"Algeria", "Egypt", "Libya", "Morocco", "Tunisia",
	"Chad", "Mali", "Mauritania", "Niger", "Sudan",
	"Cameroon", "Central African Republic", "Gabon",
	"Ethiopia", "Somalia", "South Sudan",
)

// dutyRates holds the effective duty rate per bloc.
var dutyRates = map[TradeBloc]decimal.Decimal{
	BlocSADC:        decimal.NewFromInt(0),
	BlocEAC:         decimal.NewFromFloat(0.05),
	BlocECOWAS:      decimal.NewFromFloat(0.10),
	BlocCOMESA:      decimal.NewFromFloat(0.05),
	BlocOtherAfrica: decimal.NewFromFloat(0.15),
	BlocRestOfWorld: decimal.NewFromFloat(0.20),
}

// agreementNames maps preferential blocs to their trade agreement.
var agreementNames = map[TradeBloc]string{
	BlocSADC:   "SADC Free Trade Area",
	BlocEAC:    "East African Community Customs Union",
	BlocECOWAS: "ECOWAS Trade Liberalisation Scheme",
	BlocCOMESA: "COMESA Free Trade Area",
}

// baseClearanceDays is the baseline customs clearance estimate per bloc.
var baseClearanceDays = map[TradeBloc]int{
	BlocSADC:        2,
	BlocEAC:         3,
	BlocECOWAS:      3,
	BlocCOMESA:      3,
	BlocOtherAfrica: 5,
	BlocRestOfWorld: 7,
}

// localContentMinima holds the minimum local/regional content (percent)
// required under each bloc's rules of origin where one is defined.
var localContentMinima = map[TradeBloc]float64{
	BlocSADC: 35.0,
	BlocEAC:  50.0,
}

// ResolveBloc maps a destination country to its trade bloc. The country name
// is whitespace-trimmed and title-cased before membership lookups, so
// "namibia" and " NAMIBIA " both resolve to SADC. Unknown African countries
// fall back to OTHER_AFRICA, everything else to REST_OF_WORLD.
func ResolveBloc(country string) TradeBloc {
	normalized := NormalizeCountry(country)

	switch {
	case sadcCountries[normalized]:
		return BlocSADC
	case eacCountries[normalized]:
		return BlocEAC
	case ecowasCountries[normalized]:
		return BlocECOWAS
	case comesaCountries[normalized]:
		return BlocCOMESA
	case isAfricanCountry(normalized):
		return BlocOtherAfrica
	default:
		return BlocRestOfWorld
	}
}

// DutyRate returns the effective customs duty rate for a bloc. Unknown blocs
// get the standard non-preferential rate.
func DutyRate(bloc TradeBloc) decimal.Decimal {
	if rate, ok := dutyRates[bloc]; ok {
		return rate
	}
	return StandardDutyRate
}

// AgreementName returns the trade agreement granting preferential duty for a
// bloc, and false for blocs without one.
func AgreementName(bloc TradeBloc) (string, bool) {
	name, ok := agreementNames[bloc]
	return name, ok
}

// IsPreferential reports whether the bloc grants preferential duty treatment
// subject to rules of origin.
func IsPreferential(bloc TradeBloc) bool {
	_, ok := agreementNames[bloc]
	return ok
}

// LocalContentMinimum returns the minimum local content percentage required
// for preferential treatment, and false when the bloc defines none.
func LocalContentMinimum(bloc TradeBloc) (float64, bool) {
	pct, ok := localContentMinima[bloc]
	return pct, ok
}

// BaseClearanceDays returns the baseline clearance estimate for a bloc.
func BaseClearanceDays(bloc TradeBloc) int {
	if days, ok := baseClearanceDays[bloc]; ok {
		return days
	}
	return baseClearanceDays[BlocRestOfWorld]
}

// NormalizeCountry trims and title-cases a country name for table lookups,
// so "namibia" and " GUINEA-BISSAU " match their membership entries.
func NormalizeCountry(country string) string {
	lower := strings.ToLower(strings.TrimSpace(country))
	var b strings.Builder
	b.Grow(len(lower))
	prevLetter := false
	for _, r := range lower {
		isLetter := unicode.IsLetter(r)
		if isLetter && !prevLetter {
			r = unicode.ToUpper(r)
		}
		b.WriteRune(r)
		prevLetter = isLetter
	}
	return b.String()
}

func isAfricanCountry(normalized string) bool {
	return otherAfricanCountries[normalized] || strings.Contains(normalized, "Africa")
}

func memberSet(countries ...string) map[string]bool {
	set := make(map[string]bool, len(countries))
	for _, c := range countries {
		set[c] = true
	}
	return set
}

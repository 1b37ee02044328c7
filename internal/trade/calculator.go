package trade

import (
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/PawleN-D/africompliance-api/internal/tariff"
)

// Value thresholds (ZAR) that trigger extra scrutiny at the border.
var (
	highValueThreshold     = decimal.NewFromInt(500000)
	veryHighValueThreshold = decimal.NewFromInt(1000000)
)

// Calculator derives duties, VAT and compliance requirements for a shipment.
// It is pure: every call reads only the static tariff tables and returns
// fresh values, so a single Calculator is safe for concurrent use.
type Calculator struct{}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// Calculate computes the monetary breakdown and compliance requirements for a
// shipment. Business-rule problems (malformed HS code, unknown country) are
// reported through the warnings list, never as an error: the contract is to
// always return a best-effort result.
func (c *Calculator) Calculate(in ShipmentInput) Result {
	// Warning lists serialize as [] even when empty, never null.
	warnings := []string{}

	bloc := tariff.ResolveBloc(in.DestinationCountry)
	dutyRate := tariff.DutyRate(bloc)

	if !tariff.ValidHSCode(in.HSCode) {
		warnings = append(warnings, fmt.Sprintf(
			"HS Code '%s' may be invalid. Please verify with SARS tariff book.", in.HSCode))
	}

	value := decimal.NewFromFloat(in.ValueZAR)
	dutyAmount := value.Mul(dutyRate)
	subtotal := value.Add(dutyAmount)
	vatAmount := subtotal.Mul(tariff.VATRate)
	total := subtotal.Add(vatAmount)

	dutySaved := value.Mul(tariff.StandardDutyRate.Sub(dutyRate))
	if dutySaved.IsNegative() {
		dutySaved = decimal.Zero
	}

	calculations := CalculationBreakdown{
		BaseValueZAR:               round2(value),
		SAVATRate:                  tariff.VATRate.InexactFloat64(),
		SAVATAmount:                round2(vatAmount),
		CustomsDutyRate:            dutyRate.InexactFloat64(),
		CustomsDutyAmount:          round2(dutyAmount),
		AdditionalFees:             0,
		SubtotalBeforeVAT:          round2(subtotal),
		TotalAtBorder:              round2(total),
		Currency:                   "ZAR",
		DutySavedViaTradeAgreement: round2(dutySaved),
	}

	compliance := c.complianceRequirements(bloc, in.HSCode, value)

	slog.Info("trade calculation",
		"origin", in.OriginCountry,
		"destination", in.DestinationCountry,
		"bloc", bloc,
		"value_zar", in.ValueZAR,
		"duty_rate", dutyRate.InexactFloat64(),
		"total_at_border", calculations.TotalAtBorder,
	)

	return Result{
		Calculations: calculations,
		Compliance:   compliance,
		Warnings:     warnings,
	}
}

func (c *Calculator) complianceRequirements(bloc tariff.TradeBloc, hsCode string, value decimal.Decimal) ComplianceRequirement {
	req := ComplianceRequirement{
		TradeBloc: bloc,
		RequiredDocuments: []DocumentType{
			DocCommercialInvoice,
			DocPackingList,
			DocBillOfLading,
			DocCustomsDeclaration,
		},
		OptionalDocuments: []DocumentType{},
		Warnings:          []string{},
	}

	if name, ok := tariff.AgreementName(bloc); ok {
		req.TradeAgreement = &name
	}

	if tariff.IsPreferential(bloc) {
		req.RequiredDocuments = append(req.RequiredDocuments, DocCertificateOfOrigin)
		req.RulesOfOriginRequired = true
		if pct, ok := tariff.LocalContentMinimum(bloc); ok {
			req.MinimumLocalContentPercent = &pct
		}
	}

	permits := tariff.PermitsFor(hsCode)
	if permits == nil {
		permits = []string{}
	}
	if value.GreaterThan(veryHighValueThreshold) {
		permits = append(permits, "Physical Inspection Likely (High Value Shipment)")
	}
	req.SpecialPermitsRequired = permits

	req.EstimatedClearanceDays = estimateClearanceDays(bloc, value, len(permits))
	req.ComplianceNotes = complianceNotes(req, value)

	if len(permits) > 0 {
		req.Warnings = append(req.Warnings,
			"Special permits required - allow additional 5-10 days for processing")
	}
	if value.GreaterThan(highValueThreshold) {
		req.Warnings = append(req.Warnings,
			"High-value shipment - recommend pre-clearance consultation with SARS")
	}

	return req
}

// estimateClearanceDays starts from the bloc baseline and adds time for
// high-value inspection and permit processing. The permit count includes the
// inspection entry appended for shipments over R1M.
func estimateClearanceDays(bloc tariff.TradeBloc, value decimal.Decimal, permitCount int) int {
	days := tariff.BaseClearanceDays(bloc)

	if value.GreaterThan(veryHighValueThreshold) {
		days += 2
	} else if value.GreaterThan(highValueThreshold) {
		days++
	}

	return days + permitCount*2
}

func complianceNotes(req ComplianceRequirement, value decimal.Decimal) []string {
	var notes []string

	if req.TradeAgreement != nil {
		notes = append(notes, fmt.Sprintf(
			"Preferential duty treatment available under %s", *req.TradeAgreement))
	}

	if req.RulesOfOriginRequired {
		notes = append(notes,
			"Certificate of Origin required. Goods must meet rules of origin criteria.")
		if req.MinimumLocalContentPercent != nil {
			notes = append(notes, fmt.Sprintf(
				"Minimum %g%% local/regional content required for duty-free treatment",
				*req.MinimumLocalContentPercent))
		}
	}

	notes = append(notes,
		"Ensure all commercial documents (invoice, packing list) are accurate and match")

	if value.GreaterThan(highValueThreshold) {
		notes = append(notes,
			"High-value shipment: Consider advance customs declaration for faster clearance")
	}

	notes = append(notes,
		"Goods declaration must be submitted via SARS eFiling or registered customs broker")

	return notes
}

// round2 rounds a monetary amount to 2 decimal places for presentation.
// Intermediate arithmetic stays exact; only the reported figures are rounded.
func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

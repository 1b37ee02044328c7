package documents

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/PawleN-D/africompliance-api/internal/tariff"
)

// standardDocuments are needed on every export regardless of goods or route.
func standardDocuments() []DocumentInfo {
	return []DocumentInfo{
		{
			Name:               "Commercial Invoice",
			Category:           CategoryCommercial,
			RequirementLevel:   RequirementRequired,
			Description:        "Detailed invoice showing description of goods, quantity, unit price, total value, payment terms, and Incoterms",
			Issuer:             "Exporter/Seller",
			Notes:              strPtr("Must be on company letterhead with authorized signature"),
			EstimatedCostZAR:   floatPtr(0),
			ProcessingTimeDays: intPtr(1),
		},
		{
			Name:               "Packing List",
			Category:           CategoryCommercial,
			RequirementLevel:   RequirementRequired,
			Description:        "Detailed list of package contents including weights, dimensions, and packaging type",
			Issuer:             "Exporter/Seller",
			Notes:              strPtr("Must match commercial invoice exactly"),
			EstimatedCostZAR:   floatPtr(0),
			ProcessingTimeDays: intPtr(1),
		},
		{
			Name:               "Bill of Lading / Airway Bill",
			Category:           CategoryTransport,
			RequirementLevel:   RequirementRequired,
			Description:        "Transport document serving as receipt for goods and contract of carriage",
			Issuer:             "Shipping Line / Airline / Freight Forwarder",
			Notes:              strPtr("Original required for sea freight, copy acceptable for air"),
			EstimatedCostZAR:   floatPtr(500),
			ProcessingTimeDays: intPtr(1),
		},
		{
			Name:               "Customs Declaration (SAD 500)",
			Category:           CategoryCustoms,
			RequirementLevel:   RequirementRequired,
			Description:        "South African customs declaration form for export",
			Issuer:             "Customs Broker / Exporter (if registered)",
			Notes:              strPtr("Must be submitted electronically via SARS eFiling"),
			EstimatedCostZAR:   floatPtr(800),
			ProcessingTimeDays: intPtr(1),
		},
	}
}

// tradeBlocDocuments returns the origin certification needed for preferential
// treatment. Unrecognized blocs add nothing.
func tradeBlocDocuments(tradeBloc string) []DocumentInfo {
	bloc := tariff.TradeBloc(strings.ToUpper(strings.TrimSpace(tradeBloc)))
	if !tariff.IsPreferential(bloc) {
		return nil
	}

	docs := []DocumentInfo{
		{
			Name:             "Certificate of Origin",
			Category:         CategoryCompliance,
			RequirementLevel: RequirementRequired,
			Description: fmt.Sprintf(
				"Certifies that goods originate from South Africa for %s preferential duty treatment", bloc),
			Issuer:             "South African Bureau of Standards (SABS) or Chamber of Commerce",
			ValidityDays:       intPtr(180),
			Notes:              strPtr(fmt.Sprintf("Goods must meet %s Rules of Origin criteria. Typically requires 35-50%% local/regional content.", bloc)),
			EstimatedCostZAR:   floatPtr(300),
			ProcessingTimeDays: intPtr(3),
		},
	}

	if bloc == tariff.BlocSADC {
		docs = append(docs, DocumentInfo{
			Name:               "SADC Certificate of Origin (Form A)",
			Category:           CategoryCompliance,
			RequirementLevel:   RequirementRequired,
			Description:        "Specific SADC format certificate",
			Issuer:             "SABS or Designated Authority",
			ValidityDays:       intPtr(180),
			Notes:              strPtr("Must be endorsed by authorized signatory"),
			EstimatedCostZAR:   floatPtr(300),
			ProcessingTimeDays: intPtr(3),
		})
	}

	return docs
}

// hsCodeDocuments maps the chapter of an HS code to the certificates the
// goods themselves call for. Chapter coverage is kept aligned with
// tariff.PermitsFor; catalog_test.go cross-checks the two.
func hsCodeDocuments(hsCode string) []DocumentInfo {
	chapter := tariff.Chapter(hsCode)
	if chapter == "" {
		return nil
	}
	chapterNum, err := strconv.Atoi(chapter)
	if err != nil {
		return nil
	}

	var docs []DocumentInfo

	// Food and agriculture, chapters 01-24.
	if chapterNum >= 1 && chapterNum <= 24 {
		docs = append(docs, DocumentInfo{
			Name:               "Phytosanitary Certificate",
			Category:           CategoryCompliance,
			RequirementLevel:   RequirementRequired,
			Description:        "Certifies that plants/plant products are free from pests and diseases",
			Issuer:             "Department of Agriculture, Land Reform and Rural Development",
			ValidityDays:       intPtr(14),
			Notes:              strPtr("Must be issued within 14 days of export"),
			EstimatedCostZAR:   floatPtr(500),
			ProcessingTimeDays: intPtr(5),
		})

		if chapter == "02" || chapter == "04" {
			docs = append(docs, DocumentInfo{
				Name:               "Veterinary Health Certificate",
				Category:           CategoryCompliance,
				RequirementLevel:   RequirementRequired,
				Description:        "Certifies animal products are disease-free",
				Issuer:             "State Veterinarian",
				ValidityDays:       intPtr(30),
				Notes:              strPtr("Required for all animal products"),
				EstimatedCostZAR:   floatPtr(800),
				ProcessingTimeDays: intPtr(7),
			})
		}
	}

	if chapter == "30" {
		docs = append(docs, DocumentInfo{
			Name:               "SAHPRA Registration Certificate",
			Category:           CategoryCompliance,
			RequirementLevel:   RequirementRequired,
			Description:        "South African Health Products Regulatory Authority approval for pharmaceutical products",
			Issuer:             "SAHPRA",
			Notes:              strPtr("Products must be registered before export. Initial registration takes 6-12 months."),
			EstimatedCostZAR:   floatPtr(15000),
			ProcessingTimeDays: intPtr(180),
		})
	}

	// Chemicals, chapters 28-38.
	if chapterNum >= 28 && chapterNum <= 38 {
		docs = append(docs, DocumentInfo{
			Name:               "Material Safety Data Sheet (MSDS)",
			Category:           CategoryCompliance,
			RequirementLevel:   RequirementRequired,
			Description:        "Chemical safety and handling information",
			Issuer:             "Manufacturer",
			Notes:              strPtr("Must be in English and destination country language"),
			EstimatedCostZAR:   floatPtr(0),
			ProcessingTimeDays: intPtr(1),
		})
	}

	if chapter == "22" {
		docs = append(docs, DocumentInfo{
			Name:               "Excise Clearance Certificate",
			Category:           CategoryCompliance,
			RequirementLevel:   RequirementRequired,
			Description:        "SARS clearance for alcoholic beverage export",
			Issuer:             "SARS (South African Revenue Service)",
			ValidityDays:       intPtr(30),
			Notes:              strPtr("Required for all alcoholic products"),
			EstimatedCostZAR:   floatPtr(500),
			ProcessingTimeDays: intPtr(7),
		})
	}

	if chapter == "24" {
		docs = append(docs, DocumentInfo{
			Name:               "Tobacco Products Control Certificate",
			Category:           CategoryCompliance,
			RequirementLevel:   RequirementRequired,
			Description:        "Compliance with health warning requirements",
			Issuer:             "Department of Health",
			Notes:              strPtr("Packaging must comply with destination country regulations"),
			EstimatedCostZAR:   floatPtr(1000),
			ProcessingTimeDays: intPtr(14),
		})
	}

	if chapter == "71" {
		docs = append(docs, DocumentInfo{
			Name:               "Kimberley Process Certificate",
			Category:           CategoryCompliance,
			RequirementLevel:   RequirementRequired,
			Description:        "Certifies diamonds are conflict-free and legally mined",
			Issuer:             "South African Diamond & Precious Metals Regulator (SADPMR)",
			ValidityDays:       intPtr(90),
			Notes:              strPtr("Mandatory for all diamond exports - no exceptions"),
			EstimatedCostZAR:   floatPtr(2000),
			ProcessingTimeDays: intPtr(10),
		})

		if tariff.IsSARBControlled(hsCode) {
			docs = append(docs, DocumentInfo{
				Name:               "South African Reserve Bank (SARB) Export Permit",
				Category:           CategoryCompliance,
				RequirementLevel:   RequirementRequired,
				Description:        "Central bank approval for precious metal export",
				Issuer:             "SARB Financial Surveillance Department",
				ValidityDays:       intPtr(60),
				Notes:              strPtr("Strict foreign exchange control regulations apply"),
				EstimatedCostZAR:   floatPtr(1500),
				ProcessingTimeDays: intPtr(14),
			})
		}
	}

	return docs
}

// valueBasedDocuments adds insurance and valuation paperwork for high-value
// shipments. Insurance cost is estimated at 0.7% of shipment value.
func valueBasedDocuments(valueZAR float64) []DocumentInfo {
	var docs []DocumentInfo

	if valueZAR > 500000 {
		insuranceCost := decimal.NewFromFloat(valueZAR).Mul(decimal.NewFromFloat(0.007)).Round(2).InexactFloat64()
		docs = append(docs, DocumentInfo{
			Name:               "Cargo Insurance Certificate",
			Category:           CategoryFinancial,
			RequirementLevel:   RequirementRecommended,
			Description:        "Insurance coverage for goods in transit",
			Issuer:             "Insurance Company / Freight Forwarder",
			Notes:              strPtr(fmt.Sprintf("Recommended for shipment value R%.0f. Typically costs 0.5-1%% of shipment value.", valueZAR)),
			EstimatedCostZAR:   floatPtr(insuranceCost),
			ProcessingTimeDays: intPtr(1),
		})
	}

	if valueZAR > 1000000 {
		docs = append(docs, DocumentInfo{
			Name:               "Pre-Clearance Valuation Letter",
			Category:           CategoryCustoms,
			RequirementLevel:   RequirementRecommended,
			Description:        "Advance ruling from SARS on customs valuation to avoid delays at clearance",
			Issuer:             "SARS Customs Valuation Unit",
			ValidityDays:       intPtr(90),
			Notes:              strPtr("Highly recommended for high-value shipments to avoid delays. Physical inspection likely."),
			EstimatedCostZAR:   floatPtr(2000),
			ProcessingTimeDays: intPtr(21),
		})
	}

	return docs
}

// transportDocuments adds mode-specific carriage paperwork. Matching is by
// substring so "Air Freight" and "air" both qualify.
func transportDocuments(transportMode string) []DocumentInfo {
	mode := strings.ToLower(transportMode)
	var docs []DocumentInfo

	if strings.Contains(mode, "air") {
		docs = append(docs, DocumentInfo{
			Name:               "Air Waybill (AWB)",
			Category:           CategoryTransport,
			RequirementLevel:   RequirementRequired,
			Description:        "Air transport document and cargo receipt",
			Issuer:             "Airline or Freight Forwarder",
			Notes:              strPtr("Non-negotiable document (unlike sea bill of lading)"),
			EstimatedCostZAR:   floatPtr(300),
			ProcessingTimeDays: intPtr(1),
		})
	}

	if strings.Contains(mode, "road") {
		docs = append(docs, DocumentInfo{
			Name:               "CMR Consignment Note",
			Category:           CategoryTransport,
			RequirementLevel:   RequirementRequired,
			Description:        "International road transport consignment note",
			Issuer:             "Road Carrier / Transporter",
			Notes:              strPtr("Standard document for road freight in Southern Africa"),
			EstimatedCostZAR:   floatPtr(150),
			ProcessingTimeDays: intPtr(1),
		})
	}

	return docs
}

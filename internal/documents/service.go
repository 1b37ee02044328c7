package documents

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/PawleN-D/africompliance-api/internal/tariff"
)

// Service assembles document checklists for cross-border shipments. It is
// stateless: every call reads only the static catalog and returns fresh
// values, so one Service may serve any number of concurrent callers.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// GenerateChecklist builds the full document checklist for a shipment.
// tradeBloc and transportMode are optional; pass "" to skip their rules.
// Like the calculator, this never fails: unknown codes or blocs simply
// contribute no documents.
func (s *Service) GenerateChecklist(destinationCountry, hsCode string, valueZAR float64, tradeBloc, transportMode string) Checklist {
	var candidates []DocumentInfo

	candidates = append(candidates, standardDocuments()...)
	if tradeBloc != "" {
		candidates = append(candidates, tradeBlocDocuments(tradeBloc)...)
	}
	candidates = append(candidates, hsCodeDocuments(hsCode)...)
	candidates = append(candidates, valueBasedDocuments(valueZAR)...)
	if transportMode != "" {
		candidates = append(candidates, transportDocuments(transportMode)...)
	}

	checklist := organize(candidates)
	checklist.Warnings = generateWarnings(hsCode, valueZAR, tradeBloc)
	checklist.Tips = generateTips(destinationCountry, tradeBloc)
	checklist.TotalRequired = len(checklist.RequiredDocuments)
	checklist.TotalOptional = len(checklist.OptionalDocuments)

	slog.Info("generated document checklist",
		"destination", destinationCountry,
		"hs_code", hsCode,
		"required", checklist.TotalRequired,
		"optional", checklist.TotalOptional,
		"permits", len(checklist.PermitsAndCertificates),
	)

	return checklist
}

// organize deduplicates candidates by name (first occurrence wins) and sorts
// them into buckets: required permits/certificates are split out from plain
// required documents; everything non-required lands in the optional bucket.
func organize(candidates []DocumentInfo) Checklist {
	checklist := Checklist{
		RequiredDocuments:      []DocumentInfo{},
		OptionalDocuments:      []DocumentInfo{},
		PermitsAndCertificates: []DocumentInfo{},
	}

	seen := make(map[string]bool, len(candidates))
	totalCost := 0.0
	maxProcessing := 0

	for _, doc := range candidates {
		if seen[doc.Name] {
			continue
		}
		seen[doc.Name] = true

		required := doc.RequirementLevel == RequirementRequired
		switch {
		case required && isPermitOrCertificate(doc.Name):
			checklist.PermitsAndCertificates = append(checklist.PermitsAndCertificates, doc)
		case required:
			checklist.RequiredDocuments = append(checklist.RequiredDocuments, doc)
		default:
			checklist.OptionalDocuments = append(checklist.OptionalDocuments, doc)
		}

		if doc.EstimatedCostZAR != nil {
			totalCost += *doc.EstimatedCostZAR
		}
		if required && doc.ProcessingTimeDays != nil && *doc.ProcessingTimeDays > maxProcessing {
			maxProcessing = *doc.ProcessingTimeDays
		}
	}

	checklist.EstimatedTotalCostZAR = totalCost
	checklist.EstimatedProcessingDays = maxProcessing

	return checklist
}

func isPermitOrCertificate(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "permit") || strings.Contains(lower, "certificate")
}

func generateWarnings(hsCode string, valueZAR float64, tradeBloc string) []string {
	warnings := []string{}

	if valueZAR > 1000000 {
		warnings = append(warnings,
			"High-value shipment (>R1M): Expect physical inspection by customs. Allow extra 2-3 days for clearance.")
	}

	if tradeBloc != "" {
		warnings = append(warnings, fmt.Sprintf(
			"%s preferential treatment ONLY applies if Certificate of Origin is provided. Without it, standard duties apply.",
			tradeBloc))
	}

	switch tariff.Chapter(hsCode) {
	case "02", "04":
		warnings = append(warnings,
			"Perishable goods: All health certificates must be obtained BEFORE shipping. Short validity periods (14-30 days).")
	case "71":
		warnings = append(warnings,
			"Precious stones/metals: Strict export controls apply. Missing permits = criminal offense. Allow 14+ days for approvals.")
	case "30":
		warnings = append(warnings,
			"Pharmaceutical products: Registration process can take 6-12 months. Plan well in advance.")
	}

	return warnings
}

func generateTips(destinationCountry, tradeBloc string) []string {
	tips := []string{
		"Start collecting documents 2-3 weeks before shipment date",
		"Keep digital and physical copies of all documents",
	}

	if tradeBloc != "" {
		tips = append(tips, fmt.Sprintf(
			"For %s shipments, ensure your goods meet rules of origin BEFORE applying for Certificate of Origin",
			tradeBloc))
	}

	tips = append(tips, "Use a registered customs broker for faster clearance and compliance")

	if strings.Contains(destinationCountry, "Nigeria") || strings.Contains(destinationCountry, "Kenya") {
		tips = append(tips, fmt.Sprintf(
			"%s has strict import regulations. Contact destination customs in advance for specific requirements.",
			destinationCountry))
	}

	return tips
}

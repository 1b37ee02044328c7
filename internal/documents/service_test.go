package documents

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checklistNames(docs []DocumentInfo) []string {
	names := make([]string, len(docs))
	for i, d := range docs {
		names[i] = d.Name
	}
	return names
}

func allDocuments(c Checklist) []DocumentInfo {
	var all []DocumentInfo
	all = append(all, c.RequiredDocuments...)
	all = append(all, c.PermitsAndCertificates...)
	all = append(all, c.OptionalDocuments...)
	return all
}

func findDocument(t *testing.T, docs []DocumentInfo, name string) DocumentInfo {
	t.Helper()
	for _, d := range docs {
		if d.Name == name {
			return d
		}
	}
	t.Fatalf("document %q not found in %v", name, checklistNames(docs))
	return DocumentInfo{}
}

func TestGenerateChecklistPharmaNigeria(t *testing.T) {
	svc := NewService()

	checklist := svc.GenerateChecklist("Nigeria", "3004.90", 250000, "ECOWAS", "")

	sahpra := findDocument(t, checklist.PermitsAndCertificates, "SAHPRA Registration Certificate")
	require.NotNil(t, sahpra.ProcessingTimeDays)
	assert.Equal(t, 180, *sahpra.ProcessingTimeDays)

	// Chapter 30 also sits in the chemicals range 28-38.
	assert.Contains(t, checklistNames(checklist.RequiredDocuments), "Material Safety Data Sheet (MSDS)")

	// ECOWAS adds the Certificate of Origin.
	assert.Contains(t, checklistNames(checklist.PermitsAndCertificates), "Certificate of Origin")

	var pharmaWarning, blocWarning bool
	for _, w := range checklist.Warnings {
		if strings.Contains(w, "Pharmaceutical products") {
			pharmaWarning = true
		}
		if strings.Contains(w, "ECOWAS preferential treatment") {
			blocWarning = true
		}
	}
	assert.True(t, pharmaWarning, "expected pharma warning, got %v", checklist.Warnings)
	assert.True(t, blocWarning, "expected trade bloc warning, got %v", checklist.Warnings)

	var nigeriaTip bool
	for _, tip := range checklist.Tips {
		if strings.Contains(tip, "Nigeria has strict import regulations") {
			nigeriaTip = true
		}
	}
	assert.True(t, nigeriaTip, "expected Nigeria tip, got %v", checklist.Tips)
}

func TestGenerateChecklistStandardDocumentsAlwaysPresent(t *testing.T) {
	svc := NewService()

	checklist := svc.GenerateChecklist("Japan", "8542.31", 10000, "", "")

	names := checklistNames(checklist.RequiredDocuments)
	assert.Contains(t, names, "Commercial Invoice")
	assert.Contains(t, names, "Packing List")
	assert.Contains(t, names, "Bill of Lading / Airway Bill")
	assert.Contains(t, names, "Customs Declaration (SAD 500)")
	assert.Equal(t, 4, checklist.TotalRequired)
	assert.Empty(t, checklist.PermitsAndCertificates)
}

func TestGenerateChecklistDeduplicatesByName(t *testing.T) {
	svc := NewService()

	// Chapter 06 brings a Phytosanitary Certificate through the chapter rules;
	// there is exactly one entry however many branches could produce it.
	checklist := svc.GenerateChecklist("Namibia", "0602.10", 50000, "SADC", "road")

	seen := map[string]int{}
	for _, d := range allDocuments(checklist) {
		seen[d.Name]++
	}
	for name, count := range seen {
		assert.Equal(t, 1, count, "document %q appears %d times", name, count)
	}
}

func TestGenerateChecklistSADCFormA(t *testing.T) {
	svc := NewService()

	checklist := svc.GenerateChecklist("Botswana", "8703.23", 50000, "SADC", "")
	permits := checklistNames(checklist.PermitsAndCertificates)
	assert.Contains(t, permits, "Certificate of Origin")
	assert.Contains(t, permits, "SADC Certificate of Origin (Form A)")

	// Lowercased bloc works too.
	checklist = svc.GenerateChecklist("Botswana", "8703.23", 50000, "sadc", "")
	assert.Contains(t, checklistNames(checklist.PermitsAndCertificates), "SADC Certificate of Origin (Form A)")

	// Unknown bloc adds nothing.
	checklist = svc.GenerateChecklist("Botswana", "8703.23", 50000, "MERCOSUR", "")
	assert.NotContains(t, checklistNames(allDocuments(checklist)), "Certificate of Origin")
}

func TestGenerateChecklistValueBased(t *testing.T) {
	svc := NewService()

	checklist := svc.GenerateChecklist("Germany", "8542.31", 600000, "", "")
	insurance := findDocument(t, checklist.OptionalDocuments, "Cargo Insurance Certificate")
	assert.Equal(t, RequirementRecommended, insurance.RequirementLevel)
	require.NotNil(t, insurance.EstimatedCostZAR)
	assert.Equal(t, 4200.0, *insurance.EstimatedCostZAR) // 0.7% of 600k

	checklist = svc.GenerateChecklist("Germany", "8542.31", 1500000, "", "")
	names := checklistNames(checklist.OptionalDocuments)
	assert.Contains(t, names, "Cargo Insurance Certificate")
	assert.Contains(t, names, "Pre-Clearance Valuation Letter")

	var inspectionWarning bool
	for _, w := range checklist.Warnings {
		if strings.Contains(w, "physical inspection") {
			inspectionWarning = true
		}
	}
	assert.True(t, inspectionWarning, "expected inspection warning, got %v", checklist.Warnings)
}

func TestGenerateChecklistTransportModes(t *testing.T) {
	svc := NewService()

	checklist := svc.GenerateChecklist("Kenya", "0805.10", 50000, "", "Air Freight")
	assert.Contains(t, checklistNames(checklist.RequiredDocuments), "Air Waybill (AWB)")

	checklist = svc.GenerateChecklist("Zimbabwe", "0805.10", 50000, "", "Road")
	assert.Contains(t, checklistNames(checklist.RequiredDocuments), "CMR Consignment Note")

	checklist = svc.GenerateChecklist("Zimbabwe", "0805.10", 50000, "", "Sea")
	names := checklistNames(allDocuments(checklist))
	assert.NotContains(t, names, "Air Waybill (AWB)")
	assert.NotContains(t, names, "CMR Consignment Note")
}

func TestGenerateChecklistGold(t *testing.T) {
	svc := NewService()

	checklist := svc.GenerateChecklist("Switzerland", "7108.13", 2000000, "", "")
	permits := checklistNames(checklist.PermitsAndCertificates)
	assert.Contains(t, permits, "Kimberley Process Certificate")
	assert.Contains(t, permits, "South African Reserve Bank (SARB) Export Permit")

	var preciousWarning bool
	for _, w := range checklist.Warnings {
		if strings.Contains(w, "Precious stones/metals") {
			preciousWarning = true
		}
	}
	assert.True(t, preciousWarning)
}

func TestGenerateChecklistSummaryFigures(t *testing.T) {
	svc := NewService()

	checklist := svc.GenerateChecklist("Namibia", "2204.21", 50000, "SADC", "")

	// Costs: invoice 0 + packing 0 + BoL 500 + SAD 800 + CoO 300 + Form A 300
	// + phyto 500 + excise 500.
	assert.Equal(t, 2900.0, checklist.EstimatedTotalCostZAR)

	// Longest required document lead time is the excise clearance (7 days).
	assert.Equal(t, 7, checklist.EstimatedProcessingDays)

	assert.Equal(t, len(checklist.RequiredDocuments), checklist.TotalRequired)
	assert.Equal(t, len(checklist.OptionalDocuments), checklist.TotalOptional)
}

func TestGenerateChecklistIdempotent(t *testing.T) {
	svc := NewService()

	first := svc.GenerateChecklist("Kenya", "0201.30", 800000, "EAC", "air")
	second := svc.GenerateChecklist("Kenya", "0201.30", 800000, "EAC", "air")
	assert.Equal(t, first, second)
}

package tariff

import "strings"

// Permit names issued against specific HS chapters. The calculator reports
// these as special permits; the checklist generator carries matching document
// records for the same chapters.
const (
	PermitNCACCImport         = "Import Permit from NCACC (National Conventional Arms Control Committee)"
	PermitEndUserCertificate  = "End User Certificate"
	PermitDMREnergy           = "Department of Mineral Resources and Energy Permit"
	PermitSAHPRARegistration  = "SAHPRA Registration (South African Health Products Regulatory Authority)"
	PermitVeterinaryHealth    = "Veterinary Health Certificate"
	PermitAgricultureImport   = "Department of Agriculture Import Permit"
	PermitPhytosanitary       = "Phytosanitary Certificate"
	PermitExciseConditional   = "Excise Registration (if applicable)"
	PermitExciseRegistration  = "Excise Registration"
	PermitHealthWarningLabels = "Health Warning Labels Compliance"
	PermitKimberleyProcess    = "Kimberley Process Certificate (SADPMR)"
	PermitSARBExport          = "South African Reserve Bank (SARB) Export Permit"
)

// chapterPermits maps a 2-digit HS chapter to the permits it triggers.
// Chapter 71 additionally requires a SARB export permit for gold headings,
// handled in PermitsFor.
var chapterPermits = map[string][]string{
	"02": {PermitVeterinaryHealth, PermitAgricultureImport},
	"04": {PermitVeterinaryHealth, PermitAgricultureImport},
	"06": {PermitPhytosanitary, PermitAgricultureImport},
	"07": {PermitPhytosanitary, PermitAgricultureImport},
	"22": {PermitExciseConditional},
	"24": {PermitExciseRegistration, PermitHealthWarningLabels},
	"27": {PermitDMREnergy},
	"30": {PermitSAHPRARegistration},
	"71": {PermitKimberleyProcess},
	"93": {PermitNCACCImport, PermitEndUserCertificate},
}

// Gold headings within chapter 71 that fall under exchange-control rules.
var sarbControlledHeadings = []string{"7108", "7109"}

// PermitsFor returns the special permits an HS code attracts, derived from
// its chapter prefix. The returned slice is a fresh copy; callers may append
// to it.
func PermitsFor(hsCode string) []string {
	chapter := Chapter(hsCode)
	if chapter == "" {
		return nil
	}

	permits := append([]string(nil), chapterPermits[chapter]...)

	if chapter == "71" && IsSARBControlled(hsCode) {
		permits = append(permits, PermitSARBExport)
	}

	return permits
}

// IsSARBControlled reports whether the code falls under a gold heading subject
// to SARB exchange control.
func IsSARBControlled(hsCode string) bool {
	cleaned := NormalizeHSCode(hsCode)
	for _, heading := range sarbControlledHeadings {
		if strings.Contains(cleaned, heading) {
			return true
		}
	}
	return false
}

// PermitChapters lists every chapter with at least one permit rule.
func PermitChapters() []string {
	chapters := make([]string, 0, len(chapterPermits))
	for chapter := range chapterPermits {
		chapters = append(chapters, chapter)
	}
	return chapters
}

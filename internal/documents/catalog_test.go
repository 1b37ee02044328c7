package documents

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PawleN-D/africompliance-api/internal/tariff"
)

// The calculator's permit table and the checklist catalog answer the same
// question from two angles. This keeps their chapter coverage aligned.
// Chapters 27 (mineral fuels) and 93 (arms) are permit-only: their
// authorizations are issued per consignment by DMRE/NCACC and have no
// standing certificate to put on a checklist.
var permitOnlyChapters = map[string]bool{"27": true, "93": true}

func TestCatalogCoversPermitChapters(t *testing.T) {
	for _, chapter := range tariff.PermitChapters() {
		_, err := strconv.Atoi(chapter)
		assert.NoError(t, err, "chapter key %q must be numeric", chapter)

		if permitOnlyChapters[chapter] {
			continue
		}

		docs := hsCodeDocuments(chapter + "0100")
		assert.NotEmpty(t, docs, "chapter %s has permits but no checklist documents", chapter)
	}
}

func TestHSCodeDocumentsInvalidCode(t *testing.T) {
	assert.Empty(t, hsCodeDocuments("abc"))
	assert.Empty(t, hsCodeDocuments(""))
}

func TestHSCodeDocumentsChapterBoundaries(t *testing.T) {
	// Chapter 24 is the last food/agriculture chapter, 25 the first outside.
	assert.NotEmpty(t, hsCodeDocuments("2402.20"))
	for _, d := range hsCodeDocuments("2501.00") {
		assert.NotEqual(t, "Phytosanitary Certificate", d.Name)
	}

	// Chemicals range 28-38.
	assert.NotEmpty(t, hsCodeDocuments("2801.10"))
	assert.NotEmpty(t, hsCodeDocuments("3824.99"))
	assert.Empty(t, hsCodeDocuments("3901.10"))
}

func TestValueBasedDocumentThresholdsExclusive(t *testing.T) {
	assert.Empty(t, valueBasedDocuments(500000))
	assert.Len(t, valueBasedDocuments(500001), 1)
	assert.Len(t, valueBasedDocuments(1000000), 1)
	assert.Len(t, valueBasedDocuments(1000001), 2)
}

package hscode

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/PawleN-D/africompliance-api/internal/hscode/dataset"
	"github.com/PawleN-D/africompliance-api/internal/tariff"
)

// chapterDescriptions labels the HS chapters the reference table covers.
var chapterDescriptions = map[string]string{
	"01": "Live animals",
	"02": "Meat and edible meat offal",
	"03": "Fish and crustaceans",
	"04": "Dairy produce; eggs; honey",
	"05": "Products of animal origin",
	"06": "Live trees and plants",
	"07": "Edible vegetables",
	"08": "Edible fruit and nuts",
	"09": "Coffee, tea, spices",
	"10": "Cereals",
	"22": "Beverages, spirits and vinegar",
	"24": "Tobacco",
	"27": "Mineral fuels, oils",
	"30": "Pharmaceutical products",
	"40": "Rubber and articles thereof",
	"62": "Articles of apparel (not knitted)",
	"71": "Precious stones, metals, jewelry",
	"72": "Iron and steel",
	"84": "Machinery and mechanical appliances",
	"85": "Electrical machinery and equipment",
	"87": "Vehicles",
	"90": "Optical, medical instruments",
}

// popularCodes is a curated list of common South African exports, in display
// order.
var popularCodes = []string{
	"2204.21", // wine
	"7102.31", // diamonds
	"8703.23", // motor cars
	"0805.10", // oranges
	"8542.31", // integrated circuits
	"6203.42", // trousers
	"2709.00", // crude petroleum
	"7108.13", // gold
}

// Service provides lookup and text search over the static HS code reference
// table. The table is loaded once at construction and read-only afterwards.
type Service struct {
	codes      []Record
	categories []string
}

// NewService loads the reference table through the given dataset driver.
func NewService(ctx context.Context, driver dataset.Driver) (*Service, error) {
	r, err := driver.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open HS dataset: %w", err)
	}
	defer r.Close()

	var codes []Record
	if err := json.NewDecoder(r).Decode(&codes); err != nil {
		return nil, fmt.Errorf("failed to decode HS dataset: %w", err)
	}

	svc := NewServiceFromRecords(codes)
	slog.Info("HS code service initialized",
		"codes", len(svc.codes),
		"categories", len(svc.categories),
	)
	return svc, nil
}

// NewServiceFromRecords builds a service over an in-memory table.
func NewServiceFromRecords(codes []Record) *Service {
	seen := map[string]bool{}
	var categories []string
	for _, c := range codes {
		if c.Category != "" && !seen[c.Category] {
			seen[c.Category] = true
			categories = append(categories, c.Category)
		}
	}
	sort.Strings(categories)

	return &Service{codes: codes, categories: categories}
}

// Search finds codes whose description matches the query, scored by a simple
// relevance heuristic and sorted best-first. Queries shorter than 2
// characters return nothing. category and chapter are optional filters.
func (s *Service) Search(query string, maxResults int, category, chapter string) []Details {
	query = strings.ToLower(strings.TrimSpace(query))
	if len(query) < 2 {
		return nil
	}
	words := strings.Fields(query)

	var results []Details
	for _, code := range s.codes {
		if category != "" && code.Category != category {
			continue
		}
		if chapter != "" && code.Chapter != chapter {
			continue
		}

		score := relevance(code, query, words)
		if score > 0 {
			results = append(results, Details{Record: code, RelevanceScore: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RelevanceScore > results[j].RelevanceScore
	})

	if maxResults > 0 && len(results) > maxResults {
		results = results[:maxResults]
	}
	return results
}

// relevance scores a record against a query: exact phrase match in the
// description counts 50 (plus 20 on a word boundary), a category match 15,
// and each query word of 3+ characters 10 in the description and 5 in the
// notes.
func relevance(code Record, query string, words []string) float64 {
	description := strings.ToLower(code.Description)
	category := strings.ToLower(code.Category)
	notes := strings.ToLower(code.Notes)

	var score float64

	if strings.Contains(description, query) {
		score += 50
		padded := " " + description + " "
		if strings.Contains(padded, " "+query+" ") ||
			strings.HasPrefix(description, query) ||
			strings.HasSuffix(description, query) {
			score += 20
		}
	}

	if strings.Contains(category, query) {
		score += 15
	}

	for _, word := range words {
		if len(word) < 3 {
			continue
		}
		if strings.Contains(description, word) {
			score += 10
		}
		if notes != "" && strings.Contains(notes, word) {
			score += 5
		}
	}

	return score
}

// Lookup finds a code by exact or prefix match after separator
// normalization. Returns nil when nothing matches.
func (s *Service) Lookup(code string) *Details {
	normalized := strings.ToUpper(tariff.NormalizeHSCode(code))
	if normalized == "" {
		return nil
	}

	for _, c := range s.codes {
		candidate := strings.ToUpper(tariff.NormalizeHSCode(c.Code))
		if candidate == normalized || strings.HasPrefix(candidate, normalized) {
			return &Details{Record: c, RelevanceScore: 100}
		}
	}
	return nil
}

// Categories returns all categories present in the table, sorted.
func (s *Service) Categories() []string {
	return append([]string(nil), s.categories...)
}

// ByChapter returns all codes in a chapter. Single-digit chapters are
// zero-padded before matching.
func (s *Service) ByChapter(chapter string) []Details {
	padded := PadChapter(chapter)

	var results []Details
	for _, c := range s.codes {
		if c.Chapter == padded {
			results = append(results, Details{Record: c})
		}
	}
	return results
}

// ChapterDescription labels a chapter, falling back to "Chapter NN" for
// chapters outside the reference table.
func (s *Service) ChapterDescription(chapter string) string {
	padded := PadChapter(chapter)
	if desc, ok := chapterDescriptions[padded]; ok {
		return desc
	}
	return fmt.Sprintf("Chapter %s", padded)
}

// Popular returns up to limit entries from the curated common-exports list,
// skipping any code missing from the loaded table.
func (s *Service) Popular(limit int) []Details {
	if limit <= 0 || limit > len(popularCodes) {
		limit = len(popularCodes)
	}

	var results []Details
	for _, code := range popularCodes[:limit] {
		if details := s.Lookup(code); details != nil {
			results = append(results, *details)
		}
	}
	return results
}

// PadChapter zero-pads a single-digit chapter number.
func PadChapter(chapter string) string {
	if len(chapter) == 1 {
		return "0" + chapter
	}
	return chapter
}

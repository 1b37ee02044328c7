package router

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/PawleN-D/africompliance-api/internal/hscode"
	"github.com/PawleN-D/africompliance-api/utils"
)

type HSCodeRouter struct {
	hs       *hscode.Service
	validate *validator.Validate
}

func NewHSCodeRouter(hs *hscode.Service) *HSCodeRouter {
	return &HSCodeRouter{
		hs:       hs,
		validate: validator.New(),
	}
}

// SearchDTO is the payload for POST /v1/hs-codes/search.
type SearchDTO struct {
	Query      string `json:"query" validate:"required,min=2"`
	MaxResults int    `json:"max_results,omitempty" validate:"omitempty,min=1,max=50"`
	Category   string `json:"category,omitempty"`
	Chapter    string `json:"chapter,omitempty"`
}

type searchResponse struct {
	Query           string           `json:"query"`
	TotalResults    int              `json:"total_results"`
	Results         []hscode.Details `json:"results"`
	CategoriesFound []string         `json:"categories_found"`
}

// HandleSearch handles POST /v1/hs-codes/search requests
func (hr *HSCodeRouter) HandleSearch(w http.ResponseWriter, r *http.Request) {
	var req SearchDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if err := hr.validate.Struct(req); err != nil {
		http.Error(w, fmt.Sprintf("validation failed: %v", err), http.StatusBadRequest)
		return
	}
	if req.MaxResults == 0 {
		req.MaxResults = 10
	}

	slog.Info("hs code search", "query", req.Query, "max_results", req.MaxResults)

	results := hr.hs.Search(req.Query, req.MaxResults, req.Category, req.Chapter)

	seen := make(map[string]bool)
	categoriesFound := make([]string, 0)
	for _, res := range results {
		if !seen[res.Category] {
			seen[res.Category] = true
			categoriesFound = append(categoriesFound, res.Category)
		}
	}
	sort.Strings(categoriesFound)

	writeJSON(w, searchResponse{
		Query:           req.Query,
		TotalResults:    len(results),
		Results:         results,
		CategoriesFound: categoriesFound,
	})
}

// LookupDTO is the payload for POST /v1/hs-codes/lookup.
type LookupDTO struct {
	Code string `json:"code" validate:"required,min=4"`
}

type lookupResponse struct {
	Found       bool            `json:"found"`
	CodeDetails *hscode.Details `json:"code_details"`
}

// HandleLookup handles POST /v1/hs-codes/lookup requests
func (hr *HSCodeRouter) HandleLookup(w http.ResponseWriter, r *http.Request) {
	var req LookupDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if err := hr.validate.Struct(req); err != nil {
		http.Error(w, fmt.Sprintf("validation failed: %v", err), http.StatusBadRequest)
		return
	}

	details := hr.hs.Lookup(req.Code)
	if details == nil {
		slog.Warn("hs code not found", "code", req.Code)
	}

	writeJSON(w, lookupResponse{
		Found:       details != nil,
		CodeDetails: details,
	})
}

type categoriesResponse struct {
	Categories []string `json:"categories"`
	TotalCount int      `json:"total_count"`
}

// HandleGetCategories handles GET /v1/hs-codes/categories requests
func (hr *HSCodeRouter) HandleGetCategories(w http.ResponseWriter, r *http.Request) {
	categories := hr.hs.Categories()

	writeJSON(w, categoriesResponse{
		Categories: categories,
		TotalCount: len(categories),
	})
}

type chapterResponse struct {
	Chapter            string           `json:"chapter"`
	ChapterDescription string           `json:"chapter_description"`
	Codes              []hscode.Details `json:"codes"`
	TotalCount         int              `json:"total_count"`
}

// HandleGetChapter handles GET /v1/hs-codes/chapter/{chapter} requests
func (hr *HSCodeRouter) HandleGetChapter(w http.ResponseWriter, r *http.Request) {
	chapter := r.PathValue("chapter")
	if chapter == "" {
		http.Error(w, "missing chapter in path", http.StatusBadRequest)
		return
	}

	codes := hr.hs.ByChapter(chapter)
	slog.Info("hs codes by chapter", "chapter", chapter, "count", len(codes))

	writeJSON(w, chapterResponse{
		Chapter:            hscode.PadChapter(chapter),
		ChapterDescription: hr.hs.ChapterDescription(chapter),
		Codes:              codes,
		TotalCount:         len(codes),
	})
}

type popularResponse struct {
	PopularCodes []hscode.Details `json:"popular_codes"`
	TotalCount   int              `json:"total_count"`
}

// HandleGetPopular handles GET /v1/hs-codes/popular requests
// Optional query parameter: limit (1-50, default 20)
func (hr *HSCodeRouter) HandleGetPopular(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil {
			http.Error(w, "invalid 'limit' query parameter, must be an integer", http.StatusBadRequest)
			return
		}
		limit = utils.ClampLimit(parsed)
	}

	codes := hr.hs.Popular(limit)

	writeJSON(w, popularResponse{
		PopularCodes: codes,
		TotalCount:   len(codes),
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, fmt.Sprintf("failed to encode response: %v", err), http.StatusInternalServerError)
	}
}

// internal/app/system/paging/paging.go
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

// DefaultLimit is the page size used when the caller does not ask for one.
const DefaultLimit = 10

// MaxLimit caps how many rows one page may return.
const MaxLimit = 50

// Clamp normalizes a requested page/limit pair: page is forced to ≥1,
// limit into [1, MaxLimit], and a zero/negative limit falls back to
// DefaultLimit.
func Clamp(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

// Skip returns the number of documents to skip for a clamped page/limit.
func Skip(page, limit int) int64 {
	return int64(page-1) * int64(limit)
}

// TotalPages computes the page count for a total row count. Zero rows
// yield zero pages.
func TotalPages(total int64, limit int) int {
	if total <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// Parse extracts and clamps the "page" and "limit" query parameters.
func Parse(r *http.Request) (page, limit int) {
	page, _ = strconv.Atoi(query.Get(r, "page"))
	limit, _ = strconv.Atoi(query.Get(r, "limit"))
	return Clamp(page, limit)
}

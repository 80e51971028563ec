package paging

import (
	"net/http/httptest"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name                string
		page, limit         int
		wantPage, wantLimit int
	}{
		{"defaults", 0, 0, 1, DefaultLimit},
		{"negative page", -3, 10, 1, 10},
		{"limit too high", 2, 500, 2, MaxLimit},
		{"limit at max", 1, 50, 1, 50},
		{"limit of one", 1, 1, 1, 1},
		{"normal", 3, 20, 3, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, l := Clamp(tt.page, tt.limit)
			if p != tt.wantPage || l != tt.wantLimit {
				t.Errorf("Clamp(%d, %d) = (%d, %d), want (%d, %d)",
					tt.page, tt.limit, p, l, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestSkip(t *testing.T) {
	if got := Skip(1, 10); got != 0 {
		t.Errorf("Skip(1,10) = %d", got)
	}
	if got := Skip(3, 20); got != 40 {
		t.Errorf("Skip(3,20) = %d", got)
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{100, 50, 2},
	}
	for _, tt := range tests {
		if got := TotalPages(tt.total, tt.limit); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.limit, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	r := httptest.NewRequest("GET", "/projects?page=2&limit=25", nil)
	page, limit := Parse(r)
	if page != 2 || limit != 25 {
		t.Errorf("Parse = (%d, %d)", page, limit)
	}

	r = httptest.NewRequest("GET", "/projects?page=bogus&limit=-4", nil)
	page, limit = Parse(r)
	if page != 1 || limit != DefaultLimit {
		t.Errorf("Parse(bogus) = (%d, %d)", page, limit)
	}
}

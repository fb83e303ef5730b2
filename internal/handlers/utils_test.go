package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sbilibin2017/gw-career-opportunities/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseListingQuery(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    models.ListingQuery
		wantMsg string
	}{
		{
			name:  "defaults",
			query: "",
			want:  models.ListingQuery{Page: 1, PageSize: 10},
		},
		{
			name:  "explicit values",
			query: "?search=%20Go%20&category=internship&page=3&limit=25",
			want:  models.ListingQuery{Search: "Go", Category: models.CategoryInternship, Page: 3, PageSize: 25},
		},
		{
			name:  "non-numeric and non-positive fall back",
			query: "?page=abc&limit=-5",
			want:  models.ListingQuery{Page: 1, PageSize: 10},
		},
		{
			name:  "zero falls back",
			query: "?page=0&limit=0",
			want:  models.ListingQuery{Page: 1, PageSize: 10},
		},
		{
			name:  "limit is capped",
			query: "?limit=5000",
			want:  models.ListingQuery{Page: 1, PageSize: 100},
		},
		{
			name:  "huge page is capped",
			query: "?page=100000000000000000&limit=100",
			want:  models.ListingQuery{Page: models.MaxPage, PageSize: 100},
		},
		{
			name:  "page beyond int range is capped",
			query: "?page=99999999999999999999999&limit=99999999999999999999999",
			want:  models.ListingQuery{Page: models.MaxPage, PageSize: 100},
		},
		{
			name:    "unknown category",
			query:   "?category=party",
			wantMsg: "Invalid category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/opportunities"+tt.query, nil)
			q, msg := parseListingQuery(r)
			assert.Equal(t, tt.wantMsg, msg)
			if tt.wantMsg == "" {
				assert.Equal(t, tt.want, q)
				assert.GreaterOrEqual(t, q.Offset(), 0)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	got, err := parseDate("2026-03-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), got)

	got, err = parseDate("2026-03-01T10:30:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 8, 30, 0, 0, time.UTC), got.UTC())

	_, err = parseDate("01/03/2026")
	assert.Error(t, err)
}

func TestOptionalString(t *testing.T) {
	blank, value := "  ", " x "
	assert.Nil(t, optionalString(nil))
	assert.Nil(t, optionalString(&blank))
	assert.Equal(t, "x", *optionalString(&value))
}

func TestRequireClaims(t *testing.T) {
	rr := httptest.NewRecorder()
	_, ok := requireClaims(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.False(t, ok)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"message":"Unauthorized"}`, rr.Body.String())
}

func TestRootHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	NewRootHandler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Career Opportunities Platform API is running", rr.Body.String())
}

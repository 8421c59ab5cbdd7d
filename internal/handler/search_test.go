package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"jo3qma.com/ebay_search/internal/domain/model"
)

type fakeSearchRunner struct {
	result *model.SearchResult
	err    error
	query  model.SearchQuery
}

func (f *fakeSearchRunner) SearchAll(_ context.Context, query model.SearchQuery) (*model.SearchResult, error) {
	f.query = query
	return f.result, f.err
}

func init() {
	gin.SetMode(gin.TestMode)
}

func TestSearchHandler_Search_mapsDomainToJSON(t *testing.T) {
	t.Parallel()

	fake := &fakeSearchRunner{
		result: &model.SearchResult{
			Listings: []*model.Listing{
				{
					URL:         "http://cgi.ebay.com/ws/eBayISAPI.dll?ViewItem&item=1234567890",
					Title:       "Vintage Camera Lens",
					ItemNumber:  1234567890,
					BidCount:    "3",
					Price:       "$5.00",
					ChangeDate:  "Aug-29 10:15",
					Description: "Item #1234567890; 3 bids; current bid $5.00",
				},
			},
			TotalCount: 47,
			Pages:      2,
		},
	}
	router := NewRouter(NewSearchHandler(fake))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/search?q=vintage+camera", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status got %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
	}
	if fake.query.Keywords != "vintage camera" {
		t.Fatalf("Keywords got %q, want %q", fake.query.Keywords, "vintage camera")
	}

	var resp searchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Query != "vintage camera" {
		t.Fatalf("Query got %q", resp.Query)
	}
	if resp.TotalCount != 47 || resp.Pages != 2 {
		t.Fatalf("TotalCount/Pages got %d/%d, want 47/2", resp.TotalCount, resp.Pages)
	}
	if len(resp.Listings) != 1 {
		t.Fatalf("Listings len got %d, want 1", len(resp.Listings))
	}
	l := resp.Listings[0]
	if l.ItemNumber != 1234567890 || l.BidCount != "3" || l.Title != "Vintage Camera Lens" {
		t.Fatalf("listing mapped wrong: %+v", l)
	}
}

func TestSearchHandler_Search_requiresQuery(t *testing.T) {
	t.Parallel()

	router := NewRouter(NewSearchHandler(&fakeSearchRunner{}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/search", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status got %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestSearchHandler_Search_upstreamFailure(t *testing.T) {
	t.Parallel()

	router := NewRouter(NewSearchHandler(&fakeSearchRunner{err: errors.New("fetch failed")}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/search?q=camera", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("status got %d, want %d", w.Code, http.StatusBadGateway)
	}
}

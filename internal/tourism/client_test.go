package tourism

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mzurbriggen/alpinequery/internal/cache"
	"github.com/mzurbriggen/alpinequery/internal/model"
)

func TestSearch_MockCatalog(t *testing.T) {
	c := NewClient(model.CatalogConfig{}, nil)

	filters := model.ActivityFilters{
		Query:      "easy hike for seniors, half day",
		Experience: "hiking",
		Duration:   "half_day",
		Difficulty: "easy",
		Audience:   "seniors",
	}
	results, err := c.Search(context.Background(), filters)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected results from the mock catalog")
	}

	// The top results must agree on every requested filter
	top := results[0]
	if top.Experience != "hiking" || top.Duration != "half_day" || top.Difficulty != "easy" {
		t.Errorf("top result %q does not match filters: %+v", top.Name, top)
	}
	if !top.SuitableFor("seniors") {
		t.Errorf("top result %q is not senior-suitable", top.Name)
	}

	// Ranking is descending by score
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Errorf("results not sorted at %d: %v > %v", i, results[i].Score, results[i-1].Score)
		}
	}
}

func TestSearch_MaxResults(t *testing.T) {
	c := NewClient(model.CatalogConfig{MaxResults: 2}, nil)

	results, err := c.Search(context.Background(), model.ActivityFilters{
		Query:      "hiking",
		Experience: "hiking",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) > 2 {
		t.Errorf("got %d results, want at most 2", len(results))
	}
}

func TestSearch_TextOnlyQuery(t *testing.T) {
	c := NewClient(model.CatalogConfig{}, nil)

	// No categorical filters set: ranking falls back to name similarity
	results, err := c.Search(context.Background(), model.ActivityFilters{Query: "Jungfraujoch"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected text-similarity results")
	}
	if results[0].Name != "Jungfraujoch" {
		t.Errorf("top result = %q, want Jungfraujoch", results[0].Name)
	}
}

func TestMatchScore(t *testing.T) {
	activity := model.Activity{
		Name:       "Eiger Trail",
		Experience: "hiking",
		Duration:   "half_day",
		Difficulty: "moderate",
		Audiences:  []string{"everyone"},
	}

	full := matchScore(activity, model.ActivityFilters{
		Experience: "hiking",
		Duration:   "half_day",
		Difficulty: "moderate",
	})
	if full < 0.8 {
		t.Errorf("all-filters-match score = %v, want at least 0.8", full)
	}

	partial := matchScore(activity, model.ActivityFilters{
		Experience: "hiking",
		Difficulty: "expert",
	})
	if partial >= full {
		t.Errorf("partial match %v should score below full match %v", partial, full)
	}

	none := matchScore(activity, model.ActivityFilters{Experience: "wellness"})
	if none >= partial {
		t.Errorf("mismatch %v should score below partial match %v", none, partial)
	}
}

func TestMockCatalog(t *testing.T) {
	catalog := MockCatalog()
	if len(catalog) < 10 {
		t.Fatalf("mock catalog has %d activities, want a usable corpus", len(catalog))
	}

	seen := make(map[string]bool)
	for _, a := range catalog {
		if a.ID == "" || a.Name == "" {
			t.Errorf("activity with missing identity: %+v", a)
		}
		if seen[a.ID] {
			t.Errorf("duplicate activity ID %q", a.ID)
		}
		seen[a.ID] = true
		if a.Experience == "" || a.Duration == "" || a.Difficulty == "" {
			t.Errorf("activity %q missing filter fields", a.Name)
		}
	}

	// The evaluation scenarios rely on this entry
	found := false
	for _, a := range catalog {
		if a.Name == "Jungfraujoch" {
			found = true
		}
	}
	if !found {
		t.Error("mock catalog should include Jungfraujoch")
	}
}

func TestSearch_ScrapedListingFallback(t *testing.T) {
	var listingHits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		listingHits++
		fmt.Fprint(w, `<html><body>
			<h2>Gornergrat Railway Ride</h2>
			<h3>Aare Gorge Walk</h3>
			<a href="/a/3">Rhine Falls Boat Trip</a>
		</body></html>`)
	}))
	defer srv.Close()

	cfg := model.CatalogConfig{
		ListingURL: srv.URL + "/activities",
		UserAgent:  "alpinequery-test",
	}
	c := NewClient(cfg, cache.NewMemoryCache(time.Minute, time.Minute))

	filters := model.ActivityFilters{Query: "gornergrat railway"}
	results, err := c.Search(context.Background(), filters)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected results from the scraped listing")
	}
	if results[0].Name != "Gornergrat Railway Ride" {
		t.Errorf("top result = %q, want Gornergrat Railway Ride", results[0].Name)
	}
	for _, r := range results {
		if r.ID == "" {
			t.Errorf("scraped activity %q has no ID", r.Name)
		}
	}

	// A repeat search is served from the cache, not the listing page
	if _, err := c.Search(context.Background(), filters); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if listingHits != 1 {
		t.Errorf("listing fetched %d times, want 1", listingHits)
	}
}

func TestSearch_UnreachableListingFallsBackToMock(t *testing.T) {
	cfg := model.CatalogConfig{
		ListingURL: "http://127.0.0.1:1/activities",
		UserAgent:  "alpinequery-test",
	}
	c := NewClient(cfg, nil)

	results, err := c.Search(context.Background(), model.ActivityFilters{Query: "Jungfraujoch"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) == 0 || results[0].Name != "Jungfraujoch" {
		t.Errorf("expected the mock catalog to serve Jungfraujoch, got %v", model.Titles(results))
	}
}

func TestActivitiesFromTitles(t *testing.T) {
	activities := activitiesFromTitles([]string{"Eiger Trail", "Chillon Castle"})
	if len(activities) != 2 {
		t.Fatalf("got %d activities, want 2", len(activities))
	}
	if activities[0].ID != "listing-001" || activities[0].Name != "Eiger Trail" {
		t.Errorf("first activity = %+v", activities[0])
	}
	if activities[1].ID != "listing-002" {
		t.Errorf("second activity ID = %q, want listing-002", activities[1].ID)
	}
}

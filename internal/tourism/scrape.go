package tourism

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/mzurbriggen/alpinequery/internal/util"
)

// Scraper extracts activity titles from an HTML listing page, for tourism
// providers that expose no JSON API. robots.txt is honored before fetching.
type Scraper struct {
	httpClient *http.Client
	robots     *util.RobotsChecker
	userAgent  string
}

// NewScraper creates a listing scraper
func NewScraper(userAgent string, timeout time.Duration) *Scraper {
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Scraper{
		httpClient: &http.Client{Timeout: timeout},
		robots:     util.NewRobotsChecker(userAgent, timeout),
		userAgent:  userAgent,
	}
}

// ScrapeTitles fetches a listing page and extracts candidate activity titles
// from headings and link anchors.
func (s *Scraper) ScrapeTitles(ctx context.Context, listingURL string) ([]string, error) {
	allowed, delay, err := s.robots.CanFetch(ctx, listingURL)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, fmt.Errorf("robots.txt disallows fetching %s", listingURL)
	}
	if delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, listingURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building listing request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching listing: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("listing fetch returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading listing: %w", err)
	}
	return ExtractTitles(string(body)), nil
}

// ExtractTitles walks an HTML document and collects heading and anchor text
// that looks like an activity title.
func ExtractTitles(htmlContent string) []string {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return nil
	}

	seen := make(map[string]bool)
	var titles []string
	var walk func(*html.Node)

	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && isTitleNode(n.Data) {
			text := strings.TrimSpace(nodeText(n))
			if plausibleTitle(text) && !seen[text] {
				seen[text] = true
				titles = append(titles, text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return titles
}

func isTitleNode(tag string) bool {
	switch tag {
	case "h2", "h3", "a":
		return true
	}
	return false
}

// nodeText concatenates the text content of a node's direct children
func nodeText(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}

// plausibleTitle filters out navigation noise
func plausibleTitle(text string) bool {
	if len(text) < 4 || len(text) > 80 {
		return false
	}
	lower := strings.ToLower(text)
	for _, noise := range []string{"cookie", "login", "sign up", "privacy", "imprint", "contact", "menu"} {
		if strings.Contains(lower, noise) {
			return false
		}
	}
	return strings.ContainsAny(text, "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")
}

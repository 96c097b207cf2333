package search

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"
)

const defaultEndpoint = "https://html.duckduckgo.com/html/"

// DuckDuckGo implements Provider against the DuckDuckGo HTML endpoint, which
// needs no API key.
type DuckDuckGo struct {
	client   *http.Client
	endpoint string
}

// NewDuckDuckGo creates a provider. client may be nil.
func NewDuckDuckGo(client *http.Client) *DuckDuckGo {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &DuckDuckGo{client: client, endpoint: defaultEndpoint}
}

// Search queries DuckDuckGo and returns up to maxResults links.
func (d *DuckDuckGo) Search(ctx context.Context, query string, maxResults int) ([]Link, error) {
	if maxResults <= 0 {
		maxResults = 5
	}

	reqURL := d.endpoint + "?q=" + url.QueryEscape(query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}
	req.Header.Set("User-Agent", "prepcoach-agent/1.0")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search returned status %d", resp.StatusCode)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse search results: %w", err)
	}

	links := parseResults(doc, maxResults)
	return links, nil
}

// parseResults walks the result page looking for anchors with the result__a
// class and the snippet nodes next to them.
func parseResults(doc *html.Node, maxResults int) []Link {
	var links []Link

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if len(links) >= maxResults {
			return
		}
		if n.Type == html.ElementNode && n.Data == "a" && hasClass(n, "result__a") {
			link := Link{
				Title: textContent(n),
				URL:   cleanResultURL(attr(n, "href")),
			}
			if link.URL != "" && link.Title != "" {
				links = append(links, link)
			}
		}
		if n.Type == html.ElementNode && hasClass(n, "result__snippet") && len(links) > 0 {
			if links[len(links)-1].Snippet == "" {
				links[len(links)-1].Snippet = textContent(n)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return links
}

func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(a.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}

// cleanResultURL unwraps DuckDuckGo's redirect links (//duckduckgo.com/l/?uddg=...)
// into the destination URL.
func cleanResultURL(raw string) string {
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "//") {
		raw = "https:" + raw
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	if uddg := parsed.Query().Get("uddg"); uddg != "" {
		if dest, err := url.QueryUnescape(uddg); err == nil {
			return dest
		}
	}
	return raw
}

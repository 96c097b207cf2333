// Package search provides the web-search collaborator used to enrich
// generated plans with current resource links. Its absence or failure never
// aborts plan generation; it only degrades the resource list.
package search

import (
	"context"
)

// Link is one search result.
type Link struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet,omitempty"`
}

// Provider returns a bounded list of resource links for a query.
type Provider interface {
	Search(ctx context.Context, query string, maxResults int) ([]Link, error)
}

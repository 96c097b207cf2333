package planner

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/prepcoach/prepcoach/internal/domain"
	"github.com/prepcoach/prepcoach/internal/search"
)

const linksPerDomain = 5

// research collects resource links for each selected domain. Failures are
// logged and degrade the result; they never abort plan generation.
func research(ctx context.Context, provider search.Provider, sel domain.Selections) Research {
	if provider == nil {
		return nil
	}

	out := make(Research, len(sel.Domains))
	for _, d := range sel.Domains {
		query := fmt.Sprintf("%s interview preparation %s",
			strings.ReplaceAll(string(d), "_", " "), sel.SkillLevel)
		links, err := provider.Search(ctx, query, linksPerDomain)
		if err != nil {
			slog.Warn("resource search failed, degrading plan", "domain", d, "error", err)
			continue
		}
		out[d] = links
	}

	for _, company := range sel.Companies {
		query := company + " software engineer interview process"
		links, err := provider.Search(ctx, query, linksPerDomain)
		if err != nil {
			slog.Warn("company search failed, degrading plan", "company", company, "error", err)
			continue
		}
		// Company links enrich the first selected domain's section.
		if len(sel.Domains) > 0 {
			first := sel.Domains[0]
			out[first] = append(out[first], links...)
		}
	}

	return out
}

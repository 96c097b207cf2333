// Package planner launches asynchronous plan generation and assembles the
// preparation plan text.
package planner

import (
	"context"
	"fmt"
	"strings"

	"github.com/prepcoach/prepcoach/internal/domain"
	"github.com/prepcoach/prepcoach/internal/search"
)

// Research maps interview domains to the resource links found for them.
type Research map[domain.Domain][]search.Link

// Generator synthesizes the plan text from the finalized selections and the
// research data. Implemented by the external model client and by the local
// template generator.
type Generator interface {
	GeneratePlan(ctx context.Context, sel domain.Selections, research Research) (string, error)
}

// TemplateGenerator builds plans locally without a model backend. Used as
// the default generator when no model service is configured.
type TemplateGenerator struct{}

// GeneratePlan assembles the plan from the built-in template.
func (TemplateGenerator) GeneratePlan(_ context.Context, sel domain.Selections, research Research) (string, error) {
	return buildPlan(sel, research), nil
}

// weeksFor returns the schedule length for a skill level: experienced users
// get a shorter ramp.
func weeksFor(level domain.SkillLevel) int {
	switch level {
	case domain.SkillAdvanced:
		return 8
	case domain.SkillIntermediate:
		return 12
	default:
		return 16
	}
}

func buildPlan(sel domain.Selections, research Research) string {
	var names []string
	for _, d := range sel.Domains {
		names = append(names, titleCase(string(d)))
	}
	weeks := weeksFor(sel.SkillLevel)
	quarter := weeks / 4

	var b strings.Builder
	b.WriteString("# Your Interview Preparation Plan\n\n")
	b.WriteString("## Overview\n")
	fmt.Fprintf(&b, "- Domains: %s\n", strings.Join(names, ", "))
	fmt.Fprintf(&b, "- Skill level: %s\n", titleCase(string(sel.SkillLevel)))
	fmt.Fprintf(&b, "- Learning style: %s\n", titleCase(string(sel.LearningStyle)))
	if sel.TargetRole != "" {
		fmt.Fprintf(&b, "- Target role: %s\n", sel.TargetRole)
	}
	if len(sel.Companies) > 0 {
		fmt.Fprintf(&b, "- Target companies: %s\n", strings.Join(sel.Companies, ", "))
	}

	fmt.Fprintf(&b, "\n## %d-Week Preparation Schedule\n\n", weeks)
	fmt.Fprintf(&b, "### Weeks 1-%d: Foundation Building\n", quarter)
	b.WriteString("- Review fundamental concepts\n- Set up a practice environment\n- Begin daily coding practice\n\n")
	fmt.Fprintf(&b, "### Weeks %d-%d: Core Skills Development\n", quarter+1, 2*quarter)
	b.WriteString("- Focus on key algorithms and data structures\n- Practice system design basics\n- Mock interview sessions\n\n")
	fmt.Fprintf(&b, "### Weeks %d-%d: Advanced Topics\n", 2*quarter+1, 3*quarter)
	b.WriteString("- Complex problem solving\n- In-depth system design\n- Domain-specific deep dives\n\n")
	fmt.Fprintf(&b, "### Weeks %d-%d: Final Preparation\n", 3*quarter+1, weeks)
	b.WriteString("- Company research and preparation\n- Final mock interviews\n- Review and polish\n")

	b.WriteString("\n## Essential Resources\n")
	resourceCount := 0
	for _, d := range sel.Domains {
		fmt.Fprintf(&b, "\n### %s\n", titleCase(string(d)))
		links := research[d]
		if len(links) > 3 {
			links = links[:3]
		}
		for _, l := range links {
			fmt.Fprintf(&b, "- [%s](%s)\n", l.Title, l.URL)
			resourceCount++
		}
		if len(links) == 0 {
			b.WriteString("- Start from the standard references for this domain\n")
		}
	}

	b.WriteString("\n### Practice Platforms\n")
	b.WriteString("- LeetCode for algorithm practice\n")
	b.WriteString("- System Design Primer for architecture concepts\n")
	b.WriteString("- Pramp for mock interviews\n")

	b.WriteString("\n## Daily Schedule Recommendation\n")
	switch sel.LearningStyle {
	case domain.StyleCodingHeavy:
		b.WriteString("- 1.5 hours: coding practice\n- 30 minutes: system design study\n- 30 minutes: domain-specific learning\n")
	case domain.StyleTheoryHeavy:
		b.WriteString("- 1 hour: theory and concept study\n- 45 minutes: system design reading\n- 45 minutes: coding practice\n")
	case domain.StyleProjectBased:
		b.WriteString("- 1 hour: project development\n- 30 minutes: code review and optimization\n- 1 hour: related theory study\n")
	default:
		b.WriteString("- 1 hour: coding practice\n- 30 minutes: system design study\n- 30 minutes: domain-specific learning\n")
	}

	if resourceCount > 0 {
		fmt.Fprintf(&b, "\nThis plan includes %d current resources found through web search.\n", resourceCount)
	} else {
		b.WriteString("\nWeb search was unavailable; resource links were omitted from this plan.\n")
	}

	return b.String()
}

// titleCase turns an enum value like "system_design" into "System Design".
func titleCase(v string) string {
	words := strings.Split(strings.ReplaceAll(v, "_", " "), " ")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

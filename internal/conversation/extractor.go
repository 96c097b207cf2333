// Package conversation implements the multi-turn dialogue core: the
// selection extractor, the phase state machine and the per-session manager
// that serializes turns.
package conversation

import (
	"context"
	"log/slog"
	"strings"

	"github.com/prepcoach/prepcoach/internal/domain"
)

// Update is a partial selection update produced from one turn of user text.
// An empty update means nothing was recognized.
type Update struct {
	Domains       []domain.Domain
	SkillLevel    domain.SkillLevel
	LearningStyle domain.LearningStyle
	Confirmed     bool

	// Intent is set when the text signals interview-preparation intent,
	// which is what moves a session out of the greeting phase.
	Intent bool
}

// Empty reports whether the update carries no recognized information.
func (u Update) Empty() bool {
	return len(u.Domains) == 0 && u.SkillLevel == "" && u.LearningStyle == "" &&
		!u.Confirmed && !u.Intent
}

// Interpreter resolves free-form text into closed-set values when the
// deterministic rules find nothing. Implemented by the external model client;
// nil disables the fallback.
type Interpreter interface {
	Interpret(ctx context.Context, phase domain.Phase, text string) (Update, error)
}

var intentKeywords = []string{"interview", "prepare", "job", "coding"}

var domainKeywords = map[domain.Domain][]string{
	domain.DomainAlgorithms:      {"algorithm", "algo", "coding", "leetcode", "data structure"},
	domain.DomainSystemDesign:    {"system", "design", "architecture", "scalability"},
	domain.DomainDatabases:       {"database", "db", "sql", "nosql"},
	domain.DomainMachineLearning: {"machine learning", "ml", "ai", "data science"},
	domain.DomainBehavioral:      {"behavioral", "soft skill", "leadership"},
	domain.DomainFrontend:        {"frontend", "front-end", "react", "javascript", "ui"},
	domain.DomainBackend:         {"backend", "back-end", "api", "microservice"},
}

var skillKeywords = []struct {
	level    domain.SkillLevel
	keywords []string
}{
	{domain.SkillBeginner, []string{"beginner", "new", "start"}},
	{domain.SkillIntermediate, []string{"intermediate", "some experience", "mid"}},
	{domain.SkillAdvanced, []string{"advanced", "expert", "experienced"}},
}

var styleKeywords = []struct {
	style    domain.LearningStyle
	keywords []string
}{
	{domain.StyleTheoryHeavy, []string{"theory", "concept", "understanding"}},
	{domain.StyleCodingHeavy, []string{"coding-heavy", "practice", "hands-on"}},
	{domain.StyleBalanced, []string{"balanced", "mix", "both"}},
	{domain.StyleProjectBased, []string{"project", "build", "real"}},
}

var confirmKeywords = []string{"yes", "start", "create", "begin", "proceed"}

// Extractor parses user text into structured selection updates. Deterministic
// keyword rules run first; only when they recognize nothing is the optional
// interpreter consulted. Results never leave the closed enumerations.
type Extractor struct {
	interp Interpreter
}

// NewExtractor creates an extractor. interp may be nil.
func NewExtractor(interp Interpreter) *Extractor {
	return &Extractor{interp: interp}
}

// Extract parses text in the context of the session's current phase. A slot
// is parsed only from its own phase onward, so one turn can fill several
// upcoming slots at once while keyword overlap between slots (for example
// "start" as both a beginner and a confirmation keyword) cannot corrupt
// slots that were already settled. The confirmation keyword set is only
// consulted while the session is confirming, so a "yes" mid-dialogue cannot
// pre-confirm generation.
func (e *Extractor) Extract(ctx context.Context, phase domain.Phase, text string) Update {
	lower := strings.ToLower(text)
	idx := phase.Index()

	var up Update
	if idx <= domain.PhaseDomainSelection.Index() {
		up.Domains = matchDomains(lower)
	}
	if idx <= domain.PhaseSkillLevel.Index() {
		up.SkillLevel = matchSkillLevel(lower)
	}
	if idx <= domain.PhaseLearningStyle.Index() {
		up.LearningStyle = matchLearningStyle(lower)
	}
	if phase == domain.PhaseConfirming {
		up.Confirmed = containsAny(lower, confirmKeywords)
	}
	if phase == domain.PhaseGreeting {
		up.Intent = containsAny(lower, intentKeywords) || !up.Empty()
	}

	if up.Empty() && e.interp != nil {
		interpreted, err := e.interp.Interpret(ctx, phase, text)
		if err != nil {
			slog.Debug("interpreter fallback failed", "phase", phase, "error", err)
			return up
		}
		return sanitize(phase, interpreted)
	}
	return up
}

func matchDomains(lower string) []domain.Domain {
	if strings.Contains(lower, "all") {
		return domain.AllDomains()
	}
	var out []domain.Domain
	for _, d := range domain.AllDomains() {
		if containsAny(lower, domainKeywords[d]) {
			out = append(out, d)
		}
	}
	return out
}

func matchSkillLevel(lower string) domain.SkillLevel {
	for _, entry := range skillKeywords {
		if containsAny(lower, entry.keywords) {
			return entry.level
		}
	}
	return ""
}

func matchLearningStyle(lower string) domain.LearningStyle {
	for _, entry := range styleKeywords {
		if containsAny(lower, entry.keywords) {
			return entry.style
		}
	}
	return ""
}

func containsAny(lower string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// sanitize drops any interpreter output that is not in the closed sets, that
// targets a slot behind the current phase, or that claims confirmation
// outside the confirming phase.
func sanitize(phase domain.Phase, up Update) Update {
	idx := phase.Index()

	var out Update
	if idx <= domain.PhaseDomainSelection.Index() {
		for _, d := range up.Domains {
			if domain.ValidDomain(d) {
				out.Domains = append(out.Domains, d)
			}
		}
	}
	if idx <= domain.PhaseSkillLevel.Index() && domain.ValidSkillLevel(up.SkillLevel) {
		out.SkillLevel = up.SkillLevel
	}
	if idx <= domain.PhaseLearningStyle.Index() && domain.ValidLearningStyle(up.LearningStyle) {
		out.LearningStyle = up.LearningStyle
	}
	if phase == domain.PhaseConfirming {
		out.Confirmed = up.Confirmed
	}
	if phase == domain.PhaseGreeting {
		out.Intent = up.Intent || !out.Empty()
	}
	return out
}

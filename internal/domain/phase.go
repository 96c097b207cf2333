// Package domain defines the core records for conversation sessions and
// asynchronous plan-generation tasks.
package domain

// Phase is the conversation phase of a session. Phases advance strictly
// forward; only an explicit reset returns a session to PhaseGreeting.
type Phase string

const (
	PhaseGreeting        Phase = "greeting"
	PhaseDomainSelection Phase = "domain_selection"
	PhaseSkillLevel      Phase = "skill_level"
	PhaseLearningStyle   Phase = "learning_style"
	PhaseConfirming      Phase = "confirming"
	PhaseGenerating      Phase = "generating"
	PhaseDone            Phase = "done"
)

// phaseOrder is the forward sequence of phases.
var phaseOrder = []Phase{
	PhaseGreeting,
	PhaseDomainSelection,
	PhaseSkillLevel,
	PhaseLearningStyle,
	PhaseConfirming,
	PhaseGenerating,
	PhaseDone,
}

// Next returns the phase following p, or p itself if p is terminal or unknown.
func (p Phase) Next() Phase {
	for i, ph := range phaseOrder {
		if ph == p && i+1 < len(phaseOrder) {
			return phaseOrder[i+1]
		}
	}
	return p
}

// Index returns the position of p in the forward sequence, or -1 if unknown.
func (p Phase) Index() int {
	for i, ph := range phaseOrder {
		if ph == p {
			return i
		}
	}
	return -1
}

// Domain is an interview domain a user can prepare for.
type Domain string

const (
	DomainAlgorithms      Domain = "algorithms"
	DomainSystemDesign    Domain = "system_design"
	DomainDatabases       Domain = "databases"
	DomainMachineLearning Domain = "machine_learning"
	DomainBehavioral      Domain = "behavioral"
	DomainFrontend        Domain = "frontend"
	DomainBackend         Domain = "backend"
)

// AllDomains lists every valid interview domain.
func AllDomains() []Domain {
	return []Domain{
		DomainAlgorithms,
		DomainSystemDesign,
		DomainDatabases,
		DomainMachineLearning,
		DomainBehavioral,
		DomainFrontend,
		DomainBackend,
	}
}

// ValidDomain reports whether d is one of the closed set of domains.
func ValidDomain(d Domain) bool {
	for _, v := range AllDomains() {
		if v == d {
			return true
		}
	}
	return false
}

// SkillLevel is the user's self-assessed experience level.
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
)

// ValidSkillLevel reports whether l is one of the closed set of levels.
func ValidSkillLevel(l SkillLevel) bool {
	switch l {
	case SkillBeginner, SkillIntermediate, SkillAdvanced:
		return true
	}
	return false
}

// LearningStyle is the user's preferred preparation style.
type LearningStyle string

const (
	StyleTheoryHeavy  LearningStyle = "theory_heavy"
	StyleCodingHeavy  LearningStyle = "coding_heavy"
	StyleBalanced     LearningStyle = "balanced"
	StyleProjectBased LearningStyle = "project_based"
)

// ValidLearningStyle reports whether s is one of the closed set of styles.
func ValidLearningStyle(s LearningStyle) bool {
	switch s {
	case StyleTheoryHeavy, StyleCodingHeavy, StyleBalanced, StyleProjectBased:
		return true
	}
	return false
}

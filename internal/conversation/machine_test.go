package conversation

import (
	"strings"
	"testing"

	"github.com/prepcoach/prepcoach/internal/domain"
)

func TestAdvanceMultipleSlotsInOneCall(t *testing.T) {
	m := NewMachine()
	sess := domain.NewSession("s1")

	res := m.Advance(sess, Update{
		Intent:     true,
		Domains:    []domain.Domain{domain.DomainAlgorithms},
		SkillLevel: domain.SkillIntermediate,
	})

	// Greeting -> DomainSelection -> SkillLevel -> LearningStyle in one turn.
	if res.Phase != domain.PhaseLearningStyle {
		t.Errorf("Expected phase learning_style, got %q", res.Phase)
	}
	if res.Selections.SkillLevel != domain.SkillIntermediate {
		t.Errorf("Expected intermediate, got %q", res.Selections.SkillLevel)
	}
}

func TestAdvanceStopsAtFirstMissingSlot(t *testing.T) {
	m := NewMachine()
	sess := domain.NewSession("s1")

	res := m.Advance(sess, Update{Intent: true})
	if res.Phase != domain.PhaseDomainSelection {
		t.Errorf("Expected phase domain_selection, got %q", res.Phase)
	}

	// Skipping ahead is impossible: a style without domains leaves the
	// session waiting on domains.
	res = m.Advance(sess, Update{LearningStyle: domain.StyleBalanced})
	if res.Phase != domain.PhaseDomainSelection {
		t.Errorf("Expected phase to stay at domain_selection, got %q", res.Phase)
	}
	if res.Selections.LearningStyle != domain.StyleBalanced {
		t.Error("Out-of-order slot value must still be retained")
	}
}

func TestAdvanceEmptyUpdateKeepsPhaseAndRepeatsPrompt(t *testing.T) {
	m := NewMachine()
	sess := domain.NewSession("s1")
	sess.Phase = domain.PhaseSkillLevel
	sess.Selections.Domains = []domain.Domain{domain.DomainBackend}

	res := m.Advance(sess, Update{})

	if res.Phase != domain.PhaseSkillLevel {
		t.Errorf("Expected phase unchanged, got %q", res.Phase)
	}
	if res.Prompt == "" {
		t.Error("Expected a re-prompt for the missing slot")
	}
	if len(res.Selections.Domains) != 1 {
		t.Error("Existing selections must survive an empty update")
	}
}

func TestAdvanceValuesReplacedNeverCleared(t *testing.T) {
	m := NewMachine()
	sess := domain.NewSession("s1")
	sess.Phase = domain.PhaseSkillLevel
	sess.Selections.Domains = []domain.Domain{domain.DomainBackend}
	sess.Selections.SkillLevel = domain.SkillBeginner

	m.Advance(sess, Update{SkillLevel: domain.SkillAdvanced})
	if sess.Selections.SkillLevel != domain.SkillAdvanced {
		t.Errorf("Expected skill replaced with advanced, got %q", sess.Selections.SkillLevel)
	}

	m.Advance(sess, Update{})
	if sess.Selections.SkillLevel != domain.SkillAdvanced {
		t.Error("Empty update must not clear a filled slot")
	}
}

func TestConfirmationMovesToGenerating(t *testing.T) {
	m := NewMachine()
	sess := domain.NewSession("s1")
	sess.Phase = domain.PhaseConfirming
	sess.Selections = domain.Selections{
		Domains:       []domain.Domain{domain.DomainAlgorithms},
		SkillLevel:    domain.SkillBeginner,
		LearningStyle: domain.StyleBalanced,
	}

	res := m.Advance(sess, Update{})
	if res.Phase != domain.PhaseConfirming {
		t.Errorf("Expected to stay in confirming without a yes, got %q", res.Phase)
	}
	if !strings.Contains(res.Prompt, "Algorithms") {
		t.Errorf("Confirming prompt should summarize the selections, got %q", res.Prompt)
	}

	res = m.Advance(sess, Update{Confirmed: true})
	if res.Phase != domain.PhaseGenerating {
		t.Errorf("Expected generating after confirmation, got %q", res.Phase)
	}
}

func TestGeneratingDoesNotAdvanceOnInput(t *testing.T) {
	m := NewMachine()
	sess := domain.NewSession("s1")
	sess.Phase = domain.PhaseGenerating

	res := m.Advance(sess, Update{Confirmed: true, Intent: true})
	if res.Phase != domain.PhaseGenerating {
		t.Errorf("Generating must only leave through task completion, got %q", res.Phase)
	}
}

package conversation

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/prepcoach/prepcoach/internal/domain"
)

func TestExtractDomainsAndIntent(t *testing.T) {
	e := NewExtractor(nil)

	up := e.Extract(context.Background(), domain.PhaseGreeting,
		"I want to prepare for interviews in algorithms and system design")

	if !up.Intent {
		t.Error("Expected intent to be recognized")
	}
	want := []domain.Domain{domain.DomainAlgorithms, domain.DomainSystemDesign}
	if !reflect.DeepEqual(up.Domains, want) {
		t.Errorf("Expected domains %v, got %v", want, up.Domains)
	}
}

func TestExtractAllDomains(t *testing.T) {
	e := NewExtractor(nil)

	up := e.Extract(context.Background(), domain.PhaseDomainSelection, "all of them please")

	if len(up.Domains) != len(domain.AllDomains()) {
		t.Errorf("Expected %d domains, got %d", len(domain.AllDomains()), len(up.Domains))
	}
}

func TestExtractMultipleSlotsInOneTurn(t *testing.T) {
	e := NewExtractor(nil)

	up := e.Extract(context.Background(), domain.PhaseDomainSelection,
		"databases, I'm a beginner and I like hands-on work")

	if !reflect.DeepEqual(up.Domains, []domain.Domain{domain.DomainDatabases}) {
		t.Errorf("Expected databases, got %v", up.Domains)
	}
	if up.SkillLevel != domain.SkillBeginner {
		t.Errorf("Expected beginner, got %q", up.SkillLevel)
	}
	if up.LearningStyle != domain.StyleCodingHeavy {
		t.Errorf("Expected coding_heavy, got %q", up.LearningStyle)
	}
}

// "start" is both a beginner keyword and a confirmation keyword. Which slot it
// lands in must depend only on the phase.
func TestExtractStartKeywordIsPhaseScoped(t *testing.T) {
	e := NewExtractor(nil)

	up := e.Extract(context.Background(), domain.PhaseSkillLevel, "just starting out")
	if up.SkillLevel != domain.SkillBeginner {
		t.Errorf("Expected beginner in skill phase, got %q", up.SkillLevel)
	}
	if up.Confirmed {
		t.Error("Confirmation must not be parsed outside the confirming phase")
	}

	up = e.Extract(context.Background(), domain.PhaseConfirming, "yes, start it")
	if !up.Confirmed {
		t.Error("Expected confirmation in confirming phase")
	}
	if up.SkillLevel != "" {
		t.Errorf("Skill slot must not be re-parsed in confirming phase, got %q", up.SkillLevel)
	}
}

func TestExtractEarlierSlotsNotReparsed(t *testing.T) {
	e := NewExtractor(nil)

	// "practice" is a coding_heavy keyword; in the learning-style phase the
	// domain table (where "coding" would match algorithms) must stay off.
	up := e.Extract(context.Background(), domain.PhaseLearningStyle, "lots of coding practice")

	if len(up.Domains) != 0 {
		t.Errorf("Expected no domains in learning-style phase, got %v", up.Domains)
	}
	if up.LearningStyle != domain.StyleCodingHeavy {
		t.Errorf("Expected coding_heavy, got %q", up.LearningStyle)
	}
}

func TestExtractUnrecognizedIsEmpty(t *testing.T) {
	e := NewExtractor(nil)

	up := e.Extract(context.Background(), domain.PhaseDomainSelection, "the weather is nice today")

	if !up.Empty() {
		t.Errorf("Expected empty update, got %+v", up)
	}
}

type fakeInterpreter struct {
	up     Update
	err    error
	called int
}

func (f *fakeInterpreter) Interpret(_ context.Context, _ domain.Phase, _ string) (Update, error) {
	f.called++
	return f.up, f.err
}

func TestInterpreterOnlyConsultedOnMiss(t *testing.T) {
	interp := &fakeInterpreter{up: Update{SkillLevel: domain.SkillAdvanced}}
	e := NewExtractor(interp)

	e.Extract(context.Background(), domain.PhaseSkillLevel, "intermediate")
	if interp.called != 0 {
		t.Error("Interpreter must not run when keywords matched")
	}

	up := e.Extract(context.Background(), domain.PhaseSkillLevel, "I've been around the block")
	if interp.called != 1 {
		t.Errorf("Expected one interpreter call, got %d", interp.called)
	}
	if up.SkillLevel != domain.SkillAdvanced {
		t.Errorf("Expected advanced from interpreter, got %q", up.SkillLevel)
	}
}

func TestInterpreterOutputSanitized(t *testing.T) {
	interp := &fakeInterpreter{up: Update{
		Domains:    []domain.Domain{"quantum_computing", domain.DomainBackend},
		SkillLevel: "wizard",
		Confirmed:  true,
	}}
	e := NewExtractor(interp)

	up := e.Extract(context.Background(), domain.PhaseDomainSelection, "hmm")

	if !reflect.DeepEqual(up.Domains, []domain.Domain{domain.DomainBackend}) {
		t.Errorf("Expected only valid domains to survive, got %v", up.Domains)
	}
	if up.SkillLevel != "" {
		t.Errorf("Expected invalid skill level to be dropped, got %q", up.SkillLevel)
	}
	if up.Confirmed {
		t.Error("Confirmation outside confirming phase must be dropped")
	}
}

func TestInterpreterErrorDegradesToEmpty(t *testing.T) {
	interp := &fakeInterpreter{err: errors.New("model unavailable")}
	e := NewExtractor(interp)

	up := e.Extract(context.Background(), domain.PhaseSkillLevel, "gibberish")

	if !up.Empty() {
		t.Errorf("Expected empty update on interpreter error, got %+v", up)
	}
}

package conversation

import (
	"github.com/prepcoach/prepcoach/internal/domain"
)

// Result is the outcome of advancing the state machine by one turn.
type Result struct {
	Phase      domain.Phase
	Prompt     string
	Selections domain.Selections
}

// Machine is the conversation phase state machine. It owns no sessions and
// performs no I/O; Advance mutates only the session it is handed. Callers are
// responsible for serializing calls per session.
type Machine struct{}

// NewMachine creates a state machine.
func NewMachine() *Machine {
	return &Machine{}
}

// Advance applies a selection update to the session and moves the phase
// forward as far as the now-filled slots permit, possibly several states in
// one call. If the slot required by the current phase is still empty the
// phase is unchanged and the prompt re-asks for the missing slot, without
// touching slots that are already filled.
func (m *Machine) Advance(sess *domain.Session, up Update) Result {
	apply(&sess.Selections, up)

	for {
		next, ok := m.advanceOne(sess, up)
		if !ok {
			break
		}
		sess.Phase = next
	}

	return Result{
		Phase:      sess.Phase,
		Prompt:     promptFor(sess.Phase, sess.Selections),
		Selections: sess.Selections.Clone(),
	}
}

// advanceOne reports the next phase and whether the session may enter it.
func (m *Machine) advanceOne(sess *domain.Session, up Update) (domain.Phase, bool) {
	sel := &sess.Selections
	switch sess.Phase {
	case domain.PhaseGreeting:
		return domain.PhaseDomainSelection, up.Intent
	case domain.PhaseDomainSelection:
		return domain.PhaseSkillLevel, sel.HasDomains()
	case domain.PhaseSkillLevel:
		return domain.PhaseLearningStyle, sel.SkillLevel != ""
	case domain.PhaseLearningStyle:
		return domain.PhaseConfirming, sel.LearningStyle != ""
	case domain.PhaseConfirming:
		return domain.PhaseGenerating, sel.Confirmed
	}
	// Generating and Done only move through task completion or reset.
	return sess.Phase, false
}

// apply merges an update into the selections. Values are replaced, never
// cleared; an empty update leaves every slot untouched.
func apply(sel *domain.Selections, up Update) {
	if len(up.Domains) > 0 {
		sel.Domains = append([]domain.Domain(nil), up.Domains...)
	}
	if up.SkillLevel != "" {
		sel.SkillLevel = up.SkillLevel
	}
	if up.LearningStyle != "" {
		sel.LearningStyle = up.LearningStyle
	}
	if up.Confirmed {
		sel.Confirmed = true
	}
}

package domain

import (
	"time"
)

// Selections holds the structured slots collected during the conversation.
// Slots are filled or overwritten, never cleared except on session reset.
type Selections struct {
	Domains       []Domain      `json:"domains"`
	SkillLevel    SkillLevel    `json:"skill_level,omitempty"`
	LearningStyle LearningStyle `json:"learning_style,omitempty"`
	Confirmed     bool          `json:"confirmed,omitempty"`

	// Optional, opportunistically captured. Gate no phase transition.
	TargetRole string   `json:"target_role,omitempty"`
	Companies  []string `json:"companies,omitempty"`
}

// HasDomains reports whether at least one interview domain was selected.
func (s *Selections) HasDomains() bool { return len(s.Domains) > 0 }

// Complete reports whether all required slots are filled.
func (s *Selections) Complete() bool {
	return s.HasDomains() && s.SkillLevel != "" && s.LearningStyle != ""
}

// Missing returns human-readable names of the still-empty required slots.
func (s *Selections) Missing() []string {
	var missing []string
	if !s.HasDomains() {
		missing = append(missing, "interview domains")
	}
	if s.SkillLevel == "" {
		missing = append(missing, "skill level")
	}
	if s.LearningStyle == "" {
		missing = append(missing, "learning style")
	}
	return missing
}

// Clone returns a deep copy safe to hand out as a snapshot.
func (s *Selections) Clone() Selections {
	out := *s
	out.Domains = append([]Domain(nil), s.Domains...)
	out.Companies = append([]string(nil), s.Companies...)
	return out
}

// TurnRecord is one entry of a session's conversation history.
type TurnRecord struct {
	Text  string    `json:"text"`
	Phase Phase     `json:"phase"`
	At    time.Time `json:"at"`
}

// Session is the per-conversation state record. The session ID is supplied by
// the client; all mutation goes through the conversation state machine.
type Session struct {
	ID         string       `json:"id"`
	Phase      Phase        `json:"phase"`
	Selections Selections   `json:"selections"`
	History    []TurnRecord `json:"history"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// NewSession creates a session in the greeting phase.
func NewSession(id string) *Session {
	now := time.Now()
	return &Session{
		ID:        id,
		Phase:     PhaseGreeting,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// RecordTurn appends a turn to the history, tagged with the phase the session
// was in when the turn arrived.
func (s *Session) RecordTurn(text string) {
	s.History = append(s.History, TurnRecord{
		Text:  text,
		Phase: s.Phase,
		At:    time.Now(),
	})
	s.UpdatedAt = time.Now()
}

// Reset returns the session to the greeting phase and clears all selections.
// History is preserved for diagnostics.
func (s *Session) Reset() {
	s.Phase = PhaseGreeting
	s.Selections = Selections{}
	s.UpdatedAt = time.Now()
}

package conversation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/prepcoach/prepcoach/internal/domain"
	"github.com/prepcoach/prepcoach/internal/store"
	"github.com/prepcoach/prepcoach/internal/task"
)

// ErrSessionNotFound is returned when a session ID is unknown.
var ErrSessionNotFound = errors.New("session not found")

// PlanStarter launches and controls plan-generation tasks. Implemented by the
// planner runner; faked in tests.
type PlanStarter interface {
	// Start creates and launches a task for the session's selections.
	// When the session already has a non-terminal task it returns that
	// task's ID together with task.ErrDuplicateActiveTask.
	Start(ctx context.Context, sess *domain.Session, cb *domain.Callback) (string, error)

	// Await blocks until the task reaches a terminal business status and
	// returns its snapshot.
	Await(ctx context.Context, taskID string) (*domain.Task, error)

	// Active returns the ID of the session's non-terminal task, if any.
	Active(sessionID string) (string, bool)

	// CancelForSession cancels the session's non-terminal task, if any.
	CancelForSession(ctx context.Context, sessionID string)
}

// TurnOptions carries the out-of-band parts of an inbound turn: the explicit
// reset signal, an optional callback registration for asynchronous delivery,
// and optional free-form hints.
type TurnOptions struct {
	Reset      bool
	Callback   *domain.Callback
	TargetRole string
	Companies  []string
}

// TurnResult is what one processed turn returns to the transport layer.
type TurnResult struct {
	Phase      domain.Phase      `json:"phase"`
	Prompt     string            `json:"prompt,omitempty"`
	Selections domain.Selections `json:"selections"`

	// TaskID is set once generation has been started for the session.
	TaskID string `json:"task_id,omitempty"`

	// Plan and FailureReason are only set in synchronous mode, where the
	// turn blocks until generation finishes.
	Plan          string `json:"plan,omitempty"`
	FailureReason string `json:"failure_reason,omitempty"`
}

type sessionEntry struct {
	mu   sync.Mutex
	sess *domain.Session
}

// Manager owns the session map and is the single entry point for inbound
// turns. Turns for the same session are serialized on a per-session mutex;
// different sessions proceed concurrently.
type Manager struct {
	mu      sync.Mutex
	entries map[string]*sessionEntry

	extractor *Extractor
	machine   *Machine
	planner   PlanStarter
	repo      store.Repository

	asyncEnabled bool
}

// NewManager creates a conversation manager. repo may be nil to disable
// persistence (used by tests).
func NewManager(extractor *Extractor, planner PlanStarter, repo store.Repository, asyncEnabled bool) *Manager {
	return &Manager{
		entries:      make(map[string]*sessionEntry),
		extractor:    extractor,
		machine:      NewMachine(),
		planner:      planner,
		repo:         repo,
		asyncEnabled: asyncEnabled,
	}
}

// entry returns the session entry, creating it (or restoring it from the
// store) on first use.
func (m *Manager) entry(ctx context.Context, sessionID string) *sessionEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e, ok := m.entries[sessionID]; ok {
		return e
	}

	sess := m.restore(ctx, sessionID)
	if sess == nil {
		sess = domain.NewSession(sessionID)
	}
	e := &sessionEntry{sess: sess}
	m.entries[sessionID] = e
	return e
}

func (m *Manager) restore(ctx context.Context, sessionID string) *domain.Session {
	if m.repo == nil {
		return nil
	}
	sess, err := m.repo.GetSession(ctx, sessionID)
	if err != nil {
		slog.Warn("failed to restore session from store", "session_id", sessionID, "error", err)
		return nil
	}
	return sess
}

// HandleTurn processes one inbound turn for a session and returns the phase,
// the next prompt (if any) and a snapshot of the selections. Once the session
// reaches the generating phase it either returns the task ID immediately
// (asynchronous mode) or blocks until the plan is finished (synchronous
// mode).
func (m *Manager) HandleTurn(ctx context.Context, sessionID, text string, opts TurnOptions) (*TurnResult, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session id must not be empty")
	}

	e := m.entry(ctx, sessionID)
	e.mu.Lock()
	defer e.mu.Unlock()
	sess := e.sess

	if opts.Reset {
		m.planner.CancelForSession(ctx, sessionID)
		sess.Reset()
		slog.Info("session reset", "session_id", sessionID)
		if text == "" {
			m.persist(ctx, sess)
			return &TurnResult{
				Phase:      sess.Phase,
				Prompt:     promptFor(sess.Phase, sess.Selections),
				Selections: sess.Selections.Clone(),
			}, nil
		}
	}

	sess.RecordTurn(text)
	if opts.TargetRole != "" {
		sess.Selections.TargetRole = opts.TargetRole
	}
	if len(opts.Companies) > 0 {
		sess.Selections.Companies = append([]string(nil), opts.Companies...)
	}

	prevPhase := sess.Phase
	up := m.extractor.Extract(ctx, sess.Phase, text)
	res := m.machine.Advance(sess, up)

	result := &TurnResult{
		Phase:      res.Phase,
		Prompt:     res.Prompt,
		Selections: res.Selections,
	}

	if res.Phase == domain.PhaseGenerating && prevPhase != domain.PhaseGenerating {
		if err := m.startGeneration(ctx, sess, opts.Callback, result); err != nil {
			return nil, err
		}
	} else if res.Phase == domain.PhaseGenerating {
		// Duplicate inbound event while generating; report the existing
		// task instead of spawning a second one.
		if id, ok := m.planner.Active(sessionID); ok {
			result.TaskID = id
		}
	}

	m.persist(ctx, sess)
	return result, nil
}

// startGeneration launches the plan task for a session that just entered the
// generating phase. In synchronous mode it waits for the terminal status and
// folds the result into the turn response.
func (m *Manager) startGeneration(ctx context.Context, sess *domain.Session, cb *domain.Callback, result *TurnResult) error {
	taskID, err := m.planner.Start(ctx, sess, cb)
	if errors.Is(err, task.ErrDuplicateActiveTask) {
		result.TaskID = taskID
		return nil
	}
	if err != nil {
		return fmt.Errorf("start plan generation: %w", err)
	}
	result.TaskID = taskID
	slog.Info("plan generation started", "session_id", sess.ID, "task_id", taskID)

	if m.asyncEnabled {
		return nil
	}

	// Synchronous mode: block the turn until generation resolves.
	t, err := m.planner.Await(ctx, taskID)
	if err != nil {
		return fmt.Errorf("await plan generation: %w", err)
	}
	switch t.Status {
	case domain.TaskCompleted:
		sess.Phase = domain.PhaseDone
		result.Plan = t.Result
	case domain.TaskFailed:
		sess.Phase = domain.PhaseDone
		result.FailureReason = t.FailureReason
	}
	result.Phase = sess.Phase
	result.Prompt = promptFor(sess.Phase, sess.Selections)
	return nil
}

// FinishGeneration moves a session out of the generating phase once its task
// reached a terminal business status. Called by the planner runner; a session
// that was reset meanwhile is left alone.
func (m *Manager) FinishGeneration(sessionID string, status domain.TaskStatus) {
	m.mu.Lock()
	e, ok := m.entries[sessionID]
	m.mu.Unlock()
	if !ok {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.sess.Phase != domain.PhaseGenerating {
		return
	}
	switch status {
	case domain.TaskCompleted, domain.TaskFailed:
		e.sess.Phase = domain.PhaseDone
		m.persist(context.Background(), e.sess)
	}
}

// Get returns a snapshot of the session, or ErrSessionNotFound.
func (m *Manager) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	m.mu.Lock()
	e, ok := m.entries[sessionID]
	m.mu.Unlock()
	if !ok {
		sess := m.restore(ctx, sessionID)
		if sess == nil {
			return nil, ErrSessionNotFound
		}
		return sess, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return cloneSession(e.sess), nil
}

func (m *Manager) persist(ctx context.Context, sess *domain.Session) {
	if m.repo == nil {
		return
	}
	if err := m.repo.SaveSession(ctx, sess); err != nil {
		slog.Warn("failed to persist session", "session_id", sess.ID, "error", err)
	}
}

func cloneSession(sess *domain.Session) *domain.Session {
	out := *sess
	out.Selections = sess.Selections.Clone()
	out.History = append([]domain.TurnRecord(nil), sess.History...)
	return &out
}

package task

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/prepcoach/prepcoach/internal/domain"
	"github.com/prepcoach/prepcoach/internal/store"
)

// TerminalPayload carries the data recorded on a terminal transition. Result
// and FailureReason are mutually exclusive.
type TerminalPayload struct {
	Result        string
	FailureReason string
}

// entry pairs a task with its own mutex so that operations on one task are
// mutually exclusive while independent tasks proceed concurrently.
type entry struct {
	mu       sync.Mutex
	t        *domain.Task
	watchers []chan *domain.Task
}

// Registry is the owner of all task records. Status changes go through
// Transition, which enforces the legal lifecycle graph with compare-and-set
// semantics per task.
type Registry struct {
	mu        sync.Mutex
	entries   map[string]*entry
	bySession map[string]string // session ID -> non-terminal task ID

	repo store.Repository // write-through persistence; may be nil
}

// NewRegistry creates an empty registry. repo may be nil to disable
// persistence.
func NewRegistry(repo store.Repository) *Registry {
	return &Registry{
		entries:   make(map[string]*entry),
		bySession: make(map[string]string),
		repo:      repo,
	}
}

// Restore loads persisted tasks back into the registry after a restart.
// Tasks that were still in flight are failed, since their worker goroutines
// died with the old process. It returns the IDs of finished tasks whose
// callback delivery never settled, so the caller can re-dispatch them.
func (r *Registry) Restore(ctx context.Context) ([]string, error) {
	if r.repo == nil {
		return nil, nil
	}
	tasks, err := r.repo.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list persisted tasks: %w", err)
	}

	var redeliver []string
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range tasks {
		if !t.Status.Terminal() {
			t.Status = domain.TaskFailed
			t.FailureReason = "interrupted by server restart"
			now := time.Now()
			t.TerminalAt = &now
			t.UpdatedAt = now
			t.Attempts = 0
			if t.Callback == nil {
				t.DeliveryStatus = domain.DeliveryNone
			}
			r.persist(ctx, t)
		}
		r.entries[t.ID] = &entry{t: t}
		if t.Callback != nil && !t.DeliveryStatus.Settled() {
			redeliver = append(redeliver, t.ID)
		}
	}
	slog.Info("task registry restored", "tasks", len(tasks), "redeliver", len(redeliver))
	return redeliver, nil
}

// Create allocates a task in the pending state for the session. The callback,
// if any, is captured now and immutable afterwards. Returns
// ErrDuplicateActiveTask together with the existing task's ID when the
// session already has a non-terminal task.
func (r *Registry) Create(ctx context.Context, sessionID string, cb *domain.Callback) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.bySession[sessionID]; ok {
		return existing, fmt.Errorf("session %s: %w", sessionID, ErrDuplicateActiveTask)
	}

	now := time.Now()
	t := &domain.Task{
		ID:             uuid.NewString(),
		SessionID:      sessionID,
		Status:         domain.TaskPending,
		DeliveryStatus: domain.DeliveryNone,
		Callback:       cb,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if cb != nil {
		t.DeliveryStatus = domain.DeliveryPending
	}

	r.entries[t.ID] = &entry{t: t}
	r.bySession[sessionID] = t.ID
	r.persist(ctx, t)

	slog.Info("task created", "task_id", t.ID, "session_id", sessionID, "callback", cb != nil)
	return t.ID, nil
}

// Transition moves a task to a new business status. Legal edges are
// Pending->Running, Running->{Completed,Failed} and any non-terminal
// state->Cancelled; everything else fails with ErrInvalidTransition. On a
// terminal transition the payload is recorded exactly once and the delivery
// attempt counter is reset.
func (r *Registry) Transition(ctx context.Context, taskID string, status domain.TaskStatus, payload TerminalPayload) error {
	e, err := r.lookup(taskID)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	t := e.t

	if !legalEdge(t.Status, status) {
		return fmt.Errorf("task %s: %s -> %s: %w", taskID, t.Status, status, ErrInvalidTransition)
	}

	t.Status = status
	t.UpdatedAt = time.Now()
	if status.Terminal() {
		now := time.Now()
		t.TerminalAt = &now
		t.Attempts = 0
		switch status {
		case domain.TaskCompleted:
			t.Result = payload.Result
		case domain.TaskFailed:
			t.FailureReason = payload.FailureReason
		case domain.TaskCancelled:
			// A cancelled task needs no delivery.
			if t.DeliveryStatus == domain.DeliveryPending {
				t.DeliveryStatus = domain.DeliveryNone
			}
		}
		r.clearActive(t.SessionID, taskID)
	}

	r.persist(ctx, t)
	r.notifyLocked(e)
	slog.Info("task transition", "task_id", taskID, "status", status)
	return nil
}

// legalEdge reports whether from -> to is in the lifecycle graph.
func legalEdge(from, to domain.TaskStatus) bool {
	switch {
	case from == domain.TaskPending && to == domain.TaskRunning:
		return true
	case from == domain.TaskRunning && (to == domain.TaskCompleted || to == domain.TaskFailed):
		return true
	case !from.Terminal() && to == domain.TaskCancelled:
		return true
	}
	return false
}

// Get returns a read-only snapshot of the task.
func (r *Registry) Get(taskID string) (*domain.Task, error) {
	e, err := r.lookup(taskID)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.t.Clone(), nil
}

// Active returns the ID of the session's non-terminal task, if any.
func (r *Registry) Active(sessionID string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.bySession[sessionID]
	return id, ok
}

// Cancel moves a non-terminal task to the cancelled state. Cancelling an
// already-terminal task fails with ErrInvalidTransition.
func (r *Registry) Cancel(ctx context.Context, taskID string) error {
	return r.Transition(ctx, taskID, domain.TaskCancelled, TerminalPayload{})
}

// IncrementAttempts marks the start of one delivery attempt and returns the
// new attempt number.
func (r *Registry) IncrementAttempts(ctx context.Context, taskID string) (int, error) {
	e, err := r.lookup(taskID)
	if err != nil {
		return 0, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.t.Attempts++
	e.t.UpdatedAt = time.Now()
	r.persist(ctx, e.t)
	r.notifyLocked(e)
	return e.t.Attempts, nil
}

// SetDeliveryStatus updates the delivery-side status of a task. It never
// touches the business status: a task whose delivery was abandoned keeps
// exposing its Completed or Failed result to polling clients.
func (r *Registry) SetDeliveryStatus(ctx context.Context, taskID string, ds domain.DeliveryStatus) error {
	e, err := r.lookup(taskID)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.t.DeliveryStatus = ds
	e.t.UpdatedAt = time.Now()
	r.persist(ctx, e.t)
	r.notifyLocked(e)
	return nil
}

// Evict removes a terminal task from the registry and the store. Evicting a
// non-terminal task is a programming error and is rejected.
func (r *Registry) Evict(ctx context.Context, taskID string) error {
	e, err := r.lookup(taskID)
	if err != nil {
		return err
	}

	e.mu.Lock()
	if !e.t.Status.Terminal() {
		e.mu.Unlock()
		return fmt.Errorf("task %s: evict non-terminal task: %w", taskID, ErrInvalidTransition)
	}
	sessionID := e.t.SessionID
	e.mu.Unlock()

	r.mu.Lock()
	delete(r.entries, taskID)
	r.mu.Unlock()
	r.clearActive(sessionID, taskID)

	if r.repo != nil {
		if err := r.repo.DeleteTask(ctx, taskID); err != nil {
			slog.Warn("failed to delete task from store", "task_id", taskID, "error", err)
		}
	}
	slog.Info("task evicted", "task_id", taskID)
	return nil
}

// Watch subscribes to snapshots of a task. The channel carries the latest
// state; intermediate states may be coalesced under a slow consumer. The
// returned cancel function must be called to release the watcher.
func (r *Registry) Watch(taskID string) (<-chan *domain.Task, func(), error) {
	e, err := r.lookup(taskID)
	if err != nil {
		return nil, nil, err
	}

	ch := make(chan *domain.Task, 1)
	e.mu.Lock()
	e.watchers = append(e.watchers, ch)
	push(ch, e.t.Clone())
	e.mu.Unlock()

	cancel := func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		for i, w := range e.watchers {
			if w == ch {
				e.watchers = append(e.watchers[:i], e.watchers[i+1:]...)
				break
			}
		}
	}
	return ch, cancel, nil
}

// Snapshot returns copies of all tasks currently held by the registry.
func (r *Registry) Snapshot() []*domain.Task {
	r.mu.Lock()
	entries := make([]*entry, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, e)
	}
	r.mu.Unlock()

	out := make([]*domain.Task, 0, len(entries))
	for _, e := range entries {
		e.mu.Lock()
		out = append(out, e.t.Clone())
		e.mu.Unlock()
	}
	return out
}

func (r *Registry) lookup(taskID string) (*entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[taskID]
	if !ok {
		return nil, fmt.Errorf("task %s: %w", taskID, ErrNotFound)
	}
	return e, nil
}

// clearActive removes the session's active-task marker if it still points at
// taskID.
func (r *Registry) clearActive(sessionID, taskID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.bySession[sessionID] == taskID {
		delete(r.bySession, sessionID)
	}
}

// notifyLocked pushes the current snapshot to all watchers. Caller holds e.mu.
func (r *Registry) notifyLocked(e *entry) {
	snap := e.t.Clone()
	for _, ch := range e.watchers {
		push(ch, snap)
	}
}

// push delivers the latest snapshot without blocking: a full channel has its
// stale value replaced.
func push(ch chan *domain.Task, snap *domain.Task) {
	for {
		select {
		case ch <- snap:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

func (r *Registry) persist(ctx context.Context, t *domain.Task) {
	if r.repo == nil {
		return
	}
	if err := r.repo.SaveTask(ctx, t.Clone()); err != nil {
		slog.Warn("failed to persist task", "task_id", t.ID, "error", err)
	}
}

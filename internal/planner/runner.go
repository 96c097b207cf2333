package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/prepcoach/prepcoach/internal/domain"
	"github.com/prepcoach/prepcoach/internal/notify"
	"github.com/prepcoach/prepcoach/internal/search"
	"github.com/prepcoach/prepcoach/internal/task"
)

// Runner launches plan generation in the background and drives the task
// lifecycle: Pending -> Running -> Completed/Failed, exactly once per task.
// It does not know how plans are computed; that is the generator's business.
type Runner struct {
	base context.Context //nolint:containedctx // process-lifetime context for background work

	reg        *task.Registry
	gen        Generator
	searcher   search.Provider // nil when web search is disabled
	dispatcher *notify.Dispatcher

	// OnFinish is called after a task reaches a terminal business status.
	// Set by the conversation manager wiring; may be nil.
	OnFinish func(sessionID string, status domain.TaskStatus)

	processingDelay time.Duration
}

// NewRunner creates a runner. base is the process-lifetime context that
// bounds all background generation work.
func NewRunner(base context.Context, reg *task.Registry, gen Generator, searcher search.Provider, dispatcher *notify.Dispatcher, processingDelay time.Duration) *Runner {
	return &Runner{
		base:            base,
		reg:             reg,
		gen:             gen,
		searcher:        searcher,
		dispatcher:      dispatcher,
		processingDelay: processingDelay,
	}
}

// Start creates a task for the session's finalized selections and launches
// generation without blocking. When the session already has a non-terminal
// task it returns that task's ID with task.ErrDuplicateActiveTask.
func (r *Runner) Start(ctx context.Context, sess *domain.Session, cb *domain.Callback) (string, error) {
	taskID, err := r.reg.Create(ctx, sess.ID, cb)
	if err != nil {
		return taskID, err
	}

	sel := sess.Selections.Clone()
	go r.run(taskID, sess.ID, sel)
	return taskID, nil
}

// Active returns the ID of the session's non-terminal task, if any.
func (r *Runner) Active(sessionID string) (string, bool) {
	return r.reg.Active(sessionID)
}

// CancelForSession cancels the session's non-terminal task, if any. An
// in-flight delivery attempt is allowed to complete; no further work is
// scheduled.
func (r *Runner) CancelForSession(ctx context.Context, sessionID string) {
	taskID, ok := r.reg.Active(sessionID)
	if !ok {
		return
	}
	if err := r.reg.Cancel(ctx, taskID); err != nil {
		slog.Warn("failed to cancel task for session", "session_id", sessionID, "task_id", taskID, "error", err)
		return
	}
	slog.Info("task cancelled on session reset", "session_id", sessionID, "task_id", taskID)
}

// Await blocks until the task reaches a terminal business status.
func (r *Runner) Await(ctx context.Context, taskID string) (*domain.Task, error) {
	ch, cancel, err := r.reg.Watch(taskID)
	if err != nil {
		return nil, err
	}
	defer cancel()

	for {
		select {
		case t := <-ch:
			if t.Status.Terminal() {
				return t, nil
			}
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// run drives one task from pending to a terminal status.
func (r *Runner) run(taskID, sessionID string, sel domain.Selections) {
	ctx := r.base

	if r.processingDelay > 0 {
		select {
		case <-time.After(r.processingDelay):
		case <-ctx.Done():
			return
		}
	}

	if err := r.reg.Transition(ctx, taskID, domain.TaskRunning, task.TerminalPayload{}); err != nil {
		// Cancelled before it started; nothing more to do.
		if errors.Is(err, task.ErrInvalidTransition) {
			slog.Info("generation skipped, task no longer pending", "task_id", taskID)
			return
		}
		slog.Error("failed to mark task running", "task_id", taskID, "error", err)
		return
	}

	data := research(ctx, r.searcher, sel)

	plan, genErr := r.gen.GeneratePlan(ctx, sel, data)

	var status domain.TaskStatus
	var payload task.TerminalPayload
	if genErr != nil {
		status = domain.TaskFailed
		payload.FailureReason = fmt.Sprintf("plan generation failed: %v", genErr)
		slog.Error("plan generation failed", "task_id", taskID, "error", genErr)
	} else {
		status = domain.TaskCompleted
		payload.Result = plan
	}

	if err := r.reg.Transition(ctx, taskID, status, payload); err != nil {
		// The task was cancelled while generation was in flight; the
		// result is dropped, never delivered.
		if errors.Is(err, task.ErrInvalidTransition) {
			slog.Info("generation result discarded, task no longer running", "task_id", taskID)
			return
		}
		slog.Error("failed to record generation result", "task_id", taskID, "error", err)
		return
	}

	if r.OnFinish != nil {
		r.OnFinish(sessionID, status)
	}

	t, err := r.reg.Get(taskID)
	if err == nil && t.Callback != nil && r.dispatcher != nil {
		r.dispatcher.Dispatch(ctx, taskID)
	}
}

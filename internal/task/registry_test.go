package task

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prepcoach/prepcoach/internal/domain"
)

// fakeRepo is an in-memory store.Repository for registry tests.
type fakeRepo struct {
	mu       sync.Mutex
	tasks    map[string]*domain.Task
	sessions map[string]*domain.Session
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		tasks:    make(map[string]*domain.Task),
		sessions: make(map[string]*domain.Session),
	}
}

func (f *fakeRepo) GetSession(_ context.Context, id string) (*domain.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sessions[id], nil
}

func (f *fakeRepo) SaveSession(_ context.Context, sess *domain.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[sess.ID] = sess
	return nil
}

func (f *fakeRepo) DeleteSession(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sessions, id)
	return nil
}

func (f *fakeRepo) GetTask(_ context.Context, id string) (*domain.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tasks[id], nil
}

func (f *fakeRepo) SaveTask(_ context.Context, t *domain.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks[t.ID] = t
	return nil
}

func (f *fakeRepo) DeleteTask(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.tasks, id)
	return nil
}

func (f *fakeRepo) ListTasks(_ context.Context) ([]*domain.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*domain.Task, 0, len(f.tasks))
	for _, t := range f.tasks {
		out = append(out, t.Clone())
	}
	return out, nil
}

func (f *fakeRepo) Ping(context.Context) error { return nil }
func (f *fakeRepo) Close() error               { return nil }

func TestCreateAndGet(t *testing.T) {
	ctx := context.Background()
	reg := NewRegistry(nil)

	id, err := reg.Create(ctx, "s1", nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	task, err := reg.Get(id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if task.Status != domain.TaskPending {
		t.Errorf("Expected pending, got %q", task.Status)
	}
	if task.DeliveryStatus != domain.DeliveryNone {
		t.Errorf("Expected delivery none without callback, got %q", task.DeliveryStatus)
	}
}

func TestCreateWithCallbackSetsDeliveryPending(t *testing.T) {
	reg := NewRegistry(nil)

	id, err := reg.Create(context.Background(), "s1", &domain.Callback{URL: "https://example.com/hook"})
	if err != nil {
		t.Fatal(err)
	}
	task, _ := reg.Get(id)
	if task.DeliveryStatus != domain.DeliveryPending {
		t.Errorf("Expected delivery pending, got %q", task.DeliveryStatus)
	}
}

func TestCreateDuplicateReturnsExistingID(t *testing.T) {
	ctx := context.Background()
	reg := NewRegistry(nil)

	first, err := reg.Create(ctx, "s1", nil)
	if err != nil {
		t.Fatal(err)
	}

	second, err := reg.Create(ctx, "s1", nil)
	if !errors.Is(err, ErrDuplicateActiveTask) {
		t.Fatalf("Expected ErrDuplicateActiveTask, got %v", err)
	}
	if second != first {
		t.Errorf("Expected the existing task ID %q, got %q", first, second)
	}

	// Once the first task is terminal a new one may be created.
	if err := reg.Cancel(ctx, first); err != nil {
		t.Fatal(err)
	}
	third, err := reg.Create(ctx, "s1", nil)
	if err != nil {
		t.Fatalf("Create after terminal predecessor failed: %v", err)
	}
	if third == first {
		t.Error("Expected a fresh task ID")
	}
}

func TestTransitionLifecycle(t *testing.T) {
	ctx := context.Background()
	reg := NewRegistry(nil)
	id, _ := reg.Create(ctx, "s1", nil)

	if err := reg.Transition(ctx, id, domain.TaskRunning, TerminalPayload{}); err != nil {
		t.Fatalf("pending -> running failed: %v", err)
	}
	if err := reg.Transition(ctx, id, domain.TaskCompleted, TerminalPayload{Result: "plan"}); err != nil {
		t.Fatalf("running -> completed failed: %v", err)
	}

	task, _ := reg.Get(id)
	if task.Result != "plan" {
		t.Errorf("Expected result recorded, got %q", task.Result)
	}
	if task.TerminalAt == nil {
		t.Error("Expected TerminalAt set on terminal transition")
	}
	if task.Attempts != 0 {
		t.Errorf("Expected attempts reset on terminal transition, got %d", task.Attempts)
	}
}

func TestIllegalTransitions(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name string
		from domain.TaskStatus
		to   domain.TaskStatus
	}{
		{"pending to completed", domain.TaskPending, domain.TaskCompleted},
		{"pending to failed", domain.TaskPending, domain.TaskFailed},
		{"running to pending", domain.TaskRunning, domain.TaskPending},
		{"completed to running", domain.TaskCompleted, domain.TaskRunning},
		{"completed to cancelled", domain.TaskCompleted, domain.TaskCancelled},
		{"failed to cancelled", domain.TaskFailed, domain.TaskCancelled},
		{"cancelled to running", domain.TaskCancelled, domain.TaskRunning},
		{"cancelled to completed", domain.TaskCancelled, domain.TaskCompleted},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reg := NewRegistry(nil)
			id, _ := reg.Create(ctx, "s1", nil)
			forceStatus(t, reg, id, tc.from)

			err := reg.Transition(ctx, id, tc.to, TerminalPayload{})
			if !errors.Is(err, ErrInvalidTransition) {
				t.Errorf("Expected ErrInvalidTransition for %s -> %s, got %v", tc.from, tc.to, err)
			}
		})
	}
}

// forceStatus walks a task along legal edges to the wanted status.
func forceStatus(t *testing.T, reg *Registry, id string, status domain.TaskStatus) {
	t.Helper()
	ctx := context.Background()
	switch status {
	case domain.TaskPending:
	case domain.TaskRunning:
		mustTransition(t, reg, id, domain.TaskRunning)
	case domain.TaskCompleted:
		mustTransition(t, reg, id, domain.TaskRunning)
		mustTransition(t, reg, id, domain.TaskCompleted)
	case domain.TaskFailed:
		mustTransition(t, reg, id, domain.TaskRunning)
		mustTransition(t, reg, id, domain.TaskFailed)
	case domain.TaskCancelled:
		if err := reg.Cancel(ctx, id); err != nil {
			t.Fatal(err)
		}
	}
}

func mustTransition(t *testing.T, reg *Registry, id string, status domain.TaskStatus) {
	t.Helper()
	if err := reg.Transition(context.Background(), id, status, TerminalPayload{}); err != nil {
		t.Fatal(err)
	}
}

func TestCancelFromAnyNonTerminalState(t *testing.T) {
	ctx := context.Background()

	for _, from := range []domain.TaskStatus{domain.TaskPending, domain.TaskRunning} {
		reg := NewRegistry(nil)
		id, _ := reg.Create(ctx, "s1", &domain.Callback{URL: "https://example.com/hook"})
		forceStatus(t, reg, id, from)

		if err := reg.Cancel(ctx, id); err != nil {
			t.Fatalf("Cancel from %s failed: %v", from, err)
		}
		task, _ := reg.Get(id)
		if task.Status != domain.TaskCancelled {
			t.Errorf("Expected cancelled, got %q", task.Status)
		}
		if task.DeliveryStatus != domain.DeliveryNone {
			t.Errorf("Cancelled task needs no delivery, got %q", task.DeliveryStatus)
		}
	}
}

func TestGetUnknownTask(t *testing.T) {
	reg := NewRegistry(nil)
	if _, err := reg.Get("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestActiveClearedOnTerminal(t *testing.T) {
	ctx := context.Background()
	reg := NewRegistry(nil)
	id, _ := reg.Create(ctx, "s1", nil)

	if got, ok := reg.Active("s1"); !ok || got != id {
		t.Fatalf("Expected active task %q, got %q (%v)", id, got, ok)
	}

	mustTransition(t, reg, id, domain.TaskRunning)
	mustTransition(t, reg, id, domain.TaskFailed)

	if _, ok := reg.Active("s1"); ok {
		t.Error("Expected no active task after terminal transition")
	}
}

func TestWatchObservesTerminalState(t *testing.T) {
	ctx := context.Background()
	reg := NewRegistry(nil)
	id, _ := reg.Create(ctx, "s1", nil)

	ch, cancel, err := reg.Watch(id)
	if err != nil {
		t.Fatal(err)
	}
	defer cancel()

	mustTransition(t, reg, id, domain.TaskRunning)
	mustTransition(t, reg, id, domain.TaskCompleted)

	deadline := time.After(time.Second)
	for {
		select {
		case snap := <-ch:
			if snap.Status.Terminal() {
				if snap.Status != domain.TaskCompleted {
					t.Errorf("Expected completed, got %q", snap.Status)
				}
				return
			}
		case <-deadline:
			t.Fatal("Watcher never observed the terminal state")
		}
	}
}

func TestEvictRejectsNonTerminal(t *testing.T) {
	ctx := context.Background()
	reg := NewRegistry(nil)
	id, _ := reg.Create(ctx, "s1", nil)

	if err := reg.Evict(ctx, id); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Expected ErrInvalidTransition for non-terminal evict, got %v", err)
	}

	mustTransition(t, reg, id, domain.TaskRunning)
	mustTransition(t, reg, id, domain.TaskCompleted)
	if err := reg.Evict(ctx, id); err != nil {
		t.Fatalf("Evict of terminal task failed: %v", err)
	}
	if _, err := reg.Get(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound after evict, got %v", err)
	}
}

func TestRestoreFailsInterruptedTasks(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()

	// Simulate a previous process: one running task, one delivered task and
	// one completed task whose callback never settled.
	seed := NewRegistry(repo)
	running, _ := seed.Create(ctx, "s1", nil)
	mustTransition(t, seed, running, domain.TaskRunning)

	delivered, _ := seed.Create(ctx, "s2", &domain.Callback{URL: "https://example.com/hook"})
	mustTransition(t, seed, delivered, domain.TaskRunning)
	mustTransition(t, seed, delivered, domain.TaskCompleted)
	if err := seed.SetDeliveryStatus(ctx, delivered, domain.DeliveryDelivered); err != nil {
		t.Fatal(err)
	}

	undelivered, _ := seed.Create(ctx, "s3", &domain.Callback{URL: "https://example.com/hook"})
	mustTransition(t, seed, undelivered, domain.TaskRunning)
	mustTransition(t, seed, undelivered, domain.TaskCompleted)

	reg := NewRegistry(repo)
	redeliver, err := reg.Restore(ctx)
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	task, err := reg.Get(running)
	if err != nil {
		t.Fatal(err)
	}
	if task.Status != domain.TaskFailed {
		t.Errorf("Expected interrupted task failed, got %q", task.Status)
	}

	if len(redeliver) != 1 || redeliver[0] != undelivered {
		t.Errorf("Expected only the undelivered task scheduled for redelivery, got %v", redeliver)
	}
}

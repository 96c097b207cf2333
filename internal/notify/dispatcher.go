// Package notify delivers task completion callbacks with retry, backoff and
// timeout discipline.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/prepcoach/prepcoach/internal/domain"
	"github.com/prepcoach/prepcoach/internal/task"
)

const userAgent = "prepcoach-agent/1.0"

// Config holds delivery policy. All values are externally configurable.
type Config struct {
	// MaxAttempts is the delivery retry budget per task.
	MaxAttempts int

	// AttemptTimeout bounds each individual delivery attempt.
	AttemptTimeout time.Duration

	// BackoffBase is the delay before the second attempt; it doubles for
	// every further attempt.
	BackoffBase time.Duration

	// AuthToken is the fallback bearer credential used when a callback
	// registration carries no token of its own.
	AuthToken string

	// BaseAPIURL replaces the BASE_API_URL placeholder in callback URLs.
	BaseAPIURL string
}

// Payload is the JSON body posted to the callback endpoint.
type Payload struct {
	TaskID      string            `json:"task_id"`
	SessionID   string            `json:"session_id"`
	Status      domain.TaskStatus `json:"status"`
	Result      string            `json:"result,omitempty"`
	ErrorReason string            `json:"error_reason,omitempty"`
	Attempt     int               `json:"attempt"`
	Timestamp   time.Time         `json:"timestamp"`
}

// Dispatcher delivers completion (or failure) notifications to registered
// callback endpoints. Deliveries for independent tasks run concurrently;
// attempts for the same task are strictly sequential.
type Dispatcher struct {
	reg    *task.Registry
	client *http.Client
	cfg    Config

	mu       sync.Mutex
	inFlight map[string]struct{}
	wg       sync.WaitGroup
}

// NewDispatcher creates a dispatcher. client may be nil, in which case a
// default HTTP client is used; the per-attempt timeout is applied through the
// request context either way.
func NewDispatcher(reg *task.Registry, client *http.Client, cfg Config) *Dispatcher {
	if client == nil {
		client = &http.Client{}
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	if cfg.BackoffBase <= 0 {
		cfg.BackoffBase = time.Second
	}
	return &Dispatcher{
		reg:      reg,
		client:   client,
		cfg:      cfg,
		inFlight: make(map[string]struct{}),
	}
}

// Dispatch starts the delivery loop for a task that reached a terminal
// business status. It returns immediately; a loop already in flight for the
// same task is not duplicated.
func (d *Dispatcher) Dispatch(ctx context.Context, taskID string) {
	d.mu.Lock()
	if _, ok := d.inFlight[taskID]; ok {
		d.mu.Unlock()
		return
	}
	d.inFlight[taskID] = struct{}{}
	d.mu.Unlock()

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() {
			d.mu.Lock()
			delete(d.inFlight, taskID)
			d.mu.Unlock()
		}()
		d.deliver(ctx, taskID)
	}()
}

// Wait blocks until all in-flight delivery loops have finished. Used during
// shutdown and by tests.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) deliver(ctx context.Context, taskID string) {
	t, err := d.reg.Get(taskID)
	if err != nil {
		slog.Error("dispatch for unknown task", "task_id", taskID, "error", err)
		return
	}
	if t.Callback == nil || t.DeliveryStatus.Settled() {
		return
	}

	callbackURL := resolveCallbackURL(t.Callback.URL, d.cfg.BaseAPIURL)
	if !validCallbackURL(callbackURL) {
		slog.Error("invalid callback URL, abandoning delivery", "task_id", taskID, "url", callbackURL)
		d.setDelivery(ctx, taskID, domain.DeliveryAbandoned)
		return
	}

	d.setDelivery(ctx, taskID, domain.DeliveryDelivering)

	for {
		// A cancelled task gets no further attempts; the one in flight
		// (if any) was allowed to finish before we got here.
		current, err := d.reg.Get(taskID)
		if err != nil || current.Status == domain.TaskCancelled {
			return
		}

		attempt, err := d.reg.IncrementAttempts(ctx, taskID)
		if err != nil {
			slog.Error("failed to record delivery attempt", "task_id", taskID, "error", err)
			return
		}

		postErr := d.post(ctx, current, callbackURL, attempt)
		if postErr == nil {
			d.setDelivery(ctx, taskID, domain.DeliveryDelivered)
			slog.Info("callback delivered", "task_id", taskID, "url", callbackURL, "attempt", attempt)
			return
		}
		slog.Warn("callback delivery attempt failed",
			"task_id", taskID,
			"url", callbackURL,
			"attempt", attempt,
			"max_attempts", d.cfg.MaxAttempts,
			"error", postErr)

		if attempt >= d.cfg.MaxAttempts {
			d.setDelivery(ctx, taskID, domain.DeliveryAbandoned)
			slog.Error("callback delivery abandoned after exhausting retries",
				"task_id", taskID, "attempts", attempt)
			return
		}

		// Exponential backoff: base, 2*base, 4*base, ...
		delay := d.cfg.BackoffBase * time.Duration(1<<(attempt-1))
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return
		}
	}
}

// post performs one delivery attempt, bounded by the per-attempt timeout.
// Only a 2xx response within the timeout counts as delivered.
func (d *Dispatcher) post(ctx context.Context, t *domain.Task, callbackURL string, attempt int) error {
	payload := Payload{
		TaskID:      t.ID,
		SessionID:   t.SessionID,
		Status:      t.Status,
		Result:      t.Result,
		ErrorReason: t.FailureReason,
		Attempt:     attempt,
		Timestamp:   time.Now().UTC(),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	attemptCtx := ctx
	if d.cfg.AttemptTimeout > 0 {
		var cancel context.CancelFunc
		attemptCtx, cancel = context.WithTimeout(ctx, d.cfg.AttemptTimeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodPost, callbackURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	bearer := t.Callback.Token
	if bearer == "" {
		bearer = d.cfg.AuthToken
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	if t.Callback.Token != "" {
		req.Header.Set("X-Webhook-Token", t.Callback.Token)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("post callback: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("callback returned status %d", resp.StatusCode)
	}
	return nil
}

func (d *Dispatcher) setDelivery(ctx context.Context, taskID string, ds domain.DeliveryStatus) {
	if err := d.reg.SetDeliveryStatus(ctx, taskID, ds); err != nil {
		slog.Warn("failed to update delivery status", "task_id", taskID, "status", ds, "error", err)
	}
}

// resolveCallbackURL replaces the BASE_API_URL placeholder with the
// configured base URL (or the BASE_API_URL environment variable when the
// config leaves it empty).
func resolveCallbackURL(callbackURL, baseAPIURL string) string {
	if !strings.Contains(callbackURL, "BASE_API_URL/") {
		return callbackURL
	}
	if baseAPIURL == "" {
		baseAPIURL = os.Getenv("BASE_API_URL")
	}
	if baseAPIURL == "" {
		slog.Warn("callback URL contains BASE_API_URL placeholder but no base URL is configured")
		return callbackURL
	}
	return strings.Replace(callbackURL, "BASE_API_URL", strings.TrimRight(baseAPIURL, "/"), 1)
}

// validCallbackURL accepts http/https URLs with a hostname.
func validCallbackURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false
	}
	return parsed.Hostname() != ""
}

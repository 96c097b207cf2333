package domain

import (
	"time"
)

// TaskStatus is the business status of an asynchronous plan-generation task.
type TaskStatus string

const (
	TaskPending   TaskStatus = "pending"
	TaskRunning   TaskStatus = "running"
	TaskCompleted TaskStatus = "completed"
	TaskFailed    TaskStatus = "failed"
	TaskCancelled TaskStatus = "cancelled"
)

// Terminal reports whether the status is a terminal business state.
func (s TaskStatus) Terminal() bool {
	switch s {
	case TaskCompleted, TaskFailed, TaskCancelled:
		return true
	}
	return false
}

// DeliveryStatus tracks callback delivery, separate from the business status.
// A task whose delivery was abandoned still exposes its Completed/Failed
// result to polling clients.
type DeliveryStatus string

const (
	DeliveryNone       DeliveryStatus = "none"
	DeliveryPending    DeliveryStatus = "pending"
	DeliveryDelivering DeliveryStatus = "delivering"
	DeliveryDelivered  DeliveryStatus = "delivered"
	DeliveryAbandoned  DeliveryStatus = "abandoned"
)

// Settled reports whether delivery needs no further attempts.
func (d DeliveryStatus) Settled() bool {
	switch d {
	case DeliveryNone, DeliveryDelivered, DeliveryAbandoned:
		return true
	}
	return false
}

// Callback is the delivery target registered at task creation. Immutable
// after creation.
type Callback struct {
	URL   string `json:"url"`
	Token string `json:"token,omitempty"`
}

// Task is one asynchronous plan-generation request. Owned by the task
// registry for its entire life; fields other than Status, DeliveryStatus,
// Result, FailureReason and Attempts are immutable after creation.
type Task struct {
	ID        string `json:"id"`
	SessionID string `json:"session_id"`

	Status         TaskStatus     `json:"status"`
	DeliveryStatus DeliveryStatus `json:"delivery_status"`

	Callback *Callback `json:"callback,omitempty"`

	// Result and FailureReason are mutually exclusive, populated exactly
	// once on the transition into Completed or Failed.
	Result        string `json:"result,omitempty"`
	FailureReason string `json:"failure_reason,omitempty"`

	// Attempts counts callback delivery attempts. Zeroed when the task
	// enters a terminal state, incremented by the dispatcher.
	Attempts int `json:"attempts"`

	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	TerminalAt *time.Time `json:"terminal_at,omitempty"`
}

// Clone returns a deep copy safe to hand out as a snapshot.
func (t *Task) Clone() *Task {
	out := *t
	if t.Callback != nil {
		cb := *t.Callback
		out.Callback = &cb
	}
	if t.TerminalAt != nil {
		at := *t.TerminalAt
		out.TerminalAt = &at
	}
	return &out
}

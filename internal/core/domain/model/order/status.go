package order

import (
	"errors"
	"fmt"
	"strings"

	"tableside/internal/pkg/errs"
)

// ErrInvalidStatus is matched by every InvalidStatusError.
var ErrInvalidStatus = errors.New("invalid order status")

// InvalidStatusError reports a status value outside the recognized pipeline.
// It matches both ErrInvalidStatus and errs.ErrValueIsInvalid.
type InvalidStatusError struct {
	Value string
}

func NewInvalidStatusError(value string) *InvalidStatusError {
	return &InvalidStatusError{Value: value}
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("%s: %q is not a pipeline status", ErrInvalidStatus, e.Value)
}

func (e *InvalidStatusError) Unwrap() []error {
	return []error{ErrInvalidStatus, errs.ErrValueIsInvalid}
}

// Status is the fulfilment state of an order.
//
//	Pending -> Preparing -> Served -> Completed -> Paid
//
// The pipeline is an ordered list used for progress display. Transitions only
// check membership, so staff may move an order backwards to correct mistakes.
// Cancelled sits outside the pipeline and cannot be set through a transition.
type Status int

const (
	Unknown Status = iota
	Pending
	Preparing
	Served
	Completed
	Paid
	Cancelled
)

var statusNames = map[Status]string{
	Unknown:   "unknown",
	Pending:   "pending",
	Preparing: "preparing",
	Served:    "served",
	Completed: "completed",
	Paid:      "paid",
	Cancelled: "cancelled",
}

// Pipeline returns the transitionable statuses in display order.
func Pipeline() []Status {
	return []Status{Pending, Preparing, Served, Completed, Paid}
}

// ParseStatus accepts only the five pipeline names, exactly as spelled by String.
func ParseStatus(raw string) (Status, error) {
	raw = strings.TrimSpace(raw)
	for _, s := range Pipeline() {
		if statusNames[s] == raw {
			return s, nil
		}
	}
	return Unknown, NewInvalidStatusError(raw)
}

// RestoreStatus parses any persisted status name, cancelled included.
func RestoreStatus(raw string) (Status, error) {
	for s, name := range statusNames {
		if s != Unknown && name == raw {
			return s, nil
		}
	}
	return Unknown, NewInvalidStatusError(raw)
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return statusNames[Unknown]
}

// IsPipeline reports whether s may be the target of a transition.
func (s Status) IsPipeline() bool {
	return s.PipelineIndex() >= 0
}

// PipelineIndex is the zero-based progress position, or -1 outside the pipeline.
func (s Status) PipelineIndex() int {
	for i, p := range Pipeline() {
		if p == s {
			return i
		}
	}
	return -1
}

// IsActive is false exactly for paid and cancelled.
func (s Status) IsActive() bool {
	return s != Paid && s != Cancelled
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

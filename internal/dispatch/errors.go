package dispatch

import (
	"errors"
	"fmt"
)

var (
	// ErrQueueClosed is returned when enqueue is attempted after shutdown.
	ErrQueueClosed = errors.New("dispatch: queue closed")
	// ErrQueueFull indicates the chat queue is saturated and the event was dropped.
	ErrQueueFull = errors.New("dispatch: queue full")

	// ErrMessageGone is reported by gateways when the edit target no longer
	// exists or can no longer be edited. The engine falls back to a fresh send.
	ErrMessageGone = errors.New("dispatch: message gone or not editable")

	// ErrPageOutOfRange marks a programming fault: a transition produced a
	// page outside the catalog bounds. The offending event is dropped.
	ErrPageOutOfRange = errors.New("dispatch: page outside catalog bounds")
)

// DeliveryError wraps a gateway failure. The conversation state is left
// unchanged when it is returned, so a platform-side retry of the same
// event reproduces the same intended view.
type DeliveryError struct {
	Op  string
	Err error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("dispatch: %s failed: %v", e.Op, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

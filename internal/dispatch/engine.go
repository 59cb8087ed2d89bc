// Package dispatch runs the navigation engine: it serializes events per
// chat, applies state transitions, performs the resulting render actions
// against the platform gateway, and commits state only once delivery
// succeeded.
package dispatch

import (
	"context"
	"errors"

	"allcitybot/core/logger"
	"allcitybot/internal/menu"
	"allcitybot/internal/navigation"

	"log/slog"
)

// Gateway is the platform delivery collaborator. Implementations perform
// the only I/O of the engine; retry policy for transient transport
// failures lives behind this interface, not in the engine.
type Gateway interface {
	// Send delivers view as a fresh message and returns its reference.
	Send(ctx context.Context, chatID int64, view menu.View) (navigation.MessageRef, error)
	// Edit mutates the referenced message in place. It reports
	// ErrMessageGone when the target no longer exists or is not editable.
	Edit(ctx context.Context, ref navigation.MessageRef, view menu.View) error
	// Typing shows a transient typing indicator. Best effort.
	Typing(ctx context.Context, chatID int64) error
}

// Engine ties the state store, the transition machine, and the gateway
// together behind per-chat serialized queues.
type Engine struct {
	store   *navigation.Store
	machine *navigation.Machine
	gateway Gateway
	queues  *Queues
}

// NewEngine assembles an engine with its own queue set.
func NewEngine(store *navigation.Store, machine *navigation.Machine, gw Gateway, opts QueueOptions) *Engine {
	return &Engine{
		store:   store,
		machine: machine,
		gateway: gw,
		queues:  NewQueues(opts),
	}
}

// Dispatch enqueues the event on the chat's serialized queue. Handling
// errors are logged, not returned: by the time an event is processed the
// platform callback has already been acknowledged.
func (e *Engine) Dispatch(ctx context.Context, chatID int64, ev navigation.Event) error {
	return e.queues.Enqueue(ctx, chatID, func(ctx context.Context) {
		if err := e.Handle(ctx, chatID, ev); err != nil {
			logger.Error(ctx, "nav", "event.failed",
				slog.String("status", "fail"),
				slog.Int64("chat_id", chatID),
				slog.String("kind", ev.Kind.String()),
				slog.String("token", logger.SanitizeLimit(ev.Token, 64)),
				slog.String("err", err.Error()),
			)
		}
	})
}

// Handle processes one event as a unit: transition, render, commit. The
// stored state is updated only after the render action was delivered, so
// state and displayed content stay coherent under partial failure.
func (e *Engine) Handle(ctx context.Context, chatID int64, ev navigation.Event) error {
	st := e.store.Get(chatID)
	next, act := e.machine.Transition(st, ev)

	if err := checkBounds(e.machine, next); err != nil {
		// Programming fault: drop the event, keep prior state.
		logger.Error(ctx, "nav", "invariant.violated",
			slog.Int64("chat_id", chatID),
			slog.String("menu", next.Menu.String()),
			slog.Int("page", next.Page),
			slog.String("err", err.Error()),
		)
		return err
	}

	switch act.Kind {
	case navigation.ActionNone:
		logger.Debug(ctx, "nav", "event.ignored",
			slog.Int64("chat_id", chatID),
			slog.String("kind", ev.Kind.String()),
			slog.String("token", logger.SanitizeLimit(ev.Token, 64)),
		)
		return nil

	case navigation.ActionSendNew:
		_ = e.gateway.Typing(ctx, chatID)
		ref, err := e.gateway.Send(ctx, chatID, act.View)
		if err != nil {
			return &DeliveryError{Op: "send", Err: err}
		}
		if act.Track {
			next.MessageRef = &ref
		}

	case navigation.ActionEdit:
		err := e.gateway.Edit(ctx, *act.Ref, act.View)
		switch {
		case errors.Is(err, ErrMessageGone):
			// The rendered menu is no longer editable; replace it.
			ref, sendErr := e.gateway.Send(ctx, chatID, act.View)
			if sendErr != nil {
				return &DeliveryError{Op: "send", Err: sendErr}
			}
			next.MessageRef = &ref
		case err != nil:
			return &DeliveryError{Op: "edit", Err: err}
		}
	}

	e.store.Put(next)

	logger.Debug(ctx, "nav", "event.handled",
		slog.Int64("chat_id", chatID),
		slog.String("kind", ev.Kind.String()),
		slog.String("action", act.Kind.String()),
		slog.String("menu", next.Menu.String()),
		slog.Int("page", next.Page),
	)
	return nil
}

// Close drains all per-chat queues.
func (e *Engine) Close() {
	e.queues.Close()
}

func checkBounds(m *navigation.Machine, st navigation.State) error {
	switch st.Menu {
	case navigation.MenuItemList:
		if st.Page < 1 || st.Page > m.Catalog.PageCount() {
			return ErrPageOutOfRange
		}
	default:
		if st.Page != 0 {
			return ErrPageOutOfRange
		}
	}
	return nil
}

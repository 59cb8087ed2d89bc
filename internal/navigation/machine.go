package navigation

import (
	"allcitybot/internal/catalog"
	"allcitybot/internal/menu"
)

// Machine computes navigation transitions. Transition is a pure function:
// it performs no I/O and leaves both its inputs untouched, so repeated
// calls with identical inputs yield identical results.
type Machine struct {
	Catalog *catalog.Catalog
	Views   *menu.Renderer
}

// NewMachine builds a transition machine over the given catalog and renderer.
func NewMachine(cat *catalog.Catalog, views *menu.Renderer) *Machine {
	return &Machine{Catalog: cat, Views: views}
}

// Transition derives the next navigation state and the render decision
// from the current state and a classified event. Every (state, event)
// pair has a defined outcome; unknown input degrades to no state change
// and no render.
func (m *Machine) Transition(st State, ev Event) (State, Action) {
	switch ev.Kind {
	case EventText:
		return m.textTransition(st, ev)
	case EventButton:
		return m.buttonTransition(st, ev)
	default:
		return st, Action{Kind: ActionNone}
	}
}

// textTransition restarts the conversation: any text produces a fresh
// message and forgets the previously rendered menu. "Menu" opens the root
// menu; anything else falls back to the greeting.
func (m *Machine) textTransition(st State, ev Event) (State, Action) {
	next := State{ChatID: st.ChatID, Menu: MenuRoot, Page: 0}

	view := m.Views.Welcome()
	if ev.Text == CommandMenu {
		view = m.Views.Root()
	}
	return next, Action{Kind: ActionSendNew, View: view}
}

func (m *Machine) buttonTransition(st State, ev Event) (State, Action) {
	// Prefer the message the button was pressed on; it is the menu the
	// user is looking at even if the stored ref went stale.
	ref := ev.Ref
	if ref == nil {
		ref = st.MessageRef
	}

	switch ev.Token {
	case TokenBackToMain:
		next := State{ChatID: st.ChatID, Menu: MenuRoot, Page: 0, MessageRef: ref}
		return next, m.editOrSend(ref, m.Views.Root())

	case TokenFood:
		next := State{ChatID: st.ChatID, Menu: MenuItemList, Page: 1, MessageRef: ref}
		return next, m.editOrSend(ref, m.Views.ListPage(1))

	case TokenNext:
		if st.Menu != MenuItemList {
			return st, Action{Kind: ActionNone}
		}
		page := st.Page + 1
		if max := m.Catalog.PageCount(); page > max {
			page = max
		}
		next := State{ChatID: st.ChatID, Menu: MenuItemList, Page: page, MessageRef: ref}
		return next, m.editOrSend(ref, m.Views.ListPage(page))

	case TokenBack:
		if st.Menu != MenuItemList {
			return st, Action{Kind: ActionNone}
		}
		page := st.Page - 1
		if page < 1 {
			page = 1
		}
		next := State{ChatID: st.ChatID, Menu: MenuItemList, Page: page, MessageRef: ref}
		return next, m.editOrSend(ref, m.Views.ListPage(page))

	default:
		if it, ok := m.Catalog.ItemByID(ev.Token); ok {
			// Detail cards are appended below the menu so the user can keep
			// browsing; the menu message and navigation state stay as they are.
			return st, Action{Kind: ActionSendNew, View: m.Views.Detail(it)}
		}
		return st, Action{Kind: ActionNone}
	}
}

// editOrSend prefers editing the rendered menu in place; without a known
// message it degrades to a fresh send.
func (m *Machine) editOrSend(ref *MessageRef, view menu.View) Action {
	if ref == nil {
		return Action{Kind: ActionSendNew, View: view, Track: true}
	}
	return Action{Kind: ActionEdit, Ref: ref, View: view}
}

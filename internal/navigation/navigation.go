// Package navigation holds the per-conversation menu state and the state
// machine that derives the next state and render decision from inbound
// events. Everything in this package is pure and platform-agnostic; the
// Telegram transport lives behind adapters.
package navigation

import "allcitybot/internal/menu"

// Menu identifies the navigation surface a conversation is currently viewing.
type Menu int

const (
	// MenuRoot is the category selection screen.
	MenuRoot Menu = iota
	// MenuCategory is a category screen. With a single category it renders
	// identically to the root menu and exists for enum completeness.
	MenuCategory
	// MenuItemList is the paginated venue list.
	MenuItemList
)

func (m Menu) String() string {
	switch m {
	case MenuRoot:
		return "root"
	case MenuCategory:
		return "category"
	case MenuItemList:
		return "item_list"
	default:
		return "unknown"
	}
}

// MessageRef identifies a rendered menu message that can be edited in place.
type MessageRef struct {
	ChatID    int64
	MessageID int
}

// State is the navigation position of one conversation. MessageRef is set
// if and only if the conversation has a currently-displayed menu message
// that can be edited in place.
type State struct {
	ChatID     int64
	Menu       Menu
	Page       int
	MessageRef *MessageRef
}

// EventKind tags classified inbound events.
type EventKind int

const (
	// EventUnhandled marks updates the engine ignores.
	EventUnhandled EventKind = iota
	// EventText is a plain text message.
	EventText
	// EventButton is an inline button press.
	EventButton
)

func (k EventKind) String() string {
	switch k {
	case EventText:
		return "text"
	case EventButton:
		return "button"
	default:
		return "unhandled"
	}
}

// Well-known command and button tokens, matching the rendered keyboards.
const (
	CommandMenu = "Menu"

	TokenFood       = "Food"
	TokenNext       = "Next"
	TokenBack       = "Back"
	TokenBackToMain = "BackToMain"
)

// Event is a classified inbound update. Text carries the first token of a
// text message; Token carries the action string of a pressed button; Ref
// points at the message whose button was pressed, when the platform
// provides it.
type Event struct {
	Kind  EventKind
	Text  string
	Token string
	Ref   *MessageRef
}

// ActionKind tags render decisions produced by a transition.
type ActionKind int

const (
	// ActionNone renders nothing.
	ActionNone ActionKind = iota
	// ActionSendNew sends the view as a fresh message.
	ActionSendNew
	// ActionEdit mutates the referenced message in place.
	ActionEdit
)

func (k ActionKind) String() string {
	switch k {
	case ActionSendNew:
		return "send_new"
	case ActionEdit:
		return "edit"
	default:
		return "none"
	}
}

// Action is the render decision of one transition: what to show and
// whether to send it fresh or edit an existing message in place.
// Track marks a fresh send whose message becomes the editable menu, so
// the dispatcher records its ref for later in-place navigation.
type Action struct {
	Kind  ActionKind
	Ref   *MessageRef
	View  menu.View
	Track bool
}

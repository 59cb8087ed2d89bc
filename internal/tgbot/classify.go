package tgbot

import (
	"strings"

	"allcitybot/internal/navigation"

	tele "gopkg.in/telebot.v4"
)

// Classify maps a raw Telegram update onto a navigation event. Text
// messages carry their first whitespace-delimited token; button presses
// carry the opaque callback token and the message they were pressed on.
// Everything else (edited messages, inline results, service updates) is
// unhandled. Pure function, total over all updates.
func Classify(u tele.Update) navigation.Event {
	switch {
	case u.Callback != nil:
		token := callbackToken(u.Callback)
		if token == "" {
			return navigation.Event{Kind: navigation.EventUnhandled}
		}
		ev := navigation.Event{Kind: navigation.EventButton, Token: token}
		if msg := u.Callback.Message; msg != nil && msg.Chat != nil {
			ev.Ref = &navigation.MessageRef{ChatID: msg.Chat.ID, MessageID: msg.ID}
		}
		return ev

	case u.Message != nil:
		fields := strings.Fields(u.Message.Text)
		if len(fields) == 0 {
			return navigation.Event{Kind: navigation.EventUnhandled}
		}
		return navigation.Event{Kind: navigation.EventText, Text: fields[0]}

	default:
		return navigation.Event{Kind: navigation.EventUnhandled}
	}
}

// callbackToken extracts the action token from a callback. Telebot
// delivers data as \f<unique>|<payload> on the generic callback endpoint,
// with Unique filled only on per-button routes.
func callbackToken(cb *tele.Callback) string {
	if cb.Unique != "" {
		return cb.Unique
	}
	raw := strings.TrimPrefix(cb.Data, "\f")
	parts := strings.SplitN(raw, "|", 2)
	return strings.TrimSpace(parts[0])
}

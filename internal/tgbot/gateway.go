package tgbot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"allcitybot/core/telegram/keyboard"
	"allcitybot/internal/dispatch"
	"allcitybot/internal/menu"
	"allcitybot/internal/navigation"

	tele "gopkg.in/telebot.v4"
)

// Gateway delivers rendered views through a Telegram bot. The bot is
// bound late, after telebot constructs it, so the engine and routes can
// be wired before the transport exists.
type Gateway struct {
	bot atomic.Pointer[tele.Bot]
}

// NewGateway returns an unbound gateway.
func NewGateway() *Gateway {
	return &Gateway{}
}

// Bind attaches the running bot. Calls before Bind fail with a delivery error.
func (g *Gateway) Bind(bot *tele.Bot) {
	g.bot.Store(bot)
}

var errUnbound = errors.New("tgbot: gateway not bound to a bot")

// Send delivers the view as a fresh message.
func (g *Gateway) Send(_ context.Context, chatID int64, view menu.View) (navigation.MessageRef, error) {
	bot := g.bot.Load()
	if bot == nil {
		return navigation.MessageRef{}, errUnbound
	}
	msg, err := bot.Send(tele.ChatID(chatID), view.Text, sendOptions(view))
	if err != nil {
		return navigation.MessageRef{}, err
	}
	return navigation.MessageRef{ChatID: chatID, MessageID: msg.ID}, nil
}

// Edit rewrites the referenced message in place. A target that Telegram
// reports as missing or frozen maps onto dispatch.ErrMessageGone.
func (g *Gateway) Edit(_ context.Context, ref navigation.MessageRef, view menu.View) error {
	bot := g.bot.Load()
	if bot == nil {
		return errUnbound
	}
	_, err := bot.Edit(editTarget(ref), view.Text, sendOptions(view))
	if err == nil {
		return nil
	}
	if editGone(err) {
		return fmt.Errorf("%w: %v", dispatch.ErrMessageGone, err)
	}
	return err
}

// Typing shows the transient typing indicator. Best effort.
func (g *Gateway) Typing(_ context.Context, chatID int64) error {
	bot := g.bot.Load()
	if bot == nil {
		return errUnbound
	}
	return bot.Notify(tele.ChatID(chatID), tele.Typing)
}

// editTarget adapts a message ref to telebot's Editable.
type editTarget navigation.MessageRef

func (e editTarget) MessageSig() (string, int64) {
	return strconv.Itoa(e.MessageID), e.ChatID
}

func sendOptions(view menu.View) *tele.SendOptions {
	return &tele.SendOptions{
		ParseMode:   tele.ModeHTML,
		ReplyMarkup: markupFor(view),
	}
}

func markupFor(view menu.View) *tele.ReplyMarkup {
	if len(view.Buttons) > 0 {
		rows := make([][]keyboard.InlineBtn, len(view.Buttons))
		for i, row := range view.Buttons {
			btns := make([]keyboard.InlineBtn, len(row))
			for j, b := range row {
				btns[j] = keyboard.InlineBtn{Text: b.Text, Unique: b.Token, URL: b.URL}
			}
			rows[i] = btns
		}
		return keyboard.InlineButtonsRows(rows...)
	}
	if len(view.Reply) > 0 {
		return keyboard.ReplyButtons(view.Reply...)
	}
	return nil
}

// editGone reports whether the Telegram API rejected an edit because the
// target message is beyond reach (deleted, too old, or not the bot's).
func editGone(err error) bool {
	var apiErr *tele.Error
	if !errors.As(err, &apiErr) {
		return false
	}
	desc := strings.ToLower(apiErr.Description)
	return strings.Contains(desc, "message to edit not found") ||
		strings.Contains(desc, "message can't be edited") ||
		strings.Contains(desc, "message identifier is not specified")
}

package tgbot

import (
	"log/slog"
	"time"

	"allcitybot/core/logger"
	coretelegram "allcitybot/core/telegram"
	tghelpers "allcitybot/core/telegram/helpers"
	"allcitybot/internal/dispatch"
	"allcitybot/internal/navigation"

	tele "gopkg.in/telebot.v4"
)

// Routes binds the two update endpoints the bot cares about. Everything
// arriving on them is classified into a navigation event and handed to the
// engine; the engine serializes per chat, so handlers return quickly.
func Routes(eng *dispatch.Engine) []coretelegram.Route {
	return []coretelegram.Route{
		{Endpoint: tele.OnText, Handler: textHandler(eng)},
		{Endpoint: tele.OnCallback, Handler: callbackHandler(eng)},
	}
}

func textHandler(eng *dispatch.Engine) tele.HandlerFunc {
	return func(c tele.Context) error {
		return handleUpdate(eng, c, "on_text")
	}
}

func callbackHandler(eng *dispatch.Engine) tele.HandlerFunc {
	return func(c tele.Context) error {
		// Ack first so the client stops its spinner even if handling stalls.
		if err := c.Respond(); err != nil {
			ctx := tghelpers.WithHandler(c, "on_callback")
			logger.Warn(ctx, "tg", "callback.ack_failed", slog.String("err", err.Error()))
		}
		return handleUpdate(eng, c, "on_callback")
	}
}

func handleUpdate(eng *dispatch.Engine, c tele.Context, handler string) error {
	chat := c.Chat()
	if chat == nil {
		return nil
	}

	start := time.Now()
	ctx := tghelpers.WithHandler(c, handler)

	ev := Classify(c.Update())
	err := eng.Dispatch(ctx, chat.ID, ev)

	event := "handler.completed"
	if ev.Kind == navigation.EventUnhandled {
		event = "handler.skipped"
	}
	attrs := []slog.Attr{
		slog.String("kind", ev.Kind.String()),
		slog.String("status", logger.Status(err)),
		slog.Duration("duration", logger.RoundMS(logger.Took(start))),
	}
	if ev.Token != "" {
		attrs = append(attrs, slog.String("token", ev.Token))
	}
	logger.Debug(ctx, "tg", event, attrs...)

	return err
}

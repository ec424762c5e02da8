package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/bnema/verbtrainer/internal/application"
	"github.com/bnema/verbtrainer/internal/domain"
	"github.com/felixgeelhaar/fortify/ratelimit"
)

const rateLimitedText = "⏳ Demasiados mensajes. Espera un momento e inténtalo de nuevo."

type Handler interface {
	Handle(ctx context.Context, cmd application.Command) application.Reply
}

// API is the subset of the Bot API needed to deliver replies.
type API interface {
	SendMessage(ctx context.Context, req SendMessageRequest) (Message, error)
	EditMessageText(ctx context.Context, req EditMessageTextRequest) (Message, error)
	AnswerCallbackQuery(ctx context.Context, req AnswerCallbackQueryRequest) error
}

type BotConfig struct {
	// RatePerSecond caps inbound updates per user. Zero disables the limit.
	RatePerSecond int
	Logger        *slog.Logger
}

// Bot turns updates into commands and delivers the resulting replies.
type Bot struct {
	handler   Handler
	api       API
	rateLimit ratelimit.RateLimiter
	logger    *slog.Logger
}

func NewBot(handler Handler, api API, cfg BotConfig) *Bot {
	b := &Bot{handler: handler, api: api, logger: cfg.Logger}
	if b.logger == nil {
		b.logger = slog.Default()
	}
	if cfg.RatePerSecond > 0 {
		b.rateLimit = ratelimit.New(&ratelimit.Config{
			Rate:     cfg.RatePerSecond,
			Burst:    cfg.RatePerSecond * 3,
			Interval: time.Second,
		})
	}
	return b
}

func (b *Bot) Close() error {
	if b.rateLimit != nil {
		return b.rateLimit.Close()
	}
	return nil
}

type inbound struct {
	cmd        application.Command
	chatID     int64
	messageID  int64
	callbackID string
}

func routeUpdate(update Update) (inbound, bool) {
	if cq := update.CallbackQuery; cq != nil {
		in := inbound{
			cmd:        ParseCallback(domain.UserID(cq.From.ID), cq.Data),
			chatID:     cq.From.ID,
			callbackID: cq.ID,
		}
		if cq.Message != nil {
			in.chatID = cq.Message.Chat.ID
			in.messageID = cq.Message.MessageID
		}
		return in, true
	}

	if msg := update.Message; msg != nil && msg.Text != "" {
		user := msg.Chat.ID
		if msg.From != nil {
			user = msg.From.ID
		}
		return inbound{
			cmd:    ParseText(domain.UserID(user), msg.Text),
			chatID: msg.Chat.ID,
		}, true
	}

	return inbound{}, false
}

// HandleUpdate processes one update end to end. Callback queries are always
// answered so the client stops its spinner. Delivery failures are returned
// after every message has been attempted.
func (b *Bot) HandleUpdate(ctx context.Context, update Update) error {
	in, ok := routeUpdate(update)
	if !ok {
		b.logger.DebugContext(ctx, "ignoring update", "update_id", update.UpdateID)
		return nil
	}

	user := int64(in.cmd.UserID)
	if b.rateLimit != nil && !b.rateLimit.Allow(ctx, strconv.FormatInt(user, 10)) {
		b.logger.WarnContext(ctx, "update rate limited", "update_id", update.UpdateID, "user_id", user)
		return b.slowDown(ctx, in)
	}

	reply := b.handle(ctx, in.cmd, update.UpdateID)

	var errs []error
	if in.callbackID != "" {
		if err := b.answerCallback(ctx, in.callbackID, reply.Alert); err != nil {
			errs = append(errs, err)
		}
	} else if reply.Alert != "" {
		if _, err := b.api.SendMessage(ctx, SendMessageRequest{ChatID: in.chatID, Text: reply.Alert}); err != nil {
			errs = append(errs, fmt.Errorf("send alert: %w", err))
		}
	}

	for _, msg := range reply.Messages {
		if err := b.deliver(ctx, in, msg); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (b *Bot) handle(ctx context.Context, cmd application.Command, updateID int64) (reply application.Reply) {
	defer func() {
		if rec := recover(); rec != nil {
			b.logger.ErrorContext(ctx, "panic recovered",
				"update_id", updateID,
				"user_id", int64(cmd.UserID),
				"command", string(cmd.Kind),
				"error", fmt.Sprint(rec))
			reply = application.FailureReply(cmd.Target)
		}
	}()

	return b.handler.Handle(ctx, cmd)
}

func (b *Bot) deliver(ctx context.Context, in inbound, msg application.Message) error {
	markup := Keyboard(msg.Actions)

	if msg.Target == application.EditExisting && in.messageID != 0 {
		_, err := b.api.EditMessageText(ctx, EditMessageTextRequest{
			ChatID:      in.chatID,
			MessageID:   in.messageID,
			Text:        msg.Text,
			ReplyMarkup: markup,
		})
		if err == nil || isNotModified(err) {
			return nil
		}
		b.logger.WarnContext(ctx, "edit failed, sending new message",
			"chat_id", in.chatID,
			"message_id", in.messageID,
			"error", err)
	}

	if _, err := b.api.SendMessage(ctx, SendMessageRequest{
		ChatID:      in.chatID,
		Text:        msg.Text,
		ReplyMarkup: markup,
	}); err != nil {
		return fmt.Errorf("send %s message: %w", msg.Kind, err)
	}
	return nil
}

// slowDown is the only reply a rate limited update gets. Callbacks get a
// toast instead of a new chat message.
func (b *Bot) slowDown(ctx context.Context, in inbound) error {
	if in.callbackID != "" {
		if err := b.api.AnswerCallbackQuery(ctx, AnswerCallbackQueryRequest{CallbackQueryID: in.callbackID, Text: rateLimitedText}); err != nil {
			return fmt.Errorf("answer callback query: %w", err)
		}
		return nil
	}
	if _, err := b.api.SendMessage(ctx, SendMessageRequest{ChatID: in.chatID, Text: rateLimitedText}); err != nil {
		return fmt.Errorf("send rate limit notice: %w", err)
	}
	return nil
}

func (b *Bot) answerCallback(ctx context.Context, id string, alert string) error {
	req := AnswerCallbackQueryRequest{CallbackQueryID: id}
	if alert != "" {
		req.Text = alert
		req.ShowAlert = true
	}
	if err := b.api.AnswerCallbackQuery(ctx, req); err != nil {
		return fmt.Errorf("answer callback query: %w", err)
	}
	return nil
}

package telegram

import (
	"context"
	"sync"

	"github.com/bnema/verbtrainer/internal/application"
)

type fakeAPI struct {
	mu       sync.Mutex
	sent     []SendMessageRequest
	edited   []EditMessageTextRequest
	answered []AnswerCallbackQueryRequest
	editErr  error
	sendErr  error
}

func (f *fakeAPI) SendMessage(_ context.Context, req SendMessageRequest) (Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return Message{}, f.sendErr
	}
	f.sent = append(f.sent, req)
	return Message{MessageID: int64(len(f.sent)), Chat: Chat{ID: req.ChatID}, Text: req.Text}, nil
}

func (f *fakeAPI) EditMessageText(_ context.Context, req EditMessageTextRequest) (Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.editErr != nil {
		return Message{}, f.editErr
	}
	f.edited = append(f.edited, req)
	return Message{MessageID: req.MessageID, Chat: Chat{ID: req.ChatID}, Text: req.Text}, nil
}

func (f *fakeAPI) AnswerCallbackQuery(_ context.Context, req AnswerCallbackQueryRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.answered = append(f.answered, req)
	return nil
}

func (f *fakeAPI) failSends(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sendErr = err
}

func (f *fakeAPI) snapshot() ([]SendMessageRequest, []EditMessageTextRequest, []AnswerCallbackQueryRequest) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]SendMessageRequest(nil), f.sent...),
		append([]EditMessageTextRequest(nil), f.edited...),
		append([]AnswerCallbackQueryRequest(nil), f.answered...)
}

type handlerFunc func(ctx context.Context, cmd application.Command) application.Reply

func (f handlerFunc) Handle(ctx context.Context, cmd application.Command) application.Reply {
	return f(ctx, cmd)
}

type recordingHandler struct {
	mu       sync.Mutex
	commands []application.Command
	reply    application.Reply
}

func (h *recordingHandler) Handle(_ context.Context, cmd application.Command) application.Reply {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.commands = append(h.commands, cmd)
	return h.reply
}

func (h *recordingHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.commands)
}

type updateHandlerFunc func(ctx context.Context, update Update) error

func (f updateHandlerFunc) HandleUpdate(ctx context.Context, update Update) error {
	return f(ctx, update)
}

func textUpdate(id int64, user int64, text string) Update {
	return Update{
		UpdateID: id,
		Message: &Message{
			MessageID: id,
			From:      &User{ID: user, FirstName: "Ana"},
			Chat:      Chat{ID: user, Type: "private"},
			Text:      text,
		},
	}
}

func callbackUpdate(id int64, user int64, messageID int64, data string) Update {
	return Update{
		UpdateID: id,
		CallbackQuery: &CallbackQuery{
			ID:   "cb-" + data,
			From: User{ID: user, FirstName: "Ana"},
			Message: &Message{
				MessageID: messageID,
				Chat:      Chat{ID: user, Type: "private"},
			},
			Data: data,
		},
	}
}

// stepRandom returns 0, 1, 2, ... modulo n so consecutive draws differ.
type stepRandom struct {
	mu   sync.Mutex
	next int
}

func (r *stepRandom) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	v := r.next % n
	r.next++
	return v
}

package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "123456:secret-token"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()

	client, err := NewClient(ClientConfig{
		APIURL:         server.URL,
		Token:          testToken,
		HTTPClient:     server.Client(),
		RequestTimeout: 2 * time.Second,
		MaxAttempts:    3,
		InitialDelay:   time.Millisecond,
		Logger:         discardLogger(),
	})
	require.NoError(t, err)
	return client
}

func writeResult(w http.ResponseWriter, result string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"ok":true,"result":` + result + `}`))
}

func writeError(w http.ResponseWriter, status int, description string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	body, _ := json.Marshal(apiResponse{OK: false, ErrorCode: status, Description: description})
	_, _ = w.Write(body)
}

func TestNewClientValidatesConfig(t *testing.T) {
	t.Parallel()

	_, err := NewClient(ClientConfig{})
	require.ErrorIs(t, err, ErrMissingToken)

	_, err = NewClient(ClientConfig{Token: testToken, APIURL: "ftp://example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http or https")

	client, err := NewClient(ClientConfig{Token: testToken})
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIURL, client.baseURL)
}

func TestSendMessagePostsJSON(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/bot"+testToken+"/sendMessage", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req SendMessageRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(99), req.ChatID)
		assert.Equal(t, "hola", req.Text)
		require.NotNil(t, req.ReplyMarkup)
		assert.Equal(t, "stop_practice", req.ReplyMarkup.InlineKeyboard[0][0].CallbackData)

		writeResult(w, `{"message_id":5,"chat":{"id":99,"type":"private"},"text":"hola"}`)
	}))
	t.Cleanup(server.Close)

	client := newTestClient(t, server)
	msg, err := client.SendMessage(context.Background(), SendMessageRequest{
		ChatID: 99,
		Text:   "hola",
		ReplyMarkup: &InlineKeyboardMarkup{InlineKeyboard: [][]InlineKeyboardButton{{
			{Text: "🛑 Parar práctica", CallbackData: "stop_practice"},
		}}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), msg.MessageID)
	assert.Equal(t, int64(99), msg.Chat.ID)
}

func TestGetUpdatesDecodesBatch(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req GetUpdatesRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(10), req.Offset)
		assert.Equal(t, []string{"message", "callback_query"}, req.AllowedUpdates)

		writeResult(w, `[
			{"update_id":10,"message":{"message_id":1,"from":{"id":3,"first_name":"Ana"},"chat":{"id":3,"type":"private"},"text":"/start"}},
			{"update_id":11,"callback_query":{"id":"cb","from":{"id":3,"first_name":"Ana"},"data":"start_practice"}}
		]`)
	}))
	t.Cleanup(server.Close)

	client := newTestClient(t, server)
	updates, err := client.GetUpdates(context.Background(), GetUpdatesRequest{Offset: 10, AllowedUpdates: AllowedUpdates})
	require.NoError(t, err)
	require.Len(t, updates, 2)
	assert.Equal(t, "/start", updates[0].Message.Text)
	assert.Equal(t, "start_practice", updates[1].CallbackQuery.Data)
}

func TestCallRetriesServerErrors(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) == 1 {
			writeError(w, http.StatusBadGateway, "Bad Gateway")
			return
		}
		writeResult(w, `{"id":1,"is_bot":true,"first_name":"Verbs","username":"verb_bot"}`)
	}))
	t.Cleanup(server.Close)

	client := newTestClient(t, server)
	user, err := client.GetMe(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "verb_bot", user.Username)
	assert.Equal(t, int32(2), attempts.Load())
}

func TestCallDoesNotRetryClientErrors(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		writeError(w, http.StatusBadRequest, "Bad Request: message is not modified")
	}))
	t.Cleanup(server.Close)

	client := newTestClient(t, server)
	_, err := client.EditMessageText(context.Background(), EditMessageTextRequest{ChatID: 1, MessageID: 2, Text: "same"})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.True(t, apiErr.NotModified())
	assert.False(t, apiErr.Temporary())
	assert.Equal(t, int32(1), attempts.Load())
}

func TestClientErrorsDoNotOpenBreaker(t *testing.T) {
	t.Parallel()

	var healthy atomic.Bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !healthy.Load() {
			writeError(w, http.StatusForbidden, "Forbidden: bot was blocked by the user")
			return
		}
		writeResult(w, `true`)
	}))
	t.Cleanup(server.Close)

	client := newTestClient(t, server)
	for i := 0; i < 5; i++ {
		err := client.AnswerCallbackQuery(context.Background(), AnswerCallbackQueryRequest{CallbackQueryID: "cb"})
		require.Error(t, err)
	}

	healthy.Store(true)
	require.NoError(t, client.AnswerCallbackQuery(context.Background(), AnswerCallbackQueryRequest{CallbackQueryID: "cb"}))
}

func TestCallRejectsOversizedResponse(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		writeResult(w, `"`+strings.Repeat("a", maxResponseBytes)+`"`)
	}))
	t.Cleanup(server.Close)

	client := newTestClient(t, server)
	_, err := client.GetWebhookInfo(context.Background())
	require.Error(t, err)
	assert.Equal(t, int32(1), attempts.Load())
}

func TestTransportErrorsRedactToken(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := newTestClient(t, server)
	server.Close()

	err := client.DeleteWebhook(context.Background(), false)
	require.Error(t, err)
	assert.NotContains(t, err.Error(), testToken)
}

func TestSetWebhookRequiresURL(t *testing.T) {
	t.Parallel()

	client, err := NewClient(ClientConfig{Token: testToken})
	require.NoError(t, err)
	require.Error(t, client.SetWebhook(context.Background(), SetWebhookRequest{}))
}

func TestSetWebhookSendsSecret(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bot"+testToken+"/setWebhook", r.URL.Path)
		var req SetWebhookRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "https://example.com/webhook", req.URL)
		assert.Equal(t, "shh", req.SecretToken)
		writeResult(w, `true`)
	}))
	t.Cleanup(server.Close)

	client := newTestClient(t, server)
	require.NoError(t, client.SetWebhook(context.Background(), SetWebhookRequest{
		URL:         "https://example.com/webhook",
		SecretToken: "shh",
	}))
}

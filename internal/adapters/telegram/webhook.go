package telegram

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"
	"time"

	"github.com/felixgeelhaar/fortify/bulkhead"
	"github.com/gin-gonic/gin"
)

const (
	DefaultWebhookPath = "/webhook"
	SecretTokenHeader  = "X-Telegram-Bot-Api-Secret-Token"
)

type WebhookConfig struct {
	Path string
	// Secret, when set, must match the X-Telegram-Bot-Api-Secret-Token header.
	Secret        string
	MaxConcurrent int
	Logger        *slog.Logger
}

// NewWebhookRouter serves Telegram webhook deliveries and a health check.
// Middleware order: request id, logging, recovery.
func NewWebhookRouter(handler UpdateHandler, cfg WebhookConfig) *gin.Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	path := cfg.Path
	if path == "" {
		path = DefaultWebhookPath
	}
	maxConcurrent := cfg.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = 16
	}

	limiter := bulkhead.New[error](bulkhead.Config{
		MaxConcurrent: maxConcurrent,
		MaxQueue:      maxConcurrent * 2,
		QueueTimeout:  10 * time.Second,
	})

	r := gin.New()
	r.Use(requestIDMiddleware(), loggingMiddleware(logger), recoveryMiddleware(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET(path, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "Telegram Bot Webhook is running"})
	})
	r.POST(path, webhookHandler(handler, limiter, cfg.Secret, logger))

	return r
}

func webhookHandler(handler UpdateHandler, limiter bulkhead.Bulkhead[error], secret string, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret != "" {
			got := c.GetHeader(SecretTokenHeader)
			if subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
				c.JSON(http.StatusUnauthorized, gin.H{"status": "unauthorized"})
				return
			}
		}

		var update Update
		if err := c.ShouldBindJSON(&update); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "invalid update"})
			return
		}

		ctx := c.Request.Context()
		handleErr, err := limiter.Execute(ctx, func(ctx context.Context) (error, error) {
			return handler.HandleUpdate(ctx, update), nil
		})
		if err != nil {
			// Not dispatched; a non-2xx status makes Telegram redeliver.
			logger.ErrorContext(ctx, "webhook update rejected",
				"request_id", RequestID(ctx),
				"update_id", update.UpdateID,
				"error", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "busy"})
			return
		}
		if handleErr != nil {
			// The action already ran. Redelivery would run it a second time.
			logger.ErrorContext(ctx, "webhook update handled with errors",
				"request_id", RequestID(ctx),
				"update_id", update.UpdateID,
				"error", handleErr)
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

type UpdateSource interface {
	GetUpdates(ctx context.Context, req GetUpdatesRequest) ([]Update, error)
	DeleteWebhook(ctx context.Context, dropPending bool) error
}

type UpdateHandler interface {
	HandleUpdate(ctx context.Context, update Update) error
}

type PollerConfig struct {
	Timeout time.Duration
	// Backoff is the pause after a failed getUpdates call.
	Backoff time.Duration
	Logger  *slog.Logger
}

// Poller long-polls getUpdates and hands each update to the handler in order.
type Poller struct {
	source  UpdateSource
	handler UpdateHandler
	timeout time.Duration
	backoff time.Duration
	logger  *slog.Logger
}

func NewPoller(source UpdateSource, handler UpdateHandler, cfg PollerConfig) *Poller {
	p := &Poller{
		source:  source,
		handler: handler,
		timeout: cfg.Timeout,
		backoff: cfg.Backoff,
		logger:  cfg.Logger,
	}
	if p.timeout <= 0 {
		p.timeout = 30 * time.Second
	}
	if p.backoff <= 0 {
		p.backoff = 3 * time.Second
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// Run polls until ctx is cancelled. A registered webhook blocks getUpdates,
// so it is removed first.
func (p *Poller) Run(ctx context.Context) error {
	if err := p.source.DeleteWebhook(ctx, false); err != nil {
		return fmt.Errorf("delete webhook before polling: %w", err)
	}

	p.logger.InfoContext(ctx, "polling for updates", "timeout", p.timeout.String())

	var offset int64
	for {
		if ctx.Err() != nil {
			return nil
		}

		updates, err := p.source.GetUpdates(ctx, GetUpdatesRequest{
			Offset:         offset,
			Timeout:        int(p.timeout / time.Second),
			AllowedUpdates: AllowedUpdates,
		})
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			p.logger.WarnContext(ctx, "get updates failed", "error", err)
			if !sleep(ctx, p.backoff) {
				return nil
			}
			continue
		}

		for _, update := range updates {
			if update.UpdateID >= offset {
				offset = update.UpdateID + 1
			}
			if err := p.handler.HandleUpdate(ctx, update); err != nil {
				p.logger.ErrorContext(ctx, "handle update failed", "update_id", update.UpdateID, "error", err)
			}
		}
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	select {
	case <-ctx.Done():
		if !timer.Stop() {
			<-timer.C
		}
		return false
	case <-timer.C:
		return true
	}
}

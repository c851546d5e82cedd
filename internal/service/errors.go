package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/Skotchmaster/storefront/internal/events"
	"github.com/Skotchmaster/storefront/internal/logging"
)

var (
	ErrValidation         = errors.New("validation")          // 400
	ErrInvalidCredentials = errors.New("invalid credentials") // 401
	ErrSearchUnavailable  = errors.New("search unavailable")  // 503
)

// publish never fails the caller; a broker outage only costs the event.
func publish(ctx context.Context, p events.Publisher, topic string, key uint, event any) {
	if p == nil {
		return
	}
	if err := p.PublishEvent(ctx, topic, strconv.FormatUint(uint64(key), 10), event); err != nil {
		logging.FromContext(ctx).Warn("event_publish_failed", "topic", topic, "key", key, "error", err)
	}
}

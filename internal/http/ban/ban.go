package ban

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Store keeps strike counters and bans. Implementations must expire both on their own.
type Store interface {
	IsBanned(ctx context.Context, target string) (bool, error)
	AddStrike(ctx context.Context, target string, window time.Duration) (int64, error)
	Ban(ctx context.Context, target string, d time.Duration) error
}

// Guard bans a client after too many rate-limit rejections within a window.
// Store failures are logged and never block a request.
type Guard struct {
	store   Store
	strikes int64
	window  time.Duration
	banFor  time.Duration
}

func NewGuard(store Store, strikes int, window, banFor time.Duration) *Guard {
	if strikes <= 0 {
		strikes = 1
	}
	return &Guard{store: store, strikes: int64(strikes), window: window, banFor: banFor}
}

func (g *Guard) Banned(ctx context.Context, target string) bool {
	banned, err := g.store.IsBanned(ctx, target)
	if err != nil {
		zap.L().Warn("ban lookup failed", zap.String("target", target), zap.Error(err))
		return false
	}
	return banned
}

// Strike records one rejection for target and reports whether it is now banned.
func (g *Guard) Strike(ctx context.Context, target, route string) bool {
	n, err := g.store.AddStrike(ctx, target, g.window)
	if err != nil {
		zap.L().Warn("strike not recorded", zap.String("target", target), zap.Error(err))
		return false
	}
	if n < g.strikes {
		return false
	}

	if err := g.store.Ban(ctx, target, g.banFor); err != nil {
		zap.L().Error("ban not applied", zap.String("target", target), zap.Error(err))
		return false
	}
	zap.L().Warn("client banned",
		zap.String("target", target),
		zap.String("route", route),
		zap.Int64("strikes", n),
		zap.Duration("duration", g.banFor),
	)
	return true
}

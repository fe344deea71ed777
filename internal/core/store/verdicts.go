package store

import (
	"context"
	"time"

	"github.com/fulmenhq/gofulmen/logging"
	"go.uber.org/zap"
)

// Verdicts adapts the store to the engine's cache contract. Database
// failures degrade to cache misses so a broken cache never blocks a
// live check.
type Verdicts struct {
	Store  *Store
	TTL    time.Duration
	Logger *logging.Logger
}

// GetVerdict looks up a fresh cached verdict.
func (v *Verdicts) GetVerdict(ctx context.Context, providerName, handle string) (bool, bool) {
	if v == nil || v.Store == nil {
		return false, false
	}

	taken, ok, err := v.Store.GetCachedVerdict(ctx, providerName, handle)
	if err != nil {
		v.warn("Cache lookup failed", providerName, handle, err)
		return false, false
	}
	return taken, ok
}

// SetVerdict stores a settled verdict under the configured TTL.
func (v *Verdicts) SetVerdict(ctx context.Context, providerName, handle string, taken bool) {
	if v == nil || v.Store == nil {
		return
	}

	if err := v.Store.SetCachedVerdict(ctx, providerName, handle, taken, v.TTL); err != nil {
		v.warn("Cache write failed", providerName, handle, err)
	}
}

func (v *Verdicts) warn(msg, providerName, handle string, err error) {
	if v.Logger == nil {
		return
	}
	v.Logger.Warn(msg,
		zap.String("provider", providerName),
		zap.String("handle", handle),
		zap.Error(err),
	)
}

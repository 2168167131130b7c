package cache

import (
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// producerTimeout bounds a shared producer run once it is detached from the
// caller that started it.
const producerTimeout = 30 * time.Second

// Facade memoizes expensive reads in a Store. Failures never reach the caller.
type Facade struct {
	store  Store
	logger zerolog.Logger
	group  singleflight.Group
}

func NewFacade(store Store, logger zerolog.Logger) *Facade {
	return &Facade{
		store:  store,
		logger: logger.With().Str("component", "cache").Logger(),
	}
}

// Forget drops a cached key.
func (f *Facade) Forget(ctx context.Context, key string) {
	if err := f.store.Delete(ctx, key); err != nil {
		f.logger.Warn().Err(err).Str("key", key).Msg("cache delete failed")
	}
}

// RememberFor returns the live value under key, or runs producer and stores its
// result for ttl. A producer error yields (zero, false) and nothing is stored.
func RememberFor[T any](ctx context.Context, f *Facade, key string, ttl time.Duration, producer func(ctx context.Context) (T, error)) (T, bool) {
	var zero T

	if cached, ok := f.lookup(ctx, key); ok {
		var value T
		if err := json.Unmarshal(cached, &value); err == nil {
			return value, true
		}
		f.logger.Warn().Str("key", key).Msg("discarding undecodable cache entry")
		f.Forget(ctx, key)
	}

	// The producer is shared by every joined caller, so it must outlive the
	// request that happened to start it.
	ch := f.group.DoChan(key, func() (any, error) {
		pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), producerTimeout)
		defer cancel()
		value, err := producer(pctx)
		if err != nil {
			return nil, err
		}
		f.save(pctx, key, value, ttl)
		return value, nil
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		return zero, false
	}
	if res.Err != nil {
		f.logger.Warn().Err(res.Err).Str("key", key).Msg("cache producer failed")
		return zero, false
	}
	value, ok := res.Val.(T)
	if !ok {
		return zero, false
	}
	return value, true
}

func (f *Facade) lookup(ctx context.Context, key string) ([]byte, bool) {
	cached, ok, err := f.store.Get(ctx, key)
	if err != nil {
		f.logger.Warn().Err(err).Str("key", key).Msg("cache read failed")
		return nil, false
	}
	return cached, ok
}

func (f *Facade) save(ctx context.Context, key string, value any, ttl time.Duration) {
	encoded, err := json.Marshal(value)
	if err != nil {
		f.logger.Warn().Err(err).Str("key", key).Msg("cache encode failed")
		return
	}
	if err := f.store.Set(ctx, key, encoded, ttl); err != nil {
		f.logger.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}

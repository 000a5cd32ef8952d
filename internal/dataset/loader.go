// Package dataset loads the catalog with a cache-first strategy.
package dataset

//go:generate mockgen -source=loader.go -destination=mocks/mock_fetcher.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/vmunix/catalogdash/internal/catalog"
)

// ErrNotLoaded is returned by Current before the first successful load.
var ErrNotLoaded = errors.New("dataset not loaded")

const keyPrefixSource = "source:"

// flightTimeout bounds a shared load. The flight is detached from the
// caller that started it, so one disconnecting client does not fail the
// others waiting on the same result.
const flightTimeout = 2 * time.Minute

// Fetcher retrieves the raw catalog CSV.
type Fetcher interface {
	// Source identifies where the data comes from. It is also the cache key.
	Source() string
	Fetch(ctx context.Context) ([]byte, error)
}

// Loader fetches, caches and parses the catalog.
//
// A TTL of zero disables both the SQLite cache and the in-memory copy, so
// every Load fetches the source.
type Loader struct {
	fetcher Fetcher
	cache   *Cache // optional
	ttl     time.Duration
	log     *slog.Logger
	now     func() time.Time
	timeout time.Duration

	group singleflight.Group

	mu      sync.RWMutex
	current *catalog.Dataset
}

// NewLoader creates a loader. cache may be nil.
func NewLoader(fetcher Fetcher, cache *Cache, ttl time.Duration, log *slog.Logger) *Loader {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Loader{
		fetcher: fetcher,
		cache:   cache,
		ttl:     ttl,
		log:     log.With("component", "dataset"),
		now:     time.Now,
		timeout: flightTimeout,
	}
}

// Source returns the fetcher's source location.
func (l *Loader) Source() string {
	return l.fetcher.Source()
}

// Load returns the catalog, preferring the in-memory copy, then the
// SQLite cache, then the source. Concurrent misses share one fetch.
func (l *Loader) Load(ctx context.Context) (*catalog.Dataset, error) {
	if ds := l.fresh(); ds != nil {
		return ds, nil
	}

	v, err, _ := l.group.Do("load", func() (any, error) {
		ctx, cancel := l.flightContext(ctx)
		defer cancel()

		if ds := l.fresh(); ds != nil {
			return ds, nil
		}
		if ds := l.fromCache(ctx); ds != nil {
			l.setCurrent(ds)
			return ds, nil
		}
		return l.fetch(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.(*catalog.Dataset), nil
}

// Refresh fetches the source, bypassing both caches.
func (l *Loader) Refresh(ctx context.Context) (*catalog.Dataset, error) {
	v, err, _ := l.group.Do("refresh", func() (any, error) {
		ctx, cancel := l.flightContext(ctx)
		defer cancel()
		return l.fetch(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.(*catalog.Dataset), nil
}

// Purge drops the cached snapshot and the in-memory copy. The next Load
// fetches the source.
func (l *Loader) Purge(ctx context.Context) error {
	l.setCurrent(nil)
	if l.cache == nil {
		return nil
	}
	return l.cache.Delete(ctx, keyPrefixSource+l.fetcher.Source())
}

// Current returns the most recently loaded dataset without fetching.
func (l *Loader) Current() (*catalog.Dataset, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.current == nil {
		return nil, ErrNotLoaded
	}
	return l.current, nil
}

func (l *Loader) flightContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), l.timeout)
}

func (l *Loader) fresh() *catalog.Dataset {
	if l.ttl <= 0 {
		return nil
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.current == nil || !l.now().Before(l.current.FetchedAt.Add(l.ttl)) {
		return nil
	}
	return l.current
}

func (l *Loader) fromCache(ctx context.Context) *catalog.Dataset {
	if l.cache == nil || l.ttl <= 0 {
		return nil
	}

	key := keyPrefixSource + l.fetcher.Source()
	entry, ok := l.cache.Get(ctx, key)
	if !ok {
		l.log.Debug("cache miss", "source", l.fetcher.Source())
		return nil
	}

	titles, err := catalog.ParseBytes(entry.Value)
	if err != nil {
		// Treat an unreadable snapshot as a miss and fetch fresh data.
		l.log.Warn("failed to parse cached dataset", "source", l.fetcher.Source(), "error", err)
		return nil
	}

	l.log.Debug("cache hit", "source", l.fetcher.Source(), "rows", len(titles))
	return &catalog.Dataset{
		Titles:    titles,
		Source:    l.fetcher.Source(),
		FetchedAt: entry.FetchedAt,
		Cached:    true,
	}
}

func (l *Loader) fetch(ctx context.Context) (*catalog.Dataset, error) {
	src := l.fetcher.Source()

	data, err := l.fetcher.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", src, err)
	}

	titles, err := catalog.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", src, err)
	}

	ds := &catalog.Dataset{
		Titles:    titles,
		Source:    src,
		FetchedAt: l.now().UTC(),
	}

	if l.cache != nil && l.ttl > 0 {
		if err := l.cache.Set(ctx, keyPrefixSource+src, data, ds.FetchedAt, l.ttl); err != nil {
			l.log.Warn("failed to cache dataset", "source", src, "error", err)
		}
	}

	l.setCurrent(ds)
	l.log.Info("dataset loaded", "source", src, "rows", len(titles))
	return ds, nil
}

func (l *Loader) setCurrent(ds *catalog.Dataset) {
	l.mu.Lock()
	l.current = ds
	l.mu.Unlock()
}

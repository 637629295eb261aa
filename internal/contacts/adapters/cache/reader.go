// Package cache memoizes contact reads per filter tuple.
package cache

import (
	"context"
	"io"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/sirupsen/logrus"

	"contact-analytics-service/internal/contacts/core/domain"
	"contact-analytics-service/internal/contacts/core/ports"
)

const (
	DefaultTTL      = 5 * time.Minute
	DefaultStatsTTL = time.Hour
	statsKey        = "stats"
)

// Reader wraps a ContactReaderPort with TTL caches. Failed reads are not
// cached.
type Reader struct {
	next     ports.ContactReaderPort
	contacts *ttlcache.Cache[string, *domain.ContactSet]
	stats    *ttlcache.Cache[string, *domain.DatabaseStats]
	log      logrus.FieldLogger
}

var (
	_ ports.ContactReaderPort = (*Reader)(nil)
	_ ports.CacheInvalidator  = (*Reader)(nil)
)

// NewReader builds a caching reader. Non-positive TTLs fall back to the
// defaults; a nil logger discards output.
func NewReader(next ports.ContactReaderPort, ttl, statsTTL time.Duration, log logrus.FieldLogger) *Reader {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if statsTTL <= 0 {
		statsTTL = DefaultStatsTTL
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Reader{
		next: next,
		contacts: ttlcache.New[string, *domain.ContactSet](
			ttlcache.WithTTL[string, *domain.ContactSet](ttl),
			ttlcache.WithDisableTouchOnHit[string, *domain.ContactSet](),
		),
		stats: ttlcache.New[string, *domain.DatabaseStats](
			ttlcache.WithTTL[string, *domain.DatabaseStats](statsTTL),
			ttlcache.WithDisableTouchOnHit[string, *domain.DatabaseStats](),
		),
		log: log.WithField("component", "contact-cache"),
	}
}

// Start runs the expired item cleanup loops until Stop is called.
func (r *Reader) Start() {
	go r.contacts.Start()
	go r.stats.Start()
}

func (r *Reader) Stop() {
	r.contacts.Stop()
	r.stats.Stop()
}

func (r *Reader) FetchContacts(ctx context.Context, f ports.FetchFilter) (*domain.ContactSet, error) {
	key := f.Key()
	if item := r.contacts.Get(key); item != nil {
		r.log.WithField("key", key).Debug("contacts cache hit")
		return item.Value(), nil
	}

	r.log.WithField("key", key).Debug("contacts cache miss")
	set, err := r.next.FetchContacts(ctx, f)
	if err != nil {
		return nil, err
	}
	r.contacts.Set(key, set, ttlcache.DefaultTTL)
	return set, nil
}

func (r *Reader) DatabaseStats(ctx context.Context) (*domain.DatabaseStats, error) {
	if item := r.stats.Get(statsKey); item != nil {
		r.log.Debug("stats cache hit")
		return item.Value(), nil
	}

	r.log.Debug("stats cache miss")
	stats, err := r.next.DatabaseStats(ctx)
	if err != nil {
		return nil, err
	}
	r.stats.Set(statsKey, stats, ttlcache.DefaultTTL)
	return stats, nil
}

// Invalidate drops every cached read.
func (r *Reader) Invalidate() {
	r.contacts.DeleteAll()
	r.stats.DeleteAll()
	r.log.Info("caches invalidated")
}

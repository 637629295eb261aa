package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"

	_ "github.com/lib/pq"
)

var pingInitialInterval = 500 * time.Millisecond

type Pinger interface {
	PingContext(ctx context.Context) error
}

// Open opens the postgres pool and waits until it answers a ping.
func Open(ctx context.Context, dsn string, maxWait time.Duration, log logrus.FieldLogger) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := WaitReady(ctx, db, maxWait, log); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// WaitReady pings p with exponential backoff until it succeeds, maxWait
// elapses or ctx is done.
func WaitReady(ctx context.Context, p Pinger, maxWait time.Duration, log logrus.FieldLogger) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = pingInitialInterval
	bo.MaxElapsedTime = maxWait

	var lastErr error
	op := func() error {
		if err := p.PingContext(ctx); err != nil {
			lastErr = err
			if ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			return err
		}
		return nil
	}
	notify := func(err error, next time.Duration) {
		log.WithError(err).WithField("retry_in", next.String()).Warn("postgres not ready")
	}

	if err := backoff.RetryNotify(op, backoff.WithContext(bo, ctx), notify); err != nil {
		if lastErr == nil {
			lastErr = err
		}
		return fmt.Errorf("ping postgres: %w", lastErr)
	}
	return nil
}

package postgres

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

type fakePinger struct {
	failures int
	calls    int
}

func (f *fakePinger) PingContext(ctx context.Context) error {
	f.calls++
	if f.calls <= f.failures {
		return errors.New("connection refused")
	}
	return nil
}

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestWaitReady_RetriesUntilUp(t *testing.T) {
	pingInitialInterval = time.Millisecond
	p := &fakePinger{failures: 2}

	if err := WaitReady(context.Background(), p, time.Second, quietLogger()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.calls != 3 {
		t.Fatalf("expected 3 pings, got %d", p.calls)
	}
}

func TestWaitReady_GivesUp(t *testing.T) {
	pingInitialInterval = time.Millisecond
	p := &fakePinger{failures: 1 << 30}

	err := WaitReady(context.Background(), p, 20*time.Millisecond, quietLogger())
	if err == nil {
		t.Fatalf("expected error after max wait")
	}
	if p.calls < 2 {
		t.Fatalf("expected retries before giving up, got %d", p.calls)
	}
}

func TestWaitReady_StopsOnCancel(t *testing.T) {
	pingInitialInterval = time.Millisecond
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := WaitReady(ctx, &fakePinger{failures: 1 << 30}, time.Minute, quietLogger()); err == nil {
		t.Fatalf("expected error for cancelled context")
	}
}

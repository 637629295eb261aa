package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"contact-analytics-service/internal/contacts/core/domain"
	"contact-analytics-service/internal/contacts/core/ports"
)

type fakeReader struct {
	FetchFn    func(ctx context.Context, f ports.FetchFilter) (*domain.ContactSet, error)
	fetchCalls int
	statsCalls int
}

func (f *fakeReader) FetchContacts(ctx context.Context, flt ports.FetchFilter) (*domain.ContactSet, error) {
	f.fetchCalls++
	if f.FetchFn != nil {
		return f.FetchFn(ctx, flt)
	}
	return &domain.ContactSet{Columns: []string{domain.ColID}}, nil
}

func (f *fakeReader) DatabaseStats(ctx context.Context) (*domain.DatabaseStats, error) {
	f.statsCalls++
	return &domain.DatabaseStats{TotalRecords: int64(f.statsCalls)}, nil
}

func str(s string) *string { return &s }

// ------------------------------------------------------------
// HITS & MISSES
// ------------------------------------------------------------

func TestReader_CachesPerFilterTuple(t *testing.T) {
	next := &fakeReader{}
	r := NewReader(next, time.Minute, time.Minute, nil)
	ctx := context.Background()

	chat := ports.FetchFilter{Channel: str("Chat")}
	phone := ports.FetchFilter{Channel: str("Telefon")}

	for i := 0; i < 3; i++ {
		if _, err := r.FetchContacts(ctx, chat); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if next.fetchCalls != 1 {
		t.Fatalf("expected 1 store call for repeated filter, got %d", next.fetchCalls)
	}

	if _, err := r.FetchContacts(ctx, phone); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.fetchCalls != 2 {
		t.Fatalf("expected a miss for a different filter, got %d calls", next.fetchCalls)
	}
}

func TestReader_ExpiresAfterTTL(t *testing.T) {
	next := &fakeReader{}
	r := NewReader(next, 20*time.Millisecond, time.Minute, nil)
	ctx := context.Background()

	if _, err := r.FetchContacts(ctx, ports.FetchFilter{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	time.Sleep(40 * time.Millisecond)
	if _, err := r.FetchContacts(ctx, ports.FetchFilter{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.fetchCalls != 2 {
		t.Fatalf("expected refetch after expiry, got %d calls", next.fetchCalls)
	}
}

func TestReader_DoesNotCacheErrors(t *testing.T) {
	fail := true
	next := &fakeReader{
		FetchFn: func(ctx context.Context, f ports.FetchFilter) (*domain.ContactSet, error) {
			if fail {
				return nil, errors.New("db down")
			}
			return &domain.ContactSet{}, nil
		},
	}
	r := NewReader(next, time.Minute, time.Minute, nil)
	ctx := context.Background()

	if _, err := r.FetchContacts(ctx, ports.FetchFilter{}); err == nil {
		t.Fatalf("expected error")
	}
	fail = false
	if _, err := r.FetchContacts(ctx, ports.FetchFilter{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.fetchCalls != 2 {
		t.Fatalf("expected failed read to be retried, got %d calls", next.fetchCalls)
	}
}

// ------------------------------------------------------------
// INVALIDATE
// ------------------------------------------------------------

func TestReader_InvalidateClearsBothCaches(t *testing.T) {
	next := &fakeReader{}
	r := NewReader(next, time.Minute, time.Minute, nil)
	ctx := context.Background()

	_, _ = r.FetchContacts(ctx, ports.FetchFilter{})
	s1, _ := r.DatabaseStats(ctx)
	s2, _ := r.DatabaseStats(ctx)
	if s1.TotalRecords != 1 || s2.TotalRecords != 1 {
		t.Fatalf("expected cached stats, got %d and %d", s1.TotalRecords, s2.TotalRecords)
	}

	r.Invalidate()

	_, _ = r.FetchContacts(ctx, ports.FetchFilter{})
	s3, _ := r.DatabaseStats(ctx)
	if next.fetchCalls != 2 {
		t.Fatalf("expected refetch after invalidate, got %d calls", next.fetchCalls)
	}
	if s3.TotalRecords != 2 {
		t.Fatalf("expected fresh stats after invalidate, got %d", s3.TotalRecords)
	}
}

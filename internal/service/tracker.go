package service

import (
	"context"
	"errors"
	"sync"

	"github.com/YusovID/review-dashboard/internal/apperrors"
)

// Tracker lets a newer request cancel the older one running under the same
// key, so a stale response never overwrites a fresh one.
type Tracker struct {
	mu     sync.Mutex
	seq    uint64
	active map[string]flight
}

type flight struct {
	id     uint64
	cancel context.CancelCauseFunc
}

func NewTracker() *Tracker {
	return &Tracker{active: make(map[string]flight)}
}

// Begin registers a request under key, superseding any request still running
// under it. The returned done must be called when the request ends.
func (t *Tracker) Begin(ctx context.Context, key string) (context.Context, func()) {
	ctx, cancel := context.WithCancelCause(ctx)

	t.mu.Lock()

	t.seq++
	id := t.seq

	if prev, ok := t.active[key]; ok {
		prev.cancel(apperrors.ErrSuperseded)
	}

	t.active[key] = flight{id: id, cancel: cancel}

	t.mu.Unlock()

	done := func() {
		t.mu.Lock()
		if f, ok := t.active[key]; ok && f.id == id {
			delete(t.active, key)
		}
		t.mu.Unlock()

		cancel(nil)
	}

	return ctx, done
}

// Superseded reports whether ctx was cancelled by a newer request.
func Superseded(ctx context.Context) bool {
	return errors.Is(context.Cause(ctx), apperrors.ErrSuperseded)
}

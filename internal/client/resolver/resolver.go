// Package resolver answers what the signed-in viewer may see: role, company and seat counts.
package resolver

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"assethub/internal/client/session"
	"assethub/internal/domain/entity"

	"golang.org/x/sync/singleflight"
)

// LookupFunc asks the server for the viewer behind an email.
type LookupFunc func(ctx context.Context, email string) (*entity.Viewer, error)

// IdentitySource reports identity changes; *session.Session implements it.
type IdentitySource interface {
	Subscribe(fn func(*session.User)) (unsubscribe func())
}

// Resolver memoises one answer per email for the current session only.
type Resolver struct {
	lookup LookupFunc
	logger *slog.Logger

	flight singleflight.Group

	mu      sync.RWMutex
	viewers map[string]*entity.Viewer
	epoch   uint64
}

func New(lookup LookupFunc, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Resolver{
		lookup:  lookup,
		logger:  logger,
		viewers: make(map[string]*entity.Viewer),
	}
}

// Resolve returns the viewer for email. An empty email is a public visitor and costs no call.
// Concurrent resolves of one email share a single lookup.
func (r *Resolver) Resolve(ctx context.Context, email string) (*entity.Viewer, error) {
	key := strings.ToLower(strings.TrimSpace(email))
	if key == "" {
		return &entity.Viewer{Role: entity.RoleNone}, nil
	}

	r.mu.RLock()
	viewer, ok := r.viewers[key]
	r.mu.RUnlock()
	if ok {
		return viewer, nil
	}

	// The shared lookup outlives any single caller's cancellation.
	shared := context.WithoutCancel(ctx)
	ch := r.flight.DoChan(key, func() (any, error) {
		r.mu.RLock()
		epoch := r.epoch
		r.mu.RUnlock()

		viewer, err := r.lookup(shared, email)
		if err != nil {
			return nil, err
		}
		if viewer == nil {
			viewer = &entity.Viewer{Email: email, Role: entity.RoleNone}
		}

		r.mu.Lock()
		// Drop answers that started before a reset or an invalidation.
		if epoch == r.epoch {
			r.viewers[key] = viewer
		}
		r.mu.Unlock()

		return viewer, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			r.logger.WarnContext(ctx, "Failed to resolve viewer", slog.String("email", key), slog.Any("error", res.Err))

			return nil, res.Err
		}

		return res.Val.(*entity.Viewer), nil
	}
}

// Invalidate forgets the answer for one email, e.g. after a purchase changed the member limit.
func (r *Resolver) Invalidate(email string) {
	key := strings.ToLower(strings.TrimSpace(email))

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.viewers, key)
	r.epoch++
	r.flight.Forget(key)
}

// Reset forgets every answer.
func (r *Resolver) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.viewers = make(map[string]*entity.Viewer)
	r.epoch++
}

// Bind resets the resolver on every identity change so no answer survives a sign-out.
func (r *Resolver) Bind(source IdentitySource) (unbind func()) {
	var (
		mu      sync.Mutex
		current string
		first   = true
	)

	return source.Subscribe(func(user *session.User) {
		email := ""
		if user != nil {
			email = user.Email
		}

		mu.Lock()
		defer mu.Unlock()

		if first {
			first = false
			current = email

			return
		}
		if !strings.EqualFold(current, email) || email == "" {
			r.Reset()
		}
		current = email
	})
}

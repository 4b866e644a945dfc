// Package action runs the client's state-changing calls: confirm when destructive, call the
// server, toast the outcome and re-fetch the list that showed the resource. Lists are never
// patched locally.
package action

import (
	"context"
	"log/slog"

	"assethub/internal/errors"
)

// ErrDeclined is returned when the user declines a confirmation; nothing was sent.
var ErrDeclined = errors.New("action declined")

// Notifier shows transient success and error messages.
type Notifier interface {
	Success(message string)
	Error(message string, err error)
}

// Confirmer asks the user before a destructive call.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// Action is one state-changing call.
type Action struct {
	Name string
	// Key is the shortcut the list views bind the action to.
	Key     string
	Success string
	// Confirm is the prompt of a destructive action; empty means no confirmation.
	Confirm string
	Do      func(ctx context.Context) error
}

// Destructive reports whether the action asks before running.
func (a Action) Destructive() bool {
	return a.Confirm != ""
}

// RefetchFunc reloads the list that displayed the resource.
type RefetchFunc func(ctx context.Context) error

type Runner struct {
	notifier  Notifier
	confirmer Confirmer
	logger    *slog.Logger
}

func NewRunner(notifier Notifier, confirmer Confirmer, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Runner{notifier: notifier, confirmer: confirmer, logger: logger}
}

// Run executes a. A refetch failure after a successful call is notified but not rolled back,
// and Run still reports success.
func (r *Runner) Run(ctx context.Context, a Action, refetch RefetchFunc) error {
	if a.Destructive() {
		ok, err := r.confirmer.Confirm(ctx, a.Confirm)
		if err != nil {
			return errors.Wrap(err, "confirm "+a.Name)
		}
		if !ok {
			return ErrDeclined
		}
	}

	if err := a.Do(ctx); err != nil {
		r.logger.WarnContext(ctx, "Action failed", slog.String("action", a.Name), slog.Any("error", err))
		r.notifier.Error(failureMessage(a.Name), err)

		return err
	}

	r.notifier.Success(a.Success)

	if refetch != nil {
		if err := refetch(ctx); err != nil {
			r.logger.WarnContext(ctx, "Refetch after action failed", slog.String("action", a.Name), slog.Any("error", err))
			r.notifier.Error("Could not refresh the list", err)
		}
	}

	return nil
}

func failureMessage(name string) string {
	return "Failed to " + name
}

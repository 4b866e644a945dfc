package cli

import (
	"context"

	"assethub/internal/errors"

	"github.com/charmbracelet/huh"
)

// FormConfirmer asks with an inline yes/no form. Aborting the form counts as declining.
type FormConfirmer struct {
	Accessible bool
}

func (c FormConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	var ok bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(prompt).
			Affirmative("Yes").
			Negative("No").
			Value(&ok),
	)).WithAccessible(c.Accessible)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}

		return false, errors.Wrap(err, "confirm form")
	}

	return ok, nil
}

// Assume answers every confirmation the same way, for --yes and for prompts already answered.
type Assume bool

func (a Assume) Confirm(context.Context, string) (bool, error) {
	return bool(a), nil
}

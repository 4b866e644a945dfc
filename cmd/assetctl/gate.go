package main

import (
	"context"

	"assethub/internal/client/guard"
	"assethub/internal/domain/entity"
	"assethub/internal/errors"
)

const (
	routeAnnotation = "route"
	roleAnnotation  = "role"
)

var errAccessDenied = errors.New("sign in with an account that may use this command")

// gate applies the route guard to a command before it runs. A redirect becomes a login
// prompt, after which the command resumes at the location carried by the login URL.
type gate struct {
	email  func() string
	lookup func(ctx context.Context, email string) (*entity.Viewer, error)
	login  func(ctx context.Context, email string) error
	notice func(message string)
	// interactive is false when prompts are not possible; redirects then fail.
	interactive bool
}

func (g gate) enter(ctx context.Context, route guard.Route) (*entity.Viewer, error) {
	prompted := false
	for {
		state := guard.State{Email: g.email()}
		viewer := &entity.Viewer{Role: entity.RoleNone}
		if state.Email != "" && route.Role != entity.RoleNone {
			v, err := g.lookup(ctx, state.Email)
			if err != nil {
				return nil, errors.Wrap(err, "resolve role")
			}
			viewer = v
			state.Role = v.Role
		} else if state.Email != "" {
			viewer.Email = state.Email
		}

		result := guard.Evaluate(state, route, route.Path)
		switch result.Decision {
		case guard.Allow:
			return viewer, nil
		case guard.Redirect:
			if prompted || !g.interactive {
				return nil, errAccessDenied
			}
			prompted = true

			target := guard.ReturnTo(result.Location)
			if state.Email != "" {
				g.notice("Your account cannot open " + target + ". Sign in as " + route.Role.String() + " to continue.")
			} else {
				g.notice("Sign in to continue to " + target)
			}

			if err := g.login(ctx, ""); err != nil {
				return nil, err
			}
		default:
			return nil, errors.New("session is still loading")
		}
	}
}

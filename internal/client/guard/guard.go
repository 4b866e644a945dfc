// Package guard decides whether a viewer may enter a route, must wait for resolution,
// or is sent to the login route with the requested location preserved.
package guard

import (
	"net/url"
	"strings"

	"assethub/internal/domain/entity"
)

const (
	LoginPath = "/login"
	fromParam = "from"
	homePath  = "/"
)

// Route is a guarded location. An empty Role only requires a signed-in user.
type Route struct {
	Path string
	Role entity.Role
}

// Private requires a signed-in user.
func Private(path string) Route {
	return Route{Path: path}
}

// RoleOnly requires a signed-in user holding role.
func RoleOnly(path string, role entity.Role) Route {
	return Route{Path: path, Role: role}
}

// State is what the guard knows about the viewer.
type State struct {
	// IdentityPending is true while the session is being restored.
	IdentityPending bool
	Email           string
	// RolePending is true while the role resolver is in flight.
	RolePending bool
	Role        entity.Role
}

type Decision int

const (
	Pending Decision = iota
	Allow
	Redirect
)

func (d Decision) String() string {
	switch d {
	case Pending:
		return "pending"
	case Allow:
		return "allow"
	default:
		return "redirect"
	}
}

// Result carries the redirect target when the decision is Redirect.
type Result struct {
	Decision Decision
	Location string
}

// Evaluate decides access to route for a viewer who asked for requested.
func Evaluate(state State, route Route, requested string) Result {
	if state.IdentityPending {
		return Result{Decision: Pending}
	}
	if state.Email == "" {
		return redirect(requested)
	}
	if route.Role == entity.RoleNone {
		return Result{Decision: Allow}
	}
	if state.RolePending {
		return Result{Decision: Pending}
	}
	if state.Role != route.Role {
		return redirect(requested)
	}

	return Result{Decision: Allow}
}

func redirect(requested string) Result {
	return Result{Decision: Redirect, Location: LoginURL(requested)}
}

// LoginURL is the login route carrying the location to come back to.
func LoginURL(requested string) string {
	if !isLocal(requested) {
		return LoginPath
	}

	return LoginPath + "?" + url.Values{fromParam: {requested}}.Encode()
}

// ReturnTo extracts where to go after login. External or malformed locations fall back to "/".
func ReturnTo(loginURL string) string {
	parsed, err := url.Parse(loginURL)
	if err != nil {
		return homePath
	}

	from := parsed.Query().Get(fromParam)
	if !isLocal(from) {
		return homePath
	}

	return from
}

// isLocal accepts only same-origin absolute paths such as /assets?page=2.
func isLocal(location string) bool {
	if !strings.HasPrefix(location, "/") || strings.HasPrefix(location, "//") || strings.HasPrefix(location, "/\\") {
		return false
	}

	parsed, err := url.Parse(location)
	if err != nil {
		return false
	}

	return parsed.Scheme == "" && parsed.Host == ""
}

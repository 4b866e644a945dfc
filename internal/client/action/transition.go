package action

import (
	"slices"
	"strings"

	"assethub/internal/domain/entity"
)

// ErrTransitionNotAllowed is returned locally, without a network call, for actions the request cannot take.
var ErrTransitionNotAllowed = entity.ErrTransitionNotAllowed

// Transitions lists the request actions the viewer may trigger; views render only these.
func Transitions(viewer *entity.Viewer, req *entity.AssetRequest) []entity.RequestAction {
	if viewer == nil || req == nil {
		return nil
	}

	email := viewer.Email
	if strings.EqualFold(email, req.RequesterEmail) {
		email = req.RequesterEmail
	}

	return req.ActionsFor(viewer.Role, email)
}

// CheckTransition rejects any action outside Transitions.
func CheckTransition(viewer *entity.Viewer, req *entity.AssetRequest, action entity.RequestAction) error {
	if !slices.Contains(Transitions(viewer, req), action) {
		return ErrTransitionNotAllowed
	}

	return nil
}

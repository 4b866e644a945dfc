package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// RequestStatus is the lifecycle state of an asset request.
type RequestStatus string

const (
	StatusPending   RequestStatus = "pending"
	StatusApproved  RequestStatus = "approved"
	StatusRejected  RequestStatus = "rejected"
	StatusCancelled RequestStatus = "cancelled"
	StatusReturned  RequestStatus = "returned"
)

// IsValid reports whether s is a known status.
func (s RequestStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled, StatusReturned:
		return true
	default:
		return false
	}
}

// RequestAction is a state-changing operation on an asset request.
type RequestAction string

const (
	ActionApprove RequestAction = "approve"
	ActionReject  RequestAction = "reject"
	ActionCancel  RequestAction = "cancel"
	ActionReturn  RequestAction = "return"
)

// ErrTransitionNotAllowed is returned when an action does not apply to a request in its current state.
var ErrTransitionNotAllowed = errors.New("status transition not allowed")

// AssetRequest is an employee's request for one unit of an asset.
type AssetRequest struct {
	ID              uuid.UUID     `json:"id"`
	AssetID         uuid.UUID     `json:"assetId"`
	AssetName       string        `json:"assetName"`
	AssetType       ProductType   `json:"assetType"`
	RequestDate     time.Time     `json:"requestDate"`
	ApprovalDate    *time.Time    `json:"approvalDate,omitempty"`
	Status          RequestStatus `json:"status"`
	RequesterName   string        `json:"requesterName"`
	RequesterEmail  string        `json:"requesterEmail"`
	CompanyName     string        `json:"companyName"`
	AdditionalNotes string        `json:"additionalNotes,omitempty"`
}

// Next returns the status an action leads to from the request's current state,
// or ErrTransitionNotAllowed when the action is not part of the lifecycle here.
func (r *AssetRequest) Next(action RequestAction) (RequestStatus, error) {
	switch {
	case r.Status == StatusPending && action == ActionApprove:
		return StatusApproved, nil
	case r.Status == StatusPending && action == ActionReject:
		return StatusRejected, nil
	case r.Status == StatusPending && action == ActionCancel:
		return StatusCancelled, nil
	case r.Status == StatusApproved && action == ActionReturn && r.AssetType == ProductReturnable:
		return StatusReturned, nil
	default:
		return "", ErrTransitionNotAllowed
	}
}

// CanReturn reports whether the request is an approved loan of a returnable asset.
func (r *AssetRequest) CanReturn() bool {
	_, err := r.Next(ActionReturn)

	return err == nil
}

// IsTerminal reports whether no further transition can apply.
func (r *AssetRequest) IsTerminal() bool {
	switch r.Status {
	case StatusRejected, StatusCancelled, StatusReturned:
		return true
	case StatusApproved:
		return r.AssetType != ProductReturnable
	default:
		return false
	}
}

// ActionsFor lists the transitions a viewer may trigger on the request.
// HR decides pending requests; the requester may cancel while pending and return an approved returnable asset.
func (r *AssetRequest) ActionsFor(role Role, email string) []RequestAction {
	var actions []RequestAction
	switch role {
	case RoleHR:
		if r.Status == StatusPending {
			actions = append(actions, ActionApprove, ActionReject)
		}
	case RoleEmployee:
		if email != r.RequesterEmail {
			return nil
		}
		if r.Status == StatusPending {
			actions = append(actions, ActionCancel)
		}
		if r.CanReturn() {
			actions = append(actions, ActionReturn)
		}
	}

	return actions
}

// RequestQuery carries the server-side filters for request lists.
type RequestQuery struct {
	Search string
	Status RequestStatus
	Type   ProductType
}

package action

import (
	"context"
	"strconv"

	"assethub/internal/domain/entity"
	"assethub/internal/usecase"

	"github.com/google/uuid"
)

// RequestAPI is the request lifecycle part of the REST API.
type RequestAPI interface {
	CreateRequest(ctx context.Context, input usecase.CreateRequestInput) (*entity.AssetRequest, error)
	DecideRequest(ctx context.Context, id uuid.UUID, status entity.RequestStatus) (*entity.AssetRequest, error)
	CancelRequest(ctx context.Context, id uuid.UUID) (*entity.AssetRequest, error)
	ReturnAsset(ctx context.Context, id uuid.UUID) (*entity.AssetRequest, error)
}

// AssetAPI is the inventory part of the REST API.
type AssetAPI interface {
	AddAsset(ctx context.Context, input usecase.AssetInput) (*entity.Asset, error)
	UpdateAsset(ctx context.Context, id uuid.UUID, input usecase.AssetInput) (*entity.Asset, error)
	DeleteAsset(ctx context.Context, id uuid.UUID) error
}

// TeamAPI is the membership part of the REST API.
type TeamAPI interface {
	AddEmployees(ctx context.Context, ids []uuid.UUID) (*entity.Viewer, error)
	RemoveEmployee(ctx context.Context, id uuid.UUID, hrEmail string) error
}

// ForRequest builds the action for a lifecycle step, refusing locally what the request cannot do.
func ForRequest(api RequestAPI, viewer *entity.Viewer, req *entity.AssetRequest, act entity.RequestAction) (Action, error) {
	if err := CheckTransition(viewer, req, act); err != nil {
		return Action{}, err
	}

	id := req.ID
	switch act {
	case entity.ActionApprove:
		return Action{
			Name:    "approve request",
			Key:     "a",
			Success: "Request approved",
			Do:      discard(func(ctx context.Context) (*entity.AssetRequest, error) { return api.DecideRequest(ctx, id, entity.StatusApproved) }),
		}, nil
	case entity.ActionReject:
		return Action{
			Name:    "reject request",
			Key:     "r",
			Success: "Request rejected",
			Do:      discard(func(ctx context.Context) (*entity.AssetRequest, error) { return api.DecideRequest(ctx, id, entity.StatusRejected) }),
		}, nil
	case entity.ActionCancel:
		return Action{
			Name:    "cancel request",
			Key:     "c",
			Success: "Request cancelled",
			Do:      discard(func(ctx context.Context) (*entity.AssetRequest, error) { return api.CancelRequest(ctx, id) }),
		}, nil
	default:
		return Action{
			Name:    "return asset",
			Key:     "t",
			Success: req.AssetName + " returned",
			Do:      discard(func(ctx context.Context) (*entity.AssetRequest, error) { return api.ReturnAsset(ctx, id) }),
		}, nil
	}
}

// RequestActions builds every action the viewer may take on req.
func RequestActions(api RequestAPI, viewer *entity.Viewer, req *entity.AssetRequest) []Action {
	transitions := Transitions(viewer, req)
	actions := make([]Action, 0, len(transitions))
	for _, act := range transitions {
		a, err := ForRequest(api, viewer, req, act)
		if err != nil {
			continue
		}
		actions = append(actions, a)
	}

	return actions
}

// CreateRequest asks for one unit of an asset.
func CreateRequest(api RequestAPI, asset *entity.Asset, notes string) Action {
	input := usecase.CreateRequestInput{AssetID: asset.ID, AdditionalNotes: notes}

	return Action{
		Name:    "request " + asset.ProductName,
		Key:     "enter",
		Success: "Requested " + asset.ProductName,
		Do: func(ctx context.Context) error {
			_, err := api.CreateRequest(ctx, input)

			return err
		},
	}
}

// DeleteAsset removes an asset after confirmation.
func DeleteAsset(api AssetAPI, asset *entity.Asset) Action {
	id := asset.ID

	return Action{
		Name:    "delete asset",
		Key:     "d",
		Success: asset.ProductName + " deleted",
		Confirm: "Delete " + asset.ProductName + "? This cannot be undone.",
		Do: func(ctx context.Context) error {
			return api.DeleteAsset(ctx, id)
		},
	}
}

// SaveAsset adds an asset, or updates it when id is non-nil.
func SaveAsset(api AssetAPI, id *uuid.UUID, input usecase.AssetInput) Action {
	if id == nil {
		return Action{
			Name:    "add asset",
			Success: input.ProductName + " added",
			Do: func(ctx context.Context) error {
				_, err := api.AddAsset(ctx, input)

				return err
			},
		}
	}

	assetID := *id

	return Action{
		Name:    "update asset",
		Success: input.ProductName + " updated",
		Do: func(ctx context.Context) error {
			_, err := api.UpdateAsset(ctx, assetID, input)

			return err
		},
	}
}

// RemoveEmployee detaches an employee from the HR manager's company after confirmation.
func RemoveEmployee(api TeamAPI, hrEmail string, employee *entity.User) Action {
	id := employee.ID

	return Action{
		Name:    "remove employee",
		Key:     "d",
		Success: employee.Name + " removed from the team",
		Confirm: "Remove " + employee.Name + " from the team?",
		Do: func(ctx context.Context) error {
			return api.RemoveEmployee(ctx, id, hrEmail)
		},
	}
}

// AddEmployees onboards the selected unaffiliated employees.
func AddEmployees(api TeamAPI, ids []uuid.UUID) Action {
	selected := append([]uuid.UUID(nil), ids...)

	return Action{
		Name:    "add employees",
		Key:     "enter",
		Success: "Added " + strconv.Itoa(len(selected)) + " employee(s)",
		Do: func(ctx context.Context) error {
			_, err := api.AddEmployees(ctx, selected)

			return err
		},
	}
}

func discard[T any](call func(ctx context.Context) (T, error)) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		_, err := call(ctx)

		return err
	}
}

package main

import (
	"os"
	"strconv"
	"strings"

	"assethub/internal/client/action"
	"assethub/internal/client/views"
	"assethub/internal/domain/entity"
	"assethub/internal/errors"
	"assethub/internal/usecase"
	"assethub/internal/util"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newHRCmd(a *app) *cobra.Command {
	hr := &cobra.Command{
		Use:   "hr",
		Short: "HR manager commands",
	}

	hr.AddCommand(
		guarded(browseCmd(a, "assets", "Browse the asset inventory", views.Inventory), "/hr/assets", entity.RoleHR),
		guarded(browseCmd(a, "requests", "Browse every asset request", views.AllRequests), "/hr/requests", entity.RoleHR),
		guarded(browseCmd(a, "pending", "Approve or reject pending requests", views.Pending), "/hr/pending", entity.RoleHR),
		guarded(browseCmd(a, "team", "Browse and remove team members", views.Team), "/hr/team", entity.RoleHR),
		guarded(browseCmd(a, "add-employees", "Add unaffiliated employees to the team", views.Unaffiliated), "/hr/add-employees", entity.RoleHR),
		guarded(newStatsCmd(a), "/hr/stats", entity.RoleHR),
		guarded(newLabelCmd(a), "/hr/label", entity.RoleHR),
		newAssetCmd(a),
	)

	return hr
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarise requests and stock",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats, err := a.api.Stats(cmd.Context(), a.viewer.Email)
			if err != nil {
				return err
			}

			a.out.Heading("Requests")
			a.out.Table([]string{"Pending", "Returnable", "Non-returnable"}, [][]string{{
				strconv.Itoa(stats.PendingRequests),
				strconv.Itoa(stats.ReturnableRequests),
				strconv.Itoa(stats.NonReturnableRequests),
			}})

			if len(stats.TopRequested) > 0 {
				a.out.Heading("Most requested")
				rows := make([][]string, len(stats.TopRequested))
				for i, name := range stats.TopRequested {
					rows[i] = []string{strconv.Itoa(i + 1), name}
				}
				a.out.Table([]string{"#", "Asset"}, rows)
			}

			if len(stats.LimitedStock) > 0 {
				a.out.Heading("Limited stock")
				rows := make([][]string, len(stats.LimitedStock))
				for i, asset := range stats.LimitedStock {
					rows[i] = []string{asset.ProductName, strconv.Itoa(asset.ProductQuantity)}
				}
				a.out.Table([]string{"Asset", "Qty"}, rows)
			}

			return nil
		},
	}
}

func newLabelCmd(a *app) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "label <asset-id>",
		Short: "Save the QR code label of an asset as PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			png, err := a.api.AssetLabel(cmd.Context(), id)
			if err != nil {
				return err
			}

			if out == "" {
				out = "asset-" + id.String() + ".png"
			}
			if err := os.WriteFile(out, png, 0o644); err != nil {
				return errors.Wrap(err, "write label")
			}
			a.out.Success("Label saved to " + out + " (" + util.FormatBytes(int64(len(png))) + ")")

			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file")

	return cmd
}

type assetFlags struct {
	name     string
	kind     string
	quantity int
	image    string
}

func (f *assetFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "product name")
	cmd.Flags().StringVar(&f.kind, "type", string(entity.ProductReturnable), "Returnable or Non-returnable")
	cmd.Flags().IntVar(&f.quantity, "quantity", 0, "units in stock")
	cmd.Flags().StringVar(&f.image, "image", "", "image URL")
}

func (f *assetFlags) input() (usecase.AssetInput, error) {
	kind := entity.ProductType(f.kind)
	if !kind.IsValid() {
		return usecase.AssetInput{}, errors.Errorf("type must be %q or %q", entity.ProductReturnable, entity.ProductNonReturnable)
	}
	if strings.TrimSpace(f.name) == "" {
		return usecase.AssetInput{}, errors.New("name is required")
	}
	if f.quantity < 0 {
		return usecase.AssetInput{}, errors.New("quantity cannot be negative")
	}

	return usecase.AssetInput{ProductName: strings.TrimSpace(f.name), ProductType: kind, ProductQuantity: f.quantity, Image: f.image}, nil
}

func newAssetCmd(a *app) *cobra.Command {
	asset := &cobra.Command{
		Use:   "asset",
		Short: "Add, update or delete one asset",
	}

	var add assetFlags
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add an asset to the inventory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input, err := add.input()
			if err != nil {
				return err
			}

			return a.runner.Run(cmd.Context(), action.SaveAsset(a.api, nil, input), nil)
		},
	}
	add.bind(addCmd)

	var update assetFlags
	updateCmd := &cobra.Command{
		Use:   "update <asset-id>",
		Short: "Replace an asset's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			input, err := update.input()
			if err != nil {
				return err
			}

			return a.runner.Run(cmd.Context(), action.SaveAsset(a.api, &id, input), nil)
		},
	}
	update.bind(updateCmd)

	deleteCmd := &cobra.Command{
		Use:   "delete <asset-id>",
		Short: "Delete an asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			err = a.runner.Run(cmd.Context(), action.DeleteAsset(a.api, &entity.Asset{ID: id, ProductName: "asset " + id.String()}), nil)
			if errors.Is(err, action.ErrDeclined) {
				return nil
			}

			return err
		},
	}

	asset.AddCommand(
		guarded(addCmd, "/hr/assets/new", entity.RoleHR),
		guarded(updateCmd, "/hr/assets/edit", entity.RoleHR),
		guarded(deleteCmd, "/hr/assets/delete", entity.RoleHR),
	)

	return asset
}

func parseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, errors.Errorf("%q is not a valid id", s)
	}

	return id, nil
}

package main

import (
	"context"
	"strconv"

	"assethub/internal/client/action"
	"assethub/internal/domain/entity"
	"assethub/internal/errors"
	"assethub/internal/util"

	"github.com/spf13/cobra"
)

func newPackagesCmd(a *app) *cobra.Command {
	packages := &cobra.Command{
		Use:   "packages",
		Short: "List member-limit packages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := a.api.Packages(cmd.Context())
			if err != nil {
				return err
			}

			rows := make([][]string, len(list))
			for i, p := range list {
				rows[i] = []string{p.Name, strconv.Itoa(p.MemberLimit), util.FormatAmount(p.Price*100, "usd")}
			}
			a.out.Table([]string{"Package", "Members", "Price"}, rows)

			return nil
		},
	}

	packages.AddCommand(
		guarded(newPayCmd(a), "/hr/payment", entity.RoleHR),
		guarded(newPaymentsCmd(a), "/hr/payments", entity.RoleHR),
	)

	return packages
}

func newPayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pay <package>",
		Short: "Buy a package to raise the member limit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			pkg, ok := entity.FindPackage(args[0])
			if !ok {
				return errors.Errorf("unknown package %q", args[0])
			}

			intent, err := a.api.CreatePaymentIntent(ctx, pkg.Name)
			if err != nil {
				return err
			}
			a.out.Heading("Payment " + intent.ID + ": " + util.FormatAmount(intent.Amount, intent.Currency))
			a.out.Notice("Confirm the card payment with client secret " + intent.ClientSecret)

			record := action.Action{
				Name:    "record payment",
				Success: "Package " + pkg.Name + " active: up to " + strconv.Itoa(pkg.MemberLimit) + " members",
				Confirm: "Has payment " + intent.ID + " completed?",
				Do: func(ctx context.Context) error {
					if _, err := a.api.RecordPayment(ctx, pkg.Name, intent.ID); err != nil {
						return err
					}
					a.resolver.Invalidate(a.viewer.Email)

					return nil
				},
			}

			err = a.runner.Run(ctx, record, nil)
			if errors.Is(err, action.ErrDeclined) {
				a.out.Notice("Payment not recorded; run the command again once it completes")

				return nil
			}

			return err
		},
	}
}

func newPaymentsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List past package payments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			payments, err := a.api.Payments(cmd.Context(), a.viewer.Email)
			if err != nil {
				return err
			}
			if len(payments) == 0 {
				a.out.Notice("No payments yet")

				return nil
			}

			rows := make([][]string, len(payments))
			for i, p := range payments {
				rows[i] = []string{p.PaidAt.Format("2006-01-02"), p.PackageName, util.FormatAmount(p.Price*100, "usd"), p.TransactionID}
			}
			a.out.Table([]string{"Date", "Package", "Price", "Transaction"}, rows)

			return nil
		},
	}
}

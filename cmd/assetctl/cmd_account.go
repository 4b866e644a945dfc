package main

import (
	"strings"
	"time"

	"assethub/internal/cli"
	"assethub/internal/util"

	"github.com/spf13/cobra"
)

func newLoginCmd(a *app) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with email and password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.login(cmd.Context(), email)
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "pre-fill the email field")

	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.session.SignOut(cmd.Context()); err != nil {
				return err
			}
			a.out.Success("Signed out")

			return nil
		},
	}
}

func newSignupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "signup",
		Short: "Create an employee or HR manager account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			input, err := cli.PromptSignUp(ctx, a.opts.accessible)
			if err != nil {
				return err
			}

			user, err := a.session.SignUp(ctx, input)
			if err != nil {
				return err
			}
			a.out.Success("Welcome, " + user.Name)

			if input.PackageName != "" {
				a.out.Notice("Run `assetctl packages pay " + input.PackageName + "` to activate your member limit")
			}

			return nil
		},
	}
}

func newProfileCmd(a *app) *cobra.Command {
	var name, photo string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Update your display name and photo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			current := a.session.Current()
			if strings.TrimSpace(name) == "" {
				name = current.DisplayName
			}
			if photo == "" {
				photo = current.PhotoURL
			}

			user, err := a.session.UpdateProfile(cmd.Context(), name, photo)
			if err != nil {
				return err
			}
			a.out.Success("Profile updated for " + user.Name)

			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "new display name")
	cmd.Flags().StringVar(&photo, "photo", "", "new photo URL")

	return guarded(cmd, "/profile", "")
}

func newWhoamiCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account, role and company",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			viewer, err := a.currentViewer(cmd.Context())
			if err != nil {
				return err
			}

			company := "none"
			if viewer.HasCompany() {
				company = *viewer.CompanyName
			}
			role := viewer.Role.String()
			if role == "" {
				role = "none"
			}

			expires := "unknown"
			if at := a.session.ExpiresAt(); !at.IsZero() {
				expires = "in " + util.FormatDuration(time.Until(at))
			}

			a.out.Table([]string{"Email", "Role", "Company", "Session expires"}, [][]string{{viewer.Email, role, company, expires}})

			return nil
		},
	}

	return guarded(cmd, "/whoami", "")
}

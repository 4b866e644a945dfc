package main

import (
	"io"

	"assethub/internal/cli"
	"assethub/internal/client/guard"
	"assethub/internal/client/views"
	"assethub/internal/domain/entity"

	"github.com/spf13/cobra"
)

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		opts    options
		noInput bool
		a       = new(app)
	)

	root := &cobra.Command{
		Use:           "assetctl",
		Short:         "Manage company assets, requests and teams from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			built, err := newApp(cmd.Context(), opts, stdout, stderr)
			if err != nil {
				return err
			}
			*a = *built

			path, guarded := cmd.Annotations[routeAnnotation]
			if !guarded {
				return nil
			}

			g := gate{
				email:       a.session.Email,
				lookup:      a.resolver.Resolve,
				login:       a.login,
				notice:      a.out.Notice,
				interactive: !noInput,
			}
			viewer, err := g.enter(cmd.Context(), guard.Route{Path: path, Role: entity.ParseRole(cmd.Annotations[roleAnnotation])})
			if err != nil {
				return err
			}
			a.viewer = viewer

			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			a.close()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to a config directory or .yaml file")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	flags.BoolVar(&opts.accessible, "accessible", false, "use plain prompts for screen readers")
	flags.BoolVarP(&opts.yes, "yes", "y", false, "answer yes to confirmations")
	flags.BoolVar(&noInput, "no-input", false, "fail instead of prompting to sign in")

	root.AddCommand(
		newLoginCmd(a),
		newLogoutCmd(a),
		newSignupCmd(a),
		newProfileCmd(a),
		newWhoamiCmd(a),
		newPackagesCmd(a),
		newHRCmd(a),
		newEmployeeCmd(a),
	)

	return root
}

// guarded marks cmd as the route path, optionally restricted to role.
func guarded(cmd *cobra.Command, path string, role entity.Role) *cobra.Command {
	if cmd.Annotations == nil {
		cmd.Annotations = map[string]string{}
	}
	cmd.Annotations[routeAnnotation] = path
	if role != entity.RoleNone {
		cmd.Annotations[roleAnnotation] = role.String()
	}

	return cmd
}

// browseCmd opens a list view for the viewer the gate resolved.
func browseCmd(a *app, use, short string, build func(views.Backend, *entity.Viewer) views.List) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cli.Browse(cmd.Context(), build(a.api, a.viewer), a.logger)
		},
	}
}

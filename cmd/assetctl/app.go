package main

import (
	"context"
	"io"
	"log/slog"

	"assethub/config"
	"assethub/internal/cli"
	"assethub/internal/client/action"
	"assethub/internal/client/api"
	"assethub/internal/client/httpclient"
	"assethub/internal/client/resolver"
	"assethub/internal/client/session"
	"assethub/internal/domain/entity"
	"assethub/internal/errors"
	logs "assethub/internal/infra/log"
)

type options struct {
	configPath string
	logLevel   string
	accessible bool
	yes        bool
}

// app is the client stack shared by every command, built once per invocation.
type app struct {
	logger   *slog.Logger
	api      *api.Client
	session  *session.Session
	resolver *resolver.Resolver
	out      *cli.Printer
	runner   *action.Runner
	opts     options
	unbind   func()

	// viewer is set by the route gate before a guarded command runs.
	viewer *entity.Viewer
}

func newApp(ctx context.Context, opts options, stdout, stderr io.Writer) (*app, error) {
	var paths []string
	if opts.configPath != "" {
		paths = append(paths, opts.configPath)
	}
	cfg, err := config.NewClient(paths...)
	if err != nil {
		return nil, errors.Wrap(err, "load client config")
	}

	logger, err := logs.NewCLI(stderr, opts.logLevel)
	if err != nil {
		return nil, errors.Wrap(err, "create logger")
	}

	httpClient, err := httpclient.New(cfg.BaseURL, cfg.Timeout, logger)
	if err != nil {
		return nil, errors.Wrap(err, "create http client")
	}
	client := api.New(httpClient)

	provider, err := session.NewFirebaseProvider(ctx, cfg.FirebaseAPIKey)
	if err != nil {
		return nil, errors.Wrap(err, "create identity provider")
	}

	sess := session.New(session.Options{
		Provider: provider,
		Backend:  client,
		Tokens:   httpClient,
		Store:    session.NewStore(cfg.SessionFile),
		Logger:   logger,
	})
	if restored, err := sess.Restore(ctx); err != nil {
		logger.WarnContext(ctx, "Could not restore session", slog.Any("error", err))
	} else if restored {
		logger.DebugContext(ctx, "Session restored", slog.String("email", sess.Email()))
	}

	roles := resolver.New(client.Role, logger)

	var confirmer action.Confirmer = cli.FormConfirmer{Accessible: opts.accessible}
	if opts.yes {
		confirmer = cli.Assume(true)
	}
	out := cli.NewPrinter(stdout)

	return &app{
		logger:   logger,
		api:      client,
		session:  sess,
		resolver: roles,
		out:      out,
		runner:   action.NewRunner(out, confirmer, logger),
		opts:     opts,
		unbind:   roles.Bind(sess),
	}, nil
}

func (a *app) close() {
	if a.unbind != nil {
		a.unbind()
	}
}

// currentViewer resolves the signed-in user's role; a signed-out user is a public visitor.
func (a *app) currentViewer(ctx context.Context) (*entity.Viewer, error) {
	return a.resolver.Resolve(ctx, a.session.Email())
}

// login prompts for credentials and signs in.
func (a *app) login(ctx context.Context, email string) error {
	creds, err := cli.PromptLogin(ctx, email, a.opts.accessible)
	if err != nil {
		return err
	}

	viewer, err := a.session.SignIn(ctx, creds.Email, creds.Password)
	if err != nil {
		return err
	}
	a.out.Success("Signed in as " + viewer.Email + roleSuffix(viewer.Role))

	return nil
}

func roleSuffix(role entity.Role) string {
	if role == entity.RoleNone {
		return ""
	}

	return " (" + role.String() + ")"
}

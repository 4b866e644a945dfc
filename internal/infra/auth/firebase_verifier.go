package auth

import (
	"context"
	"log/slog"

	"assethub/config"
	"assethub/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// tokenVerifier is the part of the Firebase auth client the verifier needs.
type tokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, error)
}

type firebaseVerifier struct {
	client tokenVerifier
	logger *slog.Logger
}

// VerifierParams holds dependencies for the identity verifier, injected by Fx
type VerifierParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewFirebaseVerifier initializes a Firebase app and returns an IdentityVerifier backed by its auth client.
func NewFirebaseVerifier(params VerifierParams) (service.IdentityVerifier, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.ProjectID == "" {
		return nil, errors.New("firebase project ID is required")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(params.Ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	params.Logger.Info("Firebase identity verifier initialized", slog.String("project_id", cfg.ProjectID))

	return newFirebaseVerifier(client, params.Logger), nil
}

func newFirebaseVerifier(client tokenVerifier, logger *slog.Logger) *firebaseVerifier {
	return &firebaseVerifier{client: client, logger: logger}
}

// VerifyIDToken checks the ID token with Firebase and extracts the identity claims.
func (v *firebaseVerifier) VerifyIDToken(ctx context.Context, idToken string) (*service.VerifiedIdentity, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		v.logger.WarnContext(ctx, "ID token verification failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "verify ID token")
	}

	identity := &service.VerifiedIdentity{
		UID:           token.UID,
		Email:         stringClaim(token.Claims, "email"),
		Name:          stringClaim(token.Claims, "name"),
		Picture:       stringClaim(token.Claims, "picture"),
		EmailVerified: boolClaim(token.Claims, "email_verified"),
	}
	if identity.Email == "" {
		return nil, errors.New("ID token carries no email")
	}

	return identity, nil
}

func stringClaim(claims map[string]any, key string) string {
	s, _ := claims[key].(string)

	return s
}

func boolClaim(claims map[string]any, key string) bool {
	b, _ := claims[key].(bool)

	return b
}

package session

import (
	"context"
	"net/http"
	"net/url"

	"assethub/internal/errors"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

// oauthRequestURI is the continue URI Identity Toolkit requires for IdP sign-in; the CLI has no redirect page.
const oauthRequestURI = "http://localhost"

// ErrAuth is returned when the identity provider refuses the credentials.
var ErrAuth = errors.New("authentication failed")

// Credential is a signed-in identity and its ID token.
type Credential struct {
	User    User
	IDToken string
}

// IdentityProvider is the part of Firebase Authentication the session uses.
type IdentityProvider interface {
	SignUp(ctx context.Context, email, password, displayName, photoURL string) (*Credential, error)
	SignIn(ctx context.Context, email, password string) (*Credential, error)
	// SignInWithIdP signs in with an OAuth provider's ID token, e.g. providerID "google.com".
	SignInWithIdP(ctx context.Context, providerID, idToken string) (*Credential, error)
	UpdateProfile(ctx context.Context, idToken, displayName, photoURL string) (*Credential, error)
}

type firebaseProvider struct {
	rp *identitytoolkit.RelyingpartyService
}

// NewFirebaseProvider talks to the Identity Toolkit REST API with the project's web API key.
func NewFirebaseProvider(ctx context.Context, apiKey string, opts ...option.ClientOption) (IdentityProvider, error) {
	if apiKey == "" {
		return nil, errors.New("firebase api key is required")
	}

	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	svc, err := identitytoolkit.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "create identity toolkit client")
	}

	return &firebaseProvider{rp: svc.Relyingparty}, nil
}

func (p *firebaseProvider) SignUp(ctx context.Context, email, password, displayName, photoURL string) (*Credential, error) {
	resp, err := p.rp.SignupNewUser(&identitytoolkit.IdentitytoolkitRelyingpartySignupNewUserRequest{
		Email:       email,
		Password:    password,
		DisplayName: displayName,
		PhotoUrl:    photoURL,
	}).Context(ctx).Do()
	if err != nil {
		return nil, providerError(err, "sign up")
	}

	return &Credential{
		User:    User{ID: resp.LocalId, Email: resp.Email, DisplayName: displayName, PhotoURL: photoURL},
		IDToken: resp.IdToken,
	}, nil
}

func (p *firebaseProvider) SignIn(ctx context.Context, email, password string) (*Credential, error) {
	resp, err := p.rp.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return nil, providerError(err, "sign in")
	}

	return &Credential{
		User:    User{ID: resp.LocalId, Email: resp.Email, DisplayName: resp.DisplayName, PhotoURL: resp.PhotoUrl},
		IDToken: resp.IdToken,
	}, nil
}

func (p *firebaseProvider) SignInWithIdP(ctx context.Context, providerID, idToken string) (*Credential, error) {
	body := url.Values{"id_token": {idToken}, "providerId": {providerID}}
	resp, err := p.rp.VerifyAssertion(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyAssertionRequest{
		PostBody:          body.Encode(),
		RequestUri:        oauthRequestURI,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return nil, providerError(err, "sign in with "+providerID)
	}

	return &Credential{
		User:    User{ID: resp.LocalId, Email: resp.Email, DisplayName: resp.DisplayName, PhotoURL: resp.PhotoUrl},
		IDToken: resp.IdToken,
	}, nil
}

func (p *firebaseProvider) UpdateProfile(ctx context.Context, idToken, displayName, photoURL string) (*Credential, error) {
	resp, err := p.rp.SetAccountInfo(&identitytoolkit.IdentitytoolkitRelyingpartySetAccountInfoRequest{
		IdToken:           idToken,
		DisplayName:       displayName,
		PhotoUrl:          photoURL,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return nil, providerError(err, "update profile")
	}

	token := resp.IdToken
	if token == "" {
		token = idToken
	}

	return &Credential{
		User:    User{ID: resp.LocalId, Email: resp.Email, DisplayName: resp.DisplayName, PhotoURL: resp.PhotoUrl},
		IDToken: token,
	}, nil
}

// providerError maps Identity Toolkit client errors such as EMAIL_EXISTS onto ErrAuth.
func providerError(err error, op string) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code >= http.StatusBadRequest && apiErr.Code < http.StatusInternalServerError {
		return errors.Wrapf(ErrAuth, "%s: %s", op, apiErr.Message)
	}

	return errors.Wrap(err, op)
}

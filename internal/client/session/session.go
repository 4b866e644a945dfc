// Package session owns "who is signed in" for the client. It signs in through the identity
// provider, trades the provider's ID token for a backend token and keeps that token in the
// HTTP adapter. It is the only writer of the token.
package session

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"assethub/internal/domain/entity"
	"assethub/internal/errors"
	"assethub/internal/usecase"

	"github.com/go-playground/validator/v10"
)

// ErrValidation is returned before any network call when input is malformed.
var ErrValidation = errors.New("invalid input")

// User is the signed-in identity.
type User struct {
	ID          string `yaml:"id"`
	Email       string `yaml:"email"`
	DisplayName string `yaml:"displayName"`
	PhotoURL    string `yaml:"photoURL"`
}

// Backend is the slice of the REST API the session calls.
type Backend interface {
	IssueToken(ctx context.Context, idToken string) (*usecase.TokenOutput, error)
	Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error)
	UpdateProfile(ctx context.Context, input usecase.UpdateProfileInput) (*entity.User, error)
}

// TokenSlot holds the backend token attached to outbound calls.
type TokenSlot interface {
	SetToken(token string)
	ClearToken()
	Token() string
}

// SignUpInput is the registration form.
type SignUpInput struct {
	Name        string      `validate:"required,max=120"`
	Email       string      `validate:"required,email"`
	Password    string      `validate:"required,min=6,containsany=ABCDEFGHIJKLMNOPQRSTUVWXYZ,containsany=abcdefghijklmnopqrstuvwxyz"`
	PhotoURL    string      `validate:"omitempty,url"`
	Role        entity.Role `validate:"required,oneof=employee hr"`
	CompanyName string      `validate:"required_if=Role hr,max=120"`
	CompanyLogo string      `validate:"omitempty,url"`
	PackageName string      `validate:"required_if=Role hr,omitempty,oneof=basic standard premium"`
}

type signInInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type Options struct {
	Provider IdentityProvider
	Backend  Backend
	Tokens   TokenSlot
	// Store is optional; without it the session lasts for the process only.
	Store  *Store
	Logger *slog.Logger
	Now    func() time.Time
}

// Session is safe for concurrent use.
type Session struct {
	idp      IdentityProvider
	backend  Backend
	tokens   TokenSlot
	store    *Store
	logger   *slog.Logger
	now      func() time.Time
	validate *validator.Validate

	mu        sync.RWMutex
	user      *User
	idToken   string
	expiresAt time.Time

	subsMu sync.Mutex
	subs   map[int]func(*User)
	nextID int
}

func New(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Session{
		idp:      opts.Provider,
		backend:  opts.Backend,
		tokens:   opts.Tokens,
		store:    opts.Store,
		logger:   logger,
		now:      now,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		subs:     make(map[int]func(*User)),
	}
}

// Current returns a copy of the signed-in user, nil when signed out.
func (s *Session) Current() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil
	}
	u := *s.user

	return &u
}

// Email is the signed-in email, empty when signed out.
func (s *Session) Email() string {
	if u := s.Current(); u != nil {
		return u.Email
	}

	return ""
}

// ExpiresAt reports when the backend token lapses. Zero means unknown.
func (s *Session) ExpiresAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.expiresAt
}

// Subscribe registers fn for auth state changes and calls it right away with the current user.
func (s *Session) Subscribe(fn func(*User)) (unsubscribe func()) {
	s.subsMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subsMu.Unlock()

	fn(s.Current())

	return func() {
		s.subsMu.Lock()
		defer s.subsMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Session) notify() {
	current := s.Current()

	s.subsMu.Lock()
	fns := make([]func(*User), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subsMu.Unlock()

	for _, fn := range fns {
		fn(current)
	}
}

// Restore loads a stored session. An expired one is discarded.
func (s *Session) Restore(ctx context.Context) (bool, error) {
	if s.store == nil {
		return false, nil
	}

	state, err := s.store.Load()
	if err != nil {
		return false, err
	}
	if state == nil || state.Token == "" {
		return false, nil
	}
	if !state.ExpiresAt.IsZero() && !s.now().Before(state.ExpiresAt) {
		s.logger.InfoContext(ctx, "Stored session expired", slog.String("email", state.User.Email))

		return false, s.store.Clear()
	}

	s.set(&state.User, state.IDToken, state.Token)
	s.mu.Lock()
	s.expiresAt = state.ExpiresAt
	s.mu.Unlock()
	s.notify()

	return true, nil
}

// SignUp validates the form, creates the identity, registers the profile and signs in.
func (s *Session) SignUp(ctx context.Context, input SignUpInput) (*entity.User, error) {
	input.Email = strings.TrimSpace(input.Email)
	if err := s.check(input); err != nil {
		return nil, err
	}

	cred, err := s.idp.SignUp(ctx, input.Email, input.Password, input.Name, input.PhotoURL)
	if err != nil {
		return nil, err
	}

	prev := s.snapshot()
	if _, err := s.exchange(ctx, cred); err != nil {
		s.restore(ctx, prev)

		return nil, err
	}

	profile, err := s.backend.Register(ctx, usecase.RegisterInput{
		Name:        input.Name,
		PhotoURL:    input.PhotoURL,
		Role:        input.Role,
		CompanyName: input.CompanyName,
		CompanyLogo: input.CompanyLogo,
		PackageName: input.PackageName,
	})
	if err != nil {
		s.restore(ctx, prev)

		return nil, errors.Wrap(err, "register profile")
	}

	// The first token was issued before the profile existed and carries no role.
	if _, err := s.exchange(ctx, cred); err != nil {
		s.restore(ctx, prev)

		return nil, err
	}
	s.notify()

	return profile, nil
}

// SignIn signs in with email and password.
func (s *Session) SignIn(ctx context.Context, email, password string) (*entity.Viewer, error) {
	email = strings.TrimSpace(email)
	if err := s.check(signInInput{Email: email, Password: password}); err != nil {
		return nil, err
	}

	cred, err := s.idp.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}

	return s.completeSignIn(ctx, cred)
}

// SignInWithIdP signs in with an OAuth provider's ID token.
func (s *Session) SignInWithIdP(ctx context.Context, providerID, idToken string) (*entity.Viewer, error) {
	if strings.TrimSpace(providerID) == "" || strings.TrimSpace(idToken) == "" {
		return nil, errors.Wrap(ErrValidation, "provider and id token are required")
	}

	cred, err := s.idp.SignInWithIdP(ctx, providerID, idToken)
	if err != nil {
		return nil, err
	}

	return s.completeSignIn(ctx, cred)
}

func (s *Session) completeSignIn(ctx context.Context, cred *Credential) (*entity.Viewer, error) {
	out, err := s.exchange(ctx, cred)
	if err != nil {
		return nil, err
	}
	s.notify()

	return out.Viewer, nil
}

// UpdateProfile changes name and photo at the identity provider and on the backend profile.
func (s *Session) UpdateProfile(ctx context.Context, name, photoURL string) (*entity.User, error) {
	input := usecase.UpdateProfileInput{Name: strings.TrimSpace(name), PhotoURL: strings.TrimSpace(photoURL)}
	if err := s.check(input); err != nil {
		return nil, err
	}

	s.mu.RLock()
	idToken := s.idToken
	signedIn := s.user != nil
	s.mu.RUnlock()
	if !signedIn {
		return nil, errors.Wrap(ErrAuth, "not signed in")
	}

	cred, err := s.idp.UpdateProfile(ctx, idToken, input.Name, input.PhotoURL)
	if err != nil {
		return nil, err
	}

	profile, err := s.backend.UpdateProfile(ctx, input)
	if err != nil {
		return nil, errors.Wrap(err, "update profile")
	}

	s.mu.Lock()
	if s.user != nil {
		s.user.DisplayName = input.Name
		s.user.PhotoURL = input.PhotoURL
	}
	s.idToken = cred.IDToken
	s.mu.Unlock()
	s.persist(ctx, time.Time{})
	s.notify()

	return profile, nil
}

// SignOut clears the token, the user and the stored session.
func (s *Session) SignOut(ctx context.Context) error {
	s.mu.Lock()
	s.user = nil
	s.idToken = ""
	s.expiresAt = time.Time{}
	s.mu.Unlock()
	s.tokens.ClearToken()

	var err error
	if s.store != nil {
		err = s.store.Clear()
	}
	s.notify()
	s.logger.InfoContext(ctx, "Signed out")

	return err
}

// exchange trades the provider ID token for the backend token and makes the identity current.
func (s *Session) exchange(ctx context.Context, cred *Credential) (*usecase.TokenOutput, error) {
	out, err := s.backend.IssueToken(ctx, cred.IDToken)
	if err != nil {
		return nil, errors.Wrap(err, "exchange id token")
	}

	user := cred.User
	s.set(&user, cred.IDToken, out.Token)
	s.persist(ctx, out.ExpiresAt)

	return out, nil
}

// saved is the session as it was before a multi-step sign-in started.
type saved struct {
	user      *User
	idToken   string
	token     string
	expiresAt time.Time
	stored    *State
}

func (s *Session) snapshot() saved {
	s.mu.RLock()
	prev := saved{user: s.user, idToken: s.idToken, expiresAt: s.expiresAt}
	s.mu.RUnlock()
	prev.token = s.tokens.Token()

	if s.store != nil {
		if state, err := s.store.Load(); err == nil {
			prev.stored = state
		}
	}

	return prev
}

// restore puts back a snapshot, on disk too, so a failed sign-up leaves nothing behind.
func (s *Session) restore(ctx context.Context, prev saved) {
	s.mu.Lock()
	s.user = prev.user
	s.idToken = prev.idToken
	s.expiresAt = prev.expiresAt
	s.mu.Unlock()

	if prev.token == "" {
		s.tokens.ClearToken()
	} else {
		s.tokens.SetToken(prev.token)
	}

	if s.store == nil {
		return
	}

	var err error
	if prev.stored == nil {
		err = s.store.Clear()
	} else {
		err = s.store.Save(prev.stored)
	}
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to restore stored session", slog.Any("error", err))
	}
}

func (s *Session) set(user *User, idToken, token string) {
	s.mu.Lock()
	s.user = user
	s.idToken = idToken
	s.mu.Unlock()
	s.tokens.SetToken(token)
}

// persist writes the session; a zero expiresAt keeps the stored expiry.
func (s *Session) persist(ctx context.Context, expiresAt time.Time) {
	if !expiresAt.IsZero() {
		s.mu.Lock()
		s.expiresAt = expiresAt
		s.mu.Unlock()
	}
	if s.store == nil {
		return
	}

	state := &State{}
	if prev, err := s.store.Load(); err == nil && prev != nil {
		state = prev
	}

	s.mu.RLock()
	if s.user != nil {
		state.User = *s.user
	}
	state.IDToken = s.idToken
	s.mu.RUnlock()
	state.Token = s.tokens.Token()
	if !expiresAt.IsZero() {
		state.ExpiresAt = expiresAt
	}

	if err := s.store.Save(state); err != nil {
		s.logger.WarnContext(ctx, "Failed to persist session", slog.Any("error", err))
	}
}

// check runs struct validation and folds every failure into one ErrValidation.
func (s *Session) check(input any) error {
	err := s.validate.Struct(input)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.Wrap(ErrValidation, err.Error())
	}

	msgs := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		msgs = append(msgs, describe(fe))
	}

	return errors.Wrap(ErrValidation, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch {
	case fe.Field() == "Password" && fe.Tag() == "min":
		return "Password must be at least 6 characters"
	case fe.Field() == "Password" && fe.Tag() == "containsany":
		return "Password must contain an uppercase and a lowercase letter"
	case fe.Tag() == "required" || fe.Tag() == "required_if":
		return fe.Field() + " is required"
	case fe.Tag() == "email":
		return "Email is not a valid address"
	default:
		return fe.Field() + " is invalid"
	}
}

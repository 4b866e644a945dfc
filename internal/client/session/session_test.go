package session

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"assethub/internal/domain/entity"
	"assethub/internal/errors"
	"assethub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockProvider struct {
	mock.Mock
}

func (m *mockProvider) SignUp(ctx context.Context, email, password, displayName, photoURL string) (*Credential, error) {
	args := m.Called(ctx, email, password, displayName, photoURL)
	cred, _ := args.Get(0).(*Credential)

	return cred, args.Error(1)
}

func (m *mockProvider) SignIn(ctx context.Context, email, password string) (*Credential, error) {
	args := m.Called(ctx, email, password)
	cred, _ := args.Get(0).(*Credential)

	return cred, args.Error(1)
}

func (m *mockProvider) SignInWithIdP(ctx context.Context, providerID, idToken string) (*Credential, error) {
	args := m.Called(ctx, providerID, idToken)
	cred, _ := args.Get(0).(*Credential)

	return cred, args.Error(1)
}

func (m *mockProvider) UpdateProfile(ctx context.Context, idToken, displayName, photoURL string) (*Credential, error) {
	args := m.Called(ctx, idToken, displayName, photoURL)
	cred, _ := args.Get(0).(*Credential)

	return cred, args.Error(1)
}

type mockBackend struct {
	mock.Mock
}

func (m *mockBackend) IssueToken(ctx context.Context, idToken string) (*usecase.TokenOutput, error) {
	args := m.Called(ctx, idToken)
	out, _ := args.Get(0).(*usecase.TokenOutput)

	return out, args.Error(1)
}

func (m *mockBackend) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	args := m.Called(ctx, input)
	out, _ := args.Get(0).(*entity.User)

	return out, args.Error(1)
}

func (m *mockBackend) UpdateProfile(ctx context.Context, input usecase.UpdateProfileInput) (*entity.User, error) {
	args := m.Called(ctx, input)
	out, _ := args.Get(0).(*entity.User)

	return out, args.Error(1)
}

type tokenSlot struct {
	mu    sync.Mutex
	token string
}

func (s *tokenSlot) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *tokenSlot) ClearToken() {
	s.SetToken("")
}

func (s *tokenSlot) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.token
}

var fixedNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

type fixture struct {
	session  *Session
	provider *mockProvider
	backend  *mockBackend
	tokens   *tokenSlot
	store    *Store
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	f := fixture{
		provider: &mockProvider{},
		backend:  &mockBackend{},
		tokens:   &tokenSlot{},
		store:    NewStore(filepath.Join(t.TempDir(), "assetctl", "session.yaml")),
	}
	t.Cleanup(func() {
		f.provider.AssertExpectations(t)
		f.backend.AssertExpectations(t)
	})

	f.session = New(Options{
		Provider: f.provider,
		Backend:  f.backend,
		Tokens:   f.tokens,
		Store:    f.store,
		Now:      func() time.Time { return fixedNow },
	})

	return f
}

func employeeSignUp() SignUpInput {
	return SignUpInput{
		Name:     "Eli",
		Email:    "eli@acme.test",
		Password: "Secret1",
		Role:     entity.RoleEmployee,
	}
}

func TestSession_SignUpValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SignUpInput)
		want   string
	}{
		{name: "short password", mutate: func(in *SignUpInput) { in.Password = "Ab1" }, want: "at least 6 characters"},
		{name: "no uppercase", mutate: func(in *SignUpInput) { in.Password = "secret1" }, want: "uppercase and a lowercase"},
		{name: "no lowercase", mutate: func(in *SignUpInput) { in.Password = "SECRET1" }, want: "uppercase and a lowercase"},
		{name: "bad email", mutate: func(in *SignUpInput) { in.Email = "eli" }, want: "Email is not a valid address"},
		{name: "missing name", mutate: func(in *SignUpInput) { in.Name = "" }, want: "Name is required"},
		{name: "hr without company", mutate: func(in *SignUpInput) { in.Role = entity.RoleHR; in.PackageName = "basic" }, want: "CompanyName is required"},
		{name: "hr with unknown package", mutate: func(in *SignUpInput) {
			in.Role = entity.RoleHR
			in.CompanyName = "Acme"
			in.PackageName = "gold"
		}, want: "PackageName is invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			input := employeeSignUp()
			tt.mutate(&input)

			_, err := f.session.SignUp(context.Background(), input)
			require.ErrorIs(t, err, ErrValidation)
			assert.Contains(t, err.Error(), tt.want)
			assert.Nil(t, f.session.Current())
		})
	}
}

func TestSession_SignUp(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cred := &Credential{User: User{ID: "uid-1", Email: "eli@acme.test", DisplayName: "Eli"}, IDToken: "firebase-id"}
	expires := fixedNow.Add(24 * time.Hour)

	f.provider.On("SignUp", mock.Anything, "eli@acme.test", "Secret1", "Eli", "").Return(cred, nil)
	f.backend.On("IssueToken", mock.Anything, "firebase-id").
		Return(&usecase.TokenOutput{Token: "anonymous-token", ExpiresAt: expires, Viewer: &entity.Viewer{Email: "eli@acme.test"}}, nil).Once()
	f.backend.On("Register", mock.Anything, usecase.RegisterInput{Name: "Eli", Role: entity.RoleEmployee}).
		Return(&entity.User{Email: "eli@acme.test", Role: entity.RoleEmployee}, nil)
	f.backend.On("IssueToken", mock.Anything, "firebase-id").
		Return(&usecase.TokenOutput{Token: "employee-token", ExpiresAt: expires, Viewer: &entity.Viewer{Email: "eli@acme.test", Role: entity.RoleEmployee}}, nil).Once()

	profile, err := f.session.SignUp(ctx, employeeSignUp())
	require.NoError(t, err)
	assert.Equal(t, entity.RoleEmployee, profile.Role)
	assert.Equal(t, "employee-token", f.tokens.Token())
	assert.Equal(t, "eli@acme.test", f.session.Email())

	info, err := os.Stat(f.store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	state, err := f.store.Load()
	require.NoError(t, err)
	assert.Equal(t, "employee-token", state.Token)
	assert.Equal(t, "firebase-id", state.IDToken)
	assert.True(t, expires.Equal(state.ExpiresAt))
}

func TestSession_SignUpRegisterFailureLeavesNoSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cred := &Credential{User: User{ID: "uid-1", Email: "eli@acme.test", DisplayName: "Eli"}, IDToken: "firebase-id"}

	f.provider.On("SignUp", mock.Anything, "eli@acme.test", "Secret1", "Eli", "").Return(cred, nil)
	f.backend.On("IssueToken", mock.Anything, "firebase-id").
		Return(&usecase.TokenOutput{Token: "anonymous-token", ExpiresAt: fixedNow.Add(time.Hour)}, nil).Once()
	f.backend.On("Register", mock.Anything, usecase.RegisterInput{Name: "Eli", Role: entity.RoleEmployee}).
		Return(nil, errors.New("backend unavailable"))

	calls := 0
	f.session.Subscribe(func(*User) { calls++ })

	_, err := f.session.SignUp(ctx, employeeSignUp())
	require.Error(t, err)

	assert.Nil(t, f.session.Current())
	assert.Empty(t, f.session.Email())
	assert.Empty(t, f.tokens.Token())
	assert.True(t, f.session.ExpiresAt().IsZero())
	assert.NoFileExists(t, f.store.Path())
	assert.Equal(t, 1, calls, "subscribers only saw the initial call")
}

func TestSession_SignUpFailureKeepsPreviousSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	previous := &State{User: User{Email: "hr@acme.test"}, IDToken: "old-id", Token: "hr-token", ExpiresAt: fixedNow.Add(time.Hour)}
	require.NoError(t, f.store.Save(previous))
	ok, err := f.session.Restore(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	cred := &Credential{User: User{Email: "eli@acme.test"}, IDToken: "firebase-id"}
	f.provider.On("SignUp", mock.Anything, "eli@acme.test", "Secret1", "Eli", "").Return(cred, nil)
	f.backend.On("IssueToken", mock.Anything, "firebase-id").
		Return(&usecase.TokenOutput{Token: "anonymous-token"}, nil).Once()
	f.backend.On("Register", mock.Anything, mock.Anything).Return(nil, errors.New("backend unavailable"))

	_, err = f.session.SignUp(ctx, employeeSignUp())
	require.Error(t, err)

	assert.Equal(t, "hr@acme.test", f.session.Email())
	assert.Equal(t, "hr-token", f.tokens.Token())
	stored, err := f.store.Load()
	require.NoError(t, err)
	assert.Equal(t, "hr-token", stored.Token)
	assert.Equal(t, "hr@acme.test", stored.User.Email)
}

func TestSession_SignInNotifiesSubscribers(t *testing.T) {
	f := newFixture(t)
	cred := &Credential{User: User{Email: "hr@acme.test"}, IDToken: "firebase-id"}
	f.provider.On("SignIn", mock.Anything, "hr@acme.test", "Secret1").Return(cred, nil)
	f.backend.On("IssueToken", mock.Anything, "firebase-id").
		Return(&usecase.TokenOutput{Token: "hr-token", Viewer: &entity.Viewer{Email: "hr@acme.test", Role: entity.RoleHR}}, nil)

	var seen []string
	unsubscribe := f.session.Subscribe(func(u *User) {
		if u == nil {
			seen = append(seen, "")

			return
		}
		seen = append(seen, u.Email)
	})

	viewer, err := f.session.SignIn(context.Background(), " hr@acme.test ", "Secret1")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleHR, viewer.Role)
	assert.Equal(t, "hr-token", f.tokens.Token())

	unsubscribe()
	require.NoError(t, f.session.SignOut(context.Background()))

	assert.Equal(t, []string{"", "hr@acme.test"}, seen, "called immediately, then on sign-in, not after unsubscribe")
}

func TestSession_SignInFailureKeepsState(t *testing.T) {
	f := newFixture(t)
	f.tokens.SetToken("previous")
	f.provider.On("SignIn", mock.Anything, "hr@acme.test", "wrong").Return(nil, errors.Wrap(ErrAuth, "INVALID_PASSWORD"))

	_, err := f.session.SignIn(context.Background(), "hr@acme.test", "wrong")
	require.ErrorIs(t, err, ErrAuth)
	assert.Nil(t, f.session.Current())
	assert.Equal(t, "previous", f.tokens.Token())

	_, err = f.session.SignIn(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSession_SignOutWipesEverything(t *testing.T) {
	f := newFixture(t)
	cred := &Credential{User: User{Email: "eli@acme.test"}, IDToken: "firebase-id"}
	f.provider.On("SignInWithIdP", mock.Anything, "google.com", "google-id").Return(cred, nil)
	f.backend.On("IssueToken", mock.Anything, "firebase-id").Return(&usecase.TokenOutput{Token: "t"}, nil)

	_, err := f.session.SignInWithIdP(context.Background(), "google.com", "google-id")
	require.NoError(t, err)
	require.FileExists(t, f.store.Path())

	var last *User
	f.session.Subscribe(func(u *User) { last = u })
	require.NotNil(t, last)

	require.NoError(t, f.session.SignOut(context.Background()))
	assert.Nil(t, last)
	assert.Nil(t, f.session.Current())
	assert.Empty(t, f.tokens.Token())
	assert.True(t, f.session.ExpiresAt().IsZero())
	assert.NoFileExists(t, f.store.Path())
}

func TestSession_Restore(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.store.Save(&State{
			User:      User{Email: "eli@acme.test"},
			Token:     "stored-token",
			ExpiresAt: fixedNow.Add(time.Hour),
		}))

		ok, err := f.session.Restore(context.Background())
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "eli@acme.test", f.session.Email())
		assert.Equal(t, "stored-token", f.tokens.Token())
		assert.Equal(t, fixedNow.Add(time.Hour), f.session.ExpiresAt())
	})

	t.Run("expired", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.store.Save(&State{
			User:      User{Email: "eli@acme.test"},
			Token:     "stored-token",
			ExpiresAt: fixedNow.Add(-time.Minute),
		}))

		ok, err := f.session.Restore(context.Background())
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, f.session.Current())
		assert.NoFileExists(t, f.store.Path())
	})

	t.Run("nothing stored", func(t *testing.T) {
		f := newFixture(t)

		ok, err := f.session.Restore(context.Background())
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestSession_UpdateProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.session.UpdateProfile(ctx, "Eli", "")
	require.ErrorIs(t, err, ErrAuth)

	cred := &Credential{User: User{Email: "eli@acme.test", DisplayName: "Eli"}, IDToken: "firebase-id"}
	f.provider.On("SignIn", mock.Anything, "eli@acme.test", "Secret1").Return(cred, nil)
	f.backend.On("IssueToken", mock.Anything, "firebase-id").Return(&usecase.TokenOutput{Token: "t"}, nil)
	_, err = f.session.SignIn(ctx, "eli@acme.test", "Secret1")
	require.NoError(t, err)

	f.provider.On("UpdateProfile", mock.Anything, "firebase-id", "Eli Park", "https://img.test/eli.png").
		Return(&Credential{User: User{Email: "eli@acme.test"}, IDToken: "firebase-id-2"}, nil)
	f.backend.On("UpdateProfile", mock.Anything, usecase.UpdateProfileInput{Name: "Eli Park", PhotoURL: "https://img.test/eli.png"}).
		Return(&entity.User{Name: "Eli Park"}, nil)

	profile, err := f.session.UpdateProfile(ctx, "Eli Park", "https://img.test/eli.png")
	require.NoError(t, err)
	assert.Equal(t, "Eli Park", profile.Name)
	assert.Equal(t, "Eli Park", f.session.Current().DisplayName)

	_, err = f.session.UpdateProfile(ctx, "", "not a url")
	assert.ErrorIs(t, err, ErrValidation)
}

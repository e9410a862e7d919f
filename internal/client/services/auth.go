package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/safepaws/internal/client/client"
	"github.com/dmitrijs2005/safepaws/internal/client/forms"
	"github.com/dmitrijs2005/safepaws/internal/client/models"
	"github.com/dmitrijs2005/safepaws/internal/client/selection"
	"github.com/dmitrijs2005/safepaws/internal/logging"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: validate the signup form and create the account.
//   - Login: exchange credentials for a token and persist it.
//   - Logout: drop the token and the selection state.
//   - HasToken/Username: answer from local storage, no network call.
//   - CurrentUser/UpdateProfile: read or edit the signed-in profile.
//   - Ping: check backend liveness.
type AuthService interface {
	Register(ctx context.Context, form forms.SignupForm) error
	Login(ctx context.Context, form forms.LoginForm) (models.UserProfile, error)
	Logout(ctx context.Context) error
	HasToken(ctx context.Context) bool
	Username(ctx context.Context) string
	CurrentUser(ctx context.Context) (models.UserProfile, error)
	UpdateProfile(ctx context.Context, form forms.ProfileForm) (models.UserProfile, error)
	Ping(ctx context.Context) error
}

type authService struct {
	client client.Client
	tokens *TokenStore
	store  *selection.Store
	logger logging.Logger
}

func NewAuthService(c client.Client, tokens *TokenStore, store *selection.Store, logger logging.Logger) AuthService {
	if logger == nil {
		logger = logging.Nop()
	}
	return &authService{client: c, tokens: tokens, store: store, logger: logger}
}

func (a *authService) Register(ctx context.Context, form forms.SignupForm) error {
	if err := forms.Validate(form); err != nil {
		return err
	}
	if err := a.client.Register(ctx, form.Input()); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return nil
}

// Login stores the issued token and then loads the profile. A profile
// failure is returned, but the token is kept: the session is valid.
func (a *authService) Login(ctx context.Context, form forms.LoginForm) (models.UserProfile, error) {
	if err := forms.Validate(form); err != nil {
		return models.UserProfile{}, err
	}

	token, err := a.client.Login(ctx, form.Username, form.Password)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("login: %w", err)
	}
	if err := a.tokens.Save(ctx, token, form.Username); err != nil {
		return models.UserProfile{}, fmt.Errorf("save token: %w", err)
	}
	a.logger.Info(ctx, "logged in", "username", form.Username)

	return a.CurrentUser(ctx)
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.tokens.Clear(ctx); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	if a.store != nil {
		a.store.Reset()
	}
	return nil
}

func (a *authService) HasToken(ctx context.Context) bool {
	_, err := a.tokens.Token(ctx)
	if err != nil && !errors.Is(err, client.ErrNoToken) {
		a.logger.Warn(ctx, "token lookup failed", "error", err)
	}
	return err == nil
}

// Username reads the subject claim of the stored token without verifying
// the signature. The result is for display only. When the token carries no
// subject the username saved at login is used.
func (a *authService) Username(ctx context.Context) string {
	token, err := a.tokens.Token(ctx)
	if err != nil {
		return ""
	}
	if sub := subject(token); sub != "" {
		return sub
	}
	name, err := a.tokens.Username(ctx)
	if err != nil {
		a.logger.Warn(ctx, "username lookup failed", "error", err)
	}
	return name
}

func subject(token string) string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return ""
	}
	return sub
}

func (a *authService) CurrentUser(ctx context.Context) (models.UserProfile, error) {
	p, err := a.client.GetProfile(ctx)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("load profile: %w", err)
	}
	return p, nil
}

func (a *authService) UpdateProfile(ctx context.Context, form forms.ProfileForm) (models.UserProfile, error) {
	if err := forms.Validate(form); err != nil {
		return models.UserProfile{}, err
	}
	if form.Empty() {
		return a.CurrentUser(ctx)
	}
	p, err := a.client.UpdateProfile(ctx, form.Update())
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("update profile: %w", err)
	}
	return p, nil
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Health(ctx)
}

// Package services contains application services for the Software Slayer
// client. This file defines the authentication service: form validation,
// register, login into the session store, logout and liveness probe.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/softwareslayer/internal/client/client"
	"github.com/dmitrijs2005/softwareslayer/internal/client/models"
	"github.com/dmitrijs2005/softwareslayer/internal/logging"
)

// SessionStore is the part of session.Store the services use.
type SessionStore interface {
	User() *models.User
	SetUser(u *models.User)
	Logout()
}

type RegisterForm struct {
	Email           string
	Username        string
	FirstName       string
	LastName        string
	Password        string
	ConfirmPassword string
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: validate the form, then create the user on the server.
//   - Login: validate, authenticate, and make the result the session user.
//   - Logout: clear the session user.
//   - Ping: check server liveness.
//
// Validation failures are returned as *ValidationError before any request.
type AuthService interface {
	Register(ctx context.Context, form RegisterForm) error
	Login(ctx context.Context, identifier, password string) (*models.User, error)
	Logout(ctx context.Context)
	Ping(ctx context.Context) error
}

type authService struct {
	client  client.Client
	session SessionStore
	log     logging.Logger
}

func NewAuthService(client client.Client, session SessionStore, logger logging.Logger) AuthService {
	return &authService{client: client, session: session, log: logger.With("component", "auth")}
}

func validateRegister(form RegisterForm) error {
	errs := fieldErrors{}
	errs.require(FieldEmail, form.Email, "Email is required")
	errs.require(FieldUsername, form.Username, "Username is required")
	errs.require(FieldFirstName, form.FirstName, "First name is required")
	errs.require(FieldLastName, form.LastName, "Last name is required")
	if form.Password == "" {
		errs[FieldPassword] = "Password is required"
	}
	if form.Password != form.ConfirmPassword {
		errs[FieldConfirmPassword] = "Passwords don't match"
	}
	return errs.err()
}

func validateLogin(identifier, password string) error {
	errs := fieldErrors{}
	errs.require(FieldIdentifier, identifier, "Email or username is required")
	if password == "" {
		errs[FieldPassword] = "Password is required"
	}
	return errs.err()
}

// Register creates a new account. The user still has to log in afterwards.
func (a *authService) Register(ctx context.Context, form RegisterForm) error {
	if err := validateRegister(form); err != nil {
		return err
	}

	req := client.RegisterRequest{
		Email:     strings.TrimSpace(form.Email),
		Username:  strings.TrimSpace(form.Username),
		FirstName: strings.TrimSpace(form.FirstName),
		LastName:  strings.TrimSpace(form.LastName),
		Password:  form.Password,
	}
	if err := a.client.Register(ctx, req); err != nil {
		return fmt.Errorf("register error: %w", err)
	}

	a.log.Info(ctx, "user registered", "username", req.Username)
	return nil
}

// Login authenticates identifier (email or username) and stores the returned
// profile and token as the session user.
func (a *authService) Login(ctx context.Context, identifier, password string) (*models.User, error) {
	if err := validateLogin(identifier, password); err != nil {
		return nil, err
	}

	resp, err := a.client.Login(ctx, strings.TrimSpace(identifier), password)
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}
	user := &models.User{
		ID:        resp.UserInfo.ID,
		Email:     resp.UserInfo.Email,
		Username:  resp.UserInfo.Username,
		FirstName: resp.UserInfo.FirstName,
		LastName:  resp.UserInfo.LastName,
		Token:     resp.Token,
	}
	// The session holds complete users only.
	if !user.Valid() {
		return nil, fmt.Errorf("login error: %w: incomplete user info", client.ErrBadResponse)
	}
	a.session.SetUser(user)

	a.log.Info(ctx, "user logged in", "user_id", user.ID)
	return user.Clone(), nil
}

func (a *authService) Logout(ctx context.Context) {
	a.session.Logout()
	a.log.Info(ctx, "user logged out")
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

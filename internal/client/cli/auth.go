package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/dmitrijs2005/softwareslayer/internal/client/services"
	"github.com/dmitrijs2005/softwareslayer/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

const (
	msgLoginFailed    = "Incorrect email/username or password. Please try again."
	msgRegisterFailed = "An error occurred during registration. Please try again."
)

// Register prompts for the account fields and creates the account via the
// AuthService. Field problems are listed one per line; server failures are
// shown with the server's message when it sent one.
func (a *App) Register(ctx context.Context) error {
	var form services.RegisterForm

	prompts := []struct {
		label string
		dst   *string
	}{
		{"Enter email", &form.Email},
		{"Enter username", &form.Username},
		{"Enter first name", &form.FirstName},
		{"Enter last name", &form.LastName},
	}
	for _, p := range prompts {
		v, err := getSimpleText(a.reader, p.label, a.out)
		if err != nil {
			return err
		}
		*p.dst = v
	}

	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword(a.out, "Confirm password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	form.Password = string(password)
	form.ConfirmPassword = string(confirm)

	if err := a.authService.Register(ctx, form); err != nil {
		if a.printValidation(err) {
			return err
		}
		a.log.Error(ctx, "registration failed", "error", err)
		fmt.Fprintf(a.out, "Registration Failed: %s\n", services.UserMessage(err, msgRegisterFailed))
		return err
	}

	fmt.Fprintln(a.out, "Registration Successful: Your account has been created. Please log in.")
	return nil
}

// Login prompts for an email or username and a password. On success the
// session is replaced and the home view is shown.
func (a *App) Login(ctx context.Context) error {
	identifier, err := getSimpleText(a.reader, "Enter email or username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.authService.Login(ctx, identifier, string(password))
	if err != nil {
		if a.printValidation(err) {
			return err
		}
		a.log.Warn(ctx, "login failed", "error", err)
		fmt.Fprintf(a.out, "Login Failed: %s\n", services.UserMessage(err, msgLoginFailed))
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", user.FirstName)
	a.home(ctx)
	return nil
}

// Logout asks for confirmation and clears the session.
func (a *App) Logout(ctx context.Context) error {
	if !a.Confirm(ctx, "Confirm Logout", "Are you sure you want to log out?") {
		return nil
	}
	a.authService.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

func (a *App) printValidation(err error) bool {
	var vErr *services.ValidationError
	if !errors.As(err, &vErr) {
		return false
	}

	fields := make([]string, 0, len(vErr.Fields))
	for f := range vErr.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	for _, f := range fields {
		a.notifyValidation(vErr.Fields[f])
	}
	return true
}

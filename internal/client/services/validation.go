package services

import (
	"errors"
	"sort"
	"strings"

	"github.com/dmitrijs2005/softwareslayer/internal/client/client"
)

// Form field names used as ValidationError keys.
const (
	FieldIdentifier      = "identifier"
	FieldPassword        = "password"
	FieldEmail           = "email"
	FieldUsername        = "username"
	FieldFirstName       = "firstName"
	FieldLastName        = "lastName"
	FieldConfirmPassword = "confirmPassword"
)

// ValidationError maps form fields to the message shown next to them.
// It is returned before any request is made.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

type fieldErrors map[string]string

func (f fieldErrors) require(field, value, msg string) {
	if strings.TrimSpace(value) == "" {
		f[field] = msg
	}
}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Fields: f}
}

// UserMessage picks the text to show for err: the server's message for API
// errors, fallback for everything else.
func UserMessage(err error, fallback string) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

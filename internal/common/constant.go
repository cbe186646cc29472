// Package common contains constants shared by the transport and CLI layers.
package common

const (
	// AuthorizationHeaderName carries the raw bearer token; the backend
	// expects the token value without a "Bearer " prefix.
	AuthorizationHeaderName = "Authorization"

	// RequestIDHeaderName tags every outbound request for log correlation.
	RequestIDHeaderName = "X-Request-ID"

	ContentTypeJSON = "application/json"
)

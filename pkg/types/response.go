// Package types defines the wire envelopes shared by every API response.
package types

// SuccessEnvelope wraps a successful payload under a top-level data key.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// ErrorEnvelope wraps a single APIError under a top-level error key.
type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// APIError is the public error shape: a stable code, a human-readable
// message, and optional field-level details.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

package commons

import "strings"

// Response is the envelope every service call returns alongside its error.
// Data is set only on success.
type Response[T any] struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    *T       `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Success: true,
		Message: message,
		Data:    &data,
	}
}

func ErrorResponse[T any](message string, errors ...string) Response[T] {
	return Response[T]{
		Success: false,
		Message: message,
		Errors:  errors,
	}
}

const ValidationFailed = "validation failed"

// ValidationDetail returns the joined validation messages, or "" when the
// response is not a validation failure.
func (r Response[T]) ValidationDetail() string {
	if r.Success || r.Message != ValidationFailed {
		return ""
	}
	return strings.Join(r.Errors, "; ")
}

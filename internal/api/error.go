package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNetwork means no response was received at all.
	ErrNetwork = errors.New("network error")

	// ErrUnauthorized is returned for 401 responses after local
	// credentials have been cleared.
	ErrUnauthorized = errors.New("unauthorized")
)

// Error carries a server-rejected response (4xx/5xx or an envelope with
// success=false).
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: status %d", e.Status)
}

// UserMessage maps any client error into the string shown to the user.
// Server-supplied messages win; otherwise a status-keyed generic applies.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrNetwork) {
		return "Connection error. Please check your internet connection."
	}
	if errors.Is(err, ErrUnauthorized) {
		return "Your session has expired. Please log in again."
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		switch apiErr.Status {
		case http.StatusBadRequest:
			return "Invalid data. Please check your information."
		case http.StatusInternalServerError:
			return "Server error. Please try again later."
		}
	}
	return "Something went wrong. Please try again."
}

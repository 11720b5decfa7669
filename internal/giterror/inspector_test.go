package giterror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	gh "github.com/google/go-github/v82/github"
)

func apiError(code int, message string) error {
	return &gh.ErrorResponse{
		Response: &http.Response{
			StatusCode: code,
			Request:    &http.Request{},
		},
		Message: message,
	}
}

func TestIsAuthError(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"401 response", apiError(http.StatusUnauthorized, "Bad credentials"), true},
		{"403 response", apiError(http.StatusForbidden, "Forbidden"), true},
		{"wrapped 401 response", fmt.Errorf("fetching pr: %w", apiError(http.StatusUnauthorized, "Bad credentials")), true},
		{"404 response", apiError(http.StatusNotFound, "Not Found"), false},
		{"bad credentials string", errors.New("bad credentials"), true},
		{"unrelated error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsAuthError(tt.err); got != tt.want {
				t.Errorf("IsAuthError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsNotFoundError(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"404 response", apiError(http.StatusNotFound, "Not Found"), true},
		{"wrapped 404 response", fmt.Errorf("fetching pr: %w", apiError(http.StatusNotFound, "Not Found")), true},
		{"401 response", apiError(http.StatusUnauthorized, "Bad credentials"), false},
		{"not found string", errors.New("repository not found"), true},
		{"unrelated error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsNotFoundError(tt.err); got != tt.want {
				t.Errorf("IsNotFoundError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsRateLimitError(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"typed rate limit error", &gh.RateLimitError{Message: "API rate limit exceeded"}, true},
		{"typed abuse rate limit error", &gh.AbuseRateLimitError{Message: "abuse detection"}, true},
		{"wrapped rate limit error", fmt.Errorf("searching: %w", &gh.RateLimitError{}), true},
		{"rate limit string", errors.New("API rate limit exceeded for user"), true},
		{"unrelated error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsRateLimitError(tt.err); got != tt.want {
				t.Errorf("IsRateLimitError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsNetworkError(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"connection refused", errors.New("dial tcp 127.0.0.1:443: connect: connection refused"), true},
		{"no such host", errors.New("dial tcp: lookup api.github.invalid: no such host"), true},
		{"tls handshake", errors.New("tls handshake timeout"), true},
		{"404 response", apiError(http.StatusNotFound, "Not Found"), false},
		{"unrelated error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsNetworkError(tt.err); got != tt.want {
				t.Errorf("IsNetworkError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

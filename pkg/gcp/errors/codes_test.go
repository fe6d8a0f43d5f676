package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestIsPermissionDenied(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
		{
			name:     "grpc permission denied",
			err:      status.Error(codes.PermissionDenied, "caller lacks permission"),
			expected: true,
		},
		{
			name:     "googleapi forbidden",
			err:      &googleapi.Error{Code: http.StatusForbidden, Message: "forbidden"},
			expected: true,
		},
		{
			name:     "wrapped googleapi forbidden",
			err:      fmt.Errorf("failed to list buckets in project p1: %w", &googleapi.Error{Code: http.StatusForbidden}),
			expected: true,
		},
		{
			name:     "message fallback",
			err:      errors.New("user does not have storage.buckets.list access"),
			expected: true,
		},
		{
			name:     "unrelated error",
			err:      errors.New("connection reset"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsPermissionDenied(tt.err)
			if result != tt.expected {
				t.Errorf("IsPermissionDenied(%v) = %v, want %v", tt.err, result, tt.expected)
			}
		})
	}
}

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "grpc not found",
			err:      status.Error(codes.NotFound, "no such bucket"),
			expected: true,
		},
		{
			name:     "googleapi not found",
			err:      &googleapi.Error{Code: http.StatusNotFound},
			expected: true,
		},
		{
			name:     "unrelated",
			err:      errors.New("timeout"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsNotFound(tt.err)
			if result != tt.expected {
				t.Errorf("IsNotFound(%v) = %v, want %v", tt.err, result, tt.expected)
			}
		})
	}
}

func TestIsServiceDisabled(t *testing.T) {
	err := errors.New("Cloud Storage JSON API has not been used in project 42 before or it is disabled")
	if !IsServiceDisabled(err) {
		t.Errorf("IsServiceDisabled(%v) = false, want true", err)
	}
	if IsServiceDisabled(nil) {
		t.Error("IsServiceDisabled(nil) = true, want false")
	}
}

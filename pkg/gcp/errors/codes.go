package errors

import (
	"errors"
	"net/http"
	"strings"

	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// IsPermissionDenied checks if an error is a permission denied error.
// This occurs when the authenticated user/service account lacks required
// IAM permissions. Asset API errors carry gRPC status codes; the JSON
// storage API returns *googleapi.Error instead.
func IsPermissionDenied(err error) bool {
	if err == nil {
		return false
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code == http.StatusForbidden
	}

	if st, ok := status.FromError(err); ok && st.Code() == codes.PermissionDenied {
		return true
	}

	// Fallback: check error message
	errMsg := err.Error()
	return strings.Contains(errMsg, "PermissionDenied") ||
		strings.Contains(errMsg, "permission denied") ||
		strings.Contains(errMsg, "does not have")
}

// IsServiceDisabled checks if an error indicates a GCP API service is disabled.
// This typically means the API needs to be enabled in the GCP project.
func IsServiceDisabled(err error) bool {
	if err == nil {
		return false
	}

	errMsg := err.Error()
	return strings.Contains(errMsg, "SERVICE_DISABLED") ||
		strings.Contains(errMsg, "API has not been enabled") ||
		strings.Contains(errMsg, "API has not been used in project") ||
		strings.Contains(errMsg, "Access Not Configured")
}

// IsNotFound checks if an error indicates a resource was not found.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code == http.StatusNotFound
	}

	if st, ok := status.FromError(err); ok && st.Code() == codes.NotFound {
		return true
	}

	errMsg := err.Error()
	return strings.Contains(errMsg, "NotFound") ||
		strings.Contains(errMsg, "not found")
}

// IsUnauthenticated checks if an error indicates authentication failure.
func IsUnauthenticated(err error) bool {
	if err == nil {
		return false
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code == http.StatusUnauthorized
	}

	if st, ok := status.FromError(err); ok && st.Code() == codes.Unauthenticated {
		return true
	}

	errMsg := err.Error()
	return strings.Contains(errMsg, "Unauthenticated") ||
		strings.Contains(errMsg, "invalid credentials")
}

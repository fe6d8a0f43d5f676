package gcp

import (
	"fmt"
	"strings"
)

const bucketScheme = "gs://"

func NormalizeOrgScope(orgID string) string {
	if strings.HasPrefix(orgID, "organizations/") {
		return orgID
	}
	return "organizations/" + orgID
}

func extractIDFromURI(uri string) string {
	parts := []rune(uri)
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] == '/' {
			return string(parts[i+1:])
		}
	}
	return uri
}

// IsBucketURI reports whether s has the gs://<name>/ shape. Entries that
// fail this check are not buckets and are dropped by callers.
func IsBucketURI(s string) bool {
	if !strings.HasPrefix(s, bucketScheme) || !strings.HasSuffix(s, "/") {
		return false
	}
	name := strings.TrimSuffix(strings.TrimPrefix(s, bucketScheme), "/")
	return name != "" && !strings.Contains(name, "/")
}

// BucketURI builds the gs://<name>/ form from a bare bucket name.
func BucketURI(name string) string {
	return bucketScheme + name + "/"
}

// BucketNameFromURI extracts the bare bucket name from a gs://<name>/ URI.
func BucketNameFromURI(uri string) (string, error) {
	if !IsBucketURI(uri) {
		return "", fmt.Errorf("not a bucket URI: %s", uri)
	}
	return strings.TrimSuffix(strings.TrimPrefix(uri, bucketScheme), "/"), nil
}

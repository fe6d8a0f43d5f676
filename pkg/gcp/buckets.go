package gcp

import (
	"context"
	"fmt"

	storagev1 "google.golang.org/api/storage/v1"
)

// ListBuckets lists the storage buckets in a project as gs://<name>/ URIs.
// The project is passed per call, never set as client state.
func (c *Client) ListBuckets(ctx context.Context, projectID string) ([]string, error) {
	listCall := c.storageService.Buckets.List(projectID)
	uris := make([]string, 0)

	err := listCall.Pages(ctx, func(resp *storagev1.Buckets) error {
		for _, bucket := range resp.Items {
			uris = append(uris, BucketURI(bucket.Name))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list buckets in project %s: %w", projectID, err)
	}

	return uris, nil
}

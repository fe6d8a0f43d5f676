package gcp

import (
	"context"
	"fmt"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

// FindArchives lists every object in the bucket whose name ends with ext
// (e.g. ".zip"), at any depth. The ** glob crosses path separators, so a
// single query covers the whole bucket.
func (c *Client) FindArchives(ctx context.Context, bucketURI, ext string) ([]string, error) {
	name, err := BucketNameFromURI(bucketURI)
	if err != nil {
		return nil, err
	}

	it := c.objectClient.Bucket(name).Objects(ctx, &gcs.Query{MatchGlob: "**" + ext})
	paths := make([]string, 0)
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list %s objects in %s: %w", ext, bucketURI, err)
		}
		paths = append(paths, bucketURI+attrs.Name)
	}

	return paths, nil
}

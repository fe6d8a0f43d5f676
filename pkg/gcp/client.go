package gcp

import (
	"context"
	"fmt"

	asset "cloud.google.com/go/asset/apiv1"
	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"
	storagev1 "google.golang.org/api/storage/v1"
)

// Client wraps the three GCP surfaces the scanner consumes: org-scoped
// asset search, per-project bucket listing, and bucket object listing.
// Every call is scoped by its arguments, so a single Client is safe to
// reuse across projects.
type Client struct {
	assetClient    *asset.Client
	storageService *storagev1.Service
	objectClient   *gcs.Client
}

func NewClient(ctx context.Context, clientOptions ...option.ClientOption) (*Client, error) {
	assetClient, err := asset.NewClient(ctx, clientOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to create asset client: %w", err)
	}
	storageService, err := storagev1.NewService(ctx, clientOptions...)
	if err != nil {
		assetClient.Close()
		return nil, fmt.Errorf("failed to create storage service: %w", err)
	}
	objectClient, err := gcs.NewClient(ctx, clientOptions...)
	if err != nil {
		assetClient.Close()
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &Client{
		assetClient:    assetClient,
		storageService: storageService,
		objectClient:   objectClient,
	}, nil
}

func (c *Client) Close() error {
	var errs []error
	if c.assetClient != nil {
		if err := c.assetClient.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if c.objectClient != nil {
		if err := c.objectClient.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("errors closing clients: %v", errs)
	}
	return nil
}

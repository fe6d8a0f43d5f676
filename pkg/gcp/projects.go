package gcp

import (
	"context"
	"fmt"

	assetpb "cloud.google.com/go/asset/apiv1/assetpb"
	"google.golang.org/api/iterator"
)

const projectAssetType = "cloudresourcemanager.googleapis.com/Project"

// ListProjects searches the organization, recursively through folders, for
// every project and returns their project IDs in the provider's order. A
// failed search yields no partial results.
func (c *Client) ListProjects(ctx context.Context, orgID string) ([]string, error) {
	scope := NormalizeOrgScope(orgID)
	req := &assetpb.SearchAllResourcesRequest{
		Scope:      scope,
		AssetTypes: []string{projectAssetType},
	}

	it := c.assetClient.SearchAllResources(ctx, req)
	projects := make([]string, 0)
	for {
		result, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to search projects in %s: %w", scope, err)
		}
		projects = append(projects, projectID(result))
	}

	return projects, nil
}

// projectID prefers the projectId attribute; asset names key projects by
// project number.
func projectID(result *assetpb.ResourceSearchResult) string {
	if attrs := result.GetAdditionalAttributes(); attrs != nil {
		if v := attrs.GetFields()["projectId"]; v != nil && v.GetStringValue() != "" {
			return v.GetStringValue()
		}
	}
	return extractIDFromURI(result.GetName())
}

package atlas

import (
	"context"
	"fmt"

	"go.mongodb.org/atlas/mongodbatlas"

	"github.com/wbleonard/pause-inactive-clusters/internal/models"
)

// ListClusters returns the clusters of one project.
func (c *Client) ListClusters(ctx context.Context, projectID string) ([]models.Cluster, error) {
	clusters, _, err := c.api.Clusters.List(ctx, projectID, nil)
	if err != nil {
		return nil, fmt.Errorf("listing clusters for project %s: %w", projectID, err)
	}

	out := make([]models.Cluster, 0, len(clusters))
	for _, cl := range clusters {
		m := models.Cluster{
			ProjectID: projectID,
			Name:      cl.Name,
		}
		if cl.Paused != nil {
			m.Paused = *cl.Paused
		}
		if ps := cl.ProviderSettings; ps != nil {
			m.ProviderName = ps.ProviderName
			m.InstanceSize = ps.InstanceSizeName
		}
		out = append(out, m)
	}
	return out, nil
}

// PauseCluster pauses one cluster. Atlas models pause as a partial cluster
// update with Paused set.
func (c *Client) PauseCluster(ctx context.Context, projectID, clusterName string) error {
	paused := true
	_, _, err := c.api.Clusters.Update(ctx, projectID, clusterName, &mongodbatlas.Cluster{Paused: &paused})
	if err != nil {
		return fmt.Errorf("pausing cluster %s: %w", clusterName, err)
	}
	return nil
}

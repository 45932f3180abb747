package atlas

import (
	"context"
	"fmt"

	"github.com/wbleonard/pause-inactive-clusters/internal/models"
)

// GetAccessHistory returns the cluster's database access log, newest entry
// first, as delivered by the access-tracking endpoint. Entries whose
// timestamp arrives in an unknown format are dropped with a warning rather
// than treated as old.
func (c *Client) GetAccessHistory(ctx context.Context, projectID, clusterName string) ([]models.AccessLogEntry, error) {
	settings, _, err := c.api.AccessTracking.ListByCluster(ctx, projectID, clusterName, nil)
	if err != nil {
		return nil, fmt.Errorf("fetching access log for %s: %w", clusterName, err)
	}
	if settings == nil {
		return nil, nil
	}

	entries := make([]models.AccessLogEntry, 0, len(settings.AccessLogs))
	for _, raw := range settings.AccessLogs {
		if raw == nil {
			continue
		}
		entry, err := models.ParseAccessLogEntry(raw.Username, raw.Timestamp)
		if err != nil {
			log.Warningf("%s: skipping access log entry: %v", clusterName, err)
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

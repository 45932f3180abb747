// Package sweep walks every project and cluster in scope and pauses the
// clusters that have gone quiet. Each run is stateless: everything is built
// fresh from the API and discarded, and a cluster that slips through one run
// is simply re-evaluated on the next.
package sweep

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/op/go-logging"

	"github.com/wbleonard/pause-inactive-clusters/internal/config"
	"github.com/wbleonard/pause-inactive-clusters/internal/models"
	"github.com/wbleonard/pause-inactive-clusters/pkg/inactivity"
)

var log = logging.MustGetLogger("sweep")

// OrgAPI is the slice of the cluster-management API the sweep consumes.
type OrgAPI interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
	ListClusters(ctx context.Context, projectID string) ([]models.Cluster, error)
	// GetAccessHistory returns the cluster's access log most-recent-first.
	// The evaluator's first-match semantics depend on this ordering.
	GetAccessHistory(ctx context.Context, projectID, clusterName string) ([]models.AccessLogEntry, error)
	PauseCluster(ctx context.Context, projectID, clusterName string) error
}

// Run sweeps every project in its own goroutine and joins all of them before
// assembling the result. Only project listing can fail the run; every error
// past that point is recorded per project or per cluster and never aborts
// siblings.
func Run(ctx context.Context, cfg *config.SweepConfig, api OrgAPI) (*models.SweepResult, error) {
	start := time.Now()

	projects, err := api.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	// Each goroutine writes only its own slot, the same pattern as fanning
	// out over regions.
	type projectOutcome struct {
		records  []models.ClusterRecord
		excluded bool
		err      error
	}
	outcomes := make([]projectOutcome, len(projects))

	var wg sync.WaitGroup
	for i, p := range projects {
		if _, skip := cfg.ExcludedProjects[p.Name]; skip {
			outcomes[i].excluded = true
			log.Infof("skipping excluded project %s", p.Name)
			continue
		}
		wg.Add(1)
		go func(idx int, project models.Project) {
			defer wg.Done()
			records, err := sweepProject(ctx, cfg, api, project)
			outcomes[idx].records = records
			outcomes[idx].err = err
		}(i, p)
	}
	wg.Wait()

	result := &models.SweepResult{
		StartedAt: start,
		Duration:  time.Since(start),
	}
	for i, p := range projects {
		switch {
		case outcomes[i].excluded:
			result.ExcludedProjects = append(result.ExcludedProjects, p.Name)
		case outcomes[i].err != nil:
			log.Errorf("project %s: %v", p.Name, outcomes[i].err)
			result.FailedProjects = append(result.FailedProjects, models.ProjectFailure{
				ProjectName: p.Name,
				Err:         outcomes[i].err,
			})
		default:
			result.Records = append(result.Records, outcomes[i].records...)
		}
	}
	return result, nil
}

// sweepProject evaluates every cluster in one project. Only the cluster
// listing itself can fail the project.
func sweepProject(ctx context.Context, cfg *config.SweepConfig, api OrgAPI, project models.Project) ([]models.ClusterRecord, error) {
	clusters, err := api.ListClusters(ctx, project.ID)
	if err != nil {
		return nil, fmt.Errorf("listing clusters: %w", err)
	}

	records := make([]models.ClusterRecord, 0, len(clusters))
	for _, c := range clusters {
		records = append(records, sweepCluster(ctx, cfg, api, project, c))
	}
	return records, nil
}

func sweepCluster(ctx context.Context, cfg *config.SweepConfig, api OrgAPI, project models.Project, cluster models.Cluster) models.ClusterRecord {
	rec := models.ClusterRecord{
		ProjectID:   project.ID,
		ProjectName: project.Name,
		ClusterName: cluster.Name,
	}

	if !cluster.IsPausable() {
		rec.Outcome = models.OutcomeNotPausable
		rec.Reason = "shared tier clusters cannot be paused"
		return rec
	}
	if cluster.Paused {
		rec.Outcome = models.OutcomeAlreadyPaused
		rec.Reason = "already paused"
		return rec
	}

	entries, err := api.GetAccessHistory(ctx, project.ID, cluster.Name)
	if err != nil {
		log.Errorf("%s/%s: fetching access history: %v", project.Name, cluster.Name, err)
		rec.Outcome = models.OutcomeFetchFailed
		rec.Err = err
		return rec
	}

	window := inactivity.NewWindow(cfg.LookbackMinutes, time.Now())
	active, reason := inactivity.Evaluate(entries, window, cfg.IgnoredAccountIDs)
	rec.Reason = reason
	if last, ok := inactivity.MostRecentAccess(entries, cfg.IgnoredAccountIDs); ok {
		rec.LastAccess = &last
	}

	if active {
		log.Infof("%s/%s is active: %s", project.Name, cluster.Name, reason)
		rec.Outcome = models.OutcomeActive
		return rec
	}

	if cfg.DryRun {
		log.Infof("%s/%s would be paused (dry run): %s", project.Name, cluster.Name, reason)
		rec.Outcome = models.OutcomeWouldPause
		return rec
	}

	if err := api.PauseCluster(ctx, project.ID, cluster.Name); err != nil {
		log.Errorf("%s/%s: pausing: %v", project.Name, cluster.Name, err)
		rec.Outcome = models.OutcomePauseFailed
		rec.Err = err
		return rec
	}

	log.Infof("paused %s/%s: %s", project.Name, cluster.Name, reason)
	rec.Outcome = models.OutcomePaused
	return rec
}

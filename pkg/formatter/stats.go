package formatter

import (
	"fmt"
	"strings"

	"github.com/wbleonard/pause-inactive-clusters/internal/models"
)

// PrintSweepSummary prints the run-level counts and timing after the table.
func PrintSweepSummary(result *models.SweepResult) {
	fmt.Println()
	fmt.Printf("Sweep started at %s (took %.2f seconds)\n",
		result.StartedAt.Format("2006-01-02 15:04:05"),
		result.Duration.Seconds())

	fmt.Printf("Clusters: %d paused, %d would pause, %d active, %d already paused, %d not pausable, %d failed\n",
		result.Count(models.OutcomePaused),
		result.Count(models.OutcomeWouldPause),
		result.Count(models.OutcomeActive),
		result.Count(models.OutcomeAlreadyPaused),
		result.Count(models.OutcomeNotPausable),
		result.FailedCount())

	if len(result.ExcludedProjects) > 0 {
		fmt.Printf("Excluded projects: %s\n", strings.Join(result.ExcludedProjects, ", "))
	}
	for _, pf := range result.FailedProjects {
		fmt.Printf("Project %s failed: %v\n", pf.ProjectName, pf.Err)
	}
}

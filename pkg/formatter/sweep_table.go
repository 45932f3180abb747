package formatter

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/wbleonard/pause-inactive-clusters/internal/models"
)

// PrintSweepTable prints one row per evaluated cluster in a kubectl style
// table, pause actions first.
func PrintSweepTable(result *models.SweepResult) {
	if len(result.Records) == 0 {
		fmt.Println("No clusters evaluated.")
		return
	}

	// Sort a copy so the result keeps its iteration order for callers.
	records := make([]models.ClusterRecord, len(result.Records))
	copy(records, result.Records)
	sort.SliceStable(records, func(i, j int) bool {
		return outcomeRank(records[i].Outcome) < outcomeRank(records[j].Outcome)
	})

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "PROJECT\tCLUSTER\tOUTCOME\tLAST ACCESS\tREASON")
	for _, r := range records {
		lastAccess := "-"
		if r.LastAccess != nil {
			lastAccess = humanize.Time(*r.LastAccess)
		}
		reason := r.Reason
		if r.Err != nil {
			reason = r.Err.Error()
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			r.ProjectName,
			r.ClusterName,
			r.Outcome,
			lastAccess,
			truncateString(reason, 70))
	}
	w.Flush()
}

// outcomeRank orders table rows: actions taken, then failures, then skips.
func outcomeRank(o models.Outcome) int {
	switch o {
	case models.OutcomePaused, models.OutcomeWouldPause:
		return 0
	case models.OutcomePauseFailed, models.OutcomeFetchFailed:
		return 1
	case models.OutcomeActive:
		return 2
	default:
		return 3
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/wbleonard/pause-inactive-clusters/internal/config"
	"github.com/wbleonard/pause-inactive-clusters/internal/version"
	"github.com/wbleonard/pause-inactive-clusters/pkg/atlas"
	"github.com/wbleonard/pause-inactive-clusters/pkg/formatter"
	"github.com/wbleonard/pause-inactive-clusters/pkg/sweep"
)

var (
	showVersion bool
	dryRun      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "atlas-autopause",
		Short: "Pause inactive MongoDB Atlas clusters",
		Long: `atlas-autopause scans every project in an Atlas organization,
checks each dedicated cluster's database access log for recent user
activity, and pauses the clusters that have gone quiet.

It is meant to run on a schedule; all configuration comes from the
environment (or a .env file in the working directory).`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				info := version.Get()
				fmt.Printf("atlas-autopause %s (built: %s, commit: %s, %s)\n",
					info.Version, info.BuildDate, info.GitCommit, info.GoVersion)
				return nil
			}
			return run(cmd.Context())
		},
	}

	rootCmd.Flags().BoolVarP(&showVersion, "version", "v", false, "Show version information")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Evaluate clusters without pausing them")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}
	if dryRun {
		cfg.DryRun = true
	}

	client, err := atlas.NewClient(cfg.PublicKey, cfg.PrivateKey, cfg.OrgID)
	if err != nil {
		return err
	}

	fmt.Println("Starting cluster sweep ...")
	s := spinner.New(spinner.CharSets[9], 200*time.Millisecond)
	s.Suffix = " Evaluating clusters ..."
	s.Start()

	result, err := sweep.Run(ctx, cfg, client)
	if err != nil {
		s.Stop()
		return err
	}

	s.FinalMSG = fmt.Sprintf("✓ [%d clusters evaluated] Sweep completed in %.2f seconds\n",
		len(result.Records), result.Duration.Seconds())
	s.Stop()

	formatter.PrintSweepTable(result)
	formatter.PrintSweepSummary(result)
	return nil
}

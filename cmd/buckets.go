package cmd

import (
	"context"

	"github.com/bbops/gsweep/internal/message"
	"github.com/bbops/gsweep/pkg/gcp"
	"github.com/bbops/gsweep/pkg/scanner"
	"github.com/spf13/cobra"
)

var bucketsCmd = &cobra.Command{
	Use:   "buckets",
	Short: "List the storage buckets of every project in an organization",
	RunE:  runBuckets,
}

func init() {
	bucketsCmd.Flags().String("org-id", "", "GCP organization ID")
	bucketsCmd.Flags().StringSlice("exclude-bucket", nil, "bucket URI to skip, repeatable")
	bucketsCmd.Flags().Duration("timeout", 0, "overall deadline for the run (0 disables)")
	rootCmd.AddCommand(bucketsCmd)
}

func runBuckets(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	message.Banner()

	orgID, err := resolveOrgID(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if timeout, _ := cmd.Flags().GetDuration("timeout"); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if err := checkCredentials(ctx); err != nil {
		return err
	}

	client, err := gcp.NewClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	s := scanner.New(client, scanner.Config{
		OrgID:           orgID,
		ExcludedBuckets: excludedBuckets(cmd),
	})
	summary, err := s.ListBuckets(ctx)
	if err != nil {
		return err
	}

	message.Section("Summary")
	message.Info("Projects: %d, buckets: %d", summary.Projects, summary.Buckets)
	if len(summary.SkippedProjects) > 0 {
		message.Warning("Projects skipped: %d", len(summary.SkippedProjects))
	}
	return nil
}

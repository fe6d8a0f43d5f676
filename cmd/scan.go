package cmd

import (
	"context"
	"log/slog"

	"github.com/bbops/gsweep/internal/message"
	"github.com/bbops/gsweep/pkg/gcp"
	"github.com/bbops/gsweep/pkg/report"
	"github.com/bbops/gsweep/pkg/scanner"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Search every bucket in an organization for archive files",
	Long: `Scan enumerates all projects in a GCP organization, lists the storage
buckets of each project, and searches them recursively for .zip, .tar and
.gz objects. Matches are written to a timestamped CSV report.`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().String("org-id", "", "GCP organization ID")
	scanCmd.Flags().StringP("output", "o", "", "report file path (default archive_files_<timestamp>.csv)")
	scanCmd.Flags().StringSlice("exclude-bucket", nil, "bucket URI to skip, repeatable")
	scanCmd.Flags().Duration("timeout", 0, "overall deadline for the run (0 disables)")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
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

	runID := uuid.NewString()
	slog.Debug("starting scan", "run_id", runID, "org", orgID)

	if err := checkCredentials(ctx); err != nil {
		return err
	}

	client, err := gcp.NewClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	path, _ := cmd.Flags().GetString("output")
	if path == "" {
		path = report.DefaultPath()
	}
	rep, err := report.Create(path)
	if err != nil {
		message.Error("Cannot open report file: %v", err)
		return err
	}
	defer rep.Close()

	message.Info("Searching organization %s for archive files", orgID)
	s := scanner.New(client, scanner.Config{
		OrgID:           orgID,
		ExcludedBuckets: excludedBuckets(cmd),
	})
	summary, err := s.ScanArchives(ctx, rep)
	if err != nil {
		return err
	}

	message.Section("Summary")
	message.Info("Projects scanned: %d", summary.Projects)
	if len(summary.SkippedProjects) > 0 {
		errPath := report.PermissionErrorsPath()
		if err := report.WritePermissionErrors(errPath, summary.SkippedProjects); err != nil {
			return err
		}
		message.Warning("Projects skipped: %d (saved to %s)", len(summary.SkippedProjects), errPath)
	}
	message.Success("Found %d archive files", summary.Records)
	message.Success("Results saved to %s", rep.Path())
	slog.Debug("scan complete", "run_id", runID, "records", summary.Records)
	return nil
}

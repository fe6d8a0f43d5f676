package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bbops/gsweep/internal/message"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/oauth2/google"
)

const cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

// resolveOrgID takes the organization ID from the flag, then the config
// file, then an interactive prompt when stdin is a terminal. Empty or
// whitespace-only input is rejected before any API call is made.
func resolveOrgID(cmd *cobra.Command) (string, error) {
	orgID, _ := cmd.Flags().GetString("org-id")
	if orgID == "" {
		orgID = viper.GetString("org-id")
	}
	if strings.TrimSpace(orgID) == "" && isatty.IsTerminal(os.Stdin.Fd()) {
		fmt.Fprint(os.Stderr, "Organization ID: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read organization ID: %w", err)
		}
		orgID = line
	}
	return validateOrgID(orgID)
}

func validateOrgID(orgID string) (string, error) {
	orgID = strings.TrimSpace(orgID)
	if orgID == "" {
		return "", errors.New("organization ID is required")
	}
	return orgID, nil
}

// excludedBuckets merges the config file exclusion list with any
// --exclude-bucket flags.
func excludedBuckets(cmd *cobra.Command) []string {
	excluded := viper.GetStringSlice("excluded-buckets")
	flagVals, _ := cmd.Flags().GetStringSlice("exclude-bucket")
	return append(excluded, flagVals...)
}

// checkCredentials resolves application default credentials up front so a
// missing login fails fast with guidance instead of midway through a scan.
func checkCredentials(ctx context.Context) error {
	creds, err := google.FindDefaultCredentials(ctx, cloudPlatformScope)
	if err != nil {
		return fmt.Errorf("no application default credentials, run 'gcloud auth application-default login': %w", err)
	}
	if creds.ProjectID != "" {
		message.Info("Using application default credentials (project %s)", creds.ProjectID)
	} else {
		message.Info("Using application default credentials")
	}
	return nil
}

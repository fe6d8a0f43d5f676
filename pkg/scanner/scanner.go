package scanner

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bbops/gsweep/internal/message"
	"github.com/bbops/gsweep/pkg/gcp"
	gcperrors "github.com/bbops/gsweep/pkg/gcp/errors"
)

// DefaultExtensions are the archive suffixes scanned when none are configured.
var DefaultExtensions = []string{".zip", ".tar", ".gz"}

// CloudClient is the provider boundary. gcp.Client implements it; tests
// substitute fakes.
type CloudClient interface {
	ListProjects(ctx context.Context, orgID string) ([]string, error)
	ListBuckets(ctx context.Context, projectID string) ([]string, error)
	FindArchives(ctx context.Context, bucketURI, ext string) ([]string, error)
}

// ReportSink receives records in discovery order.
type ReportSink interface {
	Append(rec Record) error
}

type Config struct {
	OrgID           string
	Extensions      []string
	ExcludedBuckets []string
}

// Summary is what the orchestrator reports after a run, successful or not.
type Summary struct {
	Projects        int
	SkippedProjects []string
	Buckets         int
	ExcludedBuckets int
	Records         int
}

// Scanner walks an organization strictly sequentially: one project at a
// time, one bucket at a time, one extension at a time. Cancellation is
// observed at project and bucket boundaries only, so a single extension
// query is never left half-reported.
type Scanner struct {
	client  CloudClient
	cfg     Config
	exclude map[string]bool
}

func New(client CloudClient, cfg Config) *Scanner {
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = DefaultExtensions
	}
	exclude := make(map[string]bool, len(cfg.ExcludedBuckets))
	for _, b := range cfg.ExcludedBuckets {
		exclude[b] = true
	}
	return &Scanner{client: client, cfg: cfg, exclude: exclude}
}

// ScanArchives enumerates every project in the organization and appends an
// archive record to sink for each matching object. Provider failures are
// recovered at the smallest enclosing scope; only enumeration and report
// write failures abort the run.
func (s *Scanner) ScanArchives(ctx context.Context, sink ReportSink) (*Summary, error) {
	summary := &Summary{}

	projects, err := s.client.ListProjects(ctx, s.cfg.OrgID)
	if err != nil {
		return summary, fmt.Errorf("failed to enumerate projects: %w", err)
	}
	if len(projects) == 0 {
		message.Info("No projects found in organization %s", s.cfg.OrgID)
		return summary, nil
	}
	message.Info("Found %d projects", len(projects))

	for _, project := range projects {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		message.Section("Project: %s", project)
		summary.Projects++

		buckets, err := s.listBuckets(ctx, project)
		if err != nil {
			summary.SkippedProjects = append(summary.SkippedProjects, project)
			continue
		}
		if len(buckets) == 0 {
			message.Info("No buckets found in project %s", project)
			continue
		}

		for _, bucket := range buckets {
			if err := ctx.Err(); err != nil {
				return summary, err
			}
			if s.exclude[bucket] {
				message.Info("Skipping bucket: %s", bucket)
				summary.ExcludedBuckets++
				continue
			}
			summary.Buckets++
			message.Info("Scanning bucket: %s", bucket)

			n, err := s.scanBucket(ctx, project, bucket, sink)
			if err != nil {
				return summary, err
			}
			summary.Records += n
		}
	}

	return summary, nil
}

// ListBuckets prints the buckets of every project in the organization.
// No report file is involved in this mode.
func (s *Scanner) ListBuckets(ctx context.Context) (*Summary, error) {
	summary := &Summary{}

	projects, err := s.client.ListProjects(ctx, s.cfg.OrgID)
	if err != nil {
		return summary, fmt.Errorf("failed to enumerate projects: %w", err)
	}
	if len(projects) == 0 {
		message.Info("No projects found in organization %s", s.cfg.OrgID)
		return summary, nil
	}
	message.Info("Found %d projects", len(projects))

	for _, project := range projects {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		message.Section("Project: %s", project)
		summary.Projects++

		buckets, err := s.listBuckets(ctx, project)
		if err != nil {
			summary.SkippedProjects = append(summary.SkippedProjects, project)
			continue
		}
		if len(buckets) == 0 {
			message.Info("No buckets found in project %s", project)
			continue
		}

		for _, bucket := range buckets {
			if s.exclude[bucket] {
				message.Info("Skipping bucket: %s", bucket)
				summary.ExcludedBuckets++
				continue
			}
			summary.Buckets++
			message.Success("%s", bucket)
		}
	}

	return summary, nil
}

// listBuckets wraps the provider call with project-level failure handling
// and drops entries that do not have the bucket URI shape.
func (s *Scanner) listBuckets(ctx context.Context, project string) ([]string, error) {
	entries, err := s.client.ListBuckets(ctx, project)
	if err != nil {
		if gcperrors.IsPermissionDenied(err) {
			message.Warning("Permission denied for project %s, skipping", project)
		} else if gcperrors.IsServiceDisabled(err) {
			message.Warning("Storage API disabled in project %s, skipping", project)
		} else {
			message.Warning("Skipping project %s: %v", project, err)
		}
		return nil, err
	}

	buckets := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !gcp.IsBucketURI(entry) {
			slog.Debug("dropping non-bucket entry", "project", project, "entry", entry)
			continue
		}
		buckets = append(buckets, entry)
	}
	return buckets, nil
}

// scanBucket runs one query per extension. A failed extension query is
// treated as empty and never blocks the remaining extensions; a sink
// failure is fatal since the report is the whole point of the run.
func (s *Scanner) scanBucket(ctx context.Context, project, bucket string, sink ReportSink) (int, error) {
	n := 0
	for _, ext := range s.cfg.Extensions {
		paths, err := s.client.FindArchives(ctx, bucket, ext)
		if err != nil {
			message.Warning("Listing %s objects in %s failed: %v", ext, bucket, err)
			continue
		}
		slog.Debug("extension query done", "bucket", bucket, "ext", ext, "matches", len(paths))

		for _, path := range paths {
			rec := Record{
				Project:  project,
				Bucket:   bucket,
				FileType: strings.TrimPrefix(ext, "."),
				FilePath: path,
			}
			if err := sink.Append(rec); err != nil {
				return n, fmt.Errorf("failed to write report record: %w", err)
			}
			n++
		}
	}
	if n == 0 {
		message.Info("No archive files in %s", bucket)
	}
	return n, nil
}

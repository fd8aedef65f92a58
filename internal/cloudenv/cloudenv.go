// Package cloudenv detects the Google Cloud environment the pipeline runs in.
// Detection is best effort: everything degrades to empty values outside GCP.
package cloudenv

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	metadataProjectURL = "http://metadata.google.internal/computeMetadata/v1/project/project-id"
	metadataRegionURL  = "http://metadata.google.internal/computeMetadata/v1/instance/region"
	metadataTimeout    = 5 * time.Second
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Detector resolves project, region and Cloud Run identity from environment
// variables, falling back to the metadata server.
type Detector struct {
	httpClient httpDoer
	getenv     func(string) string
}

// NewDetector returns a detector backed by the real environment and a
// metadata-server client with a short timeout.
func NewDetector() *Detector {
	return &Detector{
		httpClient: &http.Client{Timeout: metadataTimeout},
		getenv:     os.Getenv,
	}
}

// ProjectID resolves the GCP project ID, or "" when none can be determined.
func (d *Detector) ProjectID(ctx context.Context) string {
	if id := d.getenv("GOOGLE_CLOUD_PROJECT"); id != "" {
		return id
	}
	if id := d.getenv("GCP_PROJECT"); id != "" {
		return id
	}
	return d.queryMetadata(ctx, metadataProjectURL)
}

// Region resolves the GCP region, or "" when none can be determined. The
// metadata server reports a full path like projects/123/regions/us-central1;
// only the last segment is returned.
func (d *Detector) Region(ctx context.Context) string {
	if region := d.getenv("GOOGLE_CLOUD_REGION"); region != "" {
		return region
	}
	if region := d.getenv("CLOUD_RUN_REGION"); region != "" {
		return region
	}
	path := d.queryMetadata(ctx, metadataRegionURL)
	if path == "" {
		return ""
	}
	parts := strings.Split(path, "/")
	return parts[len(parts)-1]
}

// IsCloudRun reports whether the process runs inside Cloud Run.
func (d *Detector) IsCloudRun() bool {
	return d.getenv("K_SERVICE") != "" || d.getenv("K_REVISION") != "" || d.getenv("K_CONFIGURATION") != ""
}

// ServiceName returns the Cloud Run service name, or "" outside Cloud Run.
func (d *Detector) ServiceName() string {
	return d.getenv("K_SERVICE")
}

// LogEnvironment emits one structured line describing the detected
// environment. Useful at startup for debugging deployments.
func (d *Detector) LogEnvironment(ctx context.Context, logger *slog.Logger) {
	if logger == nil {
		return
	}
	logger.Info("cloud environment",
		slog.String("project_id", d.ProjectID(ctx)),
		slog.String("region", d.Region(ctx)),
		slog.String("cloud_run_service", d.ServiceName()),
		slog.Bool("is_cloud_run", d.IsCloudRun()),
	)
}

func (d *Detector) queryMetadata(ctx context.Context, url string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("Metadata-Flavor", "Google")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 256))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(body))
}

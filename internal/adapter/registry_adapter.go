package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	m "bvi.dev/pkg/bvi/internal/model"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultRegistryURL is the public npm registry.
const DefaultRegistryURL = "https://registry.npmjs.org"

const registryCacheSize = 128

// RegistryAdapter resolves package versions from a package registry.
type RegistryAdapter interface {
	// LatestVersion returns the version tagged "latest" for the package.
	// The value is returned verbatim, without any format validation.
	LatestVersion(ctx context.Context, name string) (string, error)
}

// NPMRegistryAdapter queries the `<registry>/<name>/latest` endpoint.
// Resolved versions are kept in memory for the lifetime of the adapter so a
// package is looked up at most once per process.
type NPMRegistryAdapter struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
	cache   *lru.Cache[string, string]
}

type latestManifest struct {
	Version string `json:"version"`
}

// NewNPMRegistryAdapter constructs an adapter for baseURL. An empty baseURL
// selects DefaultRegistryURL and a non-positive timeout means no timeout.
func NewNPMRegistryAdapter(baseURL string, timeout time.Duration) *NPMRegistryAdapter {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultRegistryURL
	}

	// lru.New only fails for a non-positive size.
	cache, _ := lru.New[string, string](registryCacheSize)

	return &NPMRegistryAdapter{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
		timeout: timeout,
		cache:   cache,
	}
}

// LatestVersion fetches the latest version of name. Failures are not retried.
func (a *NPMRegistryAdapter) LatestVersion(ctx context.Context, name string) (string, error) {
	if version, ok := a.cache.Get(name); ok {
		slog.Debug("Registry cache hit", "package", name, "version", version)
		return version, nil
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	url := fmt.Sprintf("%s/%s/latest", a.baseURL, name)
	slog.Debug("Fetching latest version", "package", name, "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", m.ErrRegistry, name, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		slog.Error("Registry request failed", "package", name, "error", err)
		return "", fmt.Errorf("%w: %s: %w", m.ErrRegistry, name, err)
	}

	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			slog.Warn("Failed to close registry response body", "package", name, "error", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %s: HTTP status %d", m.ErrRegistry, name, resp.StatusCode)
	}

	var manifest latestManifest
	if err := json.NewDecoder(resp.Body).Decode(&manifest); err != nil {
		return "", fmt.Errorf("%w: decoding %s: %w", m.ErrRegistry, name, err)
	}

	if manifest.Version == "" {
		return "", fmt.Errorf("%w: %s: response has no version", m.ErrRegistry, name)
	}

	a.cache.Add(name, manifest.Version)
	slog.Info("Resolved package version", "package", name, "version", manifest.Version)

	return manifest.Version, nil
}

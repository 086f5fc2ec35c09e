// Package version reports the tabpad version and checks for newer releases.
package version

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Version is the tabpad release. Overridden at build time with
// -ldflags "-X github.com/studiowebux/tabpad/internal/version.Version=...".
var Version = "0.1.0"

const (
	// ReleasesURL is the GitHub API endpoint for the latest release
	ReleasesURL  = "https://api.github.com/repos/studiowebux/tabpad/releases/latest"
	checkTimeout = 5 * time.Second
)

// Release is the subset of a GitHub release that the checker reads
type Release struct {
	TagName string `json:"tag_name"`
	Name    string `json:"name"`
	HTMLURL string `json:"html_url"`
}

// Version returns the tag without its "v" prefix
func (r Release) Version() string {
	return strings.TrimPrefix(r.TagName, "v")
}

// Checker queries a releases endpoint
type Checker struct {
	URL    string
	Client *http.Client
}

// NewChecker returns a checker for the public tabpad releases
func NewChecker() *Checker {
	return &Checker{
		URL:    ReleasesURL,
		Client: &http.Client{Timeout: checkTimeout},
	}
}

// Latest fetches the latest published release
func (c *Checker) Latest(ctx context.Context) (Release, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return Release{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "tabpad/"+Version)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return Release{}, fmt.Errorf("failed to fetch latest release: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Release{}, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var release Release
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return Release{}, fmt.Errorf("failed to decode release: %w", err)
	}
	return release, nil
}

// CheckForUpdate reports whether the latest release is newer than current
func (c *Checker) CheckForUpdate(ctx context.Context, current string) (Release, bool, error) {
	release, err := c.Latest(ctx)
	if err != nil {
		return Release{}, false, err
	}
	latest := release.Version()
	return release, latest != "" && IsNewer(latest, strings.TrimPrefix(current, "v")), nil
}

// IsNewer compares dotted versions. Pre-release and build suffixes are
// ignored, so "0.2.0-rc1" equals "0.2.0".
func IsNewer(latest, current string) bool {
	a := parseVersion(latest)
	b := parseVersion(current)

	n := max(len(a), len(b))
	for i := 0; i < n; i++ {
		var x, y int
		if i < len(a) {
			x = a[i]
		}
		if i < len(b) {
			y = b[i]
		}
		if x != y {
			return x > y
		}
	}
	return false
}

func parseVersion(v string) []int {
	if idx := strings.IndexAny(v, "-+"); idx != -1 {
		v = v[:idx]
	}

	parts := strings.Split(v, ".")
	out := make([]int, 0, len(parts))
	for _, part := range parts {
		num, err := strconv.Atoi(part)
		if err != nil {
			continue
		}
		out = append(out, num)
	}
	return out
}

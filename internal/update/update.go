// Package update checks for and applies new application releases.
package update

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
	"strings"
	"time"

	"ripper/internal/domain/consts"
	"ripper/internal/models"
	"ripper/internal/utils/logging"

	"github.com/Masterminds/semver/v3"
)

// Manager performs release checks and platform-specific updates.
type Manager struct {
	Owner   string
	Repo    string
	Current string // running build version

	// APIBase overrides the release endpoint, mainly for tests.
	APIBase string
	// Client defaults to a client with a sane timeout.
	Client *http.Client

	goos string
}

// New returns a manager for the application's release repository.
func New(current string) *Manager {
	return &Manager{
		Owner:   consts.ReleaseOwner,
		Repo:    consts.ReleaseRepo,
		Current: current,
		APIBase: consts.ReleaseAPIBase,
		Client:  &http.Client{Timeout: 30 * time.Second},
		goos:    runtime.GOOS,
	}
}

// releaseResponse is the subset of the release metadata we read. The
// display name of the latest published release carries the version.
type releaseResponse struct {
	Name    string `json:"name"`
	TagName string `json:"tag_name"`
}

// Check fetches the latest published release and compares versions.
// The result is computed fresh on every call, never cached.
func (m *Manager) Check(ctx context.Context) (models.UpdateInfo, error) {
	current, err := semver.NewVersion(strings.TrimPrefix(m.Current, "v"))
	if err != nil {
		return models.UpdateInfo{}, fmt.Errorf("%w: running version %q: %v", models.ErrUpdateFailed, m.Current, err)
	}

	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", m.APIBase, m.Owner, m.Repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.UpdateInfo{}, fmt.Errorf("%w: %v", models.ErrUpdateFailed, err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := m.client().Do(req)
	if err != nil {
		return models.UpdateInfo{}, fmt.Errorf("%w: %v", models.ErrUpdateFailed, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logging.E("failed to close release response body: %v", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return models.UpdateInfo{}, fmt.Errorf("%w: release endpoint returned %s", models.ErrUpdateFailed, resp.Status)
	}

	var release releaseResponse
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return models.UpdateInfo{}, fmt.Errorf("%w: %v", models.ErrUpdateFailed, err)
	}

	name := release.Name
	if name == "" {
		name = release.TagName
	}
	latest, err := semver.NewVersion(strings.TrimPrefix(name, "v"))
	if err != nil {
		return models.UpdateInfo{}, fmt.Errorf("%w: release name %q is not a version: %v", models.ErrUpdateFailed, name, err)
	}

	info := models.UpdateInfo{
		LatestVersion:   latest,
		CurrentVersion:  current,
		UpdateAvailable: latest.GreaterThan(current),
	}
	logging.I("Release check: running %s, latest %s, update available: %v",
		current, latest, info.UpdateAvailable)
	return info, nil
}

// Apply performs the platform's update strategy. Windows downloads the
// installer for the user to run; other platforms re-run the install
// script. Either way a failure leaves the current install untouched.
func (m *Manager) Apply(ctx context.Context, notify func(status string)) error {
	if notify == nil {
		notify = func(string) {}
	}
	if m.os() == "windows" {
		return m.applyWindows(ctx, notify)
	}
	return m.applyNix(ctx, notify)
}

func (m *Manager) client() *http.Client {
	if m.Client != nil {
		return m.Client
	}
	return http.DefaultClient
}

func (m *Manager) os() string {
	if m.goos != "" {
		return m.goos
	}
	return runtime.GOOS
}

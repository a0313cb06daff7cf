package update

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"

	"ripper/internal/domain/consts"
	"ripper/internal/models"
	"ripper/internal/paths"
	"ripper/internal/utils/logging"
)

// applyWindows downloads the latest installer into a dedicated folder
// under the user's Downloads directory and opens that folder.
// Completion means "downloaded", not "installed"; running the installer
// stays a manual user action.
func (m *Manager) applyWindows(ctx context.Context, notify func(string)) error {
	dir := filepath.Join(paths.DefaultDownloadDir(), consts.UpdateSubdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", models.ErrUpdateFailed, err)
	}

	url := fmt.Sprintf("https://github.com/%s/%s/releases/latest/download/%s-setup.exe",
		m.Owner, m.Repo, m.Repo)
	dest := filepath.Join(dir, m.Repo+"-setup.exe")

	if err := m.downloadFile(ctx, url, dest); err != nil {
		return fmt.Errorf("%w: %v", models.ErrUpdateFailed, err)
	}

	notify(consts.StatusWinDownloaded)

	if err := openFolder(dir); err != nil {
		// Installer is in place either way; opening the folder is a
		// convenience, not part of the contract.
		logging.W("Could not open update folder %q: %v", dir, err)
	}
	return nil
}

// applyNix re-runs the remote install script through the shell and
// succeeds only on a clean exit. The script itself swaps the install
// atomically, so a failed run leaves the previous install launchable.
func (m *Manager) applyNix(ctx context.Context, _ func(string)) error {
	script := fmt.Sprintf(`/bin/bash -c "$(curl -sL %s)"`, consts.InstallScriptURL)
	cmd := exec.CommandContext(ctx, "/bin/bash", "-c", script)

	out, err := cmd.CombinedOutput()
	if err != nil {
		logging.E("Install script failed: %v\n%s", err, out)
		return fmt.Errorf("%w: install script: %v", models.ErrUpdateFailed, err)
	}
	return nil
}

// downloadFile fetches url into dest via a temp file and rename, so a
// partial download never leaves a half-written installer behind.
func (m *Manager) downloadFile(ctx context.Context, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := m.client().Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logging.E("failed to close download body: %v", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download returned %s", resp.Status)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), ".ripper-update-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, dest)
}

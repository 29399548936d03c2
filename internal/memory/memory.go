// Package memory manages the .openkit operations area: bootstrapping it,
// capturing session snapshots and reviewing the accumulated backlog.
package memory

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/openkit-devtools/openkit/internal/projectconfig"
)

// Operations subdirectories under .openkit/ops.
const (
	SessionsDir     = "sessions"
	ObservationsDir = "observations"
	TensionsDir     = "tensions"
	HealthDir       = "health"
	QueueDir        = "queue"
)

// opsPath joins an operations subdirectory onto projectRoot.
func opsPath(projectRoot, sub string) string {
	return filepath.Join(projectRoot, filepath.FromSlash(projectconfig.OpsDir), sub)
}

// Layout returns every directory Init creates, in creation order.
func Layout(projectRoot string) []string {
	dirs := make([]string, 0, 6)
	for _, sub := range []string{SessionsDir, ObservationsDir, TensionsDir, HealthDir, QueueDir} {
		dirs = append(dirs, opsPath(projectRoot, sub))
	}
	return append(dirs, filepath.Join(projectRoot, filepath.FromSlash(projectconfig.MemoryDir)))
}

// InitResult lists what Init wrote and what it left alone.
type InitResult struct {
	Root    string
	Written []string
	Skipped []string
}

// Init creates the operations layout and writes the default config,
// derivation and queue files. Existing files are kept unless force is set.
func Init(projectRoot string, force bool) (*InitResult, error) {
	for _, dir := range Layout(projectRoot) {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	files := []struct {
		rel   string
		value any
	}{
		{projectconfig.ConfigPath, projectconfig.New()},
		{projectconfig.DerivationPath, projectconfig.NewDerivation()},
		{projectconfig.QueuePath, projectconfig.NewQueue()},
	}

	res := &InitResult{Root: projectRoot}
	for _, f := range files {
		path := filepath.Join(projectRoot, filepath.FromSlash(f.rel))
		written, err := projectconfig.WriteYAML(path, f.value, force)
		if err != nil {
			return nil, err
		}
		if written {
			res.Written = append(res.Written, f.rel)
		} else {
			res.Skipped = append(res.Skipped, f.rel)
		}
	}
	slog.Debug("Initialized memory layout", "root", projectRoot, "written", len(res.Written), "skipped", len(res.Skipped))
	return res, nil
}

// Existing returns the init-managed files that already exist under
// projectRoot, so callers can confirm before overwriting them.
func Existing(projectRoot string) []string {
	var found []string
	for _, rel := range []string{projectconfig.ConfigPath, projectconfig.DerivationPath, projectconfig.QueuePath} {
		if _, err := os.Stat(filepath.Join(projectRoot, filepath.FromSlash(rel))); err == nil {
			found = append(found, rel)
		}
	}
	return found
}

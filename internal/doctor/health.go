package doctor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/openkit-devtools/openkit/internal/projectconfig"
)

// WriteHealthFile persists the report to .openkit/ops/health/memory-health.json
// under projectRoot and returns the written path.
func WriteHealthFile(projectRoot string, r *Report) (string, error) {
	data, err := r.MarshalIndented()
	if err != nil {
		return "", err
	}
	path := filepath.Join(projectRoot, filepath.FromSlash(projectconfig.HealthPath))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

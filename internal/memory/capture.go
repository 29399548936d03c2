package memory

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/openkit-devtools/openkit/internal/validation"
)

// Capture defaults.
const (
	DefaultSummary = "OpenKit memory session capture"
	DefaultAction  = "capture"
)

// Snapshot is a captured session written to .openkit/ops/sessions.
type Snapshot struct {
	Version   int      `json:"version"`
	SessionID string   `json:"session_id"`
	StartedAt string   `json:"started_at"`
	EndedAt   string   `json:"ended_at"`
	Summary   string   `json:"summary"`
	Actions   []string `json:"actions"`
}

// CaptureOptions fills the snapshot. Empty fields take defaults.
type CaptureOptions struct {
	SessionID string
	Summary   string
	Actions   []string
	// Now defaults to time.Now.
	Now func() time.Time
}

// CaptureResult is the written snapshot and its path.
type CaptureResult struct {
	Snapshot *Snapshot
	Path     string
}

// Capture writes a session snapshot. Files are named
// <unix seconds>-<8 hex>.json so captures within one second do not collide.
func Capture(projectRoot string, opts CaptureOptions) (*CaptureResult, error) {
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	secs := strconv.FormatInt(now().Unix(), 10)

	snap := &Snapshot{
		Version:   1,
		SessionID: opts.SessionID,
		StartedAt: secs,
		EndedAt:   secs,
		Summary:   opts.Summary,
		Actions:   opts.Actions,
	}
	if snap.SessionID == "" {
		snap.SessionID = "mk-" + secs
	}
	if snap.Summary == "" {
		snap.Summary = DefaultSummary
	}
	if len(snap.Actions) == 0 {
		snap.Actions = []string{DefaultAction}
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize session snapshot: %w", err)
	}
	if errs := validation.ValidateSnapshotJSON(data); len(errs) > 0 {
		return nil, fmt.Errorf("invalid session snapshot: %s", strings.Join(errs, "; "))
	}

	dir := opsPath(projectRoot, SessionsDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dir, err)
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	path := filepath.Join(dir, secs+"-"+suffix+".json")
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return &CaptureResult{Snapshot: snap, Path: path}, nil
}

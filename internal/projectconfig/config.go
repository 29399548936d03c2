// Package projectconfig provides the MemoryConfig struct and loader for the
// .openkit/memory/config.yaml project configuration file.
package projectconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/openkit-devtools/openkit/internal/checks"
	"github.com/openkit-devtools/openkit/internal/scoring"
	"github.com/openkit-devtools/openkit/internal/validation"
	"github.com/openkit-devtools/openkit/internal/wikilink"
)

// Layout of the .openkit directory, relative to the project root.
const (
	StateDir       = ".openkit"
	MemoryDir      = ".openkit/memory"
	OpsDir         = ".openkit/ops"
	ConfigPath     = ".openkit/memory/config.yaml"
	DerivationPath = ".openkit/memory/derivation.yaml"
	QueuePath      = ".openkit/ops/queue.yaml"
	HealthPath     = ".openkit/ops/health/memory-health.json"
)

// Default values for memory configuration. These are the single source of
// truth for the file: New() references them and no other code should
// duplicate them. Scoring and hub defaults come from their packages.
const (
	DefaultVersion = 1
	DefaultMode    = "assisted"

	DefaultDocsDir        = "docs"
	DefaultStaleAfterDays = 45
)

// HealthThresholds holds the minimum scores for each status.
type HealthThresholds struct {
	Healthy int `yaml:"healthy,omitempty"`
	Warning int `yaml:"warning,omitempty"`
}

// LinkingConfig toggles the linking checks.
type LinkingConfig struct {
	RequireInlineLinks    *bool `yaml:"require_inline_links,omitempty"`
	RequireRelatedSection *bool `yaml:"require_related_section,omitempty"`
}

// DoctorConfig holds the document set and policy used by memory doctor.
type DoctorConfig struct {
	DocsDir string `yaml:"docs_dir,omitempty"`
	// StripPrefix is a pointer so an explicit "" can disable stripping.
	StripPrefix    *string        `yaml:"strip_prefix,omitempty"`
	StaleAfterDays int            `yaml:"stale_after_days,omitempty"`
	Exclude        []string       `yaml:"exclude,omitempty"`
	RequiredHubs   []string       `yaml:"required_hubs,omitempty"`
	Deductions     map[string]int `yaml:"deductions,omitempty"`
}

// MemoryConfig is the top-level configuration loaded from config.yaml.
type MemoryConfig struct {
	Version          int              `yaml:"version"`
	Mode             string           `yaml:"mode,omitempty"`
	HealthThresholds HealthThresholds `yaml:"health_thresholds,omitempty"`
	Linking          LinkingConfig    `yaml:"linking,omitempty"`
	Doctor           DoctorConfig     `yaml:"doctor,omitempty"`
}

// New returns a MemoryConfig with all hard-coded defaults populated.
func New() *MemoryConfig {
	return &MemoryConfig{
		Version: DefaultVersion,
		Mode:    DefaultMode,
		HealthThresholds: HealthThresholds{
			Healthy: scoring.DefaultHealthyThreshold,
			Warning: scoring.DefaultWarningThreshold,
		},
		Linking: LinkingConfig{
			RequireInlineLinks:    boolPtr(true),
			RequireRelatedSection: boolPtr(true),
		},
		Doctor: DoctorConfig{
			DocsDir:        DefaultDocsDir,
			StripPrefix:    stringPtr(wikilink.DefaultStripPrefix),
			StaleAfterDays: DefaultStaleAfterDays,
			RequiredHubs:   slices.Clone(checks.DefaultRequiredHubs),
			Deductions:     scoring.DefaultDeductions(),
		},
	}
}

// Load reads config.yaml under projectRoot, merges it onto defaults, and
// applies environment overrides. A missing file yields defaults with a nil
// error. Real I/O and parse errors are returned to the caller.
func Load(projectRoot string) (*MemoryConfig, error) {
	cfg := New()

	path := filepath.Join(projectRoot, filepath.FromSlash(ConfigPath))
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("loading %s: %w", ConfigPath, err)
	default:
		if errs := validation.ValidateConfigBytes(data); len(errs) > 0 {
			return nil, fmt.Errorf("invalid %s: %s", ConfigPath, strings.Join(errs, "; "))
		}
		var fileCfg MemoryConfig
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", ConfigPath, err)
		}
		mergeConfig(cfg, &fileCfg)
	}

	if err := applyEnv(cfg, os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FindProjectRoot walks up from dir looking for a .openkit directory
// (max 10 levels). Returns os.ErrNotExist if none is found.
func FindProjectRoot(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for i := 0; i < 10; i++ {
		info, err := os.Stat(filepath.Join(dir, StateDir))
		if err == nil && info.IsDir() {
			return dir, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("checking %q: %w", dir, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

// mergeConfig overlays non-zero values from src onto dst.
func mergeConfig(dst, src *MemoryConfig) {
	if src.Version != 0 {
		dst.Version = src.Version
	}
	if src.Mode != "" {
		dst.Mode = src.Mode
	}

	// Thresholds
	if src.HealthThresholds.Healthy != 0 {
		dst.HealthThresholds.Healthy = src.HealthThresholds.Healthy
	}
	if src.HealthThresholds.Warning != 0 {
		dst.HealthThresholds.Warning = src.HealthThresholds.Warning
	}

	// Linking
	if src.Linking.RequireInlineLinks != nil {
		dst.Linking.RequireInlineLinks = src.Linking.RequireInlineLinks
	}
	if src.Linking.RequireRelatedSection != nil {
		dst.Linking.RequireRelatedSection = src.Linking.RequireRelatedSection
	}

	// Doctor
	if src.Doctor.DocsDir != "" {
		dst.Doctor.DocsDir = src.Doctor.DocsDir
	}
	if src.Doctor.StripPrefix != nil {
		dst.Doctor.StripPrefix = src.Doctor.StripPrefix
	}
	if src.Doctor.StaleAfterDays != 0 {
		dst.Doctor.StaleAfterDays = src.Doctor.StaleAfterDays
	}
	if src.Doctor.Exclude != nil {
		dst.Doctor.Exclude = src.Doctor.Exclude
	}
	if src.Doctor.RequiredHubs != nil {
		dst.Doctor.RequiredHubs = src.Doctor.RequiredHubs
	}
	// Deductions merge per check so a file can override one weight.
	for name, points := range src.Doctor.Deductions {
		dst.Doctor.Deductions[name] = points
	}
}

// InlineLinksRequired reports whether the inline links check runs.
func (c *MemoryConfig) InlineLinksRequired() bool {
	return c.Linking.RequireInlineLinks == nil || *c.Linking.RequireInlineLinks
}

// RelatedSectionRequired reports whether the related sections check runs.
func (c *MemoryConfig) RelatedSectionRequired() bool {
	return c.Linking.RequireRelatedSection == nil || *c.Linking.RequireRelatedSection
}

// Prefix returns the link prefix to strip, "" when disabled.
func (c *MemoryConfig) Prefix() string {
	if c.Doctor.StripPrefix == nil {
		return wikilink.DefaultStripPrefix
	}
	return *c.Doctor.StripPrefix
}

// DocsRoot resolves the docs directory against projectRoot.
func (c *MemoryConfig) DocsRoot(projectRoot string) string {
	if filepath.IsAbs(c.Doctor.DocsDir) {
		return c.Doctor.DocsDir
	}
	return filepath.Join(projectRoot, filepath.FromSlash(c.Doctor.DocsDir))
}

func boolPtr(b bool) *bool {
	return &b
}

func stringPtr(s string) *string {
	return &s
}

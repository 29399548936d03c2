package projectconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DerivationState records the decisions that shaped the memory kernel.
type DerivationState struct {
	Version     int       `yaml:"version"`
	FeatureSlug string    `yaml:"feature_slug"`
	Decisions   Decisions `yaml:"decisions"`
}

// Decisions holds the recorded runtime and rollout choices.
type Decisions struct {
	RuntimeLanguage   string     `yaml:"runtime_language"`
	MigrationStrategy string     `yaml:"migration_strategy"`
	TierPolicy        TierPolicy `yaml:"tier_policy"`
}

// TierPolicy groups supported agent targets by support tier.
type TierPolicy struct {
	Tier1 []string `yaml:"tier1"`
	Tier2 []string `yaml:"tier2"`
}

// Queue is the maintenance backlog stored in queue.yaml.
type Queue struct {
	Version int         `yaml:"version"`
	Items   []QueueItem `yaml:"items"`
}

// QueueItem is one backlog entry.
type QueueItem struct {
	ID     string `yaml:"id"`
	Type   string `yaml:"type"`
	Status string `yaml:"status"`
	Title  string `yaml:"title"`
}

// NewDerivation returns the derivation state written by memory init.
func NewDerivation() *DerivationState {
	return &DerivationState{
		Version:     DefaultVersion,
		FeatureSlug: "memory-kernel-go-cli",
		Decisions: Decisions{
			RuntimeLanguage:   "go",
			MigrationStrategy: "strangler",
			TierPolicy: TierPolicy{
				Tier1: []string{"opencode"},
				Tier2: []string{"claude-code", "codex", "antigravity"},
			},
		},
	}
}

// NewQueue returns the initial maintenance queue.
func NewQueue() *Queue {
	return &Queue{
		Version: DefaultVersion,
		Items: []QueueItem{{
			ID:     "MK-001",
			Type:   "maintenance",
			Status: "pending",
			Title:  "Resolve stale links in requirements docs",
		}},
	}
}

// WriteYAML marshals value to path, creating parent directories. An existing
// file is left alone unless force is set; the return value reports whether
// the file was written.
func WriteYAML(path string, value any, force bool) (bool, error) {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return false, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return false, fmt.Errorf("checking %s: %w", path, err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	data, err := yaml.Marshal(value)
	if err != nil {
		return false, fmt.Errorf("serializing yaml for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	return true, nil
}

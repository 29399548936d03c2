package projectconfig

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestNew_ReturnsAllDefaults(t *testing.T) {
	cfg := New()

	assertEqualInt(t, "Version", 1, cfg.Version)
	assertEqual(t, "Mode", "assisted", cfg.Mode)

	// Thresholds
	assertEqualInt(t, "HealthThresholds.Healthy", 85, cfg.HealthThresholds.Healthy)
	assertEqualInt(t, "HealthThresholds.Warning", 70, cfg.HealthThresholds.Warning)

	// Linking
	assertBoolPtr(t, "Linking.RequireInlineLinks", true, cfg.Linking.RequireInlineLinks)
	assertBoolPtr(t, "Linking.RequireRelatedSection", true, cfg.Linking.RequireRelatedSection)

	// Doctor
	assertEqual(t, "Doctor.DocsDir", "docs", cfg.Doctor.DocsDir)
	assertEqual(t, "Doctor.StripPrefix", "docs/", cfg.Prefix())
	assertEqualInt(t, "Doctor.StaleAfterDays", 45, cfg.Doctor.StaleAfterDays)
	if len(cfg.Doctor.Exclude) != 0 {
		t.Errorf("Doctor.Exclude = %v, want empty", cfg.Doctor.Exclude)
	}
	wantHubs := []string{
		"HUB-DOCS.md",
		"CONTEXT.md",
		"SECURITY.md",
		"QUALITY_GATES.md",
		"requirements/HUB-REQUIREMENTS.md",
		"sprint/HUB-SPRINTS.md",
	}
	if !reflect.DeepEqual(cfg.Doctor.RequiredHubs, wantHubs) {
		t.Errorf("Doctor.RequiredHubs = %v, want %v", cfg.Doctor.RequiredHubs, wantHubs)
	}
	wantDeductions := map[string]int{"inline_links": 25, "related_sections": 20, "broken_wikilinks": 30, "stale_docs": 10}
	if !reflect.DeepEqual(cfg.Doctor.Deductions, wantDeductions) {
		t.Errorf("Doctor.Deductions = %v, want %v", cfg.Doctor.Deductions, wantDeductions)
	}
}

func TestNew_ReturnsIndependentCopies(t *testing.T) {
	a := New()
	a.Doctor.RequiredHubs[0] = "changed.md"
	a.Doctor.Deductions["inline_links"] = 1

	b := New()
	assertEqual(t, "RequiredHubs[0]", "HUB-DOCS.md", b.Doctor.RequiredHubs[0])
	assertEqualInt(t, "Deductions[inline_links]", 25, b.Doctor.Deductions["inline_links"])
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !reflect.DeepEqual(cfg, New()) {
		t.Errorf("Load() without file = %+v, want defaults", cfg)
	}
}

func TestLoad_FullConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
version: 2
mode: strict
health_thresholds:
  healthy: 90
  warning: 60
linking:
  require_inline_links: false
  require_related_section: true
doctor:
  docs_dir: documentation
  strip_prefix: "documentation/"
  stale_after_days: 30
  exclude: ["archive/**"]
  required_hubs: ["INDEX.md"]
  deductions:
    stale_docs: 5
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	assertEqualInt(t, "Version", 2, cfg.Version)
	assertEqual(t, "Mode", "strict", cfg.Mode)
	assertEqualInt(t, "HealthThresholds.Healthy", 90, cfg.HealthThresholds.Healthy)
	assertEqualInt(t, "HealthThresholds.Warning", 60, cfg.HealthThresholds.Warning)
	if cfg.InlineLinksRequired() {
		t.Error("InlineLinksRequired() = true, want false")
	}
	if !cfg.RelatedSectionRequired() {
		t.Error("RelatedSectionRequired() = false, want true")
	}
	assertEqual(t, "Doctor.DocsDir", "documentation", cfg.Doctor.DocsDir)
	assertEqual(t, "Prefix", "documentation/", cfg.Prefix())
	assertEqualInt(t, "Doctor.StaleAfterDays", 30, cfg.Doctor.StaleAfterDays)
	if !reflect.DeepEqual(cfg.Doctor.Exclude, []string{"archive/**"}) {
		t.Errorf("Doctor.Exclude = %v", cfg.Doctor.Exclude)
	}
	if !reflect.DeepEqual(cfg.Doctor.RequiredHubs, []string{"INDEX.md"}) {
		t.Errorf("Doctor.RequiredHubs = %v", cfg.Doctor.RequiredHubs)
	}
	// Unset deductions keep their defaults.
	assertEqualInt(t, "Deductions[stale_docs]", 5, cfg.Doctor.Deductions["stale_docs"])
	assertEqualInt(t, "Deductions[broken_wikilinks]", 30, cfg.Doctor.Deductions["broken_wikilinks"])
}

func TestLoad_EmptyStripPrefixDisables(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "doctor:\n  strip_prefix: \"\"\n")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	assertEqual(t, "Prefix", "", cfg.Prefix())
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "doctor: [unclosed")

	if _, err := Load(dir); err == nil {
		t.Fatal("Load() expected parse error")
	}
}

func TestLoad_SchemaViolation(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "health_thresholds:\n  healthy: 150\n")

	_, err := Load(dir)
	if err == nil {
		t.Fatal("Load() expected schema error")
	}
	if !strings.Contains(err.Error(), "healthy") {
		t.Errorf("Load() error = %v, want mention of healthy", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvDocsDir, "/abs/docs")
	t.Setenv(EnvStaleAfterDays, "7")
	t.Setenv(EnvHealthyThreshold, "95")
	t.Setenv(EnvStripPrefix, "")

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	assertEqual(t, "Doctor.DocsDir", "/abs/docs", cfg.Doctor.DocsDir)
	assertEqualInt(t, "Doctor.StaleAfterDays", 7, cfg.Doctor.StaleAfterDays)
	assertEqualInt(t, "HealthThresholds.Healthy", 95, cfg.HealthThresholds.Healthy)
	assertEqualInt(t, "HealthThresholds.Warning", 70, cfg.HealthThresholds.Warning)
	assertEqual(t, "Prefix", "", cfg.Prefix())
}

func TestLoad_EnvOverrideNotANumber(t *testing.T) {
	t.Setenv(EnvStaleAfterDays, "soon")

	if _, err := Load(t.TempDir()); err == nil {
		t.Fatal("Load() expected decode error")
	}
}

func TestDocsRoot(t *testing.T) {
	cfg := New()
	assertEqual(t, "DocsRoot", filepath.Join("/proj", "docs"), cfg.DocsRoot("/proj"))

	cfg.Doctor.DocsDir = "/elsewhere"
	assertEqual(t, "DocsRoot", "/elsewhere", cfg.DocsRoot("/proj"))
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, StateDir), 0o755); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := FindProjectRoot(nested)
	if err != nil {
		t.Fatalf("FindProjectRoot() error: %v", err)
	}
	assertEqual(t, "root", root, got)

	if _, err := FindProjectRoot(t.TempDir()); !os.IsNotExist(err) {
		t.Errorf("FindProjectRoot() without .openkit error = %v, want not exist", err)
	}
}

func TestWriteYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "queue.yaml")

	written, err := WriteYAML(path, NewQueue(), false)
	if err != nil || !written {
		t.Fatalf("WriteYAML() = %v, %v; want written", written, err)
	}

	if err := os.WriteFile(path, []byte("custom: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	written, err = WriteYAML(path, NewQueue(), false)
	if err != nil || written {
		t.Fatalf("WriteYAML() without force = %v, %v; want skipped", written, err)
	}

	written, err = WriteYAML(path, NewQueue(), true)
	if err != nil || !written {
		t.Fatalf("WriteYAML() with force = %v, %v; want written", written, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var q Queue
	if err := yaml.Unmarshal(data, &q); err != nil {
		t.Fatal(err)
	}
	assertEqual(t, "Items[0].ID", "MK-001", q.Items[0].ID)
}

// --- test helpers ---

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(ConfigPath))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func assertEqual(t *testing.T, field, want, got string) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %q, want %q", field, got, want)
	}
}

func assertEqualInt(t *testing.T, field string, want, got int) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %d, want %d", field, got, want)
	}
}

func assertBoolPtr(t *testing.T, field string, want bool, got *bool) {
	t.Helper()
	if got == nil {
		t.Errorf("%s is nil, want *%v", field, want)
		return
	}
	if *got != want {
		t.Errorf("%s = %v, want %v", field, *got, want)
	}
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openkit-devtools/openkit/internal/checks"
)

// runCLI executes the root command in-process and returns its stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// newProject creates a project whose docs tree passes every check.
func newProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	docs := filepath.Join(root, "docs")
	for _, rel := range checks.DefaultRequiredHubs {
		writeFile(t, filepath.Join(docs, filepath.FromSlash(rel)), "# Hub\n\n## Related\n\n- [[CONTEXT.md]]\n")
	}
	writeFile(t, filepath.Join(docs, "guide.md"), "# Guide\n\nStart with [[docs/HUB-DOCS.md]].\n")
	return root
}

package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openkit-devtools/openkit/internal/projectconfig"
)

func TestInitCommand(t *testing.T) {
	root := t.TempDir()

	out, err := runCLI(t, "memory", "init", "--project", root)
	require.NoError(t, err)
	assert.Contains(t, out, "Initialized Memory Kernel structure at "+root)
	assert.Contains(t, out, "wrote "+projectconfig.ConfigPath)

	for _, sub := range []string{"sessions", "observations", "tensions", "health", "queue"} {
		assert.DirExists(t, filepath.Join(root, ".openkit", "ops", sub))
	}
	assert.FileExists(t, filepath.Join(root, filepath.FromSlash(projectconfig.QueuePath)))

	out, err = runCLI(t, "memory", "init", "--project", root)
	require.NoError(t, err)
	assert.Contains(t, out, "kept "+projectconfig.ConfigPath)
}

func TestInitCommand_ForceConfirmation(t *testing.T) {
	origTerminal, origPrompt := isTerminal, promptConfirm
	t.Cleanup(func() { isTerminal, promptConfirm = origTerminal, origPrompt })
	isTerminal = func(io.Reader) bool { return true }

	root := t.TempDir()
	_, err := runCLI(t, "memory", "init", "--project", root)
	require.NoError(t, err)
	cfgPath := filepath.Join(root, filepath.FromSlash(projectconfig.ConfigPath))
	writeFile(t, cfgPath, "mode: strict\n")

	var asked string
	promptConfirm = func(_ io.Reader, _ io.Writer, question string) bool {
		asked = question
		return false
	}
	_, err = runCLI(t, "memory", "init", "--force", "--project", root)
	require.Error(t, err)
	assert.Contains(t, asked, projectconfig.ConfigPath)
	data, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "mode: strict\n", string(data))

	promptConfirm = func(io.Reader, io.Writer, string) bool {
		t.Fatal("--yes must not prompt")
		return false
	}
	out, err := runCLI(t, "memory", "init", "--force", "--yes", "--project", root)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+projectconfig.ConfigPath)
}

func TestInitCommand_ForceWithoutTerminal(t *testing.T) {
	root := t.TempDir()
	_, err := runCLI(t, "memory", "init", "--project", root)
	require.NoError(t, err)

	out, err := runCLI(t, "memory", "init", "--force", "--project", root)
	require.NoError(t, err, "non-interactive --force overwrites without asking")
	assert.Contains(t, out, "wrote "+projectconfig.DerivationPath)
}

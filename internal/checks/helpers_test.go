package checks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openkit-devtools/openkit/internal/docset"
)

// writeDoc creates rel under root with content.
func writeDoc(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// writeHubs creates every default hub with a Related section.
func writeHubs(t *testing.T, root string) {
	t.Helper()
	for _, rel := range DefaultRequiredHubs {
		writeDoc(t, root, rel, "# Hub\n\n## Related\n")
	}
}

func loadSet(t *testing.T, root string) *docset.Set {
	t.Helper()
	set, err := docset.Load(root, docset.Options{})
	require.NoError(t, err)
	return set
}

func memSet(docs ...docset.Document) *docset.Set {
	return docset.NewSet("/docs", docs)
}

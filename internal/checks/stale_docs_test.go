package checks

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/openkit-devtools/openkit/internal/docset"
)

func TestStaleDocsChecker(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		ages    map[string]time.Duration
		outcome Outcome
		stale   []string
	}{
		{"all fresh", map[string]time.Duration{"a.md": time.Hour, "b.md": 44 * 24 * time.Hour}, OutcomePass, nil},
		{"exactly at threshold", map[string]time.Duration{"a.md": DefaultStaleAfter}, OutcomePass, nil},
		{"one stale", map[string]time.Duration{"a.md": time.Hour, "b.md": DefaultStaleAfter + time.Second}, OutcomeWarn, []string{"b.md"}},
		{"future mtime", map[string]time.Duration{"a.md": -72 * time.Hour}, OutcomePass, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			clock := NewMockClock(ctrl)
			clock.EXPECT().Now().Return(now)

			var docs []docset.Document
			for _, p := range []string{"a.md", "b.md"} {
				age, ok := tt.ages[p]
				if !ok {
					continue
				}
				docs = append(docs, docset.Document{Path: p, ModTime: now.Add(-age)})
			}

			result, err := (&StaleDocsChecker{Clock: clock}).Check(context.Background(), memSet(docs...))
			require.NoError(t, err)
			require.Equal(t, NameStaleDocs, result.Name)
			require.Equal(t, tt.outcome, result.Outcome)
			require.Equal(t, string(tt.outcome), result.Display())

			data, ok := result.Data.(*StaleDocsData)
			require.True(t, ok)
			assert.Equal(t, tt.stale, data.Stale)
			assert.Equal(t, DefaultStaleAfter, data.MaxAge)
		})
	}
}

func TestStaleDocsChecker_CustomMaxAge(t *testing.T) {
	ctrl := gomock.NewController(t)
	clock := NewMockClock(ctrl)
	now := time.Now()
	clock.EXPECT().Now().Return(now)

	set := memSet(docset.Document{Path: "a.md", ModTime: now.Add(-48 * time.Hour)})
	result, err := (&StaleDocsChecker{MaxAge: 24 * time.Hour, Clock: clock}).Check(context.Background(), set)
	require.NoError(t, err)
	require.Equal(t, OutcomeWarn, result.Outcome)
	require.Contains(t, result.Summary, "older than 1 days")
	require.Len(t, result.Details, 1)
}

func TestStaleDocsChecker_FileTimes(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "fresh.md", "")
	writeDoc(t, root, "old.md", "")
	old := time.Now().Add(-60 * 24 * time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(root, "old.md"), old, old))

	result, err := (&StaleDocsChecker{}).Check(context.Background(), loadSet(t, root))
	require.NoError(t, err)
	require.Equal(t, OutcomeWarn, result.Outcome)
	require.Equal(t, []string{"old.md"}, result.Data.(*StaleDocsData).Stale)
}

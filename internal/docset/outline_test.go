package docset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutline(t *testing.T) {
	content := "# Title\n\nIntro.\n\n## Related\n\n- [[a.md]]\n\n```md\n## Not a heading\n```\n\n### Deep `code`\n"

	headings := Outline(content)
	require.Len(t, headings, 3)

	assert.Equal(t, Heading{Level: 1, Text: "Title", Offset: 0}, headings[0])
	assert.Equal(t, 2, headings[1].Level)
	assert.Equal(t, "Related", headings[1].Text)
	assert.Equal(t, "## Related", content[headings[1].Offset:headings[1].Offset+len("## Related")])
	assert.Equal(t, "Deep code", headings[2].Text)
}

func TestOutline_Setext(t *testing.T) {
	headings := Outline("intro\n\nRelated\n-------\n")
	require.Len(t, headings, 1)
	assert.Equal(t, 2, headings[0].Level)
	assert.Equal(t, 7, headings[0].Offset)
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Docs Hub", Title("## Sub\n\n# Docs Hub\n"))
	assert.Equal(t, "", Title("no headings here"))
}

package docset

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Heading is one markdown heading found by parsing a document.
type Heading struct {
	Level int
	Text  string
	// Offset is the byte offset of the line the heading starts on.
	Offset int
}

// Outline parses content and returns its headings in document order.
// Unlike the literal marker checks, headings inside fenced code or block
// quotes are not reported as top-level headings.
func Outline(content string) []Heading {
	source := []byte(content)
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var headings []Heading
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok || h.Lines().Len() == 0 {
			continue
		}
		start := h.Lines().At(0).Start
		headings = append(headings, Heading{
			Level:  h.Level,
			Text:   strings.TrimSpace(inlineText(h, source)),
			Offset: lineStart(source, start),
		})
	}
	return headings
}

// Title returns the text of the first level-1 heading, or "".
func Title(content string) string {
	for _, h := range Outline(content) {
		if h.Level == 1 {
			return h.Text
		}
	}
	return ""
}

func inlineText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := c.(type) {
		case *ast.Text:
			b.Write(v.Segment.Value(source))
			if v.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(v.Value)
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

func lineStart(source []byte, pos int) int {
	if pos > len(source) {
		pos = len(source)
	}
	i := bytes.LastIndexByte(source[:pos], '\n')
	return i + 1
}

// Package docset enumerates the markdown documents under a root directory.
//
// Every check of a doctor run reads the same Set, so the file filter and the
// traversal order are defined once here.
package docset

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultExtensions are the file extensions treated as markdown.
var DefaultExtensions = []string{".md"}

// Document is a markdown file read from the scanned tree.
type Document struct {
	// Path is relative to the scanned root and always uses forward slashes.
	Path string
	// AbsPath is the location on disk.
	AbsPath string
	Content string
	ModTime time.Time
}

// Options controls which files become documents.
type Options struct {
	// Extensions lists accepted extensions including the dot. Matching is exact.
	Extensions []string
	// Exclude holds doublestar patterns matched against the slash-separated
	// relative path. A matching directory is not descended into.
	Exclude []string
}

func (o Options) extensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions
	}
	return o.Extensions
}

func (o Options) accepts(name string) bool {
	ext := filepath.Ext(name)
	for _, e := range o.extensions() {
		if ext == e {
			return true
		}
	}
	return false
}

func (o Options) excluded(rel string) bool {
	for _, pattern := range o.Exclude {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

// Validate reports malformed exclude patterns.
func (o Options) Validate() error {
	for _, pattern := range o.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid exclude pattern %q", pattern)
		}
	}
	return nil
}

// Walk lazily yields every markdown document under root in lexical order.
// A symlinked root is resolved first; symlinks below it are not followed and
// only regular files are yielded. The first error ends the sequence; callers
// must not expect further documents after it.
func Walk(root string, opts Options) iter.Seq2[Document, error] {
	return func(yield func(Document, error) bool) {
		if err := opts.Validate(); err != nil {
			yield(Document{}, err)
			return
		}
		info, err := os.Stat(root)
		if err != nil {
			yield(Document{}, &IOError{Op: "stat", Path: root, Err: err})
			return
		}
		if !info.IsDir() {
			yield(Document{}, &IOError{Op: "stat", Path: root, Err: errNotDirectory})
			return
		}
		root, err = resolveRoot(root)
		if err != nil {
			yield(Document{}, err)
			return
		}

		stopped := false
		walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return &IOError{Op: "walk", Path: path, Err: err}
			}
			if path == root {
				return nil
			}
			rel, err := relSlash(root, path)
			if err != nil {
				return err
			}
			if opts.excluded(rel) {
				if d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if !d.Type().IsRegular() || !opts.accepts(d.Name()) {
				return nil
			}

			doc, err := read(path, rel)
			if !yield(doc, err) || err != nil {
				stopped = true
				return fs.SkipAll
			}
			return nil
		})
		if walkErr != nil && !stopped {
			yield(Document{}, walkErr)
		}
	}
}

// resolveRoot follows symlinks in root so WalkDir descends into the target.
func resolveRoot(root string) (string, error) {
	resolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		return "", &IOError{Op: "resolve", Path: root, Err: err}
	}
	return resolved, nil
}

func read(path, rel string) (Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Document{}, &IOError{Op: "stat", Path: path, Err: err}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, &IOError{Op: "read", Path: path, Err: err}
	}
	return Document{
		Path:    rel,
		AbsPath: path,
		Content: string(data),
		ModTime: info.ModTime(),
	}, nil
}

func relSlash(root, path string) (string, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", &IOError{Op: "rel", Path: path, Err: err}
	}
	return filepath.ToSlash(rel), nil
}

var errNotDirectory = errors.New("not a directory")

// Set is an immutable snapshot of the documents under Root.
type Set struct {
	Root string
	Docs []Document

	byPath map[string]int
}

// Load reads the whole tree. Any unreadable file aborts the load.
func Load(root string, opts Options) (*Set, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving docs root: %w", err)
	}
	if _, err := os.Stat(absRoot); err == nil {
		if absRoot, err = resolveRoot(absRoot); err != nil {
			return nil, err
		}
	}

	s := &Set{Root: absRoot, byPath: make(map[string]int)}
	for doc, err := range Walk(absRoot, opts) {
		if err != nil {
			return nil, err
		}
		s.byPath[doc.Path] = len(s.Docs)
		s.Docs = append(s.Docs, doc)
	}
	slog.Debug("Loaded document set", "root", absRoot, "documents", len(s.Docs))
	return s, nil
}

// NewSet builds a Set from documents already in memory, keeping their order.
func NewSet(root string, docs []Document) *Set {
	s := &Set{Root: root, Docs: docs, byPath: make(map[string]int, len(docs))}
	for i, d := range docs {
		s.byPath[d.Path] = i
	}
	return s
}

// Len returns the number of documents.
func (s *Set) Len() int { return len(s.Docs) }

// Lookup returns the document at the slash-separated relative path.
func (s *Set) Lookup(rel string) (Document, bool) {
	i, ok := s.byPath[rel]
	if !ok {
		return Document{}, false
	}
	return s.Docs[i], true
}

// Paths returns the relative paths in traversal order.
func (s *Set) Paths() []string {
	paths := make([]string, len(s.Docs))
	for i, d := range s.Docs {
		paths[i] = d.Path
	}
	return paths
}

// Abs joins a slash-separated relative path onto the root.
func (s *Set) Abs(rel string) string {
	return filepath.Join(s.Root, filepath.FromSlash(strings.TrimPrefix(rel, "/")))
}

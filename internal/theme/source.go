package theme

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Source supplies the eight files of a theme.
// Implementations may read from disk, compiled-in resources, etc.
type Source interface {
	// Bundle returns the theme files. The returned buffers belong to the
	// caller.
	Bundle() (Bundle, error)

	// String describes where the files come from, for progress output.
	String() string
}

// DirSource reads a theme from a directory on the filesystem.
type DirSource struct {
	dir string
}

// NewDirSource creates a DirSource rooted at dir. The directory is resolved
// to an absolute, symlink-free path so containment checks compare like
// with like.
func NewDirSource(dir string) (*DirSource, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAssetRead, err)
	}
	if realDir, err := filepath.EvalSymlinks(absDir); err == nil {
		absDir = realDir
	}
	return &DirSource{dir: absDir}, nil
}

// Bundle reads all eight files. Any missing or unreadable file fails the
// whole read.
func (s *DirSource) Bundle() (Bundle, error) {
	var b Bundle
	for _, e := range b.entries() {
		filePath := filepath.Join(s.dir, filepath.FromSlash(e.path))
		if err := s.verifyPathContainment(filePath); err != nil {
			return Bundle{}, err
		}
		data, err := os.ReadFile(filePath) // #nosec G304 -- path validated above
		if err != nil {
			return Bundle{}, fmt.Errorf("%w: %s: %w", ErrAssetRead, e.path, err)
		}
		*e.data = data
	}
	return b, nil
}

func (s *DirSource) String() string { return s.dir }

// verifyPathContainment ensures the resolved file path is within the theme
// directory. Symlinks are resolved so a link cannot point outside it.
func (s *DirSource) verifyPathContainment(filePath string) error {
	absFilePath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve path", ErrPathTraversal)
	}
	// A missing file keeps its unresolved path; the read reports it.
	if realPath, err := filepath.EvalSymlinks(absFilePath); err == nil {
		absFilePath = realPath
	}
	if !strings.HasPrefix(absFilePath, s.dir+string(filepath.Separator)) {
		return fmt.Errorf("%w: %s escapes %s", ErrPathTraversal, filePath, s.dir)
	}
	return nil
}

//go:embed simple/static/* simple/templates/*
var simpleFS embed.FS

// embeddedRoot is the directory of the built-in theme inside simpleFS.
const embeddedRoot = DefaultName

// embeddedFiles is the built-in theme keyed by layout path. It is filled
// once at start-up and never written afterwards.
var embeddedFiles = mustReadEmbedded(simpleFS, embeddedRoot)

func mustReadEmbedded(fsys fs.FS, root string) map[string][]byte {
	var b Bundle
	files := make(map[string][]byte, len(b.entries()))
	for _, e := range b.entries() {
		data, err := fs.ReadFile(fsys, path.Join(root, e.path))
		if err != nil {
			panic(fmt.Sprintf("theme: built-in asset %s missing: %v", e.path, err))
		}
		files[e.path] = data
	}
	return files
}

// EmbeddedSource serves the built-in default theme. It never touches the
// filesystem.
type EmbeddedSource struct{}

// NewEmbeddedSource creates an EmbeddedSource.
func NewEmbeddedSource() *EmbeddedSource {
	return &EmbeddedSource{}
}

// Bundle returns copies of the built-in files.
func (EmbeddedSource) Bundle() (Bundle, error) {
	var b Bundle
	for _, e := range b.entries() {
		*e.data = bytes.Clone(embeddedFiles[e.path])
	}
	return b, nil
}

func (EmbeddedSource) String() string { return "built-in " + DefaultName }

// Compile-time interface checks.
var (
	_ Source = (*DirSource)(nil)
	_ Source = (*EmbeddedSource)(nil)
)

package theme

import (
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/alnah/go-mdblog/internal/fileutil"
)

// DefaultName is the reserved name of the built-in theme. It resolves to
// the compiled-in files whenever no directory of that name exists under
// the themes root.
const DefaultName = "simple"

// Theme is a loaded theme: its eight files and a renderer with all four
// templates parsed. A Theme is read-only once Load returns it.
type Theme struct {
	// Root is the themes directory the theme was resolved against.
	Root string
	// Name is the theme name.
	Name string

	source   string
	bundle   Bundle
	renderer *Renderer
}

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	funcs template.FuncMap
}

// WithFuncs adds template functions, replacing defaults of the same name.
func WithFuncs(funcs template.FuncMap) Option {
	return func(o *loadOptions) {
		maps.Copy(o.funcs, funcs)
	}
}

// Load resolves name under root:
//   - root/name is a directory: the theme is read from it
//   - root/name is absent and name is DefaultName: the built-in theme
//   - root/name is absent otherwise: ErrThemeNotFound
//
// Anything else at root/name, or any read failure, is ErrAssetRead.
func Load(root, name string, opts ...Option) (*Theme, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	src, err := resolveSource(root, name)
	if err != nil {
		return nil, err
	}
	return LoadFrom(root, name, src, opts...)
}

func resolveSource(root, name string) (Source, error) {
	dir := filepath.Join(root, name)
	info, err := os.Stat(dir)
	switch {
	case err == nil && info.IsDir():
		return NewDirSource(dir)
	case err == nil:
		return nil, fmt.Errorf("%w: %s is not a directory", ErrAssetRead, dir)
	case errors.Is(err, fs.ErrNotExist) && name == DefaultName:
		return NewEmbeddedSource(), nil
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: %q (looked in %s)", ErrThemeNotFound, name, root)
	default:
		return nil, fmt.Errorf("%w: %w", ErrAssetRead, err)
	}
}

// LoadFrom builds a Theme from an explicit Source.
func LoadFrom(root, name string, src Source, opts ...Option) (*Theme, error) {
	o := loadOptions{funcs: DefaultFuncs()}
	for _, opt := range opts {
		opt(&o)
	}

	bundle, err := src.Bundle()
	if err != nil {
		return nil, err
	}
	renderer, err := newRenderer(&bundle, o.funcs)
	if err != nil {
		return nil, err
	}
	return &Theme{
		Root:     root,
		Name:     name,
		source:   src.String(),
		bundle:   bundle,
		renderer: renderer,
	}, nil
}

// Renderer returns the theme's template renderer.
func (t *Theme) Renderer() *Renderer { return t.renderer }

// Source describes where the theme files were read from.
func (t *Theme) Source() string { return t.source }

// Materialize writes the theme files to Root/name using the standard
// layout. It does nothing if Root/name already exists, so a user's edited
// theme is never overwritten. A failed write removes Root/name again.
func (t *Theme) Materialize(name string) error {
	return t.materialize(name, fileutil.WriteFile)
}

func (t *Theme) materialize(name string, write writeFunc) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	dest := filepath.Join(t.Root, name)
	if fileutil.PathExists(dest) {
		return nil
	}
	if err := writeEntries(dest, t.bundle.entries(), write); err != nil {
		// A half-written dir would pass the PathExists check next time.
		return errors.Join(err, os.RemoveAll(dest))
	}
	return nil
}

// ExportStatic writes the four static files to outputRoot/static,
// replacing whatever is there.
func (t *Theme) ExportStatic(outputRoot string) error {
	return writeEntries(outputRoot, t.bundle.staticEntries(), fileutil.WriteFile)
}

type writeFunc func(path string, data []byte) error

func writeEntries(dir string, entries []entry, write writeFunc) error {
	for _, e := range entries {
		path := filepath.Join(dir, filepath.FromSlash(e.path))
		if err := write(path, *e.data); err != nil {
			return fmt.Errorf("%w: %w", ErrAssetWrite, err)
		}
	}
	return nil
}

// Available lists the theme names usable under root: every valid
// directory name plus DefaultName. A missing root yields just DefaultName.
func Available(root string) []string {
	names := map[string]struct{}{DefaultName: {}}
	entries, err := os.ReadDir(root)
	if err == nil {
		for _, e := range entries {
			if e.IsDir() && ValidateName(e.Name()) == nil {
				names[e.Name()] = struct{}{}
			}
		}
	}
	return slices.Sorted(maps.Keys(names))
}

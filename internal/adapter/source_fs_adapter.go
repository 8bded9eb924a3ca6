// Package adapter contains the infrastructure adapters used by the installer:
// project filesystem access, the package registry and the scaffolding process.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	m "bvi.dev/pkg/bvi/internal/model"
	"github.com/bmatcuk/doublestar/v4"
)

const defaultFileMode fs.FileMode = 0o644

// SourceFSAdapter abstracts the filesystem operations the domain layer
// performs on a scaffolded project. It hides direct `os` access so the
// feature logic can be tested against fixtures or fakes.
//
//nolint:interfacebloat // A richer interface keeps the configurators decoupled from os/fs.
type SourceFSAdapter interface {
	// FindElement searches root recursively for an entry called name of the
	// given kind and returns its absolute path. The first match in traversal
	// order wins. Any I/O error aborts the search; both that case and "no
	// match" are reported as model.ErrNotFound.
	FindElement(ctx context.Context, root m.Path, name string, kind m.ElementKind) (m.Path, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// WriteFile replaces the contents of path, keeping its permissions when
	// the file already exists.
	WriteFile(ctx context.Context, path m.Path, content []byte) error

	// FileInfo returns metadata for a path so the domain can check existence.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)

	// Glob returns the files under root matching a doublestar pattern.
	Glob(ctx context.Context, root m.Path, pattern string) ([]m.Path, error)

	// RemoveAll removes a path and all its contents.
	RemoveAll(ctx context.Context, path m.Path) error

	// JoinPath joins path elements into a single path.
	JoinPath(ctx context.Context, elem ...string) m.Path
}

// LocalSourceFSAdapter implements SourceFSAdapter on the local disk.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the configurators.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// FindElement walks root depth-first. Entries of a directory are visited in
// the order os.ReadDir returns them (sorted by name), each one is checked
// before the walk descends into it. Symlinked directories are matched but not
// descended into.
func (a *LocalSourceFSAdapter) FindElement(ctx context.Context, root m.Path, name string, kind m.ElementKind) (m.Path, error) {
	absRoot, err := filepath.Abs(string(root))
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", m.ErrNotFound, name, err)
	}

	found, err := a.findElement(ctx, absRoot, name, kind)
	if err != nil {
		slog.Debug("Element search aborted", "root", absRoot, "name", name, "kind", kind.String(), "error", err)
		return "", fmt.Errorf("%w: %s in %s: %w", m.ErrNotFound, name, root, err)
	}

	if found == "" {
		slog.Debug("Element not found", "root", absRoot, "name", name, "kind", kind.String())
		return "", fmt.Errorf("%w: %s in %s", m.ErrNotFound, name, root)
	}

	slog.Debug("Element found", "root", absRoot, "name", name, "path", found)

	return m.Path(found), nil
}

func (a *LocalSourceFSAdapter) findElement(ctx context.Context, dir, name string, kind m.ElementKind) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	for _, entry := range entries {
		fullPath := filepath.Join(dir, entry.Name())

		info, err := os.Stat(fullPath)
		if err != nil {
			return "", err
		}

		if entry.Name() == name && matchesKind(info, kind) {
			return fullPath, nil
		}

		if !entry.IsDir() {
			continue
		}

		found, err := a.findElement(ctx, fullPath, name, kind)
		if err != nil || found != "" {
			return found, err
		}
	}

	return "", nil
}

func matchesKind(info os.FileInfo, kind m.ElementKind) bool {
	switch kind {
	case m.ElementFile:
		return info.Mode().IsRegular()
	case m.ElementDir:
		return info.IsDir()
	}

	return false
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// #nosec G304 - path points into the project being configured
	return os.ReadFile(string(path))
}

// WriteFile writes content to path, reusing the current permissions.
func (a *LocalSourceFSAdapter) WriteFile(ctx context.Context, path m.Path, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	mode := defaultFileMode

	info, err := os.Stat(string(path))
	switch {
	case err == nil:
		mode = info.Mode().Perm()
	case !errors.Is(err, fs.ErrNotExist):
		return err
	}

	return os.WriteFile(string(path), content, mode)
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.Stat(string(path))
}

// Glob matches pattern against the files below root. Returned paths are
// rooted at root.
func (a *LocalSourceFSAdapter) Glob(ctx context.Context, root m.Path, pattern string) ([]m.Path, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern %q", pattern)
	}

	matches, err := doublestar.Glob(os.DirFS(string(root)), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, err
	}

	paths := make([]m.Path, 0, len(matches))
	for _, match := range matches {
		paths = append(paths, m.Path(filepath.Join(string(root), filepath.FromSlash(match))))
	}

	return paths, nil
}

// RemoveAll removes a path and all its contents.
func (a *LocalSourceFSAdapter) RemoveAll(ctx context.Context, path m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return os.RemoveAll(string(path))
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(_ context.Context, elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}

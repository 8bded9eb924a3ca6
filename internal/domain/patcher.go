package domain

import (
	"context"
	"fmt"
	"log/slog"

	"bvi.dev/pkg/bvi/internal/adapter"
	"bvi.dev/pkg/bvi/internal/domain/patch"
	m "bvi.dev/pkg/bvi/internal/model"
)

// Patcher applies the text mutations of the patch package to files on disk.
// Every operation reads the whole file, transforms it in memory and rewrites
// it in one call. Filesystem failures are reported as model.ErrIO.
type Patcher interface {
	// PrependLine inserts line followed by a newline at the top of file.
	// It does not check whether the line is already there.
	PrependLine(ctx context.Context, file m.Path, line string) error

	// InsertArrayElement adds element to the `field: [ ... ]` array literal
	// of file. It reports whether the file was rewritten.
	InsertArrayElement(ctx context.Context, file m.Path, field, element string, comma bool) (bool, error)

	// MergeJSONKey sets object[key] = value in the JSON document at file.
	MergeJSONKey(ctx context.Context, file m.Path, object, key, value string) error
}

type patcher struct {
	adapter.SourceFSAdapter
}

// NewPatcher creates a Patcher working through the given filesystem adapter.
func NewPatcher(fsAdapter adapter.SourceFSAdapter) Patcher {
	return &patcher{SourceFSAdapter: fsAdapter}
}

func (p *patcher) PrependLine(ctx context.Context, file m.Path, line string) error {
	content, err := p.read(ctx, file)
	if err != nil {
		return err
	}

	if err := p.write(ctx, file, patch.PrependLine(content, line)); err != nil {
		return err
	}

	slog.Debug("Prepended line", "file", file, "line", line)

	return nil
}

func (p *patcher) InsertArrayElement(ctx context.Context, file m.Path, field, element string, comma bool) (bool, error) {
	content, err := p.read(ctx, file)
	if err != nil {
		return false, err
	}

	updated, changed := patch.InsertArrayElement(content, field, element, comma)
	if !changed {
		slog.Debug("Array left untouched", "file", file, "field", field, "element", element)
		return false, nil
	}

	if err := p.write(ctx, file, updated); err != nil {
		return false, err
	}

	slog.Debug("Inserted array element", "file", file, "field", field, "element", element)

	return true, nil
}

func (p *patcher) MergeJSONKey(ctx context.Context, file m.Path, object, key, value string) error {
	content, err := p.read(ctx, file)
	if err != nil {
		return err
	}

	merged, err := patch.MergeJSONKey(content, object, key, value)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}

	if err := p.write(ctx, file, merged); err != nil {
		return err
	}

	slog.Debug("Merged JSON key", "file", file, "object", object, "key", key, "value", value)

	return nil
}

func (p *patcher) read(ctx context.Context, file m.Path) ([]byte, error) {
	content, err := p.ReadFile(ctx, file)
	if err != nil {
		slog.Error("Failed to read file", "file", file, "error", err)
		return nil, fmt.Errorf("%w: failed to read %s: %w", m.ErrIO, file, err)
	}

	return content, nil
}

func (p *patcher) write(ctx context.Context, file m.Path, content []byte) error {
	if err := p.WriteFile(ctx, file, content); err != nil {
		slog.Error("Failed to write file", "file", file, "error", err)
		return fmt.Errorf("%w: failed to write %s: %w", m.ErrIO, file, err)
	}

	return nil
}

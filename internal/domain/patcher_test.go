package domain_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bvi.dev/pkg/bvi/internal/adapter"
	adaptermocks "bvi.dev/pkg/bvi/internal/adapter/mocks"
	"bvi.dev/pkg/bvi/internal/domain"
	m "bvi.dev/pkg/bvi/internal/model"
)

func TestPatcher_PrependLine(t *testing.T) {
	ctx := context.Background()
	patcher := domain.NewPatcher(adapter.NewLocalSourceFSAdapter())

	file := filepath.Join(t.TempDir(), "main.css")
	require.NoError(t, os.WriteFile(file, []byte("body {}\n"), 0o644))

	require.NoError(t, patcher.PrependLine(ctx, m.Path(file), `@import "tailwindcss";`))
	assert.Equal(t, "@import \"tailwindcss\";\nbody {}\n", readFile(t, file))

	// No guard: a second call inserts the line again.
	require.NoError(t, patcher.PrependLine(ctx, m.Path(file), `@import "tailwindcss";`))
	assert.Equal(t, "@import \"tailwindcss\";\n@import \"tailwindcss\";\nbody {}\n", readFile(t, file))
}

func TestPatcher_PrependLine_MissingFile(t *testing.T) {
	patcher := domain.NewPatcher(adapter.NewLocalSourceFSAdapter())

	err := patcher.PrependLine(context.Background(), m.Path(filepath.Join(t.TempDir(), "missing.css")), "x")
	require.ErrorIs(t, err, m.ErrIO)
}

func TestPatcher_WriteFailure(t *testing.T) {
	ctx := context.Background()
	mockFS := adaptermocks.NewMockSourceFSAdapter(t)
	writeErr := errors.New("disk full")

	mockFS.EXPECT().ReadFile(mock.Anything, m.Path("main.css")).Return([]byte("body {}\n"), nil).Once()
	mockFS.EXPECT().WriteFile(mock.Anything, m.Path("main.css"), mock.Anything).Return(writeErr).Once()

	err := domain.NewPatcher(mockFS).PrependLine(ctx, "main.css", "x")
	require.ErrorIs(t, err, m.ErrIO)
	require.ErrorIs(t, err, writeErr)
}

func TestPatcher_InsertArrayElement(t *testing.T) {
	ctx := context.Background()

	t.Run("rewrites file when element is added", func(t *testing.T) {
		patcher := domain.NewPatcher(adapter.NewLocalSourceFSAdapter())

		file := filepath.Join(t.TempDir(), "vite.config.ts")
		require.NoError(t, os.WriteFile(file, []byte("plugins: [react()]"), 0o644))

		changed, err := patcher.InsertArrayElement(ctx, m.Path(file), "plugins", "tailwindcss()", true)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, "plugins: [react()\ttailwindcss(),\n\t]", readFile(t, file))

		changed, err = patcher.InsertArrayElement(ctx, m.Path(file), "plugins", "tailwindcss()", true)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, "plugins: [react()\ttailwindcss(),\n\t]", readFile(t, file))
	})

	t.Run("missing field does not write", func(t *testing.T) {
		mockFS := adaptermocks.NewMockSourceFSAdapter(t)
		mockFS.EXPECT().ReadFile(mock.Anything, m.Path("vite.config.ts")).Return([]byte("export default {}"), nil).Once()

		changed, err := domain.NewPatcher(mockFS).InsertArrayElement(ctx, "vite.config.ts", "plugins", "tailwindcss()", true)
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("read failure", func(t *testing.T) {
		mockFS := adaptermocks.NewMockSourceFSAdapter(t)
		mockFS.EXPECT().ReadFile(mock.Anything, m.Path("vite.config.ts")).Return(nil, os.ErrPermission).Once()

		_, err := domain.NewPatcher(mockFS).InsertArrayElement(ctx, "vite.config.ts", "plugins", "tailwindcss()", true)
		require.ErrorIs(t, err, m.ErrIO)
	})
}

func TestPatcher_MergeJSONKey(t *testing.T) {
	ctx := context.Background()

	t.Run("writes merged document", func(t *testing.T) {
		patcher := domain.NewPatcher(adapter.NewLocalSourceFSAdapter())

		file := filepath.Join(t.TempDir(), "package.json")
		require.NoError(t, os.WriteFile(file, []byte(`{"dependencies":{"vue":"^3.5.0"}}`), 0o644))

		require.NoError(t, patcher.MergeJSONKey(ctx, m.Path(file), "dependencies", "tailwindcss", "^4.1.0"))
		assert.Equal(t, "{\n  \"dependencies\": {\n    \"vue\": \"^3.5.0\",\n    \"tailwindcss\": \"^4.1.0\"\n  }\n}", readFile(t, file))
	})

	t.Run("malformed document is not rewritten", func(t *testing.T) {
		mockFS := adaptermocks.NewMockSourceFSAdapter(t)
		mockFS.EXPECT().ReadFile(mock.Anything, m.Path("package.json")).Return([]byte(`{"dependencies":`), nil).Once()

		err := domain.NewPatcher(mockFS).MergeJSONKey(ctx, "package.json", "dependencies", "tailwindcss", "^4.1.0")
		require.ErrorIs(t, err, m.ErrMalformedJSON)
	})

	t.Run("missing object is not rewritten", func(t *testing.T) {
		mockFS := adaptermocks.NewMockSourceFSAdapter(t)
		mockFS.EXPECT().ReadFile(mock.Anything, m.Path("package.json")).Return([]byte(`{"name":"app"}`), nil).Once()

		err := domain.NewPatcher(mockFS).MergeJSONKey(ctx, "package.json", "dependencies", "tailwindcss", "^4.1.0")
		require.ErrorIs(t, err, m.ErrMissingObject)
	})
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(content)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

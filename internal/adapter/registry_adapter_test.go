package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	m "bvi.dev/pkg/bvi/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNPMRegistryAdapter_LatestVersion(t *testing.T) {
	ctx := context.Background()

	t.Run("returns version verbatim", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/tailwindcss/latest", r.URL.Path)
			_, _ = w.Write([]byte(`{"name":"tailwindcss","version":"4.1.14"}`))
		}))
		defer server.Close()

		adapter := NewNPMRegistryAdapter(server.URL, time.Second)

		version, err := adapter.LatestVersion(ctx, "tailwindcss")
		require.NoError(t, err)
		assert.Equal(t, "4.1.14", version)
	})

	t.Run("scoped package path", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/@tailwindcss/vite/latest", r.URL.Path)
			_, _ = w.Write([]byte(`{"version":"not-a-semver"}`))
		}))
		defer server.Close()

		adapter := NewNPMRegistryAdapter(server.URL+"/", 0)

		version, err := adapter.LatestVersion(ctx, "@tailwindcss/vite")
		require.NoError(t, err)
		assert.Equal(t, "not-a-semver", version)
	})

	t.Run("caches resolved versions", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			_, _ = w.Write([]byte(`{"version":"1.0.0"}`))
		}))
		defer server.Close()

		adapter := NewNPMRegistryAdapter(server.URL, time.Second)

		for range 3 {
			version, err := adapter.LatestVersion(ctx, "vue")
			require.NoError(t, err)
			assert.Equal(t, "1.0.0", version)
		}

		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("non-200 status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "not found", http.StatusNotFound)
		}))
		defer server.Close()

		adapter := NewNPMRegistryAdapter(server.URL, time.Second)

		_, err := adapter.LatestVersion(ctx, "missing-package")
		require.ErrorIs(t, err, m.ErrRegistry)
	})

	t.Run("malformed body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`<html>`))
		}))
		defer server.Close()

		adapter := NewNPMRegistryAdapter(server.URL, time.Second)

		_, err := adapter.LatestVersion(ctx, "tailwindcss")
		require.ErrorIs(t, err, m.ErrRegistry)
	})

	t.Run("missing version field", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"name":"tailwindcss"}`))
		}))
		defer server.Close()

		adapter := NewNPMRegistryAdapter(server.URL, time.Second)

		_, err := adapter.LatestVersion(ctx, "tailwindcss")
		require.ErrorIs(t, err, m.ErrRegistry)
	})

	t.Run("timeout", func(t *testing.T) {
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		defer server.Close()
		defer close(release)

		adapter := NewNPMRegistryAdapter(server.URL, 20*time.Millisecond)

		_, err := adapter.LatestVersion(ctx, "tailwindcss")
		require.ErrorIs(t, err, m.ErrRegistry)
	})

	t.Run("empty url selects public registry", func(t *testing.T) {
		adapter := NewNPMRegistryAdapter("  ", time.Second)
		assert.Equal(t, DefaultRegistryURL, adapter.baseURL)
	})
}

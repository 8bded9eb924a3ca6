package patch

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "bvi.dev/pkg/bvi/internal/model"
)

func TestMergeJSONKey(t *testing.T) {
	t.Run("adds a key to the nested object", func(t *testing.T) {
		got, err := MergeJSONKey([]byte(`{"dependencies":{"vue":"^3.0.0"}}`), "dependencies", "tailwindcss", "^4.0.0")
		require.NoError(t, err)

		want := "{\n  \"dependencies\": {\n    \"vue\": \"^3.0.0\",\n    \"tailwindcss\": \"^4.0.0\"\n  }\n}"
		assert.Equal(t, want, string(got))
	})

	t.Run("overwrites an existing key in place", func(t *testing.T) {
		input := `{"dependencies":{"tailwindcss":"^3.4.0","vue":"^3.0.0"}}`
		got, err := MergeJSONKey([]byte(input), "dependencies", "tailwindcss", "^4.0.0")
		require.NoError(t, err)

		want := "{\n  \"dependencies\": {\n    \"tailwindcss\": \"^4.0.0\",\n    \"vue\": \"^3.0.0\"\n  }\n}"
		assert.Equal(t, want, string(got))
	})

	t.Run("keeps other fields and their order", func(t *testing.T) {
		input := `{
  "name": "my-app",
  "private": true,
  "scripts": {"dev": "vite", "build": "vite build"},
  "dependencies": {"vue": "^3.5.13"},
  "devDependencies": {"vite": "^6.0.0"}
}
`
		got, err := MergeJSONKey([]byte(input), "dependencies", "@tailwindcss/vite", "^4.1.0")
		require.NoError(t, err)

		want := `{
  "name": "my-app",
  "private": true,
  "scripts": {
    "dev": "vite",
    "build": "vite build"
  },
  "dependencies": {
    "vue": "^3.5.13",
    "@tailwindcss/vite": "^4.1.0"
  },
  "devDependencies": {
    "vite": "^6.0.0"
  }
}`
		assert.Equal(t, want, string(got))
	})

	t.Run("empty target object", func(t *testing.T) {
		got, err := MergeJSONKey([]byte(`{"dependencies":{}}`), "dependencies", "a", "1")
		require.NoError(t, err)
		assert.Equal(t, "{\n  \"dependencies\": {\n    \"a\": \"1\"\n  }\n}", string(got))
	})

	t.Run("does not escape html characters", func(t *testing.T) {
		got, err := MergeJSONKey([]byte(`{"dependencies":{}}`), "dependencies", "x", ">=1 <2")
		require.NoError(t, err)
		assert.Contains(t, string(got), `"x": ">=1 <2"`)
	})

	t.Run("output is valid json", func(t *testing.T) {
		got, err := MergeJSONKey([]byte(`{"dependencies":{"a":[1,{"b":null}]}}`), "dependencies", "c", "d")
		require.NoError(t, err)

		var decoded map[string]map[string]any
		require.NoError(t, json.Unmarshal(got, &decoded))
		assert.Equal(t, "d", decoded["dependencies"]["c"])
		assert.NotEqual(t, byte('\n'), got[len(got)-1])
	})
}

func TestMergeJSONKey_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"missing object", `{"devDependencies":{}}`, m.ErrMissingObject},
		{"object is an array", `{"dependencies":[]}`, m.ErrMissingObject},
		{"object is null", `{"dependencies":null}`, m.ErrMissingObject},
		{"object is a string", `{"dependencies":"vue"}`, m.ErrMissingObject},
		{"invalid json", `{"dependencies":`, m.ErrMalformedJSON},
		{"empty document", ``, m.ErrMalformedJSON},
		{"top level array", `[{"dependencies":{}}]`, m.ErrMalformedJSON},
		{"trailing data", `{"dependencies":{}} {}`, m.ErrMalformedJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MergeJSONKey([]byte(tt.input), "dependencies", "tailwindcss", "^4.0.0")
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

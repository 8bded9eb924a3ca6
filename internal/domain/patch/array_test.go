package patch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const viteConfig = `import { fileURLToPath, URL } from 'node:url'

import { defineConfig } from 'vite'
import vue from '@vitejs/plugin-vue'
import vueDevTools from 'vite-plugin-vue-devtools'

export default defineConfig({
  plugins: [
    vue(),
    vueDevTools(),
  ],
  resolve: {
    alias: {
      '@': fileURLToPath(new URL('./src', import.meta.url))
    },
  },
})
`

func TestInsertArrayElement(t *testing.T) {
	t.Run("single line array keeps the original element", func(t *testing.T) {
		got, changed := InsertArrayElement([]byte("plugins: [react()]"), "plugins", "tailwindcss()", true)

		assert.True(t, changed)
		assert.Equal(t, "plugins: [react()\ttailwindcss(),\n\t]", string(got))
		assert.Contains(t, string(got), "react()")
		assert.Contains(t, string(got), "tailwindcss()")
	})

	t.Run("second insertion of the same element is a no-op", func(t *testing.T) {
		first, _ := InsertArrayElement([]byte("plugins: [react()]"), "plugins", "tailwindcss()", true)
		second, changed := InsertArrayElement(first, "plugins", "tailwindcss()", true)

		assert.False(t, changed)
		assert.Equal(t, string(first), string(second))
	})

	t.Run("missing field leaves content byte identical", func(t *testing.T) {
		input := []byte("export default defineConfig({\n  server: { port: 3000 },\n})\n")
		got, changed := InsertArrayElement(input, "plugins", "tailwindcss()", true)

		assert.False(t, changed)
		assert.Equal(t, input, got)
	})

	t.Run("multi line vite config", func(t *testing.T) {
		got, changed := InsertArrayElement([]byte(viteConfig), "plugins", "tailwindcss()", true)

		assert.True(t, changed)
		assert.Contains(t, string(got), "    vue(),\n    vueDevTools(),\n  \ttailwindcss(),\n\t],\n  resolve: {")
		assert.True(t, strings.HasPrefix(string(got), "import { fileURLToPath, URL } from 'node:url'\n"))
	})

	t.Run("without trailing comma", func(t *testing.T) {
		got, changed := InsertArrayElement([]byte("plugins: []"), "plugins", "tailwindcss()", false)

		assert.True(t, changed)
		assert.Equal(t, "plugins: [\ttailwindcss()\n\t]", string(got))
	})

	t.Run("only the first occurrence is patched", func(t *testing.T) {
		input := "a = { plugins: [one()] }\nb = { plugins: [two()] }\n"
		got, changed := InsertArrayElement([]byte(input), "plugins", "x()", true)

		assert.True(t, changed)
		assert.Equal(t, "a = { plugins: [one()\tx(),\n\t] }\nb = { plugins: [two()] }\n", string(got))
	})

	t.Run("substring match counts as duplicate", func(t *testing.T) {
		input := []byte("plugins: [mytailwindcss()]")
		got, changed := InsertArrayElement(input, "plugins", "tailwindcss()", true)

		assert.False(t, changed)
		assert.Equal(t, input, got)
	})

	t.Run("nested brackets end the match early", func(t *testing.T) {
		got, changed := InsertArrayElement([]byte("plugins: [foo([1]), bar()]"), "plugins", "x()", true)

		assert.True(t, changed)
		assert.Equal(t, "plugins: [foo([1\tx(),\n\t]), bar()]", string(got))
	})

	t.Run("field name is matched literally", func(t *testing.T) {
		input := []byte("aXb: [one()]")
		got, changed := InsertArrayElement(input, "a.b", "x()", true)

		assert.False(t, changed)
		assert.Equal(t, input, got)
	})
}

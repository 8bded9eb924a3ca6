// Package patch holds the text and JSON mutations applied to scaffolded
// projects. Every function works on in-memory content; reading and writing
// files is left to the caller.
package patch

import (
	"bufio"
	"bytes"
	"strings"
)

// PrependLine returns content with line and a newline inserted in front of it.
// There is no duplicate guard: prepending the same line twice yields it twice.
func PrependLine(content []byte, line string) []byte {
	out := make([]byte, 0, len(line)+1+len(content))
	out = append(out, line...)
	out = append(out, '\n')

	return append(out, content...)
}

// HasLine reports whether content has a line equal to line once surrounding
// whitespace and a trailing semicolon are ignored on both sides.
func HasLine(content []byte, line string) bool {
	want := normalizeLine(line)
	if want == "" {
		return false
	}

	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), len(content)+1)

	for scanner.Scan() {
		if normalizeLine(scanner.Text()) == want {
			return true
		}
	}

	return false
}

func normalizeLine(line string) string {
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line), ";"))
}

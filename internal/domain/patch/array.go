package patch

import (
	"bytes"
	"regexp"
)

// InsertArrayElement adds element to the first `<field>: [ ... ]` array
// literal of content. It reports whether content was changed.
//
// This is pattern matching, not parsing:
//   - only the first occurrence of the field is considered;
//   - the array body is matched non-greedily, so the closing bracket is the
//     first `]` after the opening one, nested brackets included;
//   - an element already present anywhere in the body as a substring counts
//     as a duplicate;
//   - the element is inserted right before that closing bracket as
//     "\t<element>[,]\n\t", without touching the existing entries.
//
// When the field is absent content is returned unchanged.
func InsertArrayElement(content []byte, field, element string, comma bool) ([]byte, bool) {
	pattern := regexp.MustCompile(`(?s)` + regexp.QuoteMeta(field) + `:\s*\[(.*?)\]`)

	loc := pattern.FindSubmatchIndex(content)
	if loc == nil {
		return content, false
	}

	body := content[loc[2]:loc[3]]
	if bytes.Contains(body, []byte(element)) {
		return content, false
	}

	insertAt := loc[1] - 1

	var inserted bytes.Buffer

	inserted.Grow(len(content) + len(element) + 4)
	inserted.Write(content[:insertAt])
	inserted.WriteByte('\t')
	inserted.WriteString(element)

	if comma {
		inserted.WriteByte(',')
	}

	inserted.WriteString("\n\t")
	inserted.Write(content[insertAt:])

	return inserted.Bytes(), true
}

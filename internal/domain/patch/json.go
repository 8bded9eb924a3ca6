package patch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	m "bvi.dev/pkg/bvi/internal/model"
)

var errNotObject = errors.New("value is not a JSON object")

// member is one key/value pair of a JSON object, kept in document order.
type member struct {
	key   string
	value json.RawMessage
}

// MergeJSONKey sets document[object][key] = value and returns the document
// re-encoded with two space indentation and no trailing newline. Key order
// is preserved; a new key is appended to the end of the object and an
// existing key is overwritten in place.
//
// It fails with model.ErrMalformedJSON when content is not a JSON object and
// with model.ErrMissingObject when document[object] is absent or not an
// object.
func MergeJSONKey(content []byte, object, key, value string) ([]byte, error) {
	document, err := decodeObject(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", m.ErrMalformedJSON, err)
	}

	index := indexOf(document, object)
	if index < 0 {
		return nil, fmt.Errorf("%w: %q", m.ErrMissingObject, object)
	}

	target, err := decodeObject(document[index].value)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", m.ErrMissingObject, object, err)
	}

	encodedValue, err := encodeString(value)
	if err != nil {
		return nil, err
	}

	target = setMember(target, key, encodedValue)

	encodedTarget, err := encodeObject(target)
	if err != nil {
		return nil, err
	}

	document[index].value = encodedTarget

	compact, err := encodeObject(document)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, compact, "", "  "); err != nil {
		return nil, fmt.Errorf("indenting document: %w", err)
	}

	return out.Bytes(), nil
}

// decodeObject splits a JSON object into its members. Duplicate keys keep
// the position of their first occurrence and the value of their last one.
func decodeObject(raw []byte) ([]member, error) {
	decoder := json.NewDecoder(bytes.NewReader(raw))

	token, err := decoder.Token()
	if err != nil {
		return nil, err
	}

	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return nil, errNotObject
	}

	var members []member

	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return nil, err
		}

		key, ok := token.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", token)
		}

		var value json.RawMessage
		if err := decoder.Decode(&value); err != nil {
			return nil, err
		}

		members = setMember(members, key, value)
	}

	if _, err := decoder.Token(); err != nil {
		return nil, err
	}

	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level value")
	}

	if members == nil {
		members = []member{}
	}

	return members, nil
}

func indexOf(members []member, key string) int {
	for i, mb := range members {
		if mb.key == key {
			return i
		}
	}

	return -1
}

func setMember(members []member, key string, value json.RawMessage) []member {
	if i := indexOf(members, key); i >= 0 {
		members[i].value = value
		return members
	}

	return append(members, member{key: key, value: value})
}

// encodeObject writes members back as a compact JSON object.
func encodeObject(members []member) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, mb := range members {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := encodeString(mb.key)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')

		if err := json.Compact(&buf, mb.value); err != nil {
			return nil, fmt.Errorf("compacting %q: %w", mb.key, err)
		}
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func encodeString(s string) ([]byte, error) {
	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(s); err != nil {
		return nil, fmt.Errorf("encoding %q: %w", s, err)
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

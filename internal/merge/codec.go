package merge

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrMalformedDocument is returned when on-disk configuration content
// cannot be parsed into a document tree.
var ErrMalformedDocument = errors.New("merge: malformed configuration document")

// DecodeJSON parses JSON content into a document, preserving object key
// order. Numbers are normalized to int when integral, float64 otherwise.
func DecodeJSON(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	doc, err := decodeJSONValue(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing content after document", ErrMalformedDocument)
	}
	return doc, nil
}

// decodeJSONValue consumes one JSON value from the token stream.
func decodeJSONValue(dec *json.Decoder) (*Document, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			m := NewMap()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("unexpected object key token %v", keyTok)
				}
				val, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				m.Set(key, val)
			}
			// Consume the closing brace.
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return m, nil
		case '[':
			seq := Sequence()
			for dec.More() {
				item, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				seq.items = append(seq.items, item)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return seq, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %q", t)
	case json.Number:
		return Scalar(numberScalar(t)), nil
	default:
		// string, bool, or nil.
		return Scalar(t), nil
	}
}

// numberScalar converts a JSON number literal to int or float64.
func numberScalar(n json.Number) any {
	if i, err := strconv.ParseInt(string(n), 10, 64); err == nil {
		return int(i)
	}
	f, _ := n.Float64()
	return f
}

// DecodeYAML parses YAML content into a document using the yaml.Node
// API so mapping key order survives the round trip.
func DecodeYAML(data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		// Empty input decodes as an empty map for merge purposes.
		return NewMap(), nil
	}
	doc, err := decodeYAMLNode(root.Content[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return doc, nil
}

// decodeYAMLNode walks a parsed YAML node tree into a document.
func decodeYAMLNode(n *yaml.Node) (*Document, error) {
	switch n.Kind {
	case yaml.MappingNode:
		m := NewMap()
		for i := 0; i+1 < len(n.Content); i += 2 {
			var key string
			if err := n.Content[i].Decode(&key); err != nil {
				return nil, err
			}
			val, err := decodeYAMLNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m.Set(key, val)
		}
		return m, nil
	case yaml.SequenceNode:
		seq := Sequence()
		for _, c := range n.Content {
			item, err := decodeYAMLNode(c)
			if err != nil {
				return nil, err
			}
			seq.items = append(seq.items, item)
		}
		return seq, nil
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return Scalar(v), nil
	case yaml.AliasNode:
		return decodeYAMLNode(n.Alias)
	}
	return nil, fmt.Errorf("unsupported YAML node kind %d", n.Kind)
}

// MarshalJSON emits the document as compact JSON with map keys in
// insertion order. Combined with json.MarshalIndent this gives stable,
// readable artifact output.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.encodeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (d *Document) encodeJSON(buf *bytes.Buffer) error {
	switch d.kind {
	case KindScalar:
		b, err := json.Marshal(d.scalar)
		if err != nil {
			return err
		}
		buf.Write(b)
	case KindSequence:
		buf.WriteByte('[')
		for i, item := range d.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.encodeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindMap:
		buf.WriteByte('{')
		for i, k := range d.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			kb, err := json.Marshal(k)
			if err != nil {
				return err
			}
			buf.Write(kb)
			buf.WriteByte(':')
			if err := d.fields[k].encodeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}

// EncodeJSON renders the document as two-space-indented JSON with a
// trailing newline, the form persisted to disk.
func EncodeJSON(d *Document) ([]byte, error) {
	out, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("merge: encode document: %w", err)
	}
	return append(out, '\n'), nil
}

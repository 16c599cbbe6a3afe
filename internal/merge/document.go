// Package merge models the generated lint configuration as a tagged
// document tree and provides the structural merge used to fold a
// pre-existing on-disk configuration into a freshly generated one.
package merge

// Kind discriminates the three value shapes a document node can hold.
type Kind int

const (
	// KindScalar is a leaf value: string, bool, int, float64, or nil.
	KindScalar Kind = iota
	// KindSequence is an ordered list of documents.
	KindSequence
	// KindMap is a keyed collection preserving insertion order.
	KindMap
)

// Document is one node of a configuration tree. The zero value is not
// usable; construct nodes with Scalar, Sequence, or NewMap.
//
// Map nodes remember key insertion order so serialized output is stable
// across runs. Scalar payloads are normalized to string, bool, int,
// float64, or nil at construction and decode time.
type Document struct {
	kind   Kind
	scalar any
	items  []*Document
	keys   []string
	fields map[string]*Document
}

// Scalar returns a leaf document holding v. Integer values of any width
// are normalized to int.
func Scalar(v any) *Document {
	return &Document{kind: KindScalar, scalar: normalizeScalar(v)}
}

// Sequence returns a sequence document over the given items.
func Sequence(items ...*Document) *Document {
	d := &Document{kind: KindSequence}
	d.items = append(d.items, items...)
	return d
}

// Strings returns a sequence document of string scalars.
func Strings(values ...string) *Document {
	items := make([]*Document, len(values))
	for i, v := range values {
		items[i] = Scalar(v)
	}
	return Sequence(items...)
}

// NewMap returns an empty map document.
func NewMap() *Document {
	return &Document{kind: KindMap, fields: make(map[string]*Document)}
}

// Kind reports the node's shape tag.
func (d *Document) Kind() Kind {
	return d.kind
}

// Value returns the scalar payload. It is nil for non-scalar nodes.
func (d *Document) Value() any {
	if d.kind != KindScalar {
		return nil
	}
	return d.scalar
}

// Len returns the item count for sequences and the key count for maps.
func (d *Document) Len() int {
	switch d.kind {
	case KindSequence:
		return len(d.items)
	case KindMap:
		return len(d.keys)
	}
	return 0
}

// Items returns the backing item slice of a sequence node.
func (d *Document) Items() []*Document {
	if d.kind != KindSequence {
		return nil
	}
	return d.items
}

// Keys returns the map keys in insertion order.
func (d *Document) Keys() []string {
	if d.kind != KindMap {
		return nil
	}
	return d.keys
}

// Get looks up a key in a map node.
func (d *Document) Get(key string) (*Document, bool) {
	if d.kind != KindMap {
		return nil, false
	}
	v, ok := d.fields[key]
	return v, ok
}

// Has reports whether a map node contains the key.
func (d *Document) Has(key string) bool {
	_, ok := d.Get(key)
	return ok
}

// Set stores value under key, keeping the key's original position when
// it already exists. No-op on non-map nodes.
func (d *Document) Set(key string, value *Document) {
	if d.kind != KindMap || value == nil {
		return
	}
	if _, exists := d.fields[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.fields[key] = value
}

// SetString stores a string scalar under key.
func (d *Document) SetString(key, value string) {
	d.Set(key, Scalar(value))
}

// SetBool stores a bool scalar under key.
func (d *Document) SetBool(key string, value bool) {
	d.Set(key, Scalar(value))
}

// SetInt stores an int scalar under key.
func (d *Document) SetInt(key string, value int) {
	d.Set(key, Scalar(value))
}

// EnsureMap returns the map stored under key, creating it if the key
// is absent or holds a non-map value. Used by rule steps that must
// tolerate arbitrary shapes left behind by a merged snapshot.
func (d *Document) EnsureMap(key string) *Document {
	if existing, ok := d.Get(key); ok && existing.kind == KindMap {
		return existing
	}
	m := NewMap()
	d.Set(key, m)
	return m
}

// Append adds items to the sequence stored under key, creating the
// sequence if the key is absent or holds a non-sequence value.
// Appends preserve order and do not deduplicate; the merge step is
// where set semantics apply.
func (d *Document) Append(key string, items ...*Document) {
	if d.kind != KindMap {
		return
	}
	target, ok := d.Get(key)
	if !ok || target.kind != KindSequence {
		target = Sequence()
		d.Set(key, target)
	}
	target.items = append(target.items, items...)
}

// AppendStrings adds string scalars to the sequence stored under key.
func (d *Document) AppendStrings(key string, values ...string) {
	items := make([]*Document, len(values))
	for i, v := range values {
		items[i] = Scalar(v)
	}
	d.Append(key, items...)
}

// StringSlice returns the string scalars of the sequence stored under
// key, skipping non-string items. Convenience for inspecting fields
// like extends and plugins.
func (d *Document) StringSlice(key string) []string {
	seq, ok := d.Get(key)
	if !ok || seq.kind != KindSequence {
		return nil
	}
	var out []string
	for _, item := range seq.items {
		if s, ok := item.Value().(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	switch d.kind {
	case KindScalar:
		return &Document{kind: KindScalar, scalar: d.scalar}
	case KindSequence:
		c := &Document{kind: KindSequence, items: make([]*Document, len(d.items))}
		for i, item := range d.items {
			c.items[i] = item.Clone()
		}
		return c
	case KindMap:
		c := NewMap()
		for _, k := range d.keys {
			c.Set(k, d.fields[k].Clone())
		}
		return c
	}
	return nil
}

// Equal reports deep structural equality. Map key order is ignored;
// sequence order is significant.
func (d *Document) Equal(other *Document) bool {
	if d == nil || other == nil {
		return d == other
	}
	if d.kind != other.kind {
		return false
	}
	switch d.kind {
	case KindScalar:
		return d.scalar == other.scalar
	case KindSequence:
		if len(d.items) != len(other.items) {
			return false
		}
		for i := range d.items {
			if !d.items[i].Equal(other.items[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(d.keys) != len(other.keys) {
			return false
		}
		for _, k := range d.keys {
			ov, ok := other.fields[k]
			if !ok || !d.fields[k].Equal(ov) {
				return false
			}
		}
		return true
	}
	return false
}

// normalizeScalar collapses integer widths to int so scalar equality
// behaves the same for constructed and decoded documents.
func normalizeScalar(v any) any {
	switch n := v.(type) {
	case int8:
		return int(n)
	case int16:
		return int(n)
	case int32:
		return int(n)
	case int64:
		return int(n)
	case uint:
		return int(n)
	case uint8:
		return int(n)
	case uint16:
		return int(n)
	case uint32:
		return int(n)
	case uint64:
		return int(n)
	case float32:
		return float64(n)
	}
	return v
}

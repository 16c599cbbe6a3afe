package merge

// Merge combines two documents without mutating either input.
//
// Sequences merge as sets: base elements in base order, then incoming
// elements not already present. Maps merge field by field, recursing
// where both sides carry the same key and appending incoming-only keys
// after the base keys. Any other pairing of shapes is resolved by the
// incoming side winning wholesale.
func Merge(base, incoming *Document) *Document {
	if base == nil {
		return incoming.Clone()
	}
	if incoming == nil {
		return base.Clone()
	}

	switch {
	case base.kind == KindSequence && incoming.kind == KindSequence:
		return unionSequences(base, incoming)
	case base.kind == KindMap && incoming.kind == KindMap:
		return mergeMaps(base, incoming)
	default:
		return incoming.Clone()
	}
}

func unionSequences(base, incoming *Document) *Document {
	out := Sequence()
	for _, item := range base.items {
		appendUnique(out, item)
	}
	for _, item := range incoming.items {
		appendUnique(out, item)
	}
	return out
}

func appendUnique(seq *Document, item *Document) {
	for _, existing := range seq.items {
		if existing.Equal(item) {
			return
		}
	}
	seq.items = append(seq.items, item.Clone())
}

func mergeMaps(base, incoming *Document) *Document {
	out := NewMap()
	for _, k := range base.keys {
		if inc, ok := incoming.fields[k]; ok {
			out.Set(k, Merge(base.fields[k], inc))
		} else {
			out.Set(k, base.fields[k].Clone())
		}
	}
	for _, k := range incoming.keys {
		if _, ok := base.fields[k]; !ok {
			out.Set(k, incoming.fields[k].Clone())
		}
	}
	return out
}

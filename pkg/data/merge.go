package data

// Merge deep-merges an overlay onto a base, returning a new value and
// leaving both inputs untouched. The rules are left-biased on structure and
// overlay-biased on conflicts:
//
//   - object × object merges key-wise; keys on only one side pass through.
//   - sequence × sequence takes the overlay wholesale. Sequences are atomic
//     because element-wise index alignment is ambiguous.
//   - scalars, or any mismatched kinds, take the overlay.
//   - null on either side yields the other side.
//
// Folding sources left-to-right with Merge therefore gives later sources
// precedence over earlier ones.
func Merge(base, overlay Value) Value {
	switch {
	case overlay.IsNull():
		return base.Clone()
	case base.IsNull():
		return overlay.Clone()
	}

	if base.Kind() == KindObject && overlay.Kind() == KindObject {
		merged := make(map[string]Value, len(base.obj)+len(overlay.obj))
		for key, field := range base.obj {
			merged[key] = field.Clone()
		}
		for key, field := range overlay.obj {
			if existing, ok := merged[key]; ok {
				merged[key] = Merge(existing, field)
				continue
			}
			merged[key] = field.Clone()
		}
		return Value{kind: KindObject, obj: merged}
	}

	return overlay.Clone()
}

// MergeAll folds the supplied values left-to-right: the first value is the
// base and every subsequent value overlays the accumulated result. With no
// arguments it returns null.
func MergeAll(values ...Value) Value {
	out := Null()
	for _, value := range values {
		out = Merge(out, value)
	}
	return out
}

// SetPath returns a copy of root with the value at path replaced, creating
// intermediate objects (or extending sequences with nulls) as needed. An
// empty path replaces the root outright.
func SetPath(root Value, path Path, value Value) Value {
	if len(path) == 0 {
		return value.Clone()
	}

	segment := path[0]
	if segment.IsIndex() {
		index := segment.Index()
		items := root.Items()
		for len(items) <= index {
			items = append(items, Null())
		}
		items[index] = SetPath(items[index], path[1:], value)
		return SequenceValue(items...)
	}

	fields := make(map[string]Value, root.Len()+1)
	if root.Kind() == KindObject {
		for key, field := range root.obj {
			fields[key] = field.Clone()
		}
	}
	child := fields[segment.Key()]
	fields[segment.Key()] = SetPath(child, path[1:], value)
	return Value{kind: KindObject, obj: fields}
}

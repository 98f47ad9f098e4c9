package style

// Fragment is a nested mapping of presentational property names to values.
// Leaves are strings, numbers or booleans; a nested Fragment (or the
// map[string]any form produced by YAML decoding) is a responsive-variant
// mapping keyed by display mode and merges key-by-key rather than wholesale.
type Fragment map[string]any

// Clone returns a deep copy of the fragment. Nested mappings and slices are
// copied; leaf values are shared (they are immutable scalar types).
func (f Fragment) Clone() Fragment {
	if f == nil {
		return Fragment{}
	}
	out := make(Fragment, len(f))
	for key, value := range f {
		out[key] = cloneValue(value)
	}
	return out
}

// IsEmpty reports whether the fragment carries no properties.
func (f Fragment) IsEmpty() bool {
	return len(f) == 0
}

func cloneValue(value any) any {
	switch v := value.(type) {
	case Fragment:
		return v.Clone()
	case map[string]any:
		return Fragment(v).Clone()
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}

// asFragment normalises the two nested-mapping representations that can
// appear in a fragment tree. Arrays and scalars are not mappings.
func asFragment(value any) (Fragment, bool) {
	switch v := value.(type) {
	case Fragment:
		return v, true
	case map[string]any:
		return Fragment(v), true
	default:
		return nil, false
	}
}

package style

// Merge deep-merges next onto base and returns a new fragment; neither input
// is mutated. For each key in next: when both sides hold nested mappings the
// mappings merge recursively, otherwise the value from next replaces the base
// value entirely. Arrays count as leaves and are replaced wholesale. Nil
// inputs behave as empty mappings.
func Merge(base, next Fragment) Fragment {
	out := base.Clone()
	for key, nextValue := range next {
		baseNested, baseOK := asFragment(out[key])
		nextNested, nextOK := asFragment(nextValue)
		if baseOK && nextOK {
			out[key] = Merge(baseNested, nextNested)
			continue
		}
		out[key] = cloneValue(nextValue)
	}
	return out
}

// MergeAll folds Merge over fragments in order, later fragments taking
// precedence at the leaf level.
func MergeAll(fragments ...Fragment) Fragment {
	out := Fragment{}
	for _, fragment := range fragments {
		out = Merge(out, fragment)
	}
	return out
}

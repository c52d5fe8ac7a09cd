package config

// walk resolves tokens step by step starting at e. Each name token requires
// the current element to be a group, each index token requires a list.
func walk(e Element, tokens []PathToken) (Element, error) {
	current := e
	for _, t := range tokens {
		var next Element
		var err error
		if t.IsIndex {
			next, err = At(current, t.Index)
		} else {
			next, err = Child(current, t.Name)
		}
		if err != nil {
			return nil, err
		}
		current = next
	}
	return current, nil
}

// Resolve returns the element addressed by path relative to e. Any failure
// along the walk (malformed path, missing key or index, wrong node kind) is
// normalized to a single "config setting not found" lookup error naming the
// original path.
func Resolve(e Element, path string) (Element, error) {
	tokens, err := SplitPath(path)
	if err != nil {
		return nil, err
	}
	target, err := walk(e, tokens)
	if err != nil {
		return nil, lookupErrorf("config setting not found (%s)", path)
	}
	return target, nil
}

// Lookup resolves path relative to e and coerces the addressed atom to T.
// Path failures are reported as a LookupError naming the full path; a found
// atom that cannot be converted to T yields a CoercionError instead.
func Lookup[T Scalar](e Element, path string) (T, error) {
	var zero T
	target, err := Resolve(e, path)
	if err != nil {
		return zero, err
	}
	atom, err := AsAtom(target)
	if err != nil {
		return zero, lookupErrorf("config setting not found (%s)", path)
	}
	return As[T](atom)
}

// LookupOr is Lookup with a fallback: lookup failures return def instead of
// an error. Coercion failures still propagate, so a present-but-mistyped
// value is never silently replaced by the default.
func LookupOr[T Scalar](e Element, path string, def T) (T, error) {
	v, err := Lookup[T](e, path)
	if err != nil {
		if IsLookupError(err) {
			return def, nil
		}
		return def, err
	}
	return v, nil
}

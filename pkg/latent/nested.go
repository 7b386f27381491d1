package latent

import "reflect"

// resolveNested recursively resolves any *Node found inside nested container
// structures, rebuilding the same container shape with resolved values.
//
// Supported shapes are slices, arrays, and maps (which also covers set-like
// map[T]struct{} values). Strings and byte slices are never treated as
// sequences. Unrecognized shapes - including channels and function values -
// pass through untouched.
//
// When opts.MaxDepth is positive and the structure nests deeper than that,
// the remaining structure is returned as-is rather than failing.
//
// Containers are rebuilt with their original type when every resolved value
// still fits its element type; otherwise the result widens to []any or
// map[any]any, since resolving a *Node element generally changes its type.
func resolveNested(v any, opts ComputeOptions, depth int) (any, error) {
	if opts.MaxDepth > 0 && depth > opts.MaxDepth {
		return v, nil
	}

	if n, ok := v.(*Node); ok {
		return n.ComputeWith(opts)
	}
	if v == nil {
		return nil, nil
	}

	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return v, nil
		}
		return resolveSequence(rv, opts, depth+1)
	case reflect.Map:
		return resolveMapping(rv, opts, depth+1)
	default:
		return v, nil
	}
}

func resolveSequence(rv reflect.Value, opts ComputeOptions, depth int) (any, error) {
	n := rv.Len()
	resolved := make([]any, n)
	for i := 0; i < n; i++ {
		r, err := resolveNested(rv.Index(i).Interface(), opts, depth)
		if err != nil {
			return nil, err
		}
		resolved[i] = r
	}

	elem := rv.Type().Elem()
	for _, r := range resolved {
		if !fits(r, elem) {
			return resolved, nil
		}
	}

	var out reflect.Value
	if rv.Kind() == reflect.Array {
		out = reflect.New(rv.Type()).Elem()
	} else {
		out = reflect.MakeSlice(rv.Type(), n, n)
	}
	for i, r := range resolved {
		setValue(out.Index(i), r, elem)
	}
	return out.Interface(), nil
}

func resolveMapping(rv reflect.Value, opts ComputeOptions, depth int) (any, error) {
	type pair struct{ key, val any }
	pairs := make([]pair, 0, rv.Len())

	iter := rv.MapRange()
	for iter.Next() {
		k, err := resolveNested(iter.Key().Interface(), opts, depth)
		if err != nil {
			return nil, err
		}
		v, err := resolveNested(iter.Value().Interface(), opts, depth)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, pair{k, v})
	}

	keyType, elemType := rv.Type().Key(), rv.Type().Elem()
	sameShape := true
	for _, p := range pairs {
		if !fits(p.key, keyType) || !fits(p.val, elemType) {
			sameShape = false
			break
		}
	}

	if sameShape {
		out := reflect.MakeMapWithSize(rv.Type(), len(pairs))
		for _, p := range pairs {
			k := reflect.New(keyType).Elem()
			setValue(k, p.key, keyType)
			v := reflect.New(elemType).Elem()
			setValue(v, p.val, elemType)
			out.SetMapIndex(k, v)
		}
		return out.Interface(), nil
	}

	out := make(map[any]any, len(pairs))
	for _, p := range pairs {
		out[p.key] = p.val
	}
	return out, nil
}

// fits reports whether val can be stored in a container slot of type t.
func fits(val any, t reflect.Type) bool {
	if val == nil {
		switch t.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
			return true
		default:
			return false
		}
	}
	return reflect.TypeOf(val).AssignableTo(t)
}

// setValue stores val into dst, which has type t. Callers must have checked
// fits(val, t) first.
func setValue(dst reflect.Value, val any, t reflect.Type) {
	if val == nil {
		dst.Set(reflect.Zero(t))
		return
	}
	dst.Set(reflect.ValueOf(val))
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "reflect"

// DeepMerge recursively merges sources into target, left to right, and
// returns target.
//
// For every key of a source: a string-keyed map value (map[string]any or any
// Go-typed map such as map[string]string) is merged into the map stored under
// the same key in target (created when absent or not a map); any other value,
// including slices and nil, replaces the target value. Values taken from a
// source are deep-copied and typed maps are stored as map[string]any, so
// target never aliases a source.
func DeepMerge(target map[string]any, sources ...map[string]any) map[string]any {
	if target == nil {
		target = make(map[string]any)
	}

	for _, source := range sources {
		for key, value := range source {
			nested, ok := asObject(value)
			if !ok {
				target[key] = DeepCopy(value)
				continue
			}

			dst, ok := target[key].(map[string]any)
			if !ok {
				if typed, isObject := asObject(target[key]); isObject {
					dst = DeepCopyMap(typed)
				} else {
					dst = make(map[string]any, len(nested))
				}
				target[key] = dst
			}
			DeepMerge(dst, nested)
		}
	}

	return target
}

// DeepCopy returns a copy of v in which every map and slice is duplicated.
// String-keyed maps come back as map[string]any. Slices of scalars keep their
// type; other slices come back as []any. Remaining values are returned as is.
func DeepCopy(v any) any {
	switch value := v.(type) {
	case nil:
		return nil
	case map[string]any:
		return DeepCopyMap(value)
	case []any:
		out := make([]any, len(value))
		for i, item := range value {
			out[i] = DeepCopy(item)
		}
		return out
	}

	if m, ok := asObject(v); ok {
		return DeepCopyMap(m)
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice || rv.IsNil() {
		return v
	}

	switch rv.Type().Elem().Kind() {
	case reflect.Map, reflect.Slice, reflect.Interface, reflect.Pointer:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = DeepCopy(rv.Index(i).Interface())
		}
		return out
	default:
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		reflect.Copy(out, rv)
		return out.Interface()
	}
}

// DeepCopyMap is the typed form of [DeepCopy] for maps. A nil map yields an
// empty one.
func DeepCopyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, item := range m {
		out[k] = DeepCopy(item)
	}
	return out
}

// asObject reports whether v is a map with string keys and returns a shallow
// map[string]any view of it. map[string]any is returned without copying.
func asObject(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}

	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

package native

import "sort"

// Merge recursively merges src into dst and returns dst.
// Values in src override values in dst.
// Objects are merged recursively; other types are replaced.
func Merge(dst, src *Object) *Object {
	if dst == nil {
		dst = NewObject()
	}
	if src == nil {
		return dst
	}

	for _, key := range src.keys {
		srcVal := src.values[key]
		dstVal, exists := dst.values[key]
		if !exists {
			dst.put(key, cloneValue(srcVal))
			continue
		}

		// If both are objects, merge recursively
		srcObj, srcIsObj := srcVal.(*Object)
		dstObj, dstIsObj := dstVal.(*Object)
		if srcIsObj && dstIsObj {
			Merge(dstObj, srcObj)
		} else {
			// Otherwise, src replaces dst
			dst.put(key, cloneValue(srcVal))
		}
	}

	return dst
}

// Flatten returns every leaf of the tree keyed by its dot-separated path.
func Flatten(o *Object) map[string]any {
	result := make(map[string]any)
	flattenRecursive(o, "", result)
	return result
}

func flattenRecursive(o *Object, prefix string, result map[string]any) {
	for _, key := range o.Keys() {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		val := o.values[key]
		if nested, ok := val.(*Object); ok {
			flattenRecursive(nested, fullKey, result)
		} else {
			result[fullKey] = val
		}
	}
}

// Diff returns the leaf paths that differ between two trees.
// Functions compare by identity.
func Diff(old, new *Object) (added, modified, removed []string) {
	oldFlat := Flatten(old)
	newFlat := Flatten(new)

	for path, newVal := range newFlat {
		if oldVal, exists := oldFlat[path]; exists {
			if !valuesEqual(oldVal, newVal) {
				modified = append(modified, path)
			}
		} else {
			added = append(added, path)
		}
	}

	for path := range oldFlat {
		if _, exists := newFlat[path]; !exists {
			removed = append(removed, path)
		}
	}

	sort.Strings(added)
	sort.Strings(modified)
	sort.Strings(removed)
	return added, modified, removed
}

func valuesEqual(a, b any) bool {
	aa, aIsArr := a.(Array)
	ba, bIsArr := b.(Array)
	if aIsArr || bIsArr {
		if !aIsArr || !bIsArr || len(aa) != len(ba) {
			return false
		}
		for i := range aa {
			if !valuesEqual(aa[i], ba[i]) {
				return false
			}
		}
		return true
	}
	ao, aIsObj := a.(*Object)
	bo, bIsObj := b.(*Object)
	if aIsObj || bIsObj {
		if !aIsObj || !bIsObj {
			return false
		}
		added, modified, removed := Diff(ao, bo)
		return len(added) == 0 && len(modified) == 0 && len(removed) == 0
	}
	return a == b
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

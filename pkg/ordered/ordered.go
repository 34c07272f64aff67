// Package ordered holds the list-editing primitives shared by the settings
// draft flows: positional moves over arbitrary slices and bounded key lists
// (system summary metrics, weather meta fields) capped at a maximum size.
package ordered

// Move returns list with the element at index swapped towards direction
// (-1 up, +1 down). Moving past either end is a silent no-op: the input
// slice is returned unchanged.
func Move[T any](list []T, index, direction int) []T {
	target := index + direction
	if index < 0 || index >= len(list) {
		return list
	}
	if target < 0 || target >= len(list) {
		return list
	}
	next := make([]T, len(list))
	copy(next, list)
	next[index], next[target] = next[target], next[index]
	return next
}

// Remove filters out every element matching the predicate. Absence of a
// match is not an error; the filtered copy is returned either way.
func Remove[T any](list []T, match func(T) bool) []T {
	next := make([]T, 0, len(list))
	for _, item := range list {
		if !match(item) {
			next = append(next, item)
		}
	}
	return next
}

// AddKey appends key to a bounded key list. Duplicates and additions past
// max are silent no-ops.
func AddKey(keys []string, key string, max int) []string {
	if len(keys) >= max {
		return keys
	}
	for _, existing := range keys {
		if existing == key {
			return keys
		}
	}
	next := make([]string, len(keys), len(keys)+1)
	copy(next, keys)
	return append(next, key)
}

// RemoveKey drops key from the list if present.
func RemoveKey(keys []string, key string) []string {
	return Remove(keys, func(k string) bool { return k == key })
}

// Normalize validates an ordered key list against its allowed enum: the
// stored order (or defaults when empty) is filtered to allowed keys,
// deduplicated keeping the first occurrence, and capped at max. An empty
// result falls back to the normalized defaults.
func Normalize(order, defaults, allowed []string, max int) []string {
	base := order
	if len(base) == 0 {
		base = defaults
	}
	unique := dedupeAllowed(base, allowed, max)
	if len(unique) > 0 {
		return unique
	}
	return dedupeAllowed(defaults, allowed, max)
}

func dedupeAllowed(keys, allowed []string, max int) []string {
	allowedSet := make(map[string]bool, len(allowed))
	for _, key := range allowed {
		allowedSet[key] = true
	}
	seen := make(map[string]bool, len(keys))
	result := make([]string, 0, len(keys))
	for _, key := range keys {
		if !allowedSet[key] || seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, key)
		if len(result) == max {
			break
		}
	}
	return result
}

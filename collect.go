package pullstreams

// A DuplicateKeyError is returned by ToMapNoDuplicateKeys when a key could
// not be added to the map because it already exists.
type DuplicateKeyError[T any, K comparable] struct {
	// Element is the stream element that caused the error.
	Element T

	// Key is the key that was already in the map.
	Key K
}

// ToMap returns the elements of s collected into a map.
// Elements are mapped using key and value, respectively.
// If a key occurs more than once, the map entry will be overwritten.
func ToMap[T any, K comparable, V any](s Stream[T, Finite], key Function[T, K], value Function[T, V]) map[K]V {
	result := map[K]V{}

	Each(s, func(elem T) {
		result[key(elem)] = value(elem)
	})

	return result
}

// ToMapNoDuplicateKeys returns the elements of s collected into a map.
// Elements are mapped using key and value, respectively.
// If a key occurs more than once, it returns the map collected so far and
// a DuplicateKeyError.
func ToMapNoDuplicateKeys[T any, K comparable, V any](s Stream[T, Finite], key Function[T, K], value Function[T, V]) (map[K]V, error) {
	gen := s.gen.Clone()

	result := map[K]V{}

	for {
		elem, ok := gen.Next()
		if !ok {
			return result, nil
		}

		k := key(elem)

		if _, ok := result[k]; ok {
			return result, &DuplicateKeyError[T, K]{
				Element: elem,
				Key:     k,
			}
		}

		result[k] = value(elem)
	}
}

// GroupBy returns the elements of s collected into a group map.
// Elements will be grouped into slices according to key, preserving the
// stream order within each group.
func GroupBy[T any, K comparable, V any](s Stream[T, Finite], key Function[T, K], value Function[T, V]) map[K][]V {
	result := map[K][]V{}

	Each(s, func(elem T) {
		k := key(elem)
		result[k] = append(result[k], value(elem))
	})

	return result
}

// Partition returns the elements of s collected into a partition map.
// Elements will be grouped into slices according to pred.
func Partition[T any, V any](s Stream[T, Finite], pred Predicate[T], value Function[T, V]) map[bool][]V {
	return GroupBy(s, Function[T, bool](pred), value)
}

// Error implements error.
func (e *DuplicateKeyError[T, K]) Error() string {
	return "duplicate key"
}

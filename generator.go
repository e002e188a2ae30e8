package pullstreams

// Generator produces the elements of a stream, one per call.
// It is the single protocol every stage of a pipeline implements, from leaf
// sources to intermediate operations wrapping an upstream generator.
type Generator[T any] interface {
	// Next returns the next element, or the zero value and false once the
	// generator is exhausted. An exhausted generator keeps reporting
	// exhaustion on further calls. There is no peek: advancing is the only
	// way to observe an element.
	Next() (T, bool)

	// Clone returns an independent duplicate of the generator, including its
	// traversal state and any upstream generators it owns. Advancing the
	// clone must not affect the original, and vice versa.
	Clone() Generator[T]
}

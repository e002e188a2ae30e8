package pullstreams

import "iter"

// Generate returns an infinite stream whose elements are the return values
// of repeated calls to produce. The stream makes no determinism guarantee
// unless produce itself is reproducible.
func Generate[T any](produce func() T) Stream[T, Infinite] {
	return Stream[T, Infinite]{gen: &funcGenerator[T]{produce: produce}}
}

// Of returns a finite stream over the given values, in argument order.
func Of[T any](values ...T) Stream[T, Finite] {
	elems := make([]T, len(values))
	copy(elems, values)

	return Stream[T, Finite]{gen: &sliceGenerator[T]{elems: elems}}
}

// FromSlice returns a finite stream over a copy of the elements of elems.
// The caller remains free to modify elems afterwards.
func FromSlice[T any](elems []T) Stream[T, Finite] {
	owned := make([]T, len(elems))
	copy(owned, elems)

	return Stream[T, Finite]{gen: &sliceGenerator[T]{elems: owned}}
}

// WrapSlice returns a finite stream that takes ownership of elems without
// copying. The caller must not modify elems afterwards.
func WrapSlice[T any](elems []T) Stream[T, Finite] {
	return Stream[T, Finite]{gen: &sliceGenerator[T]{elems: elems}}
}

// FromSeq returns a finite stream over the elements of seq, in order.
// The sequence is drained once, at construction time; seq must be finite.
func FromSeq[T any](seq iter.Seq[T]) Stream[T, Finite] {
	elems := []T{}
	for elem := range seq {
		elems = append(elems, elem)
	}

	return Stream[T, Finite]{gen: &sliceGenerator[T]{elems: elems}}
}

// FromChannel returns a finite stream over the elements received through ch,
// in order. The channel is drained at construction time and therefore must
// be closed by the sender.
func FromChannel[T any](ch <-chan T) Stream[T, Finite] {
	elems := []T{}
	for elem := range ch {
		elems = append(elems, elem)
	}

	return Stream[T, Finite]{gen: &sliceGenerator[T]{elems: elems}}
}

// FromGenerator returns a finite stream backed by gen. The generator must
// honor the Generator contract, in particular Clone independence; the caller
// asserts that it eventually exhausts. The stream takes ownership of gen.
func FromGenerator[T any](gen Generator[T]) Stream[T, Finite] {
	return Stream[T, Finite]{gen: gen}
}

// funcGenerator produces elements by calling a producer function.
// It never exhausts.
type funcGenerator[T any] struct {
	produce func() T
}

func (g *funcGenerator[T]) Next() (T, bool) {
	return g.produce(), true
}

func (g *funcGenerator[T]) Clone() Generator[T] {
	gen := *g
	return &gen
}

// sliceGenerator produces the elements of an owned slice, front to back.
// Clones share the backing array, which is never written after construction.
type sliceGenerator[T any] struct {
	elems []T
	pos   int
}

func (g *sliceGenerator[T]) Next() (T, bool) {
	if g.pos >= len(g.elems) {
		var zero T
		return zero, false
	}

	elem := g.elems[g.pos]
	g.pos++

	return elem, true
}

func (g *sliceGenerator[T]) Clone() Generator[T] {
	gen := *g
	return &gen
}

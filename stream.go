package pullstreams

import "iter"

// Finite marks a stream whose generator is guaranteed to exhaust.
type Finite struct{}

// Infinite marks a stream whose generator never exhausts.
type Infinite struct{}

// Cardinality is the set of stream markers: Finite or Infinite.
// It is carried as a type parameter, so applying a full-traversal terminal
// operation to an infinite stream fails to compile.
type Cardinality interface {
	Finite | Infinite
}

// Stream is a lazy pipeline of elements of type T backed by a single
// generator. The zero value is not usable; construct streams with Generate,
// Of, FromSlice, WrapSlice, FromSeq, FromChannel, or FromGenerator.
//
// A stream never advances its own generator: intermediate and terminal
// operations capture clones, so the same stream can be composed and consumed
// repeatedly with identical results.
type Stream[T any, C Cardinality] struct {
	gen Generator[T]
}

// IsFinite reports the stream's compile-time cardinality marker.
func (s Stream[T, C]) IsFinite() bool {
	var c C
	_, finite := any(c).(Finite)
	return finite
}

// Clone returns a stream backed by an independent clone of s's generator.
func (s Stream[T, C]) Clone() Stream[T, C] {
	return Stream[T, C]{gen: s.gen.Clone()}
}

// Values returns an iterator over the elements of s, for use with range.
// Each range loop iterates over a fresh clone of the generator, so the
// sequence is reusable and always replays from the start. Ranging over an
// infinite stream yields forever unless the loop breaks.
func Values[T any, C Cardinality](s Stream[T, C]) iter.Seq[T] {
	return func(yield func(T) bool) {
		gen := s.gen.Clone()

		for {
			elem, ok := gen.Next()
			if !ok || !yield(elem) {
				return
			}
		}
	}
}

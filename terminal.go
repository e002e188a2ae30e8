package pullstreams

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/exp/constraints"
)

// Accumulator folds element elem into the accumulator acc, returning acc,
// or a new accumulator.
type Accumulator[T any, U any] func(acc U, elem T) U

// ErrInsufficientElements is the error returned by Nth when the stream holds
// fewer elements than the requested index requires.
var ErrInsufficientElements = errors.New("insufficient elements")

// ErrEmptyStream is the error returned by Sum, Reduce, and ReduceWith when
// the stream holds no elements.
var ErrEmptyStream = errors.New("empty stream")

// Summable is the set of element types Sum can add up.
type Summable interface {
	constraints.Integer | constraints.Float | constraints.Complex | ~string
}

// DefaultDelimiter separates elements written by PrintTo when no delimiter
// is given.
const DefaultDelimiter = " "

// Nth returns the element of s at the 0-based index n.
// It returns an error wrapping ErrInsufficientElements if s exhausts before
// producing n+1 elements. Nth pulls at most n+1 elements and therefore works
// on infinite streams as well.
func Nth[T any, C Cardinality](s Stream[T, C], n int) (T, error) {
	if n < 0 {
		panic(fmt.Sprintf("pullstreams: negative index %d", n))
	}

	gen := s.gen.Clone()

	var elem T
	for i := 0; i <= n; i++ {
		var ok bool

		elem, ok = gen.Next()
		if !ok {
			var zero T
			return zero, fmt.Errorf("nth %d: %w", n, ErrInsufficientElements)
		}
	}

	return elem, nil
}

// PrintTo writes the elements of s to w, separated by delimiter, and returns
// w for further use. If no delimiter is given, DefaultDelimiter is used.
// An empty stream writes nothing.
func PrintTo[T any](s Stream[T, Finite], w io.Writer, delimiter ...string) io.Writer {
	delim := DefaultDelimiter
	if len(delimiter) > 0 {
		delim = delimiter[0]
	}

	gen := s.gen.Clone()

	elem, ok := gen.Next()
	if !ok {
		return w
	}

	fmt.Fprintf(w, "%v", elem)

	for {
		elem, ok = gen.Next()
		if !ok {
			return w
		}

		fmt.Fprintf(w, "%s%v", delim, elem)
	}
}

// Sum returns the left-to-right sum of the elements of s.
// It returns an error wrapping ErrEmptyStream if s holds no elements.
func Sum[T Summable](s Stream[T, Finite]) (T, error) {
	gen := s.gen.Clone()

	sum, ok := gen.Next()
	if !ok {
		var zero T
		return zero, fmt.Errorf("sum: %w", ErrEmptyStream)
	}

	for {
		elem, ok := gen.Next()
		if !ok {
			return sum, nil
		}

		sum += elem
	}
}

// Reduce folds the elements of s left to right using reduce, seeded with the
// first element. It returns an error wrapping ErrEmptyStream if s holds no
// elements.
func Reduce[T any](s Stream[T, Finite], reduce Accumulator[T, T]) (T, error) {
	return ReduceWith(s, func(elem T) T { return elem }, reduce)
}

// ReduceWith folds the elements of s left to right into an accumulator of
// type U: the seed is produced by applying seed to the first element, and
// reduce is applied to every element thereafter. It returns an error
// wrapping ErrEmptyStream if s holds no elements.
func ReduceWith[T any, U any](s Stream[T, Finite], seed Function[T, U], reduce Accumulator[T, U]) (U, error) {
	gen := s.gen.Clone()

	elem, ok := gen.Next()
	if !ok {
		var zero U
		return zero, fmt.Errorf("reduce: %w", ErrEmptyStream)
	}

	acc := seed(elem)

	for {
		elem, ok = gen.Next()
		if !ok {
			return acc, nil
		}

		acc = reduce(acc, elem)
	}
}

// ToSlice returns the elements of s collected into a slice, in order.
// An empty stream yields an empty, non-nil slice.
func ToSlice[T any](s Stream[T, Finite]) []T {
	gen := s.gen.Clone()

	elems := []T{}

	for {
		elem, ok := gen.Next()
		if !ok {
			return elems
		}

		elems = append(elems, elem)
	}
}

// Each calls each for every element of s, in order.
func Each[T any](s Stream[T, Finite], each func(elem T)) {
	gen := s.gen.Clone()

	for {
		elem, ok := gen.Next()
		if !ok {
			return
		}

		each(elem)
	}
}

// Count returns the number of elements of s.
func Count[T any](s Stream[T, Finite]) int {
	gen := s.gen.Clone()

	count := 0

	for {
		if _, ok := gen.Next(); !ok {
			return count
		}

		count++
	}
}

// AnyMatch returns true if pred returns true for at least one element of s.
// It stops pulling at the first match.
func AnyMatch[T any](s Stream[T, Finite], pred Predicate[T]) bool {
	gen := s.gen.Clone()

	for {
		elem, ok := gen.Next()
		if !ok {
			return false
		}

		if pred(elem) {
			return true
		}
	}
}

// AllMatch returns true if pred returns true for every element of s.
// It stops pulling at the first element that does not match. An empty stream
// matches.
func AllMatch[T any](s Stream[T, Finite], pred Predicate[T]) bool {
	gen := s.gen.Clone()

	for {
		elem, ok := gen.Next()
		if !ok {
			return true
		}

		if !pred(elem) {
			return false
		}
	}
}

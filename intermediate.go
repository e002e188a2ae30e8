package pullstreams

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Function returns the result of applying an operation to elem.
type Function[T any, U any] func(elem T) U

// Predicate returns true if elem matches a condition.
type Predicate[T any] func(elem T) bool

// Less returns true if element a is "less" than element b.
type Less[T any] func(a T, b T) bool

// Skip returns a stream that produces the same elements as s, in order,
// without the first num elements. If s has fewer than num elements, the
// resulting stream is empty. Skipping preserves the cardinality of s.
func Skip[T any, C Cardinality](s Stream[T, C], num int) Stream[T, C] {
	if num < 0 {
		panic(fmt.Sprintf("pullstreams: negative skip count %d", num))
	}

	return Stream[T, C]{gen: &skipGenerator[T]{
		upstream: s.gen.Clone(),
		num:      num,
	}}
}

// Take returns a stream that produces the first num elements of s, in order,
// or all of them if s has fewer. The resulting stream is always finite,
// which makes Take the way to bound an infinite stream.
func Take[T any, C Cardinality](s Stream[T, C], num int) Stream[T, Finite] {
	if num < 0 {
		panic(fmt.Sprintf("pullstreams: negative take count %d", num))
	}

	return Stream[T, Finite]{gen: &takeGenerator[T]{
		upstream: s.gen.Clone(),
		num:      num,
	}}
}

// Filter returns a stream that produces the elements of s for which pred
// returns true, in order. Filtering preserves the cardinality of s.
func Filter[T any, C Cardinality](s Stream[T, C], pred Predicate[T]) Stream[T, C] {
	return Stream[T, C]{gen: &filterGenerator[T]{
		upstream: s.gen.Clone(),
		pred:     pred,
	}}
}

// Group returns a stream that produces the elements of s batched into
// consecutive slices of size elements, in order. The final batch of a finite
// stream may be shorter; no batch is ever empty. Grouping preserves the
// cardinality of s.
func Group[T any, C Cardinality](s Stream[T, C], size int) Stream[[]T, C] {
	if size < 1 {
		panic(fmt.Sprintf("pullstreams: non-positive group size %d", size))
	}

	return Stream[[]T, C]{gen: &groupGenerator[T]{
		upstream: s.gen.Clone(),
		size:     size,
	}}
}

// Map returns a stream that produces the result of applying mapp to each
// element of s, in order. Mapping preserves the cardinality of s.
func Map[T any, U any, C Cardinality](s Stream[T, C], mapp Function[T, U]) Stream[U, C] {
	return Stream[U, C]{gen: &mapGenerator[T, U]{
		upstream: s.gen.Clone(),
		mapp:     mapp,
	}}
}

// Sorted returns a stream that produces the elements of s in the order
// defined by less. The upstream elements are collected and sorted lazily,
// on the first pull.
func Sorted[T any](s Stream[T, Finite], less Less[T]) Stream[T, Finite] {
	return Stream[T, Finite]{gen: &sortGenerator[T]{
		upstream: s.gen.Clone(),
		less:     less,
	}}
}

// Peek returns a stream that produces the same elements as s, in order,
// calling peek on each element as it is pulled. Peeking preserves the
// cardinality of s.
func Peek[T any, C Cardinality](s Stream[T, C], peek func(elem T)) Stream[T, C] {
	return Stream[T, C]{gen: &peekGenerator[T]{
		upstream: s.gen.Clone(),
		peek:     peek,
	}}
}

// skipGenerator discards the first num upstream elements on its first pull,
// then forwards the upstream unchanged.
type skipGenerator[T any] struct {
	upstream Generator[T]
	num      int
	skipped  bool
}

func (g *skipGenerator[T]) Next() (T, bool) {
	if !g.skipped {
		g.skipped = true

		for i := 0; i < g.num; i++ {
			if _, ok := g.upstream.Next(); !ok {
				var zero T
				return zero, false
			}
		}
	}

	return g.upstream.Next()
}

func (g *skipGenerator[T]) Clone() Generator[T] {
	return &skipGenerator[T]{
		upstream: g.upstream.Clone(),
		num:      g.num,
		skipped:  g.skipped,
	}
}

// takeGenerator forwards up to num upstream elements, then reports
// exhaustion regardless of the upstream state. The quota is consumed only by
// successful pulls: an upstream exhaustion does not count against it.
type takeGenerator[T any] struct {
	upstream Generator[T]
	num      int
	taken    int
}

func (g *takeGenerator[T]) Next() (T, bool) {
	if g.taken >= g.num {
		var zero T
		return zero, false
	}

	elem, ok := g.upstream.Next()
	if !ok {
		var zero T
		return zero, false
	}

	g.taken++

	return elem, true
}

func (g *takeGenerator[T]) Clone() Generator[T] {
	return &takeGenerator[T]{
		upstream: g.upstream.Clone(),
		num:      g.num,
		taken:    g.taken,
	}
}

type filterGenerator[T any] struct {
	upstream Generator[T]
	pred     Predicate[T]
}

func (g *filterGenerator[T]) Next() (T, bool) {
	for {
		elem, ok := g.upstream.Next()
		if !ok {
			var zero T
			return zero, false
		}

		if g.pred(elem) {
			return elem, true
		}
	}
}

func (g *filterGenerator[T]) Clone() Generator[T] {
	return &filterGenerator[T]{
		upstream: g.upstream.Clone(),
		pred:     g.pred,
	}
}

type groupGenerator[T any] struct {
	upstream Generator[T]
	size     int
}

func (g *groupGenerator[T]) Next() ([]T, bool) {
	elem, ok := g.upstream.Next()
	if !ok {
		return nil, false
	}

	batch := make([]T, 0, g.size)
	batch = append(batch, elem)

	for len(batch) < g.size {
		elem, ok = g.upstream.Next()
		if !ok {
			break
		}

		batch = append(batch, elem)
	}

	return batch, true
}

func (g *groupGenerator[T]) Clone() Generator[[]T] {
	return &groupGenerator[T]{
		upstream: g.upstream.Clone(),
		size:     g.size,
	}
}

type mapGenerator[T any, U any] struct {
	upstream Generator[T]
	mapp     Function[T, U]
}

func (g *mapGenerator[T, U]) Next() (U, bool) {
	elem, ok := g.upstream.Next()
	if !ok {
		var zero U
		return zero, false
	}

	return g.mapp(elem), true
}

func (g *mapGenerator[T, U]) Clone() Generator[U] {
	return &mapGenerator[T, U]{
		upstream: g.upstream.Clone(),
		mapp:     g.mapp,
	}
}

// sortGenerator drains and sorts the upstream on the first pull, then
// produces the sorted elements front to back.
type sortGenerator[T any] struct {
	upstream Generator[T]
	less     Less[T]
	sorted   *sliceGenerator[T]
}

func (g *sortGenerator[T]) Next() (T, bool) {
	if g.sorted == nil {
		elems := []T{}

		for {
			elem, ok := g.upstream.Next()
			if !ok {
				break
			}

			elems = append(elems, elem)
		}

		slices.SortFunc(elems, g.less)

		g.sorted = &sliceGenerator[T]{elems: elems}
	}

	return g.sorted.Next()
}

func (g *sortGenerator[T]) Clone() Generator[T] {
	gen := &sortGenerator[T]{
		upstream: g.upstream.Clone(),
		less:     g.less,
	}

	if g.sorted != nil {
		sorted := *g.sorted
		gen.sorted = &sorted
	}

	return gen
}

type peekGenerator[T any] struct {
	upstream Generator[T]
	peek     func(elem T)
}

func (g *peekGenerator[T]) Next() (T, bool) {
	elem, ok := g.upstream.Next()
	if !ok {
		var zero T
		return zero, false
	}

	g.peek(elem)

	return elem, true
}

func (g *peekGenerator[T]) Clone() Generator[T] {
	return &peekGenerator[T]{
		upstream: g.upstream.Clone(),
		peek:     g.peek,
	}
}

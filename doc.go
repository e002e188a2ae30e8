// Package pullstreams provides lazy, pull-based streams of elements.
// A stream wraps a single generator, a stateful source that either produces
// the next element or signals exhaustion.
//
// Streams are constructed from a producer function (an infinite stream),
// or from slices, sequences, channels, or value packs (finite streams).
//
// Elements may then be passed through intermediate operations such as
// Skip, Take, Filter, Group, Map, and Sorted. Intermediate operations never
// consume the stream they are applied to: each one captures an independent
// clone of the upstream generator and returns a new stream.
//
// Finally, the elements are consumed by terminal operations such as ToSlice,
// Sum, Reduce, Nth, or PrintTo. Terminal operations also work on a private
// clone, so a stream can be consumed any number of times and always replays
// from the start.
//
// Whether a stream is finite is part of its type: Stream[T, Finite] versus
// Stream[T, Infinite]. Terminal operations that require full traversal only
// accept Stream[T, Finite], so draining an unbounded stream is a compile
// error rather than a hang. Take always yields a finite stream and is the
// way to bound an infinite one.
//
// Streams are always lazy, meaning that generators produce a new element
// only when a downstream operation pulls it. All evaluation is synchronous
// and single-threaded; a stream must not be used from multiple goroutines
// at once.
package pullstreams

package pullstreams

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestNth(t *testing.T) {
	is := is.New(t)

	ints := Of(1, 2, 3, 4, 5)

	elem, err := Nth(ints, 3)

	is.NoErr(err)
	is.Equal(elem, 4)
}

func TestNth_InsufficientElements(t *testing.T) {
	is := is.New(t)

	ints := Of(1, 2, 3, 4, 5)

	_, err := Nth(ints, 5)

	is.True(errors.Is(err, ErrInsufficientElements))
}

func TestNth_Infinite(t *testing.T) {
	is := is.New(t)

	ones := Generate(func() int { return 1 })

	elem, err := Nth(ones, 100)

	is.NoErr(err)
	is.Equal(elem, 1)
}

func TestPrintTo(t *testing.T) {
	is := is.New(t)

	ints := Of(1, 2, 3, 4, 5)

	sb := strings.Builder{}
	PrintTo(ints, &sb)

	is.Equal(sb.String(), "1 2 3 4 5")
}

func TestPrintTo_Delimiter(t *testing.T) {
	is := is.New(t)

	ints := Of(1, 2, 3, 4, 5)

	sb := strings.Builder{}
	PrintTo(ints, &sb, "_")

	is.Equal(sb.String(), "1_2_3_4_5")
}

func TestPrintTo_Empty(t *testing.T) {
	is := is.New(t)

	sb := strings.Builder{}
	PrintTo(Of[int](), &sb)

	is.Equal(sb.String(), "")
}

func TestPrintTo_ReturnsSink(t *testing.T) {
	is := is.New(t)

	sb := strings.Builder{}

	w := PrintTo(Of(1, 2), &sb)

	is.Equal(w, &sb)
}

func TestSum(t *testing.T) {
	is := is.New(t)

	sum, err := Sum(Of(1, 2, 3, 4, 5))

	is.NoErr(err)
	is.Equal(sum, 15)
}

func TestSum_Strings(t *testing.T) {
	is := is.New(t)

	sum, err := Sum(Of("a", "b", "c"))

	is.NoErr(err)
	is.Equal(sum, "abc")
}

func TestSum_Empty(t *testing.T) {
	is := is.New(t)

	_, err := Sum(Of[int]())

	is.True(errors.Is(err, ErrEmptyStream))
}

func TestReduce(t *testing.T) {
	is := is.New(t)

	ints := Of(1, 2, 3, 4, 5)

	result, err := Reduce(ints, func(acc int, elem int) int {
		return acc + 2*elem
	})

	is.NoErr(err)
	is.Equal(result, 29)
}

func TestReduce_Empty(t *testing.T) {
	is := is.New(t)

	_, err := Reduce(Of[int](), func(acc int, elem int) int {
		return acc + elem
	})

	is.True(errors.Is(err, ErrEmptyStream))
}

func TestReduceWith(t *testing.T) {
	is := is.New(t)

	ints := Of(1, 2, 3, 4, 5)

	result, err := ReduceWith(ints,
		func(elem int) float64 {
			return 10.0 * float64(elem)
		},
		func(acc float64, elem int) float64 {
			return acc + 2.0*float64(elem)
		})

	is.NoErr(err)
	is.Equal(result, 38.0)
}

func TestReduceWith_Empty(t *testing.T) {
	is := is.New(t)

	_, err := ReduceWith(Of[int](),
		func(elem int) int { return elem },
		func(acc int, elem int) int { return acc + elem })

	is.True(errors.Is(err, ErrEmptyStream))
}

func TestToSlice(t *testing.T) {
	is := is.New(t)

	ints := Of(1, 2, 3, 4, 5)

	is.Equal(ToSlice(ints), []int{1, 2, 3, 4, 5})
}

func TestToSlice_Empty(t *testing.T) {
	is := is.New(t)

	elems := ToSlice(Of[int]())

	is.True(elems != nil)
	is.Equal(len(elems), 0)
}

func TestEach(t *testing.T) {
	is := is.New(t)

	seen := []int{}

	Each(Of(1, 2, 3), func(elem int) {
		seen = append(seen, elem)
	})

	is.Equal(seen, []int{1, 2, 3})
}

func TestCount(t *testing.T) {
	is := is.New(t)

	is.Equal(Count(Of(1, 2, 3, 4, 5)), 5)
	is.Equal(Count(Of[int]()), 0)
}

func TestAnyMatch(t *testing.T) {
	is := is.New(t)

	ints := Of(1, 2, 3, 4, 5)

	is.True(AnyMatch(ints, func(elem int) bool { return elem == 3 }))
	is.True(!AnyMatch(ints, func(elem int) bool { return elem > 10 }))
}

func TestAllMatch(t *testing.T) {
	is := is.New(t)

	ints := Of(1, 2, 3, 4, 5)

	is.True(AllMatch(ints, func(elem int) bool { return elem > 0 }))
	is.True(!AllMatch(ints, func(elem int) bool { return elem%2 == 1 }))
	is.True(AllMatch(Of[int](), func(elem int) bool { return false }))
}

package pcol

import (
	"errors"
	"fmt"
	"testing"

	qt "github.com/frankban/quicktest"
)

func eqInt(a, b int) bool { return a == b }

// kindOf extracts the Kind of a pcol error, for use with qt.Equals.
func kindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Kind(-1)
}

func TestEmptyListProperties(t *testing.T) {
	c := qt.New(t)
	l := Empty[int]()
	c.Assert(l.Len(), qt.Equals, 0)
	c.Assert(l.IsEmpty(), qt.IsTrue)
	c.Assert(l.IsNotEmpty(), qt.IsFalse)
	_, err := l.First()
	c.Assert(kindOf(err), qt.Equals, EmptyCollection)
}

func TestFromSliceAndToSlice(t *testing.T) {
	c := qt.New(t)
	src := []int{1, 2, 3, 4, 5}
	l := FromSlice(src)
	c.Assert(l.Len(), qt.Equals, 5)
	c.Assert(l.ToSlice(), qt.DeepEquals, src)

	// FromSlice must copy: mutating src afterwards must not affect l.
	src[0] = 999
	c.Assert(l.ToSlice()[0], qt.Equals, 1)
}

func TestListGrowsPastOneLevel(t *testing.T) {
	c := qt.New(t)
	l := Empty[int]()
	const n = 5000
	for i := 0; i < n; i++ {
		l = l.Add(i)
	}
	c.Assert(l.Len(), qt.Equals, n)
	for i := 0; i < n; i += 137 {
		v, err := l.At(i)
		c.Assert(err, qt.IsNil)
		c.Assert(v, qt.Equals, i)
	}
}

func TestInsertAtMidCausesSplit(t *testing.T) {
	c := qt.New(t)
	src := make([]int, 2000)
	for i := range src {
		src[i] = i
	}
	l := FromSlice(src)
	l2, err := l.InsertAt(1000, -1)
	c.Assert(err, qt.IsNil)
	c.Assert(l2.Len(), qt.Equals, 2001)
	v, _ := l2.At(1000)
	c.Assert(v, qt.Equals, -1)
	v, _ = l2.At(1001)
	c.Assert(v, qt.Equals, 1000)

	// original untouched
	c.Assert(l.Len(), qt.Equals, 2000)
}

func TestConcatOfTwoTallTrees(t *testing.T) {
	c := qt.New(t)
	a := make([]int, 3000)
	b := make([]int, 4000)
	for i := range a {
		a[i] = i
	}
	for i := range b {
		b[i] = 10000 + i
	}
	la, lb := FromSlice(a), FromSlice(b)
	lc := la.Concat(lb)
	c.Assert(lc.Len(), qt.Equals, len(a)+len(b))
	v, _ := lc.At(len(a))
	c.Assert(v, qt.Equals, 10000)
	v, _ = lc.At(lc.Len() - 1)
	c.Assert(v, qt.Equals, 10000+len(b)-1)
}

func TestSublistPreservesIdentity(t *testing.T) {
	c := qt.New(t)
	src := make([]int, 1000)
	for i := range src {
		src[i] = i
	}
	l := FromSlice(src)
	whole, err := l.Sublist(0, l.Len())
	c.Assert(err, qt.IsNil)
	c.Assert(whole.root == l.root, qt.IsTrue)

	sub, err := l.Sublist(100, 200)
	c.Assert(err, qt.IsNil)
	c.Assert(sub.Len(), qt.Equals, 100)
	for i := 0; i < 100; i++ {
		v, _ := sub.At(i)
		c.Assert(v, qt.Equals, 100+i)
	}
	// l unaffected
	c.Assert(l.Len(), qt.Equals, 1000)
}

func TestRemoveAtAndRemove(t *testing.T) {
	c := qt.New(t)
	l := Of(1, 2, 3, 2, 1)
	l2, err := l.RemoveAt(0)
	c.Assert(err, qt.IsNil)
	c.Assert(l2.ToSlice(), qt.DeepEquals, []int{2, 3, 2, 1})

	l3 := l.Remove(2, eqInt)
	c.Assert(l3.ToSlice(), qt.DeepEquals, []int{1, 3, 2, 1})
}

func TestRemoveWhere(t *testing.T) {
	c := qt.New(t)
	l := FromSlice([]int{1, 2, 3, 4, 5, 6})
	l2 := l.RemoveWhere(func(v int) bool { return v%2 == 0 })
	c.Assert(l2.ToSlice(), qt.DeepEquals, []int{1, 3, 5})
}

func TestIndexOfAndContains(t *testing.T) {
	c := qt.New(t)
	l := Of("a", "b", "c", "b")
	c.Assert(l.IndexOf("b", 0, func(a, b string) bool { return a == b }), qt.Equals, 1)
	c.Assert(l.LastIndexOf("b", l.Len(), func(a, b string) bool { return a == b }), qt.Equals, 3)
	c.Assert(l.Contains("c", func(a, b string) bool { return a == b }), qt.IsTrue)
	c.Assert(l.Contains("z", func(a, b string) bool { return a == b }), qt.IsFalse)
}

func TestBinarySearch(t *testing.T) {
	c := qt.New(t)
	l := FromSlice([]int{1, 3, 5, 7, 9})
	less := func(a, b int) bool { return a < b }
	idx, found := l.BinarySearch(5, less)
	c.Assert(found, qt.IsTrue)
	c.Assert(idx, qt.Equals, 2)
	idx, found = l.BinarySearch(4, less)
	c.Assert(found, qt.IsFalse)
	c.Assert(idx, qt.Equals, 2)
}

func TestListEqualAndHash(t *testing.T) {
	c := qt.New(t)
	a := Of(1, 2, 3)
	b := FromSlice([]int{1, 2, 3})
	d := Of(1, 2, 4)
	c.Assert(a.Equal(b, eqInt), qt.IsTrue)
	c.Assert(a.Equal(d, eqInt), qt.IsFalse)
	c.Assert(a.Hash(func(v int) uint64 { return uint64(v) }), qt.Equals, b.Hash(func(v int) uint64 { return uint64(v) }))
}

func TestToSetAndAsMap(t *testing.T) {
	c := qt.New(t)
	l := Of(1, 2, 2, 3)
	s := ToSet(l)
	c.Assert(s.Size(), qt.Equals, uint32(3))

	m := l.AsMap()
	c.Assert(m.Len(), qt.Equals, 4)
	v, ok := m.Get(2)
	c.Assert(ok, qt.IsTrue)
	c.Assert(v, qt.Equals, 2)
}

func TestSortAndShuffle(t *testing.T) {
	c := qt.New(t)
	l := Of(5, 3, 1, 4, 2)
	sorted := l.Sort(func(a, b int) bool { return a < b })
	c.Assert(sorted.ToSlice(), qt.DeepEquals, []int{1, 2, 3, 4, 5})
	// original unaffected
	c.Assert(l.ToSlice(), qt.DeepEquals, []int{5, 3, 1, 4, 2})

	shuffled := l.Shuffle()
	c.Assert(shuffled.Len(), qt.Equals, l.Len())
	c.Assert(ToSet(shuffled).Equals(ToSet(l)), qt.IsTrue)
}

func TestMapWhereJoinReduce(t *testing.T) {
	c := qt.New(t)
	l := Of(1, 2, 3, 4)
	doubled := MapList(l, func(v int) int { return v * 2 })
	c.Assert(doubled.ToSlice(), qt.DeepEquals, []int{2, 4, 6, 8})

	evens := l.Where(func(v int) bool { return v%2 == 0 })
	c.Assert(evens.ToSlice(), qt.DeepEquals, []int{2, 4})

	joined := l.Join(",", func(v int) string { return fmt.Sprintf("%d", v) })
	c.Assert(joined, qt.Equals, "1,2,3,4")

	sum := l.Reduce(0, func(acc, v int) int { return acc + v })
	c.Assert(sum, qt.Equals, 10)
}

func TestSingleAndSingleWhere(t *testing.T) {
	c := qt.New(t)
	one := Of(42)
	v, err := one.Single()
	c.Assert(err, qt.IsNil)
	c.Assert(v, qt.Equals, 42)

	_, err = Empty[int]().Single()
	c.Assert(kindOf(err), qt.Equals, EmptyCollection)

	_, err = Of(1, 2).Single()
	c.Assert(kindOf(err), qt.Equals, TooManyElements)

	l := Of(1, 2, 3, 4)
	v, err = l.SingleWhere(func(v int) bool { return v == 3 })
	c.Assert(err, qt.IsNil)
	c.Assert(v, qt.Equals, 3)

	_, err = l.SingleWhere(func(v int) bool { return v%2 == 0 })
	c.Assert(kindOf(err), qt.Equals, TooManyElements)

	_, err = l.SingleWhere(func(v int) bool { return v > 100 })
	c.Assert(kindOf(err), qt.Equals, EmptyCollection)
}

func ExampleList_basicUsage() {
	l := Of(1, 2, 3).Add(4).RemoveWhere(func(v int) bool { return v == 2 })
	fmt.Println(l.ToSlice())
	// Output:
	// [1 3 4]
}

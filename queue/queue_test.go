package queue

import (
	"fmt"
	"testing"

	"gotest.tools/assert"

	"github.com/alice39/own-stl/list"
)

func TestPushPop(t *testing.T) {
	q := New[int]()
	assert.Check(t, q.Empty())

	q.Push(1)
	q.Push(2)
	q.Push(3)
	assert.Equal(t, 3, q.Len())
	assert.Equal(t, 1, q.Front())
	assert.Equal(t, 3, q.Back())

	assert.Equal(t, 1, q.Pop())
	assert.Equal(t, 2, q.Pop())
	assert.Equal(t, 3, q.Front())
	assert.Equal(t, 1, q.Len())
}

func TestAppend(t *testing.T) {
	q := Of(1, 2)
	other := Of(3, 4)

	q.Append(other)
	assert.Equal(t, 4, q.Len())
	assert.Check(t, other.Empty())
	assert.Check(t, list.Of(1, 2, 3, 4).Equal(q.IntoList()))

	// Popping drains in arrival order across the splice boundary.
	for want := 1; want <= 4; want++ {
		assert.Equal(t, want, q.Pop())
	}
}

func TestReverse(t *testing.T) {
	q := Of(1, 2, 3)
	q.Reverse()
	assert.Equal(t, 3, q.Front())
	assert.Equal(t, 1, q.Back())
}

func TestClearAndSwap(t *testing.T) {
	a := Of(1, 2)
	b := Of(3)

	a.Swap(b)
	assert.Equal(t, 3, a.Front())
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 2, b.Len())

	a.Clear()
	assert.Check(t, a.Empty())
}

func TestEqual(t *testing.T) {
	assert.Check(t, Of(1, 2).Equal(Of(1, 2)))
	assert.Check(t, !Of(1, 2).Equal(Of(2, 1)))
	assert.Check(t, New[int]().Equal(New[int]()))
}

func TestCloneAndConcat(t *testing.T) {
	a := Of(1, 2)
	b := a.Clone()
	b.Push(3)
	assert.Equal(t, 2, a.Len())

	c := a.Concat(Of(3))
	assert.Check(t, list.Of(1, 2, 3).Equal(c.IntoList()))
	assert.Equal(t, 2, a.Len())

	a.Extend(Of(9))
	assert.Equal(t, 9, a.Back())
}

func TestStringAndScan(t *testing.T) {
	q := Of(1, 2, 3)
	assert.Equal(t, "[1, 2, 3]", q.String())

	parsed := New[int]()
	_, err := fmt.Sscan(q.String(), parsed)
	assert.NilError(t, err)
	assert.Check(t, q.Equal(parsed))
	assert.Equal(t, 1, parsed.Front())

	_, err = fmt.Sscan("[1; 2]", New[int]())
	assert.ErrorContains(t, err, "expected ',' or ']'")
}

package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPushFront(t *testing.T) {
	t.Parallel()

	l := New[string](3)

	l.PushFront("a")
	assertList(t, []string{"a"}, l)

	l.PushFront("b")
	assertList(t, []string{"b", "a"}, l)

	l.PushFront("c")
	assertList(t, []string{"c", "b", "a"}, l)
}

func TestListRemove(t *testing.T) {
	t.Parallel()

	l := New[string](4)

	d := l.PushFront("d")
	c := l.PushFront("c")
	b := l.PushFront("b")
	a := l.PushFront("a")

	// remove el from the middle
	assert.Equal(t, "b", l.Remove(b))
	assertList(t, []string{"a", "c", "d"}, l)

	// remove the first el
	l.Remove(a)
	assertList(t, []string{"c", "d"}, l)

	// remove the last el
	l.Remove(d)
	assertList(t, []string{"c"}, l)

	// remove the last remaining el
	l.Remove(c)
	assertList(t, nil, l)
}

func TestListRemoveReusesSlot(t *testing.T) {
	t.Parallel()

	l := New[int](2)

	a := l.PushFront(1)
	l.PushFront(2)
	l.Remove(a)

	c := l.PushFront(3)

	assert.Equal(t, a, c)
	assert.Equal(t, 2, l.Slots())
	assertList(t, []int{3, 2}, l)
}

func TestListRemoveClearsValue(t *testing.T) {
	t.Parallel()

	l := New[*int](1)

	v := 1
	i := l.PushFront(&v)
	l.Remove(i)

	assert.Nil(t, *l.Value(i))
}

func TestListMoveToFront(t *testing.T) {
	t.Parallel()

	l := New[string](3)

	c := l.PushFront("c")
	b := l.PushFront("b")
	a := l.PushFront("a")

	l.MoveToFront(a)
	assertList(t, []string{"a", "b", "c"}, l)

	l.MoveToFront(c)
	assertList(t, []string{"c", "a", "b"}, l)

	l.MoveToFront(a)
	assertList(t, []string{"a", "c", "b"}, l)

	l.MoveToFront(b)
	assertList(t, []string{"b", "a", "c"}, l)
}

func TestListMoveToFrontAfterReuse(t *testing.T) {
	t.Parallel()

	l := New[string](3)

	c := l.PushFront("c")
	l.PushFront("b")
	l.PushFront("a")

	// tail slot is freed and handed to the next push
	l.Remove(c)
	d := l.PushFront("d")
	assert.Equal(t, c, d)
	assertList(t, []string{"d", "a", "b"}, l)

	back, ok := l.Back()
	require.True(t, ok)
	l.MoveToFront(back)
	assertList(t, []string{"b", "d", "a"}, l)
}

func TestListValue(t *testing.T) {
	t.Parallel()

	l := New[string](1)

	i := l.PushFront("a")
	*l.Value(i) = "b"

	assertList(t, []string{"b"}, l)
}

func assertList[V comparable](t *testing.T, expected []V, l *List[V]) {
	t.Helper()

	require.Equal(t, len(expected), l.Len())

	if len(expected) == 0 {
		_, ok := l.Front()
		assert.False(t, ok, "want empty front")

		_, ok = l.Back()
		assert.False(t, ok, "want empty back")

		return
	}

	i, ok := l.Front()
	for n, v := range expected {
		require.True(t, ok, "list ended at %d", n)
		assert.Equal(t, v, *l.Value(i), "forward at %d", n)

		i, ok = l.Next(i)
	}

	assert.False(t, ok, "want end after %d elements", len(expected))

	i, ok = l.Back()
	for n := len(expected) - 1; n >= 0; n-- {
		require.True(t, ok, "list ended at %d", n)
		assert.Equal(t, expected[n], *l.Value(i), "backward at %d", n)

		i, ok = l.Prev(i)
	}

	assert.False(t, ok, "want start after %d elements", len(expected))
}

// Package list implements a doubly linked list over an index-addressed arena.
//
// Elements are identified by their slot index instead of a pointer, so the
// links carry no references and removed slots can be reused.
package list

// none marks an absent link.
const none = -1

type slot[V any] struct {
	value V
	prev  int
	next  int
}

// List represents a doubly linked list stored in a slice of slots.
type List[V any] struct {
	slots []slot[V]
	free  []int
	head  int
	tail  int
	n     int
}

// New returns a new list with room for size elements before the arena grows.
func New[V any](size int) *List[V] {
	if size < 0 {
		size = 0
	}

	return &List[V]{
		slots: make([]slot[V], 0, size),
		head:  none,
		tail:  none,
	}
}

// alloc returns a slot index holding v, reusing a freed slot when possible.
func (l *List[V]) alloc(v V) int {
	if n := len(l.free); n > 0 {
		i := l.free[n-1]
		l.free = l.free[:n-1]
		l.slots[i] = slot[V]{value: v, prev: none, next: none}

		return i
	}

	l.slots = append(l.slots, slot[V]{value: v, prev: none, next: none})

	return len(l.slots) - 1
}

// detach unlinks i from its neighbours, fixing head and tail.
func (l *List[V]) detach(i int) {
	s := &l.slots[i]

	if s.prev != none {
		l.slots[s.prev].next = s.next
	} else {
		l.head = s.next
	}

	if s.next != none {
		l.slots[s.next].prev = s.prev
	} else {
		l.tail = s.prev
	}

	s.prev = none
	s.next = none
}

func (l *List[V]) linkFront(i int) {
	l.slots[i].prev = none
	l.slots[i].next = l.head

	if l.head != none {
		l.slots[l.head].prev = i
	}

	l.head = i

	if l.tail == none {
		l.tail = i
	}
}

// Front returns the index of the first element, false if the list is empty.
func (l *List[V]) Front() (int, bool) {
	return l.head, l.head != none
}

// Back returns the index of the last element, false if the list is empty.
func (l *List[V]) Back() (int, bool) {
	return l.tail, l.tail != none
}

// Next returns the index following i, false if i is the last element.
func (l *List[V]) Next(i int) (int, bool) {
	next := l.slots[i].next

	return next, next != none
}

// Prev returns the index preceding i, false if i is the first element.
func (l *List[V]) Prev(i int) (int, bool) {
	prev := l.slots[i].prev

	return prev, prev != none
}

// Value returns a pointer to the value stored at i.
// The pointer is valid until the next call that adds or removes elements.
func (l *List[V]) Value(i int) *V {
	return &l.slots[i].value
}

// Len returns the number of elements of list.
func (l *List[V]) Len() int { return l.n }

// Slots returns the number of allocated slots, live or free.
func (l *List[V]) Slots() int { return len(l.slots) }

// PushFront inserts v at the front and returns its index.
func (l *List[V]) PushFront(v V) int {
	i := l.alloc(v)
	l.linkFront(i)
	l.n++

	return i
}

// MoveToFront moves i to the front.
func (l *List[V]) MoveToFront(i int) {
	if l.head == i {
		return
	}

	l.detach(i)
	l.linkFront(i)
}

// Remove removes i from list and returns its value. The slot is recycled by
// a later push, so i must not be used afterwards.
func (l *List[V]) Remove(i int) V { //nolint:ireturn
	l.detach(i)

	v := l.slots[i].value

	var zero V
	l.slots[i].value = zero

	l.free = append(l.free, i)
	l.n--

	return v
}

// Package slist implements a singly-linked list
package slist

import (
	"fmt"
	"io"
	"iter"
)

// Node holds one value and a link to the following node.
type Node[T any] struct {
	Value T
	next  *Node[T]
}

// Next returns the next node in the list, or nil if n is the last node or has
// been removed from its list.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// List implements a singly linked-list. Head, tail, and size are tracked
// internally, so Len, Head, Tail, Append and Prepend are constant time.
// Anything that needs a predecessor walks from the head. The zero value is an
// empty list. The list is not thread-safe.
type List[T any] struct {
	head, tail *Node[T]
	size       int
}

// New returns a list containing a single node holding value.
func New[T any](value T) *List[T] {
	n := &Node[T]{Value: value}
	return &List[T]{
		head: n,
		tail: n,
		size: 1,
	}
}

// Len returns the length of the list.
func (l *List[T]) Len() int {
	return l.size
}

// Head returns the first node, or nil if the list is empty.
func (l *List[T]) Head() *Node[T] {
	return l.head
}

// Tail returns the last node, or nil if the list is empty.
func (l *List[T]) Tail() *Node[T] {
	return l.tail
}

// FrontIter returns an iterator at the start of the list. The iterator will be
// nil when it reaches the end of a list, or if the list is empty.
func (l *List[T]) FrontIter() *Node[T] {
	return l.head
}

// Traverse returns the values from head to tail. The sequence reads the list
// each time it is ranged over, so it reflects later mutations.
func (l *List[T]) Traverse() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.Value) {
				return
			}
		}
	}
}

// Print writes each value to w on its own line, head first.
func (l *List[T]) Print(w io.Writer) error {
	for v := range l.Traverse() {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}
	return nil
}

// Append adds value to the end of the list. It always returns true.
func (l *List[T]) Append(value T) bool {
	n := &Node[T]{Value: value}
	if l.size == 0 {
		l.head = n
		l.tail = n
	} else {
		l.tail.next = n
		l.tail = n
	}
	l.size++
	return true
}

// Prepend adds value to the start of the list. It always returns true.
func (l *List[T]) Prepend(value T) bool {
	n := &Node[T]{Value: value}
	if l.size == 0 {
		l.head = n
		l.tail = n
	} else {
		n.next = l.head
		l.head = n
	}
	l.size++
	return true
}

// Pop removes the last node and returns it, or nil if the list is empty. This
// function is O(n).
func (l *List[T]) Pop() *Node[T] {
	if l.size == 0 {
		return nil
	}
	it := l.head
	pre := l.head
	for it.next != nil {
		pre = it
		it = it.next
	}
	l.tail = pre
	l.tail.next = nil
	l.size--
	if l.size == 0 {
		l.head = nil
		l.tail = nil
	}
	return it
}

// PopFirst removes the first node and returns it, or nil if the list is empty.
func (l *List[T]) PopFirst() *Node[T] {
	if l.size == 0 {
		return nil
	}
	ret := l.head
	l.head = ret.next
	ret.next = nil
	l.size--
	if l.size == 0 {
		l.tail = nil
	}
	return ret
}

// Get returns the node at index, or nil if index is outside [0, Len()). This
// function is O(n).
func (l *List[T]) Get(index int) *Node[T] {
	if index < 0 || index >= l.size {
		return nil
	}
	it := l.head
	for i := 0; i < index; i++ {
		it = it.next
	}
	return it
}

// SetValue overwrites the value at index. It returns false if index is out of
// bounds.
func (l *List[T]) SetValue(index int, value T) bool {
	n := l.Get(index)
	if n == nil {
		return false
	}
	n.Value = value
	return true
}

// Insert places value so that it ends up at index. Any index in [0, Len()] is
// valid; Len() appends. It returns false otherwise.
func (l *List[T]) Insert(index int, value T) bool {
	if index < 0 || index > l.size {
		return false
	}
	if index == 0 {
		return l.Prepend(value)
	}
	if index == l.size {
		return l.Append(value)
	}
	pre := l.Get(index - 1)
	pre.next = &Node[T]{Value: value, next: pre.next}
	l.size++
	return true
}

// Remove unlinks the node at index and returns it, or nil if index is outside
// [0, Len()). This function is O(n).
func (l *List[T]) Remove(index int) *Node[T] {
	if index < 0 || index >= l.size {
		return nil
	}
	if index == 0 {
		return l.PopFirst()
	}
	if index == l.size-1 {
		return l.Pop()
	}
	pre := l.Get(index - 1)
	ret := pre.next
	pre.next = ret.next
	ret.next = nil
	l.size--
	return ret
}

// Reverse reverses the list in place and returns it.
func (l *List[T]) Reverse() *List[T] {
	it := l.head
	l.head, l.tail = l.tail, l.head
	var before *Node[T]
	for i := 0; i < l.size; i++ {
		after := it.next
		it.next = before
		before = it
		it = after
	}
	return l
}

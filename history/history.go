// Package history keeps previous versions of an immutable value so they
// can be restored one by one.
package history

import (
	"github.com/denismitr/dll"
	"github.com/pkg/errors"

	"github.com/besuikerd/dictset/utils"
)

var ErrEmpty = errors.New("history is empty")

// History is a stack of snapshots, the oldest is dropped once the limit
// is reached. It is not safe for concurrent use.
type History[T any] struct {
	list  *dll.DoublyLinkedList[T]
	tail  *dll.Element[T]
	limit int
	count int
}

// New creates a history holding at most limit snapshots,
// a limit of zero or less keeps everything.
func New[T any](limit int) *History[T] {
	return &History[T]{
		list:  dll.New[T](),
		limit: limit,
	}
}

func (h *History[T]) Push(snapshot T) {
	el := dll.NewElement(snapshot)
	h.list.PushTail(el)
	h.tail = el
	h.count++

	if h.limit > 0 && h.count > h.limit {
		h.list.Remove(h.list.Head())
		h.count--
	}
}

// Pop removes and returns the most recent snapshot
func (h *History[T]) Pop() (T, error) {
	last := h.tail
	if last == nil {
		return utils.GetZero[T](), ErrEmpty
	}

	v := last.Value()
	h.tail = last.Prev()
	h.list.Remove(last)
	h.count--
	if h.count == 0 {
		h.tail = nil
	}

	return v, nil
}

// Peek returns the most recent snapshot without removing it
func (h *History[T]) Peek() (T, error) {
	if h.tail == nil {
		return utils.GetZero[T](), ErrEmpty
	}

	return h.tail.Value(), nil
}

func (h *History[T]) Len() int {
	return h.count
}

package cache

import "github.com/IvanBrykalov/lru/policy"

// recencyList is the intrusive MRU↔LRU sequence backing an LRU.
// It does not know about the index; the LRU keeps both consistent.
type recencyList[K comparable, V any] struct {
	head *node[K, V] // MRU
	tail *node[K, V] // LRU
	len  int
}

// pushFront links n at MRU in O(1).
func (l *recencyList[K, V]) pushFront(n *node[K, V]) {
	n.prev = nil
	n.next = l.head
	if l.head != nil {
		l.head.prev = n
	}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.len++
}

// moveToFront promotes a linked n to MRU in O(1).
func (l *recencyList[K, V]) moveToFront(n *node[K, V]) {
	if n == l.head {
		return
	}
	// detach
	if n.prev != nil {
		n.prev.next = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	if l.tail == n {
		l.tail = n.prev
	}
	// relink at head
	n.prev = nil
	n.next = l.head
	if l.head != nil {
		l.head.prev = n
	}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
}

// remove unlinks n in O(1).
func (l *recencyList[K, V]) remove(n *node[K, V]) {
	if n.prev != nil {
		n.prev.next = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	if l.head == n {
		l.head = n.next
	}
	if l.tail == n {
		l.tail = n.prev
	}
	n.prev, n.next = nil, nil
	l.len--
}

// back returns the LRU node in O(1).
func (l *recencyList[K, V]) back() *node[K, V] { return l.tail }

// listHooks adapts a recencyList to policy.Hooks.
type listHooks[K comparable, V any] struct{ l *recencyList[K, V] }

func (h listHooks[K, V]) PushFront(x policy.Node[K, V])   { h.l.pushFront(x.(*node[K, V])) }
func (h listHooks[K, V]) MoveToFront(x policy.Node[K, V]) { h.l.moveToFront(x.(*node[K, V])) }
func (h listHooks[K, V]) Remove(x policy.Node[K, V])      { h.l.remove(x.(*node[K, V])) }
func (h listHooks[K, V]) Len() int                        { return h.l.len }

// Back returns a nil interface on an empty list, not a typed nil pointer.
func (h listHooks[K, V]) Back() policy.Node[K, V] {
	if t := h.l.back(); t != nil {
		return t
	}
	return nil
}

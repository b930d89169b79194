// Package policy defines the placement contract between the LRU engine and
// its recency list.
package policy

// Node is the minimal view of a cache entry a policy needs.
type Node[K comparable, V any] interface {
	Key() K
	Value() *V
}

// Hooks expose the O(1) operations of the engine's MRU↔LRU list.
// Hooks manage only the list; the engine owns the key->node index.
type Hooks[K comparable, V any] interface {
	// PushFront links a new node at MRU.
	PushFront(Node[K, V])
	// MoveToFront promotes a linked node to MRU.
	MoveToFront(Node[K, V])
	// Remove unlinks a node.
	Remove(Node[K, V])
	// Back returns the LRU node, or nil if the list is empty.
	Back() Node[K, V]
	// Len returns the number of linked nodes.
	Len() int
}

// ListPolicy is a policy instance bound to one engine's list hooks.
//
// Semantics:
//   - OnAdd must link the node. It may return an eviction candidate, which the
//     engine evicts (Observer included) before enforcing capacity.
//   - OnGet typically promotes the node.
//   - OnRemove is a notification; the engine unlinks the node itself.
type ListPolicy[K comparable, V any] interface {
	OnAdd(Node[K, V]) (evict Node[K, V])
	OnGet(Node[K, V])
	OnRemove(Node[K, V])
}

// Policy is a factory binding a ListPolicy to a particular engine's hooks.
type Policy[K comparable, V any] interface {
	New(Hooks[K, V]) ListPolicy[K, V]
}

// Package tcb keeps transmission control blocks in an LRU table keyed by the
// remote endpoint.
//
// Endpoints are flattened into "addr:port" strings before they reach the
// cache, and decoded back with Parse. The cache never looks inside a key.
// When the table overflows, the least recently used TCB is cleared (its
// resource released) before it is dropped.
//
// A Table is an ordinary value: construct one per connection set and pass it
// to whatever needs it. It is not safe for concurrent use.
package tcb

package tcb

import (
	"io"
	"sync"

	"github.com/google/uuid"
)

// TCB is the per-connection control block stored in a Table.
type TCB struct {
	ID     uuid.UUID
	Remote Endpoint

	res       io.Closer
	clearOnce sync.Once
	clearErr  error
	cleared   bool
}

// New returns a TCB for remote that owns res. res may be nil.
func New(remote Endpoint, res io.Closer) *TCB {
	return &TCB{
		ID:     uuid.New(),
		Remote: remote,
		res:    res,
	}
}

// Clear releases the TCB's resource (socket shutdown and the like).
// Only the first call does any work; later calls return the same error.
func (t *TCB) Clear() error {
	t.clearOnce.Do(func() {
		t.cleared = true
		if t.res != nil {
			t.clearErr = t.res.Close()
		}
	})
	return t.clearErr
}

// Cleared reports whether Clear has run.
func (t *TCB) Cleared() bool { return t.cleared }

package usecase

import "context"

// PendingWrite is the outstanding-write half of an optimistic mutation:
// the in-memory state is already updated, the durable write may still
// be in flight. Wait blocks until the write resolves and reports its
// outcome. A failed write does not roll the in-memory state back; the
// mutated entity stays marked dirty instead.
type PendingWrite struct {
	done chan struct{}
	err  error
}

func newPendingWrite() *PendingWrite {
	return &PendingWrite{done: make(chan struct{})}
}

// resolve records the write outcome and releases waiters. Called
// exactly once.
func (p *PendingWrite) resolve(err error) {
	p.err = err
	close(p.done)
}

// Done returns a channel closed when the durable write has resolved.
func (p *PendingWrite) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the durable write resolves or ctx is cancelled,
// and returns the write error, if any.
func (p *PendingWrite) Wait(ctx context.Context) error {
	select {
	case <-p.done:
		return p.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

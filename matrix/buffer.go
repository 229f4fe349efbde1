package matrix

import "sync/atomic"

// buffer is the reference-counted owner of a contiguous column-major block
// of float64s, shared by every Dense view into it. It corresponds to ptr.h's
// __ptr_t in the original C++ source: Go's garbage collector frees the
// backing array once the last buffer reference is dropped, so refs exists
// only to answer "is this matrix the exclusive owner", the question a
// copy-on-write Set needs answered; it is not a memory-lifetime mechanism.
type buffer struct {
	data []float64
	refs int32
}

func newBuffer(n int) *buffer {
	return &buffer{data: make([]float64, n), refs: 1}
}

func bufferFrom(data []float64) *buffer {
	return &buffer{data: data, refs: 1}
}

// share records one more live Dense referencing b and returns b, mirroring
// ptr_t's copy constructor (pget).
func (b *buffer) share() *buffer {
	atomic.AddInt32(&b.refs, 1)
	return b
}

// exclusive reports whether b has never been shared. share increments refs
// and nothing decrements it, so once a second Dense has referenced b it
// stays non-exclusive even after that Dense is gone, and a CoW write
// through any Dense over b then copies.
func (b *buffer) exclusive() bool {
	return atomic.LoadInt32(&b.refs) == 1
}

// refCount returns the current reference count, exposed for tests that
// verify CoW alias-safety bookkeeping.
func (b *buffer) refCount() int32 {
	return atomic.LoadInt32(&b.refs)
}

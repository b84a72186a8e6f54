// Package bufpool provides bucketed sync.Pool byte buffers for the
// encoder's output, so repeated encode calls on similarly sized images
// do not each pay a fresh allocation.
package bufpool

import "sync"

// Size classes, geometric from a 512-byte floor. QOI's worst-case
// expansion is channels+1 bytes per pixel plus 22 bytes of framing, so
// even a modest image can need several buckets' worth of growth; the
// classes grow fourfold so Grow rarely needs more than one reallocation.
const (
	size512B = 512
	size2K   = 2048
	size8K   = 8192
	size32K  = 32768
	size128K = 131072
	size512K = 524288
	size2M   = 2097152
	size8M   = 8388608
)

var sizes = [8]int{size512B, size2K, size8K, size32K, size128K, size512K, size2M, size8M}

var pools [8]sync.Pool

func init() {
	for i := range pools {
		sz := sizes[i]
		pools[i] = sync.Pool{
			New: func() any {
				b := make([]byte, 0, sz)
				return &b
			},
		}
	}
}

func bucketIndex(capacity int) int {
	for i, sz := range sizes {
		if capacity <= sz {
			return i
		}
	}
	return len(sizes) - 1
}

// Get returns a zero-length byte slice with at least the requested
// capacity, drawn from the pool when a large-enough buffer is idle.
// The caller must call Put when done with the returned slice (unless
// it has been trimmed and handed off to the caller's caller, in which
// case it is no longer pool-owned — see Trim).
func Get(capacity int) []byte {
	idx := bucketIndex(capacity)
	bp := pools[idx].Get().(*[]byte)
	b := *bp
	if cap(b) < capacity {
		return make([]byte, 0, capacity)
	}
	return b[:0]
}

// Put returns a slice obtained from Get back to its size-class pool.
// Buffers smaller than the smallest bucket are not pooled.
func Put(b []byte) {
	c := cap(b)
	if c < size512B {
		return
	}
	idx := bucketIndex(c)
	if sizes[idx] > c {
		idx--
	}
	b = b[:0]
	pools[idx].Put(&b)
}

// Grow appends n zero bytes of headroom to b's capacity if needed,
// reallocating into a larger pooled bucket and returning the old
// buffer to the pool when it does. It never changes len(b).
func Grow(b []byte, n int) []byte {
	if cap(b)-len(b) >= n {
		return b
	}
	next := Get(len(b) + n)
	next = append(next, b...)
	Put(b)
	return next
}

// Trim returns a copy of b[:length] sized exactly to length, suitable
// for handing to a caller that will own the memory independently of
// the pool. The input b is returned to the pool.
func Trim(b []byte, length int) []byte {
	out := make([]byte, length)
	copy(out, b[:length])
	Put(b)
	return out
}

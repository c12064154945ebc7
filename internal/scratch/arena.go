// Package scratch provides the short-lived buffer allocator used by the
// rectangle passes.
//
// Every pass acquires its mask rows, gradient maps and shadow buffers at
// entry and releases them before it returns. Released buffers are kept on
// per-type free lists and handed out again, largest-fit first, so a
// renderer reaches a steady state without allocating.
package scratch

import "github.com/gogpu/rrect/internal/color"

// Arena hands out typed scratch buffers.
//
// Buffers returned by Bytes, Words and Colors have exactly the requested
// length and are zeroed. Thread safety: an Arena is not safe for
// concurrent use; give each renderer its own.
type Arena struct {
	bytes  freeList[uint8]
	words  freeList[uint16]
	colors freeList[color.Color]
	inUse  int

	// maxFree limits how many released buffers of each type are retained.
	maxFree int
}

// NewArena creates an arena that retains up to maxFree released buffers
// per element type. A maxFree of 0 retains nothing.
func NewArena(maxFree int) *Arena {
	return &Arena{maxFree: maxFree}
}

// Bytes acquires a zeroed []uint8 of length n.
func (a *Arena) Bytes(n int) []uint8 {
	a.inUse++
	return a.bytes.get(n)
}

// ReleaseBytes returns a buffer obtained from Bytes.
func (a *Arena) ReleaseBytes(buf []uint8) {
	if buf == nil {
		return
	}
	a.inUse--
	a.bytes.put(buf, a.maxFree)
}

// Words acquires a zeroed []uint16 of length n.
func (a *Arena) Words(n int) []uint16 {
	a.inUse++
	return a.words.get(n)
}

// ReleaseWords returns a buffer obtained from Words.
func (a *Arena) ReleaseWords(buf []uint16) {
	if buf == nil {
		return
	}
	a.inUse--
	a.words.put(buf, a.maxFree)
}

// Colors acquires a zeroed []color.Color of length n.
func (a *Arena) Colors(n int) []color.Color {
	a.inUse++
	return a.colors.get(n)
}

// ReleaseColors returns a buffer obtained from Colors.
func (a *Arena) ReleaseColors(buf []color.Color) {
	if buf == nil {
		return
	}
	a.inUse--
	a.colors.put(buf, a.maxFree)
}

// InUse returns the number of acquired buffers not yet released.
func (a *Arena) InUse() int {
	return a.inUse
}

// freeList is a LIFO list of released buffers of one element type.
type freeList[T any] struct {
	free [][]T
}

// get pops the most recently released buffer that is large enough, or
// allocates a new one.
func (l *freeList[T]) get(n int) []T {
	if n < 0 {
		n = 0
	}
	for i := len(l.free) - 1; i >= 0; i-- {
		if cap(l.free[i]) >= n {
			buf := l.free[i][:n]
			l.free = append(l.free[:i], l.free[i+1:]...)
			clear(buf)
			return buf
		}
	}
	return make([]T, n)
}

func (l *freeList[T]) put(buf []T, maxFree int) {
	if len(l.free) >= maxFree {
		return
	}
	l.free = append(l.free, buf[:cap(buf)])
}

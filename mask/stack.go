// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mask

// ID identifies a mask registered on a Stack.
type ID int

// InvalidID is returned by Push when the stack is full. Removing it is
// a no-op, so callers may remove unconditionally.
const InvalidID ID = -1

// MaxMasks is the number of masks a Stack holds at once.
const MaxMasks = 16

// Stack manages the active masks with push/remove operations.
// Masks are applied in push order and removed in reverse order.
//
// A Stack is not safe for concurrent use.
type Stack struct {
	entries []stackEntry
	nextID  ID
}

type stackEntry struct {
	id   ID
	mask Mask
}

// NewStack creates an empty mask stack.
func NewStack() *Stack {
	return &Stack{
		entries: make([]stackEntry, 0, MaxMasks),
	}
}

// Push registers m and returns its ID, or InvalidID if the stack already
// holds MaxMasks masks or m is nil.
func (s *Stack) Push(m Mask) ID {
	if m == nil || len(s.entries) >= MaxMasks {
		return InvalidID
	}
	id := s.nextID
	s.nextID++
	s.entries = append(s.entries, stackEntry{id: id, mask: m})
	return id
}

// Remove unregisters the mask with the given ID. Unknown IDs and
// InvalidID are ignored.
func (s *Stack) Remove(id ID) {
	if id == InvalidID {
		return
	}
	// Removal is almost always from the top.
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].id == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}

// Count returns the number of active masks.
func (s *Stack) Count() int {
	return len(s.entries)
}

// Reset removes every mask.
func (s *Stack) Reset() {
	s.entries = s.entries[:0]
}

// Apply multiplies the coverage of every active mask into buf for the
// run of len(buf) pixels starting at (x, y).
//
// It returns FullTransp as soon as one mask makes the whole run
// transparent (the buffer is zeroed), Changed if any mask reduced a
// value and FullCover if the buffer is untouched.
func (s *Stack) Apply(buf []uint8, x, y int) Result {
	changed := false
	for i := range s.entries {
		switch s.entries[i].mask.Apply(buf, x, y) {
		case FullTransp:
			clear(buf)
			return FullTransp
		case Changed:
			changed = true
		}
	}
	if changed {
		return Changed
	}
	return FullCover
}

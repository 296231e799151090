package arena

import "sync/atomic"

// Arena is a dense, fixed-size table of optional records addressed by a
// zero-based index. Each slot holds at most one record; an empty slot reads
// as nil.
//
// Slots are individually atomic, so concurrent readers and writers never
// observe a torn record. Store is deliberately unconditional: two writers
// racing on the same slot leave whichever record arrived last, with no
// keep-if-better check. Callers that need a stronger guarantee must
// serialize externally.
type Arena[T any] struct {
	slots []atomic.Pointer[T]
}

// New creates an arena with n slots, all empty.
func New[T any](n int) *Arena[T] {
	return &Arena[T]{
		slots: make([]atomic.Pointer[T], n),
	}
}

// Len returns the number of slots.
func (a *Arena[T]) Len() int { return len(a.slots) }

// Load returns the record at index i, or nil if the slot is empty or out of
// range.
func (a *Arena[T]) Load(i uint32) *T {
	if int(i) >= len(a.slots) {
		return nil
	}
	return a.slots[i].Load()
}

// Store places v at index i, replacing any existing record. Out-of-range
// indices are ignored.
func (a *Arena[T]) Store(i uint32, v *T) {
	if int(i) >= len(a.slots) {
		return
	}
	a.slots[i].Store(v)
}

// Reset empties every slot. Not safe to run concurrently with Load or Store;
// the owner must serialize structural resets externally.
func (a *Arena[T]) Reset() {
	for i := range a.slots {
		a.slots[i].Store(nil)
	}
}

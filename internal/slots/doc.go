// Package slots provides a sparse slot container with tombstones.
//
// Removing an entry leaves a tombstone in its slot instead of shifting
// later entries. Insert fills the lowest-indexed tombstone first and only
// grows the backing slice when none is left, so capacity never shrinks
// and indices of live entries stay stable.
//
// Free slots are kept in a min-heap, giving O(log n) reuse of the
// earliest tombstone instead of a linear scan.
package slots

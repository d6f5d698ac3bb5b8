package pool

import "iter"

// SequenceKind tags what a traversal supports. ForEach selects its
// chunking strategy from the kind, once per call.
type SequenceKind int

const (
	// RandomAccess traversals know their length in O(1) and can be
	// sliced at any position. Built from slices.
	RandomAccess SequenceKind = iota

	// ForwardMultiPass traversals can be walked from the start any
	// number of times but have no O(1) length. Built from iter.Seq.
	ForwardMultiPass

	// SingleUse traversals yield each element exactly once and cannot be
	// revisited, like a live stream. Built from channels.
	SingleUse
)

// Sequence is a traversal of elements carrying the capability tag that
// ForEach dispatches on. Construct one with FromSlice, FromSeq or
// FromChan.
type Sequence[T any] struct {
	kind  SequenceKind
	items []T
	seq   iter.Seq[T]
	ch    <-chan T
	hint  int
}

// FromSlice wraps a slice as a random-access sequence.
func FromSlice[T any](items []T) Sequence[T] {
	return Sequence[T]{kind: RandomAccess, items: items, hint: len(items)}
}

// FromSeq wraps a multi-pass iterator as a forward sequence. A hint of 0
// means the length is unknown; ForEach then spends one extra counting
// pass before chunking. A non-zero hint must match the actual length.
func FromSeq[T any](seq iter.Seq[T], hint int) Sequence[T] {
	return Sequence[T]{kind: ForwardMultiPass, seq: seq, hint: hint}
}

// FromChan wraps a channel as a single-use sequence. Elements are
// dispatched as they arrive; the hint is never used for planning, only
// checked afterwards against the number of elements received.
func FromChan[T any](ch <-chan T, hint int) Sequence[T] {
	return Sequence[T]{kind: SingleUse, ch: ch, hint: hint}
}

// Kind returns the capability tag.
func (s Sequence[T]) Kind() SequenceKind { return s.kind }

// each visits elements in traversal order until visit returns false.
// Returns the number of elements visited.
func (s Sequence[T]) each(visit func(T) bool) int {
	n := 0
	switch s.kind {
	case RandomAccess:
		for _, v := range s.items {
			if !visit(v) {
				return n
			}
			n++
		}
	case ForwardMultiPass:
		for v := range s.seq {
			if !visit(v) {
				return n
			}
			n++
		}
	case SingleUse:
		for v := range s.ch {
			if !visit(v) {
				return n
			}
			n++
		}
	}
	return n
}

// checkLength validates a fully-traversed length against the hint.
func (s Sequence[T]) checkLength(n int) error {
	if s.hint > 0 && n != s.hint {
		return lengthMismatch(s.hint, n)
	}
	return nil
}

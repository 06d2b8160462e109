// Package collection implements the ordered, repeatable sub-record lists a
// draft is built from (days, hotel nights, transport entries, activity rows).
// Variants that carry a 1-based ordinal implement Numbered; the list keeps
// the ordinal dense and equal to position+1 after every structural change.
package collection

// Numbered is implemented by item types whose position in the list is part
// of their identity (Day, HotelNight). SetOrdinal must use a pointer
// receiver so the list can renumber items in place.
type Numbered interface {
	SetOrdinal(n int)
}

// List is an ordered collection with a configured minimum size. The zero
// value is not usable; construct with New.
type List[T any] struct {
	items []T
	min   int
}

// New returns a list seeded with the given items. min is the floor RemoveAt
// refuses to go below; pass 0 for collections with no minimum.
func New[T any](min int, seed ...T) *List[T] {
	l := &List[T]{min: min, items: append([]T(nil), seed...)}
	l.renumber()
	return l
}

// Len returns the number of items.
func (l *List[T]) Len() int { return len(l.items) }

// Items returns a copy of the underlying slice. Ordinals in the copy are
// already dense, so callers can serialize it directly.
func (l *List[T]) Items() []T {
	return append([]T(nil), l.items...)
}

// At returns the item at index i.
func (l *List[T]) At(i int) (T, bool) {
	var zero T
	if i < 0 || i >= len(l.items) {
		return zero, false
	}
	return l.items[i], true
}

// Append adds item at the end. For numbered variants its ordinal becomes
// length+1 regardless of what the caller filled in.
func (l *List[T]) Append(item T) {
	l.items = append(l.items, item)
	l.renumber()
}

// RemoveAt deletes the item at index i and renumbers the remainder.
// Removing below the configured minimum is a no-op, not an error: the
// caller's UI keeps a remove button visible on the last row and the
// engine absorbs the click. Returns whether anything changed.
func (l *List[T]) RemoveAt(i int) bool {
	if i < 0 || i >= len(l.items) {
		return false
	}
	if len(l.items)-1 < l.min {
		return false
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	l.renumber()
	return true
}

// UpdateAt replaces the fields of the item at index i. The ordinal is
// re-derived from the position, so a field edit can never move or renumber
// an item, and any hand-written ordinal in the patch is discarded.
func (l *List[T]) UpdateAt(i int, item T) bool {
	if i < 0 || i >= len(l.items) {
		return false
	}
	l.items[i] = item
	l.renumber()
	return true
}

func (l *List[T]) renumber() {
	for i := range l.items {
		if n, ok := any(&l.items[i]).(Numbered); ok {
			n.SetOrdinal(i + 1)
		}
	}
}

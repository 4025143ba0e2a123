package coachmark

import (
	"maps"
	"slices"
	"sync"

	"github.com/alexisbeaulieu97/coachmark/internal/anchor"
)

// Aggregate merges single-entry registrations into one ordered map. Later
// parts win on duplicate orders.
func Aggregate(parts ...map[int]Highlight) map[int]Highlight {
	out := make(map[int]Highlight)
	for _, part := range parts {
		for order, h := range part {
			out[order] = h
		}
	}
	return out
}

// SortedOrders returns the distinct orders of m in ascending order.
func SortedOrders(m map[int]Highlight) []int {
	return slices.Sorted(maps.Keys(m))
}

// Registry collects the marks a host publishes while rendering a frame.
//
// A host view calls Mark (or Register) for every target it draws; the
// coach-mark Model commits the pass when it composes the frame. The
// registry is shared by pointer between the host and the Model and lives as
// long as the screen that owns it.
type Registry struct {
	mu         sync.Mutex
	pending    map[int]Highlight
	committed  map[int]Highlight
	orders     []int
	anchors    map[int]anchor.ID
	nextAnchor anchor.ID
	version    uint64
	primed     bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		pending:    make(map[int]Highlight),
		committed:  make(map[int]Highlight),
		anchors:    make(map[int]anchor.ID),
		nextAnchor: 1,
	}
}

// Mark declares content as the target for order and returns it wrapped in
// anchor markers. The wrapped string must end up in the frame handed to
// Model.View for the target to resolve.
func (r *Registry) Mark(order int, content string, opts ...HighlightOption) string {
	h := NewHighlight(order, opts...)

	r.mu.Lock()
	h.Anchor = r.passAnchorLocked(order)
	r.pending[order] = h
	r.mu.Unlock()

	return anchor.Wrap(h.Anchor, content)
}

// Register publishes h at order for the current pass. A zero Anchor is
// replaced by the order's stable anchor.
func (r *Registry) Register(order int, h Highlight) {
	r.mu.Lock()
	defer r.mu.Unlock()

	h.Order = order
	if h.Anchor == 0 {
		h.Anchor = r.passAnchorLocked(order)
	}
	r.pending[order] = h
}

// AnchorFor returns the stable anchor assigned to order.
func (r *Registry) AnchorFor(order int) anchor.ID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.anchorLocked(order)
}

func (r *Registry) anchorLocked(order int) anchor.ID {
	if id, ok := r.anchors[order]; ok {
		return id
	}
	id := r.nextAnchor
	r.nextAnchor++
	r.anchors[order] = id
	return id
}

// passAnchorLocked returns the anchor for a registration in the current
// pass. A second registration of the same order gets a fresh anchor, so
// only the last writer's region resolves in the frame.
func (r *Registry) passAnchorLocked(order int) anchor.ID {
	if _, dup := r.pending[order]; !dup {
		return r.anchorLocked(order)
	}
	id := r.nextAnchor
	r.nextAnchor++
	r.anchors[order] = id
	return id
}

// Commit ends a layout pass: the pass' registrations replace the previous
// ones and the next pass starts empty. Sorted orders are only recomputed,
// and the version only bumped, when the set of orders changed. Commit
// reports whether that happened.
func (r *Registry) Commit() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev := r.committed
	r.committed = r.pending
	r.pending = make(map[int]Highlight, len(r.committed))

	if r.primed && sameKeys(prev, r.committed) {
		return false
	}
	r.primed = true
	r.orders = SortedOrders(r.committed)
	r.version++
	return true
}

func sameKeys(a, b map[int]Highlight) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}

// Orders returns the committed orders, ascending.
func (r *Registry) Orders() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.orders)
}

// Lookup returns the committed highlight for order.
func (r *Registry) Lookup(order int) (Highlight, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.committed[order]
	return h, ok
}

// At returns the highlight at position index of the sorted orders. It never
// panics; out-of-range indexes report false.
func (r *Registry) At(index int) (Highlight, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if index < 0 || index >= len(r.orders) {
		return Highlight{}, false
	}
	h, ok := r.committed[r.orders[index]]
	return h, ok
}

// Len returns the number of committed orders.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.orders)
}

// Version increments every time the committed order set changes.
func (r *Registry) Version() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.version
}

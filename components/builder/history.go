package builder

// History is a bounded stack of immutable document snapshots. Every
// successful mutation pushes the resulting document; undo steps back, redo
// steps forward, and a push after an undo invalidates the redo branch. When
// the stack is full the oldest snapshot is evicted.
type History struct {
	snapshots []Document
	cursor    int
	limit     int
}

// DefaultHistoryLimit bounds editor undo depth.
const DefaultHistoryLimit = 50

// NewHistory creates a history seeded with the initial document state.
func NewHistory(initial Document, limit int) *History {
	if limit < 2 {
		limit = DefaultHistoryLimit
	}
	return &History{
		snapshots: []Document{CloneDocument(initial)},
		cursor:    0,
		limit:     limit,
	}
}

// Push records a new snapshot, dropping any redo branch.
func (h *History) Push(doc Document) {
	h.snapshots = append(h.snapshots[:h.cursor+1], CloneDocument(doc))
	h.cursor++
	if len(h.snapshots) > h.limit {
		drop := len(h.snapshots) - h.limit
		h.snapshots = h.snapshots[drop:]
		h.cursor -= drop
	}
}

// Undo steps back one snapshot. The boolean is false at the oldest state.
func (h *History) Undo() (Document, bool) {
	if h.cursor == 0 {
		return CloneDocument(h.snapshots[0]), false
	}
	h.cursor--
	return CloneDocument(h.snapshots[h.cursor]), true
}

// Redo steps forward one snapshot. The boolean is false at the newest state.
func (h *History) Redo() (Document, bool) {
	if h.cursor >= len(h.snapshots)-1 {
		return CloneDocument(h.snapshots[h.cursor]), false
	}
	h.cursor++
	return CloneDocument(h.snapshots[h.cursor]), true
}

// Current returns the snapshot under the cursor.
func (h *History) Current() Document {
	return CloneDocument(h.snapshots[h.cursor])
}

// CanUndo reports whether an older snapshot exists.
func (h *History) CanUndo() bool { return h.cursor > 0 }

// CanRedo reports whether a redo branch exists.
func (h *History) CanRedo() bool { return h.cursor < len(h.snapshots)-1 }

// Len reports how many snapshots are retained.
func (h *History) Len() int { return len(h.snapshots) }

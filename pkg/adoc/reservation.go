// reservation.go implements the position-indexed reservation tracker that
// prevents rules from re-claiming text already claimed by an earlier rule.
// A tracker is exclusively owned by one classification pass over one region
// and is discarded when the pass completes; it is deliberately not safe for
// concurrent use.
package adoc

// Tracker maps each position of a region to a reservation tag. Tags are
// monotonic within a pass: once a position is non-Free it never reverts.
type Tracker struct {
	region Span
	tags   []Tag
}

// NewTracker returns a tracker with every position of the region Free.
func NewTracker(region Span) *Tracker {
	n := region.Len()
	if n < 0 {
		n = 0
	}
	return &Tracker{region: region, tags: make([]Tag, n)}
}

// Region returns the region the tracker covers.
func (t *Tracker) Region() Span { return t.region }

// TagAt returns the tag at a position. Positions outside the region are Free.
func (t *Tracker) TagAt(pos int) Tag {
	if pos < t.region.Start || pos >= t.region.End {
		return TagFree
	}
	return t.tags[pos-t.region.Start]
}

// IsFree reports whether every position in the span is Free.
func (t *Tracker) IsFree(s Span) bool {
	for pos := s.Start; pos < s.End; pos++ {
		if t.TagAt(pos) != TagFree {
			return false
		}
	}
	return true
}

// OverlapsBlockDelimiter reports whether any position in the span carries the
// BlockDelimiter tag.
func (t *Tracker) OverlapsBlockDelimiter(s Span) bool {
	for pos := s.Start; pos < s.End; pos++ {
		if t.TagAt(pos) == TagBlockDelimiter {
			return true
		}
	}
	return false
}

// Apply writes the tag over every Free position in the span. Previously
// written non-Free tags are kept, so bookkeeping writes over block-delimiter
// positions are harmless; callers needing exclusivity check IsFree first.
func (t *Tracker) Apply(s Span, tag Tag) {
	if tag == TagFree {
		return
	}
	for pos := s.Start; pos < s.End; pos++ {
		if pos < t.region.Start || pos >= t.region.End {
			continue
		}
		if t.tags[pos-t.region.Start] == TagFree {
			t.tags[pos-t.region.Start] = tag
		}
	}
}

// Snapshot copies the tag array, indexed from the region start.
func (t *Tracker) Snapshot() []Tag {
	out := make([]Tag, len(t.tags))
	copy(out, t.tags)
	return out
}

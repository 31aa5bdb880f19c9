// cleanup.go implements the conflict cleanup pass that runs after all rules:
// wherever a text-level span overlaps a structural/meta span, the text-level
// category is discarded. The pass is deterministic and idempotent.
package adoc

// Cleanup resolves multiply-assigned spans by the fixed dominance order:
// structural and meta categories always win over text-level styling.
// Reapplying to already-cleaned output is a no-op.
func (c *Classification) Cleanup() {
	n := c.Region.Len()
	if n <= 0 || len(c.Spans) == 0 {
		return
	}

	structural := make([]bool, n)
	any := false
	for _, s := range c.Spans {
		if !s.Category.Structural() {
			continue
		}
		for pos := s.Span.Start; pos < s.Span.End; pos++ {
			if pos >= c.Region.Start && pos < c.Region.End {
				structural[pos-c.Region.Start] = true
				any = true
			}
		}
	}
	if !any {
		return
	}

	kept := c.Spans[:0]
	for _, s := range c.Spans {
		if s.Category.TextLevel() && overlapsMask(structural, c.Region, s.Span) {
			continue
		}
		kept = append(kept, s)
	}
	c.Spans = kept
}

func overlapsMask(mask []bool, region Span, s Span) bool {
	for pos := s.Start; pos < s.End; pos++ {
		if pos >= region.Start && pos < region.End && mask[pos-region.Start] {
			return true
		}
	}
	return false
}

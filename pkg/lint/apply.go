package lint

import "sort"

// ApplyFixes applies the fixes carried by diags to content and returns the
// rewritten source with the number of fixes applied.
//
// Each fix is applied as a unit. A fix whose edits overlap an earlier
// accepted fix is skipped; running the rules again on the result reports
// whatever is left. Edits are applied from the end of the source backwards
// so that earlier offsets stay valid.
func ApplyFixes(content []byte, diags []Diagnostic) ([]byte, int) {
	type candidate struct {
		start, end int
		edits      []TextEdit
	}

	var fixes []candidate
	for _, d := range diags {
		for _, fix := range d.Fixes {
			if len(fix.TextEdits) == 0 {
				continue
			}
			c := candidate{start: len(content), end: 0, edits: fix.TextEdits}
			valid := true
			for _, e := range fix.TextEdits {
				if e.Pos.Offset < 0 || e.EndPos.Offset < e.Pos.Offset || e.EndPos.Offset > len(content) {
					valid = false
					break
				}
				c.start = min(c.start, e.Pos.Offset)
				c.end = max(c.end, e.EndPos.Offset)
			}
			if valid {
				fixes = append(fixes, c)
			}
		}
	}
	if len(fixes) == 0 {
		return content, 0
	}

	sort.SliceStable(fixes, func(i, j int) bool { return fixes[i].start < fixes[j].start })

	var edits []TextEdit
	applied := 0
	lastEnd := -1
	for _, f := range fixes {
		if f.start < lastEnd {
			continue
		}
		edits = append(edits, f.edits...)
		lastEnd = f.end
		applied++
	}

	// Later edits first; on equal ends the edit that starts later goes first,
	// so a deletion is applied before an insertion at its start.
	sort.SliceStable(edits, func(i, j int) bool {
		if edits[i].EndPos.Offset != edits[j].EndPos.Offset {
			return edits[i].EndPos.Offset > edits[j].EndPos.Offset
		}
		return edits[i].Pos.Offset > edits[j].Pos.Offset
	})

	out := append([]byte(nil), content...)
	for _, e := range edits {
		tail := append([]byte(e.NewText), out[e.EndPos.Offset:]...)
		out = append(out[:e.Pos.Offset], tail...)
	}
	return out, applied
}

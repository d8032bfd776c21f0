package rewrite

import (
	"sort"
	"strings"
)

// apply splices edits into source in order, producing the rewritten bytes.
// Edits must be non-overlapping; apply sorts them by start offset (and, for
// zero-width insertions sharing a start with a replacement, before it) and
// panics on overlap, which would indicate a bug in the visitor rather than
// a condition callers should recover from.
func apply(source []byte, edits []Edit) []byte {
	if len(edits) == 0 {
		return source
	}

	sorted := make([]Edit, len(edits))
	copy(sorted, edits)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})

	var out strings.Builder
	out.Grow(len(source))
	cursor := uint32(0)
	for _, e := range sorted {
		if e.Start < cursor {
			panic("rewrite: overlapping edits")
		}
		out.Write(source[cursor:e.Start])
		out.WriteString(e.Replacement)
		cursor = e.End
	}
	out.Write(source[cursor:])
	return []byte(out.String())
}

package pipeline

import "github.com/ppiankov/cardex/internal/model"

// LineTable is the index-based arena of lines for one parse.
// Stages read lines by index and claim them with a typed tag; a claimed
// line is never re-claimed.
type LineTable struct {
	lines  []model.Line
	header int // lines [0, header) form the top of an OCR layout
}

// NewLineTable creates a table over the given lines, re-indexing them
func NewLineTable(lines []model.Line) *LineTable {
	t := &LineTable{lines: make([]model.Line, len(lines))}
	for i, l := range lines {
		l.Index = i
		l.Claimed = false
		l.Tag = model.ClaimNone
		t.lines[i] = l
	}
	return t
}

// Len returns the number of lines
func (t *LineTable) Len() int { return len(t.lines) }

// Line returns a copy of line i
func (t *LineTable) Line(i int) model.Line { return t.lines[i] }

// Text returns the normalized text of line i
func (t *LineTable) Text(i int) string { return t.lines[i].Text }

// Anchors returns the anchors attached to line i
func (t *LineTable) Anchors(i int) []model.AnchorMatch { return t.lines[i].Anchors }

// Claimed reports whether line i has been claimed
func (t *LineTable) Claimed(i int) bool { return t.lines[i].Claimed }

// Tag returns the claim tag of line i
func (t *LineTable) Tag(i int) model.ClaimTag { return t.lines[i].Tag }

// Claim marks line i with tag. It returns false if the line is already
// claimed or the tag is empty.
func (t *LineTable) Claim(i int, tag model.ClaimTag) bool {
	if i < 0 || i >= len(t.lines) || tag == model.ClaimNone || t.lines[i].Claimed {
		return false
	}
	t.lines[i].Claimed = true
	t.lines[i].Tag = tag
	return true
}

// ClaimBackfill claims an earlier line for an address that was resolved
// further down. Only unclaimed lines are taken.
func (t *LineTable) ClaimBackfill(i int) bool {
	return t.Claim(i, model.ClaimAddress)
}

// Unclaimed returns the indexes of unclaimed lines in order
func (t *LineTable) Unclaimed() []int {
	var out []int
	for i, l := range t.lines {
		if !l.Claimed {
			out = append(out, i)
		}
	}
	return out
}

// Header returns the number of leading lines in the top of an OCR layout,
// or 0 for plain text input
func (t *LineTable) Header() int { return t.header }

// SetHeader marks lines [0, n) as the layout header
func (t *LineTable) SetHeader(n int) {
	t.header = max(0, min(n, len(t.lines)))
}

// Lines returns a copy of all lines
func (t *LineTable) Lines() []model.Line {
	out := make([]model.Line, len(t.lines))
	copy(out, t.lines)
	return out
}

package pipeline

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/ppiankov/cardex/internal/extract"
	"github.com/ppiankov/cardex/internal/lexicon"
	"github.com/ppiankov/cardex/internal/model"
)

// keywordMatcher finds whole-word, case-insensitive keywords in a line
type keywordMatcher struct {
	re *regexp.Regexp
}

func newKeywordMatcher(words []string) *keywordMatcher {
	return &keywordMatcher{re: extract.Alternation(words)}
}

// Find returns the first keyword occurrence
func (m *keywordMatcher) Find(text string) (start, end int, ok bool) {
	locs := extract.FindWords(m.re, text, true)
	if len(locs) == 0 {
		return 0, 0, false
	}
	return locs[0][0], locs[0][1], true
}

var (
	trailingDigits = regexp.MustCompile(`[\s\d.,;:/\-]+$`)
	hasDigit       = regexp.MustCompile(`\d`)
)

// strictLegalForm reports whether the line carries a strict legal-form
// anchor, as opposed to an industry keyword
func strictLegalForm(lex *lexicon.Lexicon, l model.Line) bool {
	for _, a := range l.AnchorsOf(model.AnchorLegalForm) {
		for _, f := range lex.LegalForms() {
			if a.Value == f {
				return true
			}
		}
	}
	return false
}

// capitalized reports whether the first letter of w is upper case
func capitalized(w string) bool {
	for _, r := range w {
		if unicode.IsLetter(r) {
			return unicode.IsUpper(r)
		}
	}
	return false
}

// trimLabel strips a leading "Label:" of at most three words
func trimLabel(text string) string {
	idx := strings.Index(text, ":")
	if idx < 0 || idx == len(text)-1 {
		return text
	}
	if len(strings.Fields(text[:idx])) > 3 {
		return text
	}
	return strings.TrimSpace(text[idx+1:])
}

// stripTrailingNumbers removes trailing digits and separators, e.g. OCR
// page numbers after a company name
func stripTrailingNumbers(s string) string {
	trimmed := trailingDigits.ReplaceAllString(s, "")
	if trimmed == "" || !strings.ContainsFunc(trimmed, unicode.IsLetter) {
		return s
	}
	// keep a legal form ending in a period ("e.V.", "Inc.")
	if strings.HasSuffix(s, ".") && !hasDigit.MatchString(s[len(trimmed):]) {
		return s
	}
	return trimmed
}

package extract

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ppiankov/cardex/internal/lexicon"
	"github.com/ppiankov/cardex/internal/model"
)

const (
	postalConfidence    = 0.95
	areaCodeConfidence  = 0.9
	cityConfidence      = 0.85
	legalFormConfidence = 0.95
	emailConfidence     = 1.0
)

var (
	digitRun     = regexp.MustCompile(`\d+`)
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
)

// typeOrder breaks ties between anchors starting at the same offset
var typeOrder = map[model.AnchorType]int{
	model.AnchorEmail:      0,
	model.AnchorLegalForm:  1,
	model.AnchorPostalCode: 2,
	model.AnchorAreaCode:   3,
	model.AnchorCity:       4,
}

// AnchorDetector finds structural landmarks in a normalized line
type AnchorDetector struct {
	lex      *lexicon.Lexicon
	cityRe   *regexp.Regexp
	industry *regexp.Regexp
}

// NewAnchorDetector creates a detector over the given lexicon
func NewAnchorDetector(lex *lexicon.Lexicon) *AnchorDetector {
	if lex == nil {
		lex = lexicon.Default()
	}
	return &AnchorDetector{
		lex:      lex,
		cityRe:   Alternation(lex.Cities()),
		industry: Alternation(lex.IndustryKeywords()),
	}
}

// Alternation compiles a case-insensitive pattern; items must be longest first
func Alternation(items []string) *regexp.Regexp {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = regexp.QuoteMeta(s)
	}
	return regexp.MustCompile(`(?i)(?:` + strings.Join(quoted, "|") + `)`)
}

// Detect returns all anchors in text sorted by start offset.
// It is a pure function of its input.
func (d *AnchorDetector) Detect(text string) []model.AnchorMatch {
	var anchors []model.AnchorMatch
	anchors = append(anchors, d.emails(text)...)
	anchors = append(anchors, d.postalCodes(text)...)
	anchors = append(anchors, d.areaCodes(text)...)
	anchors = append(anchors, d.cities(text)...)
	anchors = append(anchors, d.legalForms(text)...)

	sort.SliceStable(anchors, func(i, j int) bool {
		if anchors[i].Start != anchors[j].Start {
			return anchors[i].Start < anchors[j].Start
		}
		if typeOrder[anchors[i].Type] != typeOrder[anchors[j].Type] {
			return typeOrder[anchors[i].Type] < typeOrder[anchors[j].Type]
		}
		return anchors[i].End < anchors[j].End
	})
	return anchors
}

func (d *AnchorDetector) emails(text string) []model.AnchorMatch {
	var out []model.AnchorMatch
	for _, loc := range emailPattern.FindAllStringIndex(text, -1) {
		out = append(out, model.AnchorMatch{
			Type:       model.AnchorEmail,
			Value:      text[loc[0]:loc[1]],
			Start:      loc[0],
			End:        loc[1],
			Confidence: emailConfidence,
		})
	}
	return out
}

// postalCodes reports isolated 4-5 digit runs
func (d *AnchorDetector) postalCodes(text string) []model.AnchorMatch {
	var out []model.AnchorMatch
	for _, loc := range digitRun.FindAllStringIndex(text, -1) {
		n := loc[1] - loc[0]
		if n < 4 || n > 5 {
			continue
		}
		out = append(out, model.AnchorMatch{
			Type:       model.AnchorPostalCode,
			Value:      text[loc[0]:loc[1]],
			Start:      loc[0],
			End:        loc[1],
			Confidence: postalConfidence,
		})
	}
	return out
}

// areaCodes reports the longest known area code at the start of each digit
// run. A run that begins mid-number never yields an area code, but a postal
// code that happens to start with an area code does; the phone stage
// resolves that collision.
func (d *AnchorDetector) areaCodes(text string) []model.AnchorMatch {
	var out []model.AnchorMatch
	for _, loc := range digitRun.FindAllStringIndex(text, -1) {
		run := text[loc[0]:loc[1]]
		code, _, ok := d.lex.AreaCode(run)
		if !ok {
			continue
		}
		out = append(out, model.AnchorMatch{
			Type:       model.AnchorAreaCode,
			Value:      code,
			Start:      loc[0],
			End:        loc[0] + len(code),
			Confidence: areaCodeConfidence,
		})
	}
	return out
}

// cities reports whole-word, case-insensitive city names
func (d *AnchorDetector) cities(text string) []model.AnchorMatch {
	var out []model.AnchorMatch
	for _, loc := range FindWords(d.cityRe, text, true) {
		display, ok := d.lex.City(text[loc[0]:loc[1]])
		if !ok {
			display = text[loc[0]:loc[1]]
		}
		out = append(out, model.AnchorMatch{
			Type:       model.AnchorCity,
			Value:      display,
			Start:      loc[0],
			End:        loc[1],
			Confidence: cityConfidence,
		})
	}
	return out
}

// legalForms combines strict whole-token forms and industry keywords that
// may end a compound word. Overlaps resolve to the longest candidate.
func (d *AnchorDetector) legalForms(text string) []model.AnchorMatch {
	var candidates []model.AnchorMatch

	for _, form := range d.lex.LegalForms() {
		for from := 0; from < len(text); {
			idx := strings.Index(text[from:], form)
			if idx < 0 {
				break
			}
			start := from + idx
			end := start + len(form)
			if strictBoundary(text, start, end) {
				candidates = append(candidates, model.AnchorMatch{
					Type:       model.AnchorLegalForm,
					Value:      form,
					Start:      start,
					End:        end,
					Confidence: legalFormConfidence,
				})
			}
			from = end
		}
	}

	for _, loc := range FindWords(d.industry, text, false) {
		start := wordStart(text, loc[0])
		candidates = append(candidates, model.AnchorMatch{
			Type:       model.AnchorLegalForm,
			Value:      text[start:loc[1]],
			Start:      start,
			End:        loc[1],
			Confidence: legalFormConfidence,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		li := candidates[i].End - candidates[i].Start
		lj := candidates[j].End - candidates[j].Start
		if li != lj {
			return li > lj
		}
		return candidates[i].Start < candidates[j].Start
	})

	var out []model.AnchorMatch
	for _, c := range candidates {
		overlaps := false
		for _, kept := range out {
			if c.Start < kept.End && kept.Start < c.End {
				overlaps = true
				break
			}
		}
		if !overlaps {
			out = append(out, c)
		}
	}
	return out
}

// FindWords returns matches of re whose end is not followed by a letter.
// With leading set, the match must also not be preceded by a letter.
func FindWords(re *regexp.Regexp, text string, leading bool) [][2]int {
	var out [][2]int
	for pos := 0; pos < len(text); {
		loc := re.FindStringIndex(text[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]
		if end > start && !letterAfter(text, end) && (!leading || !letterBefore(text, start)) {
			out = append(out, [2]int{start, end})
			pos = end
			continue
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		pos = start + max(size, 1)
	}
	return out
}

// strictBoundary requires a separator before a legal form and no letter or
// digit after it
func strictBoundary(text string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:start])
		if !unicode.IsSpace(r) && !strings.ContainsRune(",(-&", r) {
			return false
		}
	}
	if end < len(text) {
		r, _ := utf8.DecodeRuneInString(text[end:])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func letterBefore(text string, i int) bool {
	if i == 0 {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(text[:i])
	return unicode.IsLetter(r)
}

func letterAfter(text string, i int) bool {
	if i >= len(text) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return unicode.IsLetter(r)
}

// wordStart walks back from i to the first letter of the enclosing word
func wordStart(text string, i int) int {
	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:i])
		if !unicode.IsLetter(r) && r != '-' {
			break
		}
		i -= size
	}
	for i < len(text) && text[i] == '-' {
		i++
	}
	return i
}

package pipeline

import (
	"regexp"
	"strings"

	"github.com/ppiankov/cardex/internal/model"
)

// Titles longer than this are prose, not a role line
const maxTitleWords = 8

var (
	taxLabel  = regexp.MustCompile(`(?i)\b(?:ust\.?[-\s]?id(?:[-.\s]?nr)?|umsatzsteuer[-\s]?(?:identifikationsnummer|id)|vat(?:[-\s]?(?:id|no|number|reg))?|steuer[-\s]?(?:nummer|nr)|st\.?[-\s]?nr|tax[-\s]?(?:id|number))\b\.?`)
	taxNumber = regexp.MustCompile(`(?i)\b(?:steuer|st\.?[-\s]?nr|tax[-\s]?number)`)
	taxValue  = regexp.MustCompile(`\b(?:DE|ATU|CHE)[-\s]?\d[\d\s.]{6,}\d\b|\b\d{2,3}/\d{3,4}/\d{4,5}\b`)
	spaces    = regexp.MustCompile(`\s+`)
)

// jobStage extracts the job title and tax identifiers
type jobStage struct {
	*engine
	roles *keywordMatcher
}

func newJobStage(e *engine) *jobStage {
	return &jobStage{
		engine: e,
		roles:  newKeywordMatcher(e.lex.RoleKeywords()),
	}
}

func (s *jobStage) Name() string { return "job" }

func (s *jobStage) Claim(t *LineTable, rec *model.ContactRecord) {
	for _, i := range t.Unclaimed() {
		if t.Claimed(i) {
			continue
		}
		if s.taxID(t, i, rec) {
			continue
		}
		if rec.Title != "" {
			continue
		}
		if title, ok := s.title(t.Line(i)); ok {
			rec.SetTitle(title)
			t.Claim(i, model.ClaimJob)
		}
	}
}

// taxID moves a VAT or tax number into the notes. The value may sit on the
// line after its label.
func (s *jobStage) taxID(t *LineTable, i int, rec *model.ContactRecord) bool {
	text := t.Text(i)
	loc := taxLabel.FindStringIndex(text)
	if loc == nil {
		return false
	}

	label := "VAT ID"
	if taxNumber.MatchString(text[loc[0]:loc[1]]) {
		label = "Tax number"
	}

	value := taxValue.FindString(text[loc[1]:])
	next := i + 1
	if value == "" && next < t.Len() && !t.Claimed(next) {
		if v := taxValue.FindString(t.Text(next)); v != "" {
			value = v
			t.Claim(next, model.ClaimJob)
		}
	}
	if value == "" {
		return false
	}

	if label == "VAT ID" {
		value = spaces.ReplaceAllString(value, "")
	}
	rec.AddNote(label + ": " + value)
	t.Claim(i, model.ClaimJob)
	return true
}

// title returns the job title of a role line. "Geschäftsführer: Max
// Mustermann" and "Max Mustermann, CEO" yield only the role part so the name
// stage can still read the name.
func (s *jobStage) title(l model.Line) (string, bool) {
	text := l.Text
	if strings.Contains(text, "@") || strictLegalForm(s.lex, l) {
		return "", false
	}
	if len(strings.Fields(text)) > maxTitleWords {
		return "", false
	}
	start, end, ok := s.roles.Find(text)
	if !ok {
		return "", false
	}

	if rest := strings.Trim(text[end:], " :-–,|"); rest != "" && s.isName(rest) {
		return strings.TrimRight(text[:end], " :-–,"), true
	}
	if head := strings.Trim(text[:start], " :-–,|"); head != "" && s.isName(head) {
		return strings.TrimRight(text[start:], " :-–,"), true
	}
	return strings.TrimRight(text, " :"), true
}

func (s *jobStage) isName(text string) bool {
	return s.names.Likelihood(text) >= s.cfg.NameThreshold
}

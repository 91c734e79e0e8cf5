package pipeline

import (
	"regexp"
	"slices"
	"strings"
	"unicode"

	"github.com/ppiankov/cardex/internal/lexicon"
	"github.com/ppiankov/cardex/internal/model"
)

const (
	// contextGate is the minimum keyword proximity for a contextual name
	contextGate = 0.5
	// maxNameWords excludes prefixes
	maxNameWords = 5
)

var (
	personSeparator = regexp.MustCompile(`\s+(?:und|and|&|/)\s+|;\s*`)

	// Filler between a role label and the name ("Geschäftsführer ist Max ...")
	fillerWords = map[string]bool{
		"der": true, "die": true, "das": true, "den": true, "dem": true, "ist": true, "sind": true,
		"the": true, "is": true, "our": true, "unser": true, "unsere": true, "durch": true,
	}
)

// nameStage finds the person's name: first next to a role label, then by a
// known first name, then by the name likelihood of whole lines. On OCR input
// each pass runs over the top of the layout before the whole document.
type nameStage struct {
	*engine
	labels    *keywordMatcher
	roleWords map[string]bool
}

func newNameStage(e *engine) *nameStage {
	labels := slices.Concat(e.lex.RoleKeywords(), e.lex.RepresentativeKeywords())
	slices.SortStableFunc(labels, func(a, b string) int { return len(b) - len(a) })

	roleWords := make(map[string]bool)
	for _, r := range labels {
		if !strings.Contains(r, " ") {
			roleWords[strings.ToLower(r)] = true
		}
	}
	return &nameStage{
		engine:    e,
		labels:    newKeywordMatcher(labels),
		roleWords: roleWords,
	}
}

func (s *nameStage) Name() string { return "name" }

func (s *nameStage) Claim(t *LineTable, rec *model.ContactRecord) {
	if rec.FullName != "" {
		return
	}

	all := make([]int, t.Len())
	for i := range all {
		all[i] = i
	}
	scopes := [][]int{all}
	if h := t.Header(); h > 0 && h < t.Len() {
		scopes = [][]int{all[:h], all}
	}

	passes := []func(*LineTable, []int, *model.ContactRecord) bool{
		s.contextual,
		s.firstNameScan,
		s.heuristic,
	}
	for _, scope := range scopes {
		for _, pass := range passes {
			if pass(t, scope, rec) {
				return
			}
		}
	}
}

// contextual reads the name next to a role or representative label.
// Lines claimed as JOB are read but stay JOB.
func (s *nameStage) contextual(t *LineTable, scope []int, rec *model.ContactRecord) bool {
	for _, i := range scope {
		if t.Claimed(i) && t.Tag(i) != model.ClaimJob {
			continue
		}
		text := t.Text(i)
		start, end, ok := s.labels.Find(text)
		if !ok {
			continue
		}
		label := []model.AnchorMatch{{
			Type:       model.AnchorKeyword,
			Value:      text[start:end],
			Start:      start,
			End:        end,
			Confidence: 1,
		}}

		if full, from, to := s.leadingName(text[end:]); full != "" {
			c := model.Candidate{Type: model.CandidateName, Start: end + from, End: end + to, Value: full}
			if s.ctx.Score(c, label) >= contextGate {
				return s.accept(t, i, full, rec)
			}
		}

		if head := strings.TrimRight(text[:start], " :-–,|"); head != "" {
			full, from, to := s.leadingName(head)
			if full != "" && from == 0 && to == len(head) {
				c := model.Candidate{Type: model.CandidateName, Start: from, End: to, Value: full}
				if s.ctx.Score(c, label) >= contextGate {
					return s.accept(t, i, full, rec)
				}
			}
		}

		// label alone on its line, name below
		next := i + 1
		if strings.Trim(text[end:], " :-–,|") != "" || next >= t.Len() || t.Claimed(next) {
			continue
		}
		nextText := t.Text(next)
		full, from, to := s.leadingName(nextText)
		if full != "" && from == 0 && to == len(nextText) && s.names.Likelihood(full) >= s.cfg.NameThreshold {
			return s.accept(t, next, full, rec)
		}
	}
	return false
}

// firstNameScan looks for a known first name followed by a capitalized surname
func (s *nameStage) firstNameScan(t *LineTable, scope []int, rec *model.ContactRecord) bool {
	for _, i := range scope {
		if t.Claimed(i) {
			continue
		}
		l := t.Line(i)
		if strings.Contains(l.Text, "@") || l.HasAnchor(model.AnchorLegalForm) {
			continue
		}
		toks := tokenize(l.Text)
		for k, tok := range toks {
			w := strings.Trim(tok.text, ",;:")
			if !capitalized(w) || !s.lex.IsFirstName(w) {
				continue
			}
			b := k
			for b > 0 && s.lex.IsNamePrefix(toks[b-1].text) {
				b--
			}
			if full, from, _ := s.leadingName(l.Text[toks[b].start:]); full != "" && from == 0 {
				return s.accept(t, i, full, rec)
			}
		}
	}
	return false
}

// heuristic accepts the first line whose name likelihood passes the threshold
func (s *nameStage) heuristic(t *LineTable, scope []int, rec *model.ContactRecord) bool {
	for _, i := range scope {
		if t.Claimed(i) {
			continue
		}
		person := firstPerson(s.lex, t.Text(i))
		if s.names.Likelihood(person) >= s.cfg.NameThreshold {
			return s.accept(t, i, person, rec)
		}
	}
	return false
}

func (s *nameStage) accept(t *LineTable, i int, full string, rec *model.ContactRecord) bool {
	if !rec.SetFullName(full, splitName(s.lex, full)) {
		return false
	}
	if !t.Claimed(i) {
		t.Claim(i, model.ClaimName)
	}
	return true
}

// leadingName returns the name at the start of text, skipping separators and
// filler words, with its byte span. Academic prefixes are included.
func (s *nameStage) leadingName(text string) (string, int, int) {
	toks := tokenize(text)
	k := 0
	for k < len(toks) && (isSeparator(toks[k].text) || fillerWords[strings.ToLower(toks[k].text)]) {
		k++
	}
	begin := k
	for k < len(toks) && s.lex.IsNamePrefix(toks[k].text) {
		k++
	}

	end := k
	words := 0
	for k < len(toks) && words < maxNameWords {
		w := toks[k].text
		bare := strings.TrimRight(w, ",;")
		if !s.nameWord(bare) {
			break
		}
		k++
		end = k
		words++
		if bare != w {
			break
		}
	}
	for end > begin && s.lex.IsNameParticle(strings.TrimRight(toks[end-1].text, ",;")) {
		end--
		words--
	}
	if words < 2 {
		return "", 0, 0
	}

	from := toks[begin].start
	to := toks[end-1].end
	full := strings.TrimRight(text[from:to], ",;")
	return full, from, from + len(full)
}

func (s *nameStage) nameWord(w string) bool {
	if w == "" {
		return false
	}
	if s.lex.IsNameParticle(w) {
		return true
	}
	if !capitalized(w) || strings.ContainsAny(w, "@:/()") || strings.ContainsFunc(w, unicode.IsDigit) {
		return false
	}
	lower := strings.ToLower(w)
	return !s.roleWords[lower] && !s.lex.IsGenericWord(w) && !s.lex.IsBusinessToken(w)
}

// firstPerson returns the first person of a multi-person line. "Mustermann,
// Max" and "Max Mustermann, MBA" stay whole.
func firstPerson(lex *lexicon.Lexicon, text string) string {
	text = strings.TrimSpace(text)
	if loc := personSeparator.FindStringIndex(text); loc != nil {
		text = text[:loc[0]]
	}
	head, tail, ok := strings.Cut(text, ",")
	if !ok {
		return text
	}
	tail = strings.TrimSpace(tail)
	if !strings.Contains(tail, " ") && (lex.IsNameSuffix(tail) || lex.IsFirstName(tail)) {
		return text
	}
	return strings.TrimSpace(head)
}

// splitName breaks a full name into prefix, given, middle, family and
// suffix. Particles start the family name ("Max von Mustermann").
func splitName(lex *lexicon.Lexicon, full string) model.NameParts {
	tokens := strings.Fields(full)
	var p model.NameParts

	var prefixes []string
	for len(tokens) > 1 && lex.IsNamePrefix(tokens[0]) {
		prefixes = append(prefixes, tokens[0])
		tokens = tokens[1:]
	}
	var suffixes []string
	for len(tokens) > 1 && lex.IsNameSuffix(tokens[len(tokens)-1]) {
		suffixes = append([]string{strings.TrimRight(tokens[len(tokens)-1], ",")}, suffixes...)
		tokens = tokens[:len(tokens)-1]
	}
	p.Prefix = strings.Join(prefixes, " ")
	p.Suffix = strings.Join(suffixes, " ")
	if len(tokens) == 0 {
		return p
	}
	tokens[len(tokens)-1] = strings.TrimRight(tokens[len(tokens)-1], ",;")

	// "Mustermann, Max"
	if len(tokens) >= 2 && strings.HasSuffix(tokens[0], ",") {
		p.Family = strings.TrimSuffix(tokens[0], ",")
		p.Given = tokens[1]
		p.Middle = strings.Join(tokens[2:], " ")
		return p
	}

	if len(tokens) == 1 {
		p.Family = tokens[0]
		return p
	}

	p.Given = tokens[0]
	familyStart := len(tokens) - 1
	for k := 1; k < len(tokens)-1; k++ {
		if lex.IsNameParticle(tokens[k]) {
			familyStart = k
			break
		}
	}
	p.Middle = strings.Join(tokens[1:familyStart], " ")
	p.Family = strings.Join(tokens[familyStart:], " ")
	return p
}

type token struct {
	text       string
	start, end int
}

// tokenize splits text on white space, keeping byte offsets
func tokenize(text string) []token {
	var out []token
	start := -1
	for i, r := range text {
		switch {
		case unicode.IsSpace(r):
			if start >= 0 {
				out = append(out, token{text: text[start:i], start: start, end: i})
				start = -1
			}
		case start < 0:
			start = i
		}
	}
	if start >= 0 {
		out = append(out, token{text: text[start:], start: start, end: len(text)})
	}
	return out
}

func isSeparator(tok string) bool {
	return strings.Trim(tok, ":-–,|") == ""
}

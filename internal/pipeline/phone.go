package pipeline

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/nyaruka/phonenumbers"
	"go.uber.org/zap"

	"github.com/ppiankov/cardex/internal/lexicon"
	"github.com/ppiankov/cardex/internal/model"
)

// germanCountryCode selects the national prefix tables of the lexicon
const germanCountryCode = 49

// Phone confidences by how the type was decided
const (
	confLabel       = 0.9
	confMobile      = 0.95
	confConfirmed   = 0.9
	confProvisional = 0.6
	confService     = 0.7
	confForeign     = 0.6
	confUnknown     = 0.4
)

var (
	phoneSpan     = regexp.MustCompile(`(?:\+|\b00)?\d[\d \t\-/().]{2,}\d`)
	spanSplitter  = regexp.MustCompile(`\s+/\s+|\s{2,}|,\s*`)
	trunkInParens = regexp.MustCompile(`(\+\d{1,3})\s*\(0\)\s*`)
	datePattern   = regexp.MustCompile(`^\d{1,2}\.\d{1,2}\.\d{2,4}$`)

	phoneLabel = regexp.MustCompile(`(?i)\b(?:telefon|telefax|tel|fon|phone|fax|mobil|mobile|handy|cell|mob)\b\.?:?|\b[TMF]\s?[:.]`)
	faxLabel   = regexp.MustCompile(`(?i)fax|\bf\s?[:.]`)
	mobLabel   = regexp.MustCompile(`(?i)mobil|handy|\bcell|\bmob\b|\bm\s?[:.]`)

	// Numbers in these contexts are never phones
	excludedContext = regexp.MustCompile(`(?i)\b(?:HR[AB]|amtsgericht|registergericht|handelsregister|iban|bic|konto\w*|blz|postfach|p\.?\s?o\.?\s?box|ust|ust-?id\w*|umsatzsteuer\w*|steuer\w*|st\.?-?nr|vat|tax)\b`)
)

// phoneStage finds phone numbers and types them by label, prefix table and
// area-code/postal-code cross-validation
type phoneStage struct {
	*engine
}

func newPhoneStage(e *engine) *phoneStage {
	return &phoneStage{engine: e}
}

func (s *phoneStage) Name() string { return "phone" }

func (s *phoneStage) Claim(t *LineTable, rec *model.ContactRecord) {
	for _, i := range t.Unclaimed() {
		if s.extractLine(t, i, rec) {
			t.Claim(i, model.ClaimPhone)
		}
	}
}

// extractLine adds every phone on line i and reports whether any was found
func (s *phoneStage) extractLine(t *LineTable, i int, rec *model.ContactRecord) bool {
	line := t.Line(i)
	text := line.Text
	if excludedContext.MatchString(text) {
		return false
	}

	verified := verifiedPostalCodes(line)
	labels := keywordAnchors(text)
	context := append(labels, line.AnchorsOf(model.AnchorAreaCode)...)

	found := false
	prevEnd := 0
	for _, loc := range phoneSpan.FindAllStringIndex(text, -1) {
		start, end := loc[0], loc[1]
		label := text[prevEnd:start]
		prevEnd = end
		raw := text[start:end]

		// glued to a word, e.g. a VAT ID
		if r, _ := utf8.DecodeLastRuneInString(text[:start]); start > 0 && unicode.IsLetter(r) {
			continue
		}
		// house number run into the postal code of an unknown city
		if cut, ok := trailingPostal(raw); ok && capitalizedAfter(text, end) {
			s.logger.Debug("cut postal code from span", zap.String("span", raw))
			raw = strings.TrimRight(raw[:cut], " \t-/(.")
			end = start + len(raw)
			prevEnd = end
		}
		// (a) postal code of a verified address
		if overlapsAny(start, end, verified) {
			s.logger.Debug("skip postal code", zap.String("span", raw))
			continue
		}
		// (b) bare postal code before a city or after a state code
		if isBarePostal(raw) && (capitalizedAfter(text, end) || stateBefore(s.lex, text, start)) {
			s.logger.Debug("skip bare postal code", zap.String("span", raw))
			continue
		}
		if datePattern.MatchString(raw) || len(digitsOf(raw)) < 6 {
			continue
		}

		for _, num := range s.parseSpan(raw) {
			typ, conf := s.classify(t, i, num, label)
			value := phonenumbers.Format(num, phonenumbers.E164)
			c := model.Candidate{Type: model.CandidatePhone, Start: start, End: end, Value: value}
			conf *= 0.8 + 0.2*s.ctx.Score(c, context)
			rec.AddPhone(model.Phone{Type: typ, Value: value, Confidence: conf})
			found = true
		}
	}
	return found
}

// parseSpan validates a span with the phone grammar, splitting it when two
// numbers were run together ("030 123 / 0171 456")
func (s *phoneStage) parseSpan(raw string) []*phonenumbers.PhoneNumber {
	if num, ok := s.parse(raw); ok {
		return []*phonenumbers.PhoneNumber{num}
	}
	var out []*phonenumbers.PhoneNumber
	for _, part := range spanSplitter.Split(raw, -1) {
		if len(digitsOf(part)) < 6 {
			continue
		}
		if num, ok := s.parse(part); ok {
			out = append(out, num)
		}
	}
	return out
}

func (s *phoneStage) parse(raw string) (*phonenumbers.PhoneNumber, bool) {
	cleaned := trunkInParens.ReplaceAllString(strings.TrimSpace(raw), "$1 ")
	num, err := phonenumbers.Parse(cleaned, s.cfg.Region)
	if err != nil || !phonenumbers.IsPossibleNumber(num) {
		return nil, false
	}
	return num, true
}

// classify applies label keywords, then the national prefix tables
func (s *phoneStage) classify(t *LineTable, i int, num *phonenumbers.PhoneNumber, label string) (model.PhoneType, float64) {
	switch {
	case faxLabel.MatchString(label):
		return model.PhoneFax, confLabel
	case mobLabel.MatchString(label):
		return model.PhoneMobile, confLabel
	}

	numberType := phonenumbers.GetNumberType(num)
	if int(num.GetCountryCode()) != germanCountryCode {
		switch numberType {
		case phonenumbers.MOBILE:
			return model.PhoneMobile, confForeign
		case phonenumbers.FIXED_LINE, phonenumbers.FIXED_LINE_OR_MOBILE:
			return model.PhoneLandlineProvisional, confForeign
		}
		return model.PhoneOther, confForeign
	}

	national := "0" + phonenumbers.GetNationalSignificantNumber(num)
	if s.lex.IsMobile(national) {
		return model.PhoneMobile, confMobile
	}
	if _, city, ok := s.lex.AreaCode(national); ok {
		if s.confirmed(t, i, city) {
			return model.PhoneLandline, confConfirmed
		}
		return model.PhoneLandlineProvisional, confProvisional
	}

	switch numberType {
	case phonenumbers.MOBILE:
		return model.PhoneMobile, confMobile
	case phonenumbers.TOLL_FREE, phonenumbers.PREMIUM_RATE, phonenumbers.SHARED_COST,
		phonenumbers.VOIP, phonenumbers.PERSONAL_NUMBER, phonenumbers.UAN:
		return model.PhoneOther, confService
	}

	s.logger.Warn("unknown phone prefix, defaulting to landline",
		zap.String("number", national),
		zap.String("prefix", national[:min(len(national), 4)]))
	return model.PhoneLandlineProvisional, confUnknown
}

// confirmed reports whether document evidence places the area code's city:
// a postal code anywhere in the document mapping to the same city, or a
// city named on the phone's own line next to its area code. A city written
// next to the postal code outranks the prefix table.
func (s *phoneStage) confirmed(t *LineTable, i int, city string) bool {
	for j := 0; j < t.Len(); j++ {
		l := t.Line(j)
		cities := l.AnchorsOf(model.AnchorCity)
		for _, a := range l.AnchorsOf(model.AnchorPostalCode) {
			if len(a.Value) != 5 || digitFollows(l.Text, a.End) {
				continue
			}
			pc, ok := s.lex.PostalCity(a.Value)
			if named, found := adjacentCity(l.Text, a, cities); found {
				pc, ok = named.Value, true
			}
			if ok && lexicon.SameCity(pc, city) {
				return true
			}
		}
	}
	line := t.Line(i)
	if !line.HasAnchor(model.AnchorAreaCode) {
		return false
	}
	for _, a := range line.AnchorsOf(model.AnchorCity) {
		if lexicon.SameCity(a.Value, city) {
			return true
		}
	}
	return false
}

// verifiedPostalCodes returns postal anchors paired with a city written
// directly after or before them. A digit group followed by more digits is
// the head of a phone number, not a postal code.
func verifiedPostalCodes(l model.Line) []model.AnchorMatch {
	cities := l.AnchorsOf(model.AnchorCity)
	if len(cities) == 0 {
		return nil
	}
	var out []model.AnchorMatch
	for _, pc := range l.AnchorsOf(model.AnchorPostalCode) {
		if digitFollows(l.Text, pc.End) {
			continue
		}
		if _, ok := adjacentCity(l.Text, pc, cities); ok {
			out = append(out, pc)
		}
	}
	return out
}

// adjacentCity returns the city right after a postal code ("10115 Berlin"),
// else the one right before it ("Berlin, 10115")
func adjacentCity(text string, pc model.AnchorMatch, cities []model.AnchorMatch) (model.AnchorMatch, bool) {
	for _, c := range cities {
		if c.Start >= pc.End && strings.Trim(text[pc.End:c.Start], " \t,") == "" {
			return c, true
		}
	}
	for _, c := range cities {
		if c.End <= pc.Start && strings.Trim(text[c.End:pc.Start], " \t,") == "" {
			return c, true
		}
	}
	return model.AnchorMatch{}, false
}

// digitFollows reports whether another digit group continues at end
func digitFollows(text string, end int) bool {
	rest := strings.TrimLeft(text[end:], " \t-/")
	return rest != "" && rest[0] >= '0' && rest[0] <= '9'
}

// keywordAnchors marks phone labels as scoring evidence
func keywordAnchors(text string) []model.AnchorMatch {
	var out []model.AnchorMatch
	for _, loc := range phoneLabel.FindAllStringIndex(text, -1) {
		out = append(out, model.AnchorMatch{
			Type:       model.AnchorKeyword,
			Value:      text[loc[0]:loc[1]],
			Start:      loc[0],
			End:        loc[1],
			Confidence: 1,
		})
	}
	return out
}

func overlapsAny(start, end int, anchors []model.AnchorMatch) bool {
	for _, a := range anchors {
		if start < a.End && a.Start < end {
			return true
		}
	}
	return false
}

func isBarePostal(raw string) bool {
	raw = strings.TrimSpace(raw)
	n := len(digitsOf(raw))
	return n == len(raw) && n >= 4 && n <= 5
}

// trailingPostal reports where a span's last digit group starts when that
// group is shaped like a postal code and follows a house number. Spans
// opening with a trunk or international prefix are phone numbers.
func trailingPostal(raw string) (int, bool) {
	if strings.HasPrefix(raw, "+") || strings.HasPrefix(raw, "0") {
		return 0, false
	}
	i := strings.LastIndexAny(raw, " \t")
	if i <= 0 || !isBarePostal(raw[i+1:]) {
		return 0, false
	}
	return i, true
}

// capitalizedAfter reports whether the next token after end is capitalized
func capitalizedAfter(text string, end int) bool {
	rest := strings.TrimLeft(text[end:], " \t")
	if rest == text[end:] && rest != "" {
		return false
	}
	fields := strings.Fields(rest)
	return len(fields) > 0 && capitalized(fields[0])
}

// stateBefore reports whether a two-letter state code precedes start ("CA 94105")
func stateBefore(lex *lexicon.Lexicon, text string, start int) bool {
	fields := strings.Fields(text[:start])
	if len(fields) == 0 {
		return false
	}
	last := strings.TrimRight(fields[len(fields)-1], ",")
	return len(last) == 2 && strings.ToUpper(last) == last && lex.IsUSState(last)
}

func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

package pipeline

import (
	"regexp"
	"strings"

	"github.com/ppiankov/cardex/internal/model"
)

// maxCollected bounds the backward walk for street, floor and PO-box lines
const maxCollected = 3

const addressTypeWork = "work"

var (
	streetSuffix = regexp.MustCompile(`(?i)(?:straße|strasse|str\.|weg|allee|platz|gasse|ring|damm|ufer|chaussee|steig|pfad|markt|graben|street|road|avenue|lane|drive|boulevard|\bst\.|\brd\.|\bave\.|\bblvd\.?)`)
	streetPrefix = regexp.MustCompile(`^(?:Am|An der|An den|Auf der|Auf dem|Im|In der|In den|Zum|Zur|Unter den|Hinter der|Vor dem)\s`)
	houseNumber  = regexp.MustCompile(`\s\d{1,4}\s?[a-zA-Z]?(?:\s?[-/]\s?\d{1,4}\s?[a-zA-Z]?)?$`)
	leadingNum   = regexp.MustCompile(`^\d{1,5}\s+\p{L}`)

	poBox    = regexp.MustCompile(`(?i)^(?:postfach|p\.?\s?o\.?\s?box|box)\s*\d`)
	extended = regexp.MustCompile(`(?i)^(?:c/o\b|\d{1,2}\.\s?(?:og|obergeschoss|etage|stock)\b|(?:etage|stock|floor|suite|gebäude|building|haus|zimmer|raum|room|apt\.?|apartment)\s|\d{1,2}(?:st|nd|rd|th)\s+floor\b|\d{1,2}\.\s?(?:og|etage)$)`)

	usAddress  = regexp.MustCompile(`^(?:(.+?),\s*)?([A-Z][A-Za-z .'\-]+),\s*([A-Z]{2})\s+(\d{5}(?:-\d{4})?)(?:\s*,?\s*(USA|United States|US))?$`)
	intlPostal = regexp.MustCompile(`(?:^|[\s,])(?:([A-Z]{1,3})\s?-\s?)?(\d{4,5})\s+(\p{Lu}[\p{L}.'\-]*(?:\s+\p{Lu}[\p{L}.'\-]*)*)`)
)

// addressStage resolves the first postal address and collects the lines
// above it that belong to it
type addressStage struct {
	*engine
}

func newAddressStage(e *engine) *addressStage {
	return &addressStage{engine: e}
}

func (s *addressStage) Name() string { return "address" }

// Strategies are tried in order over all lines; the first success wins.
func (s *addressStage) Claim(t *LineTable, rec *model.ContactRecord) {
	strategies := []func(l model.Line) (model.Address, bool){
		s.postalCity,
		s.anchorPair,
		s.usStyle,
		s.international,
	}
	candidates := s.candidates(t)
	for _, strategy := range strategies {
		for _, i := range candidates {
			if addr, ok := strategy(t.Line(i)); ok {
				s.commit(t, rec, addr, i, i)
				return
			}
		}
	}

	for _, i := range t.Unclaimed() {
		if addr, ok := s.twoLine(t, i); ok {
			s.commit(t, rec, addr, i, i+1)
			return
		}
	}
}

// candidates lists unclaimed lines and phone lines that also carry a
// verified postal code and city ("Musterstraße 1, 10115 Berlin, Tel. ...").
// Phone lines keep their claim.
func (s *addressStage) candidates(t *LineTable) []int {
	var out []int
	for i := 0; i < t.Len(); i++ {
		switch {
		case !t.Claimed(i):
			out = append(out, i)
		case t.Tag(i) == model.ClaimPhone && len(verifiedPostalCodes(t.Line(i))) > 0:
			out = append(out, i)
		}
	}
	return out
}

// postalCity matches a 5-digit postal code directly followed by a known city
func (s *addressStage) postalCity(l model.Line) (model.Address, bool) {
	cities := l.AnchorsOf(model.AnchorCity)
	for _, pc := range l.AnchorsOf(model.AnchorPostalCode) {
		if len(pc.Value) != 5 {
			continue
		}
		for _, c := range cities {
			if c.Start < pc.End || strings.TrimSpace(l.Text[pc.End:c.Start]) != "" {
				continue
			}
			return s.build(l.Text, pc, c.Start), true
		}
	}
	return model.Address{}, false
}

// anchorPair accepts a postal code paired with the city written right after
// or right before it
func (s *addressStage) anchorPair(l model.Line) (model.Address, bool) {
	if usAddress.MatchString(l.Text) {
		return model.Address{}, false
	}
	cities := l.AnchorsOf(model.AnchorCity)
	for _, pc := range verifiedPostalCodes(l) {
		city, _ := adjacentCity(l.Text, pc, cities)
		if city.Start >= pc.End {
			return s.build(l.Text, pc, city.Start), true
		}

		// city before postal code ("Berlin 10115")
		addr := model.Address{
			Type:       addressTypeWork,
			Street:     cleanStreet(l.Text[:city.Start]),
			City:       city.Value,
			PostalCode: pc.Value,
		}
		if country, _ := s.letterPrefix(l.Text, pc.Start); country != "" {
			addr.Country = country
		}
		return addr, true
	}
	return model.Address{}, false
}

// usStyle matches "City, ST 12345"
func (s *addressStage) usStyle(l model.Line) (model.Address, bool) {
	m := usAddress.FindStringSubmatch(l.Text)
	if m == nil || !s.lex.IsUSState(m[3]) {
		return model.Address{}, false
	}
	return model.Address{
		Type:       addressTypeWork,
		Street:     cleanStreet(m[1]),
		City:       strings.TrimSpace(m[2]),
		Region:     m[3],
		PostalCode: m[4],
		Country:    "US",
	}, true
}

// international matches a postal code before a capitalized place name when a
// letter prefix or a country name identifies the country, or when a street
// with house number leads the line
func (s *addressStage) international(l model.Line) (model.Address, bool) {
	m := intlPostal.FindStringSubmatchIndex(l.Text)
	if m == nil {
		return model.Address{}, false
	}
	text := l.Text

	country := ""
	if m[2] >= 0 {
		country, _ = s.lex.PostalCountry(text[m[2]:m[3]])
	}

	city := text[m[6]:m[7]]
	if head, tail, ok := strings.Cut(text[m[6]:], ","); ok {
		city = head
		if c, found := s.lex.Country(tail); found && country == "" {
			country = c
		}
	}
	city, trailing := s.splitTrailingCountry(city)
	if country == "" {
		country = trailing
	}

	streetEnd := m[4]
	if m[2] >= 0 {
		streetEnd = m[2]
	}
	street := cleanStreet(text[:streetEnd])
	if country == "" && !isStreet(street) {
		return model.Address{}, false
	}
	return model.Address{
		Type:       addressTypeWork,
		Street:     street,
		City:       strings.TrimSpace(city),
		PostalCode: text[m[4]:m[5]],
		Country:    country,
	}, true
}

// twoLine matches a street line directly followed by a city-only line
func (s *addressStage) twoLine(t *LineTable, i int) (model.Address, bool) {
	next := i + 1
	if next >= t.Len() || t.Claimed(next) || !isStreet(t.Text(i)) {
		return model.Address{}, false
	}
	head, tail, _ := strings.Cut(t.Text(next), ",")
	city, ok := s.lex.City(head)
	if !ok {
		return model.Address{}, false
	}
	addr := model.Address{
		Type:   addressTypeWork,
		Street: cleanStreet(t.Text(i)),
		City:   city,
	}
	if c, found := s.lex.Country(tail); found {
		addr.Country = c
	}
	return addr, true
}

// build fills an address from a postal anchor and the city that follows it
func (s *addressStage) build(text string, pc model.AnchorMatch, cityStart int) model.Address {
	country, streetEnd := s.letterPrefix(text, pc.Start)

	city, tail, hasTail := strings.Cut(text[cityStart:], ",")
	city, trailing := s.splitTrailingCountry(city)
	if country == "" {
		country = trailing
	}
	if hasTail && country == "" {
		if c, ok := s.lex.Country(tail); ok {
			country = c
		}
	}

	return model.Address{
		Type:       addressTypeWork,
		Street:     cleanStreet(text[:streetEnd]),
		City:       strings.TrimSpace(strings.TrimRight(city, " .;")),
		PostalCode: pc.Value,
		Country:    country,
	}
}

// letterPrefix reads a country prefix glued to a postal code ("D-10115").
// It returns the country and the offset where the prefix starts.
func (s *addressStage) letterPrefix(text string, start int) (string, int) {
	head := strings.TrimRight(text[:start], " ")
	if !strings.HasSuffix(head, "-") {
		return "", start
	}
	head = strings.TrimRight(strings.TrimSuffix(head, "-"), " ")
	i := len(head)
	for i > 0 && head[i-1] >= 'A' && head[i-1] <= 'Z' {
		i--
	}
	code := head[i:]
	if code == "" || (i > 0 && head[i-1] != ' ' && head[i-1] != ',') {
		return "", start
	}
	if c, ok := s.lex.PostalCountry(code); ok {
		return c, i
	}
	return "", start
}

// commit claims the matched lines, walks back for street components and
// picks up a country line directly below
func (s *addressStage) commit(t *LineTable, rec *model.ContactRecord, addr model.Address, first, last int) {
	for i := first; i <= last; i++ {
		t.Claim(i, model.ClaimAddress)
	}

	collected := 0
walk:
	for j := first - 1; j >= 0 && collected < maxCollected; j-- {
		if t.Claimed(j) {
			switch t.Tag(j) {
			case model.ClaimPhone, model.ClaimEmail, model.ClaimMeta, model.ClaimURL:
				continue
			}
			break
		}

		l := t.Line(j)
		if s.orgLike(l) {
			break
		}
		text := strings.TrimRight(l.Text, " ,")
		switch {
		case poBox.MatchString(text) && addr.POBox == "":
			addr.POBox = text
		case extended.MatchString(text) && addr.Extended == "":
			addr.Extended = text
		case isStreet(text) && addr.Street == "":
			addr.Street = text
		default:
			break walk
		}
		t.ClaimBackfill(j)
		collected++
	}

	if next := last + 1; addr.Country == "" && next < t.Len() && !t.Claimed(next) {
		if c, ok := s.lex.Country(t.Text(next)); ok {
			addr.Country = c
			t.Claim(next, model.ClaimAddress)
		}
	}

	rec.AddAddress(addr)
}

// orgLike reports whether a line names a business rather than a place
func (s *addressStage) orgLike(l model.Line) bool {
	if l.HasAnchor(model.AnchorLegalForm) {
		return true
	}
	for _, w := range strings.Fields(l.Text) {
		if s.lex.IsBusinessToken(w) {
			return true
		}
	}
	return false
}

// isStreet reports whether text is shaped like a street with house number
func isStreet(text string) bool {
	text = strings.TrimRight(text, " ,")
	if len(strings.Fields(text)) > 6 {
		return false
	}
	if leadingNum.MatchString(text) && streetSuffix.MatchString(text) {
		return true
	}
	if !houseNumber.MatchString(text) {
		return false
	}
	return streetSuffix.MatchString(text) || streetPrefix.MatchString(text)
}

// splitTrailingCountry separates "Berlin Deutschland" into city and country
func (s *addressStage) splitTrailingCountry(city string) (string, string) {
	fields := strings.Fields(city)
	if len(fields) < 2 {
		return city, ""
	}
	if c, ok := s.lex.Country(fields[len(fields)-1]); ok {
		return strings.Join(fields[:len(fields)-1], " "), c
	}
	return city, ""
}

func cleanStreet(s string) string {
	return strings.Trim(strings.TrimSpace(s), ",;-– ")
}

package pipeline

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/ppiankov/cardex/internal/model"
)

// minCorrectionDistance is the smallest edit distance threshold for e-mail
// correction; longer local parts allow length/4
const minCorrectionDistance = 2

var (
	umlauts = strings.NewReplacer("ä", "ae", "ö", "oe", "ü", "ue", "ß", "ss")

	// Second-level labels that are not the organization ("example.co.uk")
	registryLabels = map[string]bool{"co": true, "com": true, "org": true, "net": true, "ac": true, "gov": true}
)

// assemble post-processes the record once every stage has run
func assemble(e *engine, rec *model.ContactRecord) {
	rec.FullName = trimName(e, rec.FullName)
	rec.Name.Given = trimName(e, rec.Name.Given)
	rec.Name.Middle = trimName(e, rec.Name.Middle)
	rec.Name.Family = trimName(e, rec.Name.Family)
	rec.Organization = trimOrg(rec.Organization)
	rec.Title = strings.TrimSpace(rec.Title)

	rec.Addresses = dedupAddresses(rec.Addresses)

	if e.cfg.CorrectEmails {
		correctEmails(e, rec)
	}

	if rec.Organization == "" {
		rec.Organization = orgFromEmail(e, rec.Emails)
	}
}

// trimName strips non-letters from both ends, keeping the period of a
// trailing initial ("Max M.") or name suffix ("Jr.")
func trimName(e *engine, s string) string {
	s = strings.TrimLeftFunc(s, func(r rune) bool { return !unicode.IsLetter(r) })
	for s != "" {
		r, size := utf8.DecodeLastRuneInString(s)
		if unicode.IsLetter(r) {
			break
		}
		if r == '.' && keepsPeriod(e, s) {
			break
		}
		s = s[:len(s)-size]
	}
	return s
}

func keepsPeriod(e *engine, s string) bool {
	fields := strings.Fields(s)
	last := strings.TrimSuffix(fields[len(fields)-1], ".")
	if utf8.RuneCountInString(last) == 1 {
		return true
	}
	return e.lex.IsNameSuffix(last+".") || e.lex.IsNamePrefix(last+".")
}

// trimOrg drops stray separators around the organization
func trimOrg(s string) string {
	s = strings.TrimLeftFunc(s, func(r rune) bool { return !unicode.IsLetter(r) && !unicode.IsDigit(r) })
	return strings.TrimRight(s, " ,;:-–|*•")
}

func dedupAddresses(addrs []model.Address) []model.Address {
	var out []model.Address
	seen := make(map[model.Address]bool, len(addrs))
	for _, a := range addrs {
		a.Street = strings.TrimSpace(a.Street)
		a.City = strings.TrimSpace(a.City)
		if seen[a] {
			continue
		}
		seen[a] = true
		out = append(out, a)
	}
	return out
}

// correctEmails repairs local parts that are a few edits away from a
// local part built from the resolved name
func correctEmails(e *engine, rec *model.ContactRecord) {
	candidates := localPartCandidates(rec.Name)
	if len(candidates) == 0 {
		return
	}

	var out []model.Email
	for _, em := range rec.Emails {
		if fixed, ok := correctLocal(em.Local(), candidates); ok {
			e.logger.Debug("corrected e-mail",
				zap.String("from", em.Value),
				zap.String("to", fixed+"@"+em.Domain()))
			em.Value = fixed + "@" + em.Domain()
		}
		if !containsEmail(out, em.Value) {
			out = append(out, em)
		}
	}
	rec.Emails = out
}

// correctLocal returns the closest candidate within the threshold. An exact
// match with any candidate leaves the local part alone.
func correctLocal(local string, candidates []string) (string, bool) {
	best, bestDist := "", -1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(local, c)
		if d == 0 {
			return "", false
		}
		threshold := max(minCorrectionDistance, len(c)/4)
		if d <= threshold && (bestDist < 0 || d < bestDist) {
			best, bestDist = c, d
		}
	}
	return best, best != ""
}

// localPartCandidates builds first.last, last.first, firstlast and f.last
func localPartCandidates(n model.NameParts) []string {
	first := asciiFold(n.Given)
	last := strings.ReplaceAll(asciiFold(n.Family), " ", "")
	if first == "" || last == "" {
		return nil
	}
	return []string{
		first + "." + last,
		last + "." + first,
		first + last,
		string([]rune(first)[:1]) + "." + last,
	}
}

// asciiFold lower-cases, transliterates umlauts and drops other diacritics
func asciiFold(s string) string {
	s = umlauts.Replace(strings.ToLower(strings.TrimSpace(s)))
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}

// orgFromEmail derives an organization from the first work e-mail domain
func orgFromEmail(e *engine, emails []model.Email) string {
	title := cases.Title(language.German)
	for _, em := range emails {
		if em.Type != model.EmailWork || e.lex.IsConsumerDomain(em.Domain()) {
			continue
		}
		labels := strings.Split(em.Domain(), ".")
		if len(labels) < 2 {
			continue
		}
		label := labels[len(labels)-2]
		if registryLabels[label] && len(labels) >= 3 {
			label = labels[len(labels)-3]
		}
		if label == "" || e.lex.IsGenericWord(label) {
			continue
		}
		return title.String(label)
	}
	return ""
}

func containsEmail(list []model.Email, value string) bool {
	for _, e := range list {
		if e.Value == value {
			return true
		}
	}
	return false
}

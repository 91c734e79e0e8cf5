// Package normalize cleans raw contact text before line segmentation.
// Every rule is locally scoped so correctly formed text passes through
// unchanged.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/ppiankov/cardex/internal/lexicon"
)

var (
	separatorReplacer = strings.NewReplacer(
		"|", "\n", "•", "\n", "·", "\n", "▪", "\n", "●", "\n", "◦", "\n", "■", "\n",
	)

	columnGap = regexp.MustCompile(`[ \t\x{00A0}]{3,}`)

	// 3+ lone digits separated by single blanks: "0 3 0 1 2"
	spacedDigits = regexp.MustCompile(`\b\d(?:[ \t]\d){2,}\b`)

	labelTypos = strings.NewReplacer(
		"Te1:", "Tel:", "TeI:", "Tel:", "Tei:", "Tel:", "Te1.", "Tel.", "TeI.", "Tel.",
		"Telef0n", "Telefon", "Te1efon", "Telefon", "TeIefon", "Telefon",
		"Emial:", "Email:", "E-mial:", "E-Mail:", "E-Mial:", "E-Mail:", "Emai1:", "Email:",
		"E-Mai1:", "E-Mail:", "EmaiI:", "Email:", "E-MaiI:", "E-Mail:", "Emall:", "Email:",
		"Mobi1:", "Mobil:", "MobiI:", "Mobil:", "Ph0ne:", "Phone:", "Fax;", "Fax:",
		"Handv:", "Handy:", "0ffice:", "Office:",
	)

	// Labels after which letter-for-digit confusions are repaired
	phoneLabels = []string{
		"tel", "tel.", "tel:", "tel.:", "telefon", "telefon:", "fon", "fon:", "phone", "phone:",
		"fax", "fax:", "telefax", "telefax:", "mobil", "mobil:", "mobile", "mobile:", "handy", "handy:",
		"t", "t:", "m", "m:", "f", "f:",
	}

	digitUpper = regexp.MustCompile(`(\d)(\p{Lu}\p{Ll})`)
	lowerDigit = regexp.MustCompile(`(\p{Ll}{3,})(\d)`)
	upperDigit = regexp.MustCompile(`(\p{Lu}{3,})(\d)`)

	multiSpace = regexp.MustCompile(`[ \t\x{00A0}]+`)
)

// Normalizer applies the cleanup rules in a fixed order
type Normalizer struct {
	lex *lexicon.Lexicon
}

// New creates a normalizer gated by the given lexicon
func New(lex *lexicon.Lexicon) *Normalizer {
	if lex == nil {
		lex = lexicon.Default()
	}
	return &Normalizer{lex: lex}
}

// Normalize cleans raw text with the built-in lexicon
func Normalize(raw string) string {
	return New(nil).Normalize(raw)
}

// Normalize returns the cleaned text. It never fails; the result may
// contain more lines than the input.
func (n *Normalizer) Normalize(raw string) string {
	text := norm.NFC.String(raw)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	// (a) separators
	text = separatorReplacer.Replace(text)

	// (b) columns
	text = splitColumns(text)

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		line = n.destickify(line)               // (c)
		line = collapseDigits(line)             // (d)
		line = labelTypos.Replace(line)         // (e)
		line = fixDigitConfusions(line)         // (f)
		line = splitDigitLetterBoundaries(line) // (g)
		lines[i] = strings.TrimSpace(multiSpace.ReplaceAllString(line, " "))
	}

	return strings.Join(lines, "\n")
}

func splitColumns(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = columnGap.ReplaceAllString(strings.TrimSpace(line), "\n")
	}
	return strings.Join(lines, "\n")
}

// destickify splits "MaxMustermann" into "Max Mustermann" when the first
// joined segment is a known first name.
func (n *Normalizer) destickify(line string) string {
	fields := strings.Fields(line)
	changed := false
	for i, tok := range fields {
		if split, ok := n.splitCamel(tok); ok {
			fields[i] = split
			changed = true
		}
	}
	if !changed {
		return line
	}
	return strings.Join(fields, " ")
}

func (n *Normalizer) splitCamel(tok string) (string, bool) {
	runes := []rune(tok)
	if len(runes) < 4 || !unicode.IsUpper(runes[0]) {
		return "", false
	}
	for i := 1; i < len(runes)-1; i++ {
		if !unicode.IsLetter(runes[i]) {
			return "", false
		}
		if unicode.IsLower(runes[i-1]) && unicode.IsUpper(runes[i]) && unicode.IsLower(runes[i+1]) {
			first := string(runes[:i])
			if !n.lex.IsFirstName(first) {
				return "", false
			}
			return first + " " + string(runes[i:]), true
		}
	}
	return "", false
}

func collapseDigits(line string) string {
	return spacedDigits.ReplaceAllStringFunc(line, func(m string) string {
		return strings.Map(func(r rune) rune {
			if r == ' ' || r == '\t' {
				return -1
			}
			return r
		}, m)
	})
}

// fixDigitConfusions replaces O/o with 0 and l/I with 1 inside tokens that
// already contain a digit, or that follow a phone label.
func fixDigitConfusions(line string) string {
	fields := strings.Fields(line)
	changed := false
	afterLabel := false
	for i, tok := range fields {
		lower := strings.ToLower(tok)
		if isPhoneLabel(lower) {
			afterLabel = true
			continue
		}
		// "Tel:O3O" with the label glued on
		if label, rest, ok := splitGluedLabel(tok); ok && numberShaped(rest) {
			fields[i] = label + toDigits(rest)
			changed = true
			afterLabel = true
			continue
		}
		if !numberShaped(tok) {
			afterLabel = false
			continue
		}
		if containsDigit(tok) || afterLabel {
			fixed := toDigits(tok)
			if fixed != tok {
				fields[i] = fixed
				changed = true
			}
		}
	}
	if !changed {
		return line
	}
	return strings.Join(fields, " ")
}

func isPhoneLabel(lower string) bool {
	for _, l := range phoneLabels {
		if lower == l {
			return true
		}
	}
	return false
}

func splitGluedLabel(tok string) (string, string, bool) {
	idx := strings.IndexAny(tok, ":")
	if idx <= 0 || idx == len(tok)-1 {
		return "", "", false
	}
	if !isPhoneLabel(strings.ToLower(tok[:idx+1])) {
		return "", "", false
	}
	return tok[:idx+1], tok[idx+1:], true
}

// numberShaped reports whether tok only holds digits, digit look-alikes and
// phone punctuation, with at least one real digit or look-alike.
func numberShaped(tok string) bool {
	if tok == "" {
		return false
	}
	lookalikes := 0
	digits := 0
	for _, r := range tok {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == 'O' || r == 'o' || r == 'l' || r == 'I':
			lookalikes++
		case strings.ContainsRune("+-/().", r):
		default:
			return false
		}
	}
	// a lone "I" or "o" is a word, not a number
	if digits == 0 && lookalikes < 2 {
		return false
	}
	return digits+lookalikes > 0
}

func containsDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}

func toDigits(tok string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case 'O', 'o':
			return '0'
		case 'l', 'I':
			return '1'
		}
		return r
	}, tok)
}

// splitDigitLetterBoundaries separates "10115Berlin" and "Musterstraße1".
// Tokens that look like e-mail addresses or URLs are left alone.
func splitDigitLetterBoundaries(line string) string {
	fields := strings.Fields(line)
	changed := false
	for i, tok := range fields {
		if strings.ContainsAny(tok, "@/") || strings.HasPrefix(strings.ToLower(tok), "www.") {
			continue
		}
		fixed := digitUpper.ReplaceAllString(tok, "$1 $2")
		fixed = lowerDigit.ReplaceAllString(fixed, "$1 $2")
		fixed = upperDigit.ReplaceAllString(fixed, "$1 $2")
		if fixed != tok {
			fields[i] = fixed
			changed = true
		}
	}
	if !changed {
		return line
	}
	return strings.Join(fields, " ")
}

// Lines splits normalized text into non-empty lines
func Lines(text string) []string {
	var out []string
	for _, l := range strings.Split(text, "\n") {
		l = strings.TrimSpace(l)
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}

package score

import (
	"strings"
	"unicode"

	"github.com/ppiankov/cardex/internal/lexicon"
)

// DefaultNameThreshold is the likelihood above which a line is taken as a name
const DefaultNameThreshold = 0.5

// Weights of the name signals; they sum to 1
const (
	capitalizationWeight = 0.5
	firstNameWeight      = 0.3
	shortLineWeight      = 0.2
)

// NameScorer rates how much a line looks like a person's name
type NameScorer struct {
	lex *lexicon.Lexicon
}

// NewNameScorer creates a name scorer over the given lexicon
func NewNameScorer(lex *lexicon.Lexicon) *NameScorer {
	if lex == nil {
		lex = lexicon.Default()
	}
	return &NameScorer{lex: lex}
}

// Likelihood returns a confidence in [0,1] that line is a person's name.
// Digits, blacklisted generic words, business tokens, no capitalized word
// or a word count outside 2-6 give 0.
func (s *NameScorer) Likelihood(line string) float64 {
	words := strings.Fields(line)
	if len(words) < 2 || len(words) > 6 {
		return 0
	}

	capitalized := 0
	knownFirst := false
	for _, w := range words {
		if strings.ContainsFunc(w, unicode.IsDigit) {
			return 0
		}
		if s.lex.IsGenericWord(w) || s.lex.IsBusinessToken(w) {
			return 0
		}
		if strings.ContainsAny(w, "@:/") {
			return 0
		}
		if isCapitalized(w) || s.lex.IsNameParticle(w) || s.lex.IsNamePrefix(w) {
			capitalized++
		}
		if s.lex.IsFirstName(strings.Trim(w, ",.")) {
			knownFirst = true
		}
	}
	if capitalized == 0 {
		return 0
	}

	score := capitalizationWeight * float64(capitalized) / float64(len(words))
	if knownFirst {
		score += firstNameWeight
	}
	switch {
	case len(words) <= 3:
		score += shortLineWeight
	case len(words) == 4:
		score += shortLineWeight / 2
	}
	return min(score, 1)
}

// isCapitalized reports whether the first letter of w is upper case
func isCapitalized(w string) bool {
	for _, r := range w {
		if unicode.IsLetter(r) {
			return unicode.IsUpper(r)
		}
	}
	return false
}

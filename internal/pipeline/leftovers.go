package pipeline

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ppiankov/cardex/internal/model"
)

// minOrgRunes is the shortest line accepted as a leftover organization
const minOrgRunes = 4

var fillerPhrase = regexp.MustCompile(`(?i)^(?:firma|company|unternehmen|anbieter|herausgeber|betreiber|diensteanbieter|name|anschrift|adresse|address)\s*:?\s*`)

// leftoverStage fills organization and name from what no other stage took
type leftoverStage struct {
	*engine
}

func newLeftoverStage(e *engine) *leftoverStage {
	return &leftoverStage{engine: e}
}

func (s *leftoverStage) Name() string { return "leftovers" }

func (s *leftoverStage) Claim(t *LineTable, rec *model.ContactRecord) {
	if rec.Organization == "" {
		for _, i := range t.Unclaimed() {
			// a label whose value sits on the next line
			if strings.HasSuffix(strings.TrimSpace(t.Text(i)), ":") {
				continue
			}
			org := cleanLeftover(t.Text(i))
			if utf8.RuneCountInString(org) < minOrgRunes || !strings.ContainsFunc(org, unicode.IsLetter) {
				continue
			}
			rec.SetOrganization(org)
			t.Claim(i, model.ClaimOrg)
			break
		}
	}

	if rec.FullName == "" {
		for _, i := range t.Unclaimed() {
			text := strings.TrimSpace(t.Text(i))
			if len(strings.Fields(text)) < 2 || strings.ContainsFunc(text, unicode.IsDigit) {
				continue
			}
			rec.SetFullName(text, splitName(s.lex, text))
			t.Claim(i, model.ClaimName)
			break
		}
	}
}

// cleanLeftover strips filler labels and trailing punctuation or digits
func cleanLeftover(text string) string {
	text = fillerPhrase.ReplaceAllString(strings.TrimSpace(text), "")
	text = stripTrailingNumbers(text)
	return strings.TrimRight(text, " ,;:-–|")
}

package pipeline

import (
	"strings"

	"github.com/ppiankov/cardex/internal/model"
)

// companyStage takes the first line carrying a legal form or industry keyword
type companyStage struct {
	*engine
	reps *keywordMatcher
}

func newCompanyStage(e *engine) *companyStage {
	return &companyStage{
		engine: e,
		reps:   newKeywordMatcher(e.lex.RepresentativeKeywords()),
	}
}

func (s *companyStage) Name() string { return "company" }

func (s *companyStage) Claim(t *LineTable, rec *model.ContactRecord) {
	if rec.Organization != "" {
		return
	}
	for _, i := range t.Unclaimed() {
		l := t.Line(i)
		text := strings.TrimSpace(l.Text)
		body := trimLabel(text)
		if !s.legalFormIn(l, len(l.Text)-len(body)) {
			continue
		}
		org := stripTrailingNumbers(body)
		if rec.SetOrganization(org) {
			t.Claim(i, model.ClaimOrg)
			return
		}
	}
}

// legalFormIn reports a legal-form anchor at or after from that is not part
// of a label such as "Ansprechpartner"
func (s *companyStage) legalFormIn(l model.Line, from int) bool {
	labelStart, labelEnd, hasLabel := s.reps.Find(l.Text)
	for _, a := range l.AnchorsOf(model.AnchorLegalForm) {
		if a.Start < from {
			continue
		}
		if hasLabel && a.Start < labelEnd && labelStart < a.End {
			continue
		}
		return true
	}
	return false
}

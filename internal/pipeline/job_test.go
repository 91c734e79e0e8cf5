package pipeline

import (
	"slices"
	"testing"

	"github.com/ppiankov/cardex/internal/model"
)

func TestJobStage_Title(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantTitle string
		wantName  string
	}{
		{"label before name", "Geschäftsführer: Max Mustermann", "Geschäftsführer", "Max Mustermann"},
		{"name before role", "Max Mustermann, CEO", "CEO", "Max Mustermann"},
		{"role alone", "Vertriebsleiter\nErika Musterfrau", "Vertriebsleiter", "Erika Musterfrau"},
		{"legal form is not a title", "Manager Holding GmbH", "", ""},
		{"prose", "Der Geschäftsführer ist für alle Inhalte dieser Seite allein verantwortlich", "", ""},
	}

	p := newTestPipeline()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := p.Parse(tt.input).Record
			if rec.Title != tt.wantTitle {
				t.Errorf("title = %q, want %q", rec.Title, tt.wantTitle)
			}
			if tt.wantName != "" && rec.FullName != tt.wantName {
				t.Errorf("name = %q, want %q", rec.FullName, tt.wantName)
			}
		})
	}
}

func TestJobStage_RoleLineStaysJob(t *testing.T) {
	res := newTestPipeline().Parse("Max Mustermann, CEO")
	if res.Lines[0].Tag != model.ClaimJob {
		t.Errorf("tag = %v, want JOB", res.Lines[0].Tag)
	}
}

func TestJobStage_TaxIDs(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"vat id with spaces", "USt-IdNr.: DE 123 456 789", []string{"VAT ID: DE123456789"}},
		{"tax number", "Steuernummer: 12/345/67890", []string{"Tax number: 12/345/67890"}},
		{"value on next line", "USt-IdNr.:\nDE123456789", []string{"VAT ID: DE123456789"}},
		{"label without value", "Umsatzsteuer-ID: beantragt", nil},
	}

	p := newTestPipeline()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := p.Parse(tt.input)
			if !slices.Equal(res.Record.Notes, tt.want) {
				t.Errorf("notes = %v, want %v", res.Record.Notes, tt.want)
			}
			if len(res.Record.Phones) != 0 {
				t.Errorf("tax id read as phone: %+v", res.Record.Phones)
			}
			if tt.want == nil {
				return
			}
			for _, l := range res.Lines {
				if l.Tag != model.ClaimJob {
					t.Errorf("line %q tag = %v, want JOB", l.Text, l.Tag)
				}
			}
		})
	}
}

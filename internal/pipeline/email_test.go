package pipeline

import (
	"slices"
	"testing"

	"github.com/ppiankov/cardex/internal/model"
)

func TestFindEmails(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"plain", "E-Mail: max@musterfirma.de", []string{"max@musterfirma.de"}},
		{"lower-cased", "Max.Mustermann@Musterfirma.DE", []string{"max.mustermann@musterfirma.de"}},
		{"bracketed at and dot", "max [at] musterfirma [dot] de", []string{"max@musterfirma.de"}},
		{"parenthesized at", "max (at) musterfirma.de", []string{"max@musterfirma.de"}},
		{"digit in tld", "info@musterfirma.d3", []string{"info@musterfirma.de"}},
		{"two addresses", "info@musterfirma.de, max@musterfirma.de", []string{"info@musterfirma.de", "max@musterfirma.de"}},
		{"numeric domain", "a@10.00", nil},
		{"prose with at", "max at home", nil},
		{"price", "Preis: 10.00 EUR", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := findEmails(tt.text); !slices.Equal(got, tt.want) {
				t.Errorf("findEmails(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestEmailStage_TypesAndWebsite(t *testing.T) {
	rec := newTestPipeline().Parse("max@musterfirma.de\nprivat: max.mustermann@gmail.com\nwww.musterfirma.de").Record

	if len(rec.Emails) != 2 {
		t.Fatalf("expected 2 e-mails, got %+v", rec.Emails)
	}
	if rec.Emails[0].Type != model.EmailWork {
		t.Errorf("company address type = %s, want work", rec.Emails[0].Type)
	}
	if rec.Emails[1].Type != model.EmailHome {
		t.Errorf("gmail address type = %s, want home", rec.Emails[1].Type)
	}

	// the work domain and the explicit website are the same URL
	if len(rec.URLs) != 1 || rec.URLs[0].Value != "https://musterfirma.de" {
		t.Errorf("urls = %+v, want only https://musterfirma.de", rec.URLs)
	}
}

func TestFindURLs(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"www", "Web: www.musterfirma.de", []string{"https://www.musterfirma.de"}},
		{"scheme and path", "https://Musterfirma.de/Kontakt", []string{"https://musterfirma.de/Kontakt"}},
		{"bare known tld", "musterfirma.de", []string{"https://musterfirma.de"}},
		{"bare unknown tld", "bericht.pdf", nil},
		{"version number", "Version 2.0", nil},
		{"abbreviation", "z.B. hier", nil},
		{"e-mail domain", "max@musterfirma.de", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := findURLs(tt.text); !slices.Equal(got, tt.want) {
				t.Errorf("findURLs(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestClassifyURL(t *testing.T) {
	tests := []struct {
		url  string
		want model.URLType
	}{
		{"https://www.linkedin.com/in/max", model.URLLinkedIn},
		{"https://de.linkedin.com/in/max", model.URLLinkedIn},
		{"https://www.xing.com/profile/Max_Mustermann", model.URLXing},
		{"https://x.com/max", model.URLTwitter},
		{"https://github.com/max", model.URLGitHub},
		{"https://notlinkedin.com", model.URLWork},
		{"https://musterfirma.de", model.URLWork},
	}
	for _, tt := range tests {
		if got := classifyURL(tt.url); got != tt.want {
			t.Errorf("classifyURL(%q) = %s, want %s", tt.url, got, tt.want)
		}
	}
}

func TestIsMeta(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"Impressum", true},
		{"Kontakt:", true},
		{"Amtsgericht Charlottenburg", true},
		{"HRB 12345 B", true},
		{"BIC: COBADEFFXXX", true},
		{"Mo-Fr: 9:00 - 17:00", true},
		{"Mit freundlichen Grüßen", true},
		{"Kontaktformular für Anfragen", false},
		{"Musterfirma GmbH", false},
		{"Max Mustermann", false},
	}
	for _, tt := range tests {
		if got := isMeta(tt.text); got != tt.want {
			t.Errorf("isMeta(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

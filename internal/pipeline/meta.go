package pipeline

import (
	"regexp"
	"strings"

	"github.com/ppiankov/cardex/internal/model"
)

// Boilerplate markers; a line containing any of them is noise
var metaPhrases = []string{
	// confidentiality notices
	"vertraulich", "confidential", "disclaimer", "haftungsausschluss", "haftung für inhalte",
	"haftung für links", "diese e-mail", "diese nachricht", "this e-mail", "this email", "this message",
	"intended recipient", "nicht der richtige adressat", "unbefugte weitergabe", "urheberrecht",
	"copyright", "alle rechte vorbehalten", "all rights reserved", "datenschutzerklärung",
	"privacy policy", "please consider the environment", "bitte denken sie an die umwelt",
	// register court and company registration
	"amtsgericht", "registergericht", "handelsregister", "registernummer", "registereintrag",
	"sitz der gesellschaft", "registered office", "company registration", "registered in",
	"aufsichtsbehörde", "berufsbezeichnung", "berufsrechtliche regelungen", "streitschlichtung",
	"online-streitbeilegung", "verbraucherstreitbeilegung",
	// bank details
	"iban", "bankverbindung", "kontonummer", "bankleitzahl", "kreditinstitut",
	// opening hours
	"öffnungszeiten", "sprechzeiten", "geschäftszeiten", "opening hours", "business hours",
	// mail client footers and sign-offs
	"gesendet von", "sent from my", "von meinem iphone", "mit freundlichen grüßen", "mit freundlichen grüssen",
	"freundliche grüße", "viele grüße", "beste grüße", "herzliche grüße", "best regards", "kind regards",
	"angaben gemäß", "angaben gem.",
}

// Navigation labels are only noise when they stand alone
var navLabels = map[string]bool{
	"impressum": true, "imprint": true, "kontakt": true, "contact": true, "home": true,
	"startseite": true, "anfahrt": true, "datenschutz": true, "menü": true, "menu": true,
	"navigation": true, "sitemap": true, "agb": true, "über uns": true, "about us": true,
	"legal notice": true, "karriere": true, "jobs": true, "news": true, "suche": true, "search": true,
	"zurück": true, "back": true, "nach oben": true, "top": true, "login": true, "cookies": true,
}

var (
	registerNumber = regexp.MustCompile(`\bH\s?R\s?[AB]\s?\d+`)
	bicCode        = regexp.MustCompile(`\b(?:BIC|SWIFT)\b`)
	openingHours   = regexp.MustCompile(`(?i)^(?:mo|di|mi|do|fr|sa|so|mon|tue|wed|thu|fri|sat|sun)[a-z]*\.?\s*(?:[-–]\s*(?:mo|di|mi|do|fr|sa|so|mon|tue|wed|thu|fri|sat|sun)[a-z]*\.?)?[:\s]+\d{1,2}(?:[:.]\d{2})?\s*(?:[-–]|bis|to)`)
)

// metaStage claims boilerplate so later stages never see it
type metaStage struct {
	*engine
}

func newMetaStage(e *engine) *metaStage {
	return &metaStage{engine: e}
}

func (s *metaStage) Name() string { return "meta" }

func (s *metaStage) Claim(t *LineTable, _ *model.ContactRecord) {
	for _, i := range t.Unclaimed() {
		if isMeta(t.Text(i)) {
			t.Claim(i, model.ClaimMeta)
		}
	}
}

func isMeta(text string) bool {
	lower := strings.ToLower(text)
	if navLabels[strings.TrimRight(lower, ":. ")] {
		return true
	}
	for _, p := range metaPhrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return registerNumber.MatchString(text) || bicCode.MatchString(text) || openingHours.MatchString(text)
}

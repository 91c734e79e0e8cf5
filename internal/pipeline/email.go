package pipeline

import (
	"regexp"
	"strings"

	"github.com/ppiankov/cardex/internal/model"
)

var (
	// TLD may carry OCR digits ("musterfirma.d3"); fixed up after matching
	looseEmail = regexp.MustCompile(`[A-Za-z0-9][A-Za-z0-9._%+\-]*@[A-Za-z0-9][A-Za-z0-9.\-]*\.[A-Za-z0-9]{2,}`)

	obfuscatedAt  = regexp.MustCompile(`(?i)\s*(?:\[\s*(?:at|ät)\s*\]|\(\s*(?:at|ät)\s*\)|\{\s*(?:at|ät)\s*\}|\s+at\s+)\s*`)
	obfuscatedDot = regexp.MustCompile(`(?i)\s*(?:\[\s*(?:dot|punkt)\s*\]|\(\s*(?:dot|punkt)\s*\)|\{\s*(?:dot|punkt)\s*\}|\s+dot\s+)\s*`)

	tldDigits = strings.NewReplacer("0", "o", "1", "l", "3", "e", "5", "s")
)

// emailStage extracts e-mail addresses, including obfuscated spellings
type emailStage struct {
	*engine
}

func newEmailStage(e *engine) *emailStage {
	return &emailStage{engine: e}
}

func (s *emailStage) Name() string { return "email" }

func (s *emailStage) Claim(t *LineTable, rec *model.ContactRecord) {
	for _, i := range t.Unclaimed() {
		found := findEmails(t.Text(i))
		if len(found) == 0 {
			continue
		}
		for _, addr := range found {
			e := model.Email{Type: model.EmailWork, Value: addr}
			if s.lex.IsConsumerDomain(e.Domain()) {
				e.Type = model.EmailHome
			}
			rec.AddEmail(e)

			if e.Type == model.EmailWork {
				rec.AddURL(model.URL{Type: model.URLWork, Value: "https://" + e.Domain()})
			}
		}
		t.Claim(i, model.ClaimEmail)
	}
}

// findEmails returns canonical addresses found in text
func findEmails(text string) []string {
	candidates := looseEmail.FindAllString(text, -1)
	if len(candidates) == 0 && looksObfuscated(text) {
		candidates = looseEmail.FindAllString(deobfuscate(text), -1)
	}

	var out []string
	for _, c := range candidates {
		if addr, ok := canonicalEmail(c); ok {
			out = append(out, addr)
		}
	}
	return out
}

func looksObfuscated(text string) bool {
	return obfuscatedAt.MatchString(text) && (strings.Contains(text, ".") || obfuscatedDot.MatchString(text))
}

func deobfuscate(text string) string {
	text = obfuscatedAt.ReplaceAllString(text, "@")
	return obfuscatedDot.ReplaceAllString(text, ".")
}

// canonicalEmail lower-cases the address and repairs digit-for-letter
// confusions in the top-level domain
func canonicalEmail(raw string) (string, bool) {
	addr := strings.ToLower(strings.Trim(raw, ".-"))
	local, domain, ok := strings.Cut(addr, "@")
	if !ok || local == "" {
		return "", false
	}

	dot := strings.LastIndex(domain, ".")
	if dot <= 0 {
		return "", false
	}
	// "10.00" is not a domain
	if !strings.ContainsAny(domain[dot+1:], "abcdefghijklmnopqrstuvwxyz") ||
		!strings.ContainsAny(domain[:dot], "abcdefghijklmnopqrstuvwxyz") {
		return "", false
	}
	tld := tldDigits.Replace(domain[dot+1:])
	for _, r := range tld {
		if r < 'a' || r > 'z' {
			return "", false
		}
	}
	return local + "@" + domain[:dot+1] + tld, true
}

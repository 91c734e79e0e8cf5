package pipeline

import (
	"regexp"
	"strings"

	"github.com/ppiankov/cardex/internal/model"
)

var (
	urlPattern = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?[a-z0-9äöü](?:[a-z0-9äöü\-]*[a-z0-9äöü])?(?:\.[a-z0-9](?:[a-z0-9\-]*[a-z0-9])?)*\.[a-z]{2,}(?:/[^\s,;<>"']*)?`)

	// Bare domains without scheme or "www." must end in one of these
	knownTLDs = map[string]bool{
		"de": true, "com": true, "net": true, "org": true, "eu": true, "at": true, "ch": true,
		"io": true, "info": true, "biz": true, "co": true, "uk": true, "fr": true, "it": true,
		"nl": true, "be": true, "lu": true, "dk": true, "pl": true, "es": true, "app": true,
		"dev": true, "me": true, "tv": true, "shop": true, "online": true, "berlin": true,
		"hamburg": true, "koeln": true, "bayern": true, "ai": true, "us": true, "ca": true,
	}

	socialDomains = []struct {
		domain string
		typ    model.URLType
	}{
		{"linkedin.com", model.URLLinkedIn},
		{"xing.com", model.URLXing},
		{"facebook.com", model.URLFacebook},
		{"fb.com", model.URLFacebook},
		{"instagram.com", model.URLInstagram},
		{"twitter.com", model.URLTwitter},
		{"x.com", model.URLTwitter},
		{"youtube.com", model.URLYouTube},
		{"youtu.be", model.URLYouTube},
		{"github.com", model.URLGitHub},
		{"tiktok.com", model.URLTikTok},
	}
)

// urlStage extracts web addresses and classifies social platforms
type urlStage struct {
	*engine
}

func newURLStage(e *engine) *urlStage {
	return &urlStage{engine: e}
}

func (s *urlStage) Name() string { return "url" }

func (s *urlStage) Claim(t *LineTable, rec *model.ContactRecord) {
	for _, i := range t.Unclaimed() {
		found := findURLs(t.Text(i))
		if len(found) == 0 {
			continue
		}
		for _, u := range found {
			rec.AddURL(model.URL{Type: classifyURL(u), Value: u})
		}
		t.Claim(i, model.ClaimURL)
	}
}

// findURLs returns URLs in text, normalized to carry a scheme
func findURLs(text string) []string {
	var out []string
	for _, loc := range urlPattern.FindAllStringIndex(text, -1) {
		start, end := loc[0], loc[1]
		// part of an e-mail address
		if (start > 0 && text[start-1] == '@') || (end < len(text) && text[end] == '@') {
			continue
		}
		raw := strings.TrimRight(text[start:end], ".)/")
		lower := strings.ToLower(raw)

		hasScheme := strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
		if !hasScheme && !strings.HasPrefix(lower, "www.") {
			host, _, _ := strings.Cut(lower, "/")
			tld := host[strings.LastIndex(host, ".")+1:]
			if !knownTLDs[tld] {
				continue
			}
		}

		if !hasScheme {
			raw = "https://" + raw
		}
		out = append(out, lowerHost(raw))
	}
	return out
}

// lowerHost case-folds scheme and host, leaving the path untouched
func lowerHost(u string) string {
	scheme, rest, _ := strings.Cut(u, "://")
	host, path, hasPath := strings.Cut(rest, "/")
	out := strings.ToLower(scheme) + "://" + strings.ToLower(host)
	if hasPath {
		out += "/" + path
	}
	return out
}

func classifyURL(u string) model.URLType {
	host := model.URLKey(u)
	host, _, _ = strings.Cut(host, "/")
	for _, s := range socialDomains {
		if host == s.domain || strings.HasSuffix(host, "."+s.domain) {
			return s.typ
		}
	}
	return model.URLWork
}

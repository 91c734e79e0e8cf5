// Package lexicon holds the static reference data the extraction engine
// consults: first names, cities, legal forms, role keywords, phone prefix
// tables and postal-code regions. A Lexicon is read-only after construction
// and may be shared between concurrent parses.
package lexicon

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/nyaruka/phonenumbers"
)

// germanCountryCode is the calling code the national tables describe
const germanCountryCode = 49

// Lexicon is an immutable set of lookup tables
type Lexicon struct {
	firstNames      map[string]bool
	cities          map[string]string // lower-case -> display form
	cityList        []string          // display forms, longest first
	legalForms      []string          // longest first
	industry        []string          // longest first
	roles           []string          // longest first
	representatives []string          // longest first
	mobilePrefixes  []string
	areaCodes       map[string]string
	postalPrefixes  map[string]string
	genericWords    map[string]bool
	consumerDomains map[string]bool
	countries       map[string]string
	postalCountries map[string]string
	usStates        map[string]bool
	namePrefixes    map[string]bool
	nameSuffixes    map[string]bool
	nameParticles   map[string]bool
	fingerprint     string
}

var (
	defaultOnce sync.Once
	defaultLex  *Lexicon
)

// Default returns the built-in lexicon, constructed once
func Default() *Lexicon {
	defaultOnce.Do(func() {
		defaultLex = build(tables{
			firstNames:      firstNames,
			cities:          cityNames,
			legalForms:      legalForms,
			industry:        industryKeywords,
			roles:           roleKeywords,
			representatives: representativeKeywords,
			mobilePrefixes:  mobilePrefixes,
			areaCodes:       areaCodes,
			postalPrefixes:  postalPrefixes,
			genericWords:    genericWords,
		})
	})
	return defaultLex
}

// tables is the raw material a Lexicon is built from
type tables struct {
	firstNames      []string
	cities          []string
	legalForms      []string
	industry        []string
	roles           []string
	representatives []string
	mobilePrefixes  []string
	areaCodes       map[string]string
	postalPrefixes  map[string]string
	genericWords    []string
}

func build(t tables) *Lexicon {
	l := &Lexicon{
		firstNames:      toSet(t.firstNames),
		cities:          make(map[string]string, len(t.cities)),
		legalForms:      longestFirst(t.legalForms),
		industry:        longestFirst(lowerAll(t.industry)),
		roles:           longestFirst(t.roles),
		representatives: longestFirst(t.representatives),
		mobilePrefixes:  append([]string(nil), t.mobilePrefixes...),
		areaCodes:       copyMap(t.areaCodes),
		postalPrefixes:  copyMap(t.postalPrefixes),
		genericWords:    toSet(t.genericWords),
		consumerDomains: toSet(consumerDomains),
		countries:       countryNames,
		postalCountries: postalCountryPrefixes,
		usStates:        toSet(lowerAll(usStates)),
		namePrefixes:    toSet(namePrefixes),
		nameSuffixes:    toSet(nameSuffixes),
		nameParticles:   toSet(nameParticles),
	}
	for _, c := range t.cities {
		key := strings.ToLower(c)
		if _, ok := l.cities[key]; !ok {
			l.cities[key] = c
			l.cityList = append(l.cityList, c)
		}
	}
	l.cityList = longestFirst(l.cityList)
	l.fingerprint = fingerprint(l.raw())
	return l
}

// fingerprint hashes the tables in a stable order
func fingerprint(t tables) string {
	h := sha256.New()
	lists := [][]string{
		t.firstNames, t.cities, t.legalForms, t.industry, t.roles,
		t.representatives, t.mobilePrefixes, t.genericWords,
	}
	for _, list := range lists {
		sorted := append([]string(nil), list...)
		sort.Strings(sorted)
		fmt.Fprintf(h, "%d\x00%s\x00", len(sorted), strings.Join(sorted, "\x00"))
	}
	for _, m := range []map[string]string{t.areaCodes, t.postalPrefixes} {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fmt.Fprintf(h, "%d\x00", len(keys))
		for _, k := range keys {
			fmt.Fprintf(h, "%s=%s\x00", k, m[k])
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Fingerprint identifies the table contents. Two lexicons with equal
// fingerprints give equal parses.
func (l *Lexicon) Fingerprint() string { return l.fingerprint }

// raw returns the tables this lexicon was built from, for merging
func (l *Lexicon) raw() tables {
	t := tables{
		legalForms:      append([]string(nil), l.legalForms...),
		industry:        append([]string(nil), l.industry...),
		roles:           append([]string(nil), l.roles...),
		representatives: append([]string(nil), l.representatives...),
		mobilePrefixes:  append([]string(nil), l.mobilePrefixes...),
		areaCodes:       copyMap(l.areaCodes),
		postalPrefixes:  copyMap(l.postalPrefixes),
		cities:          append([]string(nil), l.cityList...),
	}
	for n := range l.firstNames {
		t.firstNames = append(t.firstNames, n)
	}
	for w := range l.genericWords {
		t.genericWords = append(t.genericWords, w)
	}
	sort.Strings(t.firstNames)
	sort.Strings(t.genericWords)
	return t
}

// IsFirstName reports whether s is a known given name
func (l *Lexicon) IsFirstName(s string) bool {
	return l.firstNames[strings.ToLower(s)]
}

// City returns the display form of a known city
func (l *Lexicon) City(s string) (string, bool) {
	c, ok := l.cities[strings.ToLower(strings.TrimSpace(s))]
	return c, ok
}

// Cities returns all known city names, longest first
func (l *Lexicon) Cities() []string { return l.cityList }

// LegalForms returns strict legal-form designations, longest first
func (l *Lexicon) LegalForms() []string { return l.legalForms }

// IndustryKeywords returns lower-case industry keywords, longest first
func (l *Lexicon) IndustryKeywords() []string { return l.industry }

// RoleKeywords returns job-title keywords, longest first
func (l *Lexicon) RoleKeywords() []string { return l.roles }

// RepresentativeKeywords returns labels that introduce a person
func (l *Lexicon) RepresentativeKeywords() []string { return l.representatives }

// IsMobile reports whether a national-format number starts with a mobile prefix
func (l *Lexicon) IsMobile(national string) bool {
	for _, p := range l.mobilePrefixes {
		if strings.HasPrefix(national, p) {
			return true
		}
	}
	return false
}

// AreaCode returns the longest known area code prefixing a national-format
// number together with the city it serves. Codes missing from the table are
// looked up in the phone-number geocoding data.
func (l *Lexicon) AreaCode(national string) (code string, city string, ok bool) {
	for n := min(len(national), 6); n >= 3; n-- {
		if c, found := l.areaCodes[national[:n]]; found {
			return national[:n], c, true
		}
	}
	return l.geocodedAreaCode(national)
}

// geocodedAreaCode tries prefixes shortest first. German area codes are
// prefix-free, so the first prefix that names a place is the whole code.
func (l *Lexicon) geocodedAreaCode(national string) (string, string, bool) {
	if len(national) < 3 || national[0] != '0' || national[1] == '0' {
		return "", "", false
	}
	for n := 3; n <= min(len(national), 6); n++ {
		nsn, err := strconv.ParseUint(national[1:n], 10, 64)
		if err != nil {
			return "", "", false
		}
		cc := int32(germanCountryCode)
		num := &phonenumbers.PhoneNumber{CountryCode: &cc, NationalNumber: &nsn}
		place, err := phonenumbers.GetGeocodingForNumber(num, "de")
		if err != nil || place == "" {
			continue
		}
		// without a matching prefix the library falls back to the country name
		if _, isCountry := l.Country(place); isCountry {
			continue
		}
		return national[:n], place, true
	}
	return "", "", false
}

// PostalCity returns the city for a German postal code by longest prefix
func (l *Lexicon) PostalCity(postal string) (string, bool) {
	for n := min(len(postal), 3); n >= 2; n-- {
		if c, found := l.postalPrefixes[postal[:n]]; found {
			return c, true
		}
	}
	return "", false
}

// IsGenericWord reports whether w is a blacklisted non-name word
func (l *Lexicon) IsGenericWord(w string) bool {
	return l.genericWords[strings.ToLower(strings.Trim(w, ".,:;!?()"))]
}

// IsConsumerDomain reports whether domain belongs to a consumer mail provider
func (l *Lexicon) IsConsumerDomain(domain string) bool {
	return l.consumerDomains[strings.ToLower(domain)]
}

// Country returns the ISO code for a country name
func (l *Lexicon) Country(name string) (string, bool) {
	c, ok := l.countries[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// PostalCountry returns the ISO code for a postal letter prefix ("D", "CH")
func (l *Lexicon) PostalCountry(prefix string) (string, bool) {
	c, ok := l.postalCountries[strings.ToUpper(prefix)]
	return c, ok
}

// IsUSState reports whether s is a US state abbreviation
func (l *Lexicon) IsUSState(s string) bool {
	return l.usStates[strings.ToLower(s)]
}

// IsNamePrefix reports whether tok is an academic or honorific prefix
func (l *Lexicon) IsNamePrefix(tok string) bool {
	return l.namePrefixes[strings.ToLower(tok)]
}

// IsNameSuffix reports whether tok is a generational or degree suffix
func (l *Lexicon) IsNameSuffix(tok string) bool {
	return l.nameSuffixes[strings.ToLower(strings.TrimRight(tok, ","))]
}

// IsNameParticle reports whether tok is a family-name particle ("von")
func (l *Lexicon) IsNameParticle(tok string) bool {
	return l.nameParticles[tok]
}

// IsBusinessToken reports whether a word is a legal-form or industry token
func (l *Lexicon) IsBusinessToken(w string) bool {
	trimmed := strings.Trim(w, ",;:()")
	for _, f := range l.legalForms {
		if trimmed == f {
			return true
		}
	}
	lower := strings.ToLower(trimmed)
	for _, k := range l.industry {
		if strings.HasSuffix(lower, k) && len(lower) >= len(k) {
			return true
		}
	}
	return false
}

func toSet(items []string) map[string]bool {
	m := make(map[string]bool, len(items))
	for _, s := range items {
		m[strings.ToLower(s)] = true
	}
	return m
}

func lowerAll(items []string) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = strings.ToLower(s)
	}
	return out
}

func copyMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// longestFirst returns a deduplicated copy sorted by length, then lexically
func longestFirst(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, s := range items {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}

// SameCity reports whether two city names refer to the same place.
// "Freiburg" matches "Freiburg im Breisgau" and "Halle" matches "Halle (Saale)".
func SameCity(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	if a == b {
		return true
	}
	if len(a) > len(b) {
		a, b = b, a
	}
	return strings.HasPrefix(b, a+" ")
}

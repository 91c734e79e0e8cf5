package lexicon

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidOverrides is returned when an overrides file has malformed entries
var ErrInvalidOverrides = errors.New("invalid lexicon overrides")

// Overrides extends the built-in tables; entries are added, never removed
type Overrides struct {
	FirstNames       []string          `yaml:"first_names,omitempty"`
	Cities           []string          `yaml:"cities,omitempty"`
	LegalForms       []string          `yaml:"legal_forms,omitempty"`
	IndustryKeywords []string          `yaml:"industry_keywords,omitempty"`
	RoleKeywords     []string          `yaml:"role_keywords,omitempty"`
	GenericWords     []string          `yaml:"generic_words,omitempty"`
	MobilePrefixes   []string          `yaml:"mobile_prefixes,omitempty"`
	AreaCodes        map[string]string `yaml:"area_codes,omitempty"`
	PostalPrefixes   map[string]string `yaml:"postal_prefixes,omitempty"`
}

// LoadOverrides reads and validates an overrides YAML file
func LoadOverrides(path string) (*Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read overrides: %w", err)
	}

	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("parse overrides %s: %w", path, err)
	}

	if err := o.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &o, nil
}

// Validate checks that numeric tables only contain digit keys
func (o *Overrides) Validate() error {
	for code := range o.AreaCodes {
		if !isDigits(code) || !strings.HasPrefix(code, "0") {
			return fmt.Errorf("%w: area code %q must be digits with a leading 0", ErrInvalidOverrides, code)
		}
	}
	for _, p := range o.MobilePrefixes {
		if !isDigits(p) || !strings.HasPrefix(p, "0") {
			return fmt.Errorf("%w: mobile prefix %q must be digits with a leading 0", ErrInvalidOverrides, p)
		}
	}
	for prefix := range o.PostalPrefixes {
		if !isDigits(prefix) || len(prefix) < 2 || len(prefix) > 3 {
			return fmt.Errorf("%w: postal prefix %q must be 2-3 digits", ErrInvalidOverrides, prefix)
		}
	}
	return nil
}

// Merge returns a new Lexicon with the overrides added; l is unchanged
func (l *Lexicon) Merge(o *Overrides) *Lexicon {
	if o == nil {
		return l
	}

	t := l.raw()
	t.firstNames = append(t.firstNames, o.FirstNames...)
	t.cities = append(t.cities, o.Cities...)
	t.legalForms = append(t.legalForms, o.LegalForms...)
	t.industry = append(t.industry, o.IndustryKeywords...)
	t.roles = append(t.roles, o.RoleKeywords...)
	t.genericWords = append(t.genericWords, o.GenericWords...)
	t.mobilePrefixes = append(t.mobilePrefixes, o.MobilePrefixes...)
	for k, v := range o.AreaCodes {
		t.areaCodes[k] = v
	}
	for k, v := range o.PostalPrefixes {
		t.postalPrefixes[k] = v
	}

	return build(t)
}

// Load returns the default lexicon merged with the overrides file at path.
// An empty path yields the default lexicon.
func Load(path string) (*Lexicon, error) {
	if path == "" {
		return Default(), nil
	}
	o, err := LoadOverrides(path)
	if err != nil {
		return nil, err
	}
	return Default().Merge(o), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

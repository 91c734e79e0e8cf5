package model

import "strings"

// ContactRecord is the structured result of one parse.
// Scalar fields are only filled while empty; list fields append with
// deduplication by normalized value.
type ContactRecord struct {
	FullName     string    `json:"full_name,omitempty"`
	Name         NameParts `json:"name"`
	Organization string    `json:"organization,omitempty"`
	Title        string    `json:"title,omitempty"`

	Phones    []Phone   `json:"phones,omitempty"`
	Emails    []Email   `json:"emails,omitempty"`
	URLs      []URL     `json:"urls,omitempty"`
	Addresses []Address `json:"addresses,omitempty"`
	Notes     []string  `json:"notes,omitempty"`
}

// NameParts is the structured form of a person's name
type NameParts struct {
	Prefix string `json:"prefix,omitempty"` // Academic or honorific prefix (e.g., "Dr.")
	Given  string `json:"given,omitempty"`
	Middle string `json:"middle,omitempty"`
	Family string `json:"family,omitempty"`
	Suffix string `json:"suffix,omitempty"` // e.g., "MBA", "Jr."
}

// IsZero reports whether no name part is set
func (n NameParts) IsZero() bool {
	return n == NameParts{}
}

// PhoneType classifies a phone number
type PhoneType string

const (
	PhoneMobile              PhoneType = "mobile"
	PhoneLandline            PhoneType = "landline"             // Area code confirmed by document evidence
	PhoneLandlineProvisional PhoneType = "landline_provisional" // Area code known but unconfirmed
	PhoneFax                 PhoneType = "fax"
	PhoneOther               PhoneType = "other"
)

// Phone is a typed phone number in E.164 form
type Phone struct {
	Type       PhoneType `json:"type"`
	Value      string    `json:"value"`
	Confidence float64   `json:"confidence"`
}

// EmailType classifies an e-mail address
type EmailType string

const (
	EmailWork EmailType = "work"
	EmailHome EmailType = "home" // Consumer mail provider
)

// Email is a typed, canonical (lower-case) e-mail address
type Email struct {
	Type  EmailType `json:"type"`
	Value string    `json:"value"`
}

// Local returns the part before '@'
func (e Email) Local() string {
	local, _, _ := strings.Cut(e.Value, "@")
	return local
}

// Domain returns the part after '@'
func (e Email) Domain() string {
	_, domain, _ := strings.Cut(e.Value, "@")
	return domain
}

// URLType classifies a URL; social platforms get their own type
type URLType string

const (
	URLWork      URLType = "work"
	URLLinkedIn  URLType = "linkedin"
	URLXing      URLType = "xing"
	URLFacebook  URLType = "facebook"
	URLInstagram URLType = "instagram"
	URLTwitter   URLType = "twitter"
	URLYouTube   URLType = "youtube"
	URLGitHub    URLType = "github"
	URLTikTok    URLType = "tiktok"
)

// URL is a typed web address
type URL struct {
	Type  URLType `json:"type"`
	Value string  `json:"value"`
}

// Address is a structured postal address
type Address struct {
	Type       string `json:"type"`
	POBox      string `json:"po_box,omitempty"`
	Extended   string `json:"extended,omitempty"` // Floor, building, c/o
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	Region     string `json:"region,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country,omitempty"`
}

// NewContactRecord creates an empty record for a single parse
func NewContactRecord() *ContactRecord {
	return &ContactRecord{}
}

// SetFullName sets the name fields if no name is set yet
func (r *ContactRecord) SetFullName(full string, parts NameParts) bool {
	if r.FullName != "" || strings.TrimSpace(full) == "" {
		return false
	}
	r.FullName = strings.TrimSpace(full)
	r.Name = parts
	return true
}

// SetOrganization sets the organization if it is still empty
func (r *ContactRecord) SetOrganization(org string) bool {
	if r.Organization != "" || strings.TrimSpace(org) == "" {
		return false
	}
	r.Organization = strings.TrimSpace(org)
	return true
}

// SetTitle sets the job title if it is still empty
func (r *ContactRecord) SetTitle(title string) bool {
	if r.Title != "" || strings.TrimSpace(title) == "" {
		return false
	}
	r.Title = strings.TrimSpace(title)
	return true
}

// AddPhone appends a phone unless the same E.164 value is already present
func (r *ContactRecord) AddPhone(p Phone) bool {
	for _, existing := range r.Phones {
		if existing.Value == p.Value {
			return false
		}
	}
	r.Phones = append(r.Phones, p)
	return true
}

// AddEmail appends an e-mail unless it is already present (case-insensitive)
func (r *ContactRecord) AddEmail(e Email) bool {
	e.Value = strings.ToLower(strings.TrimSpace(e.Value))
	for _, existing := range r.Emails {
		if existing.Value == e.Value {
			return false
		}
	}
	r.Emails = append(r.Emails, e)
	return true
}

// AddURL appends a URL unless one with the same host and path is present
func (r *ContactRecord) AddURL(u URL) bool {
	key := URLKey(u.Value)
	for _, existing := range r.URLs {
		if URLKey(existing.Value) == key {
			return false
		}
	}
	r.URLs = append(r.URLs, u)
	return true
}

// AddAddress appends an address unless an identical one is present
func (r *ContactRecord) AddAddress(a Address) bool {
	for _, existing := range r.Addresses {
		if existing == a {
			return false
		}
	}
	r.Addresses = append(r.Addresses, a)
	return true
}

// AddNote appends a free-text note unless it is already present
func (r *ContactRecord) AddNote(note string) bool {
	note = strings.TrimSpace(note)
	if note == "" {
		return false
	}
	for _, existing := range r.Notes {
		if existing == note {
			return false
		}
	}
	r.Notes = append(r.Notes, note)
	return true
}

// URLKey normalizes a URL for deduplication: scheme, "www." and
// trailing slashes are ignored, host is case-folded.
func URLKey(raw string) string {
	s := strings.TrimSpace(raw)
	lower := strings.ToLower(s)
	for _, scheme := range []string{"https://", "http://"} {
		if strings.HasPrefix(lower, scheme) {
			s = s[len(scheme):]
			lower = lower[len(scheme):]
			break
		}
	}
	lower = strings.TrimPrefix(lower, "www.")
	host, path, _ := strings.Cut(lower, "/")
	path = strings.TrimRight(path, "/")
	if path == "" {
		return host
	}
	return host + "/" + path
}

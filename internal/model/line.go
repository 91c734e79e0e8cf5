package model

// ClaimTag records which extractor stage accounted for a line
type ClaimTag int

const (
	ClaimNone ClaimTag = iota
	ClaimEmail
	ClaimPhone
	ClaimURL
	ClaimAddress
	ClaimJob
	ClaimMeta
	ClaimOrg
	ClaimName
)

func (t ClaimTag) String() string {
	switch t {
	case ClaimEmail:
		return "EMAIL"
	case ClaimPhone:
		return "PHONE"
	case ClaimURL:
		return "URL"
	case ClaimAddress:
		return "ADDRESS"
	case ClaimJob:
		return "JOB"
	case ClaimMeta:
		return "META"
	case ClaimOrg:
		return "ORG"
	case ClaimName:
		return "NAME"
	default:
		return ""
	}
}

// MarshalText writes the tag name so JSON output stays readable
func (t ClaimTag) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText parses a tag name; an empty or unknown name is ClaimNone
func (t *ClaimTag) UnmarshalText(b []byte) error {
	*t = ClaimNone
	for c := ClaimEmail; c <= ClaimName; c++ {
		if c.String() == string(b) {
			*t = c
			break
		}
	}
	return nil
}

// BoundingBox is the layout position of an OCR line
type BoundingBox struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Line is one logical row of input
type Line struct {
	Index    int           `json:"index"`
	Original string        `json:"original"`
	Text     string        `json:"text"` // Normalized text
	Claimed  bool          `json:"claimed"`
	Tag      ClaimTag      `json:"tag,omitempty"`
	Box      *BoundingBox  `json:"box,omitempty"` // Only set for OCR input
	Anchors  []AnchorMatch `json:"anchors,omitempty"`
}

// HasAnchor reports whether the line carries an anchor of the given type
func (l Line) HasAnchor(t AnchorType) bool {
	for _, a := range l.Anchors {
		if a.Type == t {
			return true
		}
	}
	return false
}

// AnchorsOf returns the line's anchors of the given type, in offset order
func (l Line) AnchorsOf(t AnchorType) []AnchorMatch {
	var out []AnchorMatch
	for _, a := range l.Anchors {
		if a.Type == t {
			out = append(out, a)
		}
	}
	return out
}

// OCRLine is a positioned line as delivered by an OCR engine
type OCRLine struct {
	Text string      `json:"text"`
	Box  BoundingBox `json:"box"`
}

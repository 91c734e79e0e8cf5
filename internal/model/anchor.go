package model

// AnchorType classifies a structural landmark found in a line
type AnchorType string

const (
	AnchorPostalCode AnchorType = "POSTAL_CODE"
	AnchorCity       AnchorType = "CITY"
	AnchorAreaCode   AnchorType = "AREA_CODE"
	AnchorLegalForm  AnchorType = "LEGAL_FORM"
	AnchorEmail      AnchorType = "EMAIL"

	// AnchorKeyword marks a field label ("Tel:", "Geschäftsführer").
	// Stages create keyword anchors for scoring; the detector never emits them.
	AnchorKeyword AnchorType = "KEYWORD"
)

// AnchorMatch is a typed, positioned piece of evidence.
// Start and End are byte offsets into the normalized line text.
type AnchorMatch struct {
	Type       AnchorType `json:"type"`
	Value      string     `json:"value"`
	Start      int        `json:"start"`
	End        int        `json:"end"`
	Confidence float64    `json:"confidence"`
}

// CandidateType is the field a candidate span may become
type CandidateType string

const (
	CandidatePhone   CandidateType = "PHONE"
	CandidateAddress CandidateType = "ADDRESS"
	CandidateName    CandidateType = "NAME"
)

// Candidate is a span a stage is considering before it commits a field
type Candidate struct {
	Type  CandidateType
	Start int
	End   int
	Value string
}

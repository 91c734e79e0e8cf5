package score

import (
	"math"

	"github.com/ppiankov/cardex/internal/model"
)

const (
	// DefaultHalfScoreDistance is the distance in characters at which an
	// anchor contributes half its weight
	DefaultHalfScoreDistance = 50.0

	// DefaultFollowDiscount applies to anchors that follow the candidate
	DefaultFollowDiscount = 0.8
)

// relevance lists which anchor types count as evidence for which candidates
var relevance = map[model.CandidateType][]model.AnchorType{
	model.CandidatePhone:   {model.AnchorAreaCode, model.AnchorKeyword},
	model.CandidateAddress: {model.AnchorPostalCode, model.AnchorCity},
	model.CandidateName:    {model.AnchorKeyword},
}

// ContextScorer rates how strongly nearby anchors support a candidate
type ContextScorer struct {
	halfDistance   float64
	followDiscount float64
}

// NewContextScorer creates a scorer; non-positive values select the defaults
func NewContextScorer(halfDistance, followDiscount float64) *ContextScorer {
	if halfDistance <= 0 {
		halfDistance = DefaultHalfScoreDistance
	}
	if followDiscount <= 0 || followDiscount > 1 {
		followDiscount = DefaultFollowDiscount
	}
	return &ContextScorer{
		halfDistance:   halfDistance,
		followDiscount: followDiscount,
	}
}

// Score returns the best single-anchor score in [0,1]. Anchors irrelevant to
// the candidate type contribute nothing regardless of distance.
func (s *ContextScorer) Score(c model.Candidate, anchors []model.AnchorMatch) float64 {
	best := 0.0
	for _, a := range anchors {
		if !Relevant(a.Type, c.Type) {
			continue
		}
		score := s.Proximity(Distance(c.Start, c.End, a.Start, a.End))
		if a.Start >= c.End {
			score *= s.followDiscount
		}
		if score > best {
			best = score
		}
	}
	return best
}

// Proximity maps a character distance to a smoothly decaying weight
func (s *ContextScorer) Proximity(distance int) float64 {
	ratio := float64(distance) / s.halfDistance
	return 1 / (1 + math.Pow(ratio, 2))
}

// Relevant reports whether an anchor type is evidence for a candidate type
func Relevant(a model.AnchorType, c model.CandidateType) bool {
	for _, t := range relevance[c] {
		if t == a {
			return true
		}
	}
	return false
}

// Distance is 0 for overlapping ranges, else the gap between them
func Distance(aStart, aEnd, bStart, bEnd int) int {
	if aStart < bEnd && bStart < aEnd {
		return 0
	}
	if bStart >= aEnd {
		return bStart - aEnd
	}
	return aStart - bEnd
}

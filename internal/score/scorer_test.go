package score

import (
	"math"
	"testing"

	"github.com/ppiankov/cardex/internal/model"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDistance(t *testing.T) {
	tests := []struct {
		aStart, aEnd, bStart, bEnd int
		want                       int
	}{
		{0, 5, 3, 8, 0},   // overlap
		{0, 5, 5, 8, 0},   // adjacent
		{0, 5, 10, 12, 5}, // b after a
		{10, 12, 0, 5, 5}, // b before a
	}

	for _, tt := range tests {
		if got := Distance(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd); got != tt.want {
			t.Errorf("Distance(%d,%d,%d,%d) = %d, want %d",
				tt.aStart, tt.aEnd, tt.bStart, tt.bEnd, got, tt.want)
		}
	}
}

func TestProximity_SmoothDecay(t *testing.T) {
	s := NewContextScorer(0, 0)

	if got := s.Proximity(0); !almostEqual(got, 1) {
		t.Errorf("expected 1 at distance 0, got %v", got)
	}
	if got := s.Proximity(50); !almostEqual(got, 0.5) {
		t.Errorf("expected 0.5 at half-score distance, got %v", got)
	}
	if got := s.Proximity(100); !almostEqual(got, 0.2) {
		t.Errorf("expected 0.2 at twice the half-score distance, got %v", got)
	}

	prev := 1.0
	for d := 1; d < 300; d += 7 {
		got := s.Proximity(d)
		if got >= prev || got <= 0 {
			t.Fatalf("proximity not strictly decreasing and positive at %d: %v", d, got)
		}
		prev = got
	}
}

func TestScore_RelevanceTable(t *testing.T) {
	s := NewContextScorer(50, 0.8)

	phone := model.Candidate{Type: model.CandidatePhone, Start: 10, End: 20}
	address := model.Candidate{Type: model.CandidateAddress, Start: 10, End: 20}
	name := model.Candidate{Type: model.CandidateName, Start: 10, End: 20}

	postal := model.AnchorMatch{Type: model.AnchorPostalCode, Start: 0, End: 5}
	area := model.AnchorMatch{Type: model.AnchorAreaCode, Start: 10, End: 13}
	keyword := model.AnchorMatch{Type: model.AnchorKeyword, Start: 5, End: 9}

	tests := []struct {
		name      string
		candidate model.Candidate
		anchors   []model.AnchorMatch
		want      float64
	}{
		{"area code supports phone", phone, []model.AnchorMatch{area}, 1},
		{"postal code ignored for phone", phone, []model.AnchorMatch{postal}, 0},
		{"postal code supports address", address, []model.AnchorMatch{postal}, 1 / (1 + 0.01)},
		{"area code ignored for address", address, []model.AnchorMatch{area}, 0},
		{"keyword supports name", name, []model.AnchorMatch{keyword}, 1 / (1 + 0.0004)},
		{"postal code ignored for name", name, []model.AnchorMatch{postal}, 0},
		{"no anchors", phone, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Score(tt.candidate, tt.anchors); !almostEqual(got, tt.want) {
				t.Errorf("Score = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScore_FollowingAnchorDiscounted(t *testing.T) {
	s := NewContextScorer(50, 0.8)
	c := model.Candidate{Type: model.CandidatePhone, Start: 10, End: 20}

	before := s.Score(c, []model.AnchorMatch{{Type: model.AnchorKeyword, Start: 0, End: 5}})
	after := s.Score(c, []model.AnchorMatch{{Type: model.AnchorKeyword, Start: 25, End: 30}})

	if !almostEqual(after, before*0.8) {
		t.Errorf("expected following anchor discounted by 0.8: before=%v after=%v", before, after)
	}
}

func TestScore_MaxNotAggregate(t *testing.T) {
	s := NewContextScorer(50, 0.8)
	c := model.Candidate{Type: model.CandidateAddress, Start: 100, End: 110}

	strong := model.AnchorMatch{Type: model.AnchorCity, Start: 111, End: 117}
	weak := []model.AnchorMatch{
		{Type: model.AnchorPostalCode, Start: 0, End: 5},
		{Type: model.AnchorPostalCode, Start: 300, End: 305},
		{Type: model.AnchorCity, Start: 400, End: 406},
	}

	alone := s.Score(c, []model.AnchorMatch{strong})
	mixed := s.Score(c, append(weak, strong))
	if !almostEqual(alone, mixed) {
		t.Errorf("weak anchors changed the score: alone=%v mixed=%v", alone, mixed)
	}
}

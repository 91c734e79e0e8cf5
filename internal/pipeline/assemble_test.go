package pipeline

import (
	"slices"
	"testing"

	"github.com/ppiankov/cardex/internal/model"
)

func TestTrimName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Max Mustermann", "Max Mustermann"},
		{"- Max Mustermann,", "Max Mustermann"},
		{"Max M.", "Max M."},
		{"Max Mustermann Jr.", "Max Mustermann Jr."},
		{"Max Mustermann.", "Max Mustermann"},
		{"\"Max Mustermann\"", "Max Mustermann"},
		{"", ""},
		{"123", ""},
	}

	e := newTestPipeline().engine
	for _, tt := range tests {
		if got := trimName(e, tt.in); got != tt.want {
			t.Errorf("trimName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLocalPartCandidates(t *testing.T) {
	got := localPartCandidates(model.NameParts{Given: "Jürgen", Family: "Müller"})
	want := []string{"juergen.mueller", "mueller.juergen", "juergenmueller", "j.mueller"}
	if !slices.Equal(got, want) {
		t.Errorf("candidates = %v, want %v", got, want)
	}

	if got := localPartCandidates(model.NameParts{Family: "Müller"}); got != nil {
		t.Errorf("candidates without given name = %v, want nil", got)
	}
}

func TestAsciiFold(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Zoë", "zoe"},
		{"José", "jose"},
		{"Straße", "strasse"},
		{"Öztürk", "oeztuerk"},
	}
	for _, tt := range tests {
		if got := asciiFold(tt.in); got != tt.want {
			t.Errorf("asciiFold(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCorrectLocal(t *testing.T) {
	candidates := []string{"max.mustermann", "mustermann.max", "maxmustermann", "m.mustermann"}

	tests := []struct {
		local  string
		want   string
		wantOK bool
	}{
		{"max.mustermamn", "max.mustermann", true},
		{"maxmustermam", "maxmustermann", true},
		{"m.mustermann", "", false},
		{"info", "", false},
		{"vertrieb", "", false},
	}
	for _, tt := range tests {
		got, ok := correctLocal(tt.local, candidates)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("correctLocal(%q) = %q, %v, want %q, %v", tt.local, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestDedupAddresses(t *testing.T) {
	addrs := []model.Address{
		{Street: "Musterstraße 1 ", City: "Berlin"},
		{Street: "Musterstraße 1", City: " Berlin"},
		{Street: "Musterweg 5", City: "Berlin"},
	}
	got := dedupAddresses(addrs)
	if len(got) != 2 {
		t.Errorf("dedupAddresses() = %+v, want 2 addresses", got)
	}
}

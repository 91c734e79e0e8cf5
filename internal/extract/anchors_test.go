package extract

import (
	"reflect"
	"testing"

	"github.com/ppiankov/cardex/internal/model"
)

func types(anchors []model.AnchorMatch) []model.AnchorType {
	out := make([]model.AnchorType, len(anchors))
	for i, a := range anchors {
		out[i] = a.Type
	}
	return out
}

func TestDetect_PostalAndCity(t *testing.T) {
	d := NewAnchorDetector(nil)

	anchors := d.Detect("10115 Berlin")
	want := []model.AnchorType{model.AnchorPostalCode, model.AnchorCity}
	if !reflect.DeepEqual(types(anchors), want) {
		t.Fatalf("expected %v, got %+v", want, anchors)
	}

	if anchors[0].Value != "10115" || anchors[0].Start != 0 || anchors[0].End != 5 {
		t.Errorf("unexpected postal anchor %+v", anchors[0])
	}
	if anchors[0].Confidence != 0.95 {
		t.Errorf("expected postal confidence 0.95, got %v", anchors[0].Confidence)
	}
	if anchors[1].Value != "Berlin" || anchors[1].Start != 6 || anchors[1].Confidence != 0.85 {
		t.Errorf("unexpected city anchor %+v", anchors[1])
	}
}

func TestDetect_PostalDigitBounds(t *testing.T) {
	d := NewAnchorDetector(nil)

	tests := []struct {
		text  string
		count int
	}{
		{"PLZ 1234", 1},
		{"PLZ 12345", 1},
		{"123", 0},
		{"123456", 0},
		{"a12345b", 1},
	}

	for _, tt := range tests {
		got := 0
		for _, a := range d.Detect(tt.text) {
			if a.Type == model.AnchorPostalCode {
				got++
			}
		}
		if got != tt.count {
			t.Errorf("%q: expected %d postal anchors, got %d", tt.text, tt.count, got)
		}
	}
}

func TestDetect_AreaCode(t *testing.T) {
	d := NewAnchorDetector(nil)

	anchors := d.Detect("Tel: 030 123456")
	if len(anchors) != 1 || anchors[0].Type != model.AnchorAreaCode {
		t.Fatalf("expected one area code anchor, got %+v", anchors)
	}
	if anchors[0].Value != "030" || anchors[0].Start != 5 || anchors[0].End != 8 {
		t.Errorf("unexpected area code anchor %+v", anchors[0])
	}

	// mid-number digits never start an area code
	for _, a := range d.Detect("Tel: 1030 55") {
		if a.Type == model.AnchorAreaCode {
			t.Errorf("unexpected area code anchor %+v", a)
		}
	}
}

func TestDetect_AreaCodeBeyondTable(t *testing.T) {
	d := NewAnchorDetector(nil)

	tests := []struct {
		text string
		want string
	}{
		{"Tel: 08031 123456", "08031"},
		{"Tel: 03303 123456", "03303"},
		{"Tel: 0800 1234567", ""},
	}
	for _, tt := range tests {
		got := ""
		for _, a := range d.Detect(tt.text) {
			if a.Type == model.AnchorAreaCode {
				got = a.Value
			}
		}
		if got != tt.want {
			t.Errorf("%q: area code anchor = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestDetect_PostalAreaCodeCollision(t *testing.T) {
	d := NewAnchorDetector(nil)

	// 03046 is a Cottbus postal code that begins with Berlin's 030
	anchors := d.Detect("03046 Cottbus")
	var postal, area bool
	for _, a := range anchors {
		switch a.Type {
		case model.AnchorPostalCode:
			postal = a.Value == "03046"
		case model.AnchorAreaCode:
			area = a.Value == "030"
		}
	}
	if !postal || !area {
		t.Errorf("expected both postal and area code anchors, got %+v", anchors)
	}
}

func TestDetect_CityWholeWord(t *testing.T) {
	d := NewAnchorDetector(nil)

	for _, text := range []string{"Berliner Straße 5", "Hallesche Str. 3", "Essener Weg"} {
		for _, a := range d.Detect(text) {
			if a.Type == model.AnchorCity {
				t.Errorf("%q: unexpected city anchor %+v", text, a)
			}
		}
	}

	anchors := d.Detect("60311 frankfurt am main")
	found := false
	for _, a := range anchors {
		if a.Type == model.AnchorCity {
			found = true
			if a.Value != "Frankfurt am Main" {
				t.Errorf("expected longest city match, got %q", a.Value)
			}
		}
	}
	if !found {
		t.Error("expected case-insensitive city anchor")
	}
}

func TestDetect_LegalForms(t *testing.T) {
	d := NewAnchorDetector(nil)

	tests := []struct {
		text  string
		value string
	}{
		{"Musterfirma GmbH", "GmbH"},
		{"Muster GmbH & Co. KG", "GmbH & Co. KG"},
		{"Zahnarztpraxis Dr. Weber", "Zahnarztpraxis"},
		{"Muster Consulting", "Consulting"},
		{"Acme Inc.", "Inc."},
	}

	for _, tt := range tests {
		var legal []model.AnchorMatch
		for _, a := range d.Detect(tt.text) {
			if a.Type == model.AnchorLegalForm {
				legal = append(legal, a)
			}
		}
		if len(legal) != 1 || legal[0].Value != tt.value {
			t.Errorf("%q: expected legal form %q, got %+v", tt.text, tt.value, legal)
		}
	}

	for _, text := range []string{"AGB lesen", "Max Bauer", "Tag der Arbeit"} {
		for _, a := range d.Detect(text) {
			if a.Type == model.AnchorLegalForm {
				t.Errorf("%q: unexpected legal form %+v", text, a)
			}
		}
	}
}

func TestDetect_Email(t *testing.T) {
	d := NewAnchorDetector(nil)

	anchors := d.Detect("E-Mail: max@musterfirma.de")
	if len(anchors) != 1 || anchors[0].Type != model.AnchorEmail {
		t.Fatalf("expected one email anchor, got %+v", anchors)
	}
	if anchors[0].Value != "max@musterfirma.de" || anchors[0].Confidence != 1.0 {
		t.Errorf("unexpected email anchor %+v", anchors[0])
	}
}

func TestDetect_Deterministic(t *testing.T) {
	d := NewAnchorDetector(nil)
	text := "Musterfirma GmbH, Musterstraße 1, 10115 Berlin, Tel 030 123456, info@musterfirma.de"

	first := d.Detect(text)
	for i := 0; i < 10; i++ {
		if got := d.Detect(text); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs:\n%+v\n%+v", i, got, first)
		}
	}

	for i := 1; i < len(first); i++ {
		if first[i].Start < first[i-1].Start {
			t.Errorf("anchors not sorted by start: %+v", first)
		}
	}
}

package pipeline

import (
	"reflect"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ppiankov/cardex/internal/extract"
	"github.com/ppiankov/cardex/internal/model"
)

func TestPhoneStage_Types(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValue string
		wantType  model.PhoneType
	}{
		{"fax label", "Fax: 030 123457", "+4930123457", model.PhoneFax},
		{"mobile label wins over area code", "Mobil: 030 1234567", "+49301234567", model.PhoneMobile},
		{"trunk prefix in parentheses", "+49 (0)30 123456", "+4930123456", model.PhoneLandlineProvisional},
		{"international prefix 00", "0049 30 123456", "+4930123456", model.PhoneLandlineProvisional},
		{"mobile prefix", "Tel. 0151 12345678", "+4915112345678", model.PhoneMobile},
		{"toll free", "Hotline 0800 1234567", "+498001234567", model.PhoneOther},
	}

	p := newTestPipeline()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := p.Parse(tt.input).Record
			if len(rec.Phones) != 1 {
				t.Fatalf("expected 1 phone, got %+v", rec.Phones)
			}
			if rec.Phones[0].Value != tt.wantValue {
				t.Errorf("value = %s, want %s", rec.Phones[0].Value, tt.wantValue)
			}
			if rec.Phones[0].Type != tt.wantType {
				t.Errorf("type = %s, want %s", rec.Phones[0].Type, tt.wantType)
			}
		})
	}
}

func TestPhoneStage_ForeignNumber(t *testing.T) {
	rec := newTestPipeline().Parse("Phone: +44 20 7946 0958").Record
	if len(rec.Phones) != 1 || rec.Phones[0].Value != "+442079460958" {
		t.Errorf("phones = %+v, want +442079460958", rec.Phones)
	}
}

func TestPhoneStage_TwoNumbersOnOneLine(t *testing.T) {
	rec := newTestPipeline().Parse("Tel. 030 123456, Fax 030 123457").Record
	if len(rec.Phones) != 2 {
		t.Fatalf("expected 2 phones, got %+v", rec.Phones)
	}
	if rec.Phones[0].Type == model.PhoneFax {
		t.Errorf("first number typed as fax: %+v", rec.Phones[0])
	}
	if rec.Phones[1].Type != model.PhoneFax || rec.Phones[1].Value != "+4930123457" {
		t.Errorf("second number = %+v, want fax +4930123457", rec.Phones[1])
	}
}

func TestPhoneStage_NotPhones(t *testing.T) {
	inputs := []string{
		"Konto: 1234567890",
		"IBAN DE89 3704 0044 0532 0130 00",
		"Amtsgericht Berlin HRB 123456",
		"USt-IdNr.: DE123456789",
		"Stand: 01.02.2024",
		"Postfach 1234",
		"Hauptstr. 12 10115 Kleinstadt",
		"Am Markt 112 10115 Kleinstadt",
	}

	p := newTestPipeline()
	for _, input := range inputs {
		rec := p.Parse(input).Record
		if len(rec.Phones) != 0 {
			t.Errorf("Parse(%q) phones = %+v, want none", input, rec.Phones)
		}
	}
}

func TestPhoneStage_UnknownPrefixWarns(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	p := New(model.DefaultConfig().Engine, WithLogger(zap.New(core)))

	rec := p.Parse("Tel: 09999 123456").Record
	if len(rec.Phones) != 1 {
		t.Fatalf("expected 1 phone, got %+v", rec.Phones)
	}
	if rec.Phones[0].Type != model.PhoneLandlineProvisional {
		t.Errorf("type = %s, want provisional landline", rec.Phones[0].Type)
	}

	warned := logs.FilterMessage("unknown phone prefix, defaulting to landline").All()
	if len(warned) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(warned))
	}
	if got := warned[0].ContextMap()["number"]; got != "09999123456" {
		t.Errorf("warning number = %v, want 09999123456", got)
	}
}

func TestPhoneStage_GeocodedAreaCode(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	p := New(model.DefaultConfig().Engine, WithLogger(zap.New(core)))

	// 03303 is missing from the built-in table
	rec := p.Parse("Tel: 03303 123456").Record
	if len(rec.Phones) != 1 {
		t.Fatalf("expected 1 phone, got %+v", rec.Phones)
	}
	if rec.Phones[0].Type != model.PhoneLandlineProvisional {
		t.Errorf("type = %s, want provisional landline", rec.Phones[0].Type)
	}
	if rec.Phones[0].Confidence <= confUnknown {
		t.Errorf("confidence = %v, want above the unknown-prefix default", rec.Phones[0].Confidence)
	}
	if n := logs.FilterMessage("unknown phone prefix, defaulting to landline").Len(); n != 0 {
		t.Errorf("expected no warning, got %d", n)
	}
}

func TestTrailingPostal(t *testing.T) {
	tests := []struct {
		raw  string
		cut  int
		want bool
	}{
		{"12 10115", 2, true},
		{"5 8001", 1, true},
		{"030 12345", 0, false},
		{"+49 30 12345", 0, false},
		{"10115", 0, false},
		{"12 123456", 0, false},
	}
	for _, tt := range tests {
		cut, ok := trailingPostal(tt.raw)
		if ok != tt.want || (ok && cut != tt.cut) {
			t.Errorf("trailingPostal(%q) = %d, %v; want %d, %v", tt.raw, cut, ok, tt.cut, tt.want)
		}
	}
}

func TestVerifiedPostalCodes(t *testing.T) {
	d := extract.NewAnchorDetector(nil)
	tests := []struct {
		text string
		want []string
	}{
		{"10115 Berlin", []string{"10115"}},
		{"Berlin, 10115", []string{"10115"}},
		{"Musterstraße 1, 10115 Berlin, Tel. 030 123456", []string{"10115"}},
		{"Freiburg, Tel. 0761 123456", nil},
		{"Kiel 0431 987654", nil},
		{"Postfach 1234", nil},
	}
	for _, tt := range tests {
		text := tt.text
		line := model.Line{Text: text, Anchors: d.Detect(text)}
		var got []string
		for _, a := range verifiedPostalCodes(line) {
			got = append(got, a.Value)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("verifiedPostalCodes(%q) = %v, want %v", text, got, tt.want)
		}
	}
}

func TestIsBarePostal(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"10115", true},
		{"8001", true},
		{"123", false},
		{"123456", false},
		{"101 15", false},
	}
	for _, tt := range tests {
		if got := isBarePostal(tt.raw); got != tt.want {
			t.Errorf("isBarePostal(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

package pipeline

import (
	"testing"

	"github.com/ppiankov/cardex/internal/model"
)

func TestAddressStage(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  model.Address
	}{
		{
			name:  "street and city on one line",
			input: "Musterstraße 1, 10115 Berlin",
			want:  model.Address{Street: "Musterstraße 1", PostalCode: "10115", City: "Berlin"},
		},
		{
			name:  "german letter prefix",
			input: "D-10115 Berlin",
			want:  model.Address{PostalCode: "10115", City: "Berlin", Country: "DE"},
		},
		{
			name:  "swiss four digit postal code",
			input: "CH-8001 Zürich",
			want:  model.Address{PostalCode: "8001", City: "Zürich", Country: "CH"},
		},
		{
			name:  "country after comma",
			input: "10115 Berlin, Germany",
			want:  model.Address{PostalCode: "10115", City: "Berlin", Country: "DE"},
		},
		{
			name:  "us style",
			input: "1 Main Street, Springfield, IL 62701",
			want:  model.Address{Street: "1 Main Street", City: "Springfield", Region: "IL", PostalCode: "62701", Country: "US"},
		},
		{
			name:  "unknown city with country prefix",
			input: "F-67000 Beispielville",
			want:  model.Address{PostalCode: "67000", City: "Beispielville", Country: "FR"},
		},
		{
			name:  "street line then city line",
			input: "Musterweg 5\nBerlin",
			want:  model.Address{Street: "Musterweg 5", City: "Berlin"},
		},
		{
			name:  "po box above",
			input: "Postfach 1234\n10115 Berlin",
			want:  model.Address{POBox: "Postfach 1234", PostalCode: "10115", City: "Berlin"},
		},
		{
			name:  "street, postal code and unknown city",
			input: "Hauptstr. 12 10115 Kleinstadt",
			want:  model.Address{Street: "Hauptstr. 12", PostalCode: "10115", City: "Kleinstadt"},
		},
		{
			name:  "city before postal code",
			input: "Berlin, 10115",
			want:  model.Address{PostalCode: "10115", City: "Berlin"},
		},
		{
			name:  "country line below",
			input: "Musterstraße 1\n10115 Berlin\nDeutschland",
			want:  model.Address{Street: "Musterstraße 1", PostalCode: "10115", City: "Berlin", Country: "DE"},
		},
	}

	p := newTestPipeline()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := p.Parse(tt.input).Record
			if len(rec.Addresses) != 1 {
				t.Fatalf("expected 1 address, got %+v", rec.Addresses)
			}
			want := tt.want
			want.Type = addressTypeWork
			if got := rec.Addresses[0]; got != want {
				t.Errorf("address = %+v\nwant      %+v", got, want)
			}
		})
	}
}

func TestAddressStage_WalkStopsAtOrganization(t *testing.T) {
	res := newTestPipeline().Parse("Musterfirma GmbH\n2. OG\nMusterstraße 1\n10115 Berlin")

	want := []model.ClaimTag{model.ClaimOrg, model.ClaimAddress, model.ClaimAddress, model.ClaimAddress}
	for i, l := range res.Lines {
		if l.Tag != want[i] {
			t.Errorf("line %q tag = %v, want %v", l.Text, l.Tag, want[i])
		}
	}

	addr := res.Record.Addresses[0]
	if addr.Extended != "2. OG" || addr.Street != "Musterstraße 1" {
		t.Errorf("address = %+v", addr)
	}
	if res.Record.Organization != "Musterfirma GmbH" {
		t.Errorf("organization = %q", res.Record.Organization)
	}
}

func TestAddressStage_WalkSkipsPhoneLines(t *testing.T) {
	res := newTestPipeline().Parse("Musterstraße 1\nTel: 030 123456\n10115 Berlin")

	addr := res.Record.Addresses[0]
	if addr.Street != "Musterstraße 1" {
		t.Errorf("street = %q, want Musterstraße 1", addr.Street)
	}
	if res.Lines[1].Tag != model.ClaimPhone {
		t.Errorf("phone line tag = %v, want PHONE", res.Lines[1].Tag)
	}
}

func TestAddressStage_ReadsPhoneLine(t *testing.T) {
	res := newTestPipeline().Parse("Musterfirma GmbH\nMusterstraße 1, 10115 Berlin, Tel. 030 123456")
	rec := res.Record

	if len(rec.Phones) != 1 || rec.Phones[0].Value != "+4930123456" {
		t.Errorf("phones = %+v, want +4930123456", rec.Phones)
	}
	if len(rec.Addresses) != 1 {
		t.Fatalf("expected 1 address, got %+v", rec.Addresses)
	}
	want := model.Address{Type: addressTypeWork, Street: "Musterstraße 1", PostalCode: "10115", City: "Berlin"}
	if rec.Addresses[0] != want {
		t.Errorf("address = %+v\nwant      %+v", rec.Addresses[0], want)
	}
	if res.Lines[1].Tag != model.ClaimPhone {
		t.Errorf("line tag = %v, want PHONE kept", res.Lines[1].Tag)
	}
}

func TestIsStreet(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"Musterstraße 1", true},
		{"Hauptstr. 12a", true},
		{"Am Markt 3", true},
		{"Unter den Linden 77", true},
		{"123 Main Street", true},
		{"Musterweg 5-7", true},
		{"Musterfirma GmbH", false},
		{"Max Mustermann 2", false},
		{"Tel 030 123456", false},
	}
	for _, tt := range tests {
		if got := isStreet(tt.text); got != tt.want {
			t.Errorf("isStreet(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

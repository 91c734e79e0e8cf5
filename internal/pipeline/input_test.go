package pipeline

import "testing"

func TestKindFromPath(t *testing.T) {
	tests := []struct {
		path string
		want InputKind
	}{
		{"card.txt", KindText},
		{"signature.HTML", KindHTML},
		{"mail/sig.htm", KindHTML},
		{"scan.json", KindOCR},
		{"impressum", KindText},
	}
	for _, tt := range tests {
		if got := KindFromPath(tt.path); got != tt.want {
			t.Errorf("KindFromPath(%q) = %s, want %s", tt.path, got, tt.want)
		}
	}
}

func TestParseInput(t *testing.T) {
	p := newTestPipeline()

	html := `<div>Max Mustermann</div><div>Musterfirma GmbH</div><p><a href="mailto:max@musterfirma.de">Mail</a></p>`
	res, err := p.ParseInput(KindHTML, []byte(html))
	if err != nil {
		t.Fatalf("ParseInput(html): %v", err)
	}
	if res.Record.FullName != "Max Mustermann" || res.Record.Organization != "Musterfirma GmbH" {
		t.Errorf("html record = %+v", res.Record)
	}
	if len(res.Record.Emails) != 1 || res.Record.Emails[0].Value != "max@musterfirma.de" {
		t.Errorf("mailto link not picked up: %+v", res.Record.Emails)
	}

	ocr := `[{"text":"Max Mustermann","box":{"x":10,"y":10,"w":100,"h":20}},
		{"text":"Tel: 030 123456","box":{"x":10,"y":60,"w":100,"h":20}}]`
	res, err = p.ParseInput(KindOCR, []byte(ocr))
	if err != nil {
		t.Fatalf("ParseInput(ocr): %v", err)
	}
	if res.Record.FullName != "Max Mustermann" || len(res.Record.Phones) != 1 {
		t.Errorf("ocr record = %+v", res.Record)
	}

	if _, err := p.ParseInput(KindOCR, []byte("not json")); err == nil {
		t.Error("expected error for malformed OCR input")
	}
	if _, err := p.ParseInput("pdf", nil); err == nil {
		t.Error("expected error for unknown kind")
	}
}

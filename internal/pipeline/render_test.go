package pipeline

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestRenderText(t *testing.T) {
	res := newTestPipeline().Parse(impressum)

	var buf bytes.Buffer
	if err := NewRenderer().RenderText(&buf, res.Record); err != nil {
		t.Fatalf("RenderText: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"FN:Max Mustermann\n",
		"N:Mustermann;Max;;;\n",
		"ORG:Musterfirma GmbH\n",
		"TITLE:Geschäftsführer\n",
		"ADR;TYPE=work:;;Musterstraße 1;Berlin;;10115;\n",
		"TEL;TYPE=landline:+4930123456\n",
		"EMAIL;TYPE=work:max@musterfirma.de\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderJSON(t *testing.T) {
	res := newTestPipeline().Parse(impressum)

	var buf bytes.Buffer
	if err := NewRenderer().RenderJSON(&buf, res); err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}

	var decoded Result
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Record.FullName != "Max Mustermann" {
		t.Errorf("decoded name = %q", decoded.Record.FullName)
	}
	if len(decoded.Lines) != 6 {
		t.Errorf("decoded %d lines, want 6", len(decoded.Lines))
	}
}

func TestRenderExplain(t *testing.T) {
	res := newTestPipeline().Parse("Tel: 030 123456\nab")

	var buf bytes.Buffer
	if err := NewRenderer().RenderExplain(&buf, res.Lines); err != nil {
		t.Fatalf("RenderExplain: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got %q", buf.String())
	}
	if !strings.HasPrefix(lines[0], "#") || !strings.Contains(lines[0], "ANCHORS") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "PHONE") || !strings.Contains(lines[1], "AREA_CODE(030)@5") {
		t.Errorf("phone row = %q", lines[1])
	}
	if !strings.Contains(lines[2], " - ") {
		t.Errorf("unclaimed row should show '-': %q", lines[2])
	}
}

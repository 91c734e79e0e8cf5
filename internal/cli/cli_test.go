package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ppiankov/cardex/internal/model"
	"github.com/ppiankov/cardex/internal/pipeline"
	"github.com/spf13/viper"
)

const card = `Musterfirma GmbH
Musterstraße 1
10115 Berlin
Geschäftsführer: Max Mustermann
Tel: 030 123456
max@musterfirma.de`

func TestLoadConfig_Environment(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("CARDEX_ENGINE_REGION", "AT")
	t.Setenv("CARDEX_CACHE_MEMORY_TTL", "5m")
	if err := configureViper(); err != nil {
		t.Fatalf("configureViper: %v", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Engine.Region != "AT" {
		t.Errorf("region = %q, want AT", cfg.Engine.Region)
	}
	if cfg.Cache.MemoryTTL != 5*time.Minute {
		t.Errorf("memory ttl = %v, want 5m", cfg.Cache.MemoryTTL)
	}
	if cfg.Engine.HalfScoreDistance != 50 {
		t.Errorf("half score distance = %v, want default 50", cfg.Engine.HalfScoreDistance)
	}
	if cfg.Concurrency.Timeout != 10*time.Minute {
		t.Errorf("batch timeout = %v, want default 10m", cfg.Concurrency.Timeout)
	}
}

func TestLoadConfig_File(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "engine:\n  region: CH\n  name_threshold: 0.7\noutput:\n  format: json\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := configureViper(); err != nil {
		t.Fatalf("configureViper: %v", err)
	}
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig: %v", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Engine.Region != "CH" || cfg.Engine.NameThreshold != 0.7 || cfg.Output.Format != "json" {
		t.Errorf("config = %+v %+v", cfg.Engine, cfg.Output)
	}
	if !cfg.Engine.CorrectEmails {
		t.Error("unset key lost its default")
	}
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".cardex", "config.yaml")
	if err := writeDefaultConfig(path); err != nil {
		t.Fatalf("writeDefaultConfig: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "# Cardex Configuration File") {
		t.Error("missing header")
	}
	if !strings.Contains(string(data), "region: DE") {
		t.Errorf("defaults not written:\n%s", data)
	}

	if err := writeDefaultConfig(path); err == nil {
		t.Error("existing config overwritten")
	}
}

func TestInputKind(t *testing.T) {
	tests := []struct {
		path string
		html bool
		ocr  bool
		want pipeline.InputKind
	}{
		{"-", false, false, pipeline.KindText},
		{"card.txt", false, false, pipeline.KindText},
		{"sig.html", false, false, pipeline.KindHTML},
		{"lines.json", false, false, pipeline.KindOCR},
		{"-", true, false, pipeline.KindHTML},
		{"card.txt", false, true, pipeline.KindOCR},
	}
	t.Cleanup(func() { asHTML, asOCR = false, false })

	for _, tt := range tests {
		asHTML, asOCR = tt.html, tt.ocr
		if got := inputKind(tt.path); got != tt.want {
			t.Errorf("inputKind(%q, html=%v, ocr=%v) = %q, want %q", tt.path, tt.html, tt.ocr, got, tt.want)
		}
	}
}

func TestReadInput_Stdin(t *testing.T) {
	data, err := readInput(strings.NewReader("hello"), "-")
	if err != nil || string(data) != "hello" {
		t.Errorf("readInput = %q, %v", data, err)
	}
	if _, err := readInput(nil, filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("missing file accepted")
	}
}

func TestRender_UnknownFormat(t *testing.T) {
	res := pipeline.New(model.DefaultConfig().Engine).Parse(card)
	var buf bytes.Buffer
	if err := render(&buf, pipeline.NewRenderer(), "xml", res); err == nil {
		t.Error("unknown format accepted")
	}
	if err := render(&buf, pipeline.NewRenderer(), "text", res); err != nil {
		t.Fatalf("render text: %v", err)
	}
	if !strings.Contains(buf.String(), "FN:Max Mustermann\n") {
		t.Errorf("text output:\n%s", buf.String())
	}
}

func TestParseCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.txt")
	if err := os.WriteFile(path, []byte(card), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(viper.Reset)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"parse", path, "--format", "json", "--config", filepath.Join(t.TempDir(), "none.yaml")})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("parse: %v", err)
	}

	var res pipeline.Result
	if err := json.Unmarshal(out.Bytes(), &res); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out.String())
	}
	if res.Record.FullName != "Max Mustermann" || res.Record.Organization != "Musterfirma GmbH" {
		t.Errorf("record = %+v", res.Record)
	}
}

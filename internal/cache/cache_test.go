package cache

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ppiankov/cardex/internal/model"
)

func TestKey(t *testing.T) {
	cfg := model.DefaultConfig().Engine
	input := []byte("Max Mustermann")

	k := Key("text", input, cfg, "lex-a")
	if !strings.HasPrefix(k, "cardex:v1:") {
		t.Errorf("key %q lacks prefix", k)
	}
	if k != Key("text", input, cfg, "lex-a") {
		t.Error("key is not deterministic")
	}
	if k == Key("html", input, cfg, "lex-a") {
		t.Error("input kind does not change the key")
	}
	if k == Key("text", input, cfg, "lex-b") {
		t.Error("lexicon fingerprint does not change the key")
	}

	other := cfg
	other.Region = "AT"
	if k == Key("text", input, other, "lex-a") {
		t.Error("engine settings do not change the key")
	}
}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, ok := c.Get("missing"); ok {
		t.Error("hit on empty cache")
	}
	_ = c.Set("k", []byte("v"), 0)
	if v, ok := c.Get("k"); !ok || string(v) != "v" {
		t.Errorf("Get = %q, %v", v, ok)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
	_ = c.Delete("k")
	if _, ok := c.Get("k"); ok {
		t.Error("hit after Delete")
	}
}

func TestDiskCache(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Hour)

	key := Key("text", []byte("x"), model.EngineConfig{}, "")
	if err := c.Set(key, []byte("payload"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if v, ok := c.Get(key); !ok || string(v) != "payload" {
		t.Errorf("Get = %q, %v", v, ok)
	}

	// entries survive a new instance over the same directory
	if _, ok := NewDiskCache(dir, time.Hour).Get(key); !ok {
		t.Error("entry not persisted")
	}

	if err := c.Delete(key); err != nil {
		t.Errorf("Delete: %v", err)
	}
	if err := c.Delete(key); err != nil {
		t.Errorf("Delete of missing entry: %v", err)
	}
}

func TestDiskCache_Expiry(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Hour)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	_ = c.Set("k", []byte("v"), time.Minute)
	if _, ok := c.Get("k"); !ok {
		t.Fatal("fresh entry missing")
	}

	now = now.Add(2 * time.Minute)
	if _, ok := c.Get("k"); ok {
		t.Error("expired entry returned")
	}
	if _, err := os.Stat(c.path("k")); !os.IsNotExist(err) {
		t.Error("expired entry file not removed")
	}
}

func TestDiskCache_ClearKeepsForeignFiles(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Hour)
	_ = c.Set("a", []byte("1"), 0)
	_ = c.Set("b", []byte("2"), 0)

	foreign := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(foreign, []byte("keep"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, ok := c.Get("a"); ok {
		t.Error("entry survived Clear")
	}
	if _, err := os.Stat(foreign); err != nil {
		t.Errorf("foreign file removed: %v", err)
	}
}

func TestLayeredCache_PromotesDiskHits(t *testing.T) {
	dir := t.TempDir()
	_ = NewDiskCache(dir, time.Hour).Set("k", []byte("v"), 0)

	c := NewLayeredCache(time.Minute, dir, time.Hour)
	if v, ok := c.Get("k"); !ok || string(v) != "v" {
		t.Fatalf("Get = %q, %v", v, ok)
	}
	if _, ok := c.memory.Get("k"); !ok {
		t.Error("disk hit not promoted to memory")
	}
}

func TestNew(t *testing.T) {
	if c := New(model.CacheConfig{Enabled: false}); c != nil {
		t.Errorf("disabled cache = %T, want nil", c)
	}
	if _, ok := New(model.CacheConfig{Enabled: true}).(*MemoryCache); !ok {
		t.Error("cache without dir should be memory only")
	}
	if _, ok := New(model.CacheConfig{Enabled: true, Dir: t.TempDir()}).(*LayeredCache); !ok {
		t.Error("cache with dir should be layered")
	}
}

func TestRecords(t *testing.T) {
	r := NewRecords(NewMemoryCache(time.Minute, time.Minute), 0)

	rec := model.NewContactRecord()
	rec.SetFullName("Max Mustermann", model.NameParts{Given: "Max", Family: "Mustermann"})
	rec.AddPhone(model.Phone{Type: model.PhoneLandline, Value: "+4930123456", Confidence: 0.9})

	if err := r.Put("k", rec); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, ok := r.Get("k")
	if !ok {
		t.Fatal("record missing")
	}
	if got.FullName != "Max Mustermann" || len(got.Phones) != 1 || got.Phones[0] != rec.Phones[0] {
		t.Errorf("record = %+v", got)
	}

	var disabled *Records
	if _, ok := disabled.Get("k"); ok {
		t.Error("nil store returned a record")
	}
	if err := NewRecords(nil, 0).Put("k", rec); err != nil {
		t.Errorf("Put without cache: %v", err)
	}
}

package model

import (
	"runtime"
	"time"
)

// Config holds the complete cardex configuration
type Config struct {
	Engine      EngineConfig      `yaml:"engine"`
	Lexicon     LexiconConfig     `yaml:"lexicon"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Cache       CacheConfig       `yaml:"cache"`
	Output      OutputConfig      `yaml:"output"`
}

// EngineConfig tunes the extraction engine
type EngineConfig struct {
	Region            string  `yaml:"region"`              // Primary phone-number region (ISO 3166-1 alpha-2)
	HalfScoreDistance float64 `yaml:"half_score_distance"` // Distance (chars) at which proximity score is 0.5
	FollowDiscount    float64 `yaml:"follow_discount"`     // Multiplier for anchors that follow the candidate
	NameThreshold     float64 `yaml:"name_threshold"`      // Minimum name likelihood for heuristic names
	HeaderFraction    float64 `yaml:"header_fraction"`     // Top fraction of an OCR layout searched first for names
	RowTolerance      float64 `yaml:"row_tolerance"`       // Same-row tolerance for OCR line ordering
	CorrectEmails     bool    `yaml:"correct_emails"`      // Correct e-mail local parts against the resolved name
}

// LexiconConfig points at optional lexicon extensions
type LexiconConfig struct {
	Overrides string `yaml:"overrides,omitempty"` // YAML file merged into the built-in lexicon
}

// ConcurrencyConfig controls batch parallelism
type ConcurrencyConfig struct {
	Workers           int           `yaml:"workers"`
	RequestsPerSecond float64       `yaml:"requests_per_second"` // 0 disables rate limiting
	BurstSize         int           `yaml:"burst_size"`
	Timeout           time.Duration `yaml:"timeout"` // total batch deadline
}

// CacheConfig controls the batch result cache
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl"`
}

// OutputConfig controls rendering
type OutputConfig struct {
	Format  string `yaml:"format"` // text or json
	Verbose bool   `yaml:"verbose"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			Region:            "DE",
			HalfScoreDistance: 50,
			FollowDiscount:    0.8,
			NameThreshold:     0.5,
			HeaderFraction:    0.30,
			RowTolerance:      10,
			CorrectEmails:     true,
		},
		Concurrency: ConcurrencyConfig{
			Workers:   runtime.NumCPU(),
			BurstSize: 1,
			Timeout:   10 * time.Minute,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       ".cardex-cache",
			MemoryTTL: 30 * time.Minute,
			DiskTTL:   7 * 24 * time.Hour,
		},
		Output: OutputConfig{
			Format: "text",
		},
	}
}

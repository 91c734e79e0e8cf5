package pipeline

import (
	"strings"

	"go.uber.org/zap"

	"github.com/ppiankov/cardex/internal/extract"
	"github.com/ppiankov/cardex/internal/lexicon"
	"github.com/ppiankov/cardex/internal/model"
	"github.com/ppiankov/cardex/internal/normalize"
	"github.com/ppiankov/cardex/internal/score"
)

// Stage is one extractor in the fixed pipeline order. A stage claims the
// lines it recognizes and fills only the record fields it owns.
type Stage interface {
	Name() string
	Claim(t *LineTable, rec *model.ContactRecord)
}

// engine is the read-only context shared by all stages
type engine struct {
	cfg    model.EngineConfig
	lex    *lexicon.Lexicon
	ctx    *score.ContextScorer
	names  *score.NameScorer
	logger *zap.Logger
}

// Pipeline turns contact text into a ContactRecord. It holds no per-parse
// state and is safe for concurrent use.
type Pipeline struct {
	engine     *engine
	normalizer *normalize.Normalizer
	detector   *extract.AnchorDetector
	stages     []Stage
}

// Result is the outcome of one parse: the record and the claimed lines
type Result struct {
	Record *model.ContactRecord `json:"record"`
	Lines  []model.Line         `json:"lines,omitempty"`
}

// Option configures a Pipeline
type Option func(*options)

type options struct {
	logger *zap.Logger
	lex    *lexicon.Lexicon
}

// WithLogger sets the logger; the default discards everything
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithLexicon replaces the built-in lexicon
func WithLexicon(lex *lexicon.Lexicon) Option {
	return func(o *options) {
		if lex != nil {
			o.lex = lex
		}
	}
}

// New creates a pipeline with the given engine configuration
func New(cfg model.EngineConfig, opts ...Option) *Pipeline {
	o := options{
		logger: zap.NewNop(),
		lex:    lexicon.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	defaults := model.DefaultConfig().Engine
	if cfg.Region == "" {
		cfg.Region = defaults.Region
	}
	if cfg.NameThreshold <= 0 {
		cfg.NameThreshold = defaults.NameThreshold
	}
	if cfg.HeaderFraction <= 0 || cfg.HeaderFraction > 1 {
		cfg.HeaderFraction = defaults.HeaderFraction
	}
	if cfg.RowTolerance <= 0 {
		cfg.RowTolerance = defaults.RowTolerance
	}
	cfg.Region = strings.ToUpper(cfg.Region)

	e := &engine{
		cfg:    cfg,
		lex:    o.lex,
		ctx:    score.NewContextScorer(cfg.HalfScoreDistance, cfg.FollowDiscount),
		names:  score.NewNameScorer(o.lex),
		logger: o.logger,
	}

	return &Pipeline{
		engine:     e,
		normalizer: normalize.New(o.lex),
		detector:   extract.NewAnchorDetector(o.lex),
		stages: []Stage{
			newMetaStage(e),
			newEmailStage(e),
			newURLStage(e),
			newPhoneStage(e),
			newJobStage(e),
			newAddressStage(e),
			newCompanyStage(e),
			newNameStage(e),
			newLeftoverStage(e),
		},
	}
}

// Parse extracts a contact record from a text blob
func (p *Pipeline) Parse(text string) *Result {
	var lines []model.Line
	for _, raw := range strings.Split(text, "\n") {
		lines = append(lines, p.segment(raw, nil)...)
	}
	return p.run(NewLineTable(lines))
}

// ParseOCR extracts a contact record from positioned OCR lines. Lines are
// ordered top-to-bottom, left-to-right, and the top of the layout is
// searched first for the person's name.
func (p *Pipeline) ParseOCR(ocr []model.OCRLine) *Result {
	sorted := SortLayout(ocr, p.engine.cfg.RowTolerance)
	headerCount := HeaderCount(sorted, p.engine.cfg.HeaderFraction)

	var lines []model.Line
	header := 0
	for i, l := range sorted {
		box := l.Box
		segmented := p.segment(l.Text, &box)
		lines = append(lines, segmented...)
		if i < headerCount {
			header += len(segmented)
		}
	}

	t := NewLineTable(lines)
	t.SetHeader(header)
	return p.run(t)
}

// Lexicon returns the lexicon the stages consult
func (p *Pipeline) Lexicon() *lexicon.Lexicon { return p.engine.lex }

// segment normalizes one raw line into one or more anchored lines
func (p *Pipeline) segment(raw string, box *model.BoundingBox) []model.Line {
	original := strings.TrimSpace(raw)
	if original == "" {
		return nil
	}

	var out []model.Line
	for _, text := range normalize.Lines(p.normalizer.Normalize(raw)) {
		out = append(out, model.Line{
			Original: original,
			Text:     text,
			Box:      box,
			Anchors:  p.detector.Detect(text),
		})
	}
	return out
}

func (p *Pipeline) run(t *LineTable) *Result {
	rec := model.NewContactRecord()

	for _, stage := range p.stages {
		before := len(t.Unclaimed())
		stage.Claim(t, rec)
		p.engine.logger.Debug("stage done",
			zap.String("stage", stage.Name()),
			zap.Int("claimed", before-len(t.Unclaimed())))
	}

	assemble(p.engine, rec)

	return &Result{
		Record: rec,
		Lines:  t.Lines(),
	}
}

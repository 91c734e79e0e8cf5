package worker

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/ppiankov/cardex/internal/cache"
	"github.com/ppiankov/cardex/internal/lexicon"
	"github.com/ppiankov/cardex/internal/model"
	"github.com/ppiankov/cardex/internal/pipeline"
)

// Parser turns decoded input into a parse result
type Parser interface {
	ParseInput(kind pipeline.InputKind, data []byte) (*pipeline.Result, error)
	Lexicon() *lexicon.Lexicon
}

// ParseJob parses one input file
type ParseJob struct {
	Index int
	Path  string
	batch *BatchProcessor
}

// Execute reads the file, answers from the cache when possible and parses
// otherwise
func (j *ParseJob) Execute(ctx context.Context) Result {
	res := &ParseResult{Index: j.Index, Path: j.Path}

	if err := j.batch.limiter.Wait(ctx); err != nil {
		res.Error = err
		return res
	}

	data, err := os.ReadFile(j.Path)
	if err != nil {
		res.Error = fmt.Errorf("read input: %w", err)
		return res
	}

	kind := pipeline.KindFromPath(j.Path)
	key := cache.Key(string(kind), data, j.batch.engine, j.batch.lexicon)
	if rec, ok := j.batch.records.Get(key); ok {
		res.Record = rec
		res.Cached = true
		return res
	}

	parsed, err := j.batch.parser.ParseInput(kind, data)
	if err != nil {
		res.Error = fmt.Errorf("parse %s: %w", j.Path, err)
		return res
	}
	res.Record = parsed.Record

	if err := j.batch.records.Put(key, parsed.Record); err != nil {
		j.batch.logger.Warn("cache write failed", zap.String("path", j.Path), zap.Error(err))
	}
	return res
}

// ParseResult is the outcome of one ParseJob
type ParseResult struct {
	Index  int                  `json:"-"`
	Path   string               `json:"path"`
	Record *model.ContactRecord `json:"record,omitempty"`
	Cached bool                 `json:"cached,omitempty"`
	Error  error                `json:"-"`
}

// GetError returns the job error
func (r *ParseResult) GetError() error {
	return r.Error
}

// BatchProcessor parses many inputs concurrently
type BatchProcessor struct {
	parser      Parser
	engine      model.EngineConfig
	lexicon     string
	records     *cache.Records
	limiter     *Limiter
	concurrency int
	logger      *zap.Logger
}

// BatchOption configures a BatchProcessor
type BatchOption func(*BatchProcessor)

// WithCache serves repeated inputs from c
func WithCache(c *cache.Records) BatchOption {
	return func(b *BatchProcessor) { b.records = c }
}

// WithLimiter caps the rate at which inputs start
func WithLimiter(l *Limiter) BatchOption {
	return func(b *BatchProcessor) { b.limiter = l }
}

// WithBatchLogger sets the logger
func WithBatchLogger(logger *zap.Logger) BatchOption {
	return func(b *BatchProcessor) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// NewBatchProcessor creates a batch processor. engine is the configuration
// the parser was built with; it is part of every cache key together with
// the parser's lexicon.
func NewBatchProcessor(parser Parser, engine model.EngineConfig, concurrency int, opts ...BatchOption) *BatchProcessor {
	b := &BatchProcessor{
		parser:      parser,
		engine:      engine,
		lexicon:     parser.Lexicon().Fingerprint(),
		concurrency: concurrency,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// ProcessPaths parses every path and returns the results in input order.
// Paths not reached before ctx is cancelled carry the context error.
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string) []*ParseResult {
	out := make([]*ParseResult, len(paths))
	if len(paths) == 0 {
		return out
	}

	pool := NewPool(ctx, b.concurrency)
	pool.Start()

	go func() {
		for i, path := range paths {
			if err := pool.Submit(&ParseJob{Index: i, Path: path, batch: b}); err != nil {
				b.logger.Debug("batch cancelled", zap.Int("submitted", i), zap.Error(err))
				pool.Shutdown()
				return
			}
		}
		pool.Wait()
	}()

	for r := range pool.Results() {
		res := r.(*ParseResult)
		out[res.Index] = res
		if res.Error != nil {
			b.logger.Warn("input failed", zap.String("path", res.Path), zap.Error(res.Error))
		}
	}

	for i, res := range out {
		if res != nil {
			continue
		}
		err := ctx.Err()
		if err == nil {
			err = context.Canceled
		}
		out[i] = &ParseResult{Index: i, Path: paths[i], Error: err}
	}
	return out
}

// CollectInputs expands a directory into its files, or reads a list file
// with one path per line. Relative paths in a list file are resolved
// against the list's directory.
func CollectInputs(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat input: %w", err)
	}
	if info.IsDir() {
		return walkDir(path)
	}
	return readList(path)
}

func walkDir(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasPrefix(d.Name(), ".") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	slices.Sort(paths)
	return paths, nil
}

func readList(listPath string) ([]string, error) {
	file, err := os.Open(listPath)
	if err != nil {
		return nil, fmt.Errorf("open list: %w", err)
	}
	defer func() { _ = file.Close() }()

	base := filepath.Dir(listPath)
	seen := make(map[string]bool)
	var paths []string

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !filepath.IsAbs(line) {
			line = filepath.Join(base, line)
		}
		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan list: %w", err)
	}
	if len(paths) == 0 {
		return nil, errors.New("list file names no inputs")
	}
	return paths, nil
}

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ppiankov/cardex/internal/cache"
	"github.com/ppiankov/cardex/internal/model"
	"github.com/ppiankov/cardex/internal/pipeline"
	"github.com/ppiankov/cardex/internal/worker"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	concurrency  int
	batchTimeout time.Duration
	noCache      bool
	rateLimit    float64
	batchFormat  string
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <dir|list>",
	Short: "Extract contact records from many inputs in parallel",
	Long: `Batch parses every file below a directory, or every path listed in a
text file (one per line, # starts a comment), with a pool of workers.

Records are printed in input order. With --format json each input is one
JSON object per line. Results are cached by input content and engine
settings, so rerunning over the same files is cheap.

Example:
  cardex batch ./cards
  cardex batch inputs.txt --concurrency 8 --format json
  cardex batch ./cards --rate 20 --no-cache`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", 0, "number of concurrent workers (default from config)")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 0, "total timeout for the batch (default from config)")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the result cache")
	batchCmd.Flags().Float64Var(&rateLimit, "rate", 0, "max inputs started per second, 0 for unlimited")
	batchCmd.Flags().StringVar(&batchFormat, "format", "", "output format: text or json (default from config)")
}

// batchLine is one JSON output line
type batchLine struct {
	Path   string               `json:"path"`
	Record *model.ContactRecord `json:"record,omitempty"`
	Cached bool                 `json:"cached,omitempty"`
	Error  string               `json:"error,omitempty"`
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("concurrency") {
		cfg.Concurrency.Workers = concurrency
	}
	if flags.Changed("timeout") {
		cfg.Concurrency.Timeout = batchTimeout
	}
	if flags.Changed("rate") {
		cfg.Concurrency.RequestsPerSecond = rateLimit
	}
	if flags.Changed("format") {
		cfg.Output.Format = batchFormat
	}
	if noCache {
		cfg.Cache.Enabled = false
	}
	if cfg.Output.Format != "text" && cfg.Output.Format != "json" {
		return fmt.Errorf("unknown output format %q (want text or json)", cfg.Output.Format)
	}

	logger, err := newLogger(cfg.Output.Verbose)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	paths, err := worker.CollectInputs(args[0])
	if err != nil {
		return err
	}

	p, err := newPipeline(cfg, logger)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if cfg.Concurrency.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Concurrency.Timeout)
		defer cancel()
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Cardex Batch\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input:     %s (%d files)\n", args[0], len(paths))
	fmt.Fprintf(os.Stderr, "  Workers:   %d\n", cfg.Concurrency.Workers)
	fmt.Fprintf(os.Stderr, "  Cache:     %v\n", cfg.Cache.Enabled)
	fmt.Fprintf(os.Stderr, "\n")

	processor := worker.NewBatchProcessor(p, cfg.Engine, cfg.Concurrency.Workers,
		worker.WithCache(cache.NewRecords(cache.New(cfg.Cache), cfg.Cache.DiskTTL)),
		worker.WithLimiter(worker.NewLimiter(cfg.Concurrency.RequestsPerSecond, cfg.Concurrency.BurstSize)),
		worker.WithBatchLogger(logger),
	)

	start := time.Now()
	results := processor.ProcessPaths(ctx, paths)

	out := cmd.OutOrStdout()
	renderer := pipeline.NewRenderer()
	var failures, cached int
	for _, res := range results {
		if res.Error != nil {
			failures++
		}
		if res.Cached {
			cached++
		}
		if err := writeBatchResult(out, renderer, cfg.Output.Format, res); err != nil {
			return err
		}
	}

	logger.Debug("batch finished",
		zap.Int("inputs", len(results)),
		zap.Int("failures", failures),
		zap.Duration("elapsed", time.Since(start)))

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Batch Complete\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:     %d inputs\n", len(results))
	fmt.Fprintf(os.Stderr, "  Success:   %d (%d cached)\n", len(results)-failures, cached)
	fmt.Fprintf(os.Stderr, "  Failures:  %d\n", failures)
	fmt.Fprintf(os.Stderr, "  Elapsed:   %v\n", time.Since(start).Round(time.Millisecond))
	fmt.Fprintf(os.Stderr, "\n")

	if failures > 0 {
		return fmt.Errorf("%d of %d inputs failed", failures, len(results))
	}
	return nil
}

func writeBatchResult(w io.Writer, r *pipeline.Renderer, format string, res *worker.ParseResult) error {
	if format == "json" {
		line := batchLine{Path: res.Path, Record: res.Record, Cached: res.Cached}
		if res.Error != nil {
			line.Error = res.Error.Error()
		}
		data, err := json.Marshal(line)
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}

	if _, err := fmt.Fprintf(w, "== %s\n", res.Path); err != nil {
		return err
	}
	if res.Error != nil {
		_, err := fmt.Fprintf(w, "ERROR:%v\n\n", res.Error)
		return err
	}
	if err := r.RenderText(w, res.Record); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

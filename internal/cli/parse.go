package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/ppiankov/cardex/internal/pipeline"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	asHTML  bool
	asOCR   bool
	explain bool
	format  string
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse [file|-]",
	Short: "Extract a contact record from one input",
	Long: `Parse reads one input and prints the extracted contact record.

The input kind follows the file extension (.html/.htm is HTML, .json is
a positioned OCR line array, anything else plain text) unless --html or
--ocr is given. Without a file, or with "-", standard input is read.

Example:
  cardex parse card.txt
  cardex parse impressum.html --format json
  pbpaste | cardex parse --explain`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVar(&asHTML, "html", false, "treat input as HTML")
	parseCmd.Flags().BoolVar(&asOCR, "ocr", false, "treat input as JSON OCR lines")
	parseCmd.Flags().BoolVar(&explain, "explain", false, "print every line with its claim and anchors before the record")
	parseCmd.Flags().StringVar(&format, "format", "", "output format: text or json (default from config)")
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = format
	}

	logger, err := newLogger(cfg.Output.Verbose)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	path := "-"
	if len(args) == 1 {
		path = args[0]
	}
	data, err := readInput(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}

	p, err := newPipeline(cfg, logger)
	if err != nil {
		return err
	}

	kind := inputKind(path)
	logger.Debug("parsing input", zap.String("path", path), zap.String("kind", string(kind)))

	res, err := p.ParseInput(kind, data)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	out := cmd.OutOrStdout()
	renderer := pipeline.NewRenderer()
	if explain {
		if err := renderer.RenderExplain(out, res.Lines); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}
	return render(out, renderer, cfg.Output.Format, res)
}

func render(w io.Writer, r *pipeline.Renderer, format string, res *pipeline.Result) error {
	switch format {
	case "json":
		return r.RenderJSON(w, res)
	case "text", "":
		return r.RenderText(w, res.Record)
	default:
		return fmt.Errorf("unknown output format %q (want text or json)", format)
	}
}

// inputKind applies the --html/--ocr overrides, then the file extension
func inputKind(path string) pipeline.InputKind {
	switch {
	case asHTML:
		return pipeline.KindHTML
	case asOCR:
		return pipeline.KindOCR
	case path == "-":
		return pipeline.KindText
	default:
		return pipeline.KindFromPath(path)
	}
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}


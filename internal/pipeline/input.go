package pipeline

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ppiankov/cardex/internal/extract"
	"github.com/ppiankov/cardex/internal/model"
)

// InputKind selects how raw input bytes are read
type InputKind string

const (
	KindText InputKind = "text"
	KindHTML InputKind = "html"
	KindOCR  InputKind = "ocr" // JSON array of positioned lines
)

// KindFromPath guesses the input kind from a file extension
func KindFromPath(path string) InputKind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return KindHTML
	case ".json":
		return KindOCR
	default:
		return KindText
	}
}

// ParseInput decodes data according to kind and parses it. Only decoding can
// fail; the engine itself always yields a record.
func (p *Pipeline) ParseInput(kind InputKind, data []byte) (*Result, error) {
	switch kind {
	case KindText, "":
		return p.Parse(string(data)), nil
	case KindHTML:
		text, err := extract.HTMLToText(string(data))
		if err != nil {
			return nil, fmt.Errorf("read HTML: %w", err)
		}
		return p.Parse(text), nil
	case KindOCR:
		lines, err := DecodeOCR(data)
		if err != nil {
			return nil, err
		}
		return p.ParseOCR(lines), nil
	default:
		return nil, fmt.Errorf("unknown input kind %q", kind)
	}
}

// DecodeOCR reads a JSON array of {text, box:{x,y,w,h}} records
func DecodeOCR(data []byte) ([]model.OCRLine, error) {
	var lines []model.OCRLine
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, fmt.Errorf("decode OCR lines: %w", err)
	}
	return lines, nil
}

package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/five82/zcalc/internal/sampler"
)

// Format names an output encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported encodings.
var Formats = []Format{FormatCSV, FormatJSON, FormatYAML}

// ParseFormat accepts a format name case-insensitively; "yml" is an alias
// for yaml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown format %q (want csv, json or yaml)", s)
}

// Document is the exported form of one sampled graph.
type Document struct {
	Equation  string          `json:"equation" yaml:"equation"`
	Parameter float64         `json:"parameter" yaml:"parameter"`
	Grid      sampler.Grid    `json:"grid" yaml:"grid"`
	MaxHeight float64         `json:"max_height" yaml:"max_height"`
	Dropped   int             `json:"dropped" yaml:"dropped"`
	Points    []sampler.Point `json:"points" yaml:"points"`
}

// NewDocument wraps a sampler result.
func NewDocument(res sampler.Result, parameter, maxHeight float64) Document {
	points := res.Points
	if points == nil {
		points = []sampler.Point{}
	}
	return Document{
		Equation:  res.Equation,
		Parameter: parameter,
		Grid:      res.Grid,
		MaxHeight: maxHeight,
		Dropped:   res.Dropped,
		Points:    points,
	}
}

// Formatter encodes a Document.
type Formatter interface {
	Format(doc Document) ([]byte, error)
}

// New returns the formatter for f.
func New(f Format) (Formatter, error) {
	switch f {
	case FormatCSV:
		return csvFormatter{}, nil
	case FormatJSON:
		return jsonFormatter{}, nil
	case FormatYAML:
		return yamlFormatter{}, nil
	}
	return nil, fmt.Errorf("unknown format %q", f)
}

// Write encodes doc as f and writes it to w, zstd-compressed when compress
// is set.
func Write(w io.Writer, doc Document, f Format, compress bool) error {
	fm, err := New(f)
	if err != nil {
		return err
	}
	data, err := fm.Format(doc)
	if err != nil {
		return err
	}
	if compress {
		if data, err = Compress(data); err != nil {
			return err
		}
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", f, err)
	}
	return nil
}

// csvFormatter writes one x,y,height row per point. Only the points are
// exported; the equation is not representable in a flat table.
type csvFormatter struct{}

func (csvFormatter) Format(doc Document) ([]byte, error) {
	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	if err := writer.Write([]string{"x", "y", "height"}); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, p := range doc.Points {
		record := []string{formatFloat(p.X), formatFloat(p.Y), formatFloat(p.Height)}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("write csv record: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("csv writer: %w", err)
	}
	return b.Bytes(), nil
}

type jsonFormatter struct{}

func (jsonFormatter) Format(doc Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return append(data, '\n'), nil
}

type yamlFormatter struct{}

func (yamlFormatter) Format(doc Document) ([]byte, error) {
	var b bytes.Buffer
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return b.Bytes(), nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

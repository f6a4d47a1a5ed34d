// Package questions merges generated question files.
package questions

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/baxromumarov/quiz-tools/internal/config"
)

type Result struct {
	First  int
	Second int
	Total  int
}

// Summary is the line printed once both inputs are read.
func (r Result) Summary() string {
	return fmt.Sprintf("Merged %d + %d = %d questions.", r.First, r.Second, r.Total)
}

type Merger struct {
	schema *jsonschema.Schema
	indent string
}

func NewMerger(indent string) (*Merger, error) {
	schema, err := compileListSchema()
	if err != nil {
		return nil, fmt.Errorf("questions schema compile failed: %w", err)
	}
	return &Merger{schema: schema, indent: indent}, nil
}

// ReadFile decodes the question list stored at path.
func (m *Merger) ReadFile(path string) ([]json.RawMessage, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("questions read failed: %w", err)
	}
	return m.Decode(raw, path)
}

// Decode parses raw as a JSON array and returns its elements re-encoded with
// escapes resolved. Key order and number text are kept. name is only used in
// error messages.
func (m *Merger) Decode(raw []byte, name string) ([]json.RawMessage, error) {
	if !utf8.Valid(raw) {
		return nil, fmt.Errorf("questions decode failed for %s: input is not valid UTF-8", name)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, fmt.Errorf("questions decode failed for %s: %w", name, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("questions decode failed for %s: trailing data after top-level value", name)
	}
	if err := m.schema.Validate(value); err != nil {
		return nil, &NotArrayError{Path: name, Reason: schemaReason(err)}
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("questions decode failed for %s: %w", name, err)
	}
	for i, item := range items {
		clean, err := reencode(item)
		if err != nil {
			return nil, fmt.Errorf("questions decode failed for %s item %d: %w", name, i, err)
		}
		items[i] = clean
	}
	return items, nil
}

// Merge returns first's elements followed by second's. The result is never
// nil, so an empty merge still encodes as [].
func Merge(first, second []json.RawMessage) []json.RawMessage {
	out := make([]json.RawMessage, 0, len(first)+len(second))
	out = append(out, first...)
	return append(out, second...)
}

// Encode writes items as an indented array. Non-ASCII and HTML characters are
// written as-is and no newline follows the closing bracket.
func (m *Merger) Encode(w io.Writer, items []json.RawMessage) error {
	if items == nil {
		items = []json.RawMessage{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", m.indent)
	if err := enc.Encode(items); err != nil {
		return fmt.Errorf("questions encode failed: %w", err)
	}
	_, err := w.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
	return err
}

// Run merges cfg.FirstFile and cfg.SecondFile into cfg.OutputFile. The
// summary line goes to out before the output file is written.
func (m *Merger) Run(cfg config.Merger, out io.Writer) (Result, error) {
	first, err := m.ReadFile(cfg.FirstFile)
	if err != nil {
		return Result{}, err
	}
	second, err := m.ReadFile(cfg.SecondFile)
	if err != nil {
		return Result{}, err
	}

	merged := Merge(first, second)
	res := Result{First: len(first), Second: len(second), Total: len(merged)}
	if _, err := fmt.Fprintln(out, res.Summary()); err != nil {
		return res, fmt.Errorf("questions summary failed: %w", err)
	}

	var buf bytes.Buffer
	if err := m.Encode(&buf, merged); err != nil {
		return res, err
	}
	if err := os.WriteFile(cfg.OutputFile, buf.Bytes(), 0o644); err != nil {
		return res, fmt.Errorf("questions write failed: %w", err)
	}
	return res, nil
}

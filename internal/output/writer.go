package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/chessrules-go/internal/replay"
)

// ResultWriter is the interface for writing replay results to output.
// Different implementations handle different formats (text, JSON).
type ResultWriter interface {
	// WriteResult writes a single match result to the output.
	WriteResult(res replay.Result) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// TextWriter writes each result as a header, its move list and the final
// board.
type TextWriter struct {
	w          io.Writer
	lineLength int
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, lineLength int) *TextWriter {
	return &TextWriter{w: w, lineLength: lineLength}
}

// WriteResult writes a result immediately.
func (tw *TextWriter) WriteResult(res replay.Result) error {
	status := "ok"
	if res.Err != nil {
		status = res.Err.Error()
	} else if res.DuplicateOf > 0 {
		status = fmt.Sprintf("ok, same position as match %d", res.DuplicateOf)
	}
	if _, err := fmt.Fprintf(tw.w, "== %d %s: %s\n", res.Index, res.Name, status); err != nil {
		return err
	}
	if err := WriteHistory(tw.w, res.History, tw.lineLength); err != nil {
		return err
	}
	if res.Snapshot.BoardSize == 0 {
		return nil
	}
	return WriteBoardText(tw.w, res.Snapshot)
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes results in JSON format.
// It buffers results and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w            io.Writer
	matches      []*JSONMatch
	withPosition bool
	single       bool // If true, write each result immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches results and writes them as an array on Close().
func NewJSONWriter(w io.Writer, withPosition bool) *JSONWriter {
	return &JSONWriter{
		w:            w,
		matches:      make([]*JSONMatch, 0),
		withPosition: withPosition,
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each result immediately.
func NewJSONWriterSingle(w io.Writer, withPosition bool) *JSONWriter {
	return &JSONWriter{
		w:            w,
		withPosition: withPosition,
		single:       true,
	}
}

// WriteResult buffers a result for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteResult(res replay.Result) error {
	jm := ResultToJSON(res, jw.withPosition)
	if jw.single {
		return encodeIndented(jw.w, jm)
	}
	jw.matches = append(jw.matches, jm)
	return nil
}

// Flush writes all buffered results as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.matches) == 0 {
		return nil
	}
	err := encodeIndented(jw.w, &JSONOutput{Matches: jw.matches})

	// Clear buffer after writing
	jw.matches = jw.matches[:0]
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

func encodeIndented(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

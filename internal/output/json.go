package output

import (
	"encoding/json"
	"io"

	"github.com/openpgx/starcall/internal/call"
)

// JSONWriter collects results and writes them as a JSON array on Flush.
// The element shape is the Result's own JSON encoding, which is the
// structured-data contract consumed by recommendation layers.
type JSONWriter struct {
	w       io.Writer
	results []*call.Result
}

// NewJSONWriter creates a new JSON report writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteHeader is a no-op; JSON output has no header line.
func (jw *JSONWriter) WriteHeader() error {
	return nil
}

// Write buffers a single classification result.
func (jw *JSONWriter) Write(r *call.Result) error {
	jw.results = append(jw.results, r)
	return nil
}

// Flush encodes the buffered results as an indented JSON array.
func (jw *JSONWriter) Flush() error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	if jw.results == nil {
		return enc.Encode([]*call.Result{})
	}
	return enc.Encode(jw.results)
}

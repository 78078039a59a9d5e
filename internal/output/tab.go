// Package output provides classification report writers.
package output

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/openpgx/starcall/internal/call"
)

// TabWriter writes one tab-delimited row per gene per sample.
type TabWriter struct {
	w       *bufio.Writer
	columns []string
}

// NewTabWriter creates a new tab-delimited report writer.
func NewTabWriter(w io.Writer) *TabWriter {
	return &TabWriter{
		w: bufio.NewWriter(w),
		columns: []string{
			"#Sample",
			"Gene",
			"Diplotype",
			"Phenotype",
			"Activity_Score",
			"Confidence",
			"Phase_Ambiguous",
			"Candidate_Diplotypes",
			"Limitations",
		},
	}
}

// WriteHeader writes the header line.
func (tw *TabWriter) WriteHeader() error {
	_, err := tw.w.WriteString(strings.Join(tw.columns, "\t") + "\n")
	return err
}

// Write writes a single classification result.
func (tw *TabWriter) Write(r *call.Result) error {
	score := "-"
	if r.ActivityScore != nil {
		score = strconv.FormatFloat(*r.ActivityScore, 'g', -1, 64)
	}

	candidates := "-"
	if len(r.Diplotype.Candidates) > 0 {
		parts := make([]string, len(r.Diplotype.Candidates))
		for i, p := range r.Diplotype.Candidates {
			parts[i] = p.String()
		}
		candidates = strings.Join(parts, ",")
	}

	limitations := "-"
	if len(r.Limitations) > 0 {
		limitations = strings.Join(r.Limitations, "; ")
	}

	phase := "no"
	if r.Diplotype.PhaseAmbiguous {
		phase = "yes"
	}

	fields := []string{
		r.Sample,
		r.Gene,
		r.Diplotype.Pair.String(),
		string(r.Phenotype),
		score,
		r.Confidence.String(),
		phase,
		candidates,
		limitations,
	}

	_, err := tw.w.WriteString(strings.Join(fields, "\t") + "\n")
	if err != nil {
		return fmt.Errorf("write report row: %w", err)
	}
	return nil
}

// Flush flushes buffered output.
func (tw *TabWriter) Flush() error {
	return tw.w.Flush()
}

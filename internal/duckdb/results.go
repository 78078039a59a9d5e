package duckdb

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	goduckdb "github.com/marcboeker/go-duckdb"

	"github.com/openpgx/starcall/internal/call"
)

// StoredCall is one persisted diplotype call row.
type StoredCall struct {
	SampleID       string
	Gene           string
	Allele1        string
	Allele2        string
	PhaseAmbiguous bool
	Candidates     []string
	Phenotype      string
	ActivityScore  *float64
	Confidence     string
	Limitations    []string
	CalledAt       time.Time
}

// Diplotype renders the call in conventional notation.
func (sc *StoredCall) Diplotype() string {
	return sc.Allele1 + "/" + sc.Allele2
}

// callKey is the composite key for deduplicating calls before writing.
type callKey struct {
	sample, gene string
}

// WriteResults batch-inserts classification results using the Appender
// API. Duplicate (sample_id, gene) entries keep the first occurrence.
func (s *Store) WriteResults(results []*call.Result) error {
	if len(results) == 0 {
		return nil
	}

	seen := make(map[callKey]bool, len(results))
	deduped := make([]*call.Result, 0, len(results))
	for _, r := range results {
		k := callKey{r.Sample, r.Gene}
		if !seen[k] {
			seen[k] = true
			deduped = append(deduped, r)
		}
	}

	conn, err := s.db.Conn(context.Background())
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	var appender *goduckdb.Appender
	if err := conn.Raw(func(driverConn any) error {
		var err error
		appender, err = goduckdb.NewAppenderFromConn(driverConn.(driver.Conn), "", "diplotype_calls")
		return err
	}); err != nil {
		return fmt.Errorf("create appender: %w", err)
	}
	defer appender.Close()

	now := time.Now().UTC()
	for _, r := range deduped {
		candidates, err := encodeStrings(candidateStrings(r))
		if err != nil {
			return err
		}
		limitations, err := encodeStrings(r.Limitations)
		if err != nil {
			return err
		}

		score := 0.0
		hasScore := r.ActivityScore != nil
		if hasScore {
			score = *r.ActivityScore
		}

		if err := appender.AppendRow(
			r.Sample, r.Gene,
			r.Diplotype.Pair.Allele1, r.Diplotype.Pair.Allele2,
			r.Diplotype.PhaseAmbiguous, candidates,
			string(r.Phenotype), score, hasScore,
			r.Confidence.String(), limitations, now,
		); err != nil {
			return fmt.Errorf("append diplotype call: %w", err)
		}
	}

	return appender.Flush()
}

func candidateStrings(r *call.Result) []string {
	if len(r.Diplotype.Candidates) == 0 {
		return nil
	}
	out := make([]string, len(r.Diplotype.Candidates))
	for i, p := range r.Diplotype.Candidates {
		out[i] = p.String()
	}
	return out
}

func encodeStrings(values []string) (string, error) {
	if len(values) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("encode string list: %w", err)
	}
	return string(b), nil
}

const callColumns = `sample_id, gene, allele1, allele2, phase_ambiguous,
	candidate_diplotypes, phenotype, activity_score, has_activity_score,
	confidence, limitations, called_at`

// ResultsForSample returns all stored calls for one sample in gene order.
func (s *Store) ResultsForSample(sampleID string) ([]*StoredCall, error) {
	rows, err := s.db.Query(
		`SELECT `+callColumns+` FROM diplotype_calls WHERE sample_id = ? ORDER BY gene`,
		sampleID)
	if err != nil {
		return nil, fmt.Errorf("query calls: %w", err)
	}
	defer rows.Close()
	return scanCalls(rows)
}

// ResultsForGene returns all stored calls for one gene across samples.
func (s *Store) ResultsForGene(geneID string) ([]*StoredCall, error) {
	rows, err := s.db.Query(
		`SELECT `+callColumns+` FROM diplotype_calls WHERE gene = ? ORDER BY sample_id`,
		geneID)
	if err != nil {
		return nil, fmt.Errorf("query calls: %w", err)
	}
	defer rows.Close()
	return scanCalls(rows)
}

// Samples returns the distinct sample ids in the store.
func (s *Store) Samples() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT sample_id FROM diplotype_calls ORDER BY sample_id`)
	if err != nil {
		return nil, fmt.Errorf("query samples: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan sample id: %w", err)
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

// CallCount returns the number of stored calls.
func (s *Store) CallCount() (int64, error) {
	var n int64
	err := s.db.QueryRow(`SELECT COUNT(*) FROM diplotype_calls`).Scan(&n)
	return n, err
}

// rowScanner covers *sql.Rows for scanCalls.
type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanCalls(rows rowScanner) ([]*StoredCall, error) {
	var out []*StoredCall
	for rows.Next() {
		var (
			sc          StoredCall
			candidates  string
			limitations string
			score       float64
			hasScore    bool
		)
		if err := rows.Scan(
			&sc.SampleID, &sc.Gene, &sc.Allele1, &sc.Allele2, &sc.PhaseAmbiguous,
			&candidates, &sc.Phenotype, &score, &hasScore,
			&sc.Confidence, &limitations, &sc.CalledAt,
		); err != nil {
			return nil, fmt.Errorf("scan call: %w", err)
		}
		if hasScore {
			sc.ActivityScore = &score
		}
		if err := json.Unmarshal([]byte(candidates), &sc.Candidates); err != nil {
			return nil, fmt.Errorf("decode candidates: %w", err)
		}
		if err := json.Unmarshal([]byte(limitations), &sc.Limitations); err != nil {
			return nil, fmt.Errorf("decode limitations: %w", err)
		}
		out = append(out, &sc)
	}
	return out, rows.Err()
}

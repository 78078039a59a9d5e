// Package genotype provides genotype models and raw genotype file parsing.
package genotype

import "strings"

// Call represents a single raw marker call from a genotype file.
type Call struct {
	RSID     string // Marker identifier (e.g., rs4244285)
	Chrom    string // Chromosome name (e.g., "10", "chr10")
	Pos      int64  // 1-based genomic position
	Genotype string // Raw genotype string as reported (e.g., "AG", "A/G", "--")
}

// NormalizeChrom returns the chromosome name without "chr" prefix.
func (c *Call) NormalizeChrom() string {
	if len(c.Chrom) > 3 && c.Chrom[:3] == "chr" {
		return c.Chrom[3:]
	}
	return c.Chrom
}

// Sample holds one sample's canonical genotypes keyed by rsid.
// Values are always in canonical form: two uppercase nucleotides,
// alphabetically ordered (e.g. "AG", never "GA").
type Sample map[string]string

// Genotype returns the canonical genotype for the given rsid.
func (s Sample) Genotype(rsid string) (string, bool) {
	g, ok := s[rsid]
	return g, ok
}

// nucleotide complement table for strand flipping.
var complement = map[byte]byte{
	'A': 'T',
	'C': 'G',
	'G': 'C',
	'T': 'A',
}

// IsNucleotide returns true if b is one of A, C, G, T.
func IsNucleotide(b byte) bool {
	_, ok := complement[b]
	return ok
}

// Canonicalize converts a raw genotype string to canonical form:
// exactly two uppercase nucleotides in alphabetical order.
// Separator characters ("/", "|") and surrounding whitespace are tolerated.
// Returns false for anything else (no-calls like "--", indel codes like
// "DD" or "II", single-letter calls), which callers treat as a missing
// marker rather than an error.
func Canonicalize(raw string) (string, bool) {
	g := strings.ToUpper(strings.TrimSpace(raw))
	g = strings.ReplaceAll(g, "/", "")
	g = strings.ReplaceAll(g, "|", "")

	if len(g) != 2 {
		return "", false
	}
	if !IsNucleotide(g[0]) || !IsNucleotide(g[1]) {
		return "", false
	}
	if g[0] > g[1] {
		return string([]byte{g[1], g[0]}), true
	}
	return g, true
}

// Complement returns the canonical genotype on the opposite strand.
// The input must already be canonical; the result is re-sorted so it
// stays canonical (e.g. "AG" -> "CT").
func Complement(g string) (string, bool) {
	if len(g) != 2 {
		return "", false
	}
	a, ok := complement[g[0]]
	if !ok {
		return "", false
	}
	b, ok := complement[g[1]]
	if !ok {
		return "", false
	}
	if a > b {
		a, b = b, a
	}
	return string([]byte{a, b}), true
}

// Package gene defines the static pharmacogene tables: marker variants,
// star alleles, activity scores, and phenotype boundary tables.
// All values are read-only after registry construction.
package gene

// FunctionalStatus describes the functional impact of a star allele.
type FunctionalStatus int

const (
	FunctionIncreased FunctionalStatus = iota
	FunctionNormal
	FunctionDecreased
	FunctionNone
)

// String returns the display name of the functional status.
func (s FunctionalStatus) String() string {
	switch s {
	case FunctionIncreased:
		return "Increased function"
	case FunctionNormal:
		return "Normal function"
	case FunctionDecreased:
		return "Decreased function"
	case FunctionNone:
		return "No function"
	default:
		return "Unknown function"
	}
}

// Severity ranks functional impact for conservative tie-breaking.
// Higher means more severe loss of function.
func (s FunctionalStatus) Severity() int {
	switch s {
	case FunctionNone:
		return 3
	case FunctionDecreased:
		return 2
	case FunctionNormal:
		return 1
	case FunctionIncreased:
		return 0
	default:
		return -1
	}
}

// Marker defines one marker variant diagnostic of one star allele.
// The variant allele on the forward reference strand, when present,
// indicates one copy of StarAllele.
type Marker struct {
	RSID       string           // Marker identifier (e.g., rs4244285)
	Chrom      string           // Chromosome (GRCh38 naming, informational)
	Pos        int64            // 1-based genomic position (informational)
	Ref        string           // Reference nucleotide (single base)
	Var        string           // Variant nucleotide (single base)
	StarAllele string           // Star allele the variant defines (e.g., "*2")
	Status     FunctionalStatus // Functional impact of the star allele
	Score      float64          // Activity score contribution; unused for lookup-model genes
}

// Model selects how a profile maps diplotypes to phenotypes.
type Model int

const (
	// ModelAdditive sums both alleles' activity scores and buckets the
	// total through the profile's boundary table.
	ModelAdditive Model = iota
	// ModelLookup reads the phenotype directly from a diplotype-keyed
	// table; no score arithmetic is performed.
	ModelLookup
)

// Band is one activity-score interval in a profile's boundary table.
// Boundary inclusivity is explicit per edge because gene tables are not
// symmetric across genes.
type Band struct {
	Min          float64
	MinExclusive bool
	Max          float64
	MaxExclusive bool
	Phenotype    Phenotype
}

// Contains reports whether score falls inside the band.
func (b Band) Contains(score float64) bool {
	if b.MinExclusive {
		if score <= b.Min {
			return false
		}
	} else if score < b.Min {
		return false
	}
	if b.MaxExclusive {
		if score >= b.Max {
			return false
		}
	} else if score > b.Max {
		return false
	}
	return true
}

// LookupEntry is one row of a lookup-model genotype table.
// Score is a sensitivity score on the gene's own scale, not an
// activity score.
type LookupEntry struct {
	Phenotype Phenotype
	Score     float64
}

// Profile describes one gene's star alleles and classification rules.
// Bands applies to the additive model; Lookup, keyed on the "a1/a2"
// diplotype string, applies to the lookup model.
type Profile struct {
	Gene            string // Gene symbol (e.g., CYP2C19)
	Model           Model
	ReferenceAllele string           // Name of the default allele (e.g., "*1")
	ReferenceScore  float64          // Activity score of the reference allele
	ReferenceStatus FunctionalStatus // Functional impact of the reference allele
	Markers         []Marker         // Ordered marker panel
	Bands           []Band
	Lookup          map[string]LookupEntry
}

// AlleleInfo holds the functional data for one star allele.
type AlleleInfo struct {
	Name   string
	Status FunctionalStatus
	Score  float64
}

// Allele returns the functional data for a named allele, or false if the
// allele is not part of this profile's known set.
func (p *Profile) Allele(name string) (AlleleInfo, bool) {
	if name == p.ReferenceAllele {
		return AlleleInfo{Name: name, Status: p.ReferenceStatus, Score: p.ReferenceScore}, true
	}
	for _, m := range p.Markers {
		if m.StarAllele == name {
			return AlleleInfo{Name: name, Status: m.Status, Score: m.Score}, true
		}
	}
	return AlleleInfo{}, false
}

// RSIDs returns the panel rsids in marker order, without duplicates.
func (p *Profile) RSIDs() []string {
	seen := make(map[string]bool, len(p.Markers))
	out := make([]string, 0, len(p.Markers))
	for _, m := range p.Markers {
		if seen[m.RSID] {
			continue
		}
		seen[m.RSID] = true
		out = append(out, m.RSID)
	}
	return out
}

// MarkersAt returns the markers defined at one rsid, in panel order.
// Most rsids carry exactly one marker; panels that reuse an rsid for
// more than one candidate star allele return several.
func (p *Profile) MarkersAt(rsid string) []Marker {
	var out []Marker
	for _, m := range p.Markers {
		if m.RSID == rsid {
			out = append(out, m)
		}
	}
	return out
}

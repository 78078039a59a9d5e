package gene

import "fmt"

// Registry is the immutable set of gene profiles the engine classifies
// against. It is built once at startup and never written afterwards, so
// concurrent readers need no locking.
type Registry struct {
	order    []string
	profiles map[string]*Profile
}

// NewRegistry validates the given profiles and builds a registry.
// Profile order is preserved for deterministic report output.
func NewRegistry(profiles ...*Profile) (*Registry, error) {
	r := &Registry{
		profiles: make(map[string]*Profile, len(profiles)),
	}
	for _, p := range profiles {
		if err := validateProfile(p); err != nil {
			return nil, fmt.Errorf("profile %s: %w", p.Gene, err)
		}
		if _, dup := r.profiles[p.Gene]; dup {
			return nil, fmt.Errorf("duplicate profile for gene %s", p.Gene)
		}
		r.order = append(r.order, p.Gene)
		r.profiles[p.Gene] = p
	}
	return r, nil
}

// validateProfile checks the structural invariants of a profile.
func validateProfile(p *Profile) error {
	if p.Gene == "" {
		return fmt.Errorf("missing gene symbol")
	}
	if p.ReferenceAllele == "" {
		return fmt.Errorf("missing reference allele")
	}
	if len(p.Markers) == 0 {
		return fmt.Errorf("no markers defined")
	}
	for _, m := range p.Markers {
		if m.RSID == "" {
			return fmt.Errorf("marker for %s has no rsid", m.StarAllele)
		}
		if len(m.Ref) != 1 || !IsNucleotideString(m.Ref) {
			return fmt.Errorf("marker %s: invalid reference allele %q", m.RSID, m.Ref)
		}
		if len(m.Var) != 1 || !IsNucleotideString(m.Var) {
			return fmt.Errorf("marker %s: invalid variant allele %q", m.RSID, m.Var)
		}
		if m.Ref == m.Var {
			return fmt.Errorf("marker %s: reference and variant alleles are identical", m.RSID)
		}
		if m.StarAllele == "" || m.StarAllele == p.ReferenceAllele {
			return fmt.Errorf("marker %s: invalid star allele %q", m.RSID, m.StarAllele)
		}
	}
	switch p.Model {
	case ModelAdditive:
		if len(p.Bands) == 0 {
			return fmt.Errorf("additive model requires a boundary table")
		}
	case ModelLookup:
		if len(p.Lookup) == 0 {
			return fmt.Errorf("lookup model requires a genotype table")
		}
	default:
		return fmt.Errorf("unknown model %d", p.Model)
	}
	return nil
}

// IsNucleotideString reports whether s is a single A/C/G/T base.
func IsNucleotideString(s string) bool {
	return len(s) == 1 && IsNucleotide(s[0])
}

// IsNucleotide reports whether b is one of A, C, G, T.
func IsNucleotide(b byte) bool {
	switch b {
	case 'A', 'C', 'G', 'T':
		return true
	}
	return false
}

// Profile returns the profile for a gene symbol.
func (r *Registry) Profile(geneID string) (*Profile, bool) {
	p, ok := r.profiles[geneID]
	return p, ok
}

// Genes returns the registered gene symbols in registration order.
func (r *Registry) Genes() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// RSIDs returns every rsid across all registered profiles.
func (r *Registry) RSIDs() map[string]bool {
	out := make(map[string]bool)
	for _, g := range r.order {
		for _, rsid := range r.profiles[g].RSIDs() {
			out[rsid] = true
		}
	}
	return out
}

// Package call implements the diplotype-calling and phenotype-classification
// engine: per-marker zygosity resolution, star-allele diplotype inference,
// activity-score or lookup phenotype classification, and confidence grading.
// Every function is pure over its inputs; nothing in this package holds
// state across invocations.
package call

import (
	"github.com/openpgx/starcall/internal/gene"
	"github.com/openpgx/starcall/internal/genotype"
)

// Zygosity is the variant-allele copy count observed at one marker.
type Zygosity int

const (
	// ZygosityAbsent means the marker was not observed, or its genotype
	// could not be interpreted against the marker's alleles.
	ZygosityAbsent Zygosity = iota
	ZygosityHomozygousRef
	ZygosityHeterozygous
	ZygosityHomozygousVariant
)

// String returns the display name of the zygosity.
func (z Zygosity) String() string {
	switch z {
	case ZygosityAbsent:
		return "absent"
	case ZygosityHomozygousRef:
		return "homozygous_reference"
	case ZygosityHeterozygous:
		return "heterozygous"
	case ZygosityHomozygousVariant:
		return "homozygous_variant"
	default:
		return "invalid"
	}
}

// VariantCopies returns the number of variant-allele copies (0, 1 or 2).
func (z Zygosity) VariantCopies() int {
	switch z {
	case ZygosityHeterozygous:
		return 1
	case ZygosityHomozygousVariant:
		return 2
	default:
		return 0
	}
}

// SiteCall is the resolved zygosity at one panel rsid, together with the
// candidate star alleles the site can diagnose. Candidates are ordered
// most severe functional impact first, so the tie-break of the diplotype
// caller can take the head of the list.
type SiteCall struct {
	RSID       string
	Genotype   string // canonical observed genotype, "" when absent
	Zygosity   Zygosity
	Candidates []gene.Marker
}

// ResolveZygosity resolves the sample's genotypes against one profile's
// marker panel. Output is ordered by the profile's rsid order and always
// contains one entry per panel rsid.
//
// Genotypes are expected in canonical form. A genotype whose letters do
// not match the marker's ref/var alleles is retried on the opposite
// strand; if it still does not match it is treated as absent, never as
// an error.
func ResolveZygosity(p *gene.Profile, s genotype.Sample) []SiteCall {
	rsids := p.RSIDs()
	out := make([]SiteCall, 0, len(rsids))

	for _, rsid := range rsids {
		markers := orderBySeverity(p.MarkersAt(rsid))
		sc := SiteCall{RSID: rsid, Candidates: markers}

		g, ok := s.Genotype(rsid)
		if ok {
			// All markers at one rsid share ref/var alleles; resolve
			// against the first.
			m := markers[0]
			if resolved, match := matchAlleles(g, m.Ref, m.Var); match {
				sc.Genotype = resolved
				sc.Zygosity = countVariantAlleles(resolved, m.Var)
			}
		}

		out = append(out, sc)
	}

	return out
}

// matchAlleles checks that every letter of the canonical genotype g is
// one of ref/var, flipping strand once if needed. Returns the genotype
// in panel-strand orientation.
func matchAlleles(g, ref, vr string) (string, bool) {
	if genotypeMatches(g, ref, vr) {
		return g, true
	}
	flipped, ok := genotype.Complement(g)
	if ok && genotypeMatches(flipped, ref, vr) {
		return flipped, true
	}
	return "", false
}

func genotypeMatches(g, ref, vr string) bool {
	if len(g) != 2 {
		return false
	}
	for i := 0; i < 2; i++ {
		b := string(g[i])
		if b != ref && b != vr {
			return false
		}
	}
	return true
}

func countVariantAlleles(g, vr string) Zygosity {
	n := 0
	for i := 0; i < 2; i++ {
		if string(g[i]) == vr {
			n++
		}
	}
	switch n {
	case 2:
		return ZygosityHomozygousVariant
	case 1:
		return ZygosityHeterozygous
	default:
		return ZygosityHomozygousRef
	}
}

// orderBySeverity sorts markers most severe first, keeping panel order
// between equals. The slice is copied; profiles are never mutated.
func orderBySeverity(markers []gene.Marker) []gene.Marker {
	out := make([]gene.Marker, len(markers))
	copy(out, markers)
	// Stable insertion sort; the slice is nearly always length one.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Status.Severity() > out[j-1].Status.Severity(); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

package call

import (
	"fmt"
	"strings"

	"github.com/openpgx/starcall/internal/gene"
)

// AllelePair is an ordered pair of star-allele names.
type AllelePair struct {
	Allele1 string `json:"allele1"`
	Allele2 string `json:"allele2"`
}

// String renders the pair in conventional diplotype notation, e.g. "*1/*2".
func (p AllelePair) String() string {
	return p.Allele1 + "/" + p.Allele2
}

// State is the terminal state of one diplotype call. Every invocation
// ends in exactly one state; nothing persists across calls.
type State int

const (
	StateUnresolved State = iota
	StateReference
	StateHomozygousVariant
	StateHeterozygous
	StatePhaseAmbiguous
	StateIndeterminate
)

// String returns the display name of the call state.
func (s State) String() string {
	switch s {
	case StateReference:
		return "reference"
	case StateHomozygousVariant:
		return "homozygous_variant"
	case StateHeterozygous:
		return "heterozygous"
	case StatePhaseAmbiguous:
		return "phase_ambiguous"
	case StateIndeterminate:
		return "indeterminate"
	default:
		return "unresolved"
	}
}

// Diplotype is the inferred allele pair for one gene on one sample.
type Diplotype struct {
	Pair           AllelePair   `json:"pair"`
	State          State        `json:"-"`
	PhaseAmbiguous bool         `json:"phase_ambiguous"`
	Candidates     []AllelePair `json:"candidate_diplotypes,omitempty"`
}

// CallDiplotype infers the diplotype from resolved site calls.
//
// The rules, applied in order over sites carrying variant alleles:
//  1. none: reference homozygote.
//  2. one homozygous-variant site, rest reference/absent: that allele on
//     both chromosomes.
//  3. one heterozygous site, rest reference/absent: reference plus that
//     allele.
//  4. exactly two heterozygous sites: unphased genotyping cannot place
//     the two variants, so the compound heterozygote is called as the
//     declared primary, with the two single-variant alternatives listed
//     as candidates. This is a conservative assumption, not a phased
//     inference.
//  5. anything else: indeterminate; the call defaults to the reference
//     diplotype and the conflicting sites are surfaced as a limitation
//     instead of being folded into the diplotype.
//
// When a site diagnoses more than one star allele, the more severe
// allele is the primary call and milder alternatives become candidates.
// Under-calling loss of function is worse than over-calling it for
// downstream dosing guidance.
func CallDiplotype(p *gene.Profile, sites []SiteCall) (Diplotype, []string) {
	var hets, homs []SiteCall
	for _, sc := range sites {
		switch sc.Zygosity {
		case ZygosityHeterozygous:
			hets = append(hets, sc)
		case ZygosityHomozygousVariant:
			homs = append(homs, sc)
		}
	}

	ref := p.ReferenceAllele

	switch {
	case len(homs) == 0 && len(hets) == 0:
		return Diplotype{
			Pair:  AllelePair{ref, ref},
			State: StateReference,
		}, nil

	case len(homs) == 1 && len(hets) == 0:
		site := homs[0]
		star := site.Candidates[0].StarAllele
		d := Diplotype{
			Pair:  AllelePair{star, star},
			State: StateHomozygousVariant,
		}
		for _, alt := range site.Candidates[1:] {
			d.Candidates = append(d.Candidates, AllelePair{alt.StarAllele, alt.StarAllele})
		}
		return d, nil

	case len(homs) == 0 && len(hets) == 1:
		site := hets[0]
		star := site.Candidates[0].StarAllele
		d := Diplotype{
			Pair:  AllelePair{ref, star},
			State: StateHeterozygous,
		}
		for _, alt := range site.Candidates[1:] {
			d.Candidates = append(d.Candidates, AllelePair{ref, alt.StarAllele})
		}
		return d, nil

	case len(homs) == 0 && len(hets) == 2:
		star1 := hets[0].Candidates[0].StarAllele
		star2 := hets[1].Candidates[0].StarAllele
		primary := AllelePair{star1, star2}
		return Diplotype{
			Pair:           primary,
			State:          StatePhaseAmbiguous,
			PhaseAmbiguous: true,
			Candidates: []AllelePair{
				primary,
				{ref, star1},
				{ref, star2},
			},
		}, nil

	default:
		limitation := fmt.Sprintf(
			"conflicting variant calls at %s; reported conservative %s/%s diplotype",
			describeVariantSites(append(homs, hets...)), ref, ref)
		return Diplotype{
			Pair:  AllelePair{ref, ref},
			State: StateIndeterminate,
		}, []string{limitation}
	}
}

// describeVariantSites renders the audit list for indeterminate calls.
func describeVariantSites(sites []SiteCall) string {
	parts := make([]string, 0, len(sites))
	for _, sc := range sites {
		parts = append(parts, fmt.Sprintf("%s (%s, %s)",
			sc.RSID, sc.Candidates[0].StarAllele, sc.Zygosity))
	}
	return strings.Join(parts, ", ")
}

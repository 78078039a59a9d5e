package call

import "github.com/openpgx/starcall/internal/gene"

// PhenotypeResult is the classified phenotype for one diplotype.
// ActivityScore is nil for lookup-model genes without a defined score
// and whenever either allele is not in the gene's known set.
type PhenotypeResult struct {
	Phenotype     gene.Phenotype
	ActivityScore *float64
}

// ClassifyPhenotype maps a diplotype to a phenotype using the profile's
// model.
//
// Additive model: the activity score is the sum of both alleles'
// scores, bucketed through the profile's boundary table. An allele
// outside the profile's known set classifies as Unknown; it never
// defaults to a numeric score. Increased-function alleles can push the
// total past the nominal maximum, which is how the ultrarapid bands are
// reached.
//
// Lookup model: the diplotype string is the key into the genotype
// table; no score arithmetic is performed. The entry's score, when
// present, is a sensitivity score on the gene's own scale.
func ClassifyPhenotype(p *gene.Profile, d Diplotype) PhenotypeResult {
	switch p.Model {
	case gene.ModelLookup:
		return classifyLookup(p, d)
	default:
		return classifyAdditive(p, d)
	}
}

func classifyAdditive(p *gene.Profile, d Diplotype) PhenotypeResult {
	a1, ok1 := p.Allele(d.Pair.Allele1)
	a2, ok2 := p.Allele(d.Pair.Allele2)
	if !ok1 || !ok2 {
		return PhenotypeResult{Phenotype: gene.PhenotypeUnknown}
	}

	score := a1.Score + a2.Score
	for _, band := range p.Bands {
		if band.Contains(score) {
			return PhenotypeResult{Phenotype: band.Phenotype, ActivityScore: &score}
		}
	}

	// Score falls outside every declared band; report it but do not
	// guess a category.
	return PhenotypeResult{Phenotype: gene.PhenotypeUnknown, ActivityScore: &score}
}

func classifyLookup(p *gene.Profile, d Diplotype) PhenotypeResult {
	entry, ok := p.Lookup[d.Pair.String()]
	if !ok {
		// Allele order in the table key is fixed; accept the swapped
		// orientation of the same pair.
		entry, ok = p.Lookup[AllelePair{d.Pair.Allele2, d.Pair.Allele1}.String()]
	}
	if !ok {
		return PhenotypeResult{Phenotype: gene.PhenotypeUnknown}
	}
	score := entry.Score
	return PhenotypeResult{Phenotype: entry.Phenotype, ActivityScore: &score}
}

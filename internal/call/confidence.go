package call

import (
	"fmt"

	"github.com/openpgx/starcall/internal/gene"
)

// Confidence grades how well the data supports a call.
type Confidence int

const (
	ConfidenceLow Confidence = iota
	ConfidenceMedium
	ConfidenceHigh
)

// String returns the lowercase confidence name used in reports.
func (c Confidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	default:
		return "low"
	}
}

// min returns the lower of two confidence levels.
func (c Confidence) min(o Confidence) Confidence {
	if o < c {
		return o
	}
	return c
}

// Grade derives the confidence of a call from three checks, composed by
// taking the minimum so one passing check never upgrades a failing one:
//
//   - every panel marker observed, else confidence caps at low and the
//     phenotype must be masked to Unknown;
//   - no phase ambiguity, else confidence caps at medium;
//   - both resolved alleles recognized members of the gene's allele set
//     and the marker pattern itself resolvable, else low.
//
// maskPhenotype reports whether the caller must replace the phenotype
// with Unknown (missing required data). Limitations describe each
// failing check for the report.
func Grade(p *gene.Profile, sites []SiteCall, d Diplotype) (c Confidence, maskPhenotype bool, limitations []string) {
	c = ConfidenceHigh

	for _, sc := range sites {
		if sc.Zygosity == ZygosityAbsent {
			c = c.min(ConfidenceLow)
			maskPhenotype = true
			limitations = append(limitations, fmt.Sprintf(
				"marker %s (defines %s) was not genotyped",
				sc.RSID, sc.Candidates[0].StarAllele))
		}
	}

	if d.PhaseAmbiguous {
		c = c.min(ConfidenceMedium)
	}

	if d.State == StateIndeterminate {
		c = c.min(ConfidenceLow)
	}

	if _, ok := p.Allele(d.Pair.Allele1); !ok {
		c = c.min(ConfidenceLow)
		limitations = append(limitations, fmt.Sprintf("allele %s is not in the %s allele set", d.Pair.Allele1, p.Gene))
	}
	if _, ok := p.Allele(d.Pair.Allele2); !ok {
		c = c.min(ConfidenceLow)
		limitations = append(limitations, fmt.Sprintf("allele %s is not in the %s allele set", d.Pair.Allele2, p.Gene))
	}

	return c, maskPhenotype, limitations
}

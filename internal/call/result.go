package call

import (
	"fmt"

	"github.com/openpgx/starcall/internal/gene"
)

// Result is the assembled classification for one gene on one sample:
// diplotype, phenotype, confidence and the limitations that apply.
// It is plain structured data for the downstream recommendation layer;
// assembly performs no I/O and logs nothing.
type Result struct {
	Sample        string         `json:"sample,omitempty"`
	Gene          string         `json:"gene"`
	Diplotype     Diplotype      `json:"diplotype"`
	Phenotype     gene.Phenotype `json:"phenotype"`
	ActivityScore *float64       `json:"activity_score,omitempty"`
	Confidence    Confidence     `json:"confidence"`
	Limitations   []string       `json:"limitations,omitempty"`
}

// MarshalText lets Confidence render as its lowercase name in JSON maps
// and report columns.
func (c Confidence) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText parses a lowercase confidence name.
func (c *Confidence) UnmarshalText(b []byte) error {
	switch string(b) {
	case "high":
		*c = ConfidenceHigh
	case "medium":
		*c = ConfidenceMedium
	case "low":
		*c = ConfidenceLow
	default:
		return fmt.Errorf("unknown confidence %q", b)
	}
	return nil
}

// assemble packages the stages into the final Result.
func assemble(p *gene.Profile, d Diplotype, ph PhenotypeResult, conf Confidence, mask bool, limitations []string) *Result {
	r := &Result{
		Gene:          p.Gene,
		Diplotype:     d,
		Phenotype:     ph.Phenotype,
		ActivityScore: ph.ActivityScore,
		Confidence:    conf,
		Limitations:   limitations,
	}
	if mask {
		r.Phenotype = gene.PhenotypeUnknown
		r.ActivityScore = nil
	}
	return r
}

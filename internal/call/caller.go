package call

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/openpgx/starcall/internal/gene"
	"github.com/openpgx/starcall/internal/genotype"
)

// ProfileSource defines the interface for looking up gene profiles.
type ProfileSource interface {
	Profile(geneID string) (*gene.Profile, bool)
	Genes() []string
}

// Caller classifies samples against a gene registry.
type Caller struct {
	profiles ProfileSource
	logger   *zap.Logger
}

// NewCaller creates a caller over the given profile source.
func NewCaller(profiles ProfileSource) *Caller {
	return &Caller{
		profiles: profiles,
		logger:   zap.NewNop(),
	}
}

// SetLogger sets the logger for warning and info messages. Log output
// never includes genotype values, only gene symbols and counts.
func (c *Caller) SetLogger(l *zap.Logger) {
	c.logger = l
}

// Classify runs the full pipeline for one gene on one sample: zygosity
// resolution, diplotype inference, phenotype classification, confidence
// grading, result assembly.
//
// The only error condition is an unregistered gene id. Data-quality
// problems (missing markers, malformed genotypes, unrecognized allele
// combinations) are always absorbed into a valid, lower-confidence
// result per the non-fatal error design.
func (c *Caller) Classify(geneID string, s genotype.Sample) (*Result, error) {
	p, ok := c.profiles.Profile(geneID)
	if !ok {
		return nil, fmt.Errorf("unknown gene %q", geneID)
	}

	sites := ResolveZygosity(p, s)
	d, callLimitations := CallDiplotype(p, sites)
	ph := ClassifyPhenotype(p, d)
	conf, mask, gradeLimitations := Grade(p, sites, d)

	limitations := append(callLimitations, gradeLimitations...)
	r := assemble(p, d, ph, conf, mask, limitations)

	if conf < ConfidenceHigh {
		c.logger.Debug("reduced-confidence call",
			zap.String("gene", geneID),
			zap.String("confidence", conf.String()),
			zap.Int("limitations", len(limitations)))
	}

	return r, nil
}

// ClassifyAll classifies one sample across every registered gene and
// writes results in registry order. sampleID is stamped onto each
// result for multi-sample reports.
func (c *Caller) ClassifyAll(sampleID string, s genotype.Sample, w ResultWriter) error {
	for _, geneID := range c.profiles.Genes() {
		r, err := c.Classify(geneID, s)
		if err != nil {
			return err
		}
		r.Sample = sampleID
		if err := w.Write(r); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
	}
	return w.Flush()
}

// ClassifySample classifies one sample across every registered gene and
// returns the results in registry order.
func (c *Caller) ClassifySample(sampleID string, s genotype.Sample) ([]*Result, error) {
	var out []*Result
	for _, geneID := range c.profiles.Genes() {
		r, err := c.Classify(geneID, s)
		if err != nil {
			return nil, err
		}
		r.Sample = sampleID
		out = append(out, r)
	}
	return out, nil
}

// ResultWriter defines the interface for writing classification results.
type ResultWriter interface {
	WriteHeader() error
	Write(r *Result) error
	Flush() error
}

package call

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openpgx/starcall/internal/genotype"
)

func TestCallDiplotype_Reference(t *testing.T) {
	p := testProfile()
	sites := ResolveZygosity(p, genotype.Sample{"rs100": "CC", "rs200": "AA"})

	d, limitations := CallDiplotype(p, sites)

	assert.Equal(t, StateReference, d.State)
	assert.Equal(t, "*1/*1", d.Pair.String())
	assert.False(t, d.PhaseAmbiguous)
	assert.Empty(t, d.Candidates)
	assert.Empty(t, limitations)
}

func TestCallDiplotype_SingleHomozygousVariant(t *testing.T) {
	p := testProfile()
	sites := ResolveZygosity(p, genotype.Sample{"rs100": "TT", "rs200": "AA"})

	d, limitations := CallDiplotype(p, sites)

	assert.Equal(t, StateHomozygousVariant, d.State)
	assert.Equal(t, "*2/*2", d.Pair.String())
	assert.Empty(t, limitations)
}

func TestCallDiplotype_SingleHeterozygous(t *testing.T) {
	p := testProfile()
	sites := ResolveZygosity(p, genotype.Sample{"rs100": "CT", "rs200": "AA"})

	d, limitations := CallDiplotype(p, sites)

	assert.Equal(t, StateHeterozygous, d.State)
	assert.Equal(t, "*1/*2", d.Pair.String())
	assert.False(t, d.PhaseAmbiguous)
	assert.Empty(t, limitations)
}

// A heterozygote at a marker missing its partner marker still calls:
// absent markers do not block diplotype inference (confidence handles
// them separately).
func TestCallDiplotype_HeterozygousWithAbsentMarker(t *testing.T) {
	p := testProfile()
	sites := ResolveZygosity(p, genotype.Sample{"rs100": "CT"})

	d, _ := CallDiplotype(p, sites)

	assert.Equal(t, StateHeterozygous, d.State)
	assert.Equal(t, "*1/*2", d.Pair.String())
}

func TestCallDiplotype_PhaseAmbiguous(t *testing.T) {
	p := testProfile()
	sites := ResolveZygosity(p, genotype.Sample{"rs100": "CT", "rs200": "AC"})

	d, limitations := CallDiplotype(p, sites)

	assert.Equal(t, StatePhaseAmbiguous, d.State)
	assert.True(t, d.PhaseAmbiguous)
	assert.Equal(t, "*2/*3", d.Pair.String())
	require.Len(t, d.Candidates, 3)
	assert.Equal(t, "*2/*3", d.Candidates[0].String())
	assert.Equal(t, "*1/*2", d.Candidates[1].String())
	assert.Equal(t, "*1/*3", d.Candidates[2].String())
	assert.Empty(t, limitations)
}

func TestCallDiplotype_TwoHomozygousVariants(t *testing.T) {
	p := testProfile()
	sites := ResolveZygosity(p, genotype.Sample{"rs100": "TT", "rs200": "CC"})

	d, limitations := CallDiplotype(p, sites)

	assert.Equal(t, StateIndeterminate, d.State)
	assert.Equal(t, "*1/*1", d.Pair.String(), "conservative reference default")
	require.Len(t, limitations, 1)
	assert.Contains(t, limitations[0], "rs100")
	assert.Contains(t, limitations[0], "rs200")
	assert.Contains(t, limitations[0], "homozygous_variant")
}

func TestCallDiplotype_HomozygousPlusHeterozygous(t *testing.T) {
	p := testProfile()
	sites := ResolveZygosity(p, genotype.Sample{"rs100": "TT", "rs200": "AC"})

	d, limitations := CallDiplotype(p, sites)

	assert.Equal(t, StateIndeterminate, d.State)
	assert.Equal(t, "*1/*1", d.Pair.String())
	assert.NotEmpty(t, limitations)
}

// Three heterozygous sites also fall through to the indeterminate rule.
func TestCallDiplotype_ThreeVariantSites(t *testing.T) {
	p := testProfile()
	p.Markers = append(p.Markers, p.Markers[0])
	p.Markers[2].RSID = "rs400"
	p.Markers[2].StarAllele = "*8"

	sites := ResolveZygosity(p, genotype.Sample{"rs100": "CT", "rs200": "AC", "rs400": "CT"})

	d, limitations := CallDiplotype(p, sites)
	assert.Equal(t, StateIndeterminate, d.State)
	assert.NotEmpty(t, limitations)
}

// When one rsid can be explained by more than one star allele, the more
// severe allele is the primary call and the milder one becomes a
// candidate.
func TestCallDiplotype_SeverityTieBreak(t *testing.T) {
	p := aliasedProfile()

	sites := ResolveZygosity(p, genotype.Sample{"rs300": "GT"})
	d, _ := CallDiplotype(p, sites)

	assert.Equal(t, "*1/*4", d.Pair.String(), "no-function allele preferred as primary")
	require.Len(t, d.Candidates, 1)
	assert.Equal(t, "*1/*10", d.Candidates[0].String(), "milder alternative listed")

	sites = ResolveZygosity(p, genotype.Sample{"rs300": "TT"})
	d, _ = CallDiplotype(p, sites)

	assert.Equal(t, "*4/*4", d.Pair.String())
	require.Len(t, d.Candidates, 1)
	assert.Equal(t, "*10/*10", d.Candidates[0].String())
}

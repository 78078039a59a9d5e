package call

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openpgx/starcall/internal/genotype"
)

func TestGrade_Complete(t *testing.T) {
	p := testProfile()
	sites := ResolveZygosity(p, genotype.Sample{"rs100": "CT", "rs200": "AA"})
	d, _ := CallDiplotype(p, sites)

	conf, mask, limitations := Grade(p, sites, d)

	assert.Equal(t, ConfidenceHigh, conf)
	assert.False(t, mask)
	assert.Empty(t, limitations)
}

func TestGrade_MissingMarkerCapsLow(t *testing.T) {
	p := testProfile()
	sites := ResolveZygosity(p, genotype.Sample{"rs100": "CT"})
	d, _ := CallDiplotype(p, sites)

	conf, mask, limitations := Grade(p, sites, d)

	assert.Equal(t, ConfidenceLow, conf)
	assert.True(t, mask, "missing marker forces Unknown phenotype")
	require.Len(t, limitations, 1)
	assert.Contains(t, limitations[0], "rs200")
	assert.Contains(t, limitations[0], "not genotyped")
}

func TestGrade_PhaseAmbiguityCapsMedium(t *testing.T) {
	p := testProfile()
	sites := ResolveZygosity(p, genotype.Sample{"rs100": "CT", "rs200": "AC"})
	d, _ := CallDiplotype(p, sites)
	require.True(t, d.PhaseAmbiguous)

	conf, mask, _ := Grade(p, sites, d)

	assert.Equal(t, ConfidenceMedium, conf)
	assert.False(t, mask)
}

func TestGrade_IndeterminateCapsLow(t *testing.T) {
	p := testProfile()
	sites := ResolveZygosity(p, genotype.Sample{"rs100": "TT", "rs200": "CC"})
	d, _ := CallDiplotype(p, sites)
	require.Equal(t, StateIndeterminate, d.State)

	conf, _, _ := Grade(p, sites, d)
	assert.Equal(t, ConfidenceLow, conf)
}

func TestGrade_UnrecognizedAlleleCapsLow(t *testing.T) {
	p := testProfile()
	sites := ResolveZygosity(p, genotype.Sample{"rs100": "CC", "rs200": "AA"})
	d := Diplotype{Pair: AllelePair{"*1", "*99"}, State: StateHeterozygous}

	conf, _, limitations := Grade(p, sites, d)

	assert.Equal(t, ConfidenceLow, conf)
	assert.NotEmpty(t, limitations)
}

// Checks compose by minimum: a passing check never upgrades a failing
// one. Phase ambiguity plus a missing marker still grades low.
func TestGrade_MinComposition(t *testing.T) {
	p := testProfile()
	sites := ResolveZygosity(p, genotype.Sample{"rs100": "CT"})
	d := Diplotype{
		Pair:           AllelePair{"*2", "*3"},
		State:          StatePhaseAmbiguous,
		PhaseAmbiguous: true,
	}

	conf, mask, _ := Grade(p, sites, d)

	assert.Equal(t, ConfidenceLow, conf)
	assert.True(t, mask)
}

// Removing an observed marker from a complete input never increases
// confidence.
func TestGrade_CompletenessMonotonicity(t *testing.T) {
	p := testProfile()
	full := genotype.Sample{"rs100": "CT", "rs200": "AA"}

	fullSites := ResolveZygosity(p, full)
	fullD, _ := CallDiplotype(p, fullSites)
	fullConf, _, _ := Grade(p, fullSites, fullD)

	for rsid := range full {
		reduced := genotype.Sample{}
		for k, v := range full {
			if k != rsid {
				reduced[k] = v
			}
		}
		sites := ResolveZygosity(p, reduced)
		d, _ := CallDiplotype(p, sites)
		conf, mask, _ := Grade(p, sites, d)

		assert.LessOrEqual(t, conf, fullConf, "dropping %s must not raise confidence", rsid)
		assert.True(t, mask)
	}
}

func TestConfidenceStrings(t *testing.T) {
	assert.Equal(t, "high", ConfidenceHigh.String())
	assert.Equal(t, "medium", ConfidenceMedium.String())
	assert.Equal(t, "low", ConfidenceLow.String())
}

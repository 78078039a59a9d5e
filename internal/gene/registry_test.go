package gene

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()

	genes := r.Genes()
	assert.Contains(t, genes, "CYP2C19")
	assert.Contains(t, genes, "CYP2C9")
	assert.Contains(t, genes, "VKORC1")

	p, ok := r.Profile("CYP2C19")
	require.True(t, ok)
	assert.Equal(t, ModelAdditive, p.Model)
	assert.Equal(t, "*1", p.ReferenceAllele)

	v, ok := r.Profile("VKORC1")
	require.True(t, ok)
	assert.Equal(t, ModelLookup, v.Model)
	assert.NotEmpty(t, v.Lookup)

	_, ok = r.Profile("BRCA1")
	assert.False(t, ok)
}

func TestRegistry_GenesIsACopy(t *testing.T) {
	r := DefaultRegistry()
	genes := r.Genes()
	genes[0] = "MUTATED"
	assert.NotEqual(t, "MUTATED", r.Genes()[0])
}

func TestRegistry_RSIDs(t *testing.T) {
	r := DefaultRegistry()
	rsids := r.RSIDs()
	assert.True(t, rsids["rs4244285"])
	assert.True(t, rsids["rs9923231"])
	assert.False(t, rsids["rs0"])
}

func TestProfileAllele(t *testing.T) {
	r := DefaultRegistry()
	p, _ := r.Profile("CYP2C9")

	ref, ok := p.Allele("*1")
	require.True(t, ok)
	assert.Equal(t, 1.0, ref.Score)
	assert.Equal(t, FunctionNormal, ref.Status)

	star2, ok := p.Allele("*2")
	require.True(t, ok)
	assert.Equal(t, 0.5, star2.Score)
	assert.Equal(t, FunctionDecreased, star2.Status)

	_, ok = p.Allele("*99")
	assert.False(t, ok)
}

func TestBandContains(t *testing.T) {
	tests := []struct {
		name  string
		band  Band
		score float64
		want  bool
	}{
		{"inclusive min", Band{Min: 1, Max: 1.5}, 1.0, true},
		{"inclusive max", Band{Min: 1, Max: 1.5}, 1.5, true},
		{"exclusive min", Band{Min: 1, MinExclusive: true, Max: 2}, 1.0, false},
		{"exclusive max", Band{Min: 0, Max: 1, MaxExclusive: true}, 1.0, false},
		{"open top", Band{Min: 2.5, MinExclusive: true, Max: math.Inf(1)}, 3.0, true},
		{"below", Band{Min: 1, Max: 2}, 0.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.band.Contains(tt.score))
		})
	}
}

func TestNewRegistry_Validation(t *testing.T) {
	valid := func() *Profile {
		return &Profile{
			Gene:            "FAKE1",
			Model:           ModelAdditive,
			ReferenceAllele: "*1",
			ReferenceScore:  1.0,
			Markers: []Marker{
				{RSID: "rs1", Ref: "C", Var: "T", StarAllele: "*2", Status: FunctionNone},
			},
			Bands: []Band{{Min: 0, Max: math.Inf(1), Phenotype: PhenotypeNormalMetabolizer}},
		}
	}

	_, err := NewRegistry(valid())
	require.NoError(t, err)

	p := valid()
	p.Markers[0].Ref = "X"
	_, err = NewRegistry(p)
	assert.Error(t, err)

	p = valid()
	p.Markers[0].Var = p.Markers[0].Ref
	_, err = NewRegistry(p)
	assert.Error(t, err)

	p = valid()
	p.Markers[0].StarAllele = "*1" // collides with reference
	_, err = NewRegistry(p)
	assert.Error(t, err)

	p = valid()
	p.Bands = nil
	_, err = NewRegistry(p)
	assert.Error(t, err)

	_, err = NewRegistry(valid(), valid())
	assert.Error(t, err, "duplicate gene symbols must be rejected")
}

func TestFunctionalStatusSeverity(t *testing.T) {
	assert.Greater(t, FunctionNone.Severity(), FunctionDecreased.Severity())
	assert.Greater(t, FunctionDecreased.Severity(), FunctionNormal.Severity())
	assert.Greater(t, FunctionNormal.Severity(), FunctionIncreased.Severity())
}

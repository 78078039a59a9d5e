package gene

import "math"

// DefaultRegistry returns the built-in pharmacogene panel.
// Marker coordinates are GRCh38. Activity scores and boundary tables
// follow CPIC allele-function assignments; boundaries are gene-specific
// and deliberately not shared across profiles.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(
		cyp2c19(),
		cyp2c9(),
		cyp2d6(),
		cyp3a5(),
		tpmt(),
		nudt15(),
		dpyd(),
		slco1b1(),
		vkorc1(),
	)
	if err != nil {
		// The built-in panel is compiled in; a validation failure here is
		// a programming error, not a runtime condition.
		panic(err)
	}
	return r
}

func cyp2c19() *Profile {
	return &Profile{
		Gene:            "CYP2C19",
		Model:           ModelAdditive,
		ReferenceAllele: "*1",
		ReferenceScore:  1.0,
		ReferenceStatus: FunctionNormal,
		Markers: []Marker{
			{RSID: "rs4244285", Chrom: "10", Pos: 94781859, Ref: "G", Var: "A", StarAllele: "*2", Status: FunctionNone, Score: 0.0},
			{RSID: "rs4986893", Chrom: "10", Pos: 94780653, Ref: "G", Var: "A", StarAllele: "*3", Status: FunctionNone, Score: 0.0},
			{RSID: "rs12248560", Chrom: "10", Pos: 94761900, Ref: "C", Var: "T", StarAllele: "*17", Status: FunctionIncreased, Score: 1.5},
		},
		Bands: []Band{
			{Min: 0, Max: 0, Phenotype: PhenotypePoorMetabolizer},
			{Min: 0, MinExclusive: true, Max: 1, Phenotype: PhenotypeIntermediateMetabolizer},
			{Min: 1, MinExclusive: true, Max: 2, Phenotype: PhenotypeNormalMetabolizer},
			{Min: 2, MinExclusive: true, Max: 2.5, Phenotype: PhenotypeRapidMetabolizer},
			{Min: 2.5, MinExclusive: true, Max: math.Inf(1), Phenotype: PhenotypeUltrarapidMetabolizer},
		},
	}
}

func cyp2c9() *Profile {
	return &Profile{
		Gene:            "CYP2C9",
		Model:           ModelAdditive,
		ReferenceAllele: "*1",
		ReferenceScore:  1.0,
		ReferenceStatus: FunctionNormal,
		Markers: []Marker{
			{RSID: "rs1799853", Chrom: "10", Pos: 94942290, Ref: "C", Var: "T", StarAllele: "*2", Status: FunctionDecreased, Score: 0.5},
			{RSID: "rs1057910", Chrom: "10", Pos: 94981296, Ref: "A", Var: "C", StarAllele: "*3", Status: FunctionNone, Score: 0.0},
		},
		// The Intermediate/Normal boundary for CYP2C9 sits at 1.5, not 1.0.
		Bands: []Band{
			{Min: 0, Max: 1, MaxExclusive: true, Phenotype: PhenotypePoorMetabolizer},
			{Min: 1, Max: 1.5, Phenotype: PhenotypeIntermediateMetabolizer},
			{Min: 1.5, MinExclusive: true, Max: math.Inf(1), Phenotype: PhenotypeNormalMetabolizer},
		},
	}
}

func cyp2d6() *Profile {
	return &Profile{
		Gene:            "CYP2D6",
		Model:           ModelAdditive,
		ReferenceAllele: "*1",
		ReferenceScore:  1.0,
		ReferenceStatus: FunctionNormal,
		Markers: []Marker{
			{RSID: "rs3892097", Chrom: "22", Pos: 42128945, Ref: "C", Var: "T", StarAllele: "*4", Status: FunctionNone, Score: 0.0},
			{RSID: "rs1065852", Chrom: "22", Pos: 42130692, Ref: "C", Var: "T", StarAllele: "*10", Status: FunctionDecreased, Score: 0.25},
			{RSID: "rs28371725", Chrom: "22", Pos: 42127803, Ref: "C", Var: "T", StarAllele: "*41", Status: FunctionDecreased, Score: 0.5},
		},
		Bands: []Band{
			{Min: 0, Max: 0.25, MaxExclusive: true, Phenotype: PhenotypePoorMetabolizer},
			{Min: 0.25, Max: 1.25, MaxExclusive: true, Phenotype: PhenotypeIntermediateMetabolizer},
			{Min: 1.25, Max: 2.25, Phenotype: PhenotypeNormalMetabolizer},
			{Min: 2.25, MinExclusive: true, Max: math.Inf(1), Phenotype: PhenotypeUltrarapidMetabolizer},
		},
	}
}

func cyp3a5() *Profile {
	return &Profile{
		Gene:            "CYP3A5",
		Model:           ModelAdditive,
		ReferenceAllele: "*1",
		ReferenceScore:  1.0,
		ReferenceStatus: FunctionNormal,
		Markers: []Marker{
			{RSID: "rs776746", Chrom: "7", Pos: 99672916, Ref: "T", Var: "C", StarAllele: "*3", Status: FunctionNone, Score: 0.0},
		},
		Bands: []Band{
			{Min: 0, Max: 1, MaxExclusive: true, Phenotype: PhenotypePoorMetabolizer},
			{Min: 1, Max: 2, MaxExclusive: true, Phenotype: PhenotypeIntermediateMetabolizer},
			{Min: 2, Max: math.Inf(1), Phenotype: PhenotypeNormalMetabolizer},
		},
	}
}

func tpmt() *Profile {
	return &Profile{
		Gene:            "TPMT",
		Model:           ModelAdditive,
		ReferenceAllele: "*1",
		ReferenceScore:  1.0,
		ReferenceStatus: FunctionNormal,
		Markers: []Marker{
			{RSID: "rs1800462", Chrom: "6", Pos: 18143724, Ref: "C", Var: "G", StarAllele: "*2", Status: FunctionNone, Score: 0.0},
			{RSID: "rs1142345", Chrom: "6", Pos: 18130918, Ref: "T", Var: "C", StarAllele: "*3C", Status: FunctionNone, Score: 0.0},
		},
		Bands: []Band{
			{Min: 0, Max: 0.5, Phenotype: PhenotypePoorMetabolizer},
			{Min: 0.5, MinExclusive: true, Max: 1.5, Phenotype: PhenotypeIntermediateMetabolizer},
			{Min: 1.5, MinExclusive: true, Max: math.Inf(1), Phenotype: PhenotypeNormalMetabolizer},
		},
	}
}

func nudt15() *Profile {
	return &Profile{
		Gene:            "NUDT15",
		Model:           ModelAdditive,
		ReferenceAllele: "*1",
		ReferenceScore:  1.0,
		ReferenceStatus: FunctionNormal,
		Markers: []Marker{
			{RSID: "rs116855232", Chrom: "13", Pos: 48045719, Ref: "C", Var: "T", StarAllele: "*3", Status: FunctionNone, Score: 0.0},
		},
		Bands: []Band{
			{Min: 0, Max: 0.5, Phenotype: PhenotypePoorMetabolizer},
			{Min: 0.5, MinExclusive: true, Max: 1.5, Phenotype: PhenotypeIntermediateMetabolizer},
			{Min: 1.5, MinExclusive: true, Max: math.Inf(1), Phenotype: PhenotypeNormalMetabolizer},
		},
	}
}

func dpyd() *Profile {
	return &Profile{
		Gene:            "DPYD",
		Model:           ModelAdditive,
		ReferenceAllele: "Reference",
		ReferenceScore:  1.0,
		ReferenceStatus: FunctionNormal,
		Markers: []Marker{
			{RSID: "rs3918290", Chrom: "1", Pos: 97450058, Ref: "C", Var: "T", StarAllele: "*2A", Status: FunctionNone, Score: 0.0},
			{RSID: "rs55886062", Chrom: "1", Pos: 97515865, Ref: "A", Var: "C", StarAllele: "*13", Status: FunctionNone, Score: 0.0},
			{RSID: "rs67376798", Chrom: "1", Pos: 97547947, Ref: "T", Var: "A", StarAllele: "c.2846A>T", Status: FunctionDecreased, Score: 0.5},
		},
		Bands: []Band{
			{Min: 0, Max: 1, MaxExclusive: true, Phenotype: PhenotypePoorMetabolizer},
			{Min: 1, Max: 2, MaxExclusive: true, Phenotype: PhenotypeIntermediateMetabolizer},
			{Min: 2, Max: math.Inf(1), Phenotype: PhenotypeNormalMetabolizer},
		},
	}
}

func slco1b1() *Profile {
	return &Profile{
		Gene:            "SLCO1B1",
		Model:           ModelAdditive,
		ReferenceAllele: "*1",
		ReferenceScore:  1.0,
		ReferenceStatus: FunctionNormal,
		Markers: []Marker{
			{RSID: "rs4149056", Chrom: "12", Pos: 21178615, Ref: "T", Var: "C", StarAllele: "*5", Status: FunctionDecreased, Score: 0.0},
		},
		Bands: []Band{
			{Min: 0, Max: 0.5, MaxExclusive: true, Phenotype: PhenotypePoorFunction},
			{Min: 0.5, Max: 1.5, Phenotype: PhenotypeDecreasedFunction},
			{Min: 1.5, MinExclusive: true, Max: math.Inf(1), Phenotype: PhenotypeNormalFunction},
		},
	}
}

// vkorc1 is the panel's lookup-model gene: the -1639G>A promoter variant
// determines warfarin sensitivity directly, with a sensitivity score on
// its own 0-2 scale rather than an activity score.
func vkorc1() *Profile {
	return &Profile{
		Gene:            "VKORC1",
		Model:           ModelLookup,
		ReferenceAllele: "-1639G",
		ReferenceStatus: FunctionNormal,
		Markers: []Marker{
			{RSID: "rs9923231", Chrom: "16", Pos: 31096368, Ref: "G", Var: "A", StarAllele: "-1639A", Status: FunctionDecreased},
		},
		Lookup: map[string]LookupEntry{
			"-1639G/-1639G": {Phenotype: PhenotypeNormalSensitivity, Score: 0},
			"-1639G/-1639A": {Phenotype: PhenotypeIncreasedSensitivity, Score: 1},
			"-1639A/-1639A": {Phenotype: PhenotypeHighSensitivity, Score: 2},
		},
	}
}

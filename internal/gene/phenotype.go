package gene

// Phenotype is a named functional category. The set is closed: profiles
// reference these constants rather than free-form strings so gene tables
// cannot drift apart on spelling.
type Phenotype string

const (
	// PhenotypeUnknown is returned whenever data is missing, malformed,
	// or an allele combination is not recognized.
	PhenotypeUnknown Phenotype = "Unknown"

	// Metabolizer categories (additive enzyme genes).
	PhenotypePoorMetabolizer         Phenotype = "Poor Metabolizer"
	PhenotypeIntermediateMetabolizer Phenotype = "Intermediate Metabolizer"
	PhenotypeNormalMetabolizer       Phenotype = "Normal Metabolizer"
	PhenotypeRapidMetabolizer        Phenotype = "Rapid Metabolizer"
	PhenotypeUltrarapidMetabolizer   Phenotype = "Ultrarapid Metabolizer"

	// Transporter function categories (SLCO1B1).
	PhenotypePoorFunction      Phenotype = "Poor Function"
	PhenotypeDecreasedFunction Phenotype = "Decreased Function"
	PhenotypeNormalFunction    Phenotype = "Normal Function"

	// Warfarin sensitivity categories (VKORC1).
	PhenotypeNormalSensitivity    Phenotype = "Normal Sensitivity"
	PhenotypeIncreasedSensitivity Phenotype = "Increased Sensitivity"
	PhenotypeHighSensitivity      Phenotype = "High Sensitivity"
)

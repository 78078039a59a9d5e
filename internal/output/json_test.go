package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriter(&buf)

	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.Write(sampleResult()))
	require.NoError(t, w.Write(ambiguousResult()))
	require.NoError(t, w.Flush())

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)

	first := decoded[0]
	assert.Equal(t, "CYP2C9", first["gene"])
	assert.Equal(t, "Intermediate Metabolizer", first["phenotype"])
	assert.Equal(t, 1.5, first["activity_score"])
	assert.Equal(t, "high", first["confidence"])

	second := decoded[1]
	diplotype, ok := second["diplotype"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, diplotype["phase_ambiguous"])
	candidates, ok := diplotype["candidate_diplotypes"].([]any)
	require.True(t, ok)
	assert.Len(t, candidates, 3)
}

func TestJSONWriter_Empty(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriter(&buf)

	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.Flush())

	var decoded []any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Empty(t, decoded)
}

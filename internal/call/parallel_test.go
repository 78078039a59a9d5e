package call

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openpgx/starcall/internal/gene"
	"github.com/openpgx/starcall/internal/genotype"
)

func makeItems(n int) <-chan WorkItem {
	ch := make(chan WorkItem, n)
	for i := 0; i < n; i++ {
		// Alternate genotypes so results differ between samples.
		g := "GG"
		if i%2 == 1 {
			g = "AA"
		}
		ch <- WorkItem{
			Seq:      i,
			SampleID: fmt.Sprintf("sample%03d", i),
			Sample:   genotype.Sample{"rs9923231": g},
		}
	}
	close(ch)
	return ch
}

func TestParallelClassify_OrderPreservation(t *testing.T) {
	c := NewCaller(gene.DefaultRegistry())

	items := makeItems(200)
	results := c.ParallelClassify(items, 8)

	var collected []int
	err := OrderedCollect(results, func(r WorkResult) error {
		require.NoError(t, r.Err)
		collected = append(collected, r.Seq)
		return nil
	})
	require.NoError(t, err)

	assert.Len(t, collected, 200)
	for i, seq := range collected {
		assert.Equal(t, i, seq, "result %d out of order", i)
	}
}

func TestParallelClassify_SingleWorker(t *testing.T) {
	c := NewCaller(gene.DefaultRegistry())

	items := makeItems(50)
	results := c.ParallelClassify(items, 1)

	count := 0
	err := OrderedCollect(results, func(r WorkResult) error {
		require.NoError(t, r.Err)
		count++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 50, count)
}

func TestParallelClassify_ResultsMatchSerial(t *testing.T) {
	registry := gene.DefaultRegistry()
	c := NewCaller(registry)

	sample := genotype.Sample{"rs9923231": "AG", "rs4244285": "AG"}

	serial, err := c.ClassifySample("s0", sample)
	require.NoError(t, err)

	items := make(chan WorkItem, 1)
	items <- WorkItem{Seq: 0, SampleID: "s0", Sample: sample}
	close(items)

	var parallel []*Result
	err = OrderedCollect(c.ParallelClassify(items, 4), func(r WorkResult) error {
		parallel = r.Results
		return nil
	})
	require.NoError(t, err)

	require.Len(t, parallel, len(serial))
	for i := range serial {
		assert.Equal(t, serial[i].Gene, parallel[i].Gene)
		assert.Equal(t, serial[i].Diplotype, parallel[i].Diplotype)
		assert.Equal(t, serial[i].Phenotype, parallel[i].Phenotype)
		assert.Equal(t, serial[i].Confidence, parallel[i].Confidence)
	}
}

func TestOrderedCollect_StopsOnError(t *testing.T) {
	c := NewCaller(gene.DefaultRegistry())

	items := makeItems(20)
	results := c.ParallelClassify(items, 4)

	calls := 0
	err := OrderedCollect(results, func(r WorkResult) error {
		calls++
		if calls == 3 {
			return fmt.Errorf("writer failed")
		}
		return nil
	})
	require.Error(t, err)
	assert.Equal(t, 3, calls)
}

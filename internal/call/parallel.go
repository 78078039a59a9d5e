package call

import (
	"runtime"
	"sync"

	"github.com/openpgx/starcall/internal/genotype"
)

// WorkItem holds one sample ready for classification.
type WorkItem struct {
	Seq      int
	SampleID string
	Sample   genotype.Sample
}

// WorkResult holds the classification output for one sample.
type WorkResult struct {
	Seq      int
	SampleID string
	Results  []*Result
	Err      error
}

// ParallelClassify classifies samples using a pool of workers. Each
// sample is classified across every registered gene. Results arrive on
// the returned channel in completion order; use OrderedCollect to
// consume them in sequence-number order. If workers is 0,
// runtime.NumCPU() is used.
//
// The gene registry is read-only, so workers share it without locking.
func (c *Caller) ParallelClassify(items <-chan WorkItem, workers int) <-chan WorkResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make(chan WorkResult, 2*workers)

	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for item := range items {
				rs, err := c.ClassifySample(item.SampleID, item.Sample)
				results <- WorkResult{
					Seq:      item.Seq,
					SampleID: item.SampleID,
					Results:  rs,
					Err:      err,
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

// OrderedCollect calls fn for each result in sequence-number order.
// Out-of-order results are buffered until the next expected sequence
// number arrives. Blocks until the results channel is closed.
func OrderedCollect(results <-chan WorkResult, fn func(WorkResult) error) error {
	pending := make(map[int]WorkResult)
	nextSeq := 0

	for r := range results {
		pending[r.Seq] = r

		for {
			rr, ok := pending[nextSeq]
			if !ok {
				break
			}
			delete(pending, nextSeq)
			nextSeq++
			if err := fn(rr); err != nil {
				// Drain remaining results to unblock workers.
				for range results {
				}
				return err
			}
		}
	}

	return nil
}

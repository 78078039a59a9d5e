package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/openpgx/starcall/internal/duckdb"
)

func newResultsCmd() *cobra.Command {
	var (
		dbPath   string
		sampleID string
		geneID   string
	)

	cmd := &cobra.Command{
		Use:   "results",
		Short: "Query a DuckDB store of past classification results",
		Example: `  starcall results --db calls.duckdb
  starcall results --db calls.duckdb --sample genome
  starcall results --db calls.duckdb --gene CYP2C19`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dbPath == "" {
				dbPath = viper.GetString("store.path")
			}
			if dbPath == "" {
				return fmt.Errorf("no store path; pass --db or set store.path in config")
			}
			return runResults(dbPath, sampleID, geneID)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "Path to the DuckDB store (default from config)")
	cmd.Flags().StringVar(&sampleID, "sample", "", "Show calls for one sample")
	cmd.Flags().StringVar(&geneID, "gene", "", "Show calls for one gene across samples")

	return cmd
}

func runResults(dbPath, sampleID, geneID string) error {
	store, err := duckdb.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	switch {
	case sampleID != "":
		calls, err := store.ResultsForSample(sampleID)
		if err != nil {
			return err
		}
		return printCalls(calls)
	case geneID != "":
		calls, err := store.ResultsForGene(geneID)
		if err != nil {
			return err
		}
		return printCalls(calls)
	default:
		samples, err := store.Samples()
		if err != nil {
			return err
		}
		n, err := store.CallCount()
		if err != nil {
			return err
		}
		fmt.Printf("%d calls across %d samples\n", n, len(samples))
		for _, s := range samples {
			fmt.Println(s)
		}
		return nil
	}
}

func printCalls(calls []*duckdb.StoredCall) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "SAMPLE\tGENE\tDIPLOTYPE\tPHENOTYPE\tSCORE\tCONFIDENCE\tLIMITATIONS")
	for _, c := range calls {
		score := "-"
		if c.ActivityScore != nil {
			score = strconv.FormatFloat(*c.ActivityScore, 'g', -1, 64)
		}
		limitations := "-"
		if len(c.Limitations) > 0 {
			limitations = strings.Join(c.Limitations, "; ")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			c.SampleID, c.Gene, c.Diplotype(), c.Phenotype, score, c.Confidence, limitations)
	}
	return nil
}

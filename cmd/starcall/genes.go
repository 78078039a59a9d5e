package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/openpgx/starcall/internal/gene"
)

func newGenesCmd() *cobra.Command {
	var showMarkers bool

	cmd := &cobra.Command{
		Use:   "genes",
		Short: "List the built-in pharmacogene panel",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenes(showMarkers)
		},
	}

	cmd.Flags().BoolVar(&showMarkers, "markers", false, "Also list each gene's marker panel")

	return cmd
}

func runGenes(showMarkers bool) error {
	registry := gene.DefaultRegistry()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "GENE\tMODEL\tREFERENCE\tMARKERS")
	for _, g := range registry.Genes() {
		p, _ := registry.Profile(g)
		model := "additive"
		if p.Model == gene.ModelLookup {
			model = "lookup"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", p.Gene, model, p.ReferenceAllele, len(p.Markers))

		if showMarkers {
			for _, m := range p.Markers {
				fmt.Fprintf(w, "  %s\tchr%s:%d\t%s>%s\t%s (%s)\n",
					m.RSID, m.Chrom, m.Pos, m.Ref, m.Var, m.StarAllele, m.Status)
			}
		}
	}

	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/openpgx/starcall/internal/call"
	"github.com/openpgx/starcall/internal/duckdb"
	"github.com/openpgx/starcall/internal/gene"
	"github.com/openpgx/starcall/internal/genotype"
	"github.com/openpgx/starcall/internal/output"
)

func newClassifyCmd() *cobra.Command {
	var (
		inputFormat  string
		outputFormat string
		outputFile   string
		sampleID     string
		genesFilter  []string
		storePath    string
		workers      int
	)

	cmd := &cobra.Command{
		Use:   "classify [flags] <input-file>...",
		Short: "Call diplotypes and phenotypes from raw genotype files",
		Long: `Classify reads consumer genotype exports (23andMe, AncestryDNA, or
single-sample VCF; plain or gzipped; '-' for stdin), resolves each
pharmacogene's marker panel, and reports the diplotype, phenotype,
activity score, and confidence per gene. Multiple input files are
classified concurrently; output order follows the argument order.`,
		Example: `  starcall classify genome.txt
  starcall classify --format json -o report.json genome.txt
  starcall classify --genes CYP2C19,VKORC1 genome.txt
  starcall classify --store calls.duckdb sample1.txt sample2.txt
  cat genome.txt | starcall classify -`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(args, classifyOptions{
				inputFormat:  inputFormat,
				outputFormat: outputFormat,
				outputFile:   outputFile,
				sampleID:     sampleID,
				genes:        genesFilter,
				storePath:    storePath,
				workers:      workers,
			})
		},
	}

	cmd.Flags().StringVar(&inputFormat, "input-format", "", "Input format: 23andme, ancestry, vcf (auto-detected if not set)")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "", "Output format: tab, json (default from config, else tab)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVar(&sampleID, "sample", "", "Sample identifier (default: derived from file name)")
	cmd.Flags().StringSliceVar(&genesFilter, "genes", nil, "Restrict to a comma-separated list of genes")
	cmd.Flags().StringVar(&storePath, "store", "", "Also append results to a DuckDB store at this path (default from config)")
	cmd.Flags().IntVar(&workers, "workers", 0, "Worker pool size for multi-file runs (default: number of CPUs)")

	return cmd
}

type classifyOptions struct {
	inputFormat  string
	outputFormat string
	outputFile   string
	sampleID     string
	genes        []string
	storePath    string
	workers      int
}

type loadedSample struct {
	id     string
	sample genotype.Sample
}

func runClassify(inputPaths []string, opts classifyOptions) error {
	// Config supplies defaults for flags the user did not set; flags win.
	if opts.outputFormat == "" {
		opts.outputFormat = viper.GetString("output.format")
	}
	if opts.storePath == "" {
		opts.storePath = viper.GetString("store.path")
	}
	if opts.sampleID != "" && len(inputPaths) > 1 {
		return fmt.Errorf("--sample applies to a single input file")
	}

	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync()

	registry, err := buildRegistry(opts.genes)
	if err != nil {
		return err
	}

	loaded := make([]loadedSample, 0, len(inputPaths))
	for _, path := range inputPaths {
		ls, err := loadSample(path, opts, registry)
		if err != nil {
			return err
		}
		logger.Info("sample loaded",
			zap.String("sample", ls.id),
			zap.Int("panel_markers_observed", len(ls.sample)),
			zap.Int("genes", len(registry.Genes())))
		loaded = append(loaded, ls)
	}

	out := os.Stdout
	if opts.outputFile != "" {
		out, err = os.Create(opts.outputFile)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer out.Close()
	}

	var writer call.ResultWriter
	switch opts.outputFormat {
	case "", "tab":
		writer = output.NewTabWriter(out)
	case "json":
		writer = output.NewJSONWriter(out)
	default:
		return fmt.Errorf("unknown output format %q", opts.outputFormat)
	}
	if err := writer.WriteHeader(); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	caller := call.NewCaller(registry)
	caller.SetLogger(logger)

	items := make(chan call.WorkItem)
	go func() {
		defer close(items)
		for i, ls := range loaded {
			items <- call.WorkItem{Seq: i, SampleID: ls.id, Sample: ls.sample}
		}
	}()

	var all []*call.Result
	err = call.OrderedCollect(caller.ParallelClassify(items, opts.workers), func(wr call.WorkResult) error {
		if wr.Err != nil {
			return wr.Err
		}
		for _, r := range wr.Results {
			if err := writer.Write(r); err != nil {
				return fmt.Errorf("write result: %w", err)
			}
		}
		all = append(all, wr.Results...)
		return nil
	})
	if err != nil {
		return err
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	if opts.storePath != "" {
		store, err := duckdb.Open(opts.storePath)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.WriteResults(all); err != nil {
			return fmt.Errorf("store results: %w", err)
		}
		logger.Info("results stored",
			zap.String("path", opts.storePath),
			zap.Int("calls", len(all)))
	}

	return nil
}

func loadSample(path string, opts classifyOptions, registry *gene.Registry) (loadedSample, error) {
	parser, err := genotype.Open(path, genotype.Format(opts.inputFormat))
	if err != nil {
		return loadedSample{}, err
	}
	defer parser.Close()

	sample, err := genotype.CollectSample(parser, registry.RSIDs())
	if err != nil {
		return loadedSample{}, err
	}

	id := opts.sampleID
	if id == "" {
		id = defaultSampleID(path)
	}
	return loadedSample{id: id, sample: sample}, nil
}

// buildRegistry returns the default panel, optionally restricted to a
// subset of genes (flag value first, then the "genes" config key).
func buildRegistry(genesFilter []string) (*gene.Registry, error) {
	full := gene.DefaultRegistry()

	if len(genesFilter) == 0 {
		genesFilter = viper.GetStringSlice("genes")
	}
	if len(genesFilter) == 0 {
		return full, nil
	}

	var profiles []*gene.Profile
	for _, g := range genesFilter {
		p, ok := full.Profile(g)
		if !ok {
			return nil, fmt.Errorf("unknown gene %q (see 'starcall genes')", g)
		}
		profiles = append(profiles, p)
	}
	return gene.NewRegistry(profiles...)
}

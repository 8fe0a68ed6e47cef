package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/svpipe/batchfx/internal/duckdb"
	"github.com/svpipe/batchfx/internal/reclass"
	"github.com/svpipe/batchfx/internal/vcf"
)

// labelOptions carries the label subcommand's flag values.
type labelOptions struct {
	unstablePlus  string
	unstableMinus string
	plusSamples   string
	verbose       bool
}

func newLabelCmd() *cobra.Command {
	var opts labelOptions

	cmd := &cobra.Command{
		Use:   "label <input-vcf> <reclass-table> <output-vcf>",
		Short: "Apply batch-effect reclassification labels to a VCF",
		Long: "Apply a batch-effect reclassification table to a VCF. Each record whose ID\n" +
			"appears in the table gains the FILTER/INFO annotations its labels call for,\n" +
			"affected genotypes are nulled, and records with no informative genotype left\n" +
			"are dropped. Records without a table entry pass through unchanged.\n\n" +
			"The table is tab-delimited with two columns (variant ID, label); a path\n" +
			"ending in .duckdb or .db is read as a DuckDB database instead. The input\n" +
			"and output accept '-'/'stdin' and '-'/'stdout'.",
		Example: `  batchfx label input.vcf reclass.tsv output.vcf
  batchfx label - reclass.tsv - < input.vcf > output.vcf
  batchfx label input.vcf.gz reclass.duckdb output.vcf.gz \
    --unstable-af-pcrplus plus_vids.txt --unstable-af-pcrminus minus_vids.txt`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLabel(args[0], args[1], args[2], opts)
		},
	}

	cmd.Flags().StringVar(&opts.unstablePlus, "unstable-af-pcrplus", "",
		"List of variant IDs with unstable AF in PCR+ samples")
	cmd.Flags().StringVar(&opts.unstableMinus, "unstable-af-pcrminus", "",
		"List of variant IDs with unstable AF in PCR- samples")
	cmd.Flags().StringVar(&opts.plusSamples, "pcrplus-samples", "",
		"List of PCR+ sample IDs (default: empty roster, all samples treated as PCR-)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false,
		"Enable debug logging")

	return cmd
}

func runLabel(inPath, tablePath, outPath string, opts labelOptions) error {
	logger := newLogger(opts.verbose)
	defer logger.Sync()

	table, err := loadTable(tablePath, opts)
	if err != nil {
		return err
	}
	logger.Debug("loaded reclassification table", zap.Int("vids", len(table)))

	plusSamples, err := loadRoster(opts, logger)
	if err != nil {
		return err
	}

	parser, err := vcf.NewParser(inPath)
	if err != nil {
		return err
	}
	defer parser.Close()

	writer, err := vcf.NewWriter(outPath)
	if err != nil {
		return err
	}

	if err := writer.WriteHeader(parser.Header(), reclass.HeaderLines()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	labeler := reclass.NewLabeler(table, reclass.NewReclassifier(parser.SampleNames(), plusSamples))
	labeler.SetLogger(logger)

	if shapes := viper.GetStringSlice("label.null-genotypes"); len(shapes) > 0 {
		labeler.SetNullGenotypes(reclass.ParseNullGenotypes(shapes))
	}

	if err := labeler.Run(parser, writer); err != nil {
		writer.Close()
		return err
	}

	return writer.Close()
}

// loadTable reads the reclassification table and merges the optional
// unstable-AF lists. DuckDB databases are detected by extension.
func loadTable(tablePath string, opts labelOptions) (reclass.Table, error) {
	var table reclass.Table

	if strings.HasSuffix(tablePath, ".duckdb") || strings.HasSuffix(tablePath, ".db") {
		store, err := duckdb.Open(tablePath)
		if err != nil {
			return nil, err
		}
		defer store.Close()

		table, err = store.LoadTable()
		if err != nil {
			return nil, err
		}
		if err := table.AddUnstableLists(opts.unstablePlus, opts.unstableMinus); err != nil {
			return nil, err
		}
		return table, nil
	}

	return reclass.Load(tablePath, opts.unstablePlus, opts.unstableMinus)
}

// loadRoster resolves the PCR+ roster: the flag wins, then the config
// file, then the documented default of an empty roster.
func loadRoster(opts labelOptions, logger *zap.Logger) ([]string, error) {
	path := opts.plusSamples
	if path == "" {
		path = viper.GetString("label.pcrplus-samples")
	}
	if path == "" {
		return nil, nil
	}

	samples, err := reclass.LoadSampleList(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded PCR+ roster", zap.Int("samples", len(samples)))
	return samples, nil
}

// newLogger builds a stderr logger so logs never mix with VCF output on
// stdout.
func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

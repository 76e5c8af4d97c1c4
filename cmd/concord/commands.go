package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/concordlabs/concord/agreement"
	"github.com/concordlabs/concord/archive"
	"github.com/concordlabs/concord/dataset"
	"github.com/concordlabs/concord/regression"
	"github.com/concordlabs/concord/render"
	"github.com/concordlabs/concord/sample"
)

var (
	rootCmd = &cobra.Command{
		Use:   "concord",
		Short: "Agreement statistics between observed and predicted series",
		Long: `Concord computes agreement metrics, regression fits, and error
decompositions for paired observed/predicted datasets.`,
		SilenceUsage: true,
	}

	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List the sample labels in the selected dataset",
		RunE:  runList,
	}

	analyzeCmd = &cobra.Command{
		Use:   "analyze [labels...]",
		Short: "Run the full agreement analysis on one or more samples",
		Long: `Analyze fits the four regression lines, computes the aggregate metric
set, and runs the error decompositions for each selected sample. With no
labels, every sample in the dataset is analyzed.`,
		RunE: runAnalyze,
	}

	decomposeCmd = &cobra.Command{
		Use:   "decompose [labels...]",
		Short: "Show the per-point error decomposition for one scheme",
		RunE:  runDecompose,
	}

	csvPath     string
	archivePath string
	precision   int
	plotDir     string
	saveArchive string
	compression string
	schemeName  string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&csvPath, "csv", "", "read samples from a CSV file instead of the built-in dataset")
	rootCmd.PersistentFlags().StringVar(&archivePath, "archive", "", "read samples from a binary archive instead of the built-in dataset")
	rootCmd.PersistentFlags().IntVar(&precision, "precision", agreement.DefaultPrecision, "decimal places in rendered values")

	analyzeCmd.Flags().StringVar(&plotDir, "plot", "", "write one scatter plot per sample into this directory")
	analyzeCmd.Flags().StringVar(&saveArchive, "save-archive", "", "write the selected samples to a binary archive at this path")
	analyzeCmd.Flags().StringVar(&compression, "compression", "zstd", "archive compression: none, zstd, s2, or lz4")

	decomposeCmd.Flags().StringVar(&schemeName, "scheme", "sma", "decomposition scheme: ols, major-axis, or sma")

	rootCmd.AddCommand(listCmd, analyzeCmd, decomposeCmd)
}

// loadSet reads the dataset selected by the persistent flags, falling back to
// the built-in samples.
func loadSet() (*dataset.Set, error) {
	switch {
	case csvPath != "" && archivePath != "":
		return nil, fmt.Errorf("--csv and --archive are mutually exclusive")
	case csvPath != "":
		f, err := os.Open(csvPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		return dataset.FromCSV(f)
	case archivePath != "":
		f, err := os.Open(archivePath)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		return archive.Read(f)
	default:
		return dataset.Builtin(), nil
	}
}

// selectSamples resolves the positional labels against the set. No labels
// means every sample.
func selectSamples(set *dataset.Set, labels []string) ([]*sample.Sample, error) {
	if len(labels) == 0 {
		return set.Samples(), nil
	}

	selected, err := set.Select(labels...)
	if err != nil {
		return nil, err
	}

	return selected.Samples(), nil
}

func runList(_ *cobra.Command, _ []string) error {
	set, err := loadSet()
	if err != nil {
		return err
	}

	for _, s := range set.Samples() {
		fmt.Printf("%s\t%d points\n", s.Label(), s.Len())
	}

	return nil
}

func runAnalyze(_ *cobra.Command, args []string) error {
	set, err := loadSet()
	if err != nil {
		return err
	}
	samples, err := selectSamples(set, args)
	if err != nil {
		return err
	}

	if plotDir != "" {
		if err := os.MkdirAll(plotDir, 0o755); err != nil {
			return err
		}
	}

	result := agreement.AnalyzeBatch(samples, agreement.WithPrecision(precision))

	failed := make([]string, 0, len(result.Errors))
	for label := range result.Errors {
		failed = append(failed, label)
	}
	sort.Strings(failed)
	for _, label := range failed {
		slog.Error("analysis failed", "label", label, "error", result.Errors[label])
	}

	for _, s := range samples {
		report, ok := result.Reports[s.Label()]
		if !ok {
			continue
		}

		fmt.Println(render.MetricsTable(report))
		for _, kind := range regression.Kinds() {
			if line, ok := report.Lines[kind]; ok {
				fmt.Println(line)
			}
		}
		fmt.Println()

		if plotDir != "" {
			path := filepath.Join(plotDir, s.Label()+".png")
			if err := render.ScatterPlot(s, report.Lines, path); err != nil {
				return err
			}
			slog.Info("plot written", "path", path)
		}
	}

	if saveArchive != "" {
		if err := writeArchive(samples); err != nil {
			return err
		}
	}

	if len(result.Errors) > 0 {
		return fmt.Errorf("%d of %d samples failed", len(result.Errors), len(samples))
	}

	return nil
}

func runDecompose(_ *cobra.Command, args []string) error {
	scheme := agreement.SchemeFromString(schemeName)
	if scheme == agreement.Scheme(-1) {
		return fmt.Errorf("unknown decomposition scheme %q", schemeName)
	}

	set, err := loadSet()
	if err != nil {
		return err
	}
	samples, err := selectSamples(set, args)
	if err != nil {
		return err
	}

	for _, s := range samples {
		d, err := agreement.Decompose(s, scheme)
		if err != nil {
			slog.Error("decomposition failed", "label", s.Label(), "scheme", scheme, "error", err)
			continue
		}
		fmt.Printf("%s\n%s\n\n", s.Label(), render.DecompositionTable(d, precision))
	}

	return nil
}

func writeArchive(samples []*sample.Sample) error {
	ct := archive.CompressionFromString(compression)
	if ct == 0 {
		return fmt.Errorf("unknown compression %q", compression)
	}

	out := dataset.NewSet()
	for _, s := range samples {
		if err := out.Add(s); err != nil {
			return err
		}
	}

	f, err := os.Create(saveArchive)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := archive.Write(f, out, archive.WithCompression(ct)); err != nil {
		return err
	}
	slog.Info("archive written", "path", saveArchive, "samples", out.Len(), "compression", ct)

	return nil
}

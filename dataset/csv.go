package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/concordlabs/concord/internal/options"
	"github.com/concordlabs/concord/sample"
)

// csvConfig holds the configuration assembled from FromCSV options.
type csvConfig struct {
	observedColumn  string
	predictedColumn string
	labelColumn     string
	defaultLabel    string
}

func defaultCSVConfig() csvConfig {
	return csvConfig{
		observedColumn:  "observed",
		predictedColumn: "predicted",
		defaultLabel:    "csv",
	}
}

// CSVOption is a functional option for FromCSV.
type CSVOption = options.Option[*csvConfig]

// WithObservedColumn sets the header name of the observed column.
func WithObservedColumn(name string) CSVOption {
	return options.NoError(func(cfg *csvConfig) { cfg.observedColumn = name })
}

// WithPredictedColumn sets the header name of the predicted column.
func WithPredictedColumn(name string) CSVOption {
	return options.NoError(func(cfg *csvConfig) { cfg.predictedColumn = name })
}

// WithLabelColumn groups rows into one sample per distinct value of the
// named column. Without it, all rows form a single sample.
func WithLabelColumn(name string) CSVOption {
	return options.NoError(func(cfg *csvConfig) { cfg.labelColumn = name })
}

// WithDefaultLabel sets the label of the single sample produced when no
// label column is configured.
func WithDefaultLabel(label string) CSVOption {
	return options.NoError(func(cfg *csvConfig) { cfg.defaultLabel = label })
}

// FromCSV reads paired observed/predicted series from CSV data.
//
// The first record must be a header naming the observed and predicted
// columns (default "observed"/"predicted"). Values must parse as floats; no
// missing values are permitted. With WithLabelColumn, rows are grouped into
// one sample per label in first-appearance order.
//
// Returns:
//   - *Set: The parsed datasets
//   - error: Header/parse errors with row context, or sample validation
//     errors (sample.ErrInsufficientData for single-row groups)
func FromCSV(r io.Reader, opts ...CSVOption) (*Set, error) {
	cfg := defaultCSVConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}

	obsIdx, predIdx, labelIdx := -1, -1, -1
	for i, name := range header {
		switch name {
		case cfg.observedColumn:
			obsIdx = i
		case cfg.predictedColumn:
			predIdx = i
		case cfg.labelColumn:
			labelIdx = i
		}
	}
	if obsIdx < 0 {
		return nil, fmt.Errorf("csv header missing observed column %q", cfg.observedColumn)
	}
	if predIdx < 0 {
		return nil, fmt.Errorf("csv header missing predicted column %q", cfg.predictedColumn)
	}
	if cfg.labelColumn != "" && labelIdx < 0 {
		return nil, fmt.Errorf("csv header missing label column %q", cfg.labelColumn)
	}

	type series struct {
		observed  []float64
		predicted []float64
	}
	order := []string{}
	groups := make(map[string]*series)

	for row := 2; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv row %d: %w", row, err)
		}

		observed, err := strconv.ParseFloat(record[obsIdx], 64)
		if err != nil {
			return nil, fmt.Errorf("csv row %d: bad observed value %q: %w", row, record[obsIdx], err)
		}
		predicted, err := strconv.ParseFloat(record[predIdx], 64)
		if err != nil {
			return nil, fmt.Errorf("csv row %d: bad predicted value %q: %w", row, record[predIdx], err)
		}

		label := cfg.defaultLabel
		if labelIdx >= 0 {
			label = record[labelIdx]
		}
		g, ok := groups[label]
		if !ok {
			g = &series{}
			groups[label] = g
			order = append(order, label)
		}
		g.observed = append(g.observed, observed)
		g.predicted = append(g.predicted, predicted)
	}

	set := NewSet()
	for _, label := range order {
		g := groups[label]
		s, err := sample.New(label, g.observed, g.predicted)
		if err != nil {
			return nil, fmt.Errorf("dataset %q: %w", label, err)
		}
		if err := set.Add(s); err != nil {
			return nil, err
		}
	}

	return set, nil
}

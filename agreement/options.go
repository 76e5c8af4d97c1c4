package agreement

import (
	"fmt"

	"github.com/concordlabs/concord/internal/options"
)

// DefaultPrecision is the display rounding used by Report.Set when no
// WithPrecision option is given, matching the two-decimal reference tables.
const DefaultPrecision = 2

// analyzeConfig holds the configuration assembled from Analyze options.
type analyzeConfig struct {
	precision     int
	schemes       []Scheme
	decomposition bool
}

func defaultAnalyzeConfig() analyzeConfig {
	return analyzeConfig{
		precision:     DefaultPrecision,
		schemes:       Schemes(),
		decomposition: true,
	}
}

// Option is a functional option for Analyze.
type Option = options.Option[*analyzeConfig]

// WithPrecision sets the decimal precision of the rounded metric set.
func WithPrecision(precision int) Option {
	return options.New(func(cfg *analyzeConfig) error {
		if precision < 0 {
			return fmt.Errorf("precision must be non-negative, got %d", precision)
		}
		cfg.precision = precision

		return nil
	})
}

// WithSchemes restricts the decomposition schemes computed by Analyze.
func WithSchemes(schemes ...Scheme) Option {
	return options.New(func(cfg *analyzeConfig) error {
		for _, scheme := range schemes {
			if _, exists := schemeNames[scheme]; !exists {
				return fmt.Errorf("unknown decomposition scheme: %d", scheme)
			}
		}
		cfg.schemes = schemes

		return nil
	})
}

// WithoutDecompositions skips the per-point decomposition tables, leaving
// only the aggregate metrics and regression lines in the report.
func WithoutDecompositions() Option {
	return options.NoError(func(cfg *analyzeConfig) {
		cfg.decomposition = false
	})
}

// Package constants provides shared constants for the pricelab application.
package constants

// Pricing engine constants
const (
	// DefaultGridSize is the number of price samples when a scenario does not
	// specify one.
	DefaultGridSize = 100

	// MinGridSize is the smallest usable price grid (both endpoints).
	MinGridSize = 2

	// PercentageMultiplier converts fractions to percentages
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance used when comparing currency values
	CurrencyTolerance = 0.005
)

// Survey statistics constants
const (
	// DefaultProportion is the conservative proportion estimate (maximum variance)
	DefaultProportion = 0.5

	// DefaultZScore corresponds to a 95% confidence level
	DefaultZScore = 1.96
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodyBytes is the default maximum request body size (256 KB)
	DefaultMaxBodyBytes int64 = 256 * 1024
)

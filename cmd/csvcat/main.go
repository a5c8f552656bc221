package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vegasq/csvcat/internal/config"
	"github.com/vegasq/csvcat/internal/logger"
	"github.com/vegasq/csvcat/output"
	"github.com/vegasq/csvcat/query"
	"github.com/vegasq/csvcat/reader"
)

// Exit statuses
const (
	exitOK    = 0
	exitError = 1
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr, query.DefaultRegistry()))
}

// app carries the collaborators of a single run
type app struct {
	stdout   io.Writer
	stderr   io.Writer
	registry *query.Registry
	log      *slog.Logger
}

// execute runs csvcat with args and returns the process exit status.
func execute(args []string, stdout, stderr io.Writer, registry *query.Registry) int {
	a := &app{
		stdout:   stdout,
		stderr:   stderr,
		registry: registry,
		log:      logger.Discard(),
	}

	// cobra falls back to os.Args on a nil slice
	if args == nil {
		args = []string{}
	}

	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	return a.report(cmd.Execute())
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "csvcat [flags] [file]",
		Short: "Filter or aggregate a CSV file and print it as a table",
		Long: `csvcat loads a delimited text file (or a Parquet file) and prints it as a
table, optionally filtered by one comparison or reduced by one aggregate.

Filters use column<op>value with op one of >=, <=, >, <, =.
Aggregates use function:column with function one of ` + strings.Join(a.registry.Names(), ", ") + `.

Every flag can also be set through a CSVCAT_* environment variable,
e.g. CSVCAT_FORMAT=csv or CSVCAT_LOG_LEVEL=DEBUG.`,
		Example: `  csvcat --file phones.csv
  csvcat --file phones.csv --where "price>1000"
  csvcat --file phones.csv --where "brand=apple"
  csvcat --file phones.csv --aggregate "avg:price"
  csvcat -o csv --limit 10 phones.csv
  csvcat --schema phones.csv`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			if cfg.File == "" && len(args) == 1 {
				cfg.File = args[0]
			}
			return a.run(cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringP(config.KeyFile, "f", "", "path to the CSV (or .parquet) file")
	flags.StringP(config.KeyWhere, "w", "", `filter condition, e.g. "price>1000" or "brand=apple"`)
	flags.StringP(config.KeyAggregate, "a", "", `aggregation, e.g. "avg:price", "min:rating", "max:price"`)
	flags.StringP(config.KeyFormat, "o", "table", "output format: table, csv, json")
	flags.Int(config.KeyLimit, 0, "limit number of rows printed (0 = unlimited)")
	flags.Bool(config.KeySchema, false, "show column names and inferred types instead of data")
	flags.String(config.KeyDelimiter, ",", `field delimiter for text input ("\t" or "tab" for tabs)`)
	flags.String(config.KeyLogLevel, "WARN", "diagnostic log level: DEBUG, INFO, WARN, ERROR")
	flags.String(config.KeyLogFormat, "text", "diagnostic log format: text, json")

	return cmd
}

// run executes one load-query-print cycle.
func (a *app) run(cfg *config.Config) error {
	a.log = logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}, a.stderr)

	// Option misuse is reported before touching the file
	if err := cfg.Validate(); err != nil {
		return err
	}
	formatter, err := output.NewFormatter(cfg.Format, a.stdout)
	if err != nil {
		return err
	}

	ds, err := reader.Load(cfg.File, reader.Options{Delimiter: cfg.Delimiter})
	if err != nil {
		return err
	}
	a.log.Debug("loaded dataset", "file", cfg.File, "rows", ds.Len(), "columns", len(ds.Header))

	switch {
	case cfg.Schema:
		return formatter.Format(reader.SchemaDataset(reader.Describe(ds)))

	case cfg.Aggregate != "":
		result, err := query.Aggregate(ds, cfg.Aggregate, a.registry)
		if err != nil {
			return err
		}
		if result == nil {
			return query.ErrNoData
		}
		a.log.Debug("aggregated", "function", result.Function, "column", result.Column, "has_value", result.Value != nil)
		return formatter.Format(result.Dataset())

	default:
		filtered, err := query.Filter(ds, cfg.Where)
		if err != nil {
			return err
		}
		if cfg.Where != "" {
			a.log.Debug("applied filter", "where", cfg.Where, "matched", filtered.Len(), "total", ds.Len())
		}
		return formatter.Format(filtered.Head(cfg.Limit))
	}
}

// report prints the outcome of a run and returns its exit status. Empty
// results are reported on stdout and exit successfully; every other error
// prints a single line on stderr.
func (a *app) report(err error) int {
	if err == nil {
		return exitOK
	}

	if query.IsNormalOutcome(err) {
		fmt.Fprintln(a.stdout, describe(err))
		return exitOK
	}

	a.log.Debug("run failed", "error", err)
	fmt.Fprintf(a.stderr, "Error: %s\n", describe(err))
	return exitError
}

// describe turns an error into a user-facing message with a hint on how to
// fix the input.
func describe(err error) string {
	switch {
	case errors.Is(err, reader.ErrNotFound):
		return fmt.Sprintf("%v (check the file path)", err)
	case errors.Is(err, reader.ErrEmpty):
		return fmt.Sprintf("%v (supply a file with a header and at least one row)", err)
	case errors.Is(err, query.ErrNoMatches):
		return "No rows match the filter."
	case errors.Is(err, query.ErrNoData):
		return "No data to aggregate."
	default:
		return err.Error()
	}
}

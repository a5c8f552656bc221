// Package config resolves csvcat settings from command-line flags and
// CSVCAT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. CSVCAT_FORMAT
const EnvPrefix = "CSVCAT"

// Keys shared by flags, environment variables and Config fields
const (
	KeyFile      = "file"
	KeyWhere     = "where"
	KeyAggregate = "aggregate"
	KeyFormat    = "format"
	KeyLimit     = "limit"
	KeySchema    = "schema"
	KeyDelimiter = "delimiter"
	KeyLogLevel  = "log-level"
	KeyLogFormat = "log-format"
)

var (
	// ErrConflictingOptions is returned when mutually exclusive options are combined
	ErrConflictingOptions = errors.New("conflicting options")

	// ErrMissingFile is returned when no input file is given
	ErrMissingFile = errors.New("missing input file")

	// ErrInvalidLimit is returned for a negative limit
	ErrInvalidLimit = errors.New("invalid limit")

	// ErrInvalidDelimiter is returned when the delimiter is not a single usable character
	ErrInvalidDelimiter = errors.New("invalid delimiter")
)

// Config holds the resolved settings for one run
type Config struct {
	File      string
	Where     string
	Aggregate string
	Format    string
	Limit     int
	Schema    bool
	Delimiter rune
	LogLevel  string
	LogFormat string
}

// Defaults returns the default settings
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		KeyFormat:    "table",
		KeyLimit:     0,
		KeySchema:    false,
		KeyDelimiter: ",",
		KeyLogLevel:  "WARN",
		KeyLogFormat: "text",
	}
}

// Load resolves settings from flags, then CSVCAT_* environment variables,
// then defaults. Flags that were set explicitly always win.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	delimiter, err := ParseDelimiter(v.GetString(KeyDelimiter))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		File:      v.GetString(KeyFile),
		Where:     v.GetString(KeyWhere),
		Aggregate: v.GetString(KeyAggregate),
		Format:    v.GetString(KeyFormat),
		Limit:     v.GetInt(KeyLimit),
		Schema:    v.GetBool(KeySchema),
		Delimiter: delimiter,
		LogLevel:  v.GetString(KeyLogLevel),
		LogFormat: v.GetString(KeyLogFormat),
	}
	return cfg, nil
}

// Validate checks option combinations. It performs no file I/O.
func (c *Config) Validate() error {
	if c.Where != "" && c.Aggregate != "" {
		return fmt.Errorf("%w: --where and --aggregate cannot be used together", ErrConflictingOptions)
	}
	if c.Schema && (c.Where != "" || c.Aggregate != "") {
		return fmt.Errorf("%w: --schema cannot be combined with --where or --aggregate", ErrConflictingOptions)
	}
	if c.File == "" {
		return fmt.Errorf("%w: --file is required", ErrMissingFile)
	}
	if c.Limit < 0 {
		return fmt.Errorf("%w: --limit must be non-negative, got %d", ErrInvalidLimit, c.Limit)
	}
	return nil
}

// ParseDelimiter converts a delimiter setting to a rune. Besides a literal
// character it accepts the spellings "\t" and "tab".
func ParseDelimiter(s string) (rune, error) {
	switch s {
	case `\t`, "tab", "TAB":
		return '\t', nil
	}

	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w %q: must be a single character", ErrInvalidDelimiter, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		return 0, fmt.Errorf("%w %q", ErrInvalidDelimiter, s)
	}
	return r, nil
}

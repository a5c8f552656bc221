package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFlags mirrors the flag set registered by the csvcat command
func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("csvcat", pflag.ContinueOnError)
	fs.StringP(KeyFile, "f", "", "")
	fs.StringP(KeyWhere, "w", "", "")
	fs.StringP(KeyAggregate, "a", "", "")
	fs.StringP(KeyFormat, "o", "table", "")
	fs.Int(KeyLimit, 0, "")
	fs.Bool(KeySchema, false, "")
	fs.String(KeyDelimiter, ",", "")
	fs.String(KeyLogLevel, "WARN", "")
	fs.String(KeyLogFormat, "text", "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(newFlags(t, "--file", "phones.csv"))
	require.NoError(t, err)

	assert.Equal(t, "phones.csv", cfg.File)
	assert.Equal(t, "table", cfg.Format)
	assert.Equal(t, 0, cfg.Limit)
	assert.Equal(t, ',', cfg.Delimiter)
	assert.Equal(t, "WARN", cfg.LogLevel)
	assert.Empty(t, cfg.Where)
	assert.Empty(t, cfg.Aggregate)
	assert.False(t, cfg.Schema)
}

func TestLoad_Flags(t *testing.T) {
	cfg, err := Load(newFlags(t, "-f", "phones.csv", "-w", "price>1000", "-o", "csv", "--limit", "2", "--delimiter", ";"))
	require.NoError(t, err)

	assert.Equal(t, "price>1000", cfg.Where)
	assert.Equal(t, "csv", cfg.Format)
	assert.Equal(t, 2, cfg.Limit)
	assert.Equal(t, ';', cfg.Delimiter)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("CSVCAT_FORMAT", "json")
	t.Setenv("CSVCAT_LIMIT", "3")
	t.Setenv("CSVCAT_LOG_LEVEL", "DEBUG")
	t.Setenv("CSVCAT_DELIMITER", "tab")

	cfg, err := Load(newFlags(t, "--file", "phones.csv"))
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, 3, cfg.Limit)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.Equal(t, '\t', cfg.Delimiter)
}

func TestLoad_FlagBeatsEnvironment(t *testing.T) {
	t.Setenv("CSVCAT_FORMAT", "json")

	cfg, err := Load(newFlags(t, "--file", "phones.csv", "--format", "csv"))
	require.NoError(t, err)
	assert.Equal(t, "csv", cfg.Format)
}

func TestLoad_InvalidDelimiter(t *testing.T) {
	_, err := Load(newFlags(t, "--file", "phones.csv", "--delimiter", "::"))
	require.ErrorIs(t, err, ErrInvalidDelimiter)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{"file only", Config{File: "a.csv"}, nil},
		{"where", Config{File: "a.csv", Where: "price>1"}, nil},
		{"aggregate", Config{File: "a.csv", Aggregate: "avg:price"}, nil},
		{"schema", Config{File: "a.csv", Schema: true}, nil},
		{"where and aggregate", Config{File: "a.csv", Where: "price>1", Aggregate: "avg:price"}, ErrConflictingOptions},
		{"conflict reported before missing file", Config{Where: "price>1", Aggregate: "avg:price"}, ErrConflictingOptions},
		{"schema and where", Config{File: "a.csv", Schema: true, Where: "price>1"}, ErrConflictingOptions},
		{"schema and aggregate", Config{File: "a.csv", Schema: true, Aggregate: "avg:price"}, ErrConflictingOptions},
		{"missing file", Config{}, ErrMissingFile},
		{"negative limit", Config{File: "a.csv", Limit: -1}, ErrInvalidLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseDelimiter(t *testing.T) {
	tests := []struct {
		input   string
		want    rune
		wantErr bool
	}{
		{",", ',', false},
		{";", ';', false},
		{"|", '|', false},
		{`\t`, '\t', false},
		{"tab", '\t', false},
		{"\t", '\t', false},
		{"", 0, true},
		{",,", 0, true},
		{`"`, 0, true},
		{"\n", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseDelimiter(tt.input)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidDelimiter, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

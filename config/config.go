package config

import (
	"bytes"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	KeyDataFile        = "data.file"
	KeyDataFormat      = "data.format"
	KeyDataDelimiter   = "data.delimiter"
	KeyDataSQLiteTable = "data.sqlite_table"
	KeyWatchInterval   = "watch.interval"
	KeyServePort       = "serve.port"
	KeyLogLevel        = "log.level"
)

type Config struct {
	Data  DataConfig  `mapstructure:"data" validate:"required"`
	Watch WatchConfig `mapstructure:"watch"`
	Serve ServeConfig `mapstructure:"serve"`
	Log   LogConfig   `mapstructure:"log"`
}

type DataConfig struct {
	File        string `mapstructure:"file" validate:"required"`
	Format      string `mapstructure:"format" validate:"omitempty,oneof=csv tsv excel xlsx sqlite"`
	Delimiter   string `mapstructure:"delimiter"`
	SQLiteTable string `mapstructure:"sqlite_table" validate:"required"`
}

type WatchConfig struct {
	Interval time.Duration `mapstructure:"interval" validate:"min=1s"`
}

type ServeConfig struct {
	Port int `mapstructure:"port" validate:"min=1,max=65535"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
}

// DelimiterRune returns the configured delimiter, ',' when unset.
func (c DataConfig) DelimiterRune() rune {
	if c.Delimiter == "" {
		return ','
	}
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# horas configuration
data:
  # Worklog with Data, Atividade and Horas Totais columns (.csv, .xlsx or .db)
  file: "./horas.csv"
  format: ""
  delimiter: ","
  sqlite_table: "horas"

watch:
  interval: 30s

serve:
  port: 8501

log:
  level: info
`
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	cfg.Data.File = strings.TrimSpace(cfg.Data.File)
	cfg.Data.Format = strings.ToLower(strings.TrimSpace(cfg.Data.Format))
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateData(cfg.Data); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyDataFile, "./horas.csv")
	v.SetDefault(KeyDataFormat, "")
	v.SetDefault(KeyDataDelimiter, ",")
	v.SetDefault(KeyDataSQLiteTable, "horas")
	v.SetDefault(KeyWatchInterval, 30*time.Second)
	v.SetDefault(KeyServePort, 8501)
	v.SetDefault(KeyLogLevel, "info")
}

func validateData(data DataConfig) error {
	if data.Delimiter != "" && utf8.RuneCountInString(data.Delimiter) != 1 {
		return fmt.Errorf("validation failed: data.delimiter must be a single character, got %q", data.Delimiter)
	}
	switch data.DelimiterRune() {
	case '"', '\r', '\n', utf8.RuneError:
		return fmt.Errorf("validation failed: data.delimiter %q is not usable", data.Delimiter)
	}

	for i, r := range data.SQLiteTable {
		valid := r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (i > 0 && r >= '0' && r <= '9')
		if !valid {
			return fmt.Errorf("validation failed: data.sqlite_table %q must be a plain identifier", data.SQLiteTable)
		}
	}
	return nil
}

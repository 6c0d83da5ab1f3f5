package config

import (
	"fmt"
	"time"

	"github.com/gridiron-sim/fieldgeo/pkg/field"
	"github.com/spf13/viper"
)

// FileName is the config file looked up in the config directory.
const FileName = "fieldgeo.cfg.json"

// FieldConfig describes the playing surface queries run against.
type FieldConfig struct {
	Name          string  `json:"name" mapstructure:"name"`
	Surface       string  `json:"surface" mapstructure:"surface"`
	Length        float32 `json:"length" mapstructure:"length"`
	Width         float32 `json:"width" mapstructure:"width"`
	EndzoneLength float32 `json:"endzoneLength" mapstructure:"endzoneLength"`
}

// LoggingConfig holds log sink settings
type LoggingConfig struct {
	Level          string
	Format         string
	Dir            string
	GraylogEnabled bool
	GraylogAddress string
}

// OTelConfig holds OpenTelemetry settings
type OTelConfig struct {
	Enabled      bool
	ServiceName  string
	BatchTimeout time.Duration
	Endpoint     string
	Insecure     bool
}

// SetDefaults registers the default value of every key.
func SetDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logFormat", "text")
	viper.SetDefault("logsDir", "")

	viper.SetDefault("field.name", field.DefaultFieldName)
	viper.SetDefault("field.surface", field.Grass.String())
	viper.SetDefault("field.length", field.FieldLengthYards)
	viper.SetDefault("field.width", field.FieldWidthYards)
	viper.SetDefault("field.endzoneLength", field.EndZoneLengthYards)

	viper.SetDefault("graylog.enabled", false)
	viper.SetDefault("graylog.address", "localhost:12201")

	viper.SetDefault("otel.enabled", false)
	viper.SetDefault("otel.serviceName", "fieldgeo")
	viper.SetDefault("otel.batchTimeout", "5s")
	viper.SetDefault("otel.endpoint", "")
	viper.SetDefault("otel.insecure", true)
}

// Load reads configuration from JSON file and sets default values.
// configDir is the directory containing the config file.
func Load(configDir string) error {
	SetDefaults()

	viper.SetConfigName(FileName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}

// GetFieldConfig returns the field section.
func GetFieldConfig() FieldConfig {
	return FieldConfig{
		Name:          viper.GetString("field.name"),
		Surface:       viper.GetString("field.surface"),
		Length:        float32(viper.GetFloat64("field.length")),
		Width:         float32(viper.GetFloat64("field.width")),
		EndzoneLength: float32(viper.GetFloat64("field.endzoneLength")),
	}
}

// GetLoggingConfig returns the logging keys.
func GetLoggingConfig() LoggingConfig {
	return LoggingConfig{
		Level:          viper.GetString("logLevel"),
		Format:         viper.GetString("logFormat"),
		Dir:            viper.GetString("logsDir"),
		GraylogEnabled: viper.GetBool("graylog.enabled"),
		GraylogAddress: viper.GetString("graylog.address"),
	}
}

// GetOTelConfig returns the otel section.
func GetOTelConfig() OTelConfig {
	return OTelConfig{
		Enabled:      viper.GetBool("otel.enabled"),
		ServiceName:  viper.GetString("otel.serviceName"),
		BatchTimeout: viper.GetDuration("otel.batchTimeout"),
		Endpoint:     viper.GetString("otel.endpoint"),
		Insecure:     viper.GetBool("otel.insecure"),
	}
}

// Build constructs the configured field.
func (c FieldConfig) Build() (*field.Field, error) {
	surface, err := field.ParseSurfaceType(c.Surface)
	if err != nil {
		return nil, fmt.Errorf("field config: %w", err)
	}
	f, err := field.NewCustom(c.Length, c.Width, c.EndzoneLength)
	if err != nil {
		return nil, fmt.Errorf("field config: %w", err)
	}
	f.Name = c.Name
	f.Surface = surface
	return f, nil
}

// Package config loads and validates the TOML configuration document
// describing the data sources to aggregate.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the root of the configuration document.
type Config struct {
	General              GeneralConfig                `toml:"general"`
	OpenAi               OpenAiConfig                 `toml:"open_ai"`
	AppDescription       []AppDescConfig              `toml:"app_description"`
	Ec2                  []Ec2Config                  `toml:"ec2"`
	Rds                  []RdsConfig                  `toml:"rds"`
	CloudwatchMetric     []CloudwatchMetricConfig     `toml:"cloudwatch_metric"`
	CloudwatchLogInsight []CloudwatchLogInsightConfig `toml:"cloudwatch_log_insight"`
}

// GeneralConfig carries run-wide settings.
type GeneralConfig struct {
	// Profile is the AWS shared-config profile used for all service calls.
	Profile string `toml:"profile"`
	// TimeZone is an optional IANA zone name used only when rendering
	// extracted timestamps. Defaults to UTC.
	TimeZone string `toml:"time_zone"`
}

// OpenAiConfig carries the chat-completion parameters.
type OpenAiConfig struct {
	// ApiKey is optional; the OPENAI_API_KEY environment variable takes
	// precedence when set.
	ApiKey   string `toml:"api_key"`
	Model    string `toml:"model"`
	MaxToken int64  `toml:"max_token"`
}

type AppDescConfig struct {
	OrderNo     uint8  `toml:"order_no"`
	Description string `toml:"description"`
}

type Ec2Config struct {
	OrderNo      uint8  `toml:"order_no"`
	InstanceName string `toml:"instance_name"`
}

type RdsConfig struct {
	OrderNo      uint8  `toml:"order_no"`
	DbIdentifier string `toml:"db_identifier"`
}

type CloudwatchMetricConfig struct {
	OrderNo          uint8  `toml:"order_no"`
	DimensionName    string `toml:"dimension_name"`
	DimensionValue   string `toml:"dimension_value"`
	MetricIdentifier string `toml:"metric_identifier"`
	MetricNamespace  string `toml:"metric_namespace"`
	MetricName       string `toml:"metric_name"`
	MetricStat       string `toml:"metric_stat"`
	MetricUnit       string `toml:"metric_unit"`
}

type CloudwatchLogInsightConfig struct {
	OrderNo       uint8    `toml:"order_no"`
	Description   string   `toml:"description"`
	LogGroupName  string   `toml:"log_group_name"`
	Query         string   `toml:"query"`
	ResultColumns []string `toml:"result_columns"`
}

// Load reads and decodes the configuration file at path.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var c Config
	if err := toml.Unmarshal(content, &c); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if c.General.Profile == "" {
		return nil, fmt.Errorf("general.profile must be set")
	}
	if c.OpenAi.Model == "" {
		return nil, fmt.Errorf("open_ai.model must be set")
	}

	return &c, nil
}

// Location resolves the configured time zone name, defaulting to UTC.
func (c *Config) Location() (*time.Location, error) {
	if c.General.TimeZone == "" {
		return time.UTC, nil
	}

	loc, err := time.LoadLocation(c.General.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("unknown time zone %q: %w", c.General.TimeZone, err)
	}
	return loc, nil
}

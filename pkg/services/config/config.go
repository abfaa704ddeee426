// Package config loads service configuration from an optional YAML file and
// SWMS_-prefixed environment variables, with working defaults for local runs.
package config

import (
	"fmt"
	"strings"

	"github.com/safework-tools/swms-atlas/pkg/services/compliance"
	"github.com/safework-tools/swms-atlas/pkg/services/risk"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type MonitorConfig struct {
	Capacity int `mapstructure:"capacity"`
}

// BandConfig is one classifier threshold band as written in the config file.
type BandConfig struct {
	Max   int    `mapstructure:"max"`
	Level string `mapstructure:"level"`
}

type ClassifierConfig struct {
	Bands []BandConfig `mapstructure:"bands"`
	Top   string       `mapstructure:"top"`
}

type Config struct {
	Server     ServerConfig      `mapstructure:"server"`
	Database   DatabaseConfig    `mapstructure:"database"`
	Monitor    MonitorConfig     `mapstructure:"monitor"`
	Classifier ClassifierConfig  `mapstructure:"classifier"`
	Policy     compliance.Policy `mapstructure:"policy"`
}

// Load reads configuration from path (optional; empty means defaults plus
// environment only).
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SWMS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("database.path", "swms-atlas.db")
	v.SetDefault("monitor.capacity", 100)

	p := compliance.DefaultPolicy()
	v.SetDefault("policy.initialscorepenalty", p.InitialScorePenalty)
	v.SetDefault("policy.residualscorepenalty", p.ResidualScorePenalty)
	v.SetDefault("policy.reductionpenalty", p.ReductionPenalty)
	v.SetDefault("policy.controlshortfallpenalty", p.ControlShortfallPenalty)
	v.SetDefault("policy.missingstandardpenalty", p.MissingStandardPenalty)
	v.SetDefault("policy.missingwhspenalty", p.MissingWHSPenalty)
	v.SetDefault("policy.missingcontrolpenalty", p.MissingControlPenalty)
	v.SetDefault("policy.highriskscore", p.HighRiskScore)
	v.SetDefault("policy.mincontrolmeasures", p.MinControlMeasures)
	v.SetDefault("policy.compliantscore", p.CompliantScore)
	v.SetDefault("policy.accuracyreviewbelow", p.AccuracyReviewBelow)
	v.SetDefault("policy.compliancereviewbelow", p.ComplianceReviewBelow)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// ClassifierTable converts the configured bands into a classifier table, or
// returns the canonical table when none are configured.
func (c *Config) ClassifierTable() risk.ClassifierTable {
	if len(c.Classifier.Bands) == 0 {
		return risk.DefaultClassifierTable()
	}
	t := risk.ClassifierTable{Top: risk.Level(c.Classifier.Top)}
	if t.Top == "" {
		t.Top = risk.LevelExtreme
	}
	for _, b := range c.Classifier.Bands {
		t.Bands = append(t.Bands, risk.Band{Max: b.Max, Level: risk.Level(b.Level)})
	}
	return t
}

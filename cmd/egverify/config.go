package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	defaultLogLevel    = "info"
	defaultLogFormat   = "console"
	defaultMaxFailures = 50
)

// Config holds the fully-resolved CLI configuration: flags override config
// file values, which override these defaults (SPEC_FULL §6).
type Config struct {
	Record       string `mapstructure:"record"`
	Constants    string `mapstructure:"constants"`
	Context      string `mapstructure:"context"`
	Description  string `mapstructure:"description"`
	Ballots      string `mapstructure:"ballots"`
	Spoiled      string `mapstructure:"spoiled"`
	Tally        string `mapstructure:"tally"`
	Coefficients string `mapstructure:"coefficients"`
	Devices      string `mapstructure:"devices"`

	LogLevel         string `mapstructure:"log-level"`
	LogFormat        string `mapstructure:"log-format"`
	MaxFailures      int    `mapstructure:"max-failures"`
	FailFast         bool   `mapstructure:"fail-fast"`
	Workers          int    `mapstructure:"workers"`
	ReconstructTally bool   `mapstructure:"reconstruct-tally"`
	JSONOutput       bool   `mapstructure:"json"`
}

func loadConfig(args []string) (*Config, error) {
	fs := flag.NewFlagSet("egverify", flag.ContinueOnError)

	fs.String("config", "", "path to a YAML/JSON config file")
	fs.String("record", "", "path to the record root directory (constants.json, context.json, ...)")
	fs.String("constants", "", "path to constants.json (overrides --record)")
	fs.String("context", "", "path to context.json (overrides --record)")
	fs.String("description", "", "path to description.json (overrides --record)")
	fs.String("ballots", "", "path to the encrypted_ballots directory (overrides --record)")
	fs.String("spoiled", "", "path to the spoiled_ballots directory (overrides --record)")
	fs.String("tally", "", "path to tally.json (overrides --record)")
	fs.String("coefficients", "", "path to the coefficients directory (overrides --record)")
	fs.String("devices", "", "path to the devices directory (overrides --record)")

	fs.String("log-level", defaultLogLevel, "log level (debug, info, warn, error)")
	fs.String("log-format", defaultLogFormat, "log output format (console, json)")
	fs.Int("max-failures", defaultMaxFailures, "maximum number of offending locations to report")
	fs.Bool("fail-fast", false, "skip the remaining stages once the parameter check or ballot verification reports a failure, instead of running exhaustively")
	fs.Int("workers", 0, "ballot-verification worker pool size (0 = GOMAXPROCS)")
	fs.Bool("reconstruct-tally", false, "additionally reconstruct the plaintext tally via Lagrange combination (never required for PASS)")
	fs.Bool("json", false, "write the machine-readable summary to stdout as JSON")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "egverify verifies an ElectionGuard-style election record.\n\n")
		fmt.Fprintf(os.Stderr, "Usage: egverify --record <dir> [flags]\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetDefault("log-level", defaultLogLevel)
	v.SetDefault("log-format", defaultLogFormat)
	v.SetDefault("max-failures", defaultMaxFailures)

	if configPath, _ := fs.GetString("config"); configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return cfg, nil
}

// Copyright © 2018 One Concern

package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/docker/go-units"
	"github.com/oneconcern/linecomm/pkg/comm"
	"github.com/oneconcern/linecomm/pkg/engine"
	"github.com/oneconcern/linecomm/pkg/format"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configEnv    = "LINECOMM_CONFIG"
	configPrefix = "linecomm"
)

// configPaths are searched for a linecomm.yaml config file
var configPaths = []string{".", "$HOME/.linecomm", "/etc/linecomm"}

// CLIConfig describes the CLI configuration, as resolved from flags, environment and config file.
type CLIConfig struct {
	Delimiter  string `mapstructure:"delimiter" json:"delimiter" yaml:"delimiter"`
	Format     string `mapstructure:"format" json:"format" yaml:"format"`
	Color      string `mapstructure:"color" json:"color" yaml:"color"`
	BufferSize string `mapstructure:"buffer-size" json:"buffer-size" yaml:"buffer-size"`
	LogLevel   string `mapstructure:"loglevel" json:"loglevel" yaml:"loglevel"`
}

// config keys and the flags which override them
var configFlags = map[string]string{
	"delimiter":   "output-delimiter",
	"format":      "format",
	"color":       "color",
	"buffer-size": "buffer-size",
	"loglevel":    "loglevel",
}

// newConfig resolves the configuration for a command.
//
// Precedence is: explicit flags, then LINECOMM_* environment variables, then the config file, then flag defaults.
func newConfig(cmd *cobra.Command) (*CLIConfig, string, error) {
	v := viper.New()
	if file := os.Getenv(configEnv); file != "" {
		v.SetConfigFile(file)
	} else {
		for _, pth := range configPaths {
			v.AddConfigPath(pth)
		}
		v.SetConfigName("linecomm")
	}
	v.SetEnvPrefix(configPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for key, name := range configFlags {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			return nil, "", fmt.Errorf("no flag %q to bind config key %q", name, key)
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, "", err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, "", fmt.Errorf("reading config file: %w", err)
		}
	}

	var config CLIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, "", err
	}
	return &config, v.ConfigFileUsed(), nil
}

// engineConfig builds the immutable configuration of a comparison run
func (c *CLIConfig) engineConfig(flags *flagsT, args []string, outFd uintptr, isFile bool) (engine.Config, error) {
	cfg := engine.DefaultConfig(args[0], args[1])

	cfg.Visibility = format.NewVisibility(
		!flags.columns.hideFirst,
		!flags.columns.hideSecond,
		!flags.columns.hideBoth,
	)
	cfg.Delimiter = c.Delimiter
	cfg.Total = flags.output.total
	cfg.ZeroTerminated = flags.output.zeroTerminated
	cfg.Normalize = flags.compare.normalize
	if flags.compare.insensitive {
		cfg.Fold = comm.FoldCase
	}

	f, err := format.ParseFormat(c.Format)
	if err != nil {
		return cfg, err
	}
	cfg.Format = f

	mode, err := format.ParseColorMode(c.Color)
	if err != nil {
		return cfg, err
	}
	switch mode {
	case format.ColorAlways:
		cfg.Color = true
	case format.ColorAuto:
		cfg.Color = f == format.Text && isFile && mode.Enabled(outFd)
	}

	size, err := units.RAMInBytes(c.BufferSize)
	if err != nil {
		return cfg, fmt.Errorf("invalid buffer size %q: %w", c.BufferSize, err)
	}
	if size <= 0 {
		return cfg, fmt.Errorf("invalid buffer size %q: must be positive", c.BufferSize)
	}
	cfg.BufferSize = int(size)

	return cfg, nil
}

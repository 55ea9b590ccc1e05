package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// fileConfig is the --config file. Flags given on the command line win
// over file values.
type fileConfig struct {
	Library string `yaml:"library"`
	Name    string `yaml:"name"`
	Backend string `yaml:"backend"`
	LogFile string `yaml:"log_file"`
	Verbose bool   `yaml:"verbose"`
}

func loadConfig(path string) (fileConfig, error) {
	var fc fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("parse config %s: %w", path, err)
	}
	return fc, nil
}

// merge copies file values into o for every flag the user did not set.
func (o *options) merge(cmd *cobra.Command, fc fileConfig) {
	changed := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed
	}

	if !changed("library") && fc.Library != "" {
		o.Library = fc.Library
	}
	if !changed("name") && fc.Name != "" {
		o.Name = fc.Name
	}
	if !changed("backend") && fc.Backend != "" {
		o.Backend = fc.Backend
	}
	if !changed("log-file") && fc.LogFile != "" {
		o.LogFile = fc.LogFile
	}
	if !changed("verbose") && fc.Verbose {
		o.Verbose = true
	}
}

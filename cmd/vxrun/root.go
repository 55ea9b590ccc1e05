package main

import (
	"context"
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wippyai/voxon-runtime/bind"
	"github.com/wippyai/voxon-runtime/runtime"
	"github.com/wippyai/voxon-runtime/simulator"
	"github.com/wippyai/voxon-runtime/wasmdev"
)

// Backends accepted by --backend.
const (
	backendNative = "native"
	backendWasm   = "wasm"
	backendSim    = "sim"
)

var backends = []string{backendNative, backendWasm, backendSim}

// options holds the persistent flags shared by every command.
type options struct {
	ConfigFile string
	Library    string
	Name       string
	Backend    string
	LogFile    string
	Verbose    bool

	// sim, when set, is used by the sim backend instead of a fresh
	// simulator.
	sim *simulator.Simulator
}

func newRootCommand() *cobra.Command {
	return newRootCommandWith(&options{})
}

func newRootCommandWith(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "vxrun",
		Short:        "Drive a Voxon volumetric display library",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.ConfigFile != "" {
				fc, err := loadConfig(opts.ConfigFile)
				if err != nil {
					return err
				}
				opts.merge(cmd, fc)
			}
			if !slices.Contains(backends, opts.Backend) {
				return fmt.Errorf("invalid backend %q: must be one of %v", opts.Backend, backends)
			}
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.ConfigFile, "config", "", "YAML config file")
	flags.StringVarP(&opts.Library, "library", "l", "", "library path, skips discovery")
	flags.StringVar(&opts.Name, "name", "", "library file name to search for")
	flags.StringVarP(&opts.Backend, "backend", "b", backendNative, "library backend (native|wasm|sim)")
	flags.StringVar(&opts.LogFile, "log-file", runtime.DefaultLogFile, `failure log file, "-" disables`)
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose logging to stderr")

	cmd.AddCommand(newLocateCommand(opts))
	cmd.AddCommand(newSymbolsCommand(opts))
	cmd.AddCommand(newFeaturesCommand(opts))
	cmd.AddCommand(newRunCommand(opts))
	cmd.AddCommand(newViewCommand(opts))

	return cmd
}

func (o *options) logger() *zap.Logger {
	if !o.Verbose {
		return zap.NewNop()
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

// runtimeConfig builds the runtime configuration for the selected backend.
func (o *options) runtimeConfig(ctx context.Context) runtime.Config {
	log := o.logger()
	bind.SetLogger(log.Named("bind"))

	cfg := runtime.Config{
		LibraryPath: o.Library,
		Name:        o.Name,
		Logger:      log.Named("runtime"),
		LogFile:     o.LogFile,
	}

	switch o.Backend {
	case backendWasm:
		cfg.Opener = wasmdev.Opener(ctx, nil)
	case backendSim:
		sim := o.sim
		if sim == nil {
			sim = simulator.New()
		}
		cfg.Opener = sim.Opener()
		if cfg.LibraryPath == "" {
			cfg.LibraryPath = "simulator"
		}
	}
	return cfg
}

// load opens the library without initialising the device.
func (o *options) load(ctx context.Context) (*runtime.Runtime, error) {
	rt := runtime.New(o.runtimeConfig(ctx))
	if err := rt.Load(); err != nil {
		_ = rt.Close()
		return nil, err
	}
	return rt, nil
}

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wippyai/voxon-runtime/bind"
	"github.com/wippyai/voxon-runtime/locate"
	"github.com/wippyai/voxon-runtime/runtime"
)

func newLocateCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "locate",
		Short: "Show where the device library would be loaded from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocate(opts, cmd.OutOrStdout())
		},
	}
}

func runLocate(opts *options, w io.Writer) error {
	if opts.Library != "" {
		fmt.Fprintf(w, "%-8s %s\n", "path", opts.Library)
		fmt.Fprintf(w, "%-8s %s\n", "source", "flag")
		return nil
	}

	l := locate.New()
	l.Name = opts.Name
	res, err := l.Locate()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%-8s %s\n", "path", res.Path)
	fmt.Fprintf(w, "%-8s %s\n", "source", res.Source)
	if res.Scope != "" {
		fmt.Fprintf(w, "%-8s %s\n", "scope", res.Scope)
	}
	if res.Version != "" {
		fmt.Fprintf(w, "%-8s %s\n", "version", res.Version)
	}
	return nil
}

func newSymbolsCommand(opts *options) *cobra.Command {
	var missingOnly bool

	cmd := &cobra.Command{
		Use:   "symbols",
		Short: "List the entry points and whether the library exports them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := opts.load(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()
			writeSymbols(cmd.OutOrStdout(), rt.Bindings(), missingOnly)
			return nil
		},
	}

	cmd.Flags().BoolVar(&missingOnly, "missing", false, "only list unbound symbols")
	return cmd
}

func writeSymbols(w io.Writer, t *bind.Table, missingOnly bool) {
	all := bind.Symbols()
	for _, s := range all {
		status := "bound"
		if !t.Bound(s) {
			status = "missing"
		} else if missingOnly {
			continue
		}
		fmt.Fprintf(w, "%-26s %-8s %s\n", s, status, s.Signature())
	}
	fmt.Fprintf(w, "\n%d of %d bound\n", t.Len(), len(all))
}

func newFeaturesCommand(opts *options) *cobra.Command {
	var available bool

	cmd := &cobra.Command{
		Use:   "features",
		Short: "List the runtime surface grouped by area",
		Long: `List every runtime operation and the entry points it needs.

With --available the library is loaded and only operations whose entry
points are all exported are listed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			features := runtime.Features()
			if available {
				rt, err := opts.load(cmd.Context())
				if err != nil {
					return err
				}
				defer rt.Close()
				features = rt.AvailableFeatures()
			}
			writeFeatures(cmd.OutOrStdout(), features)
			return nil
		},
	}

	cmd.Flags().BoolVar(&available, "available", false, "load the library and list usable features only")
	return cmd
}

func writeFeatures(w io.Writer, features []runtime.Feature) {
	group := ""
	for _, f := range features {
		if f.Group != group {
			if group != "" {
				fmt.Fprintln(w)
			}
			group = f.Group
			fmt.Fprintf(w, "%s:\n", group)
		}
		if len(f.Symbols) == 0 {
			fmt.Fprintf(w, "  %s\n", f.Name)
			continue
		}
		names := make([]string, len(f.Symbols))
		for i, s := range f.Symbols {
			names[i] = s.String()
		}
		fmt.Fprintf(w, "  %s (%s)\n", f.Name, strings.Join(names, ", "))
	}
}

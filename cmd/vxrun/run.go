package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/wippyai/voxon-runtime/input"
	"github.com/wippyai/voxon-runtime/runtime"
)

type runOptions struct {
	Frames     int
	Guidelines bool
	HAng       float32
	VAng       float32
	Dist       float32
}

func newRunCommand(opts *options) *cobra.Command {
	ro := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Initialise the device and render until it quits",
		Long: `Load and initialise the device library, then run the frame loop.

Each frame draws the aspect-ratio guidelines and a frame counter on the
debug overlay. The loop ends when the device stops breathing, Escape is
pressed, or --frames frames were rendered.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.runtimeConfig(cmd.Context())
			return runtime.With(cfg, func(rt *runtime.Runtime) error {
				return runFrames(cmd, rt, ro, cmd.OutOrStdout())
			})
		},
	}

	f := cmd.Flags()
	f.IntVarP(&ro.Frames, "frames", "n", 0, "frames to render, 0 until the device quits")
	f.BoolVar(&ro.Guidelines, "guidelines", true, "draw the aspect-ratio outline")
	f.Float32Var(&ro.HAng, "hang", 0, "emulator horizontal angle in radians")
	f.Float32Var(&ro.VAng, "vang", 0, "emulator vertical angle in radians")
	f.Float32Var(&ro.Dist, "dist", 0, "emulator distance")
	return cmd
}

// applyEmulator pushes the emulator flags the user set and reports the
// values the device accepted.
func applyEmulator(cmd *cobra.Command, rt *runtime.Runtime, ro *runOptions, w io.Writer) error {
	setters := []struct {
		flag string
		v    float32
		set  func(float32) (float32, error)
	}{
		{"hang", ro.HAng, rt.SetEmulatorHorizontalAngle},
		{"vang", ro.VAng, rt.SetEmulatorVerticalAngle},
		{"dist", ro.Dist, rt.SetEmulatorDistance},
	}
	for _, s := range setters {
		if !cmd.Flags().Changed(s.flag) {
			continue
		}
		got, err := s.set(s.v)
		if err != nil {
			return err
		}
		if got != s.v {
			fmt.Fprintf(w, "%s %g clamped to %g\n", s.flag, s.v, got)
		}
	}
	return nil
}

func runFrames(cmd *cobra.Command, rt *runtime.Runtime, ro *runOptions, w io.Writer) error {
	version, err := rt.LibraryVersion()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%-8s %s\n", "library", rt.Library().Path())
	fmt.Fprintf(w, "%-8s %d\n", "version", version)
	fmt.Fprintf(w, "%-8s %s\n", "sdk", rt.SDKVersion())

	if err := applyEmulator(cmd, rt, ro, w); err != nil {
		return err
	}

	ctx := cmd.Context()
	rendered := 0
	for ro.Frames == 0 || rendered < ro.Frames {
		if ctx != nil && ctx.Err() != nil {
			break
		}

		breath, err := rt.FrameStart()
		if err != nil {
			return err
		}
		if !breath {
			if err := rt.FrameEnd(); err != nil {
				return err
			}
			break
		}

		if ro.Guidelines {
			if err := rt.DrawGuidelines(); err != nil {
				return err
			}
		}
		if err := rt.LogToScreen(8, 8, fmt.Sprintf("frame %d", rendered)); err != nil {
			return err
		}
		if err := rt.FrameEnd(); err != nil {
			return err
		}
		rendered++

		if esc, _ := rt.KeyDown(input.KeyEscape); esc {
			break
		}
	}

	fmt.Fprintf(w, "rendered %d frames\n", rendered)
	return nil
}

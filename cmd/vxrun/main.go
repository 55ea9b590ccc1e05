// Command vxrun locates, inspects and drives a Voxon device library.
//
//	vxrun locate                    where the library would be loaded from
//	vxrun symbols                   which entry points the library exports
//	vxrun features [--available]    the runtime surface and what is usable
//	vxrun run [--frames N]          render guidelines until the device quits
//	vxrun view                      live terminal view with emulator controls
//
// --backend selects native (default), wasm or sim; sim needs no device.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

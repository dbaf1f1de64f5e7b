// libredump probes /dev/hidraw candidates for a FreeStyle Libre reader and
// dumps its stored readings to a file via the external glucometer tool.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/Thiagojm/gluco_cli_linux/glucotool"
	"github.com/Thiagojm/gluco_cli_linux/prober"
)

func main() {
	tool := flag.String("tool", glucotool.DefaultBin, "external glucometer command to invoke")
	driver := flag.String("driver", glucotool.DefaultDriver, "glucometer driver name")
	outdir := flag.String("outdir", "Libre", "folder the dump file is written to")
	bound := flag.Int("bound", 5, "probe /dev/hidraw0 .. /dev/hidraw{bound-1}")
	ketone := flag.Bool("with-ketone", true, "include ketone readings if the meter has them")
	unit := flag.String("unit", "", "glucose unit passed to the tool (e.g. mmol/L)")
	legacy := flag.Bool("legacy-order", false, "probe indices 0,4,5,... instead of a contiguous range")
	vlog := flag.Int("vlog", 0, "logging level forwarded to the external tool")
	flag.Parse()

	if err := os.MkdirAll(*outdir, 0o755); err != nil {
		log.Fatalf("creating outdir: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := &glucotool.Command{Bin: *tool, Driver: *driver, VLog: *vlog}
	opts := glucotool.DumpOptions{
		ToFile:       true,
		WithKetone:   *ketone,
		OutputFolder: *outdir,
		Unit:         *unit,
	}

	run := func(ctx context.Context, device string) (int, error) {
		return cmd.Dump(ctx, device, opts)
	}
	res, err := prober.Probe(ctx, run, prober.Config{
		Policy: prober.Policy{Bound: *bound, LegacySkip: *legacy},
		Logf:   log.Printf,
	})
	if err != nil {
		log.Fatalf("probe error: %v", err)
	}

	if !res.Succeeded() {
		log.Printf("no reader answered after %d attempts", res.Attempts)
		os.Exit(res.ExitCode)
	}

	fmt.Printf("dump succeeded on %s (attempt %d)\n", res.Device, res.Attempts)
	if path, err := glucotool.LatestDump(*outdir); err == nil {
		fmt.Printf("dump file: %s\n", path)
	}
}

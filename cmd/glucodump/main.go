// glucodump probes /dev/hidraw candidates for a FreeStyle Libre reader and
// prints its stored readings to stdout via the external glucometer tool.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/Thiagojm/gluco_cli_linux/glucotool"
	"github.com/Thiagojm/gluco_cli_linux/prober"
)

func main() {
	tool := flag.String("tool", glucotool.DefaultBin, "external glucometer command to invoke")
	driver := flag.String("driver", glucotool.DefaultDriver, "glucometer driver name")
	bound := flag.Int("bound", 10, "probe /dev/hidraw0 .. /dev/hidraw{bound-1}")
	unit := flag.String("unit", "", "glucose unit passed to the tool (e.g. mmol/L)")
	sortBy := flag.String("sort-by", "", "reading field the tool sorts by")
	info := flag.Bool("info", false, "run the tool's info action instead of dump")
	legacy := flag.Bool("legacy-order", false, "probe indices 0,4,5,... instead of a contiguous range")
	vlog := flag.Int("vlog", 0, "logging level forwarded to the external tool")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := &glucotool.Command{Bin: *tool, Driver: *driver, VLog: *vlog}
	opts := glucotool.DumpOptions{Unit: *unit, SortBy: *sortBy}

	run := func(ctx context.Context, device string) (int, error) {
		if *info {
			return cmd.Info(ctx, device)
		}
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
	log.Printf("succeeded on %s (attempt %d)", res.Device, res.Attempts)
}

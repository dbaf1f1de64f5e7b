// Package glucotool wraps the external glucometer CLI (glucometerutils'
// glucometer.py) as a synchronous subprocess call returning the process exit
// code. All meter communication lives in the external tool; this package only
// builds its argument list and interprets exit statuses.
package glucotool

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
)

// DefaultBin is the external tool invoked when Command.Bin is empty.
const DefaultBin = "glucometer.py"

// DefaultDriver is the glucometerutils driver for the FreeStyle Libre.
const DefaultDriver = "fslibre"

// Command describes how to invoke the external glucometer tool.
type Command struct {
	// Bin is the executable name or path. Empty means DefaultBin.
	Bin string
	// Driver is passed as --driver. Empty means DefaultDriver.
	Driver string
	// VLog, when > 0, is passed as --vlog (the tool's logging level).
	VLog int
	// Stdout and Stderr receive the tool's output. Nil means the current
	// process's streams.
	Stdout io.Writer
	Stderr io.Writer
}

// DumpOptions mirror the flags of the external tool's dump action.
type DumpOptions struct {
	// ToFile makes the tool write a YYYYMMDDHHMMSS.csv file instead of
	// printing readings to stdout.
	ToFile bool
	// WithKetone includes ketone readings if the meter supports them.
	WithKetone bool
	// OutputFolder controls where the dump file is written (with ToFile).
	OutputFolder string
	// Unit selects the glucose unit ("mg/dL" or "mmol/L"); empty keeps the
	// tool's default.
	Unit string
	// SortBy selects the reading field to order by; empty keeps the
	// tool's default (timestamp).
	SortBy string
}

func (c *Command) bin() string {
	if c.Bin == "" {
		return DefaultBin
	}
	return c.Bin
}

func (c *Command) driver() string {
	if c.Driver == "" {
		return DefaultDriver
	}
	return c.Driver
}

// common returns the argv prefix shared by all actions.
func (c *Command) common(device string) []string {
	argv := []string{
		"--driver=" + c.driver(),
		"--device=" + device,
	}
	if c.VLog > 0 {
		argv = append(argv, "--vlog="+strconv.Itoa(c.VLog))
	}
	return argv
}

// DumpArgs builds the full argument list for a dump invocation against the
// given device path.
func (c *Command) DumpArgs(device string, opts DumpOptions) []string {
	argv := append(c.common(device), "dump")
	if opts.Unit != "" {
		argv = append(argv, "--unit", opts.Unit)
	}
	if opts.SortBy != "" {
		argv = append(argv, "--sort-by", opts.SortBy)
	}
	if opts.ToFile {
		argv = append(argv, "--to-file")
	}
	if opts.WithKetone {
		argv = append(argv, "--with-ketone")
	}
	if opts.OutputFolder != "" {
		argv = append(argv, "--output-folder", opts.OutputFolder)
	}
	return argv
}

// InfoArgs builds the argument list for an info invocation.
func (c *Command) InfoArgs(device string) []string {
	return append(c.common(device), "info")
}

// Dump runs the external tool's dump action against the device and returns
// its exit code. A non-nil error means the tool could not be executed; a
// nonzero exit code with a nil error means the tool ran and failed (wrong
// device, no response, permissions), which is the caller's signal to try the
// next candidate.
func (c *Command) Dump(ctx context.Context, device string, opts DumpOptions) (int, error) {
	return runArgv(ctx, c.bin(), c.DumpArgs(device, opts), c.Stdout, c.Stderr)
}

// Info runs the external tool's info action against the device.
func (c *Command) Info(ctx context.Context, device string) (int, error) {
	return runArgv(ctx, c.bin(), c.InfoArgs(device), c.Stdout, c.Stderr)
}

// runArgv executes bin with argv and maps the outcome to an exit code. Exit
// statuses are data here, not errors: only failure to run the process at all
// (missing binary, bad permissions, cancelled context) is returned as error.
func runArgv(ctx context.Context, bin string, argv []string, stdout, stderr io.Writer) (int, error) {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	cmd := exec.CommandContext(ctx, bin, argv...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	if ctx.Err() != nil {
		return -1, ctx.Err()
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return ee.ExitCode(), nil
	}
	return -1, fmt.Errorf("running %s: %w", bin, err)
}

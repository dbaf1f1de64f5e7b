// Package prober implements the sequential retry loop that tries candidate
// /dev/hidraw device paths against an external dump command until one
// invocation succeeds or the candidate list is exhausted.
package prober

import (
	"context"
	"errors"
	"fmt"
)

// DefaultDevicePattern is the printf pattern used to turn a candidate index
// into a device path.
const DefaultDevicePattern = "/dev/hidraw%d"

// RunFunc invokes the external dump tool once against the given device path
// and returns the process exit code. A non-nil error means the tool could not
// be executed at all (as opposed to running and exiting nonzero).
type RunFunc func(ctx context.Context, device string) (int, error)

// Policy describes the sequence of candidate indices to probe.
//
// The default sequence is contiguous: 0, 1, ..., Bound-1. With LegacySkip the
// sequence jumps from index 0 directly to index 4 and increments by one from
// there, so indices 1-3 are never attempted (with the historical bound of 5
// the probed set is exactly {0, 4}).
type Policy struct {
	// Bound is the exclusive upper bound on candidate indices.
	Bound int
	// LegacySkip enables the historical 0 -> 4 jump.
	LegacySkip bool
}

// Validate checks that the policy can produce at least one candidate.
func (p Policy) Validate() error {
	if p.Bound <= 0 {
		return fmt.Errorf("bound must be > 0, got %d", p.Bound)
	}
	return nil
}

// Indices returns the full candidate sequence in probe order.
func (p Policy) Indices() []int {
	var out []int
	idx := 0
	for idx < p.Bound {
		out = append(out, idx)
		if p.LegacySkip && idx == 0 {
			idx = 4
		} else {
			idx++
		}
	}
	return out
}

// Result reports the outcome of a probe run.
type Result struct {
	// ExitCode is the exit code of the last invocation, 0 on success.
	ExitCode int
	// Index is the candidate index that succeeded, or -1 if none did.
	Index int
	// Device is the device path that succeeded, empty if none did.
	Device string
	// Attempts is the number of external invocations performed.
	Attempts int
}

// Succeeded reports whether any invocation exited 0.
func (r Result) Succeeded() bool { return r.ExitCode == 0 && r.Index >= 0 }

// Config controls a probe run.
type Config struct {
	Policy Policy
	// DevicePattern formats a candidate index into a device path.
	// Empty means DefaultDevicePattern.
	DevicePattern string
	// Logf, if non-nil, receives a trace line before each attempt.
	Logf func(format string, args ...any)
}

// Probe tries each candidate device path in policy order, invoking run for
// each, and stops at the first zero exit code. Exactly one invocation is in
// flight at a time; once a zero exit code is observed no further invocation
// happens. Exhausting all candidates is not an error: the returned Result
// simply carries the last nonzero exit code with Index == -1.
func Probe(ctx context.Context, run RunFunc, cfg Config) (Result, error) {
	res := Result{ExitCode: -1, Index: -1}
	if run == nil {
		return res, errors.New("run function must not be nil")
	}
	if err := cfg.Policy.Validate(); err != nil {
		return res, err
	}
	pattern := cfg.DevicePattern
	if pattern == "" {
		pattern = DefaultDevicePattern
	}

	for _, idx := range cfg.Policy.Indices() {
		select {
		case <-ctx.Done():
			return res, ctx.Err()
		default:
		}

		device := fmt.Sprintf(pattern, idx)
		if cfg.Logf != nil {
			cfg.Logf("trying %s", device)
		}
		code, err := run(ctx, device)
		if err != nil {
			return res, fmt.Errorf("invoking dump for %s: %w", device, err)
		}
		res.Attempts++
		res.ExitCode = code
		if code == 0 {
			res.Index = idx
			res.Device = device
			return res, nil
		}
	}
	return res, nil
}

package glucotool

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"
)

// Dump files written by the external tool with --to-file are named
// YYYYMMDDHHMMSS.csv after the wall clock at dump time.
var dumpNameRe = regexp.MustCompile(`^(\d{14})\.csv$`)

// DumpTimeLayout is the Go layout matching the dump filename convention.
const DumpTimeLayout = "20060102150405"

// IsDumpName reports whether name matches the external tool's dump filename
// convention.
func IsDumpName(name string) bool {
	return dumpNameRe.MatchString(name)
}

// DumpTime parses the timestamp encoded in a dump filename.
func DumpTime(name string) (time.Time, error) {
	m := dumpNameRe.FindStringSubmatch(name)
	if m == nil {
		return time.Time{}, fmt.Errorf("not a dump filename: %s", name)
	}
	return time.ParseInLocation(DumpTimeLayout, m[1], time.Local)
}

// LatestDump returns the path of the newest dump file in dir, by the
// timestamp encoded in the filename. It returns an error if dir contains no
// dump files.
func LatestDump(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("reading dump folder: %w", err)
	}
	best := ""
	var bestTime time.Time
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ts, err := DumpTime(e.Name())
		if err != nil {
			continue
		}
		if best == "" || ts.After(bestTime) {
			best = e.Name()
			bestTime = ts
		}
	}
	if best == "" {
		return "", errors.New("no dump files found")
	}
	return filepath.Join(dir, best), nil
}

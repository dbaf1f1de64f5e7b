package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// sampleDump mirrors the layout the external tool writes with --to-file:
// two preamble lines, a header row, then tab-separated readings.
const sampleDump = "Some guy\r\n" +
	"# 000000001\r\n" +
	"ID\tTime\tRecord Type\tHistoric Glucose (mmol/L)\tScan Glucose (mmol/L)\tNon-numeric Rapid-Acting Insulin\tRapid-Acting Insulin (units)\tNon-numeric Food\tCarbohydrates (grams)\tNon-numeric Long-Acting Insulin\tLong-Acting Insulin (units)\tNotes\tStrip Glucose (mmol/L)\tKetone (mmol/L)\tMeal Insulin (units)\tCorrection Insulin (units)\tUser Change Insulin (units)\tPrevious Time\tUpdated Time\r\n" +
	"1\t2024/03/01 08:15\t0\t5.4\t\t\t\t\t\t\t\t\t\t\t\t\t\t\t\r\n" +
	"2\t2024/03/01 08:30\t1\t\t6.1\t\t\t\t\t\t\t\t\t\t\t\t\t\t\r\n" +
	"3\t2024/03/01 09:00\t2\t\t\t\t\t\t\t\t\t\t7.2\t\t\t\t\t\t\r\n" +
	"4\t2024/03/01 09:05\t3\t\t\t\t\t\t\t\t\t\t\t0.3\t\t\t\t\t\r\n"

func TestParseDump(t *testing.T) {
	readings, err := parseDump(strings.NewReader(sampleDump))
	if err != nil {
		t.Fatalf("parseDump() error: %v", err)
	}
	if len(readings) != 4 {
		t.Fatalf("got %d readings, want 4", len(readings))
	}

	sensor := readings[0]
	if sensor.Type != 0 || !sensor.HasGlucose || sensor.Glucose != 5.4 {
		t.Errorf("sensor reading = %+v", sensor)
	}
	if got := sensor.Time.Format("2006/01/02 15:04"); got != "2024/03/01 08:15" {
		t.Errorf("sensor time = %s", got)
	}

	scan := readings[1]
	if scan.Type != 1 || !scan.HasGlucose || scan.Glucose != 6.1 {
		t.Errorf("scan reading = %+v", scan)
	}

	strip := readings[2]
	if strip.Type != 2 || !strip.HasGlucose || strip.Glucose != 7.2 {
		t.Errorf("strip reading = %+v", strip)
	}

	ketone := readings[3]
	if ketone.Type != 3 || ketone.HasGlucose || !ketone.HasKetone || ketone.Ketone != 0.3 {
		t.Errorf("ketone reading = %+v", ketone)
	}
}

func TestParseDumpEmpty(t *testing.T) {
	readings, err := parseDump(strings.NewReader("a\r\nb\r\nheader\r\n"))
	if err != nil {
		t.Fatalf("parseDump() error: %v", err)
	}
	if len(readings) != 0 {
		t.Fatalf("got %d readings, want 0", len(readings))
	}
}

func TestParseDumpBadRow(t *testing.T) {
	bad := "a\nb\nheader\nnot-a-number\t2024/03/01 08:15\t0\n"
	if _, err := parseDump(strings.NewReader(bad)); err == nil {
		t.Fatal("parseDump() accepted malformed row id")
	}
}

func TestTypeLabel(t *testing.T) {
	cases := map[int]string{0: "sensor", 1: "scan", 2: "strip", 3: "ketone", -1: "unknown", 9: "unknown"}
	for typ, want := range cases {
		if got := typeLabel(typ); got != want {
			t.Errorf("typeLabel(%d) = %q, want %q", typ, got, want)
		}
	}
}

func TestRunWritesWorkbook(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "20240301090500.csv")
	if err := os.WriteFile(in, []byte(sampleDump), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := run(in); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	out := filepath.Join(dir, "20240301090500.xlsx")
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("workbook not written: %v", err)
	}
}

func TestRunNoReadings(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "empty.csv")
	if err := os.WriteFile(in, []byte("a\nb\nheader\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := run(in); err == nil {
		t.Fatal("run() succeeded on a dump with no readings")
	}
}

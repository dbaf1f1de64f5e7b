// dumptoexcel converts a dump file written by the external glucometer tool
// (the tab-separated Libre layout) into an Excel workbook with a glucose
// chart.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	sheetName        = "Readings"
	timeColumnName   = "time"
	typeColumnName   = "record type"
	valueColumnName  = "glucose (mmol/L)"
	ketoneColumnName = "ketone (mmol/L)"
)

// Column positions in the Libre TSV layout, counting the leading row ID.
const (
	colID       = 0
	colTime     = 1
	colType     = 2
	colHistoric = 3
	colScan     = 4
	colStrip    = 12
	colKetone   = 13
)

// timeLayout is the timestamp format the external tool writes per row.
const timeLayout = "2006/01/02 15:04"

// Reading is one parsed dump row.
type Reading struct {
	ID   int
	Time time.Time
	// Type is the Libre record type: 0 historic (sensor), 1 scan,
	// 2 blood strip, 3 ketone, -1 unknown.
	Type int
	// Glucose is the glucose value for types 0-2; NaN-free, use HasGlucose.
	Glucose    float64
	HasGlucose bool
	// Ketone is the ketone value for type 3.
	Ketone    float64
	HasKetone bool
}

// typeLabel maps a Libre record type to a short human-readable label.
func typeLabel(t int) string {
	switch t {
	case 0:
		return "sensor"
	case 1:
		return "scan"
	case 2:
		return "strip"
	case 3:
		return "ketone"
	default:
		return "unknown"
	}
}

// parseDump reads a dump in the Libre TSV layout: two preamble lines, one
// header row, then one tab-separated reading per line.
func parseDump(r io.Reader) ([]Reading, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	line := 0
	var readings []Reading
	for sc.Scan() {
		line++
		if line <= 3 {
			// Preamble and column header.
			continue
		}
		text := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		rec, err := parseRow(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		readings = append(readings, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return readings, nil
}

func parseRow(text string) (Reading, error) {
	fields := strings.Split(text, "\t")
	if len(fields) <= colType {
		return Reading{}, fmt.Errorf("short row: %d fields", len(fields))
	}
	id, err := strconv.Atoi(strings.TrimSpace(fields[colID]))
	if err != nil {
		return Reading{}, fmt.Errorf("invalid row id %q: %w", fields[colID], err)
	}
	ts, err := time.ParseInLocation(timeLayout, strings.TrimSpace(fields[colTime]), time.Local)
	if err != nil {
		return Reading{}, fmt.Errorf("invalid timestamp %q: %w", fields[colTime], err)
	}
	typ, err := strconv.Atoi(strings.TrimSpace(fields[colType]))
	if err != nil {
		return Reading{}, fmt.Errorf("invalid record type %q: %w", fields[colType], err)
	}

	rec := Reading{ID: id, Time: ts, Type: typ}
	// The glucose value lives in a type-dependent column; the others are
	// left empty by the tool.
	var valCol int
	switch typ {
	case 0:
		valCol = colHistoric
	case 1:
		valCol = colScan
	case 2:
		valCol = colStrip
	case 3:
		if v, ok := parseValue(fields, colKetone); ok {
			rec.Ketone = v
			rec.HasKetone = true
		}
		return rec, nil
	default:
		return rec, nil
	}
	if v, ok := parseValue(fields, valCol); ok {
		rec.Glucose = v
		rec.HasGlucose = true
	}
	return rec, nil
}

func parseValue(fields []string, col int) (float64, bool) {
	if col >= len(fields) {
		return 0, false
	}
	s := strings.TrimSpace(fields[col])
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// writeToExcel writes the readings to an .xlsx next to the input path, with a
// line chart of glucose over time.
func writeToExcel(readings []Reading, filePath string) error {
	if len(readings) == 0 {
		return errors.New("no readings to write")
	}
	fileToSave := strings.TrimSuffix(filePath, filepath.Ext(filePath)) + ".xlsx"
	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(0)
	if defaultSheet != sheetName {
		f.NewSheet(sheetName)
		f.DeleteSheet(defaultSheet)
	}

	// Headers
	_ = f.SetCellStr(sheetName, "A1", timeColumnName)
	_ = f.SetCellStr(sheetName, "B1", typeColumnName)
	_ = f.SetCellStr(sheetName, "C1", valueColumnName)
	_ = f.SetCellStr(sheetName, "D1", ketoneColumnName)

	// Data rows
	for i, r := range readings {
		rowIdx := i + 2
		_ = f.SetCellStr(sheetName, fmt.Sprintf("A%d", rowIdx), r.Time.Format("2006-01-02 15:04"))
		_ = f.SetCellStr(sheetName, fmt.Sprintf("B%d", rowIdx), typeLabel(r.Type))
		if r.HasGlucose {
			_ = f.SetCellFloat(sheetName, fmt.Sprintf("C%d", rowIdx), r.Glucose, 1, 64)
		}
		if r.HasKetone {
			_ = f.SetCellFloat(sheetName, fmt.Sprintf("D%d", rowIdx), r.Ketone, 1, 64)
		}
	}

	// Build chart using struct API
	endRow := len(readings) + 1
	catRange := fmt.Sprintf("%s!$A$2:$A$%d", sheetName, endRow)
	valRange := fmt.Sprintf("%s!$C$2:$C$%d", sheetName, endRow)
	chart := &excelize.Chart{
		Type: excelize.Line,
		Series: []excelize.ChartSeries{
			{
				Name:       fmt.Sprintf("%s!$C$1", sheetName),
				Categories: catRange,
				Values:     valRange,
			},
		},
		Title:  []excelize.RichTextRun{{Text: filepath.Base(filePath)}},
		Legend: excelize.ChartLegend{Position: "none"},
		XAxis:  excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: "Time"}}},
		YAxis:  excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: "Glucose (mmol/L)"}}, MajorGridLines: true},
	}
	if err := f.AddChart(sheetName, "F2", chart); err != nil {
		return err
	}

	return f.SaveAs(fileToSave)
}

// run performs the end-to-end workflow: parse the dump and export it.
func run(filePath string) error {
	f, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer f.Close()

	readings, err := parseDump(f)
	if err != nil {
		return err
	}
	return writeToExcel(readings, filePath)
}

// Usage: dumptoexcel <path-to-dump.csv>
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: dumptoexcel <path-to-dump.csv>")
		os.Exit(2)
	}
	filePath := os.Args[1]
	if err := run(filePath); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

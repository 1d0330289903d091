// Package excel reads and writes the spreadsheet interchange formats: the
// four-column schedule template consumed by bulk import, and the payroll
// report workbook.
package excel

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// scheduleHeaders is the exact header contract of the schedule template.
// Import matches columns by header name, not position.
var scheduleHeaders = []string{"employeeName", "date", "clockIn", "clockOut"}

// ScheduleRow is one raw imported row. Values are untrimmed cell strings;
// Line is the 1-based spreadsheet row for error reporting.
type ScheduleRow struct {
	EmployeeName string
	Date         string
	ClockIn      string
	ClockOut     string
	Line         int
}

// ScheduleTemplate builds the downloadable template workbook: the header row
// plus one sample row.
func ScheduleTemplate() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Schedules"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	rows := [][]interface{}{
		{"employeeName", "date", "clockIn", "clockOut"},
		{"홍길동", "2025-07-31", "09:00", "18:00"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write template row: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// ParseScheduleRows reads the first sheet of an uploaded workbook and returns
// its data rows. The header row must contain all four schedule columns by
// name; anything else is rejected before a single row is processed.
func ParseScheduleRows(r io.Reader) ([]ScheduleRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheets[0])
	}

	columns, err := mapHeaders(rows[0])
	if err != nil {
		return nil, err
	}

	var result []ScheduleRow
	for i, row := range rows[1:] {
		sr := ScheduleRow{
			EmployeeName: cellAt(row, columns["employeeName"]),
			Date:         cellAt(row, columns["date"]),
			ClockIn:      cellAt(row, columns["clockIn"]),
			ClockOut:     cellAt(row, columns["clockOut"]),
			Line:         i + 2,
		}
		if sr.EmployeeName == "" && sr.Date == "" && sr.ClockIn == "" && sr.ClockOut == "" {
			continue // trailing blank rows
		}
		result = append(result, sr)
	}

	return result, nil
}

func mapHeaders(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(scheduleHeaders))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, want := range scheduleHeaders {
		if _, ok := columns[want]; !ok {
			return nil, fmt.Errorf("missing required column %q", want)
		}
	}
	return columns, nil
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// PayrollReportRow is one pre-formatted line of the payroll report export.
type PayrollReportRow struct {
	Name          string
	Wage          string
	PlannedHours  string
	RecordedHours string
	Salary        string
}

// PayrollReport builds the payroll report workbook from formatted rows.
func PayrollReport(rows []PayrollReportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Payroll"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	header := []interface{}{"이름", "시급", "입력된 근무 시간", "기록된 근무 시간", "예상 급여"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := []interface{}{row.Name, row.Wage, row.PlannedHours, row.RecordedHours, row.Salary}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}

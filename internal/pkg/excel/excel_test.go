package excel

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestScheduleTemplateRoundTrip(t *testing.T) {
	workbook, err := ScheduleTemplate()
	if err != nil {
		t.Fatalf("ScheduleTemplate: %v", err)
	}

	rows, err := ParseScheduleRows(bytes.NewReader(workbook))
	if err != nil {
		t.Fatalf("ParseScheduleRows: %v", err)
	}

	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1 sample row", len(rows))
	}
	sample := rows[0]
	if sample.EmployeeName != "홍길동" || sample.Date != "2025-07-31" {
		t.Errorf("unexpected sample row: %+v", sample)
	}
	if sample.Line != 2 {
		t.Errorf("sample row line = %d, want 2", sample.Line)
	}
}

func buildWorkbook(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatal(err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestParseScheduleRows(t *testing.T) {
	workbook := buildWorkbook(t, [][]interface{}{
		{"employeeName", "date", "clockIn", "clockOut"},
		{"김철수", "2025-07-01", "09:00", "18:00"},
		{"", "", "", ""}, // blank row is skipped
		{"이영희", "2025-07-02", "22:00", "02:00"},
	})

	rows, err := ParseScheduleRows(bytes.NewReader(workbook))
	if err != nil {
		t.Fatalf("ParseScheduleRows: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].EmployeeName != "김철수" || rows[0].Line != 2 {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
	if rows[1].EmployeeName != "이영희" || rows[1].Line != 4 {
		t.Errorf("unexpected second row: %+v", rows[1])
	}
}

func TestParseScheduleRowsHeaderOrderIndependent(t *testing.T) {
	workbook := buildWorkbook(t, [][]interface{}{
		{"date", "clockOut", "employeeName", "clockIn"},
		{"2025-07-01", "18:00", "김철수", "09:00"},
	})

	rows, err := ParseScheduleRows(bytes.NewReader(workbook))
	if err != nil {
		t.Fatalf("ParseScheduleRows: %v", err)
	}

	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	row := rows[0]
	if row.EmployeeName != "김철수" || row.Date != "2025-07-01" || row.ClockIn != "09:00" || row.ClockOut != "18:00" {
		t.Errorf("columns mismapped: %+v", row)
	}
}

func TestParseScheduleRowsMissingColumn(t *testing.T) {
	workbook := buildWorkbook(t, [][]interface{}{
		{"employeeName", "date", "clockIn"},
		{"김철수", "2025-07-01", "09:00"},
	})

	if _, err := ParseScheduleRows(bytes.NewReader(workbook)); err == nil {
		t.Fatal("expected an error for a workbook missing the clockOut column")
	}
}

func TestParseScheduleRowsNotAWorkbook(t *testing.T) {
	if _, err := ParseScheduleRows(bytes.NewReader([]byte("not an xlsx file"))); err == nil {
		t.Fatal("expected an error for a non-xlsx payload")
	}
}

func TestPayrollReport(t *testing.T) {
	workbook, err := PayrollReport([]PayrollReportRow{
		{Name: "김철수", Wage: "10,000원", PlannedHours: "40시간", RecordedHours: "37.5시간", Salary: "375,000원"},
	})
	if err != nil {
		t.Fatalf("PayrollReport: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(workbook))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Payroll")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want header + 1", len(rows))
	}
	if rows[0][0] != "이름" || rows[0][4] != "예상 급여" {
		t.Errorf("unexpected header: %v", rows[0])
	}
	if rows[1][0] != "김철수" || rows[1][4] != "375,000원" {
		t.Errorf("unexpected data row: %v", rows[1])
	}
}
